package main

import (
	"bytes"
	"io"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
	"github.com/fxamacker/cbor/v2"
	"sigs.k8s.io/yaml"

	"github.com/lk2023060901/mcproto-go/internal/json"
	"github.com/lk2023060901/mcproto-go/pkg/protocol"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
	formatTOML = "toml"
	formatCBOR = "cbor"
)

// groupedDocument 为分组视图的顶层结构，TOML 要求顶层为表。
type groupedDocument struct {
	Name            string                 `json:"name" toml:"name"`
	GameVersion     string                 `json:"game_version" toml:"game_version"`
	ProtocolVersion int32                  `json:"protocol_version" toml:"protocol_version"`
	Groups          []protocol.PacketGroup `json:"groups" toml:"groups"`
}

func document(spec protocol.ProtocolSpec, group bool) any {
	if !group {
		return spec
	}
	return groupedDocument{
		Name:            spec.Name,
		GameVersion:     spec.GameVersion,
		ProtocolVersion: spec.ProtocolVersion,
		Groups:          spec.Grouped(),
	}
}

// render 按 format 序列化协议描述。
func render(spec protocol.ProtocolSpec, format string, group bool) ([]byte, error) {
	doc := document(spec, group)
	switch format {
	case formatJSON:
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case formatYAML:
		return yaml.Marshal(doc)
	case formatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(doc); err != nil {
			return nil, errors.Wrap(err, "encode toml")
		}
		return buf.Bytes(), nil
	case formatCBOR:
		em, err := cbor.CanonicalEncOptions().EncMode()
		if err != nil {
			return nil, err
		}
		return em.Marshal(doc)
	default:
		return nil, errors.Newf("unknown format %q, want json|yaml|toml|cbor", format)
	}
}

func writeSpec(w io.Writer, spec protocol.ProtocolSpec, format string, group bool) error {
	data, err := render(spec, format, group)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
