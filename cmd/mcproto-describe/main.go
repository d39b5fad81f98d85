// mcproto-describe 输出协议版本的报文目录。
//
// 用法：
//
//	mcproto-describe -format yaml -group
//	mcproto-describe -config ./config.yaml -output protocol.toml -format toml
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/lk2023060901/mcproto-go/application"
	"github.com/lk2023060901/mcproto-go/pkg/log"
	"github.com/lk2023060901/mcproto-go/pkg/protocol/v578"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "mcproto-describe:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("mcproto-describe", flag.ContinueOnError)
	configPath := fs.String("config", "", "config file path (yaml|json|toml)")
	format := fs.String("format", "", "output format: json|yaml|toml|cbor")
	output := fs.String("output", "", "output path, - for stdout")
	group := fs.Bool("group", false, "group packets by state and direction")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var appArgs []string
	if *configPath != "" {
		appArgs = []string{"--config", *configPath}
	}
	app := application.New()
	if err := app.RunWithArgs(appArgs); err != nil {
		return err
	}

	// 命令行显式给出的参数覆盖配置。
	settings := app.Settings().Describe
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "format":
			settings.Format = *format
		case "output":
			settings.Output = *output
		case "group":
			settings.Group = *group
		}
	})

	reg := v578.Registry()
	spec := reg.Describe()

	w := stdout
	if settings.Output != "" && settings.Output != "-" {
		f, err := os.Create(settings.Output)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	if err := writeSpec(w, spec, settings.Format, settings.Group); err != nil {
		return err
	}
	log.Info("protocol described",
		zap.String("protocol", reg.Name()),
		zap.Int32("version", reg.ProtocolVersion()),
		zap.Int("packets", reg.Len()),
		zap.String("format", settings.Format))
	return nil
}
