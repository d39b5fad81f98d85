package metrics_test

import (
	"bytes"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"

	"github.com/lk2023060901/mcproto-go/internal/network/codec"
	"github.com/lk2023060901/mcproto-go/pkg/metrics"
	"github.com/lk2023060901/mcproto-go/pkg/protocol"
	"github.com/lk2023060901/mcproto-go/pkg/protocol/v578"
)

type MetricsSuite struct {
	suite.Suite
	reg *prometheus.Registry
}

func (s *MetricsSuite) SetupSuite() {
	s.reg = prometheus.NewRegistry()
	metrics.Register(s.reg)
}

// value 在 Gather 结果中查找指定指标与标签的取值，未找到时返回 0。
func (s *MetricsSuite) value(name string, labels map[string]string) float64 {
	families, err := s.reg.Gather()
	s.Require().NoError(err)
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
	next:
		for _, m := range mf.GetMetric() {
			got := make(map[string]string, len(m.GetLabel()))
			for _, lp := range m.GetLabel() {
				got[lp.GetName()] = lp.GetValue()
			}
			for k, v := range labels {
				if got[k] != v {
					continue next
				}
			}
			switch {
			case m.GetCounter() != nil:
				return m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				return m.GetGauge().GetValue()
			case m.GetHistogram() != nil:
				return float64(m.GetHistogram().GetSampleCount())
			}
		}
	}
	return 0
}

func (s *MetricsSuite) TestRegisterer() {
	s.Same(s.reg, metrics.GetRegisterer())
	// 重复注册不会 panic。
	s.NotPanics(func() { metrics.Register(s.reg) })
}

func (s *MetricsSuite) TestRegistryMetrics() {
	reg := v578.Registry()
	s.Equal(float64(1), s.value("mcproto_registry_packets", map[string]string{
		"protocol": reg.Name(), "state": "Handshaking", "direction": "ServerBound",
	}))

	labels := map[string]string{"protocol": "metrics-empty", "result": metrics.SuccessLabel}
	before := s.value("mcproto_registry_builds_total", labels)
	_, err := protocol.NewBuilder("metrics-empty", "1.0.0", 1).Build()
	s.Require().NoError(err)
	s.Equal(before+1, s.value("mcproto_registry_builds_total", labels))
}

func (s *MetricsSuite) TestNetworkMetrics() {
	c, err := codec.New(codec.Options{Registry: v578.Registry()})
	s.Require().NoError(err)

	out := map[string]string{"direction": metrics.OutboundLabel, "state": "Status"}
	in := map[string]string{"direction": metrics.InboundLabel, "state": "Status"}
	outBefore := s.value("mcproto_network_packets_total", out)
	inBefore := s.value("mcproto_network_packets_total", in)

	var buf bytes.Buffer
	s.Require().NoError(c.Encode(&buf, &v578.StatusPing{Payload: 7}))
	_, err = c.Decode(&buf, protocol.Status, protocol.ServerBound)
	s.Require().NoError(err)

	s.Equal(outBefore+1, s.value("mcproto_network_packets_total", out))
	s.Equal(inBefore+1, s.value("mcproto_network_packets_total", in))
	s.Positive(s.value("mcproto_network_frame_bytes", map[string]string{"direction": metrics.InboundLabel}))

	stage := map[string]string{"stage": "decode"}
	errBefore := s.value("mcproto_network_errors_total", stage)
	_, err = c.Decode(bytes.NewReader([]byte{0x01, 0x7f}), protocol.Status, protocol.ServerBound)
	s.Error(err)
	s.Equal(errBefore+1, s.value("mcproto_network_errors_total", stage))
}

func TestMetrics(t *testing.T) {
	suite.Run(t, new(MetricsSuite))
}
