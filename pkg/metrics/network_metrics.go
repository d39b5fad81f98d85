// Licensed to the LF AI & Data foundation under one
// or more contributor license agreements. See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership. The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License. You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	networkSubsystem = "network"

	stageLabelName     = "stage"
	resultLabelName    = "result"
	algorithmLabelName = "algorithm"

	SuccessLabel = "success"
	FailLabel    = "fail"

	// 报文方向标签值，与 protocol.Direction 的含义无关，仅表示本端是写出还是读入。
	OutboundLabel = "outbound"
	InboundLabel  = "inbound"
)

var (
	NetworkMetricsRegisterOnce sync.Once

	// frameSizeBuckets 为帧大小的桶划分，单位为字节，上限覆盖 3 字节 VarInt 可表示的最大帧。
	frameSizeBuckets = prometheus.ExponentialBuckets(8, 4, 9)

	NetworkPackets = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: mcprotoNamespace,
			Subsystem: networkSubsystem,
			Name:      "packets_total",
			Help:      "packets passed through the transport pipeline",
		}, []string{directionLabelName, stateLabelName})

	NetworkFrameBytes = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: mcprotoNamespace,
			Subsystem: networkSubsystem,
			Name:      "frame_bytes",
			Help:      "size of frames on the wire, excluding the length prefix",
			Buckets:   frameSizeBuckets,
		}, []string{directionLabelName})

	NetworkCompressed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: mcprotoNamespace,
			Subsystem: networkSubsystem,
			Name:      "compressed_total",
			Help:      "payloads that crossed the compression threshold",
		}, []string{directionLabelName, algorithmLabelName})

	NetworkErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: mcprotoNamespace,
			Subsystem: networkSubsystem,
			Name:      "errors_total",
			Help:      "transport pipeline failures per stage",
		}, []string{stageLabelName})
)

// RegisterNetworkMetrics 将传输链路相关的指标注册到 Prometheus Registry 中。
func RegisterNetworkMetrics(registry prometheus.Registerer) {
	NetworkMetricsRegisterOnce.Do(func() {
		registry.MustRegister(NetworkPackets)
		registry.MustRegister(NetworkFrameBytes)
		registry.MustRegister(NetworkCompressed)
		registry.MustRegister(NetworkErrors)
	})
}
