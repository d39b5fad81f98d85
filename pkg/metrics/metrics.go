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
	// mcprotoNamespace 是当前项目所有 Prometheus 指标使用的命名空间。
	mcprotoNamespace = "mcproto"

	registrySubsystem = "registry"

	// 以下为当前使用的通用标签名。
	protocolLabelName  = "protocol"
	stateLabelName     = "state"
	directionLabelName = "direction"
)

var (
	RegistryMetricsRegisterOnce sync.Once

	// RegistryPackets 记录每个已构建注册表在各状态、方向下登记的报文数量。
	RegistryPackets = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: mcprotoNamespace,
			Subsystem: registrySubsystem,
			Name:      "packets",
			Help:      "number of packets registered per protocol, state and direction",
		}, []string{protocolLabelName, stateLabelName, directionLabelName})

	RegistryBuilds = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: mcprotoNamespace,
			Subsystem: registrySubsystem,
			Name:      "builds_total",
			Help:      "registry build attempts, labelled by result",
		}, []string{protocolLabelName, resultLabelName})

	metricRegisterer prometheus.Registerer
)

// GetRegisterer 返回全局 Prometheus Registerer。
// 如果尚未通过 Register 显式设置，则返回 prometheus.DefaultRegisterer。
func GetRegisterer() prometheus.Registerer {
	if metricRegisterer == nil {
		return prometheus.DefaultRegisterer
	}
	return metricRegisterer
}

// Register 注册注册表与传输链路的全部指标，同一进程内多次调用只生效一次。
func Register(r prometheus.Registerer) {
	RegistryMetricsRegisterOnce.Do(func() {
		r.MustRegister(RegistryPackets)
		r.MustRegister(RegistryBuilds)
	})
	RegisterNetworkMetrics(r)
	metricRegisterer = r
}
