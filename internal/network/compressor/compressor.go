package compressor

import (
	"github.com/lk2023060901/mcproto-go/pkg/util/merr"
)

// 可选的压缩算法名称，与配置中的 network.compression 对应。
const (
	AlgorithmNone = "none"
	AlgorithmZlib = "zlib"
	AlgorithmZstd = "zstd"
)

// Compressor 抽象了“单次压缩/解压”能力。
//
// 面向单个报文的内存块压缩，不做全局单例，调用方按需创建具体实现的实例。
type Compressor interface {
	// Algorithm 返回算法名称，用于日志与监控标签。
	Algorithm() string

	// Compress 将 src 压缩后追加到 dst[:0]。
	//
	// dst 一般可以传入一个可复用的缓冲区（长度可为 0），实现可选择复用其底层容量。
	Compress(dst, src []byte) (packet []byte, err error)

	// Decompress 将压缩数据 src 解压后追加到 dst[:0]。
	//
	// 行为约定与 Compress 对称：src 必须是 Compress 的输出。
	Decompress(dst, src []byte) (plain []byte, err error)
}

// NopCompressor 是一个空实现：不做任何压缩/解压，直接返回输入内容。
//
// 适用于：
//   - 未开启压缩时的默认值
//   - 便于在调用侧通过接口注入，在不改调用逻辑的前提下关闭压缩
type NopCompressor struct{}

func (NopCompressor) Algorithm() string { return AlgorithmNone }

func (NopCompressor) Compress(_ []byte, src []byte) ([]byte, error) {
	return src, nil
}

func (NopCompressor) Decompress(_ []byte, src []byte) ([]byte, error) {
	return src, nil
}

// 编译期断言：确保 NopCompressor 实现了 Compressor 接口。
var _ Compressor = NopCompressor{}

// New 按算法名称创建压缩器，空字符串等同于 none。
// level 只对 zlib 生效，0 表示默认压缩级别。
func New(algorithm string, level int) (Compressor, error) {
	switch algorithm {
	case "", AlgorithmNone:
		return NopCompressor{}, nil
	case AlgorithmZlib:
		return NewZlibCompressor(level)
	case AlgorithmZstd:
		return NewZstdCompressor()
	default:
		return nil, merr.WrapErrParameterInvalidMsg("unknown compression algorithm %q", algorithm)
	}
}
