package viper

import (
	"path/filepath"
	"strings"

	spfviper "github.com/spf13/viper"
)

// EnvPrefix 为环境变量前缀，配置键 network.compression-threshold 对应 MCPROTO_NETWORK_COMPRESSION_THRESHOLD。
const EnvPrefix = "MCPROTO"

// Config 封装 spf13/viper 实例，对外提供精简的 YAML/JSON/TOML 配置加载接口。
type Config struct {
	v *spfviper.Viper
}

// New 创建一个空的 Config，已设置默认值的键可以被同名环境变量覆盖。
func New() *Config {
	return &Config{
		v: newViper(),
	}
}

func newViper() *spfviper.Viper {
	v := spfviper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

// LoadFile 将 YAML、JSON 或 TOML 配置文件加载到 Config 中。
// 文件类型通过扩展名（.yaml/.yml/.json/.toml）推断。
func (c *Config) LoadFile(path string) error {
	if c.v == nil {
		c.v = newViper()
	}

	c.v.SetConfigFile(path)

	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		c.v.SetConfigType("yaml")
	case ".json":
		c.v.SetConfigType("json")
	case ".toml":
		c.v.SetConfigType("toml")
	default:
		// 让 viper 自行推断类型，或在读取时返回清晰的错误信息。
	}

	return c.v.ReadInConfig()
}

// SetDefault 为 key 设置默认值。
func (c *Config) SetDefault(key string, value any) {
	if c.v == nil {
		c.v = newViper()
	}
	c.v.SetDefault(key, value)
}

// IsSet 判断 key 是否由配置文件、环境变量或默认值给出。
func (c *Config) IsSet(key string) bool {
	if c.v == nil {
		return false
	}
	return c.v.IsSet(key)
}

// Unmarshal 将完整配置反序列化到 dst。
// dst 应为结构体或 map 的指针。
func (c *Config) Unmarshal(dst any) error {
	if c.v == nil {
		return nil
	}
	return c.v.Unmarshal(dst)
}

// UnmarshalKey 将指定 key 对应的子配置反序列化到 dst。
// dst 应为结构体或 map 的指针。
func (c *Config) UnmarshalKey(key string, dst any) error {
	if c.v == nil {
		return nil
	}
	return c.v.UnmarshalKey(key, dst)
}
