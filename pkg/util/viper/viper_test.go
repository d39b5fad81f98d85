package viper

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"
)

type networkSection struct {
	Compression          string `mapstructure:"compression"`
	CompressionThreshold int    `mapstructure:"compression-threshold"`
}

type ViperSuite struct {
	suite.Suite
	dir string
}

func (s *ViperSuite) SetupTest() {
	s.dir = s.T().TempDir()
}

func (s *ViperSuite) write(name, content string) string {
	path := filepath.Join(s.dir, name)
	s.Require().NoError(os.WriteFile(path, []byte(content), 0o600))
	return path
}

func (s *ViperSuite) TestFormats() {
	files := map[string]string{
		"config.yaml": "network:\n  compression: zlib\n  compression-threshold: 256\n",
		"config.json": `{"network":{"compression":"zlib","compression-threshold":256}}`,
		"config.toml": "[network]\ncompression = \"zlib\"\ncompression-threshold = 256\n",
	}
	for name, content := range files {
		cfg := New()
		s.Require().NoError(cfg.LoadFile(s.write(name, content)), name)
		s.True(cfg.IsSet("network.compression"), name)

		var n networkSection
		s.Require().NoError(cfg.UnmarshalKey("network", &n), name)
		s.Equal(networkSection{Compression: "zlib", CompressionThreshold: 256}, n, name)
	}
}

func (s *ViperSuite) TestEnvOverridesDefault() {
	s.T().Setenv("MCPROTO_NETWORK_COMPRESSION_THRESHOLD", "512")

	cfg := New()
	cfg.SetDefault("network.compression", "none")
	cfg.SetDefault("network.compression-threshold", -1)

	// 环境变量只在按叶子键读取时生效，因此对整个配置做反序列化。
	var all struct {
		Network networkSection `mapstructure:"network"`
	}
	s.Require().NoError(cfg.Unmarshal(&all))
	s.Equal("none", all.Network.Compression)
	s.Equal(512, all.Network.CompressionThreshold)
}

func (s *ViperSuite) TestMissingFile() {
	cfg := New()
	s.Error(cfg.LoadFile(filepath.Join(s.dir, "absent.yaml")))
	s.False(cfg.IsSet("network"))

	var empty Config
	s.NoError(empty.Unmarshal(&struct{}{}))
	s.False(empty.IsSet("x"))
}

func TestViper(t *testing.T) {
	suite.Run(t, new(ViperSuite))
}
