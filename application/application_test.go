package application

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/lk2023060901/mcproto-go/internal/network/codec"
	"github.com/lk2023060901/mcproto-go/internal/network/compressor"
	"github.com/lk2023060901/mcproto-go/internal/network/framer"
	"github.com/lk2023060901/mcproto-go/pkg/protocol/v578"
)

type ApplicationSuite struct {
	suite.Suite
	dir string
}

func (s *ApplicationSuite) SetupTest() {
	s.dir = s.T().TempDir()
	s.T().Setenv(configPathEnv, "")
}

func (s *ApplicationSuite) writeConfig(name, content string) string {
	path := filepath.Join(s.dir, name)
	s.Require().NoError(os.WriteFile(path, []byte(content), 0o600))
	return path
}

func (s *ApplicationSuite) TestDefaultsWhenDefaultFileMissing() {
	chdir(s.T(), s.dir)

	app := New()
	s.Require().NoError(app.RunWithArgs(nil))

	st := app.Settings()
	s.Equal("json", st.Describe.Format)
	s.Equal("-", st.Describe.Output)
	s.False(st.Describe.Group)
	s.Equal(compressor.AlgorithmZlib, st.Network.Compression)
	s.Equal(codec.DisabledThreshold, st.Network.CompressionThreshold)
	s.Equal(framer.DefaultMaxFrameSize, st.Network.MaxFrameSize)
}

func (s *ApplicationSuite) TestExplicitMissingFile() {
	app := New()
	err := app.RunWithArgs([]string{"--config", filepath.Join(s.dir, "absent.yaml")})
	s.Error(err)
	s.Contains(err.Error(), "absent.yaml")

	s.Error(New().RunWithArgs([]string{"--config"}))
}

func (s *ApplicationSuite) TestConfigFlagOverridesEnv() {
	envPath := s.writeConfig("env.yaml", "describe:\n  format: yaml\n")
	flagPath := s.writeConfig("flag.toml", "[describe]\nformat = \"toml\"\ngroup = true\n")
	s.T().Setenv(configPathEnv, envPath)

	app := New()
	s.Require().NoError(app.RunWithArgs(nil))
	s.Equal("yaml", app.Settings().Describe.Format)

	app = New()
	s.Require().NoError(app.RunWithArgs([]string{"--config=" + flagPath}))
	s.Equal("toml", app.Settings().Describe.Format)
	s.True(app.Settings().Describe.Group)
}

func (s *ApplicationSuite) TestNetworkSettingsAndEnvOverride() {
	path := s.writeConfig("net.yaml", `
network:
  compression: zstd
  compression-threshold: 256
  max-frame-size: 4096
`)
	s.T().Setenv("MCPROTO_NETWORK_MAX_UNCOMPRESSED_SIZE", "65536")

	app := New()
	s.Require().NoError(app.RunWithArgs([]string{"--config", path}))
	net := app.Settings().Network
	s.Equal(compressor.AlgorithmZstd, net.Compression)
	s.Equal(256, net.CompressionThreshold)
	s.Equal(4096, net.MaxFrameSize)
	s.Equal(65536, net.MaxUncompressedSize)

	opts, err := net.CodecOptions(v578.Registry())
	s.Require().NoError(err)
	s.True(opts.EnableCompression)
	s.Equal(256, opts.CompressionThreshold)
	s.Equal(compressor.AlgorithmZstd, opts.Compressor.Algorithm())

	c, err := codec.New(opts)
	s.Require().NoError(err)
	s.Equal(256, c.CompressionThreshold())
}

func (s *ApplicationSuite) TestCodecOptionsDisabledAndUnknown() {
	opts, err := NetworkConfig{Compression: compressor.AlgorithmNone, CompressionThreshold: -1}.CodecOptions(v578.Registry())
	s.Require().NoError(err)
	s.False(opts.EnableCompression)

	_, err = NetworkConfig{Compression: "lz4"}.CodecOptions(v578.Registry())
	s.Error(err)
}

func (s *ApplicationSuite) TestModuleLoggers() {
	path := s.writeConfig("log.yaml", `
logging:
  network:
    level: debug
    stdout: false
`)
	app := New()
	s.Require().NoError(app.RunWithArgs([]string{"--config", path}))
	s.NotNil(app.Logger("network"))
	s.NotSame(app.Logger("network"), app.Logger("unknown"))
	s.NotNil(app.Logger("unknown").Logger)
}

func (s *ApplicationSuite) TestGetenvBool() {
	s.T().Setenv("MCPROTO_TEST_BOOL", "on")
	s.True(getenvBool("MCPROTO_TEST_BOOL", false))
	s.T().Setenv("MCPROTO_TEST_BOOL", "maybe")
	s.True(getenvBool("MCPROTO_TEST_BOOL", true))
	s.Equal("x", getenvDefault("MCPROTO_TEST_UNSET", "x"))
}

func TestApplication(t *testing.T) {
	suite.Run(t, new(ApplicationSuite))
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
