package application

import (
	"os"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/lk2023060901/mcproto-go/internal/network/codec"
	"github.com/lk2023060901/mcproto-go/internal/network/compressor"
	"github.com/lk2023060901/mcproto-go/internal/network/framer"
	zlog "github.com/lk2023060901/mcproto-go/pkg/log"
	"github.com/lk2023060901/mcproto-go/pkg/protocol"
	zviper "github.com/lk2023060901/mcproto-go/pkg/util/viper"
)

const (
	defaultConfigPath = "./config.yaml"
	configPathEnv     = "MCPROTO_CONFIG_FILE_PATH"
)

// Application 为 mcproto 工具进程的运行时容器，负责配置加载与日志初始化。
type Application struct {
	cfg      *zviper.Config
	settings Settings
	loggers  map[string]*zlog.MLogger
}

// Settings 为配置文件中工具关心的部分，未出现的键取默认值。
type Settings struct {
	Describe DescribeConfig `mapstructure:"describe"`
	Network  NetworkConfig  `mapstructure:"network"`
}

// DescribeConfig 控制协议描述的输出。
type DescribeConfig struct {
	// Format 为输出格式：json、yaml、toml 或 cbor。
	Format string `mapstructure:"format"`
	// Output 为输出文件路径，为空或 "-" 时写到标准输出。
	Output string `mapstructure:"output"`
	// Group 为 true 时按状态与方向分组输出。
	Group bool `mapstructure:"group"`
}

// NetworkConfig 为传输链路参数。
type NetworkConfig struct {
	// Compression 为压缩算法：none、zlib 或 zstd。
	Compression      string `mapstructure:"compression"`
	CompressionLevel int    `mapstructure:"compression-level"`
	// CompressionThreshold 为负数时不启用压缩格式。
	CompressionThreshold int `mapstructure:"compression-threshold"`
	MaxFrameSize         int `mapstructure:"max-frame-size"`
	MaxUncompressedSize  int `mapstructure:"max-uncompressed-size"`
}

func setDefaults(cfg *zviper.Config) {
	cfg.SetDefault("describe.format", "json")
	cfg.SetDefault("describe.output", "-")
	cfg.SetDefault("describe.group", false)

	cfg.SetDefault("network.compression", compressor.AlgorithmZlib)
	cfg.SetDefault("network.compression-level", 0)
	cfg.SetDefault("network.compression-threshold", codec.DisabledThreshold)
	cfg.SetDefault("network.max-frame-size", framer.DefaultMaxFrameSize)
	cfg.SetDefault("network.max-uncompressed-size", codec.DefaultMaxUncompressedSize)
}

// CodecOptions 根据配置构造传输链路参数。
func (n NetworkConfig) CodecOptions(registry *protocol.Registry) (codec.Options, error) {
	comp, err := compressor.New(n.Compression, n.CompressionLevel)
	if err != nil {
		return codec.Options{}, err
	}
	return codec.Options{
		Registry:             registry,
		Framer:               framer.NewLengthPrefixedFramer(n.MaxFrameSize),
		Compressor:           comp,
		EnableCompression:    n.CompressionThreshold >= 0,
		CompressionThreshold: n.CompressionThreshold,
		MaxUncompressedSize:  n.MaxUncompressedSize,
	}, nil
}

// New 创建一个新的 Application。
func New() *Application {
	return &Application{}
}

// Run 为 Application 的入口。
// 它解析 os.Args 并按以下优先级确定配置文件路径：
//  1. 默认值：./config.yaml（文件不存在时使用默认配置）
//  2. 环境变量：MCPROTO_CONFIG_FILE_PATH
//  3. 命令行：--config <path> 或 --config=<path>
func (a *Application) Run() error {
	return a.RunWithArgs(os.Args[1:])
}

// RunWithArgs 与 Run 相同，但从 args 而不是 os.Args 解析 --config。
func (a *Application) RunWithArgs(args []string) error {
	cfg, err := a.loadConfig(args)
	if err != nil {
		return err
	}
	a.cfg = cfg

	if err := cfg.Unmarshal(&a.settings); err != nil {
		return errors.Wrap(err, "decode settings")
	}
	if err := a.initLogging(); err != nil {
		return err
	}
	return nil
}

// Config 返回已加载的配置。
func (a *Application) Config() *zviper.Config {
	return a.cfg
}

// Settings 返回配置中的工具参数。
func (a *Application) Settings() Settings {
	return a.settings
}

// Logger 返回配置中声明的命名 Logger，未知名字回退到全局 Logger。
func (a *Application) Logger(name string) *zlog.MLogger {
	if a.loggers == nil {
		return &zlog.MLogger{Logger: zlog.L()}
	}
	if lg, ok := a.loggers[name]; ok && lg != nil {
		return lg
	}
	return &zlog.MLogger{Logger: zlog.L()}
}

// loadConfig 解析配置文件路径并通过 viper 封装加载。
func (a *Application) loadConfig(args []string) (*zviper.Config, error) {
	configPath := defaultConfigPath
	explicit := false

	if envPath := os.Getenv(configPathEnv); envPath != "" {
		configPath = envPath
		explicit = true
	}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--config" || arg == "-config" {
			if i+1 >= len(args) {
				return nil, errors.New("missing value after --config")
			}
			configPath = args[i+1]
			explicit = true
			i++
			continue
		}
		if val, ok := strings.CutPrefix(arg, "--config="); ok && val != "" {
			configPath = val
			explicit = true
		}
	}

	cfg := zviper.New()
	setDefaults(cfg)

	if _, err := os.Stat(configPath); err != nil && !explicit && os.IsNotExist(err) {
		return cfg, nil
	}
	if err := cfg.LoadFile(configPath); err != nil {
		return nil, errors.Wrapf(err, "failed to load config file %q", configPath)
	}
	return cfg, nil
}

// initLogging 初始化全局 Logger 与模块 Logger。
func (a *Application) initLogging() error {
	if err := a.initGlobalLoggerFromEnv(); err != nil {
		return err
	}
	if err := a.initModuleLoggersFromConfig(); err != nil {
		return err
	}
	return nil
}

// initGlobalLoggerFromEnv 根据 MCPROTO_LOG_* 环境变量配置进程级 Logger。
//
// 优先级：
//   - MCPROTO_LOG_ENABLE: "1"/"true" 开启输出，其余视为关闭。
//   - MCPROTO_LOG_LEVEL: 日志级别（默认 "info"）。
//   - MCPROTO_LOG_STDOUT: 是否输出到标准输出（默认 false）。
//   - MCPROTO_LOG_FILE_DIR: 日志目录。
//   - MCPROTO_LOG_FILE: 日志文件名（为空表示不写文件）。
//   - MCPROTO_LOG_FORMAT: 日志格式（"console" 或 "json"，默认 "console"）。
func (a *Application) initGlobalLoggerFromEnv() error {
	enabled := getenvBool("MCPROTO_LOG_ENABLE", false)

	cfg := &zlog.Config{
		Level:               getenvDefault("MCPROTO_LOG_LEVEL", "info"),
		Format:              getenvDefault("MCPROTO_LOG_FORMAT", zlog.FormatConsole),
		Stdout:              getenvBool("MCPROTO_LOG_STDOUT", false),
		DisableErrorVerbose: true,
		File: zlog.FileLogConfig{
			RootPath: getenvDefault("MCPROTO_LOG_FILE_DIR", ""),
			Filename: getenvDefault("MCPROTO_LOG_FILE", ""),
		},
	}

	// 未开启时所有输出都丢弃。
	if !enabled {
		cfg.Stdout = false
		cfg.File.Filename = ""
	}

	logger, props, err := zlog.InitLogger(cfg)
	if err != nil {
		return errors.Wrap(err, "init global logger from env")
	}
	zlog.ReplaceGlobals(logger, props)
	return nil
}

// initModuleLoggersFromConfig 根据配置中的 "logging" 段创建命名 Logger。
//
// 示例：
//
//	logging:
//	  network:
//	    level: debug
//	    stdout: true
//	    file:
//	      rootpath: ./logs
//	      filename: network.log
func (a *Application) initModuleLoggersFromConfig() error {
	if a.cfg == nil {
		return nil
	}

	raw := make(map[string]zlog.Config)
	if err := a.cfg.UnmarshalKey("logging", &raw); err != nil {
		return err
	}
	if len(raw) == 0 {
		return nil
	}

	a.loggers = make(map[string]*zlog.MLogger, len(raw))
	for name, lc := range raw {
		cfgCopy := lc
		logger, _, err := zlog.InitLogger(&cfgCopy)
		if err != nil {
			return errors.Wrapf(err, "init module logger %q", name)
		}
		a.loggers[name] = &zlog.MLogger{Logger: logger.With(zlog.FieldModule(name))}
	}

	return nil
}

func getenvDefault(key, def string) string {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return def
	}
	return val
}

func getenvBool(key string, def bool) bool {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return def
	}
	switch strings.ToLower(val) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return def
	}
}
