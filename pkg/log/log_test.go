package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type LogSuite struct {
	suite.Suite

	buf     *bytes.Buffer
	oldL    *zap.Logger
	oldP    *ZapProperties
	oldRate RateLimiter
}

func (s *LogSuite) SetupTest() {
	s.oldL = L()
	s.oldP = _globalP.Load().(*ZapProperties)
	s.oldRate = R()

	s.buf = &bytes.Buffer{}
	cfg := &Config{Level: "debug", Format: FormatJSON, DisableTimestamp: true}
	lg, props, err := InitLoggerWithWriteSyncer(cfg, zapcore.AddSync(s.buf))
	s.Require().NoError(err)
	replaceLeveledLoggers(lg)
	ReplaceGlobals(lg, props)
}

func (s *LogSuite) TearDownTest() {
	replaceLeveledLoggers(s.oldL)
	ReplaceGlobals(s.oldL, s.oldP)
	SetRateLimiter(s.oldRate)
}

func (s *LogSuite) TestPacketFields() {
	Info("packet decoded",
		FieldState("play"),
		FieldDirection("clientbound"),
		FieldPacketID(0x21),
		FieldPacket("PlayServerKeepAlive"))

	out := s.buf.String()
	s.Contains(out, `"packet_id":"0x21"`)
	s.Contains(out, `"state":"play"`)
	s.Contains(out, `"packet":"PlayServerKeepAlive"`)
}

func (s *LogSuite) TestCtxLogger() {
	ctx := WithModule(context.Background(), "codec")
	ctx = WithFields(ctx, FieldComponent("framer"))
	Ctx(ctx).Warn("frame too large")

	out := s.buf.String()
	s.Contains(out, `"module":"codec"`)
	s.Contains(out, `"component":"framer"`)

	s.NotNil(Ctx(nil))
	s.NotNil(Ctx(context.Background()))
}

func (s *LogSuite) TestLevel() {
	SetLevel(zapcore.ErrorLevel)
	s.Equal(zapcore.ErrorLevel, GetLevel())
	Ctx(context.Background()).Info("dropped")
	s.NotContains(s.buf.String(), "dropped")
}

func (s *LogSuite) TestRatedLogging() {
	l := With(FieldModule("rated")).WithRateGroup("log_suite", 0.0001, 1)
	s.True(l.RatedWarn(1, "first"))
	s.False(l.RatedWarn(1, "second"))
	s.Contains(s.buf.String(), "first")
	s.NotContains(s.buf.String(), "second")

	SetRateLimiter(nil)
	s.True(RatedWarn(100, "unlimited"))
}

func (s *LogSuite) TestBinder() {
	var b Binder
	b.SetComponent("router")
	b.Logger().Info("bound by component")
	s.Contains(s.buf.String(), `"component":"router"`)

	custom := With(zap.String("conn", "c1"))
	b.SetLogger(custom)
	s.Same(custom, b.Logger())
}

func (s *LogSuite) TestLeveledLoggersBelowCoreLevel() {
	var out bytes.Buffer
	lg, props, err := InitLoggerWithWriteSyncer(&Config{Level: "warn", Format: FormatJSON}, zapcore.AddSync(&out))
	s.Require().NoError(err)

	replaceLeveledLoggers(lg)
	ReplaceGlobals(lg, props)
	s.NotContains(out.String(), "IncreaseLevel")

	Ctx(context.Background()).Info("below core")
	s.Empty(out.String())

	SetLevel(zapcore.ErrorLevel)
	Ctx(context.Background()).Warn("filtered")
	Ctx(context.Background()).Error("kept")
	s.NotContains(out.String(), "filtered")
	s.Contains(out.String(), "kept")
}

func (s *LogSuite) TestInitLoggerLevels() {
	_, props, err := InitLogger(&Config{Level: "trace"})
	s.Require().NoError(err)
	s.Equal(zapcore.DebugLevel, props.Level.Level())

	_, _, err = InitLogger(&Config{Level: "loud"})
	s.Error(err)
}

func TestLog(t *testing.T) {
	suite.Run(t, new(LogSuite))
}
