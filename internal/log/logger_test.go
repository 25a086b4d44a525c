package log

import (
	"bytes"
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"
)

// LoggerTestSuite tests the log package
type LoggerTestSuite struct {
	suite.Suite
	testOutput *bytes.Buffer
}

// SetupTest routes the logger to a buffer at info level
func (s *LoggerTestSuite) SetupTest() {
	s.testOutput = &bytes.Buffer{}
	s.Require().NoError(SetLevel("info"))
	SetOutput(s.testOutput)
}

// TearDownTest restores stderr output
func (s *LoggerTestSuite) TearDownTest() {
	s.Require().NoError(SetLevel("info"))
	SetOutput(os.Stderr)
}

func (s *LoggerTestSuite) TestInfoLog() {
	Info().Str("node", "C1").Msg("checking node")

	output := s.testOutput.String()
	s.Contains(output, "checking node")
	s.Contains(output, "INF")
	s.Contains(output, "node=C1")
}

func (s *LoggerTestSuite) TestWarnAndErrorLog() {
	Warn().Msg("routing overlaps")
	Error().Msg("cannot read workbook")

	output := s.testOutput.String()
	s.Contains(output, "WRN")
	s.Contains(output, "routing overlaps")
	s.Contains(output, "ERR")
	s.Contains(output, "cannot read workbook")
}

func (s *LoggerTestSuite) TestDebugSuppressedAtInfo() {
	Debug().Msg("hidden")
	s.NotContains(s.testOutput.String(), "hidden")
}

func (s *LoggerTestSuite) TestSetDebugMode() {
	SetDebugMode()
	Debug().Msg("visible")

	s.Contains(s.testOutput.String(), "visible")
	s.Equal(zerolog.DebugLevel, Logger.GetLevel())
}

func (s *LoggerTestSuite) TestSetLevel() {
	s.Require().NoError(SetLevel(" WARN "))
	Info().Msg("quiet")
	Warn().Msg("loud")

	output := s.testOutput.String()
	s.NotContains(output, "quiet")
	s.Contains(output, "loud")

	s.Require().NoError(SetLevel(""))
	s.Equal(zerolog.InfoLevel, Logger.GetLevel())

	s.Error(SetLevel("chatty"))
}

func (s *LoggerTestSuite) TestSetOutputKeepsLevel() {
	SetDebugMode()
	other := &bytes.Buffer{}
	SetOutput(other)

	Debug().Msg("still debug")
	s.Contains(other.String(), "still debug")
}

// TestLoggerSuite runs the logger test suite
func TestLoggerSuite(t *testing.T) {
	suite.Run(t, new(LoggerTestSuite))
}
