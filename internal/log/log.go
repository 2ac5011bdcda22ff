package log

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelError
	LevelNone
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelError:
		return "ERROR"
	case LevelNone:
		return "NONE"
	default:
		return "UNKNOWN"
	}
}

func LevelFromString(s string) Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return LevelDebug
	case "INFO":
		return LevelInfo
	case "ERROR":
		return LevelError
	case "NONE":
		return LevelNone
	default:
		return LevelInfo
	}
}

// FromEnv reads the RANGEBAR_LOG environment variable. Unset or
// unrecognized values fall back to INFO.
func FromEnv() Level {
	return LevelFromString(os.Getenv("RANGEBAR_LOG"))
}

// Logger is a thin leveled facade over logrus. Callers only format;
// the backend owns output and decoration.
type Logger struct {
	backend *logrus.Logger
	level   Level
}

func New(out io.Writer, level Level) *Logger {
	backend := logrus.New()
	backend.SetOutput(out)
	backend.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	// Filtering happens in this wrapper; let everything through below.
	backend.SetLevel(logrus.DebugLevel)
	return &Logger{backend: backend, level: level}
}

func (l *Logger) Debugf(format string, v ...interface{}) {
	if l.level <= LevelDebug {
		l.backend.Debugf(format, v...)
	}
}

func (l *Logger) Infof(format string, v ...interface{}) {
	if l.level <= LevelInfo {
		l.backend.Infof(format, v...)
	}
}

func (l *Logger) Warnf(format string, v ...interface{}) {
	if l.level <= LevelInfo {
		l.backend.Warnf(format, v...)
	}
}

func (l *Logger) Errorf(format string, v ...interface{}) {
	if l.level <= LevelError {
		l.backend.Errorf(format, v...)
	}
}

func (l *Logger) SetLevel(level Level) {
	l.level = level
}

func (l *Logger) Level() Level {
	return l.level
}
