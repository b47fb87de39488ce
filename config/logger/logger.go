package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

const timeFormat = "2006-01-02 15:04:05.000"

type CommonLogger struct {
	Info    zerolog.Logger
	Error   zerolog.Logger
	Trace   zerolog.Logger
	Warning zerolog.Logger
	Stream  zerolog.Logger
}

// AppLogger splits output by surface: Http for request/database work, WS for the live
// delivery path (connections, pushes). Each level goes to the console and its own rotated file.
type AppLogger struct {
	Http CommonLogger
	WS   CommonLogger
}

func NewLogger(dir string) *AppLogger {
	if dir == "" {
		dir = "logs"
	}
	_ = os.MkdirAll(dir, 0755)

	zerolog.TimeFieldFormat = timeFormat

	consoleWriter := consoleConfWriter()

	log := &AppLogger{}
	log.Http = newCommonLogger(consoleWriter, dir, "")
	log.WS = newCommonLogger(consoleWriter, dir, "ws.")
	return log
}

// NewNop discards everything; used by tests and tools.
func NewNop() *AppLogger {
	nop := zerolog.Nop()
	common := CommonLogger{Info: nop, Error: nop, Trace: nop, Warning: nop, Stream: nop}
	return &AppLogger{Http: common, WS: common}
}

func newCommonLogger(console zerolog.ConsoleWriter, dir, prefix string) CommonLogger {
	file := func(name string) string {
		return filepath.Join(dir, prefix+name+".log")
	}
	return CommonLogger{
		Stream:  newMultiLogger(console, file("stream")),
		Info:    newMultiLogger(console, file("info")),
		Trace:   newMultiLogger(console, file("trace")),
		Warning: newMultiLogger(console, file("warning")),
		Error:   newMultiLogger(console, file("error")),
	}
}

func newMultiLogger(console zerolog.ConsoleWriter, filepath string) zerolog.Logger {
	multi := io.MultiWriter(console, fileConsoleWriter(filepath))

	return zerolog.New(multi).With().Timestamp().Logger()
}

func consoleConfWriter() zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:             os.Stdout,
		TimeFormat:      timeFormat,
		NoColor:         false,
		FormatTimestamp: bracketed,
		FormatLevel:     upperBracketed,
		FormatMessage: func(i interface{}) string {
			return fmt.Sprintf("%s", i)
		},
	}
}

func fileConsoleWriter(filename string) io.Writer {
	return zerolog.ConsoleWriter{
		Out: &lumberjack.Logger{
			Filename:   filename,
			MaxSize:    5,
			MaxAge:     20,
			MaxBackups: 5,
			Compress:   true,
		},
		NoColor:         true,
		TimeFormat:      timeFormat,
		FormatTimestamp: bracketed,
		FormatLevel:     upperBracketed,
		FormatMessage: func(i interface{}) string {
			return fmt.Sprintf("%s", i)
		},
		FormatFieldName: func(i interface{}) string {
			return fmt.Sprintf("%s=", i)
		},
		FormatFieldValue: func(i interface{}) string {
			return fmt.Sprintf("%v", i)
		},
	}
}

func bracketed(i interface{}) string {
	return fmt.Sprintf("[%s]", i)
}

func upperBracketed(i interface{}) string {
	s, _ := i.(string)
	return fmt.Sprintf("[%s]", strings.ToUpper(s))
}
