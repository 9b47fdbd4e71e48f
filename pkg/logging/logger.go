package logging

// Logger is the logging capability handed to components. It is scoped to a
// subsystem so call sites don't repeat it.
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(err error, format string, args ...interface{})
}

// ForSubsystem returns a Logger writing through the package-level sinks.
func ForSubsystem(subsystem string) Logger {
	return subsystemLogger{subsystem: subsystem}
}

// Discard returns a Logger that drops everything.
func Discard() Logger {
	return discardLogger{}
}

type subsystemLogger struct {
	subsystem string
}

func (l subsystemLogger) Debug(format string, args ...interface{}) {
	Debug(l.subsystem, format, args...)
}

func (l subsystemLogger) Info(format string, args ...interface{}) {
	Info(l.subsystem, format, args...)
}

func (l subsystemLogger) Warn(format string, args ...interface{}) {
	Warn(l.subsystem, format, args...)
}

func (l subsystemLogger) Error(err error, format string, args ...interface{}) {
	Error(l.subsystem, err, format, args...)
}

type discardLogger struct{}

func (discardLogger) Debug(string, ...interface{})        {}
func (discardLogger) Info(string, ...interface{})         {}
func (discardLogger) Warn(string, ...interface{})         {}
func (discardLogger) Error(error, string, ...interface{}) {}
