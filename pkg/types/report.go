package types

// Reporter delivers user-visible messages from operations. Implementations
// route info messages to the host's status area and warnings to wherever the
// host surfaces problems. Operations report and cancel instead of failing,
// so a Reporter is the only channel for user-input problems.
type Reporter interface {
	Info(format string, args ...any)
	Warning(format string, args ...any)
}

// NopReporter discards all messages. Useful in tests and batch contexts.
type NopReporter struct{}

// Info implements Reporter.
func (NopReporter) Info(format string, args ...any) {}

// Warning implements Reporter.
func (NopReporter) Warning(format string, args ...any) {}
