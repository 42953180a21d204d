// internal/platform/ui/presenter.go
package ui

import "time"

// Presenter is the interface for human-facing CLI output. Encoded
// strings themselves always go to stdout untouched so they stay
// pipeable; the presenter only decorates around them.
type Presenter interface {
	// Header shows the tool banner
	Header(version string)

	// Info shows an informational message
	Info(msg string)

	// Warning shows a warning
	Warning(msg string)

	// Error shows an error message
	Error(msg string)

	// Success shows a success message
	Success(msg string)

	// Summary shows final batch statistics
	Summary(ok, failed int, duration time.Duration)
}

// NewPresenter returns a pterm presenter, or a silent one in quiet mode.
func NewPresenter(quiet bool) Presenter {
	if quiet {
		return &NoopPresenter{}
	}
	return &PTermPresenter{}
}

// NoopPresenter is an empty Presenter implementation that produces no
// output. Used for quiet or headless mode.
type NoopPresenter struct{}

// Header does nothing
func (n *NoopPresenter) Header(version string) {}

// Info does nothing
func (n *NoopPresenter) Info(msg string) {}

// Warning does nothing
func (n *NoopPresenter) Warning(msg string) {}

// Error does nothing
func (n *NoopPresenter) Error(msg string) {}

// Success does nothing
func (n *NoopPresenter) Success(msg string) {}

// Summary does nothing
func (n *NoopPresenter) Summary(ok, failed int, duration time.Duration) {}
