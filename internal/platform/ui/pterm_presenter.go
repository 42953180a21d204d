// internal/platform/ui/pterm_presenter.go
package ui

import (
	"fmt"
	"os"
	"time"

	"github.com/pterm/pterm"
)

// PTermPresenter implements Presenter using the pterm library. All
// decoration goes to stderr so encoded payloads on stdout stay clean.
type PTermPresenter struct{}

// Header shows the tool banner.
func (p *PTermPresenter) Header(version string) {
	pterm.DefaultBasicText.WithWriter(os.Stderr).
		Println(pterm.LightCyan("qrpayload ") + pterm.Gray(version))
}

// Info shows an informational message.
func (p *PTermPresenter) Info(msg string) {
	pterm.Info.WithWriter(os.Stderr).Println(msg)
}

// Warning shows a warning.
func (p *PTermPresenter) Warning(msg string) {
	pterm.Warning.WithWriter(os.Stderr).Println(msg)
}

// Error shows an error message.
func (p *PTermPresenter) Error(msg string) {
	pterm.Error.WithWriter(os.Stderr).Println(msg)
}

// Success shows a success message.
func (p *PTermPresenter) Success(msg string) {
	pterm.Success.WithWriter(os.Stderr).Println(msg)
}

// Summary shows final batch statistics.
func (p *PTermPresenter) Summary(ok, failed int, duration time.Duration) {
	line := fmt.Sprintf("%d encoded, %d failed in %s", ok, failed, duration.Round(time.Millisecond))
	if failed > 0 {
		pterm.Warning.WithWriter(os.Stderr).Println(line)
		return
	}
	pterm.Success.WithWriter(os.Stderr).Println(line)
}
