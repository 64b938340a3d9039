package cli

import (
	"fmt"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/lintcat/lintcat/internal/scanner"
)

// scanProgress implements scanner.Progress with a progress bar.
type scanProgress struct {
	quiet bool
	bar   *progressbar.ProgressBar
}

// newProgressReporter creates a progress reporter for scan commands.
func newProgressReporter(quiet bool) scanner.Progress {
	return &scanProgress{quiet: quiet}
}

func (p *scanProgress) OnDiscoveryComplete(files int) {
	if p.quiet {
		return
	}
	p.bar = progressbar.NewOptions(files,
		progressbar.OptionSetDescription("Scanning files"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("files/s"),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionOnCompletion(func() {
			fmt.Println()
		}),
	)
}

func (p *scanProgress) OnFileScanned(string) {
	if p.quiet || p.bar == nil {
		return
	}
	p.bar.Add(1)
}
