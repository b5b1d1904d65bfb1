package cli

import (
	"time"

	"github.com/charmbracelet/log"
)

// progress tracks the start time of an operation and logs completion with elapsed duration.
// It is safe for sequential use by a single goroutine; concurrent calls to done will race.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker that captures the current time as start.
// The returned progress should call done when the operation completes.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// The duration is rounded to the nearest millisecond.
// Example output: "Loaded 2315 words (0.012s)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}
