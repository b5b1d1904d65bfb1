package cli

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"
)

// Spinner provides a simple progress indicator on stderr.
type Spinner struct {
	message string
	done    chan struct{}
	stopped chan struct{}
	frames  []string
	mu      sync.Mutex
}

// newSpinner creates a new spinner with the given message.
func newSpinner(message string) *Spinner {
	return &Spinner{
		message: message,
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
		frames:  []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"},
	}
}

// Start begins the spinner animation.
func (s *Spinner) Start() {
	go func() {
		defer close(s.stopped)
		ticker := time.NewTicker(80 * time.Millisecond)
		defer ticker.Stop()

		i := 0
		for {
			select {
			case <-s.done:
				return
			case <-ticker.C:
				frame := s.frames[i%len(s.frames)]
				s.mu.Lock()
				fmt.Fprintf(os.Stderr, "\r%s %s", styleIconSpinner.Render(frame), StyleDim.Render(s.message))
				s.mu.Unlock()
				i++
			}
		}
	}()
}

// Stop stops the spinner and clears the line.
func (s *Spinner) Stop() {
	select {
	case <-s.done:
	default:
		close(s.done)
	}
	<-s.stopped

	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(os.Stderr, "\r%s\r", strings.Repeat(" ", len(s.message)+4))
}
