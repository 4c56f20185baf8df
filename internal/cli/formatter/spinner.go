package formatter

import (
	"fmt"
	"sync"
	"time"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const spinnerInterval = 80 * time.Millisecond

// Spinner animates a braille spinner next to a label on the current
// terminal line. Used while a question is out at the model.
type Spinner struct {
	label string

	mu   sync.Mutex
	stop chan struct{}
	done chan struct{}
}

func NewSpinner(label string) *Spinner {
	return &Spinner{
		label: label,
		stop:  make(chan struct{}),
		done:  make(chan struct{}),
	}
}

// Start animates until Stop is called.
func (s *Spinner) Start() {
	go s.run()
}

func (s *Spinner) run() {
	defer close(s.done)
	ticker := time.NewTicker(spinnerInterval)
	defer ticker.Stop()

	for frame := 0; ; frame++ {
		select {
		case <-s.stop:
			fmt.Print("\r\033[K")
			return
		case <-ticker.C:
			glyph := spinnerFrames[frame%len(spinnerFrames)]
			fmt.Printf("\r  %s %s", StylePurple.Render(glyph), Dim(s.label))
		}
	}
}

// Stop halts the animation and clears the line. Safe to call twice.
func (s *Spinner) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	select {
	case <-s.stop:
		return
	default:
		close(s.stop)
	}
	<-s.done
}

// StartSpinner starts a spinner and returns its stop function.
func StartSpinner(label string) func() {
	s := NewSpinner(label)
	s.Start()
	return s.Stop
}
