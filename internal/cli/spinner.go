package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// spinnerInterval is the animation frame rate.
const spinnerInterval = 120 * time.Millisecond

// spinnerFrames are the glyphs cycled while work is in flight.
var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Spinner animates a single-line progress indicator for long generation
// runs. The message callback is re-evaluated on every frame, so it can
// report live counters (pages rendered so far) from work happening on the
// main goroutine. The callback must therefore be safe to call
// concurrently with that work.
type Spinner struct {
	message func() string
	out     io.Writer
	ctx     context.Context
	done    chan struct{}
	exited  chan struct{}
	stop    sync.Once
}

// newSpinner creates a spinner writing to out. A nil out defaults to
// stdout.
func newSpinner(ctx context.Context, out io.Writer, message func() string) *Spinner {
	if out == nil {
		out = os.Stdout
	}
	return &Spinner{
		message: message,
		out:     out,
		ctx:     ctx,
		done:    make(chan struct{}),
		exited:  make(chan struct{}),
	}
}

// Start draws the first frame and begins animating in the background.
// The animation stops on Stop or when the context is cancelled.
func (s *Spinner) Start() {
	s.render(0)

	go func() {
		defer close(s.exited)
		ticker := time.NewTicker(spinnerInterval)
		defer ticker.Stop()

		for frame := 1; ; frame++ {
			select {
			case <-s.done:
				return
			case <-s.ctx.Done():
				return
			case <-ticker.C:
				s.render(frame)
			}
		}
	}()
}

// render overwrites the current line with the next frame and message.
func (s *Spinner) render(frame int) {
	glyph := styleIconSpinner.Render(spinnerFrames[frame%len(spinnerFrames)])
	fmt.Fprintf(s.out, "\r\033[K%s %s", glyph, s.message())
}

// Stop halts the animation, waits for the animation goroutine to exit,
// and clears the progress line. Safe to call more than once.
func (s *Spinner) Stop() {
	s.stop.Do(func() {
		close(s.done)
		<-s.exited
		fmt.Fprint(s.out, "\r\033[K")
	})
}
