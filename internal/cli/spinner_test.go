package cli

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

func TestSpinnerRendersMessage(t *testing.T) {
	var buf bytes.Buffer
	s := newSpinner(context.Background(), &buf, func() string { return "working" })

	s.Start()
	s.Stop()

	out := buf.String()
	if !strings.Contains(out, "working") {
		t.Errorf("spinner output = %q, want it to contain the message", out)
	}
	if !strings.HasSuffix(out, "\r\033[K") {
		t.Errorf("spinner output = %q, want it to end with a line clear", out)
	}
}

func TestSpinnerPollsLiveProgress(t *testing.T) {
	var pages atomic.Int64
	var buf bytes.Buffer
	s := newSpinner(context.Background(), &buf, func() string {
		return fmt.Sprintf("%d/5 pages", pages.Load())
	})

	s.Start()
	pages.Store(5)
	// Several frame intervals, so at least one frame sees the new count.
	time.Sleep(5 * spinnerInterval)
	s.Stop()

	out := buf.String()
	if !strings.Contains(out, "0/5 pages") {
		t.Errorf("spinner output = %q, want the initial frame's count", out)
	}
	if !strings.Contains(out, "5/5 pages") {
		t.Errorf("spinner output = %q, want a later frame's count", out)
	}
}

func TestSpinnerStopIsIdempotent(t *testing.T) {
	var buf bytes.Buffer
	s := newSpinner(context.Background(), &buf, func() string { return "working" })

	s.Start()
	s.Stop()
	s.Stop() // must not panic or block
}

func TestSpinnerStopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var buf bytes.Buffer
	s := newSpinner(ctx, &buf, func() string { return "working" })

	s.Start()
	cancel()

	select {
	case <-s.exited:
	case <-time.After(2 * time.Second):
		t.Fatal("spinner goroutine did not exit after context cancel")
	}

	s.Stop()
}
