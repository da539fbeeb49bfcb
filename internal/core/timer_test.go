package core

import (
	"testing"
	"time"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }
func newTestStep(interval time.Duration) (*FixedStep, *fakeClock) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	fs := NewFixedStep(interval)
	fs.now = clock.now
	return fs, clock
}

func TestFixedStepFiresOncePerInterval(t *testing.T) {
	fs, clock := newTestStep(100 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("first call should fire")
	}
	fired := 0
	for i := 0; i < 30; i++ {
		clock.advance(10 * time.Millisecond)
		if fs.ShouldStep() {
			fired++
		}
	}
	if fired != 3 {
		t.Fatalf("fired %d times in 300ms, expected 3", fired)
	}
}

func TestFixedStepReset(t *testing.T) {
	fs, clock := newTestStep(50 * time.Millisecond)
	fs.Reset()
	if fs.ShouldStep() {
		t.Fatal("fired right after Reset")
	}
	clock.advance(49 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("fired before a full interval")
	}
	clock.advance(time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("did not fire after a full interval")
	}
}

func TestFixedStepDoesNotBurstAfterStall(t *testing.T) {
	fs, clock := newTestStep(10 * time.Millisecond)
	fs.Reset()
	clock.advance(time.Second)
	fired := 0
	for i := 0; i < 5; i++ {
		if fs.ShouldStep() {
			fired++
		}
	}
	if fired > 2 {
		t.Fatalf("fired %d times after a stall, expected at most 2", fired)
	}
}

func TestFixedStepSetInterval(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.Interval() != time.Second {
		t.Fatalf("interval %v, expected the 1s fallback", fs.Interval())
	}
	fs.SetInterval(250 * time.Millisecond)
	if fs.Interval() != 250*time.Millisecond {
		t.Fatalf("interval %v", fs.Interval())
	}
}
