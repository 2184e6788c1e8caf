package frame

import (
	"testing"
	"time"

	"mini-bz/internal/config"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	t      time.Time
	slept  time.Duration
	sleeps int
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) sleep(d time.Duration) {
	c.sleeps++
	c.slept += d
	c.t = c.t.Add(d)
}

// spinning advances the clock a little on every read
func (c *fakeClock) spinningNow() time.Time {
	c.t = c.t.Add(50 * time.Microsecond)
	return c.t
}

func withLimit(t *testing.T, fps int) {
	t.Helper()
	prev := config.GetFPSLimit()
	config.SetFPSLimit(fps)
	t.Cleanup(func() { config.SetFPSLimit(prev) })
}

func TestUnlimitedNeverSleeps(t *testing.T) {
	withLimit(t, 0)
	clk := &fakeClock{t: time.Unix(0, 0)}
	l := &Limiter{now: clk.now, sleep: clk.sleep}
	for i := 0; i < 3; i++ {
		l.Wait()
	}
	assert.Zero(t, clk.sleeps)
	assert.True(t, l.next.IsZero())
}

func TestWaitPacesFrames(t *testing.T) {
	withLimit(t, 100)
	clk := &fakeClock{t: time.Unix(0, 0)}
	l := &Limiter{now: clk.spinningNow, sleep: clk.sleep}

	start := clk.t
	for i := 0; i < 10; i++ {
		l.Wait()
	}
	elapsed := clk.t.Sub(start)
	assert.GreaterOrEqual(t, elapsed, 100*time.Millisecond)
	assert.Less(t, elapsed, 101*time.Millisecond)
}

func TestLateFrameResyncs(t *testing.T) {
	withLimit(t, 100)
	clk := &fakeClock{t: time.Unix(0, 0)}
	l := &Limiter{now: clk.spinningNow, sleep: clk.sleep}

	l.Wait()
	clk.t = clk.t.Add(time.Second)
	l.Wait()
	assert.Equal(t, clk.t.Add(10*time.Millisecond), l.next)
}

func TestCounter(t *testing.T) {
	var c Counter
	t0 := time.Unix(100, 0)
	for i := 0; i < 59; i++ {
		assert.False(t, c.Tick(t0.Add(time.Duration(i)*16*time.Millisecond)))
	}
	assert.True(t, c.Tick(t0.Add(time.Second)))
	assert.Equal(t, 60, c.Rate())
}
