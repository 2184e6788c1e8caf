package profiling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatMs(t *testing.T) {
	assert.Equal(t, "4ms", formatMs(4*time.Millisecond))
	assert.Equal(t, "4.2ms", formatMs(4200*time.Microsecond))
	assert.Equal(t, "0ms", formatMs(0))
}

func TestTrackAndSumWithPrefix(t *testing.T) {
	ResetFrame()
	t.Cleanup(ResetFrame)

	mu.Lock()
	frameTotals["drawarrays.Draw"] = 3 * time.Millisecond
	frameTotals["drawarrays.Finish"] = 1 * time.Millisecond
	frameTotals["renderer.Render"] = 5 * time.Millisecond
	mu.Unlock()

	Track("drawarrays.DrawTemp")()

	assert.GreaterOrEqual(t, SumWithPrefix("drawarrays."), 4*time.Millisecond)
	assert.Equal(t, 5*time.Millisecond, SumWithPrefix("renderer."))
	assert.Equal(t, "renderer.Render:5ms, drawarrays.Draw:3ms", TopN(2))

	ResetFrame()
	assert.Empty(t, Snapshot())
}
