// Package drawtest provides a drawarrays.Backend that records what it is
// asked to draw, for tests that run without a graphics context.
package drawtest

import "mini-bz/internal/drawarrays"

// Pointer is one attribute binding as passed to Backend.Pointer.
type Pointer struct {
	Size   int
	Stride int
	Offset int
}

// Call is one recorded DrawArrays call with the state it saw.
type Call struct {
	Mode     drawarrays.Mode
	First    int
	Count    int
	Enabled  [drawarrays.NumChannels]bool
	Pointers [drawarrays.NumChannels]Pointer
	Color    [4]float32
	// Data is a copy of the interleaved buffer bound to the vertex channel.
	Data []float32
}

// Vertex returns the position of vertex i in the recorded data.
func (c Call) Vertex(i int) [3]float32 {
	p := c.Pointers[drawarrays.ChannelVertex]
	base := i*p.Stride + p.Offset
	return [3]float32(c.Data[base : base+3])
}

// Attr returns the values of ch for vertex i in the recorded data.
func (c Call) Attr(ch drawarrays.Channel, i int) []float32 {
	p := c.Pointers[ch]
	base := i*p.Stride + p.Offset
	return c.Data[base : base+p.Size]
}

// Recorder implements drawarrays.Backend.
type Recorder struct {
	Enabled [drawarrays.NumChannels]bool
	Color   [4]float32
	Calls   []Call
	// Toggles counts SetChannel calls.
	Toggles int

	pointers [drawarrays.NumChannels]Pointer
	data     []float32
}

// NewRecorder returns a Recorder whose current color is opaque white.
func NewRecorder() *Recorder {
	return &Recorder{Color: [4]float32{1, 1, 1, 1}}
}

func (r *Recorder) SetChannel(ch drawarrays.Channel, enabled bool) {
	r.Enabled[ch] = enabled
	r.Toggles++
}

func (r *Recorder) SetCurrentColor(red, green, blue, alpha float32) {
	r.Color = [4]float32{red, green, blue, alpha}
}

func (r *Recorder) Pointer(ch drawarrays.Channel, size, stride, offset int, data []float32) {
	r.pointers[ch] = Pointer{Size: size, Stride: stride, Offset: offset}
	if ch == drawarrays.ChannelVertex {
		r.data = data
	}
}

func (r *Recorder) DrawArrays(mode drawarrays.Mode, first, count int) {
	r.Calls = append(r.Calls, Call{
		Mode:     mode,
		First:    first,
		Count:    count,
		Enabled:  r.Enabled,
		Pointers: r.pointers,
		Color:    r.Color,
		Data:     append([]float32(nil), r.data...),
	})
}

// Last returns the most recent call. It panics if nothing was drawn.
func (r *Recorder) Last() Call {
	return r.Calls[len(r.Calls)-1]
}

// Reset forgets recorded calls but keeps channel state.
func (r *Recorder) Reset() {
	r.Calls = nil
	r.Toggles = 0
}

var _ drawarrays.Backend = (*Recorder)(nil)
