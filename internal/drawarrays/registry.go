package drawarrays

import (
	"log/slog"

	"github.com/google/btree"
)

// Handle identifies a named array. InvalidHandle is never issued.
type Handle uint32

const InvalidHandle Handle = 0

// Record is a named array as stored by the registry.
type Record struct {
	UsesColor    bool
	UsesTexCoord bool
	UsesNormal   bool
	VertexCount  int

	buffer   []float32
	finished bool
}

// Finished reports whether the array's construction session was closed.
func (rec *Record) Finished() bool { return rec.finished }

// Buffer returns the interleaved data, VertexCount*Stride floats.
// Callers must not modify it.
func (rec *Record) Buffer() []float32 { return rec.buffer }

func (rec *Record) attr(i, size, offset int) []float32 {
	base := i*Stride + offset
	return rec.buffer[base : base+size]
}

// Color returns the packed color of vertex i.
func (rec *Record) Color(i int) [4]float32 {
	return [4]float32(rec.attr(i, ColorSize, ColorOffset))
}

// TexCoord returns the packed texture coordinate of vertex i.
func (rec *Record) TexCoord(i int) [2]float32 {
	return [2]float32(rec.attr(i, TexCoordSize, TexCoordOffset))
}

// Normal returns the packed normal of vertex i.
func (rec *Record) Normal(i int) [3]float32 {
	return [3]float32(rec.attr(i, NormalSize, NormalOffset))
}

// Vertex returns the packed position of vertex i.
func (rec *Record) Vertex(i int) [3]float32 {
	return [3]float32(rec.attr(i, VertexSize, VertexOffset))
}

// Ref is a handle paired with the generation of its slot, so a cached
// reference can tell when the handle was deleted and reissued.
type Ref struct {
	Handle Handle
	Gen    uint32
}

type slot struct {
	rec  Record
	gen  uint32
	live bool
}

// Stats counts draw work since the last ResetStats.
type Stats struct {
	DrawCalls int
	Vertices  int
}

// Registry owns the named arrays, the single construction session and
// the backend draws are issued to. It is not safe for concurrent use;
// like the graphics context behind it, it belongs to the render thread.
type Registry struct {
	slots []*slot
	free  *btree.BTreeG[Handle]
	live  int

	backend    Backend
	validation Validation
	log        *slog.Logger

	pen     *Builder
	scratch attribs
	stats   Stats
}

// Option configures a Registry.
type Option func(*Registry)

// WithValidation overrides DefaultValidation.
func WithValidation(v Validation) Option {
	return func(r *Registry) { r.validation = v }
}

// WithLogger sets the logger used for lifecycle events.
func WithLogger(l *slog.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.log = l
		}
	}
}

// NewRegistry creates an empty registry drawing to backend.
// A nil backend is replaced by Discard.
func NewRegistry(backend Backend, opts ...Option) *Registry {
	if backend == nil {
		backend = Discard
	}
	r := &Registry{
		free:       btree.NewOrderedG[Handle](8),
		backend:    backend,
		validation: DefaultValidation,
		log:        slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Validation returns the active validation mode.
func (r *Registry) Validation() Validation { return r.validation }

// Create issues the smallest unused handle and registers an empty,
// unfinished array under it.
func (r *Registry) Create() Handle {
	h, ok := r.free.DeleteMin()
	if !ok {
		r.slots = append(r.slots, &slot{})
		h = Handle(len(r.slots))
	}
	s := r.slots[h-1]
	s.rec = Record{}
	s.live = true
	r.live++
	r.log.Debug("draw array created", "handle", h)
	return h
}

// Delete releases h. Its handle is reissued by the next Create if it is
// the smallest free one.
func (r *Registry) Delete(h Handle) {
	s := r.slotFor("Delete", h)
	if r.pen != nil && r.pen.handle == h {
		violate("Delete", ErrSessionOpen, "handle %d is under construction", h)
	}
	r.release(h, s)
	r.log.Debug("draw array deleted", "handle", h)
}

func (r *Registry) release(h Handle, s *slot) {
	s.rec = Record{}
	s.live = false
	s.gen++
	r.free.ReplaceOrInsert(h)
	r.live--
}

// Lookup returns the record stored under h.
func (r *Registry) Lookup(h Handle) *Record {
	return &r.slotFor("Lookup", h).rec
}

// Ref captures h together with its current generation.
func (r *Registry) Ref(h Handle) Ref {
	return Ref{Handle: h, Gen: r.slotFor("Ref", h).gen}
}

// Valid reports whether ref still names a live array.
func (r *Registry) Valid(ref Ref) bool {
	if ref.Handle == InvalidHandle || int(ref.Handle) > len(r.slots) {
		return false
	}
	s := r.slots[ref.Handle-1]
	return s.live && s.gen == ref.Gen
}

// Len returns the number of live handles.
func (r *Registry) Len() int { return r.live }

// Live returns the live handles in ascending order.
func (r *Registry) Live() []Handle {
	out := make([]Handle, 0, r.live)
	for i, s := range r.slots {
		if s.live {
			out = append(out, Handle(i+1))
		}
	}
	return out
}

// Building reports whether a construction session is open.
func (r *Registry) Building() bool { return r.pen != nil }

// Reset deletes every array. It is meant for graphics-context loss, after
// which owners rebuild their arrays from scratch.
func (r *Registry) Reset() {
	if r.pen != nil {
		violate("Reset", ErrSessionOpen, "cannot reset while building")
	}
	n := r.live
	for i, s := range r.slots {
		if s.live {
			r.release(Handle(i+1), s)
		}
	}
	r.log.Info("draw arrays reset", "deleted", n)
}

// Close reports every handle still live as leaked, then resets.
func (r *Registry) Close() {
	for _, h := range r.Live() {
		r.log.Warn("draw array leaked", "handle", h, "vertices", r.slots[h-1].rec.VertexCount)
	}
	r.Reset()
}

// Stats returns the draw counters.
func (r *Registry) Stats() Stats { return r.stats }

// ResetStats zeroes the draw counters, typically once per frame.
func (r *Registry) ResetStats() { r.stats = Stats{} }

func (r *Registry) slotFor(op string, h Handle) *slot {
	if h == InvalidHandle || int(h) > len(r.slots) || !r.slots[h-1].live {
		violate(op, ErrUnknownHandle, "handle %d is not live", h)
	}
	return r.slots[h-1]
}
