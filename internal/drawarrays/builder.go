package drawarrays

import (
	"strconv"

	"mini-bz/internal/profiling"
)

type attribs struct {
	colors    []float32
	texCoords []float32
	normals   []float32
	vertices  []float32
}

func (a *attribs) clear() {
	a.colors = a.colors[:0]
	a.texCoords = a.texCoords[:0]
	a.normals = a.normals[:0]
	a.vertices = a.vertices[:0]
}

func (a *attribs) elements() int { return len(a.vertices) / VertexSize }

// Builder is an open construction session. A registry has at most one;
// it ends with Finish (named) or DrawTemp (temporary) and is unusable
// afterwards.
//
// Attributes for a vertex are added before its AddVertex call. Each
// attribute kind is supplied for every vertex or for none.
type Builder struct {
	reg    *Registry
	handle Handle
	temp   bool
	open   bool
	attribs
}

// Begin opens a session that will populate the named array h.
func (r *Registry) Begin(h Handle) *Builder {
	if r.pen != nil {
		violate("Begin", ErrSessionOpen, "handle %d while building %s", h, r.pen)
	}
	r.slotFor("Begin", h)
	return r.open(h, false)
}

// BeginTemp opens a session for an array that is drawn once by DrawTemp
// and never registered.
func (r *Registry) BeginTemp() *Builder {
	if r.pen != nil {
		violate("BeginTemp", ErrSessionOpen, "while building %s", r.pen)
	}
	return r.open(InvalidHandle, true)
}

func (r *Registry) open(h Handle, temp bool) *Builder {
	b := &Builder{reg: r, handle: h, temp: temp, open: true, attribs: r.scratch}
	r.scratch = attribs{}
	b.clear()
	r.pen = b
	return b
}

// close hands the attribute storage back to the registry for reuse.
func (b *Builder) close() {
	b.clear()
	b.reg.scratch = b.attribs
	b.attribs = attribs{}
	b.open = false
	b.reg.pen = nil
}

func (b *Builder) String() string {
	if b.temp {
		return "temporary array"
	}
	return "array " + strconv.Itoa(int(b.handle))
}

// Handle returns the array being built, InvalidHandle for a temporary session.
func (b *Builder) Handle() Handle { return b.handle }

// Len returns the number of vertices added so far.
func (b *Builder) Len() int { return b.elements() }

func (b *Builder) require(op string) {
	if !b.open {
		violate(op, ErrNoSession, "%s is closed", b)
	}
}

func (b *Builder) strict() bool { return b.reg.validation == Strict }

// AddColor supplies the color of the next vertex.
func (b *Builder) AddColor(r, g, bl, a float32) *Builder {
	b.require("AddColor")
	if b.strict() && len(b.colors)/ColorSize != b.elements() {
		violate("AddColor", ErrAttributeCount, "%d colors for %d vertices", len(b.colors)/ColorSize, b.elements())
	}
	b.colors = append(b.colors, r, g, bl, a)
	return b
}

// AddColorRGB supplies an opaque color for the next vertex.
func (b *Builder) AddColorRGB(r, g, bl float32) *Builder {
	return b.AddColor(r, g, bl, 1)
}

// AddTexCoord supplies the texture coordinate of the next vertex.
func (b *Builder) AddTexCoord(s, t float32) *Builder {
	b.require("AddTexCoord")
	if b.strict() && len(b.texCoords)/TexCoordSize != b.elements() {
		violate("AddTexCoord", ErrAttributeCount, "%d texcoords for %d vertices", len(b.texCoords)/TexCoordSize, b.elements())
	}
	b.texCoords = append(b.texCoords, s, t)
	return b
}

// AddNormal supplies the normal of the next vertex.
func (b *Builder) AddNormal(x, y, z float32) *Builder {
	b.require("AddNormal")
	if b.strict() && len(b.normals)/NormalSize != b.elements() {
		violate("AddNormal", ErrAttributeCount, "%d normals for %d vertices", len(b.normals)/NormalSize, b.elements())
	}
	b.normals = append(b.normals, x, y, z)
	return b
}

// AddVertex closes the current vertex at (x,y,z).
func (b *Builder) AddVertex(x, y, z float32) *Builder {
	b.require("AddVertex")
	if b.strict() {
		next := b.elements() + 1
		b.expect("AddVertex", "colors", len(b.colors)/ColorSize, next)
		b.expect("AddVertex", "texcoords", len(b.texCoords)/TexCoordSize, next)
		b.expect("AddVertex", "normals", len(b.normals)/NormalSize, next)
	}
	b.vertices = append(b.vertices, x, y, z)
	return b
}

// AddVertex2 closes the current vertex at (x,y,0).
func (b *Builder) AddVertex2(x, y float32) *Builder {
	return b.AddVertex(x, y, 0)
}

// expect checks an attribute kind that is in use against want vertices.
func (b *Builder) expect(op, kind string, have, want int) {
	if have != 0 && have != want {
		violate(op, ErrAttributeCount, "%d %s for %d vertices", have, kind, want)
	}
}

func (b *Builder) record(op string) Record {
	if b.strict() {
		n := b.elements()
		b.expect(op, "colors", len(b.colors)/ColorSize, n)
		b.expect(op, "texcoords", len(b.texCoords)/TexCoordSize, n)
		b.expect(op, "normals", len(b.normals)/NormalSize, n)
	}
	return Record{
		UsesColor:    len(b.colors) > 0,
		UsesTexCoord: len(b.texCoords) > 0,
		UsesNormal:   len(b.normals) > 0,
		VertexCount:  b.elements(),
		buffer:       Pack(b.colors, b.texCoords, b.normals, b.vertices),
		finished:     true,
	}
}

// Finish packs the session into its named array and ends the session.
// An array with no vertices is valid and draws nothing.
func (b *Builder) Finish() {
	defer profiling.Track("drawarrays.Finish")()
	b.require("Finish")
	if b.temp {
		violate("Finish", ErrTempSession, "use DrawTemp")
	}
	rec := b.record("Finish")
	r := b.reg
	r.slots[b.handle-1].rec = rec
	r.log.Debug("draw array finished", "handle", b.handle, "vertices", rec.VertexCount,
		"color", rec.UsesColor, "texcoord", rec.UsesTexCoord, "normal", rec.UsesNormal)
	b.close()
}

// DrawTemp packs the temporary session, draws it once with mode and
// ends the session. Nothing is retained.
func (b *Builder) DrawTemp(mode Mode) {
	defer profiling.Track("drawarrays.DrawTemp")()
	b.require("DrawTemp")
	if !b.temp {
		violate("DrawTemp", ErrNamedSession, "use Finish for %s", b)
	}
	rec := b.record("DrawTemp")
	r := b.reg
	b.close()
	r.dispatch("DrawTemp", &rec, mode)
}
