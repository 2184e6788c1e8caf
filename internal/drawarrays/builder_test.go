package drawarrays_test

import (
	"testing"

	"mini-bz/internal/drawarrays"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBeginTwiceIsRejected(t *testing.T) {
	reg, _ := newRegistry(t)
	a, b := reg.Create(), reg.Create()

	first := reg.Begin(a)
	requireViolation(t, drawarrays.ErrSessionOpen, func() { reg.Begin(b) })
	requireViolation(t, drawarrays.ErrSessionOpen, func() { reg.BeginTemp() })
	assert.True(t, reg.Building())

	// the first session is untouched
	first.AddVertex(1, 1, 1).Finish()
	assert.False(t, reg.Building())
	assert.Equal(t, 1, reg.Lookup(a).VertexCount)
}

func TestBeginRequiresLiveHandle(t *testing.T) {
	reg, _ := newRegistry(t)
	requireViolation(t, drawarrays.ErrUnknownHandle, func() { reg.Begin(1) })
	assert.False(t, reg.Building())
}

func TestClosedBuilderRejectsCalls(t *testing.T) {
	reg, _ := newRegistry(t)
	h := reg.Create()
	b := reg.Begin(h)
	b.AddVertex(0, 0, 0)
	b.Finish()

	requireViolation(t, drawarrays.ErrNoSession, func() { b.AddVertex(1, 0, 0) })
	requireViolation(t, drawarrays.ErrNoSession, func() { b.AddColor(1, 0, 0, 1) })
	requireViolation(t, drawarrays.ErrNoSession, func() { b.AddTexCoord(0, 0) })
	requireViolation(t, drawarrays.ErrNoSession, func() { b.AddNormal(0, 0, 1) })
	requireViolation(t, drawarrays.ErrNoSession, b.Finish)

	tmp := reg.BeginTemp()
	tmp.DrawTemp(drawarrays.Points)
	requireViolation(t, drawarrays.ErrNoSession, func() { tmp.DrawTemp(drawarrays.Points) })

	// a stale builder must not write into the next session
	next := reg.Begin(h)
	requireViolation(t, drawarrays.ErrNoSession, func() { b.AddVertex(9, 9, 9) })
	assert.Zero(t, next.Len())
	next.Finish()
}

func TestFinishOnTempAndDrawTempOnNamed(t *testing.T) {
	reg, _ := newRegistry(t)
	tmp := reg.BeginTemp()
	assert.Equal(t, drawarrays.InvalidHandle, tmp.Handle())
	requireViolation(t, drawarrays.ErrTempSession, tmp.Finish)
	tmp.DrawTemp(drawarrays.Triangles)

	h := reg.Create()
	named := reg.Begin(h)
	assert.Equal(t, h, named.Handle())
	requireViolation(t, drawarrays.ErrNamedSession, func() { named.DrawTemp(drawarrays.Triangles) })
	named.Finish()
}

func TestAttributeConsistency(t *testing.T) {
	tests := []struct {
		name  string
		build func(b *drawarrays.Builder)
		fail  bool
	}{
		{
			name: "vertices only",
			build: func(b *drawarrays.Builder) {
				b.AddVertex(0, 0, 0).AddVertex(1, 0, 0)
			},
		},
		{
			name: "every attribute per vertex",
			build: func(b *drawarrays.Builder) {
				for i := 0; i < 3; i++ {
					b.AddColor(1, 0, 0, 1).AddTexCoord(0, 1).AddNormal(0, 0, 1).AddVertex(float32(i), 0, 0)
				}
			},
		},
		{
			name: "color missing for first vertices",
			build: func(b *drawarrays.Builder) {
				b.AddVertex(0, 0, 0).AddVertex(1, 0, 0)
				b.AddColor(1, 1, 1, 1)
			},
			fail: true,
		},
		{
			name: "two colors for one vertex",
			build: func(b *drawarrays.Builder) {
				b.AddColor(1, 1, 1, 1).AddColor(0, 0, 0, 1)
			},
			fail: true,
		},
		{
			name: "texcoord dropped midway",
			build: func(b *drawarrays.Builder) {
				b.AddTexCoord(0, 0).AddVertex(0, 0, 0)
				b.AddVertex(1, 0, 0)
			},
			fail: true,
		},
		{
			name: "normal for one vertex too many",
			build: func(b *drawarrays.Builder) {
				b.AddNormal(0, 0, 1).AddVertex(0, 0, 0)
				b.AddNormal(0, 0, 1).AddNormal(0, 1, 0)
			},
			fail: true,
		},
		{
			name: "trailing attribute without vertex",
			build: func(b *drawarrays.Builder) {
				b.AddColorRGB(1, 0, 0).AddVertex(0, 0, 0)
				b.AddColorRGB(0, 1, 0)
			},
			fail: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg, _ := newRegistry(t)
			h := reg.Create()
			err := drawarrays.Recover(func() {
				b := reg.Begin(h)
				tt.build(b)
				b.Finish()
			})
			if tt.fail {
				require.ErrorIs(t, err, drawarrays.ErrAttributeCount)
				return
			}
			require.NoError(t, err)
			assert.True(t, reg.Lookup(h).Finished())
		})
	}
}

func TestUsesFlagsFollowSuppliedAttributes(t *testing.T) {
	reg, _ := newRegistry(t)
	h := reg.Create()
	b := reg.Begin(h)
	for i := 0; i < 4; i++ {
		b.AddTexCoord(float32(i), 0)
		b.AddVertex2(float32(i), 1)
	}
	b.Finish()

	rec := reg.Lookup(h)
	assert.False(t, rec.UsesColor)
	assert.True(t, rec.UsesTexCoord)
	assert.False(t, rec.UsesNormal)
	assert.Equal(t, 4, rec.VertexCount)
}

func TestDefaultsForOmittedComponents(t *testing.T) {
	reg, _ := newRegistry(t)
	h := reg.Create()
	reg.Begin(h).AddColorRGB(0.25, 0.5, 0.75).AddVertex2(3, 4).Finish()

	rec := reg.Lookup(h)
	assert.Equal(t, [4]float32{0.25, 0.5, 0.75, 1}, rec.Color(0))
	assert.Equal(t, [3]float32{3, 4, 0}, rec.Vertex(0))
}

func TestRebuildingNamedArrayReplacesIt(t *testing.T) {
	reg, _ := newRegistry(t)
	h := reg.Create()
	reg.Begin(h).AddColorRGB(1, 0, 0).AddVertex(1, 1, 1).Finish()
	reg.Begin(h).AddVertex(2, 2, 2).AddVertex(3, 3, 3).Finish()

	rec := reg.Lookup(h)
	assert.Equal(t, 2, rec.VertexCount)
	assert.False(t, rec.UsesColor)
	assert.Equal(t, [3]float32{3, 3, 3}, rec.Vertex(1))
}

func TestElidedValidationSkipsCountChecks(t *testing.T) {
	reg, _ := newRegistry(t, drawarrays.WithValidation(drawarrays.Elided))
	require.Equal(t, drawarrays.Elided, reg.Validation())

	h := reg.Create()
	require.NoError(t, drawarrays.Recover(func() {
		b := reg.Begin(h)
		b.AddVertex(0, 0, 0).AddVertex(1, 0, 0)
		b.AddColor(1, 0, 0, 1)
		b.AddColor(0, 1, 0, 1).AddColor(0, 0, 1, 1)
		b.Finish()
	}))

	// colors past the last vertex are dropped, not written out of bounds
	rec := reg.Lookup(h)
	assert.Len(t, rec.Buffer(), 2*drawarrays.Stride)
	assert.Equal(t, [4]float32{1, 0, 0, 1}, rec.Color(0))
	assert.Equal(t, [4]float32{0, 1, 0, 1}, rec.Color(1))

	// session and handle checks stay on
	requireViolation(t, drawarrays.ErrUnknownHandle, func() { reg.Begin(5) })
	reg.BeginTemp()
	requireViolation(t, drawarrays.ErrSessionOpen, func() { reg.BeginTemp() })
}

func TestParseValidation(t *testing.T) {
	v, err := drawarrays.ParseValidation("Strict")
	require.NoError(t, err)
	assert.Equal(t, drawarrays.Strict, v)

	v, err = drawarrays.ParseValidation(" release ")
	require.NoError(t, err)
	assert.Equal(t, drawarrays.Elided, v)
	assert.Equal(t, "elided", v.String())

	_, err = drawarrays.ParseValidation("paranoid")
	assert.Error(t, err)
}
