package drawarrays_test

import (
	"bytes"
	"fmt"
	"log/slog"
	"testing"

	"mini-bz/internal/drawarrays"
	"mini-bz/internal/drawarrays/drawtest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRegistry(t testing.TB, opts ...drawarrays.Option) (*drawarrays.Registry, *drawtest.Recorder) {
	t.Helper()
	rec := drawtest.NewRecorder()
	opts = append([]drawarrays.Option{drawarrays.WithValidation(drawarrays.Strict)}, opts...)
	return drawarrays.NewRegistry(rec, opts...), rec
}

func requireViolation(t *testing.T, sentinel error, fn func()) *drawarrays.ContractError {
	t.Helper()
	err := drawarrays.Recover(fn)
	require.Error(t, err, "expected a contract violation")
	require.ErrorIs(t, err, sentinel)
	var ce *drawarrays.ContractError
	require.ErrorAs(t, err, &ce)
	return ce
}

func TestCreateIssuesAscendingHandles(t *testing.T) {
	reg, _ := newRegistry(t)
	for want := drawarrays.Handle(1); want <= 5; want++ {
		assert.Equal(t, want, reg.Create())
	}
	assert.Equal(t, 5, reg.Len())
	assert.Equal(t, []drawarrays.Handle{1, 2, 3, 4, 5}, reg.Live())
}

func TestCreateReusesSmallestFreedHandle(t *testing.T) {
	reg, _ := newRegistry(t)
	for i := 0; i < 6; i++ {
		reg.Create()
	}

	// free out of order; reuse must still be smallest-first
	reg.Delete(5)
	reg.Delete(2)
	reg.Delete(4)

	assert.Equal(t, drawarrays.Handle(2), reg.Create())
	assert.Equal(t, drawarrays.Handle(4), reg.Create())
	assert.Equal(t, drawarrays.Handle(5), reg.Create())
	assert.Equal(t, drawarrays.Handle(7), reg.Create())
}

func TestDeleteSmallestThenCreateReturnsIt(t *testing.T) {
	reg, _ := newRegistry(t)
	for round := 0; round < 20; round++ {
		live := reg.Live()
		if len(live) < 3 {
			reg.Create()
			reg.Create()
			continue
		}
		k := live[0]
		reg.Delete(k)
		require.Equal(t, k, reg.Create(), "round %d", round)
		reg.Create()
	}
}

func TestNewRecordIsPending(t *testing.T) {
	reg, _ := newRegistry(t)
	h := reg.Create()
	rec := reg.Lookup(h)
	assert.False(t, rec.Finished())
	assert.Nil(t, rec.Buffer())
	assert.Zero(t, rec.VertexCount)
}

func TestUnknownHandleIsRejected(t *testing.T) {
	reg, _ := newRegistry(t)
	h := reg.Create()

	requireViolation(t, drawarrays.ErrUnknownHandle, func() { reg.Lookup(drawarrays.InvalidHandle) })
	requireViolation(t, drawarrays.ErrUnknownHandle, func() { reg.Lookup(h + 1) })
	requireViolation(t, drawarrays.ErrUnknownHandle, func() { reg.Delete(42) })
	requireViolation(t, drawarrays.ErrUnknownHandle, func() { reg.Draw(9, drawarrays.Triangles) })

	reg.Delete(h)
	requireViolation(t, drawarrays.ErrUnknownHandle, func() { reg.Delete(h) })
	requireViolation(t, drawarrays.ErrUnknownHandle, func() { reg.Lookup(h) })
}

func TestDeleteWhileBuildingIsRejected(t *testing.T) {
	reg, _ := newRegistry(t)
	h := reg.Create()
	b := reg.Begin(h)
	requireViolation(t, drawarrays.ErrSessionOpen, func() { reg.Delete(h) })
	b.Finish()
	reg.Delete(h)
	assert.Zero(t, reg.Len())
}

func TestRefDetectsReissuedHandle(t *testing.T) {
	reg, _ := newRegistry(t)
	h := reg.Create()
	reg.Begin(h).AddVertex(0, 0, 0).Finish()

	ref := reg.Ref(h)
	assert.True(t, reg.Valid(ref))

	reg.Delete(h)
	assert.False(t, reg.Valid(ref))

	again := reg.Create()
	require.Equal(t, h, again)
	assert.False(t, reg.Valid(ref), "reissued handle must not validate an old ref")
	assert.True(t, reg.Valid(reg.Ref(again)))

	reg.Begin(again).AddVertex(0, 0, 0).Finish()
	requireViolation(t, drawarrays.ErrStaleRef, func() { reg.DrawRef(ref, drawarrays.Points) })
	assert.False(t, reg.Valid(drawarrays.Ref{}))
	assert.False(t, reg.Valid(drawarrays.Ref{Handle: 99}))
}

func TestResetDeletesEverything(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	reg, _ := newRegistry(t, drawarrays.WithLogger(logger))

	a := reg.Create()
	b := reg.Create()
	reg.Begin(a).AddVertex(1, 2, 3).Finish()
	refB := reg.Ref(b)

	reg.Reset()
	assert.Zero(t, reg.Len())
	assert.Empty(t, reg.Live())
	assert.False(t, reg.Valid(refB))
	assert.Equal(t, drawarrays.Handle(1), reg.Create())
	assert.Contains(t, logs.String(), "draw arrays reset")
}

func TestResetWhileBuildingIsRejected(t *testing.T) {
	reg, _ := newRegistry(t)
	reg.BeginTemp()
	requireViolation(t, drawarrays.ErrSessionOpen, reg.Reset)
}

func TestCloseReportsLeakedHandles(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	reg, _ := newRegistry(t, drawarrays.WithLogger(logger))

	reg.Create()
	h := reg.Create()
	reg.Create()
	reg.Delete(h)

	reg.Close()
	assert.Zero(t, reg.Len())
	out := logs.String()
	assert.Contains(t, out, "draw array leaked")
	assert.Contains(t, out, "handle=1")
	assert.Contains(t, out, "handle=3")
	assert.NotContains(t, out, "handle=2")
}

func TestContractErrorFormatting(t *testing.T) {
	reg, _ := newRegistry(t)
	ce := requireViolation(t, drawarrays.ErrUnknownHandle, func() { reg.Lookup(7) })

	assert.Equal(t, "Lookup", ce.Op)
	assert.Equal(t, "drawarrays: Lookup: handle 7 is not live: unknown draw array handle", ce.Error())
	assert.Equal(t, ce.Error(), fmt.Sprintf("%v", ce))
	assert.Contains(t, fmt.Sprintf("%+v", ce), "registry_test.go", "verbose form carries the call stack")
}

func TestRecoverPassesOtherPanicsThrough(t *testing.T) {
	assert.PanicsWithValue(t, "boom", func() {
		_ = drawarrays.Recover(func() { panic("boom") })
	})
	assert.NoError(t, drawarrays.Recover(func() {}))
}

func TestNilBackendDiscards(t *testing.T) {
	reg := drawarrays.NewRegistry(nil)
	h := reg.Create()
	reg.Begin(h).AddVertex(0, 0, 0).AddVertex(1, 0, 0).AddVertex(0, 1, 0).Finish()
	reg.Draw(h, drawarrays.Triangles)
	assert.Equal(t, drawarrays.Stats{DrawCalls: 1, Vertices: 3}, reg.Stats())
}
