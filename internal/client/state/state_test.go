package state

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResult_Phases(t *testing.T) {
	p := Pending[int]()
	assert.Equal(t, PhasePending, p.Phase())
	_, ok := p.Value()
	assert.False(t, ok)
	assert.NoError(t, p.Error())

	o := Ok(7)
	v, ok := o.Value()
	require.True(t, ok)
	assert.Equal(t, 7, v)
	assert.Empty(t, o.ErrorMessage())

	boom := errors.New("boom")
	e := Err[int](boom)
	assert.Equal(t, PhaseErr, e.Phase())
	assert.ErrorIs(t, e.Error(), boom)
	assert.Equal(t, "boom", e.ErrorMessage())
}

func TestResult_From(t *testing.T) {
	assert.Equal(t, PhaseOk, From("x", nil).Phase())
	assert.Equal(t, PhaseErr, From("x", errors.New("e")).Phase())
}

func TestPhase_String(t *testing.T) {
	assert.Equal(t, "pending", PhasePending.String())
	assert.Equal(t, "ok", PhaseOk.String())
	assert.Equal(t, "err", PhaseErr.String())
	assert.Equal(t, "unknown", Phase(9).String())
}

func TestHub_PublishInOrder(t *testing.T) {
	var h Hub[int]
	var got []string

	h.Subscribe(func(v int) { got = append(got, "a", string(rune('0'+v))) })
	h.Subscribe(func(v int) { got = append(got, "b", string(rune('0'+v))) })

	h.Publish(1)
	h.Publish(2)

	assert.Equal(t, []string{"a", "1", "b", "1", "a", "2", "b", "2"}, got)
}

func TestHub_Cancel(t *testing.T) {
	var h Hub[string]
	calls := 0
	cancel := h.Subscribe(func(string) { calls++ })
	other := h.Subscribe(func(string) {})

	h.Publish("x")
	cancel()
	cancel()
	h.Publish("y")

	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, h.Len())
	other()
	assert.Equal(t, 0, h.Len())
}

func TestHub_CancelFromCallback(t *testing.T) {
	var h Hub[int]
	calls := 0
	var cancel func()
	cancel = h.Subscribe(func(int) {
		calls++
		cancel()
	})

	h.Publish(1)
	h.Publish(2)
	assert.Equal(t, 1, calls)
}
