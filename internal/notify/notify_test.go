package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_NotifyInRegistrationOrder(t *testing.T) {
	var r Registry[int]
	var got []string

	r.Subscribe(func(v int) { got = append(got, "a") })
	r.Subscribe(func(v int) { got = append(got, "b") })

	r.Notify(1)
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestRegistry_CancelRemovesListener(t *testing.T) {
	var r Registry[string]
	calls := 0

	sub := r.Subscribe(func(string) { calls++ })
	r.Notify("x")
	sub.Cancel()
	sub.Cancel()
	r.Notify("y")

	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, r.Len())
}

func TestRegistry_UnsubscribeOnlyTargetsOne(t *testing.T) {
	var r Registry[int]
	var a, b int

	subA := r.Subscribe(func(int) { a++ })
	r.Subscribe(func(int) { b++ })

	r.Unsubscribe(subA)
	r.Notify(0)

	assert.Equal(t, 0, a)
	assert.Equal(t, 1, b)
}

func TestRegistry_PanickingListenerIsIsolated(t *testing.T) {
	var r Registry[int]
	var reported error
	r.OnPanic = func(err error) { reported = err }

	after := 0
	r.Subscribe(func(int) { panic("boom") })
	r.Subscribe(func(int) { after++ })

	require.NotPanics(t, func() { r.Notify(1) })
	assert.Equal(t, 1, after)
	require.Error(t, reported)
	assert.Contains(t, reported.Error(), "boom")
}

func TestRegistry_NilListenerIgnored(t *testing.T) {
	var r Registry[int]
	sub := r.Subscribe(nil)

	assert.Equal(t, 0, r.Len())
	assert.NotPanics(t, sub.Cancel)
}

func TestSubscription_ZeroValueCancel(t *testing.T) {
	var s Subscription
	assert.NotPanics(t, s.Cancel)
}
