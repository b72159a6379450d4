package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShutdownOrder(t *testing.T) {
	l := newLifecycle()
	var order []string
	l.Defer(func() { order = append(order, "terminate") })
	l.Defer(func() { order = append(order, "program") })
	l.Defer(func() { order = append(order, "buffer") })

	l.shutdown()
	l.shutdown()

	assert.Equal(t, []string{"buffer", "program", "terminate"}, order, "reverse order, once")
	assert.Error(t, l.Context().Err(), "context is cancelled")

	select {
	case <-l.done:
	default:
		t.Fatal("done is not closed after shutdown")
	}
}

func TestWaiterReleasedByShutdown(t *testing.T) {
	l := newLifecycle()
	released := make(chan struct{})
	go func() {
		l.cancel()
		<-l.done
		close(released)
	}()

	<-l.Context().Done()
	l.shutdown()
	<-released
}
