package parallel

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBarrierReleasesAllParticipants(t *testing.T) {
	const n = 5
	b := NewBarrier(n)
	var done int32
	ch := make(chan struct{})

	for i := 0; i < n; i++ {
		go func() {
			b.Wait()
			if atomic.AddInt32(&done, 1) == n {
				close(ch)
			}
		}()
	}

	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal("barrier never released all participants")
	}
}

func TestBarrierSupportsMultipleGenerations(t *testing.T) {
	const n = 3
	b := NewBarrier(n)
	for gen := 0; gen < 3; gen++ {
		ch := make(chan struct{})
		var done int32
		for i := 0; i < n; i++ {
			go func() {
				b.Wait()
				if atomic.AddInt32(&done, 1) == n {
					close(ch)
				}
			}()
		}
		select {
		case <-ch:
		case <-time.After(time.Second):
			t.Fatalf("generation %d never released", gen)
		}
	}
}

func TestBarrierResetChangesParticipantCount(t *testing.T) {
	b := NewBarrier(4)
	b.Reset(2)

	ch := make(chan struct{})
	go func() {
		b.Wait()
		close(ch)
	}()
	go b.Wait()

	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal("barrier did not release with reduced participant count")
	}
	assert.Equal(t, 2, b.size)
}
