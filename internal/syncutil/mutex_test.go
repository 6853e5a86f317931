package syncutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRWMutex_WriterWaitsForReaders(t *testing.T) {
	var mu RWMutex
	mu.RLock()

	locked := make(chan struct{})
	go func() {
		mu.Lock()
		close(locked)
		mu.Unlock()
	}()

	select {
	case <-locked:
		t.Fatal("writer acquired the lock while a reader held it")
	case <-time.After(20 * time.Millisecond):
	}
	mu.RUnlock()

	select {
	case <-locked:
	case <-time.After(time.Second):
		t.Fatal("writer never acquired the lock")
	}
}

func TestMutex_SerializesWriters(t *testing.T) {
	var mu Mutex
	counter := 0
	done := make(chan struct{})
	for i := 0; i < 50; i++ {
		go func() {
			mu.Lock()
			counter++
			mu.Unlock()
			done <- struct{}{}
		}()
	}
	for i := 0; i < 50; i++ {
		<-done
	}
	assert.Equal(t, 50, counter)
}
