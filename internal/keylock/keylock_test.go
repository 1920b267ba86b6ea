package keylock

import (
	"sync"
	"testing"
)

func TestLock_SerializesSameKey(t *testing.T) {
	m := New()

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := m.Lock("key")
			defer unlock()
			counter++
		}()
	}
	wg.Wait()

	if counter != 50 {
		t.Errorf("counter = %d, want 50", counter)
	}
}

func TestLock_DifferentKeysDoNotBlock(t *testing.T) {
	m := New()

	unlockA := m.Lock("a")
	defer unlockA()

	// Must not deadlock.
	unlockB := m.Lock("b")
	unlockB()
}

func TestLock_ReusesMutexPerKey(t *testing.T) {
	m := New()

	unlock := m.Lock("a")
	unlock()
	unlock = m.Lock("a")
	unlock()

	if len(m.locks) != 1 {
		t.Errorf("locks = %d, want 1", len(m.locks))
	}
}
