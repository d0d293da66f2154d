package middleware

import (
	"sync"
	"testing"
)

func TestUserLocksSerializeSameUser(t *testing.T) {
	locks := newUserLocks()

	const workers = 8
	const iterations = 200
	counter := 0

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < iterations; i++ {
				l := locks.acquire(1)
				counter++
				locks.release(1, l)
			}
		}()
	}
	wg.Wait()

	if counter != workers*iterations {
		t.Fatalf("counter = %d, want %d", counter, workers*iterations)
	}

	locks.mu.Lock()
	remaining := len(locks.locks)
	locks.mu.Unlock()
	if remaining != 0 {
		t.Fatalf("expected lock map to be drained, %d entries left", remaining)
	}
}

func TestUserLocksIndependentUsers(t *testing.T) {
	locks := newUserLocks()

	l1 := locks.acquire(1)
	done := make(chan struct{})
	go func() {
		l2 := locks.acquire(2)
		locks.release(2, l2)
		close(done)
	}()
	<-done
	locks.release(1, l1)
}
