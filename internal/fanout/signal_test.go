package fanout

import (
	"sync"
	"testing"
	"time"
)

func TestSignal_FireOnce(t *testing.T) {
	s := NewSignal()

	if s.Fired() {
		t.Error("new signal should not be fired")
	}

	if !s.Fire() {
		t.Error("first Fire should win")
	}
	if s.Fire() {
		t.Error("second Fire should lose")
	}
	if !s.Fired() {
		t.Error("signal should report fired")
	}

	select {
	case <-s.Done():
	default:
		t.Error("Done channel should be closed after Fire")
	}
}

func TestSignal_ConcurrentFire(t *testing.T) {
	s := NewSignal()

	const racers = 50
	var wg sync.WaitGroup
	winners := make(chan bool, racers)

	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if s.Fire() {
				winners <- true
			}
		}()
	}

	wg.Wait()
	close(winners)

	count := 0
	for range winners {
		count++
	}
	if count != 1 {
		t.Errorf("expected exactly 1 winning Fire, got %d", count)
	}
}

func TestSignal_DoneBlocksUntilFired(t *testing.T) {
	s := NewSignal()

	select {
	case <-s.Done():
		t.Fatal("Done should block before Fire")
	case <-time.After(10 * time.Millisecond):
	}

	s.Fire()

	select {
	case <-s.Done():
	case <-time.After(100 * time.Millisecond):
		t.Fatal("Done should be closed after Fire")
	}
}
