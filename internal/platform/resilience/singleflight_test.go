package resilience

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestGroup_Do(t *testing.T) {
	var g Group[string]
	var counter atomic.Int32

	const workers = 20
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			got, err, _ := g.Do("matches:2024", func() (string, error) {
				counter.Add(1)
				time.Sleep(20 * time.Millisecond)
				return "ok", nil
			})
			if err != nil || got != "ok" {
				t.Errorf("singleflight call failed: got=%q err=%v", got, err)
			}
		}()
	}

	close(start)
	wg.Wait()

	if got := counter.Load(); got != 1 {
		t.Fatalf("expected function to run once, got %d", got)
	}
}

func TestGroup_DoRunsAgainAfterCompletion(t *testing.T) {
	var g Group[int]
	calls := 0
	for i := 0; i < 3; i++ {
		_, _, shared := g.Do("k", func() (int, error) {
			calls++
			return calls, nil
		})
		if shared {
			t.Fatalf("sequential calls must not be shared")
		}
	}
	if calls != 3 {
		t.Fatalf("unexpected calls: got=%d want=3", calls)
	}
}
