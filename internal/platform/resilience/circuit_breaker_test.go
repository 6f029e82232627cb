package resilience

import (
	"errors"
	"testing"
	"time"
)

func TestCircuitBreaker_BasicTransitions(t *testing.T) {
	b := NewCircuitBreaker(CircuitBreakerConfig{Enabled: true, FailureThreshold: 2, OpenTimeout: 5 * time.Second, HalfOpenMaxReq: 1})

	now := time.Date(2026, 2, 11, 12, 0, 0, 0, time.UTC)
	b.now = func() time.Time { return now }

	var transitions []CircuitState
	b.OnStateChange(func(_, to CircuitState) { transitions = append(transitions, to) })

	if err := b.Allow(); err != nil {
		t.Fatalf("expected allow in closed state: %v", err)
	}

	b.RecordFailure()
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("expected closed after first failure, got %s", state)
	}

	b.RecordFailure()
	if state := b.State(); state != CircuitStateOpen {
		t.Fatalf("expected open after threshold failures, got %s", state)
	}
	if err := b.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected circuit open error, got %v", err)
	}

	now = now.Add(6 * time.Second)
	if err := b.Allow(); err != nil {
		t.Fatalf("expected half-open trial request to pass, got %v", err)
	}
	if err := b.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected second trial request to be rejected, got %v", err)
	}

	b.RecordSuccess()
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("expected closed after successful half-open trial request, got %s", state)
	}

	want := []CircuitState{CircuitStateOpen, CircuitStateHalfOpen, CircuitStateClosed}
	if len(transitions) != len(want) {
		t.Fatalf("unexpected transitions: got=%v want=%v", transitions, want)
	}
	for i := range want {
		if transitions[i] != want[i] {
			t.Fatalf("unexpected transitions: got=%v want=%v", transitions, want)
		}
	}
}

func TestCircuitBreaker_Execute(t *testing.T) {
	b := NewCircuitBreaker(CircuitBreakerConfig{Enabled: true, FailureThreshold: 1, OpenTimeout: time.Minute})
	boom := errors.New("boom")

	if err := b.Execute(func() error { return boom }); !errors.Is(err, boom) {
		t.Fatalf("expected dependency error, got %v", err)
	}
	called := false
	if err := b.Execute(func() error { called = true; return nil }); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected circuit open error, got %v", err)
	}
	if called {
		t.Fatalf("open breaker must not call the dependency")
	}
}

func TestCircuitBreaker_DisabledIsNil(t *testing.T) {
	b := NewCircuitBreaker(CircuitBreakerConfig{Enabled: false})
	if b != nil {
		t.Fatalf("expected nil breaker when disabled")
	}
	b.RecordFailure()
	if err := b.Allow(); err != nil {
		t.Fatalf("nil breaker must allow: %v", err)
	}
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("nil breaker reports closed, got %s", state)
	}
}

func TestCircuitBreakerConfig_Normalize(t *testing.T) {
	got := CircuitBreakerConfig{Enabled: true}.Normalize()
	want := DefaultCircuitBreakerConfig()
	if got != want {
		t.Fatalf("unexpected normalized config: got=%+v want=%+v", got, want)
	}
}
