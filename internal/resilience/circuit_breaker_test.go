// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package resilience

import (
	"context"
	"testing"
	"time"
)

func testBreakerConfig() CircuitBreakerConfig {
	cfg := DefaultCircuitBreakerConfig("test")
	cfg.FailureThreshold = 3
	cfg.SuccessThreshold = 2
	cfg.Timeout = 10 * time.Millisecond
	return cfg
}

func failOnce(cb *CircuitBreaker) error {
	return cb.Execute(context.Background(), func(ctx context.Context) error {
		return NewTransientError("lookup down", nil)
	})
}

func succeedOnce(cb *CircuitBreaker) error {
	return cb.Execute(context.Background(), func(ctx context.Context) error {
		return nil
	})
}

func TestCircuitBreaker_OpensAfterThreshold(t *testing.T) {
	cb := NewCircuitBreaker(testBreakerConfig())

	for i := 0; i < 3; i++ {
		failOnce(cb)
	}
	if cb.State() != StateOpen {
		t.Fatalf("expected OPEN after threshold failures, got %s", cb.State())
	}

	err := succeedOnce(cb)
	if !IsCircuitBreakerError(err) {
		t.Errorf("expected fast-fail while open, got %v", err)
	}
}

func TestCircuitBreaker_NonRetryableDoesNotTrip(t *testing.T) {
	cb := NewCircuitBreaker(testBreakerConfig())

	for i := 0; i < 10; i++ {
		cb.Execute(context.Background(), func(ctx context.Context) error {
			return NewPermanentError("no such page", nil)
		})
	}
	if cb.State() != StateClosed {
		t.Errorf("permanent errors must not open the circuit, got %s", cb.State())
	}
}

func TestCircuitBreaker_RecoversThroughHalfOpen(t *testing.T) {
	cb := NewCircuitBreaker(testBreakerConfig())

	for i := 0; i < 3; i++ {
		failOnce(cb)
	}
	time.Sleep(15 * time.Millisecond)

	if err := succeedOnce(cb); err != nil {
		t.Fatalf("expected probe to run after timeout, got %v", err)
	}
	if cb.State() != StateHalfOpen {
		t.Fatalf("expected HALF_OPEN after one probe success, got %s", cb.State())
	}
	if err := succeedOnce(cb); err != nil {
		t.Fatalf("expected second probe to run, got %v", err)
	}
	if cb.State() != StateClosed {
		t.Errorf("expected CLOSED after success threshold, got %s", cb.State())
	}
}

func TestCircuitBreaker_ProbeFailureReopens(t *testing.T) {
	cb := NewCircuitBreaker(testBreakerConfig())

	for i := 0; i < 3; i++ {
		failOnce(cb)
	}
	time.Sleep(15 * time.Millisecond)

	failOnce(cb)
	if cb.State() != StateOpen {
		t.Errorf("expected OPEN after probe failure, got %s", cb.State())
	}
}

func TestCircuitBreaker_Reset(t *testing.T) {
	cb := NewCircuitBreaker(testBreakerConfig())

	for i := 0; i < 3; i++ {
		failOnce(cb)
	}
	cb.Reset()
	if cb.State() != StateClosed {
		t.Fatalf("expected CLOSED after reset, got %s", cb.State())
	}
	if err := succeedOnce(cb); err != nil {
		t.Errorf("expected normal operation after reset, got %v", err)
	}
}
