package services

import (
	"errors"
	"sync"
	"time"

	"activity-feed/internal/models"
)

var (
	ErrCircuitBreakerOpen = errors.New("circuit breaker is open")
)

type CircuitBreakerConfig struct {
	MaxFailures     int
	ResetTimeout    time.Duration
	HalfOpenMaxSucc int
	// OnStateChange is invoked after every transition, outside the breaker lock.
	OnStateChange func(from, to models.CircuitBreakerState)
}

func DefaultCircuitBreakerConfig() CircuitBreakerConfig {
	return CircuitBreakerConfig{
		MaxFailures:     5,
		ResetTimeout:    30 * time.Second,
		HalfOpenMaxSucc: 3,
	}
}

const (
	StateClosed models.CircuitBreakerState = iota
	StateOpen
	StateHalfOpen
)

// CircuitBreaker stops calls to a failing dependency for ResetTimeout after
// MaxFailures consecutive failures, then lets trial calls through.
type CircuitBreaker struct {
	mu                sync.Mutex
	config            CircuitBreakerConfig
	state             models.CircuitBreakerState
	failures          int
	halfOpenSuccesses int
	lastFailureTime   time.Time
	now               func() time.Time
}

func NewCircuitBreaker(config CircuitBreakerConfig) *CircuitBreaker {
	if config.MaxFailures < 1 {
		config.MaxFailures = 1
	}
	if config.HalfOpenMaxSucc < 1 {
		config.HalfOpenMaxSucc = 1
	}
	return &CircuitBreaker{
		config: config,
		state:  StateClosed,
		now:    time.Now,
	}
}

func (cb *CircuitBreaker) IsOpen() bool {
	cb.mu.Lock()
	if cb.state == StateOpen && cb.now().Sub(cb.lastFailureTime) > cb.config.ResetTimeout {
		from := cb.transitionLocked(StateHalfOpen)
		cb.mu.Unlock()
		cb.notify(from, StateHalfOpen)
		return false
	}
	open := cb.state == StateOpen
	cb.mu.Unlock()
	return open
}

func (cb *CircuitBreaker) RecordSuccess() {
	cb.mu.Lock()
	switch cb.state {
	case StateHalfOpen:
		cb.halfOpenSuccesses++
		if cb.halfOpenSuccesses >= cb.config.HalfOpenMaxSucc {
			from := cb.transitionLocked(StateClosed)
			cb.mu.Unlock()
			cb.notify(from, StateClosed)
			return
		}
	case StateClosed:
		cb.failures = 0
	}
	cb.mu.Unlock()
}

func (cb *CircuitBreaker) RecordFailure() {
	cb.mu.Lock()
	cb.lastFailureTime = cb.now()

	switch cb.state {
	case StateHalfOpen:
		from := cb.transitionLocked(StateOpen)
		cb.mu.Unlock()
		cb.notify(from, StateOpen)
		return
	case StateClosed:
		cb.failures++
		if cb.failures >= cb.config.MaxFailures {
			from := cb.transitionLocked(StateOpen)
			cb.mu.Unlock()
			cb.notify(from, StateOpen)
			return
		}
	}
	cb.mu.Unlock()
}

func (cb *CircuitBreaker) transitionLocked(to models.CircuitBreakerState) models.CircuitBreakerState {
	from := cb.state
	cb.state = to
	cb.halfOpenSuccesses = 0
	if to == StateClosed {
		cb.failures = 0
	}
	return from
}

func (cb *CircuitBreaker) notify(from, to models.CircuitBreakerState) {
	if cb.config.OnStateChange != nil && from != to {
		cb.config.OnStateChange(from, to)
	}
}

func (cb *CircuitBreaker) GetState() models.CircuitBreakerState {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}

func (cb *CircuitBreaker) Reset() {
	cb.mu.Lock()
	from := cb.transitionLocked(StateClosed)
	cb.mu.Unlock()
	cb.notify(from, StateClosed)
}

func (cb *CircuitBreaker) GetFailureCount() int {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.failures
}
