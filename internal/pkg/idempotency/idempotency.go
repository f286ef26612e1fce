// Package idempotency guards retried write requests with a Redis-backed state
// machine keyed by the client-supplied Idempotency-Key.
//
// A key moves from absent to in_progress when a request acquires it, then to
// completed when the request succeeds. A failed request releases the key so
// the client may retry with the same key.
package idempotency

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	// ErrAlreadyInProgress is returned while another request holds the key.
	ErrAlreadyInProgress = errors.New("operation already in progress")
	// ErrAlreadyCompleted is returned when the key was used by a successful request.
	ErrAlreadyCompleted = errors.New("operation already completed")
	// ErrInvalidState is returned when the stored value is not a known state.
	ErrInvalidState = errors.New("invalid idempotency state")
)

// State is the stored status of an idempotency key.
type State string

const (
	StateNone       State = "none"
	StateInProgress State = "in_progress"
	StateCompleted  State = "completed"
)

func (s State) String() string {
	return string(s)
}

// Idempotency runs fn at most once per key.
type Idempotency interface {
	Exec(ctx context.Context, key string, fn func(context.Context) error, opts ...Option) error
}

// StateTracker implements Idempotency on top of Redis.
type StateTracker struct {
	client redis.Cmdable
	prefix string
}

// New returns a StateTracker storing keys under the "idempotency:" prefix.
func New(client redis.Cmdable) *StateTracker {
	return &StateTracker{
		client: client,
		prefix: "idempotency:",
	}
}

const (
	defaultLockDuration = time.Minute
	defaultStateTTL     = 24 * time.Hour
)

// Option tunes a single Exec call.
type Option func(*execOptions)

type execOptions struct {
	lockDuration time.Duration
	stateTTL     time.Duration
}

// WithLockDuration bounds how long an in-flight request may hold the key.
func WithLockDuration(d time.Duration) Option {
	return func(o *execOptions) {
		o.lockDuration = d
	}
}

// WithStateTTL sets how long a completed key is remembered.
func WithStateTTL(d time.Duration) Option {
	return func(o *execOptions) {
		o.stateTTL = d
	}
}

// Acquire tries to take the key. StateNone means the caller now holds it.
func (s *StateTracker) Acquire(ctx context.Context, key string, lockDuration time.Duration) (State, error) {
	fk := s.prefix + key

	// one retry covers a key expiring between SETNX and GET
	for range 2 {
		acquired, err := s.client.SetNX(ctx, fk, StateInProgress.String(), lockDuration).Result()
		if err != nil {
			return StateNone, err
		}
		if acquired {
			return StateNone, nil
		}

		current, err := s.client.Get(ctx, fk).Result()
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			return StateNone, err
		}

		switch State(current) {
		case StateInProgress, StateCompleted:
			return State(current), nil
		default:
			return StateNone, ErrInvalidState
		}
	}

	return StateNone, ErrInvalidState
}

// MarkCompleted records a successful request under key for ttl.
func (s *StateTracker) MarkCompleted(ctx context.Context, key string, ttl time.Duration) error {
	return s.client.Set(ctx, s.prefix+key, StateCompleted.String(), ttl).Err()
}

// Release forgets key so it can be acquired again.
func (s *StateTracker) Release(ctx context.Context, key string) error {
	return s.client.Del(ctx, s.prefix+key).Err()
}

// Exec acquires key, runs fn and records the outcome.
func (s *StateTracker) Exec(ctx context.Context, key string, fn func(context.Context) error, opts ...Option) error {
	o := &execOptions{lockDuration: defaultLockDuration, stateTTL: defaultStateTTL}
	for _, opt := range opts {
		opt(o)
	}
	if o.lockDuration <= 0 {
		o.lockDuration = defaultLockDuration
	}
	if o.stateTTL <= 0 {
		o.stateTTL = defaultStateTTL
	}

	state, err := s.Acquire(ctx, key, o.lockDuration)
	if err != nil {
		return err
	}

	switch state {
	case StateInProgress:
		return ErrAlreadyInProgress
	case StateCompleted:
		return ErrAlreadyCompleted
	}

	if err := fn(ctx); err != nil {
		return errors.Join(err, s.Release(context.WithoutCancel(ctx), key))
	}

	return s.MarkCompleted(context.WithoutCancel(ctx), key, o.stateTTL)
}
