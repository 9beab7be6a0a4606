package mood

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/easeaico/project-texas/internal/types"
)

// StateRepo defines state record fetch and replace behavior. Save must fail
// with ErrStaleRecord when the stored version no longer matches rec.Version.
type StateRepo interface {
	Get(ctx context.Context) (types.StateRecord, error)
	Save(ctx context.Context, rec types.StateRecord) error
}

// HistorySink receives per-turn snapshots. Optional; failures only warn.
type HistorySink interface {
	AddSnapshot(ctx context.Context, rec types.StateRecord, d Directive) error
}

// saveRetries bounds the optimistic-lock retry loop.
const saveRetries = 3

// Service is the single writer path over a StateRecord: it serializes
// updates, settles time passage, applies turn deltas through the engine,
// and answers arbitration reads from a consistent snapshot.
type Service struct {
	engine  *UpdateEngine
	arbiter *Arbiter
	states  StateRepo
	history HistorySink

	mu sync.Mutex
}

// NewService returns a service over a validated Params set.
func NewService(params Params, states StateRepo, history HistorySink) (*Service, error) {
	if states == nil {
		return nil, fmt.Errorf("state repo is nil")
	}
	engine, err := NewUpdateEngine(params)
	if err != nil {
		return nil, err
	}
	arbiter, err := NewArbiter(params)
	if err != nil {
		return nil, err
	}
	return &Service{
		engine:  engine,
		arbiter: arbiter,
		states:  states,
		history: history,
	}, nil
}

// ApplyTurn settles elapsed time, applies the batch atomically, persists the
// record, and returns the fresh directive. Stale writes are retried with a
// fresh read, never silently overwritten.
func (s *Service) ApplyTurn(ctx context.Context, batch DeltaBatch, now time.Time) (Directive, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var rec types.StateRecord
	for attempt := 0; ; attempt++ {
		current, err := s.states.Get(ctx)
		if err != nil {
			return Directive{}, fmt.Errorf("failed to read state record: %w", err)
		}

		next := s.engine.ApplyTimePassage(current, now)
		next = s.engine.ApplyTurn(next, batch, now)

		if err := s.states.Save(ctx, next); err != nil {
			if errors.Is(err, ErrStaleRecord) && attempt < saveRetries {
				slog.Warn("state record was stale, retrying", "attempt", attempt+1)
				continue
			}
			return Directive{}, fmt.Errorf("failed to save state record: %w", err)
		}
		rec = next
		break
	}

	directive, err := s.arbiter.Decide(rec, now)
	if err != nil {
		return Directive{}, err
	}

	if s.history != nil {
		if err := s.history.AddSnapshot(ctx, rec, directive); err != nil {
			slog.Warn("failed to record mood snapshot", "error", err.Error())
		}
	}
	return directive, nil
}

// ApplyRelease applies an explicit release event with no ordinary deltas.
func (s *Service) ApplyRelease(ctx context.Context, now time.Time) (Directive, error) {
	return s.ApplyTurn(ctx, DeltaBatch{Release: true}, now)
}

// Tick settles time passage only, for scheduled heartbeats between turns.
func (s *Service) Tick(ctx context.Context, now time.Time) error {
	_, err := s.ApplyTurn(ctx, DeltaBatch{}, now)
	return err
}

// Directive arbitrates the current record without mutating it.
func (s *Service) Directive(ctx context.Context, now time.Time) (Directive, error) {
	rec, err := s.states.Get(ctx)
	if err != nil {
		return Directive{}, fmt.Errorf("failed to read state record: %w", err)
	}
	return s.arbiter.Decide(rec, now)
}

// Reset restores neutral defaults through the serialized writer path.
func (s *Service) Reset(ctx context.Context, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for attempt := 0; ; attempt++ {
		rec, err := s.states.Get(ctx)
		if err != nil {
			return fmt.Errorf("failed to read state record: %w", err)
		}
		rec.Reset(now)
		if err := s.states.Save(ctx, rec); err != nil {
			if errors.Is(err, ErrStaleRecord) && attempt < saveRetries {
				continue
			}
			return fmt.Errorf("failed to reset state record: %w", err)
		}
		return nil
	}
}
