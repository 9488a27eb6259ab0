package reader

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"hash/fnv"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"shuvoedward/Bible_reader/internal/data"
)

var ErrSessionNotFound = errors.New("reader session not found")

const lockStripes = 64

// CommentaryFunc produces commentary for a selection.
type CommentaryFunc func(ctx context.Context, sel data.Selection) (*data.Commentary, error)

// Sessions loads, mutates and saves panel state. Updates to one panel are
// serialised; different panels proceed independently.
type Sessions struct {
	backend Backend
	logger  *slog.Logger
	locks   [lockStripes]sync.Mutex

	// CommentaryTimeout bounds one background generation.
	CommentaryTimeout time.Duration
}

func NewSessions(backend Backend, logger *slog.Logger) *Sessions {
	return &Sessions{
		backend:           backend,
		logger:            logger,
		CommentaryTimeout: 90 * time.Second,
	}
}

func (s *Sessions) lock(id string) *sync.Mutex {
	h := fnv.New32a()
	h.Write([]byte(id))
	return &s.locks[h.Sum32()%lockStripes]
}

// Create opens a new panel at sel.
func (s *Sessions) Create(ctx context.Context, sel data.Selection) (*State, error) {
	st := NewState(uuid.NewString(), sel)
	if err := s.save(ctx, st); err != nil {
		return nil, err
	}
	return st, nil
}

func (s *Sessions) Get(ctx context.Context, id string) (*State, error) {
	raw, err := s.backend.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load session %s: %w", id, err)
	}
	if raw == nil {
		return nil, ErrSessionNotFound
	}

	var st State
	if err := json.Unmarshal(raw, &st); err != nil {
		return nil, fmt.Errorf("decode session %s: %w", id, err)
	}
	return &st, nil
}

// Update applies fn to the stored state and saves the result. Nothing is
// saved when fn fails.
func (s *Sessions) Update(ctx context.Context, id string, fn func(*State) error) (*State, error) {
	mu := s.lock(id)
	mu.Lock()
	defer mu.Unlock()

	st, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := fn(st); err != nil {
		return nil, err
	}

	if err := s.save(ctx, st); err != nil {
		return nil, err
	}
	return st, nil
}

func (s *Sessions) Delete(ctx context.Context, id string) error {
	return s.backend.Delete(ctx, id)
}

func (s *Sessions) save(ctx context.Context, st *State) error {
	raw, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("encode session %s: %w", st.ID, err)
	}
	if err := s.backend.Set(ctx, st.ID, raw); err != nil {
		return fmt.Errorf("save session %s: %w", st.ID, err)
	}
	return nil
}

// RequestCommentary issues a ticket for the panel's current chapter and
// runs generate through spawn. The result lands only if the ticket is still
// current when it arrives; navigation does not cancel the generation.
func (s *Sessions) RequestCommentary(ctx context.Context, id string, generate CommentaryFunc, spawn func(func())) (Ticket, error) {
	var (
		ticket Ticket
		sel    data.Selection
	)

	_, err := s.Update(ctx, id, func(st *State) error {
		ticket = st.IssueTicket()
		sel = st.Selection
		return nil
	})
	if err != nil {
		return Ticket{}, err
	}

	spawn(func() {
		genCtx, cancel := context.WithTimeout(context.Background(), s.CommentaryTimeout)
		commentary, genErr := generate(genCtx, sel)
		cancel()

		saveCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		var outcome Outcome
		_, err := s.Update(saveCtx, id, func(st *State) error {
			outcome = st.Resolve(ticket, commentary, genErr)
			return nil
		})
		if err != nil {
			s.logger.Error("store commentary", "session", id, "error", err)
			return
		}

		if outcome != OutcomeApplied {
			s.logger.Info("commentary discarded",
				"session", id, "key", ticket.Key.String(), "seq", ticket.Seq, "outcome", string(outcome))
			return
		}
		if genErr != nil {
			s.logger.Warn("commentary failed", "session", id, "key", ticket.Key.String(), "error", genErr)
		}
	})

	return ticket, nil
}
