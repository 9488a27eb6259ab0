// Package reader holds the state of reader panels: what each panel shows,
// how it moves between chapters and which commentary result it may accept.
package reader

import (
	"fmt"
	"time"

	"shuvoedward/Bible_reader/internal/data"
)

// Key identifies the chapter a commentary was requested for. The version is
// left out: commentary follows the chapter across translations.
type Key struct {
	Book    string `json:"book"`
	Chapter int    `json:"chapter"`
}

func (k Key) String() string {
	return fmt.Sprintf("%s:%d", k.Book, k.Chapter)
}

// Ticket is handed out for each commentary request. Only the newest ticket
// for a key may ever be applied.
type Ticket struct {
	Key Key    `json:"key"`
	Seq uint64 `json:"seq"`
}

type CommentaryStatus string

const (
	CommentaryIdle    CommentaryStatus = "idle"
	CommentaryPending CommentaryStatus = "pending"
	CommentaryReady   CommentaryStatus = "ready"
	CommentaryFailed  CommentaryStatus = "failed"
)

// Outcome reports what happened to a resolved ticket.
type Outcome string

const (
	OutcomeApplied    Outcome = "applied"
	OutcomeSuperseded Outcome = "superseded"
	OutcomeDisplaced  Outcome = "displaced"
)

// State is one reader panel. It is stored as JSON, so every field is
// exported.
type State struct {
	ID        string         `json:"id"`
	Selection data.Selection `json:"selection"`
	Search    string         `json:"search"`

	CommentaryOpen   bool             `json:"commentaryOpen"`
	CommentaryStatus CommentaryStatus `json:"commentaryStatus"`
	Commentary       *data.Commentary `json:"commentary,omitempty"`
	CommentaryError  string           `json:"commentaryError,omitempty"`

	// Outstanding holds the newest unresolved ticket sequence per key.
	Outstanding map[string]uint64 `json:"outstanding"`
	NextSeq     uint64            `json:"nextSeq"`

	UpdatedAt time.Time `json:"updatedAt"`
}

func NewState(id string, sel data.Selection) *State {
	return &State{
		ID:               id,
		Selection:        sel,
		CommentaryStatus: CommentaryIdle,
		Outstanding:      make(map[string]uint64),
		UpdatedAt:        time.Now(),
	}
}

func (s *State) CurrentKey() Key {
	return Key{Book: s.Selection.Book, Chapter: s.Selection.Chapter}
}

// Select moves the panel. Commentary shown for another chapter is dropped;
// an outstanding request for the new chapter shows as pending again.
func (s *State) Select(sel data.Selection) {
	s.Selection = sel
	s.UpdatedAt = time.Now()

	key := s.CurrentKey()
	if s.Commentary != nil && (Key{Book: s.Commentary.Book, Chapter: s.Commentary.Chapter}) == key {
		return
	}

	s.Commentary = nil
	s.CommentaryError = ""
	s.CommentaryStatus = CommentaryIdle
	if _, ok := s.outstanding()[key.String()]; ok {
		s.CommentaryStatus = CommentaryPending
	}
}

// IssueTicket records a commentary request for the current chapter.
func (s *State) IssueTicket() Ticket {
	s.NextSeq++
	t := Ticket{Key: s.CurrentKey(), Seq: s.NextSeq}

	s.outstanding()[t.Key.String()] = t.Seq
	s.CommentaryOpen = true
	s.CommentaryStatus = CommentaryPending
	s.Commentary = nil
	s.CommentaryError = ""
	s.UpdatedAt = time.Now()

	return t
}

// Resolve delivers the result of t. It is applied only when t is still the
// newest ticket for its key and the panel still shows that key.
func (s *State) Resolve(t Ticket, commentary *data.Commentary, err error) Outcome {
	pending := s.outstanding()
	if seq, ok := pending[t.Key.String()]; !ok || seq != t.Seq {
		return OutcomeSuperseded
	}
	delete(pending, t.Key.String())

	if s.CurrentKey() != t.Key {
		return OutcomeDisplaced
	}

	s.UpdatedAt = time.Now()
	if err != nil {
		s.Commentary = nil
		s.CommentaryStatus = CommentaryFailed
		s.CommentaryError = err.Error()
		return OutcomeApplied
	}

	s.Commentary = commentary
	s.CommentaryStatus = CommentaryReady
	s.CommentaryError = ""
	return OutcomeApplied
}

func (s *State) outstanding() map[string]uint64 {
	if s.Outstanding == nil {
		s.Outstanding = make(map[string]uint64)
	}
	return s.Outstanding
}
