package reader

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"shuvoedward/Bible_reader/internal/data"
)

func commentaryFor(b string, c int) *data.Commentary {
	return &data.Commentary{Version: "nvi", Book: b, Chapter: c, Text: "notes on " + b}
}

func TestResolve_AppliesCurrentTicket(t *testing.T) {
	st := NewState("p1", sel("gn", 1))

	ticket := st.IssueTicket()
	assert.Equal(t, CommentaryPending, st.CommentaryStatus)
	assert.True(t, st.CommentaryOpen)

	outcome := st.Resolve(ticket, commentaryFor("gn", 1), nil)

	assert.Equal(t, OutcomeApplied, outcome)
	assert.Equal(t, CommentaryReady, st.CommentaryStatus)
	assert.Equal(t, "notes on gn", st.Commentary.Text)
	assert.Empty(t, st.Outstanding)
}

func TestResolve_DiscardsAfterNavigation(t *testing.T) {
	st := NewState("p1", sel("gn", 1))
	ticket := st.IssueTicket()

	st.Select(sel("gn", 2))
	outcome := st.Resolve(ticket, commentaryFor("gn", 1), nil)

	assert.Equal(t, OutcomeDisplaced, outcome)
	assert.Nil(t, st.Commentary)
	assert.Equal(t, CommentaryIdle, st.CommentaryStatus)
}

func TestResolve_LateResultAfterReturningIsShown(t *testing.T) {
	st := NewState("p1", sel("gn", 1))
	ticket := st.IssueTicket()

	st.Select(sel("gn", 2))
	assert.Equal(t, CommentaryIdle, st.CommentaryStatus)

	st.Select(sel("gn", 1))
	assert.Equal(t, CommentaryPending, st.CommentaryStatus)

	outcome := st.Resolve(ticket, commentaryFor("gn", 1), nil)
	assert.Equal(t, OutcomeApplied, outcome)
	assert.Equal(t, "notes on gn", st.Commentary.Text)
}

func TestResolve_OlderTicketIsSuperseded(t *testing.T) {
	st := NewState("p1", sel("gn", 1))
	first := st.IssueTicket()
	second := st.IssueTicket()

	assert.Equal(t, OutcomeSuperseded, st.Resolve(first, commentaryFor("gn", 1), nil))
	assert.Equal(t, CommentaryPending, st.CommentaryStatus)

	assert.Equal(t, OutcomeApplied, st.Resolve(second, commentaryFor("gn", 1), nil))
	assert.Equal(t, CommentaryReady, st.CommentaryStatus)
}

func TestResolve_Failure(t *testing.T) {
	st := NewState("p1", sel("gn", 1))
	ticket := st.IssueTicket()

	outcome := st.Resolve(ticket, nil, errors.New("Failed to generate content from Gemini"))

	assert.Equal(t, OutcomeApplied, outcome)
	assert.Equal(t, CommentaryFailed, st.CommentaryStatus)
	assert.Equal(t, "Failed to generate content from Gemini", st.CommentaryError)
}

func TestSelect_KeepsCommentaryForSameChapter(t *testing.T) {
	st := NewState("p1", sel("gn", 1))
	st.Resolve(st.IssueTicket(), commentaryFor("gn", 1), nil)

	// switching translation keeps the chapter key
	st.Select(data.Selection{Version: "acf", Book: "gn", Chapter: 1})
	assert.NotNil(t, st.Commentary)

	st.Select(sel("gn", 2))
	assert.Nil(t, st.Commentary)
}

func TestResolve_AppliesAcrossTranslations(t *testing.T) {
	st := NewState("p1", sel("gn", 1))
	ticket := st.IssueTicket()

	st.Select(data.Selection{Version: "acf", Book: "gn", Chapter: 1})
	assert.Equal(t, CommentaryPending, st.CommentaryStatus)

	assert.Equal(t, OutcomeApplied, st.Resolve(ticket, commentaryFor("gn", 1), nil))
	assert.Equal(t, CommentaryReady, st.CommentaryStatus)
}
