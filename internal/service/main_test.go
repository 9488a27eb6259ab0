package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"shuvoedward/Bible_reader/internal/data"
	"shuvoedward/Bible_reader/internal/upstream"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

type recordedCall struct {
	Method string
	Path   string
	Auth   string
	Body   string
}

// fakeUpstream is a Bible API stand-in that records every call it receives.
type fakeUpstream struct {
	mu    sync.Mutex
	calls []recordedCall
	hits  atomic.Int32
}

func (f *fakeUpstream) last() recordedCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.calls) == 0 {
		return recordedCall{}
	}
	return f.calls[len(f.calls)-1]
}

func newFakeUpstream(t *testing.T, status int, body string) (*upstream.Client, *fakeUpstream) {
	t.Helper()

	f := &fakeUpstream{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.hits.Add(1)
		b, _ := io.ReadAll(r.Body)

		f.mu.Lock()
		f.calls = append(f.calls, recordedCall{
			Method: r.Method,
			Path:   r.URL.Path,
			Auth:   r.Header.Get("Authorization"),
			Body:   string(b),
		})
		f.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)

	client, err := upstream.New(upstream.Config{
		Name:    "bible",
		BaseURL: srv.URL,
		Token:   "service-token",
	})
	require.NoError(t, err)

	return client, f
}

const bookFields = `"abbrev":{"pt":"gn","en":"gn"},"author":"Moisés","chapters":50,"group":"Pentateuco","name":"Gênesis","testament":"VT"`

func chapterJSON(numbers ...int) string {
	verses := make([]string, 0, len(numbers))
	for _, n := range numbers {
		verses = append(verses, fmt.Sprintf(`{"number":%d,"text":"verse %d"}`, n, n))
	}
	return fmt.Sprintf(`{"book":{%s,"version":"nvi"},"chapter":{"number":1,"verses":%d},"verses":[%s]}`,
		bookFields, len(numbers), strings.Join(verses, ","))
}

func singleVerseJSON(chapter, number int) string {
	return fmt.Sprintf(`{"book":{%s,"version":"nvi"},"chapter":%d,"number":%d,"text":"In the beginning"}`,
		bookFields, chapter, number)
}

// fakeModel records what the services send to the generative provider.
type fakeModel struct {
	mu sync.Mutex

	reply string
	err   error

	calls       int
	lastModel   string
	lastPrompt  string
	lastHistory []data.ChatMessage
	lastMessage string
	lastMime    string
	lastImage   []byte
}

func (m *fakeModel) Generate(_ context.Context, model, prompt string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	m.lastModel, m.lastPrompt = model, prompt
	return m.reply, m.err
}

func (m *fakeModel) Chat(_ context.Context, model string, history []data.ChatMessage, message string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	m.lastModel, m.lastHistory, m.lastMessage = model, history, message
	return m.reply, m.err
}

func (m *fakeModel) GenerateWithImage(_ context.Context, model, prompt, mimeType string, image []byte) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	m.lastModel, m.lastPrompt, m.lastMime, m.lastImage = model, prompt, mimeType, image
	return m.reply, m.err
}
