package main

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"shuvoedward/Bible_reader/internal/data"
	"shuvoedward/Bible_reader/internal/reader"
)

type sessionResponse struct {
	Session reader.State `json:"session"`
}

type commentaryResponse struct {
	Commentary struct {
		Status     string           `json:"status"`
		Open       bool             `json:"open"`
		Key        reader.Key       `json:"key"`
		Commentary *data.Commentary `json:"commentary"`
		Error      string           `json:"error"`
	} `json:"commentary"`
}

func newTestPanel(t *testing.T) string {
	t.Helper()

	rr := serve(httptest.NewRequest(http.MethodPost, "/reader", nil))
	if rr.Code != http.StatusCreated {
		t.Fatalf("create panel: got %v want %v", rr.Code, http.StatusCreated)
	}

	var body sessionResponse
	decodeBody(t, rr, &body)
	return body.Session.ID
}

func navigate(t *testing.T, id, payload string) (*httptest.ResponseRecorder, reader.State) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/reader/"+id+"/navigate", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rr := serve(req)

	var body sessionResponse
	if rr.Code == http.StatusOK {
		decodeBody(t, rr, &body)
	}
	return rr, body.Session
}

func commentaryState(t *testing.T, id string) commentaryResponse {
	t.Helper()

	rr := serve(httptest.NewRequest(http.MethodGet, "/reader/"+id+"/commentary", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("commentary state: got %v want %v", rr.Code, http.StatusOK)
	}

	var body commentaryResponse
	decodeBody(t, rr, &body)
	return body
}

func requestCommentary(t *testing.T, id string) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/reader/"+id+"/commentary", nil)
	req.Header.Set("Accept", "application/json")
	rr := serve(req)
	if rr.Code != http.StatusAccepted {
		t.Fatalf("request commentary: got %v want %v\n%s", rr.Code, http.StatusAccepted, rr.Body.String())
	}
}

func TestReaderHandler_Open(t *testing.T) {
	rr := serve(httptest.NewRequest(http.MethodGet, "/", nil))

	if rr.Code != http.StatusSeeOther {
		t.Fatalf("handler returned wrong status code: got %v want %v", rr.Code, http.StatusSeeOther)
	}

	location := rr.Header().Get("Location")
	if !strings.HasPrefix(location, "/reader/") {
		t.Fatalf("unexpected redirect %q", location)
	}

	page := serve(httptest.NewRequest(http.MethodGet, location, nil))
	if page.Code != http.StatusOK {
		t.Fatalf("panel page: got %v want %v", page.Code, http.StatusOK)
	}

	body := page.Body.String()
	for _, want := range []string{"Gênesis 1", "Gênesis 1 first verse", "Old Testament", "João", "ACF"} {
		if !strings.Contains(body, want) {
			t.Errorf("page does not contain %q", want)
		}
	}
}

func TestReaderHandler_ShowUnknownPanel(t *testing.T) {
	tests := []string{
		"/reader/not-a-uuid",
		"/reader/6f1c2a8e-52a4-4d4c-9d2e-1c7a4b1f0e11",
	}

	for _, path := range tests {
		rr := serve(httptest.NewRequest(http.MethodGet, path, nil))
		if rr.Code != http.StatusNotFound {
			t.Errorf("%s: got %v want %v", path, rr.Code, http.StatusNotFound)
		}
	}
}

func TestReaderHandler_Navigate(t *testing.T) {
	tests := []struct {
		name            string
		steps           []string
		expectedStatus  int
		expectedBook    string
		expectedChapter int
	}{
		{
			name:            "previous at the first chapter of the Bible stays put",
			steps:           []string{`{"action":"prev"}`},
			expectedStatus:  http.StatusOK,
			expectedBook:    "gn",
			expectedChapter: 1,
		},
		{
			name:            "next wraps into the following book",
			steps:           []string{`{"action":"next"}`, `{"action":"next"}`},
			expectedStatus:  http.StatusOK,
			expectedBook:    "ex",
			expectedChapter: 1,
		},
		{
			name:            "previous wraps into the last chapter of the previous book",
			steps:           []string{`{"action":"book","book":"ex"}`, `{"action":"prev"}`},
			expectedStatus:  http.StatusOK,
			expectedBook:    "gn",
			expectedChapter: 2,
		},
		{
			name:            "next at the last chapter of the Bible stays put",
			steps:           []string{`{"action":"book","book":"jo"}`, `{"action":"chapter","chapter":2}`, `{"action":"next"}`},
			expectedStatus:  http.StatusOK,
			expectedBook:    "jo",
			expectedChapter: 2,
		},
		{
			name:            "chapter is clamped to the book",
			steps:           []string{`{"action":"book","book":"ex"}`, `{"action":"chapter","chapter":40}`},
			expectedStatus:  http.StatusOK,
			expectedBook:    "ex",
			expectedChapter: 3,
		},
		{
			name:           "unknown book",
			steps:          []string{`{"action":"book","book":"zz"}`},
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name:           "unknown action",
			steps:          []string{`{"action":"jump"}`},
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name:           "unknown version",
			steps:          []string{`{"action":"version","version":"kjv"}`},
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name:           "unknown field",
			steps:          []string{`{"action":"next","page":3}`},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := newTestPanel(t)

			var (
				rr    *httptest.ResponseRecorder
				state reader.State
			)
			for _, step := range tt.steps {
				rr, state = navigate(t, id, step)
			}

			if rr.Code != tt.expectedStatus {
				t.Fatalf("handler returned wrong status code: got %v want %v\n%s", rr.Code, tt.expectedStatus, rr.Body.String())
			}
			if tt.expectedStatus != http.StatusOK {
				return
			}

			if state.Selection.Book != tt.expectedBook || state.Selection.Chapter != tt.expectedChapter {
				t.Errorf("selection: got %s %d want %s %d",
					state.Selection.Book, state.Selection.Chapter, tt.expectedBook, tt.expectedChapter)
			}
		})
	}
}

func TestReaderHandler_NavigateForm(t *testing.T) {
	id := newTestPanel(t)

	form := url.Values{"action": {"version"}, "version": {"acf"}}
	req := httptest.NewRequest(http.MethodPost, "/reader/"+id+"/navigate", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rr := serve(req)
	if rr.Code != http.StatusSeeOther {
		t.Fatalf("handler returned wrong status code: got %v want %v", rr.Code, http.StatusSeeOther)
	}

	st, err := testApp.sessions.Get(req.Context(), id)
	if err != nil {
		t.Fatal(err)
	}
	if st.Selection.Version != "acf" {
		t.Errorf("version: got %q want %q", st.Selection.Version, "acf")
	}
}

func TestReaderHandler_Search(t *testing.T) {
	id := newTestPanel(t)

	req := httptest.NewRequest(http.MethodPost, "/reader/"+id+"/search", strings.NewReader(`{"search":"  light "}`))
	req.Header.Set("Content-Type", "application/json")
	rr := serve(req)
	if rr.Code != http.StatusOK {
		t.Fatalf("handler returned wrong status code: got %v want %v", rr.Code, http.StatusOK)
	}

	var body sessionResponse
	decodeBody(t, rr, &body)
	if body.Session.Search != "light" {
		t.Errorf("search: got %q want %q", body.Session.Search, "light")
	}

	page := serve(httptest.NewRequest(http.MethodGet, "/reader/"+id, nil))
	if !strings.Contains(page.Body.String(), "found light") {
		t.Error("page does not show the search results")
	}
}

func TestReaderHandler_Commentary(t *testing.T) {
	id := newTestPanel(t)

	requestCommentary(t, id)
	testApp.wg.Wait()

	got := commentaryState(t, id)
	if got.Commentary.Status != string(reader.CommentaryReady) {
		t.Fatalf("status: got %q want %q (error %q)", got.Commentary.Status, reader.CommentaryReady, got.Commentary.Error)
	}
	if !got.Commentary.Open {
		t.Error("requesting commentary must open the panel")
	}
	if got.Commentary.Commentary == nil || !strings.Contains(got.Commentary.Commentary.Text, "Gênesis chapter 1") {
		t.Errorf("unexpected commentary %+v", got.Commentary.Commentary)
	}

	toggle := httptest.NewRequest(http.MethodPost, "/reader/"+id+"/commentary/toggle", nil)
	toggle.Header.Set("Accept", "application/json")
	if rr := serve(toggle); rr.Code != http.StatusOK {
		t.Fatalf("toggle: got %v want %v", rr.Code, http.StatusOK)
	}
	if commentaryState(t, id).Commentary.Open {
		t.Error("toggle must close the panel")
	}
}

func TestReaderHandler_LateCommentaryIsDiscarded(t *testing.T) {
	id := newTestPanel(t)

	release := testModel.holdGenerations()
	requestCommentary(t, id)

	if rr, _ := navigate(t, id, `{"action":"next"}`); rr.Code != http.StatusOK {
		t.Fatalf("navigate: got %v", rr.Code)
	}

	release()
	testApp.wg.Wait()

	got := commentaryState(t, id)
	if got.Commentary.Key != (reader.Key{Book: "gn", Chapter: 2}) {
		t.Fatalf("key: got %+v", got.Commentary.Key)
	}
	if got.Commentary.Commentary != nil {
		t.Errorf("commentary for chapter 1 shown on chapter 2: %+v", got.Commentary.Commentary)
	}
	if got.Commentary.Status != string(reader.CommentaryIdle) {
		t.Errorf("status: got %q want %q", got.Commentary.Status, reader.CommentaryIdle)
	}
}

func TestReaderHandler_LateCommentaryShownAfterReturning(t *testing.T) {
	id := newTestPanel(t)

	release := testModel.holdGenerations()
	requestCommentary(t, id)

	navigate(t, id, `{"action":"next"}`)
	navigate(t, id, `{"action":"prev"}`)

	if got := commentaryState(t, id); got.Commentary.Status != string(reader.CommentaryPending) {
		t.Errorf("status after returning: got %q want %q", got.Commentary.Status, reader.CommentaryPending)
	}

	release()
	testApp.wg.Wait()

	got := commentaryState(t, id)
	if got.Commentary.Commentary == nil || got.Commentary.Commentary.Chapter != 1 {
		t.Errorf("expected chapter 1 commentary, got %+v", got.Commentary.Commentary)
	}
}

func TestReaderHandler_Close(t *testing.T) {
	id := newTestPanel(t)

	rr := serve(httptest.NewRequest(http.MethodDelete, "/reader/"+id, nil))
	if rr.Code != http.StatusNoContent {
		t.Fatalf("handler returned wrong status code: got %v want %v", rr.Code, http.StatusNoContent)
	}

	rr = serve(httptest.NewRequest(http.MethodGet, "/reader/"+id+"/commentary", nil))
	if rr.Code != http.StatusNotFound {
		t.Errorf("closed panel: got %v want %v", rr.Code, http.StatusNotFound)
	}
}

func TestHealthcheck(t *testing.T) {
	rr := serve(httptest.NewRequest(http.MethodGet, "/v1/healthcheck", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("handler returned wrong status code: got %v want %v", rr.Code, http.StatusOK)
	}
	if !strings.Contains(rr.Body.String(), `"available"`) {
		t.Errorf("unexpected body %s", rr.Body.String())
	}
}
