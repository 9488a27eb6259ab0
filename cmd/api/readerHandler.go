package main

import (
	"context"
	"errors"
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/julienschmidt/httprouter"
	"golang.org/x/sync/errgroup"

	"shuvoedward/Bible_reader/internal/data"
	"shuvoedward/Bible_reader/internal/reader"
	"shuvoedward/Bible_reader/internal/service"
	"shuvoedward/Bible_reader/internal/validator"
)

var errChapterUnavailable = errors.New("the chapter text could not be loaded")

var navigateActions = []string{"prev", "next", "book", "chapter", "version"}

type BibleReader interface {
	GetBooks(ctx context.Context, in service.NoInput) ([]data.Book, error)
	GetVersions(ctx context.Context, in service.NoInput) ([]data.Version, error)
	GetChapter(ctx context.Context, in service.ChapterInput) (*data.Chapter, error)
	SearchVerses(ctx context.Context, in service.SearchInput) (*data.SearchResult, error)
}

type CommentaryWriter interface {
	Commentary(ctx context.Context, in service.CommentaryInput) (*data.Commentary, error)
}

// ReaderHandler serves reader panels. Each panel is a session holding its
// own selection, search text and commentary.
type ReaderHandler struct {
	app        *application
	bible      BibleReader
	commentary CommentaryWriter
}

func NewReaderHandler(app *application, bible BibleReader, commentary CommentaryWriter) *ReaderHandler {
	return &ReaderHandler{
		app:        app,
		bible:      bible,
		commentary: commentary,
	}
}

func (h *ReaderHandler) RegisterRoutes(router *httprouter.Router) {
	router.HandlerFunc(http.MethodGet, "/", h.Open)
	router.HandlerFunc(http.MethodPost, "/reader", h.Create)
	router.HandlerFunc(http.MethodGet, "/reader/:session", h.Show)
	router.HandlerFunc(http.MethodDelete, "/reader/:session", h.Close)
	router.HandlerFunc(http.MethodPost, "/reader/:session/navigate", h.Navigate)
	router.HandlerFunc(http.MethodPost, "/reader/:session/search", h.Search)
	router.HandlerFunc(http.MethodPost, "/reader/:session/commentary", h.app.generationRateLimit(h.RequestCommentary))
	router.HandlerFunc(http.MethodPost, "/reader/:session/commentary/toggle", h.ToggleCommentary)
	router.HandlerFunc(http.MethodGet, "/reader/:session/commentary", h.CommentaryStatus)
}

type readerPage struct {
	State        *reader.State
	Book         data.Book
	OldTestament []data.Book
	NewTestament []data.Book
	Versions     []data.Version
	Chapter      *data.Chapter
	Chapters     []int
	HasPrevious  bool
	HasNext      bool
	Results      *data.SearchResult
	SearchError  string
}

type navigateRequest struct {
	Action  string `json:"action"`
	Book    string `json:"book"`
	Chapter int    `json:"chapter"`
	Version string `json:"version"`
}

type searchRequest struct {
	Search string `json:"search"`
}

func (h *ReaderHandler) handleReaderError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, context.Canceled):
		h.app.logger.Info("reader request abandoned by client", "path", r.URL.Path)
	default:
		h.app.serviceErrorResponse(w, r, err)
	}
}

// after answers a state change: scripts get the panel state, browsers are
// sent back to the page.
func (h *ReaderHandler) after(w http.ResponseWriter, r *http.Request, status int, st *reader.State) {
	if !wantsJSON(r) {
		http.Redirect(w, r, "/reader/"+st.ID, http.StatusSeeOther)
		return
	}

	err := h.app.writeJSON(w, status, envelope{"session": st}, nil)
	if err != nil {
		h.app.serverErrorResponse(w, r, err)
	}
}

// @Summary Open a reader panel
// @Description Creates a panel at the default chapter and redirects to it.
// @Tags Reader
// @Success 303
// @Router / [get]
func (h *ReaderHandler) Open(w http.ResponseWriter, r *http.Request) {
	st, err := h.app.sessions.Create(r.Context(), h.app.config.defaultSelection())
	if err != nil {
		h.app.serverErrorResponse(w, r, err)
		return
	}

	http.Redirect(w, r, "/reader/"+st.ID, http.StatusSeeOther)
}

// @Summary Create a reader panel
// @Tags Reader
// @Produce json
// @Success 201 {object} object{session=reader.State}
// @Router /reader [post]
func (h *ReaderHandler) Create(w http.ResponseWriter, r *http.Request) {
	st, err := h.app.sessions.Create(r.Context(), h.app.config.defaultSelection())
	if err != nil {
		h.app.serverErrorResponse(w, r, err)
		return
	}

	headers := make(http.Header)
	headers.Set("Location", "/reader/"+st.ID)

	err = h.app.writeJSON(w, http.StatusCreated, envelope{"session": st}, headers)
	if err != nil {
		h.app.serverErrorResponse(w, r, err)
	}
}

// @Summary Render a reader panel
// @Description Loads the book list, the versions and the selected chapter concurrently and renders the panel.
// @Tags Reader
// @Produce html
// @Param session path string true "Panel id"
// @Success 200
// @Failure 404 {object} object{error=string}
// @Failure 502 {object} object{error=string}
// @Router /reader/{session} [get]
func (h *ReaderHandler) Show(w http.ResponseWriter, r *http.Request) {
	id, err := h.app.readSessionParam(r)
	if err != nil {
		h.app.notFoundResponse(w, r)
		return
	}

	st, err := h.app.sessions.Get(r.Context(), id)
	if err != nil {
		h.handleReaderError(w, r, err)
		return
	}

	page := readerPage{State: st}
	sel := st.Selection

	g, ctx := errgroup.WithContext(r.Context())

	var books []data.Book
	g.Go(func() error {
		var err error
		books, err = h.bible.GetBooks(ctx, service.NoInput{})
		return err
	})

	g.Go(func() error {
		var err error
		page.Versions, err = h.bible.GetVersions(ctx, service.NoInput{})
		return err
	})

	g.Go(func() error {
		var err error
		page.Chapter, err = h.bible.GetChapter(ctx, service.ChapterInput{
			Version: sel.Version,
			Abbrev:  sel.Book,
			Chapter: sel.Chapter,
		})
		return err
	})

	if st.Search != "" {
		g.Go(func() error {
			results, err := h.bible.SearchVerses(ctx, service.SearchInput{Version: sel.Version, Search: st.Search})
			if err != nil {
				// A failed search leaves the rest of the panel usable.
				h.app.logger.Warn("reader search", "session", id, "search", st.Search, "error", err)
				page.SearchError = "search is unavailable right now"
				return nil
			}
			page.Results = results
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		h.handleReaderError(w, r, err)
		return
	}

	nav := reader.NewNavigator(books)
	page.Book, _ = nav.Book(sel.Book)
	page.OldTestament, page.NewTestament = data.SplitTestaments(books)
	page.HasPrevious = nav.HasPrevious(sel)
	page.HasNext = nav.HasNext(sel)
	for n := 1; n <= page.Book.Chapters; n++ {
		page.Chapters = append(page.Chapters, n)
	}

	if wantsJSON(r) {
		err = h.app.writeJSON(w, http.StatusOK, envelope{"page": page}, nil)
		if err != nil {
			h.app.serverErrorResponse(w, r, err)
		}
		return
	}

	h.app.render(w, r, http.StatusOK, "reader.html", page)
}

// @Summary Close a reader panel
// @Tags Reader
// @Param session path string true "Panel id"
// @Success 204
// @Router /reader/{session} [delete]
func (h *ReaderHandler) Close(w http.ResponseWriter, r *http.Request) {
	id, err := h.app.readSessionParam(r)
	if err != nil {
		h.app.notFoundResponse(w, r)
		return
	}

	if err := h.app.sessions.Delete(r.Context(), id); err != nil {
		h.app.serverErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// @Summary Move a reader panel
// @Description prev and next wrap across book boundaries in book list order and stop at either end of the Bible.
// @Tags Reader
// @Accept json
// @Produce json
// @Param session path string true "Panel id"
// @Param input body navigateRequest true "action is one of prev, next, book, chapter, version"
// @Success 200 {object} object{session=reader.State}
// @Failure 422 {object} object{error=object}
// @Router /reader/{session}/navigate [post]
func (h *ReaderHandler) Navigate(w http.ResponseWriter, r *http.Request) {
	id, err := h.app.readSessionParam(r)
	if err != nil {
		h.app.notFoundResponse(w, r)
		return
	}

	req, err := h.readNavigate(w, r)
	if err != nil {
		h.app.badRequestResponse(w, r, err)
		return
	}

	v := validator.New()
	v.Check(validator.PermittedValue(req.Action, navigateActions...), "action", "must be one of "+strings.Join(navigateActions, ", "))
	v.Check(req.Action != "book" || req.Book != "", "book", "must be provided")
	v.Check(req.Action != "chapter" || req.Chapter >= 1, "chapter", "must be a positive integer")
	v.Check(req.Action != "version" || req.Version != "", "version", "must be provided")
	if !v.Valid() {
		h.app.failedValidationResponse(w, r, v.Errors)
		return
	}

	books, err := h.bible.GetBooks(r.Context(), service.NoInput{})
	if err != nil {
		h.handleReaderError(w, r, err)
		return
	}

	if req.Action == "version" {
		versions, err := h.bible.GetVersions(r.Context(), service.NoInput{})
		if err != nil {
			h.handleReaderError(w, r, err)
			return
		}
		known := slices.ContainsFunc(versions, func(ver data.Version) bool { return ver.Version == req.Version })
		if !known {
			h.app.failedValidationResponse(w, r, map[string]string{"version": "is not an available version"})
			return
		}
	}

	nav := reader.NewNavigator(books)

	st, err := h.app.sessions.Update(r.Context(), id, func(st *reader.State) error {
		sel := nav.Normalize(st.Selection)

		switch req.Action {
		case "prev":
			sel, _ = nav.Previous(sel)
		case "next":
			sel, _ = nav.Next(sel)
		case "book":
			var err error
			sel, err = nav.SelectBook(sel, req.Book)
			if err != nil {
				return err
			}
		case "chapter":
			sel = nav.SelectChapter(sel, req.Chapter)
		case "version":
			sel.Version = req.Version
		}

		st.Select(sel)
		return nil
	})
	if err != nil {
		h.handleReaderError(w, r, err)
		return
	}

	h.after(w, r, http.StatusOK, st)
}

// @Summary Set the search text of a reader panel
// @Tags Reader
// @Accept json
// @Produce json
// @Param session path string true "Panel id"
// @Param input body searchRequest true "An empty search clears the results"
// @Success 200 {object} object{session=reader.State}
// @Router /reader/{session}/search [post]
func (h *ReaderHandler) Search(w http.ResponseWriter, r *http.Request) {
	id, err := h.app.readSessionParam(r)
	if err != nil {
		h.app.notFoundResponse(w, r)
		return
	}

	var req searchRequest
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		err = h.app.readJSON(w, r, &req)
	} else {
		err = r.ParseForm()
		req.Search = r.PostForm.Get("search")
	}
	if err != nil {
		h.app.badRequestResponse(w, r, err)
		return
	}

	st, err := h.app.sessions.Update(r.Context(), id, func(st *reader.State) error {
		st.Search = strings.TrimSpace(req.Search)
		return nil
	})
	if err != nil {
		h.handleReaderError(w, r, err)
		return
	}

	h.after(w, r, http.StatusOK, st)
}

// @Summary Request commentary for the current chapter
// @Description Generation runs in the background. Its result is shown only if the panel still displays the chapter it was requested for.
// @Tags Reader
// @Produce json
// @Param session path string true "Panel id"
// @Success 202 {object} object{ticket=reader.Ticket}
// @Failure 429 {object} object{error=string}
// @Router /reader/{session}/commentary [post]
func (h *ReaderHandler) RequestCommentary(w http.ResponseWriter, r *http.Request) {
	id, err := h.app.readSessionParam(r)
	if err != nil {
		h.app.notFoundResponse(w, r)
		return
	}

	ticket, err := h.app.sessions.RequestCommentary(r.Context(), id, h.generateCommentary, h.app.background)
	if err != nil {
		h.handleReaderError(w, r, err)
		return
	}

	if !wantsJSON(r) {
		http.Redirect(w, r, "/reader/"+id, http.StatusSeeOther)
		return
	}

	err = h.app.writeJSON(w, http.StatusAccepted, envelope{"ticket": ticket}, nil)
	if err != nil {
		h.app.serverErrorResponse(w, r, err)
	}
}

// @Summary Open or close the commentary panel
// @Tags Reader
// @Produce json
// @Param session path string true "Panel id"
// @Success 200 {object} object{session=reader.State}
// @Router /reader/{session}/commentary/toggle [post]
func (h *ReaderHandler) ToggleCommentary(w http.ResponseWriter, r *http.Request) {
	id, err := h.app.readSessionParam(r)
	if err != nil {
		h.app.notFoundResponse(w, r)
		return
	}

	st, err := h.app.sessions.Update(r.Context(), id, func(st *reader.State) error {
		st.CommentaryOpen = !st.CommentaryOpen
		return nil
	})
	if err != nil {
		h.handleReaderError(w, r, err)
		return
	}

	h.after(w, r, http.StatusOK, st)
}

// @Summary Commentary state of a reader panel
// @Description Polled by the page while a generation is pending.
// @Tags Reader
// @Produce json
// @Param session path string true "Panel id"
// @Success 200 {object} object{commentary=object{status=string,open=bool,key=reader.Key,commentary=data.Commentary,error=string}}
// @Router /reader/{session}/commentary [get]
func (h *ReaderHandler) CommentaryStatus(w http.ResponseWriter, r *http.Request) {
	id, err := h.app.readSessionParam(r)
	if err != nil {
		h.app.notFoundResponse(w, r)
		return
	}

	st, err := h.app.sessions.Get(r.Context(), id)
	if err != nil {
		h.handleReaderError(w, r, err)
		return
	}

	env := envelope{
		"commentary": map[string]any{
			"status":     st.CommentaryStatus,
			"open":       st.CommentaryOpen,
			"key":        st.CurrentKey(),
			"commentary": st.Commentary,
			"error":      st.CommentaryError,
		},
	}

	err = h.app.writeJSON(w, http.StatusOK, env, nil)
	if err != nil {
		h.app.serverErrorResponse(w, r, err)
	}
}

// generateCommentary fetches the chapter text and asks the model about it.
func (h *ReaderHandler) generateCommentary(ctx context.Context, sel data.Selection) (*data.Commentary, error) {
	chapter, err := h.bible.GetChapter(ctx, service.ChapterInput{
		Version: sel.Version,
		Abbrev:  sel.Book,
		Chapter: sel.Chapter,
	})
	if err != nil {
		h.app.logger.Warn("commentary chapter", "book", sel.Book, "chapter", sel.Chapter, "error", err)
		return nil, errChapterUnavailable
	}

	return h.commentary.Commentary(ctx, service.CommentaryInput{
		Version:  sel.Version,
		Abbrev:   sel.Book,
		BookName: chapter.Book.Name,
		Chapter:  sel.Chapter,
		Verses:   chapter.Verses,
	})
}

func (h *ReaderHandler) readNavigate(w http.ResponseWriter, r *http.Request) (navigateRequest, error) {
	var req navigateRequest

	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		err := h.app.readJSON(w, r, &req)
		return req, err
	}

	if err := r.ParseForm(); err != nil {
		return req, err
	}

	req.Action = r.PostForm.Get("action")
	req.Book = r.PostForm.Get("book")
	req.Version = r.PostForm.Get("version")

	if chapter := r.PostForm.Get("chapter"); chapter != "" {
		n, err := strconv.Atoi(chapter)
		if err != nil {
			return req, errors.New("chapter must be an integer")
		}
		req.Chapter = n
	}

	return req, nil
}
