package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"shuvoedward/Bible_reader/internal/data"
	"shuvoedward/Bible_reader/internal/schema"
	"shuvoedward/Bible_reader/internal/upstream"
)

// BibleService proxies the read-only content endpoints of the Bible API.
type BibleService struct {
	client Requester
	logger *slog.Logger
}

func NewBibleService(client Requester, logger *slog.Logger) *BibleService {
	return &BibleService{
		client: client,
		logger: logger,
	}
}

func (s *BibleService) GetBooks(ctx context.Context, _ NoInput) ([]data.Book, error) {
	return call[[]data.Book](ctx, s.client, get("/books"), data.BooksSchema)
}

func (s *BibleService) GetBook(ctx context.Context, in BookInput) (*data.BookDetails, error) {
	if err := schema.Check(BookInputSchema, in); err != nil {
		return nil, err
	}

	book, err := call[data.BookDetails](ctx, s.client,
		get("/books/"+url.PathEscape(in.Abbrev)), data.BookDetailsSchema)
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// GetChapter returns the verses of one chapter. The verse list must run
// contiguously from 1; anything else is treated as a contract violation.
func (s *BibleService) GetChapter(ctx context.Context, in ChapterInput) (*data.Chapter, error) {
	if err := schema.Check(ChapterInputSchema, in); err != nil {
		return nil, err
	}

	path := fmt.Sprintf("/verses/%s/%s/%d",
		url.PathEscape(in.Version), url.PathEscape(in.Abbrev), in.Chapter)

	chapter, err := call[data.Chapter](ctx, s.client, get(path), data.ChapterSchema)
	if err != nil {
		return nil, err
	}

	if err := checkContiguous(chapter.Verses); err != nil {
		s.logger.Warn("non-contiguous chapter from upstream",
			"version", in.Version, "book", in.Abbrev, "chapter", in.Chapter, "error", err)
		return nil, fmt.Errorf("GET %s: %w: %w", path, ErrInvalidResponse, err)
	}

	return &chapter, nil
}

// GetVerse always answers with the single-verse shape.
func (s *BibleService) GetVerse(ctx context.Context, in VerseInput) (*data.SingleVerse, error) {
	if err := schema.Check(VerseInputSchema, in); err != nil {
		return nil, err
	}

	path := fmt.Sprintf("/verses/%s/%s/%d/%d",
		url.PathEscape(in.Version), url.PathEscape(in.Abbrev), in.Chapter, in.Number)

	verse, err := call[data.SingleVerse](ctx, s.client, get(path), data.SingleVerseSchema)
	if err != nil {
		return nil, err
	}
	return &verse, nil
}

func (s *BibleService) GetRandomVerse(ctx context.Context, in RandomVerseInput) (*data.SingleVerse, error) {
	if err := schema.Check(RandomVerseInputSchema, in); err != nil {
		return nil, err
	}

	path := fmt.Sprintf("/verses/%s/random", url.PathEscape(in.Version))

	verse, err := call[data.SingleVerse](ctx, s.client, get(path), data.SingleVerseSchema)
	if err != nil {
		return nil, err
	}
	return &verse, nil
}

func (s *BibleService) GetRandomVerseFromBook(ctx context.Context, in RandomVerseFromBookInput) (*data.SingleVerse, error) {
	if err := schema.Check(RandomVerseFromBookInputSchema, in); err != nil {
		return nil, err
	}

	path := fmt.Sprintf("/verses/%s/%s/random", url.PathEscape(in.Version), url.PathEscape(in.Abbrev))

	verse, err := call[data.SingleVerse](ctx, s.client, get(path), data.SingleVerseSchema)
	if err != nil {
		return nil, err
	}
	return &verse, nil
}

func (s *BibleService) SearchVerses(ctx context.Context, in SearchInput) (*data.SearchResult, error) {
	if err := schema.Check(SearchInputSchema, in); err != nil {
		return nil, err
	}

	req := upstream.Request{Method: http.MethodPost, Path: "/verses/search", Body: in}

	result, err := call[data.SearchResult](ctx, s.client, req, data.SearchResultSchema)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *BibleService) GetVersions(ctx context.Context, _ NoInput) ([]data.Version, error) {
	return call[[]data.Version](ctx, s.client, get("/versions"), data.VersionsSchema)
}

func checkContiguous(verses []data.Verse) error {
	for i, v := range verses {
		if v.Number != i+1 {
			return fmt.Errorf("verse at index %d has number %d, expected %d", i, v.Number, i+1)
		}
	}
	return nil
}
