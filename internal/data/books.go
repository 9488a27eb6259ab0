package data

import "strings"

type BookAbbrev struct {
	PT string `json:"pt"`
	EN string `json:"en"`
}

// Book is sourced entirely from the content provider and never mutated.
type Book struct {
	Abbrev    BookAbbrev `json:"abbrev"`
	Author    string     `json:"author"`
	Chapters  int        `json:"chapters"`
	Group     string     `json:"group"`
	Name      string     `json:"name"`
	Testament string     `json:"testament"`
}

// Testament groupings. The provider answers with its own codes ("VT"/"NT");
// NormalizedTestament maps both forms onto these.
const (
	TestamentOld = "old"
	TestamentNew = "new"
)

func (b Book) NormalizedTestament() string {
	switch strings.ToLower(b.Testament) {
	case "vt", "at", "ot", "old":
		return TestamentOld
	case "nt", "new":
		return TestamentNew
	default:
		return strings.ToLower(b.Testament)
	}
}

// Key is the address used by the content provider, the Portuguese abbrev.
func (b Book) Key() string {
	return b.Abbrev.PT
}

type BookDetails struct {
	Book
	Comment string `json:"comment,omitempty"`
}

// ChapterBook is the book record denormalised into chapter and verse answers.
type ChapterBook struct {
	Book
	Version string `json:"version"`
}

type ChapterInfo struct {
	Number int `json:"number"`
	Verses int `json:"verses"`
}

type Verse struct {
	Number int    `json:"number"`
	Text   string `json:"text"`
}

// Chapter is an immutable snapshot for one (version, book, chapter) request.
type Chapter struct {
	Book    ChapterBook `json:"book"`
	Chapter ChapterInfo `json:"chapter"`
	Verses  []Verse     `json:"verses"`
}

// SingleVerse carries its own book and chapter context, as returned by the
// verse, random and search endpoints.
type SingleVerse struct {
	Book    ChapterBook `json:"book"`
	Chapter int         `json:"chapter"`
	Number  int         `json:"number"`
	Text    string      `json:"text"`
}

type Version struct {
	Version string `json:"version"`
	Verses  int    `json:"verses"`
}

type SearchResult struct {
	Occurrence int           `json:"occurrence"`
	Version    string        `json:"version"`
	Verses     []SingleVerse `json:"verses"`
}

// SplitTestaments partitions books by testament, keeping upstream order.
func SplitTestaments(books []Book) (oldT, newT []Book) {
	for _, b := range books {
		if b.NormalizedTestament() == TestamentNew {
			newT = append(newT, b)
		} else {
			oldT = append(oldT, b)
		}
	}
	return oldT, newT
}
