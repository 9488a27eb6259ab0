package reader

import (
	"errors"

	"shuvoedward/Bible_reader/internal/data"
)

var ErrUnknownBook = errors.New("unknown book")

// Navigator moves a selection through the book list in its given order.
type Navigator struct {
	books []data.Book
	index map[string]int
}

func NewNavigator(books []data.Book) *Navigator {
	index := make(map[string]int, len(books))
	for i, b := range books {
		index[b.Key()] = i
	}
	return &Navigator{books: books, index: index}
}

func (n *Navigator) Books() []data.Book { return n.books }

func (n *Navigator) Book(abbrev string) (data.Book, bool) {
	i, ok := n.index[abbrev]
	if !ok {
		return data.Book{}, false
	}
	return n.books[i], true
}

// Normalize replaces an unknown book with the first chapter of the first
// book and otherwise clamps the chapter into the book's range.
func (n *Navigator) Normalize(sel data.Selection) data.Selection {
	if len(n.books) == 0 {
		return sel
	}

	book, ok := n.Book(sel.Book)
	if !ok {
		sel.Book = n.books[0].Key()
		sel.Chapter = 1
		return sel
	}
	sel.Chapter = clamp(sel.Chapter, book.Chapters)
	return sel
}

// Previous steps back one chapter, into the previous book's last chapter at
// a book boundary. It reports false at the first chapter of the first book.
func (n *Navigator) Previous(sel data.Selection) (data.Selection, bool) {
	i, ok := n.index[sel.Book]
	if !ok {
		return sel, false
	}

	if sel.Chapter > 1 {
		sel.Chapter--
		return sel, true
	}
	if i == 0 {
		return sel, false
	}

	prev := n.books[i-1]
	sel.Book = prev.Key()
	sel.Chapter = max(prev.Chapters, 1)
	return sel, true
}

// Next steps forward one chapter, into the next book's first chapter at a
// book boundary. It reports false at the last chapter of the last book.
func (n *Navigator) Next(sel data.Selection) (data.Selection, bool) {
	i, ok := n.index[sel.Book]
	if !ok {
		return sel, false
	}

	if sel.Chapter < n.books[i].Chapters {
		sel.Chapter++
		return sel, true
	}
	if i == len(n.books)-1 {
		return sel, false
	}

	sel.Book = n.books[i+1].Key()
	sel.Chapter = 1
	return sel, true
}

func (n *Navigator) HasPrevious(sel data.Selection) bool {
	_, ok := n.Previous(sel)
	return ok
}

func (n *Navigator) HasNext(sel data.Selection) bool {
	_, ok := n.Next(sel)
	return ok
}

// SelectBook opens the first chapter of abbrev.
func (n *Navigator) SelectBook(sel data.Selection, abbrev string) (data.Selection, error) {
	if _, ok := n.index[abbrev]; !ok {
		return sel, ErrUnknownBook
	}
	sel.Book = abbrev
	sel.Chapter = 1
	return sel, nil
}

// SelectChapter jumps within the current book, clamped to its range.
func (n *Navigator) SelectChapter(sel data.Selection, chapter int) data.Selection {
	book, ok := n.Book(sel.Book)
	if !ok {
		return sel
	}
	sel.Chapter = clamp(chapter, book.Chapters)
	return sel
}

func clamp(chapter, last int) int {
	if last < 1 {
		last = 1
	}
	return min(max(chapter, 1), last)
}
