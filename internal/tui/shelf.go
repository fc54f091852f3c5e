package tui

import (
	"fmt"
	"strings"

	"github.com/bookshelf-app/bookshelf/models"
)

type shelfModel struct {
	books   []models.SavedBook
	idx     int
	loading bool
	status  string
}

func newShelfModel() shelfModel {
	return shelfModel{loading: true}
}

func (m shelfModel) current() (models.SavedBook, bool) {
	if len(m.books) == 0 || m.idx < 0 || m.idx >= len(m.books) {
		return models.SavedBook{}, false
	}
	return m.books[m.idx], true
}

func (m shelfModel) View(username string) string {
	title := "Saved books"
	if username != "" {
		title = fmt.Sprintf("%s's saved books", username)
	}
	out := titleStyle.Render(title) + "\n\n"

	switch {
	case m.loading:
		out += "Loading...\n"
	case len(m.books) == 0:
		out += "Nothing saved yet\n"
	default:
		for i, book := range m.books {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			out += fmt.Sprintf("%s%s — %s\n", cursor, book.Title, strings.Join(book.Authors, ", "))
		}

		if book, ok := m.current(); ok && book.Description != "" {
			out += "\n" + snippet(book.Description, 200) + "\n"
		}
	}

	if m.status != "" {
		out += "\n" + m.status + "\n"
	}

	out += "\n" + helpStyle.Render("d remove │ c copy link │ s search │ l logout │ q quit")
	return out
}
