package tui

import (
	"fmt"
	"strings"

	"github.com/bookshelf-app/bookshelf/models"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
)

type searchModel struct {
	input      textinput.Model
	results    []models.SavedBook
	idx        int
	focusInput bool
	searching  bool
	spinner    spinner.Model
	status     string
}

func newSearchModel() searchModel {
	input := textinput.New()
	input.Placeholder = "search for a book"
	input.CharLimit = 200
	input.Width = 50
	input.Focus()

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return searchModel{input: input, focusInput: true, spinner: s}
}

func (m searchModel) current() (models.SavedBook, bool) {
	if len(m.results) == 0 || m.idx < 0 || m.idx >= len(m.results) {
		return models.SavedBook{}, false
	}
	return m.results[m.idx], true
}

func (m searchModel) View(saved map[string]struct{}) string {
	header := titleStyle.Render("Search books")
	if m.searching {
		header += "  " + m.spinner.View()
	}
	out := header + "\n\nQuery [" + m.input.View() + "]\n\n"

	switch {
	case m.searching:
		out += "Searching...\n"
	case len(m.results) == 0:
		out += "No results yet\n"
	default:
		for i, book := range m.results {
			cursor := "  "
			if i == m.idx && !m.focusInput {
				cursor = "> "
			}
			marker := ""
			if _, ok := saved[book.BookID]; ok {
				marker = " " + savedStyle.Render("[saved]")
			}
			out += fmt.Sprintf("%s%s — %s%s\n", cursor, book.Title, strings.Join(book.Authors, ", "), marker)
		}

		if book, ok := m.current(); ok && !m.focusInput && book.Description != "" {
			out += "\n" + snippet(book.Description, 200) + "\n"
		}
	}

	if m.status != "" {
		out += "\n" + m.status + "\n"
	}

	help := "enter search │ tab results │ b shelf │ q quit"
	if !m.focusInput {
		help = "s save │ c copy link │ b shelf │ tab query │ q quit"
	}
	out += "\n" + helpStyle.Render(help)
	return out
}

// snippet trims text to at most limit runes, cutting at a word boundary.
func snippet(text string, limit int) string {
	runes := []rune(strings.TrimSpace(text))
	if len(runes) <= limit {
		return string(runes)
	}

	cut := string(runes[:limit])
	if idx := strings.LastIndex(cut, " "); idx > 0 {
		cut = cut[:idx]
	}
	return cut + "…"
}
