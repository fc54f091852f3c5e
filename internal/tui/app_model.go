// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bookshelf-app/bookshelf/internal/service"
	"github.com/bookshelf-app/bookshelf/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenWelcome screen = iota
	screenLogin
	screenRegister
	screenSearch
	screenShelf
)

type appModel struct {
	ctx      context.Context
	services *service.ClientServices

	currentScreen screen

	welcome  welcomeModel
	login    loginModel
	register registerModel
	search   searchModel
	shelf    shelfModel

	user  models.User
	saved map[string]struct{}

	err           error
	showError     bool
	errorOverlay  errorOverlayModel
	showConfirm   bool
	confirm       confirmModel
	pendingRemove string
}

func newAppModel(ctx context.Context, services *service.ClientServices) appModel {
	return appModel{
		ctx:           ctx,
		services:      services,
		currentScreen: screenWelcome,
		welcome:       newWelcomeModel(),
		login:         newLoginModel(),
		register:      newRegisterModel(),
		search:        newSearchModel(),
		shelf:         newShelfModel(),
	}
}

func (m appModel) Init() tea.Cmd {
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			if key.Matches(msg, keys.yes) {
				m.showConfirm = false
				if m.pendingRemove == "" {
					return m, nil
				}
				return m, m.cmdRemoveBook(m.pendingRemove)
			}
			if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
				m.showConfirm = false
				m.pendingRemove = ""
			}
			return m, nil
		}
	case authDoneMsg:
		m.setSubmitting(false)
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.applyUser(msg.user)
		m.shelf.loading = false
		m.currentScreen = screenSearch
		m.search = newSearchModel()
		return m, nil
	case searchDoneMsg:
		m.search.searching = false
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.search.results = msg.books
		m.search.idx = 0
		if len(msg.books) > 0 {
			m.search.focusInput = false
			m.search.input.Blur()
		}
		return m, nil
	case shelfLoadedMsg:
		m.shelf.loading = false
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.applyUser(msg.user)
		return m, nil
	case shelfChangedMsg:
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.applyUser(msg.user)
		m.setStatus("Shelf updated")
		return m, cmdClearStatus()
	case copiedMsg:
		m.setStatus("Link copied!")
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.search.status = ""
		m.shelf.status = ""
		return m, nil
	case spinner.TickMsg:
		if m.search.searching {
			var cmd tea.Cmd
			m.search.spinner, cmd = m.search.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenWelcome:
		return m.updateWelcome(msg)
	case screenLogin:
		return m.updateLogin(msg)
	case screenRegister:
		return m.updateRegister(msg)
	case screenSearch:
		return m.updateSearch(msg)
	case screenShelf:
		return m.updateShelf(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenWelcome:
		body = m.welcome.View()
	case screenLogin:
		body = m.login.View()
	case screenRegister:
		body = m.register.View()
	case screenSearch:
		body = m.search.View(m.saved)
	case screenShelf:
		body = m.shelf.View(m.user.Username)
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m *appModel) setSubmitting(v bool) {
	m.login.submitting = v
	m.register.submitting = v
}

func (m *appModel) setStatus(status string) {
	switch m.currentScreen {
	case screenSearch:
		m.search.status = status
	case screenShelf:
		m.shelf.status = status
	}
}

// applyUser refreshes everything derived from the server-side user record:
// the shelf listing and the saved-ID set used for search markers.
func (m *appModel) applyUser(user models.User) {
	m.user = user
	m.shelf.books = user.SavedBooks
	if m.shelf.idx >= len(m.shelf.books) {
		m.shelf.idx = len(m.shelf.books) - 1
	}
	if m.shelf.idx < 0 {
		m.shelf.idx = 0
	}

	m.saved = make(map[string]struct{}, len(user.SavedBooks))
	for _, book := range user.SavedBooks {
		m.saved[book.BookID] = struct{}{}
	}
}

func (m appModel) updateWelcome(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.welcome.idx > 0 {
			m.welcome.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.welcome.idx < len(m.welcome.items)-1 {
			m.welcome.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		if m.welcome.idx == 0 {
			m.login = newLoginModel()
			m.currentScreen = screenLogin
		} else {
			m.register = newRegisterModel()
			m.currentScreen = screenRegister
		}
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.quit):
		m.err = ErrUserQuit
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case keyMsg.String() == "ctrl+c":
			m.err = ErrUserQuit
			return m, tea.Quit
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.login = focusNextLogin(m.login)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.login = focusPrevLogin(m.login)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.login.submitting {
				return m, nil
			}
			email := strings.TrimSpace(m.login.inputs[0].Value())
			pass := m.login.inputs[1].Value()
			if email == "" || pass == "" {
				m.showErrorf("Email and password are required")
				return m, nil
			}
			m.login.submitting = true
			return m, m.cmdLogin(email, pass)
		}
	}

	var cmd tea.Cmd
	m.login.inputs[m.login.focus], cmd = m.login.inputs[m.login.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateRegister(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case keyMsg.String() == "ctrl+c":
			m.err = ErrUserQuit
			return m, tea.Quit
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.register = focusNextRegister(m.register)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.register = focusPrevRegister(m.register)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.register.submitting {
				return m, nil
			}
			username := strings.TrimSpace(m.register.inputs[0].Value())
			email := strings.TrimSpace(m.register.inputs[1].Value())
			pass := m.register.inputs[2].Value()
			repeat := m.register.inputs[3].Value()
			if username == "" || email == "" || pass == "" {
				m.showErrorf("Username, email and password are required")
				return m, nil
			}
			if pass != repeat {
				m.showErrorf("Passwords do not match")
				return m, nil
			}
			m.register.submitting = true
			return m, m.cmdRegister(models.Credentials{Username: username, Email: email, Password: pass})
		}
	}

	var cmd tea.Cmd
	m.register.inputs[m.register.focus], cmd = m.register.inputs[m.register.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.search.focusInput {
		switch {
		case keyMsg.String() == "ctrl+c":
			m.err = ErrUserQuit
			return m, tea.Quit
		case key.Matches(keyMsg, keys.esc):
			m.shelf.loading = true
			m.currentScreen = screenShelf
			return m, m.cmdLoadShelf()
		case key.Matches(keyMsg, keys.tab):
			if len(m.search.results) > 0 {
				m.search.focusInput = false
				m.search.input.Blur()
			}
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			query := strings.TrimSpace(m.search.input.Value())
			if query == "" || m.search.searching {
				return m, nil
			}
			m.search.searching = true
			return m, tea.Batch(m.search.spinner.Tick, m.cmdSearch(query))
		}

		var cmd tea.Cmd
		m.search.input, cmd = m.search.input.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		m.err = ErrUserQuit
		return m, tea.Quit
	case key.Matches(keyMsg, keys.tab), key.Matches(keyMsg, keys.esc):
		m.search.focusInput = true
		m.search.input.Focus()
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.up):
		if m.search.idx > 0 {
			m.search.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.search.idx < len(m.search.results)-1 {
			m.search.idx++
		}
	case key.Matches(keyMsg, keys.save):
		book, ok := m.search.current()
		if !ok {
			return m, nil
		}
		if _, alreadySaved := m.saved[book.BookID]; alreadySaved {
			m.search.status = "Already on your shelf"
			return m, cmdClearStatus()
		}
		return m, m.cmdSaveBook(book)
	case key.Matches(keyMsg, keys.copy):
		book, ok := m.search.current()
		if !ok || book.Link == "" {
			return m, nil
		}
		return m, cmdCopyToClipboard(book.Link)
	case key.Matches(keyMsg, keys.shelf):
		m.shelf.loading = true
		m.currentScreen = screenShelf
		return m, m.cmdLoadShelf()
	}

	return m, nil
}

func (m appModel) updateShelf(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		m.err = ErrUserQuit
		return m, tea.Quit
	case key.Matches(keyMsg, keys.logout):
		m.services.AuthService.Logout()
		fresh := newAppModel(m.ctx, m.services)
		return fresh, nil
	case key.Matches(keyMsg, keys.search):
		m.currentScreen = screenSearch
		m.search.focusInput = true
		m.search.input.Focus()
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.up):
		if m.shelf.idx > 0 {
			m.shelf.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.shelf.idx < len(m.shelf.books)-1 {
			m.shelf.idx++
		}
	case key.Matches(keyMsg, keys.remove):
		book, ok := m.shelf.current()
		if !ok {
			return m, nil
		}
		m.showConfirm = true
		m.confirm.message = book.Title
		m.pendingRemove = book.BookID
		return m, nil
	case key.Matches(keyMsg, keys.copy):
		book, ok := m.shelf.current()
		if !ok || book.Link == "" {
			return m, nil
		}
		return m, cmdCopyToClipboard(book.Link)
	}

	return m, nil
}

func (m appModel) cmdLogin(email, password string) tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService
	return func() tea.Msg {
		user, err := auth.Login(ctx, email, password)
		return authDoneMsg{user: user, err: err}
	}
}

func (m appModel) cmdRegister(creds models.Credentials) tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService
	return func() tea.Msg {
		user, err := auth.Register(ctx, creds)
		return authDoneMsg{user: user, err: err}
	}
}

func (m appModel) cmdSearch(query string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.SearchService
	return func() tea.Msg {
		books, err := svc.Search(ctx, query)
		return searchDoneMsg{books: books, err: err}
	}
}

func (m appModel) cmdLoadShelf() tea.Cmd {
	ctx := m.ctx
	svc := m.services.ShelfService
	return func() tea.Msg {
		user, err := svc.Shelf(ctx)
		return shelfLoadedMsg{user: user, err: err}
	}
}

func (m appModel) cmdSaveBook(book models.SavedBook) tea.Cmd {
	ctx := m.ctx
	svc := m.services.ShelfService
	return func() tea.Msg {
		user, err := svc.Save(ctx, book)
		return shelfChangedMsg{user: user, err: err}
	}
}

func (m appModel) cmdRemoveBook(bookID string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.ShelfService
	return func() tea.Msg {
		user, err := svc.Remove(ctx, bookID)
		return shelfChangedMsg{user: user, err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return shelfChangedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func focusNextLogin(m loginModel) loginModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusPrevLogin(m loginModel) loginModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusNextRegister(m registerModel) registerModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusPrevRegister(m registerModel) registerModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}
