package tui

import (
	"github.com/bookshelf-app/bookshelf/models"
)

type authDoneMsg struct {
	user models.User
	err  error
}

type searchDoneMsg struct {
	books []models.SavedBook
	err   error
}

type shelfLoadedMsg struct {
	user models.User
	err  error
}

type shelfChangedMsg struct {
	user models.User
	err  error
}

type copiedMsg struct{}

type clearStatusMsg struct{}
