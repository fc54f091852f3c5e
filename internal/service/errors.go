package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")
	ErrNotAuthenticated    = errors.New("not authenticated")

	ErrTokenIsExpired = errors.New("token is expired")
	ErrTokenIsInvalid = errors.New("token is invalid")

	ErrTokenCreationFailed = errors.New("token creation failed")
)

// Client-side sentinels wrapping adapter failures so the TUI can present a
// human-readable cause without inspecting transport details.
var (
	ErrRegisterOnServer = errors.New("registration failed")
	ErrLoginOnServer    = errors.New("login failed")
	ErrSearchOnBooksAPI = errors.New("book search failed")
)
