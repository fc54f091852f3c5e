package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrServerError, body)
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}
}

// mapGraphQLErrors converts the message-only errors list of a GraphQL
// response into the package's sentinel errors. The server deliberately
// exposes nothing but the message text, so matching is by message content.
func mapGraphQLErrors(gqlErrors []graphQLError) error {
	if len(gqlErrors) == 0 {
		return nil
	}

	message := gqlErrors[0].Message
	lower := strings.ToLower(message)

	switch {
	case strings.Contains(lower, "not authenticated"),
		strings.Contains(lower, "wrong password"),
		strings.Contains(lower, "token is expired"),
		strings.Contains(lower, "token is invalid"):
		return fmt.Errorf("%w: %s", ErrUnauthorized, message)
	case strings.Contains(lower, "already exists"):
		return fmt.Errorf("%w: %s", ErrConflict, message)
	case strings.Contains(lower, "no user was found"):
		return fmt.Errorf("%w: %s", ErrNotFound, message)
	case strings.Contains(lower, "invalid data provided"):
		return fmt.Errorf("%w: %s", ErrBadRequest, message)
	default:
		return fmt.Errorf("%w: %s", ErrServerError, message)
	}
}
