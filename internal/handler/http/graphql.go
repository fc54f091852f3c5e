package http

import (
	"encoding/json"
	"net/http"

	"github.com/bookshelf-app/bookshelf/internal/logger"
	"github.com/bookshelf-app/bookshelf/internal/utils"
	"github.com/graphql-go/graphql"
)

// graphQLRequest is the standard POST body of a GraphQL-over-HTTP request.
type graphQLRequest struct {
	Query         string         `json:"query"`
	OperationName string         `json:"operationName"`
	Variables     map[string]any `json:"variables"`
}

// graphQL executes a GraphQL request against the handler's schema.
//
// Resolver failures end up in the result's errors list and are returned to
// the client with HTTP 200, message text only. Protocol-level failures
// (a body that is not JSON) are the only thing that produces a non-200
// status here.
func (h *Handler) graphQL(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req graphQLRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	result := graphql.Do(graphql.Params{
		Schema:         h.schema,
		RequestString:  req.Query,
		VariableValues: req.Variables,
		OperationName:  req.OperationName,
		Context:        r.Context(),
	})

	if result.HasErrors() {
		for _, gqlErr := range result.Errors {
			log.Error().Str("graphql_error", gqlErr.Message).Send()
		}
	}

	utils.WriteJSON(w, result, http.StatusOK)
}
