// Package http implements the HTTP transport layer of the application.
// It provides middleware, the GraphQL endpoint, the legacy REST routes, and
// request/response utilities. Authentication, logging and tracing concerns
// are all handled at this layer before requests reach the service layer.
//
// Two authentication policies coexist deliberately:
//   - the /graphql endpoint resolves identity silently (an invalid or absent
//     token yields an anonymous context and each resolver decides whether
//     that is acceptable);
//   - the legacy REST routes reject invalid or absent tokens outright with
//     401 before the handler runs.
package http
