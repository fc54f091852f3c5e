// SPDX-License-Identifier: Apache-2.0

package config

// validate checks the merged [StructuredConfig] and fills in defaults for
// values every deployment needs but none of the sources provided.
//
// The token sign key deliberately has no default: verification must never
// silently fall back to a well-known secret. Its absence is reported when
// the auth service is constructed, not here, so that the client binary
// (which never signs tokens) can share this config type.
func (c *StructuredConfig) validate() error {
	if c.Auth.TokenIssuer == "" {
		c.Auth.TokenIssuer = DefaultTokenIssuer
	}
	if c.Auth.TokenDuration == 0 {
		c.Auth.TokenDuration = DefaultTokenDuration
	}
	if c.Server.HTTPAddress == "" {
		c.Server.HTTPAddress = DefaultHTTPAddress
	}
	if c.Server.RequestTimeout == 0 {
		c.Server.RequestTimeout = DefaultRequestTimeout
	}
	if c.Client.ServerBaseURL == "" {
		c.Client.ServerBaseURL = DefaultServerBaseURL
	}
	if c.Client.BooksAPIBaseURL == "" {
		c.Client.BooksAPIBaseURL = DefaultBooksAPIBaseURL
	}
	if c.Client.RequestTimeout == 0 {
		c.Client.RequestTimeout = DefaultRequestTimeout
	}
	if c.Storage.Mirror.Path == "" {
		c.Storage.Mirror.Path = DefaultMirrorPath
	}

	return nil
}
