package models

// Credentials is the input shape for login and registration requests.
// Username is ignored on login.
type Credentials struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthPayload is returned by login and addUser: a freshly issued session
// token together with the account it belongs to.
type AuthPayload struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
