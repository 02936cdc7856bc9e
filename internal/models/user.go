package models

// User is one credential-file entry. The username is the identity;
// passwords are stored and compared as plaintext, matching the
// username;password file format.
type User struct {
	Username string `json:"username"`
	Password string `json:"-"` // never expose
}
