package model

// User is a registered account.
//
// Passwords are stored and compared in clear text; clients of the
// deployed service depend on that behavior.
type User struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
