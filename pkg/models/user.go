package models

// User is the denormalized account record. The same JSON is stored under
// the id, username and email index keys; whichever index a lookup goes
// through, it observes the same record.
type User struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Email    string `json:"email"`
	// Password is stored verbatim and compared byte-exact on login.
	Password string `json:"password"`
}
