package entities

// User is the system of record for caller capabilities. The admin flag is
// looked up here on every privileged call; it is never trusted from a token
// claim or a cached client profile.
//
// Storage model (DynamoDB):
//   - PK: id
type User struct {
	ID      string `json:"id"`
	Email   string `json:"email,omitempty"`
	IsAdmin bool   `json:"isAdmin"`
}
