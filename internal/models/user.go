package models

// User represents a registered participant.
//
// Authentication is out of scope for this service: users carry no credentials
// and exist so that group membership and payer references can be validated.
type User struct {
	// Username is the unique identifier for the user.
	Username string

	// DisplayName is the human-readable name shown in clients.
	DisplayName string

	// CreatedAt is the Unix timestamp when the user was created.
	CreatedAt int64
}
