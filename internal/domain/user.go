package domain

import "time"

// User holds login credentials for the shell layer. Secrets are stored
// as given; credential hardening is a separate concern, not part of the
// ledger.
type User struct {
	Username  string
	Secret    string
	CreatedAt time.Time
}
