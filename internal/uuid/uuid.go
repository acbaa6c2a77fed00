// Package uuid generates time-ordered identifiers for engine entities.
package uuid

import googleuuid "github.com/google/uuid"

// New generates a UUIDv7 string. UUIDv7 ids are time-ordered, which keeps
// same-session ids monotonic enough to never collide and sorts snapshots
// deterministically. Falls back to a random UUIDv4 if the system entropy
// source fails.
func New() string {
	id, err := googleuuid.NewV7()
	if err != nil {
		return googleuuid.New().String()
	}
	return id.String()
}

// IsValid checks if a string is a valid UUID.
func IsValid(s string) bool {
	_, err := googleuuid.Parse(s)
	return err == nil
}
