package domain

import "github.com/google/uuid"

// NewProjectID returns a random (version 4) UUID string, e.g.
// "3f1c2b9e-8d4a-4c1e-9b7f-2a6d5e4c3b21".
func NewProjectID() string {
	return uuid.New().String()
}

// IsValidProjectID reports whether s is a canonical hyphenated UUID.
// uuid.Parse also accepts the urn and braced forms, which are not valid
// path identifiers here.
func IsValidProjectID(s string) bool {
	if len(s) != 36 {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}
