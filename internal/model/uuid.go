package model

import "github.com/google/uuid"

// generateID creates a new entry key.
func generateID() string {
	return uuid.New().String()
}
