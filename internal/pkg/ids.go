package pkg

import "github.com/google/uuid"

// GenerateRoundID - returns a fresh identifier for a round of play.
func GenerateRoundID() string {
	return uuid.NewString()
}

// GenerateSessionID - returns an identifier for one run of the program.
func GenerateSessionID() string {
	return uuid.NewString()
}
