package validation

import (
	"errors"
)

// ValidateUsername enforces length limits on display usernames.
func ValidateUsername(username string) error {
	if len(username) < 2 {
		return errors.New("username must be at least 2 characters")
	}

	if len(username) > 20 {
		return errors.New("username must not exceed 20 characters")
	}

	for _, r := range username {
		if r == ' ' || r == '\t' || r == '\n' {
			return errors.New("username must not contain whitespace")
		}
	}

	return nil
}
