package validation

import "regexp"

var (
	usernameChars = regexp.MustCompile(`^[A-Za-z0-9]+$`)
	hasLetter     = regexp.MustCompile(`[A-Za-z]`)
	hasDigit      = regexp.MustCompile(`[0-9]`)
)

// ValidateUsername accepts letters and digits only, requiring at least
// one of each.
func ValidateUsername(username string) bool {
	return usernameChars.MatchString(username) &&
		hasLetter.MatchString(username) &&
		hasDigit.MatchString(username)
}

const minPasswordLength = 6

func ValidatePassword(password string) bool {
	return len(password) >= minPasswordLength
}
