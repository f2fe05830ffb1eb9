// Package validation provides input validation for registration fields.
// All validators are pure predicates with no side effects.
package validation

import "regexp"

var (
	usernameRE = regexp.MustCompile(`^[a-zA-Z0-9_-]{3,20}$`)
	passwordRE = regexp.MustCompile(`^.{3,20}$`)
	emailRE    = regexp.MustCompile(`^[\S]+@[\S]+\.[\S]+$`)
)

// ValidUsername reports whether username is 3-20 characters of letters,
// digits, underscore or hyphen.
func ValidUsername(username string) bool {
	return username != "" && usernameRE.MatchString(username)
}

// ValidPassword reports whether password is 3-20 characters of any content.
func ValidPassword(password string) bool {
	return password != "" && passwordRE.MatchString(password)
}

// ValidEmail reports whether email is empty (it is optional) or shaped like
// local@domain.tld.
func ValidEmail(email string) bool {
	return email == "" || emailRE.MatchString(email)
}
