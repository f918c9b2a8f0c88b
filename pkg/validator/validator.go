package validator

import (
	"regexp"
	"strings"
)

var (
	emailRegex      = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	bloodGroupRegex = regexp.MustCompile(`^(A|B|AB|O)[+-]$`)
)

func ValidateEmail(email string) bool {
	return emailRegex.MatchString(email)
}

func ValidatePassword(password string) bool {
	return len(password) >= 8
}

func ValidateBloodGroup(group string) bool {
	return bloodGroupRegex.MatchString(strings.ToUpper(group))
}

func ValidateRating(rating int) bool {
	return rating >= 1 && rating <= 5
}

func SanitizeString(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '<' || r == '>' || r == '&' || r == '"' || r == '\'' || r == '`' || r == ';' {
			return -1
		}
		return r
	}, s)
}
