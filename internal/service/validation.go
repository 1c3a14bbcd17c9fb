package service

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	minNameLength = 2
	maxNameLength = 50
)

var nameRe = regexp.MustCompile(`^[a-zA-ZА-Яа-яЁёƏəİıÖöÜüĞğŞşÇç\s'\-]+$`)

// ValidateName trims name and checks it against the registration rules. reserved
// holds menu labels that cannot be used as names.
func ValidateName(name string, reserved []string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.HasPrefix(name, "/") {
		return "", ErrInvalidName
	}
	if n := utf8.RuneCountInString(name); n < minNameLength || n > maxNameLength {
		return "", ErrInvalidName
	}
	for _, label := range reserved {
		if name == label {
			return "", ErrInvalidName
		}
	}
	if !nameRe.MatchString(name) || !strings.ContainsFunc(name, unicode.IsLetter) {
		return "", ErrInvalidName
	}
	return name, nil
}

// ValidateReportText trims text and requires at least minLength characters.
func ValidateReportText(text string, minLength int) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrReportEmpty
	}
	if utf8.RuneCountInString(text) < minLength {
		return "", ErrReportTooShort
	}
	return text, nil
}
