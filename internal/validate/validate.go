package validate

import (
	"regexp"
	"strings"
)

var (
	reSlug  = regexp.MustCompile(`^[a-z0-9-]{1,64}$`)
	reEmail = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	reQ     = regexp.MustCompile(`^[A-Za-z0-9 _'\\-]{1,50}$`)
	// US ZIP, 5 digits
	reZIP = regexp.MustCompile(`^[0-9]{5}$`)
)

// Slug validates a URL path slug (category, product, city page).
func Slug(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reSlug.MatchString(s)
}

func Email(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > 254 {
		return "", false
	}
	return s, reEmail.MatchString(s)
}

// Q validates a search query: trims, enforces allowed characters and max length
func Q(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	if len(s) > 50 {
		s = s[:50]
	}
	return s, reQ.MatchString(s)
}

func Zip(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, reZIP.MatchString(s)
}

// Name validates a displayable full name.
func Name(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 120 {
		return "", false
	}
	return s, true
}

// Message validates free-text intake/contact bodies.
func Message(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) < 10 || len(s) > 5000 {
		return "", false
	}
	return s, true
}
