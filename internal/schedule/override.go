package schedule

import (
	"net/url"
	"strings"
)

// Match is the result of checking a URL against the override lists.
type Match int

const (
	NoMatch Match = iota
	MatchPersonal
	MatchWork
)

func (m Match) String() string {
	switch m {
	case MatchPersonal:
		return "personal"
	case MatchWork:
		return "work"
	default:
		return "none"
	}
}

// MatchOverride checks rawURL against the personal overrides, then the work
// overrides. A pattern matches when it is a case-sensitive substring of the
// whole URL. Empty patterns and malformed URLs never match.
func MatchOverride(rawURL string, cfg Config) Match {
	if !ValidURL(rawURL) {
		return NoMatch
	}
	if containsAny(rawURL, cfg.Overrides.Personal) {
		return MatchPersonal
	}
	if containsAny(rawURL, cfg.Overrides.Work) {
		return MatchWork
	}
	return NoMatch
}

// ValidURL reports whether s is a syntactically valid URL reference.
// Empty strings and strings containing whitespace or control characters
// are rejected.
func ValidURL(s string) bool {
	if s == "" || strings.IndexFunc(s, isSpaceOrControl) >= 0 {
		return false
	}
	_, err := url.Parse(s)
	return err == nil
}

func isSpaceOrControl(r rune) bool {
	return r <= ' ' || r == 0x7f
}

func containsAny(s string, patterns []string) bool {
	for _, p := range patterns {
		if p != "" && strings.Contains(s, p) {
			return true
		}
	}
	return false
}
