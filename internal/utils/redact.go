package utils

import (
	"regexp"
	"strings"
)

const redacted = "***"

var tokenPatterns = []struct {
	re   *regexp.Regexp
	repl string
}{
	{regexp.MustCompile(`(?i)\b(bearer)\s+[A-Za-z0-9._~+/=_-]+`), "${1} " + redacted},
	{regexp.MustCompile(`github_pat_[A-Za-z0-9_]{20,}`), "github_pat_" + redacted},
	{regexp.MustCompile(`\b(gh[pousr])_[A-Za-z0-9]{20,}`), "${1}_" + redacted},
}

var (
	classicTokenPattern     = regexp.MustCompile(`^gh[ps]_[A-Za-z0-9]{36}$`)
	legacyTokenPattern      = regexp.MustCompile(`^[A-Za-z0-9]{40}$`)
	fineGrainedTokenPattern = regexp.MustCompile(`^github_pat_[A-Za-z0-9_]{22,}$`)
)

// MaskToken returns token with everything but the first and last four
// characters replaced by '*'. At most 20 stars are printed. Tokens shorter
// than 8 characters are fully masked.
func MaskToken(token string) string {
	if len(token) < 8 {
		return redacted
	}
	stars := min(len(token)-8, 20)
	return token[:4] + strings.Repeat("*", stars) + token[len(token)-4:]
}

// IsValidGitHubToken reports whether token looks like a GitHub personal
// access token (classic ghp_/ghs_, fine-grained github_pat_, or a legacy
// 40-character token). It only checks the shape.
func IsValidGitHubToken(token string) bool {
	return classicTokenPattern.MatchString(token) ||
		fineGrainedTokenPattern.MatchString(token) ||
		legacyTokenPattern.MatchString(token)
}

// SanitizeMessage removes token-shaped substrings and every given secret
// from msg.
func SanitizeMessage(msg string, secrets ...string) string {
	for _, s := range secrets {
		if len(s) >= 4 {
			msg = strings.ReplaceAll(msg, s, redacted)
		}
	}
	for _, p := range tokenPatterns {
		msg = p.re.ReplaceAllString(msg, p.repl)
	}
	return msg
}

// SanitizeError wraps err so that its message is passed through
// [SanitizeMessage]. errors.Is and errors.As still see the original chain.
// A nil err yields nil.
func SanitizeError(err error, secrets ...string) error {
	if err == nil {
		return nil
	}
	return &sanitizedError{
		msg: SanitizeMessage(err.Error(), secrets...),
		err: err,
	}
}

type sanitizedError struct {
	msg string
	err error
}

func (e *sanitizedError) Error() string { return e.msg }

func (e *sanitizedError) Unwrap() error { return e.err }
