package gitremote

import (
	"strings"

	"golang.org/x/text/cases"
)

// Identity is a normalized remote URL used for equality comparison.
type Identity string

// String returns the identity text.
func (i Identity) String() string {
	return string(i)
}

// GitHubPath returns "owner/repo" for identities hosted on github.com.
func (i Identity) GitHubPath() (string, bool) {
	path, ok := strings.CutPrefix(string(i), "github.com/")
	if !ok || path == "" {
		return "", false
	}
	return path, true
}

// schemes stripped from the front of a URL, longest first.
var schemes = []string{"git+ssh://", "ssh://", "https://", "http://", "git://"}

var folder = cases.Fold()

// Normalize reduces a remote URL to its Identity.
func Normalize(url string) Identity {
	s := folder.String(strings.TrimSpace(url))
	// Each pass only removes text or rewrites a colon, so this reaches a
	// fixed point and a second Normalize is a no-op.
	for {
		next := normalizeOnce(s)
		if next == s {
			return Identity(s)
		}
		s = next
	}
}

func normalizeOnce(s string) string {
	hadScheme := false
	for _, scheme := range schemes {
		if rest, ok := strings.CutPrefix(s, scheme); ok {
			s = rest
			hadScheme = true
			break
		}
	}

	hostEnd := strings.IndexByte(s, '/')
	if hostEnd < 0 {
		hostEnd = len(s)
	}

	if at := strings.LastIndexByte(s[:hostEnd], '@'); at >= 0 {
		s = s[at+1:]
		hostEnd -= at + 1
	}

	if colon := strings.IndexByte(s[:hostEnd], ':'); colon >= 0 {
		if hadScheme && isPort(s[colon+1:hostEnd]) {
			// host:port
			s = s[:colon] + s[hostEnd:]
		} else {
			// scp-style host:path
			s = s[:colon] + "/" + s[colon+1:]
		}
	}

	for {
		trimmed := strings.TrimSuffix(strings.TrimRight(s, "/"), ".git")
		if trimmed == s {
			break
		}
		s = trimmed
	}

	return s
}

func isPort(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
