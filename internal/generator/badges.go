package generator

import (
	"net/url"
	"strings"
)

const shieldsBase = "https://img.shields.io"

// encodeBadgeText escapes text for a shields.io static badge path segment.
// Dashes and underscores are doubled so they are not read as separators, and
// spaces become %20 rather than "+".
func encodeBadgeText(s string) string {
	s = strings.ReplaceAll(s, "-", "--")
	s = strings.ReplaceAll(s, "_", "__")
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// LanguageBadge returns the badge for a detected language.
func LanguageBadge(lang string) string {
	return "![" + lang + "](" + shieldsBase + "/badge/lang-" + encodeBadgeText(strings.ToLower(lang)) + "-informational)"
}

// LicenseBadge returns the badge for the resolved license.
func LicenseBadge(license string) string {
	return "![License](" + shieldsBase + "/badge/license-" + encodeBadgeText(license) + "-brightgreen)"
}

// GitHubBadges returns the stars, forks and issues badges for "owner/repo".
func GitHubBadges(repoPath string) []string {
	return []string{
		"![GitHub stars](" + shieldsBase + "/github/stars/" + repoPath + "?style=social)",
		"![GitHub forks](" + shieldsBase + "/github/forks/" + repoPath + "?style=social)",
		"![GitHub issues](" + shieldsBase + "/github/issues/" + repoPath + ")",
	}
}

// Badges joins all badges into a single line.
func Badges(languages []string, license, githubPath string) string {
	badges := make([]string, 0, len(languages)+4)
	for _, lang := range languages {
		badges = append(badges, LanguageBadge(lang))
	}
	badges = append(badges, LicenseBadge(license))
	if githubPath != "" {
		badges = append(badges, GitHubBadges(githubPath)...)
	}
	return strings.Join(badges, " ")
}
