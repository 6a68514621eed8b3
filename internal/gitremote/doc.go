// Package gitremote recovers the repository's remote identity from its local
// git configuration.
//
// Extract locates the .git entry at a project root (a directory, or a
// "gitdir:" pointer file for worktrees and submodules), decodes its config
// with go-git's config decoder and returns the first remote URL.
//
// Normalize reduces a URL to an Identity: schemes, user prefixes, ports,
// trailing slashes and the ".git" suffix are removed, scp-style separators are
// rewritten and the result is case-folded. Normalize is idempotent, so SSH and
// HTTPS forms of the same repository compare equal:
//
//	Normalize("git@github.com:Acme/Widget.git")     // github.com/acme/widget
//	Normalize("https://github.com/acme/widget/")    // github.com/acme/widget
package gitremote
