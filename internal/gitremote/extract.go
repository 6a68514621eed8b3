package gitremote

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	formatcfg "github.com/go-git/go-git/v5/plumbing/format/config"

	rgerrors "github.com/firefly-engineering/readmegen/internal/errors"
	"github.com/firefly-engineering/readmegen/internal/logging"
	"github.com/firefly-engineering/readmegen/internal/system"
)

// Remote is the first remote found in a repository's config.
type Remote struct {
	Name     string
	URL      string
	Identity Identity
}

// Extract reads the git configuration of the repository rooted at root.
//
// A missing .git entry is fatal and returns a NoRepository error. A repository
// without a decodable config or without any remote url returns found=false.
func Extract(fsys system.FileSystem, root string) (remote Remote, found bool, err error) {
	dotGit := filepath.Join(root, ".git")

	info, err := fsys.Stat(dotGit)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Remote{}, false, rgerrors.NoRepository(root)
		}
		return Remote{}, false, fmt.Errorf("failed to stat %s: %w", dotGit, err)
	}

	gitDir := dotGit
	if !info.IsDir() {
		gitDir, err = resolveGitDirPointer(fsys, root, dotGit)
		if err != nil {
			logging.Debug("unreadable .git pointer", "path", dotGit, "error", err)
			return Remote{}, false, nil
		}
	}

	data, ok := readConfig(fsys, gitDir)
	if !ok {
		logging.Debug("no git config found", "gitdir", gitDir)
		return Remote{}, false, nil
	}

	cfg := formatcfg.New()
	if err := formatcfg.NewDecoder(bytes.NewReader(data)).Decode(cfg); err != nil {
		logging.Debug("failed to decode git config", "gitdir", gitDir, "error", err)
		return Remote{}, false, nil
	}

	remote, found = firstRemote(cfg)
	if found {
		logging.Debug("found git remote", "name", remote.Name, "url", remote.URL, "identity", remote.Identity)
	}
	return remote, found, nil
}

// resolveGitDirPointer follows a "gitdir: <path>" file. Relative paths are
// resolved against the directory holding the .git file.
func resolveGitDirPointer(fsys system.FileSystem, root, dotGit string) (string, error) {
	data, err := fsys.ReadFile(dotGit)
	if err != nil {
		return "", err
	}
	line := strings.TrimSpace(string(data))
	target, ok := strings.CutPrefix(line, "gitdir:")
	if !ok {
		return "", fmt.Errorf("missing gitdir prefix")
	}
	target = strings.TrimSpace(target)
	if target == "" {
		return "", fmt.Errorf("empty gitdir")
	}
	if !filepath.IsAbs(target) {
		target = filepath.Join(root, target)
	}
	return target, nil
}

// readConfig reads <gitDir>/config, falling back to the shared config named
// by <gitDir>/commondir for linked worktrees.
func readConfig(fsys system.FileSystem, gitDir string) ([]byte, bool) {
	if data, err := fsys.ReadFile(filepath.Join(gitDir, "config")); err == nil {
		return data, true
	}

	common, err := fsys.ReadFile(filepath.Join(gitDir, "commondir"))
	if err != nil {
		return nil, false
	}
	commonDir := strings.TrimSpace(string(common))
	if !filepath.IsAbs(commonDir) {
		commonDir = filepath.Join(gitDir, commonDir)
	}
	data, err := fsys.ReadFile(filepath.Join(commonDir, "config"))
	if err != nil {
		return nil, false
	}
	return data, true
}

func firstRemote(cfg *formatcfg.Config) (Remote, bool) {
	for _, section := range cfg.Sections {
		if !section.IsName("remote") {
			continue
		}
		for _, sub := range section.Subsections {
			for _, opt := range sub.Options {
				if opt.IsKey("url") && strings.TrimSpace(opt.Value) != "" {
					return Remote{
						Name:     sub.Name,
						URL:      strings.TrimSpace(opt.Value),
						Identity: Normalize(opt.Value),
					}, true
				}
			}
		}
	}
	return Remote{}, false
}
