// Package identity confirms that the operator is at the root of the
// repository they intend to document.
package identity

import (
	"context"
	"strings"

	rgerrors "github.com/firefly-engineering/readmegen/internal/errors"
	"github.com/firefly-engineering/readmegen/internal/gitremote"
	"github.com/firefly-engineering/readmegen/internal/logging"
	"github.com/firefly-engineering/readmegen/internal/system"
)

// InvalidURLMessage is shown when a supplied URL fails the shape check.
const InvalidURLMessage = "Please enter a valid Git URL."

// Prompter asks the operator for the repository URL.
//
// Implementations re-ask until ValidateShape accepts the answer, and return
// a PromptCancelled error if the operator aborts.
type Prompter interface {
	PromptURL(ctx context.Context) (string, error)
}

// StaticPrompter answers every prompt with a fixed URL.
type StaticPrompter string

// PromptURL returns the fixed URL.
func (p StaticPrompter) PromptURL(context.Context) (string, error) {
	return string(p), nil
}

// ValidateShape checks that input looks like a git URL: non-empty and
// starting with http, git@ or ssh://.
func ValidateShape(input string) error {
	s := strings.TrimSpace(input)
	if strings.HasPrefix(s, "http") || strings.HasPrefix(s, "git@") || strings.HasPrefix(s, "ssh://") {
		return nil
	}
	return rgerrors.ValidationError(InvalidURLMessage)
}

// Confirm runs the identity gate for the project at root.
//
// The repository is located before the operator is prompted, so a missing
// .git fails without asking. The supplied URL must normalize to the same
// identity as the first configured remote; otherwise a refusal is returned.
func Confirm(ctx context.Context, fsys system.FileSystem, prompter Prompter, root string) (gitremote.Remote, error) {
	remote, found, err := gitremote.Extract(fsys, root)
	if err != nil {
		return gitremote.Remote{}, err
	}

	supplied, err := prompter.PromptURL(ctx)
	if err != nil {
		return gitremote.Remote{}, err
	}
	if err := ValidateShape(supplied); err != nil {
		return gitremote.Remote{}, err
	}

	if !found {
		return gitremote.Remote{}, rgerrors.NoRemote(root)
	}

	suppliedID := gitremote.Normalize(supplied)
	if suppliedID != remote.Identity {
		logging.Debug("identity mismatch", "supplied", suppliedID, "local", remote.Identity)
		return gitremote.Remote{}, rgerrors.IdentityMismatch(suppliedID.String(), remote.Identity.String())
	}

	logging.Debug("identity confirmed", "identity", remote.Identity)
	return remote, nil
}
