// Package gitsource keeps a local checkout of a git repository that holds
// question workbooks.
package gitsource

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-git/go-git/v5"
	"github.com/rs/zerolog"
)

// Sync clones url into localPath if it is not checked out yet, or pulls the
// latest changes if it is. Progress output from the remote goes to progress,
// which may be nil.
func Sync(url, localPath string, progress io.Writer, log zerolog.Logger) error {
	_, err := os.Stat(localPath)
	switch {
	case os.IsNotExist(err):
		log.Info().Str("url", url).Str("path", localPath).Msg("cloning workbook repository")
		_, err := git.PlainClone(localPath, false, &git.CloneOptions{
			URL:      url,
			Depth:    1,
			Progress: progress,
		})
		if err != nil {
			return fmt.Errorf("failed to clone repo %s: %w", url, err)
		}
		return nil

	case err != nil:
		return fmt.Errorf("error checking path %s: %w", localPath, err)
	}

	log.Info().Str("path", localPath).Msg("pulling workbook repository")
	repo, err := git.PlainOpen(localPath)
	if err != nil {
		return fmt.Errorf("failed to open existing repo at %s: %w", localPath, err)
	}
	worktree, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("failed to get worktree for repo at %s: %w", localPath, err)
	}
	err = worktree.Pull(&git.PullOptions{
		RemoteName: "origin",
		Progress:   progress,
	})
	if err != nil && !errors.Is(err, git.NoErrAlreadyUpToDate) {
		return fmt.Errorf("failed to pull changes for repo at %s: %w", localPath, err)
	}
	return nil
}
