// Package importer resolves an import source to a workbook and merges it
// into the tracker.
package importer

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/iamshubhamjangle/trackle/internal/gitsource"
	"github.com/iamshubhamjangle/trackle/internal/tracker"
	"github.com/iamshubhamjangle/trackle/internal/workbook"
)

// ErrNoWorkbook is returned when a directory or repository holds no .xlsx or .csv file.
var ErrNoWorkbook = errors.New("no workbook found")

// Importer merges workbooks from local paths or git repositories.
type Importer struct {
	Tracker *tracker.Tracker
	// ReposDir is where git sources are checked out.
	ReposDir string
	// Progress receives git transfer output; nil discards it.
	Progress io.Writer
	Log      zerolog.Logger
	// NewID overrides question id minting, for tests.
	NewID func() string
}

// Result reports what an import did.
type Result struct {
	Path    string
	Stats   tracker.ImportStats
	Skipped []workbook.RowError
}

// Run imports src, which is a workbook file, a directory containing one, or
// a git URL.
func (im *Importer) Run(src string) (Result, error) {
	path, err := im.locate(src)
	if err != nil {
		return Result{}, err
	}

	sheet, rowErrs, err := workbook.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	for _, re := range rowErrs {
		im.Log.Warn().Str("sheet", re.Sheet).Int("row", re.Row).Err(re.Err).Msg("skipping malformed row")
	}
	sheet.NewID = im.NewID

	stats, err := im.Tracker.Import(sheet)
	if err != nil {
		return Result{}, err
	}
	return Result{Path: path, Stats: stats, Skipped: rowErrs}, nil
}

func (im *Importer) locate(src string) (string, error) {
	if IsGitURL(src) {
		localPath, err := gitURLToLocalPath(im.ReposDir, src)
		if err != nil {
			return "", err
		}
		if err := gitsource.Sync(src, localPath, im.Progress, im.Log); err != nil {
			return "", err
		}
		return findWorkbook(localPath)
	}

	info, err := os.Stat(src)
	if err != nil {
		return "", err
	}
	if info.IsDir() {
		return findWorkbook(src)
	}
	return src, nil
}

// findWorkbook returns the first workbook under root in lexical walk order.
func findWorkbook(root string) (string, error) {
	var found string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == ".git" {
				return filepath.SkipDir
			}
			return nil
		}
		if workbook.Supported(d.Name()) {
			found = path
			return filepath.SkipAll
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("error walking directory %s: %w", root, err)
	}
	if found == "" {
		return "", fmt.Errorf("%w in %s", ErrNoWorkbook, root)
	}
	return found, nil
}

// IsGitURL reports whether src looks like a remote git repository.
func IsGitURL(src string) bool {
	if strings.HasPrefix(src, "git@") {
		return true
	}
	u, err := url.Parse(src)
	if err != nil {
		return false
	}
	switch u.Scheme {
	case "http", "https", "ssh", "git":
		return u.Host != ""
	}
	return false
}

// gitURLToLocalPath maps a repository URL to baseDir/host/path.
func gitURLToLocalPath(baseDir, repoURL string) (string, error) {
	if strings.HasPrefix(repoURL, "git@") {
		// scp-like syntax: git@host:owner/repo.git
		host, repoPath, ok := strings.Cut(strings.TrimPrefix(repoURL, "git@"), ":")
		if !ok || host == "" || repoPath == "" {
			return "", fmt.Errorf("could not parse git URL: %s", repoURL)
		}
		return filepath.Join(baseDir, host, strings.TrimSuffix(repoPath, ".git")), nil
	}

	parsedURL, err := url.Parse(repoURL)
	if err != nil || parsedURL.Host == "" {
		return "", fmt.Errorf("could not parse git URL: %s", repoURL)
	}
	sanitizedPath := strings.TrimSuffix(parsedURL.Path, ".git")
	return filepath.Join(baseDir, parsedURL.Host, sanitizedPath), nil
}
