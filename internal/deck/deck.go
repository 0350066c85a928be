// Package deck locates the deck file named on the command line, syncing it
// from a git repository first when one is configured.
package deck

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/conorfennell/wiederholung/internal/config"
	"github.com/conorfennell/wiederholung/internal/gitsource"
)

// Resolve returns the local path of the deck named by name. Without a
// configured repository name is returned unchanged; otherwise the repository
// is cloned or pulled and name is taken relative to its checkout.
func Resolve(ctx context.Context, cfg config.RepoConfig, name string, logger *slog.Logger) (string, error) {
	if cfg.URL == "" {
		return name, nil
	}

	localRepoPath, err := LocalPath(cfg.Dir, cfg.URL)
	if err != nil {
		return "", err
	}
	if err := gitsource.Sync(ctx, cfg.URL, localRepoPath, logger); err != nil {
		return "", err
	}

	path := filepath.Join(localRepoPath, filepath.Clean("/"+name))
	logger.Debug("deck resolved", "name", name, "path", path)
	return path, nil
}

// LocalPath maps a git URL (https, http, file path or scp-like ssh) to a
// checkout directory under baseDir.
func LocalPath(baseDir, repoURL string) (string, error) {
	parsedURL, err := url.Parse(repoURL)
	if err == nil && (parsedURL.Scheme == "https" || parsedURL.Scheme == "http") {
		sanitizedPath := strings.TrimSuffix(parsedURL.Path, ".git")
		return filepath.Join(baseDir, parsedURL.Host, sanitizedPath), nil
	}

	if strings.Contains(repoURL, "@") {
		parts := strings.Split(repoURL, ":")
		if len(parts) == 2 {
			hostAndUser := strings.Split(parts[0], "@")
			if len(hostAndUser) == 2 {
				host := hostAndUser[1]
				repoPath := strings.TrimSuffix(parts[1], ".git")
				return filepath.Join(baseDir, host, repoPath), nil
			}
		}
	}

	if filepath.IsAbs(repoURL) {
		return filepath.Join(baseDir, "local", strings.TrimSuffix(repoURL, ".git")), nil
	}

	return "", fmt.Errorf("could not parse git URL: %s", repoURL)
}
