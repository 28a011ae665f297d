// Package git looks up repository information with go-git.
package git

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	gogit "github.com/go-git/go-git/v5"

	"predeploy.dev/cli/internal/core/ports"
	"predeploy.dev/cli/internal/logging"
)

// DefaultRemote is the remote whose URL is reported
const DefaultRemote = "origin"

// OriginProvider implements ports.RepositoryInfoProvider on top of go-git
type OriginProvider struct {
	path   string
	remote string
	logger *logging.Logger
}

// NewOriginProvider creates a provider for the repository containing path.
// An empty remote name means DefaultRemote.
func NewOriginProvider(path, remote string, logger *logging.Logger) *OriginProvider {
	if remote == "" {
		remote = DefaultRemote
	}
	if logger == nil {
		logger = logging.Nop()
	}
	return &OriginProvider{path: path, remote: remote, logger: logger.Child("git")}
}

// Origin opens the repository and returns the first URL of the configured remote.
func (p *OriginProvider) Origin(ctx context.Context) (ports.RepositoryInfo, error) {
	if err := ctx.Err(); err != nil {
		return ports.RepositoryInfo{}, err
	}

	absPath, err := filepath.Abs(p.path)
	if err != nil {
		p.logger.Warn().Err(err).Str("path", p.path).Msg("failed to resolve path, using it as given")
		absPath = p.path
	}

	repo, err := gogit.PlainOpenWithOptions(absPath, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, gogit.ErrRepositoryNotExists) {
			return ports.RepositoryInfo{}, fmt.Errorf("%w: %s", ports.ErrRepositoryNotFound, absPath)
		}
		return ports.RepositoryInfo{}, fmt.Errorf("failed to open repository: %w", err)
	}

	info := ports.RepositoryInfo{
		Path:       repoRoot(repo, absPath),
		RemoteName: p.remote,
	}

	remote, err := repo.Remote(p.remote)
	if err != nil {
		if errors.Is(err, gogit.ErrRemoteNotFound) {
			p.logger.Debug().Str("remote", p.remote).Msg("remote not configured")
			return info, nil
		}
		return ports.RepositoryInfo{}, fmt.Errorf("failed to read remote %s: %w", p.remote, err)
	}

	if urls := remote.Config().URLs; len(urls) > 0 {
		info.RemoteURL = SanitizeURL(urls[0])
	}

	p.logger.Debug().Str("path", info.Path).Str("url", info.RemoteURL).Msg("repository found")
	return info, nil
}

func repoRoot(repo *gogit.Repository, fallback string) string {
	wt, err := repo.Worktree()
	if err != nil {
		// bare repository
		return fallback
	}
	return wt.Filesystem.Root()
}

// SanitizeURL removes credentials from a remote URL. SCP-style addresses such
// as git@host:org/repo.git carry no password and are returned unchanged.
func SanitizeURL(rawURL string) string {
	if !strings.Contains(rawURL, "://") {
		return rawURL
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return "[INVALID_URL]"
	}

	if u.User != nil {
		if _, hasPassword := u.User.Password(); hasPassword {
			u.User = url.UserPassword("***", "***")
		} else {
			u.User = url.User("***")
		}
	}

	return u.String()
}

// NoopProvider models an environment without source-control integration
type NoopProvider struct{}

// Origin always reports that no repository exists
func (NoopProvider) Origin(ctx context.Context) (ports.RepositoryInfo, error) {
	return ports.RepositoryInfo{}, ports.ErrRepositoryNotFound
}

var (
	_ ports.RepositoryInfoProvider = (*OriginProvider)(nil)
	_ ports.RepositoryInfoProvider = NoopProvider{}
)
