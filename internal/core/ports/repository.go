package ports

//go:generate mockgen -source=repository.go -destination=mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
)

// ErrRepositoryNotFound is returned when no source-control repository can be located
var ErrRepositoryNotFound = errors.New("repository not found")

// RepositoryInfo describes the repository the validator runs in
type RepositoryInfo struct {
	Path       string
	RemoteName string
	// RemoteURL is empty when the repository has no such remote
	RemoteURL string
}

// HasRemote reports whether a remote URL was found
func (r RepositoryInfo) HasRemote() bool {
	return r.RemoteURL != ""
}

// RepositoryInfoProvider looks up the origin of the current repository.
// Implementations return ErrRepositoryNotFound when there is no repository.
type RepositoryInfoProvider interface {
	Origin(ctx context.Context) (RepositoryInfo, error)
}
