package mirror

import (
	"context"
	"fmt"
	"os"

	"github.com/Roneo412/httpsync/internal/domain"
	"github.com/Roneo412/httpsync/internal/logger"
	"github.com/Roneo412/httpsync/internal/progress"
	"github.com/Roneo412/httpsync/internal/transport"
)

// File is one remote file mapped to one local path
type File struct {
	url       string
	localPath string
	client    *transport.Client
	reporter  progress.Reporter
	status    domain.Status
}

// NewFile creates a File node in the pending state
func NewFile(url, localPath string, client *transport.Client, reporter progress.Reporter) *File {
	return &File{
		url:       url,
		localPath: localPath,
		client:    client,
		reporter:  reporter,
		status:    domain.StatusPending,
	}
}

// Update checks the remote size via HEAD and downloads the content
// when the local file is absent or differs in size. Content is never
// hashed or compared byte-for-byte; size is the entire staleness
// policy.
func (f *File) Update(ctx context.Context) domain.Status {
	size, err := f.client.ContentLength(ctx, f.url)
	if err != nil {
		logger.Get().Error("failed to read remote size", "url", f.url, "error", err)
		f.reporter.Error(f.localPath, err)
		f.status = domain.StatusError
		return f.status
	}

	if info, err := os.Stat(f.localPath); err == nil && info.Size() == size {
		logger.Get().Info("file is current", "path", f.localPath)
		f.reporter.FileCurrent(f.localPath)
		f.status = domain.StatusUpdated
		return f.status
	}

	logger.Get().Info("downloading", "url", f.url)
	body, err := f.client.Fetch(ctx, f.url)
	if err != nil {
		err = fmt.Errorf("%w: %v", domain.ErrDownloadFetch, err)
		logger.Get().Error("failed to download", "url", f.url, "error", err)
		f.reporter.Error(f.localPath, err)
		f.status = domain.StatusError
		return f.status
	}

	if err := os.WriteFile(f.localPath, body, 0644); err != nil {
		logger.Get().Error("failed to write file", "path", f.localPath, "error", err)
		f.reporter.Error(f.localPath, err)
		f.status = domain.StatusError
		return f.status
	}

	f.reporter.FileDownloaded(f.localPath, int64(len(body)))
	f.status = domain.StatusUpdated
	return f.status
}

// Status returns the status left by the last Update
func (f *File) Status() domain.Status { return f.status }

// LocalPath returns the local file path
func (f *File) LocalPath() string { return f.localPath }

// URL returns the remote content URL
func (f *File) URL() string { return f.url }
