package storage

import (
	"context"
)

// FileStorage stores uploaded attachments and resolves them back by their
// public URL.
type FileStorage interface {
	// UploadFile puts data under dir (logical path, e.g. "tickets/42/images")
	// and returns a publicly resolvable URL. An empty contentType is sniffed
	// from the data.
	UploadFile(ctx context.Context, data []byte, dir, filename, contentType string) (string, error)

	// GetFile fetches the stored bytes back by the URL UploadFile returned.
	GetFile(ctx context.Context, fileURL string) ([]byte, error)

	DeleteFile(ctx context.Context, fileURL string) error
}
