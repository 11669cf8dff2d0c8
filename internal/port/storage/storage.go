package storage

import "context"

// MovedResource maps an object's pre-rename storage id to its new id and
// URL so datastore rows can be rewritten after a folder rename.
type MovedResource struct {
	OldID  string
	NewID  string
	NewURL string
}

// PhotoStorage is the remote blob store holding listing images. Storage
// failures on Delete/DeleteAdmin/RenameFolder are treated as best-effort
// by callers: the datastore stays authoritative for what the user sees.
type PhotoStorage interface {
	// Upload stores data under folder and returns the storage id (object
	// key) and public URL of the new object.
	Upload(ctx context.Context, folder, fileName string, data []byte) (storageID string, url string, err error)
	Delete(ctx context.Context, storageID string) error
	// DeleteAdmin is the administrative fallback deletion path, tried when
	// Delete fails.
	DeleteAdmin(ctx context.Context, storageID string) error
	// RenameFolder moves every object under oldPrefix to newPrefix and
	// reports the id rewrites.
	RenameFolder(ctx context.Context, oldPrefix, newPrefix string) ([]MovedResource, error)
	// CopyFolder duplicates every object under oldPrefix into newPrefix,
	// leaving the originals in place. Used when duplicating a listing.
	CopyFolder(ctx context.Context, oldPrefix, newPrefix string) ([]MovedResource, error)
}
