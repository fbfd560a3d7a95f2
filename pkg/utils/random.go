package utils

import (
	"path/filepath"

	"github.com/google/uuid"
)

// StoredFilename generates a collision-resistant filename for an uploaded
// file, preserving the original extension. The original name never reaches
// the filesystem.
func StoredFilename(originalName string) string {
	return uuid.NewString() + filepath.Ext(originalName)
}
