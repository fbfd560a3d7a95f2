package services

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"vrmhub/pkg/utils"
)

// allowedImageExts is the extension allow-list for background uploads.
var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
}

// IsAllowedImageExt reports whether ext (lowercase, with leading dot) is an
// accepted background image format.
func IsAllowedImageExt(ext string) bool {
	return allowedImageExts[ext]
}

// AssetStore writes uploaded files under per-user directories and hands back
// URL paths. Filenames are uuid-generated, so concurrent uploads never race
// on the same path.
type AssetStore struct {
	baseDir string
}

func NewAssetStore(baseDir string) *AssetStore {
	return &AssetStore{baseDir: baseDir}
}

// Store writes src into {baseDir}/{userID}/{subdir} under a generated
// filename preserving originalName's extension. Parent directories are
// created idempotently. Returns a forward-slash path rooted at "/".
func (s *AssetStore) Store(userID uint, subdir string, originalName string, src io.Reader) (string, error) {
	dir := filepath.Join(s.baseDir, strconv.FormatUint(uint64(userID), 10), subdir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	path := filepath.Join(dir, utils.StoredFilename(originalName))

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return "/" + filepath.ToSlash(path), nil
}

// Remove deletes the file behind a stored URL path.
func (s *AssetStore) Remove(urlPath string) error {
	return os.Remove(filepath.FromSlash(strings.TrimPrefix(urlPath, "/")))
}
