package services

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"vrmhub/internal/models"

	"gorm.io/gorm"
)

// ErrUnsupportedFileType is returned for background uploads whose extension
// is outside the image allow-list. Nothing is written to disk in that case.
var ErrUnsupportedFileType = errors.New("unsupported file type")

// LibraryService owns the per-user asset catalog: VRM models with their
// animation clips, and background images.
type LibraryService struct {
	db     *gorm.DB
	store  *AssetStore
	logger *slog.Logger
}

func NewLibraryService(db *gorm.DB, store *AssetStore, logger *slog.Logger) *LibraryService {
	return &LibraryService{
		db:     db,
		store:  store,
		logger: logger,
	}
}

// CreateModel stores the uploaded VRM file and records it under the given
// display name. If the insert fails after the file was written, the file is
// removed again so no orphan remains.
func (s *LibraryService) CreateModel(userID uint, name string, filename string, src io.Reader) (*models.VRMModel, error) {
	path, err := s.store.Store(userID, "", filename, src)
	if err != nil {
		return nil, err
	}

	model := models.VRMModel{
		Name:    name,
		VRMPath: path,
		UserID:  userID,
	}

	if err := s.db.Create(&model).Error; err != nil {
		if rmErr := s.store.Remove(path); rmErr != nil {
			return nil, fmt.Errorf("failed to record model (and to clean up %s): %w", path, err)
		}
		return nil, fmt.Errorf("failed to record model: %w", err)
	}

	return &model, nil
}

// CreateAnimation stores an animation clip for a model. The display name is
// the uploaded filename with its extension stripped.
func (s *LibraryService) CreateAnimation(userID, modelID uint, filename string, src io.Reader) (*models.VRMAnimation, error) {
	path, err := s.store.Store(userID, "animations", filename, src)
	if err != nil {
		return nil, err
	}

	animation := models.VRMAnimation{
		AnimName: strings.TrimSuffix(filename, filepath.Ext(filename)),
		VRMAPath: path,
		UserID:   userID,
		ModelID:  modelID,
	}

	if err := s.db.Create(&animation).Error; err != nil {
		if rmErr := s.store.Remove(path); rmErr != nil {
			return nil, fmt.Errorf("failed to record animation (and to clean up %s): %w", path, err)
		}
		return nil, fmt.Errorf("failed to record animation: %w", err)
	}

	return &animation, nil
}

// ListModels returns the user's models with nested animations, in insertion
// order.
func (s *LibraryService) ListModels(userID uint) ([]models.VRMModel, error) {
	var list []models.VRMModel
	if err := s.db.Preload("Animations").Where("user_id = ?", userID).Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// CreateBackground validates the image extension before touching the
// filesystem, then stores the file and records the row.
func (s *LibraryService) CreateBackground(userID uint, filename string, src io.Reader) (*models.Background, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !IsAllowedImageExt(ext) {
		return nil, ErrUnsupportedFileType
	}

	path, err := s.store.Store(userID, "backgrounds", filename, src)
	if err != nil {
		return nil, err
	}

	background := models.Background{
		Filename: filename,
		Path:     path,
		UserID:   userID,
	}

	if err := s.db.Create(&background).Error; err != nil {
		if rmErr := s.store.Remove(path); rmErr != nil {
			return nil, fmt.Errorf("failed to record background (and to clean up %s): %w", path, err)
		}
		return nil, fmt.Errorf("failed to record background: %w", err)
	}

	return &background, nil
}

func (s *LibraryService) ListBackgrounds(userID uint) ([]models.Background, error) {
	var list []models.Background
	if err := s.db.Where("user_id = ?", userID).Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// DeleteBackground removes the user's background row and its stored file.
// Returns false when no such background exists for the user. A file that
// cannot be unlinked does not block the row deletion.
func (s *LibraryService) DeleteBackground(userID, backgroundID uint) (bool, error) {
	var background models.Background
	err := s.db.Where("id = ? AND user_id = ?", backgroundID, userID).First(&background).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	if err := s.store.Remove(background.Path); err != nil {
		s.logger.Warn("Failed to remove background file", "path", background.Path, "error", err)
	}

	if err := s.db.Delete(&background).Error; err != nil {
		return false, err
	}

	return true, nil
}
