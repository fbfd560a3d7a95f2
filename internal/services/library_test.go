package services

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"vrmhub/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	if err != nil {
		t.Fatal("failed to connect database: " + err.Error())
	}
	err = db.AutoMigrate(&models.User{}, &models.VRMModel{}, &models.VRMAnimation{}, &models.Background{}, &models.AuditLog{})
	if err != nil {
		t.Fatal("failed to migrate database: " + err.Error())
	}
	return db
}

func setupLibrary(t *testing.T) (*LibraryService, *gorm.DB) {
	wd, _ := os.Getwd()
	os.Chdir(t.TempDir())
	t.Cleanup(func() { os.Chdir(wd) })

	db := setupTestDB(t)
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	store := NewAssetStore("uploads")
	return NewLibraryService(db, store, logger), db
}

func TestLibraryService_CreateModel(t *testing.T) {
	library, db := setupLibrary(t)

	model, err := library.CreateModel(1, "My Avatar", "avatar.vrm", strings.NewReader("vrm-bytes"))
	assert.NoError(t, err)
	assert.Equal(t, "My Avatar", model.Name)
	assert.Equal(t, uint(1), model.UserID)
	assert.True(t, strings.HasPrefix(model.VRMPath, "/uploads/1/"))

	// Row persisted and file on disk
	var count int64
	db.Model(&models.VRMModel{}).Count(&count)
	assert.Equal(t, int64(1), count)

	_, err = os.Stat(strings.TrimPrefix(model.VRMPath, "/"))
	assert.NoError(t, err)
}

func TestLibraryService_CreateAnimation(t *testing.T) {
	library, _ := setupLibrary(t)

	model, _ := library.CreateModel(1, "Avatar", "avatar.vrm", strings.NewReader("vrm"))

	anim, err := library.CreateAnimation(1, model.ID, "wave_hello.vrma", strings.NewReader("vrma"))
	assert.NoError(t, err)
	// Display name is the filename stem
	assert.Equal(t, "wave_hello", anim.AnimName)
	assert.Equal(t, model.ID, anim.ModelID)
	assert.Equal(t, uint(1), anim.UserID)
	assert.True(t, strings.HasPrefix(anim.VRMAPath, "/uploads/1/animations/"))
}

func TestLibraryService_ListModels(t *testing.T) {
	library, _ := setupLibrary(t)

	modelA, _ := library.CreateModel(1, "A", "a.vrm", strings.NewReader("a"))
	library.CreateAnimation(1, modelA.ID, "walk.vrma", strings.NewReader("w"))
	library.CreateAnimation(1, modelA.ID, "run.vrma", strings.NewReader("r"))
	library.CreateModel(2, "B", "b.vrm", strings.NewReader("b"))

	list, err := library.ListModels(1)
	assert.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, "A", list[0].Name)
	assert.Len(t, list[0].Animations, 2)

	// Ownership isolation
	other, err := library.ListModels(2)
	assert.NoError(t, err)
	assert.Len(t, other, 1)
	assert.Equal(t, "B", other[0].Name)
}

func TestLibraryService_CreateBackground(t *testing.T) {
	library, _ := setupLibrary(t)

	bg, err := library.CreateBackground(1, "sunset.PNG", strings.NewReader("png-bytes"))
	assert.NoError(t, err)
	assert.Equal(t, "sunset.PNG", bg.Filename)
	assert.True(t, strings.HasPrefix(bg.Path, "/uploads/1/backgrounds/"))
}

func TestLibraryService_CreateBackground_BadExtension(t *testing.T) {
	library, db := setupLibrary(t)

	_, err := library.CreateBackground(1, "notes.txt", strings.NewReader("text"))
	assert.ErrorIs(t, err, ErrUnsupportedFileType)

	// Rejected before any filesystem write
	_, statErr := os.Stat("uploads")
	assert.True(t, os.IsNotExist(statErr))

	var count int64
	db.Model(&models.Background{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestLibraryService_DeleteBackground(t *testing.T) {
	library, db := setupLibrary(t)

	bg, _ := library.CreateBackground(1, "bg.jpg", strings.NewReader("img"))

	ok, err := library.DeleteBackground(1, bg.ID)
	assert.NoError(t, err)
	assert.True(t, ok)

	// Row and file both gone
	var count int64
	db.Model(&models.Background{}).Count(&count)
	assert.Equal(t, int64(0), count)

	_, statErr := os.Stat(strings.TrimPrefix(bg.Path, "/"))
	assert.True(t, os.IsNotExist(statErr))

	// Repeated delete reports not-found, not an error
	ok, err = library.DeleteBackground(1, bg.ID)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestLibraryService_DeleteBackground_WrongOwner(t *testing.T) {
	library, _ := setupLibrary(t)

	bg, _ := library.CreateBackground(1, "bg.jpg", strings.NewReader("img"))

	ok, err := library.DeleteBackground(2, bg.ID)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestLibraryService_DeleteBackground_MissingFile(t *testing.T) {
	library, db := setupLibrary(t)

	bg, _ := library.CreateBackground(1, "bg.jpg", strings.NewReader("img"))
	os.Remove(strings.TrimPrefix(bg.Path, "/"))

	// File already gone: the row is still deleted
	ok, err := library.DeleteBackground(1, bg.ID)
	assert.NoError(t, err)
	assert.True(t, ok)

	var count int64
	db.Model(&models.Background{}).Count(&count)
	assert.Equal(t, int64(0), count)
}
