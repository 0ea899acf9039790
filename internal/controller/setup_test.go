package controller

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"condoadmin_backend/internal/model"
	"condoadmin_backend/pkg/database"
	"condoadmin_backend/pkg/utils/storage"
)

// setupTestDB opens a fresh in-memory SQLite database, migrates the schema
// and points the package-level handle at it for the duration of the test.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	testDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to connect to the in-memory database: %v", err)
	}

	err = testDB.AutoMigrate(
		&model.User{},
		&model.Website{},
		&model.Building{},
		&model.BuildingImage{},
		&model.Amenity{},
		&model.HomePage{},
		&model.Icon{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate test schema: %v", err)
	}

	previous := database.DB
	database.DB = testDB
	t.Cleanup(func() {
		database.DB = previous
		sqlDB, _ := testDB.DB()
		sqlDB.Close()
	})

	return testDB
}

// fakeStorage stands in for the object store. It records every call and can
// be told to reject uploads whose key contains a marker, or all deletes.
type fakeStorage struct {
	mu         sync.Mutex
	uploads    []string
	deletes    []string
	failKeys   string
	failDelete bool
}

func (f *fakeStorage) Upload(_ context.Context, key string, body io.Reader, _ string) (string, error) {
	if _, err := io.Copy(io.Discard, body); err != nil {
		return "", err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failKeys != "" && strings.Contains(key, f.failKeys) {
		return "", errors.New("storage unavailable")
	}

	f.uploads = append(f.uploads, key)
	return "https://cdn.test/" + key, nil
}

func (f *fakeStorage) Delete(_ context.Context, url string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failDelete {
		return errors.New("storage unavailable")
	}

	f.deletes = append(f.deletes, url)
	return nil
}

func (f *fakeStorage) uploadCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.uploads)
}

// useFakeStorage swaps the default storage client for a recording fake and
// restores the original when the test ends.
func useFakeStorage(t *testing.T) *fakeStorage {
	t.Helper()

	fake := &fakeStorage{}
	previous := storage.Default
	storage.Default = fake
	t.Cleanup(func() { storage.Default = previous })

	return fake
}
