package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/CampusOrbit/mentoring_service/internal/domain"
	"github.com/CampusOrbit/mentoring_service/internal/interfaces"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&domain.Recruitment{},
		&domain.Application{},
		&domain.Matching{},
		&domain.MatchingMessage{},
	))
	return db
}

func seedRecruitment(t *testing.T, db *gorm.DB, status domain.RecruitmentStatus) *domain.Recruitment {
	t.Helper()

	now := time.Now()
	rec := &domain.Recruitment{
		Title:      "Spring Mentoring",
		SemesterID: 1,
		StartAt:    now.Add(-time.Hour),
		EndAt:      now.Add(time.Hour),
		Status:     status,
		CreatedBy:  1,
	}
	require.NoError(t, db.Create(rec).Error)
	return rec
}

func seedApplication(t *testing.T, db *gorm.DB, recruitmentID, accountID uint, role domain.ApplicationRole, status domain.ApplicationStatus) *domain.Application {
	t.Helper()

	app := &domain.Application{
		RecruitmentID: recruitmentID,
		AccountID:     accountID,
		Role:          role,
		Status:        status,
		DisplayName:   "Test Account",
		Department:    "Computer Science",
	}
	require.NoError(t, db.Create(app).Error)
	return app
}

// fakeProducer records published events instead of talking to kafka.
type fakeProducer struct {
	keys    []string
	payload [][]byte
}

func (f *fakeProducer) PublishMessage(key, value []byte) error {
	f.keys = append(f.keys, string(key))
	f.payload = append(f.payload, value)
	return nil
}

// fakeDirectory serves canned account profiles.
type fakeDirectory struct {
	profiles map[uint]*interfaces.AccountProfile
}

func (f *fakeDirectory) Lookup(_ context.Context, accountID uint) (*interfaces.AccountProfile, error) {
	p, ok := f.profiles[accountID]
	if !ok {
		return nil, errors.New("account not found")
	}
	return p, nil
}
