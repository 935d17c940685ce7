package repository

import (
	"testing"
	"time"

	"github.com/CampusOrbit/mentoring_service/internal/domain"
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

	// a single connection keeps every session on the same in-memory database
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

func seedRecruitment(t *testing.T, db *gorm.DB, status domain.RecruitmentStatus, start, end time.Time) *domain.Recruitment {
	t.Helper()

	rec := &domain.Recruitment{
		Title:      "Fall Mentoring",
		SemesterID: 1,
		StartAt:    start,
		EndAt:      end,
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
		Reason:        "want to join",
	}
	require.NoError(t, db.Create(app).Error)
	return app
}
