package scheduler

import (
	"errors"
	"testing"
	"time"

	"github.com/CampusOrbit/mentoring_service/internal/domain"
	"github.com/CampusOrbit/mentoring_service/internal/repository"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
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

	require.NoError(t, db.AutoMigrate(&domain.Recruitment{}))
	return db
}

func seedRecruitment(t *testing.T, db *gorm.DB, status domain.RecruitmentStatus, start, end time.Time) *domain.Recruitment {
	t.Helper()

	rec := &domain.Recruitment{
		Title:      "Spring Mentoring",
		SemesterID: 1,
		StartAt:    start,
		EndAt:      end,
		Status:     status,
		CreatedBy:  1,
	}
	require.NoError(t, db.Create(rec).Error)
	return rec
}

func TestRunTick_ClosesExpiredRecruitment(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewRecruitmentRepository(db)
	sched := NewLifecycleScheduler(repo, time.Minute)

	windowEnd := time.Now().Add(-time.Hour)
	rec := seedRecruitment(t, db, domain.RecruitmentStatusOpen, windowEnd.Add(-24*time.Hour), windowEnd)

	sched.runTick(windowEnd.Add(time.Second))

	got, err := repo.FindByID(rec.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.RecruitmentStatusClosed, got.Status)
}

func TestRunTick_OpensDueDraft(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewRecruitmentRepository(db)
	sched := NewLifecycleScheduler(repo, time.Minute)

	now := time.Now()
	due := seedRecruitment(t, db, domain.RecruitmentStatusDraft, now.Add(-time.Minute), now.Add(time.Hour))
	future := seedRecruitment(t, db, domain.RecruitmentStatusDraft, now.Add(time.Hour), now.Add(2*time.Hour))

	sched.runTick(now)

	got, err := repo.FindByID(due.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.RecruitmentStatusOpen, got.Status)

	got, err = repo.FindByID(future.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.RecruitmentStatusDraft, got.Status)
}

// failingRepo simulates storage being unavailable during a tick.
type failingRepo struct {
	repository.RecruitmentRepository
}

func (failingRepo) AdvanceLifecycle(time.Time) (int64, int64, error) {
	return 0, 0, errors.New("connection refused")
}

func TestRunTick_AbsorbsStorageErrors(t *testing.T) {
	sched := NewLifecycleScheduler(failingRepo{}, time.Minute)

	assert.NotPanics(t, func() {
		sched.runTick(time.Now())
	})
}
