package services

import (
	"testing"
	"time"

	"github.com/CampusOrbit/mentoring_service/internal/domain"
	"github.com/CampusOrbit/mentoring_service/internal/dto"
	"github.com/CampusOrbit/mentoring_service/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newRecruitmentEnv(t *testing.T) (*gorm.DB, RecruitmentService) {
	t.Helper()

	db := newTestDB(t)
	svc := NewRecruitmentService(
		repository.NewRecruitmentRepository(db),
		repository.NewApplicationRepository(db),
	)
	return db, svc
}

func TestCreateRecruitment(t *testing.T) {
	_, svc := newRecruitmentEnv(t)
	now := time.Now()

	resp, err := svc.Create(1, dto.CreateRecruitmentRequest{
		Title:      "Fall Mentoring",
		SemesterID: 3,
		StartAt:    now.Add(time.Hour),
		EndAt:      now.Add(48 * time.Hour),
	})
	require.NoError(t, err)
	assert.Equal(t, string(domain.RecruitmentStatusDraft), resp.Status)
	assert.False(t, resp.BatchCommitted)

	_, err = svc.Create(1, dto.CreateRecruitmentRequest{
		Title:      "Backwards Window",
		SemesterID: 3,
		StartAt:    now.Add(2 * time.Hour),
		EndAt:      now.Add(time.Hour),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidWindow)

	_, err = svc.Create(1, dto.CreateRecruitmentRequest{
		Title:   "   ",
		StartAt: now,
		EndAt:   now.Add(time.Hour),
	})
	require.Error(t, err)
	var domErr *domain.Error
	require.ErrorAs(t, err, &domErr)
	assert.Equal(t, "TITLE_REQUIRED", domErr.Code)
}

func TestPreview_ListsOnlyApproved(t *testing.T) {
	db, svc := newRecruitmentEnv(t)
	rec := seedRecruitment(t, db, domain.RecruitmentStatusClosed)

	seedApplication(t, db, rec.ID, 10, domain.RoleMentee, domain.ApplicationStatusApproved)
	seedApplication(t, db, rec.ID, 11, domain.RoleMentee, domain.ApplicationStatusApplied)
	seedApplication(t, db, rec.ID, 20, domain.RoleMentor, domain.ApplicationStatusApproved)
	seedApplication(t, db, rec.ID, 21, domain.RoleMentor, domain.ApplicationStatusRejected)

	preview, err := svc.Preview(rec.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), preview.MenteeCount)
	assert.Equal(t, int64(1), preview.MentorCount)
	require.Len(t, preview.Mentees, 1)
	require.Len(t, preview.Mentors, 1)
	assert.Equal(t, uint(10), preview.Mentees[0].AccountID)
	assert.Equal(t, uint(20), preview.Mentors[0].AccountID)
	assert.False(t, preview.BatchCommitted)

	_, err = svc.Preview(999)
	assert.ErrorIs(t, err, domain.ErrRecruitmentNotFound)
}
