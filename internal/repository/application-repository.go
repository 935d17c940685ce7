package repository

import (
	"errors"
	"time"

	"github.com/CampusOrbit/mentoring_service/internal/domain"
	"gorm.io/gorm"
)

type ApplicationFilter struct {
	Role   domain.ApplicationRole
	Status domain.ApplicationStatus
	Limit  int
	Offset int
}

type ApplicationRepository interface {
	Create(app *domain.Application) error
	FindByID(id uint) (*domain.Application, error)
	ListByRecruitment(recruitmentID uint, filter ApplicationFilter) ([]domain.Application, int64, error)
	CountByRecruitment(recruitmentID uint, role domain.ApplicationRole, status domain.ApplicationStatus) (int64, error)

	// HasActive reports whether the account already holds a live (APPLIED,
	// APPROVED or MATCHED) application under the recruitment.
	HasActive(recruitmentID, accountID uint) (bool, error)

	// UpdateReview flips an application to APPROVED or REJECTED. The update is
	// guarded against terminal states so a concurrent commit cannot be
	// overwritten by a late review.
	UpdateReview(id uint, status domain.ApplicationStatus, rejectReason *string) error

	// Cancel moves an APPLIED or APPROVED application to CANCELED.
	Cancel(id uint) error
}

type applicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) Create(app *domain.Application) error {
	return r.db.Create(app).Error
}

func (r *applicationRepository) FindByID(id uint) (*domain.Application, error) {
	var app domain.Application
	if err := r.db.First(&app, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *applicationRepository) ListByRecruitment(recruitmentID uint, filter ApplicationFilter) ([]domain.Application, int64, error) {
	base := func() *gorm.DB {
		q := r.db.Model(&domain.Application{}).Where("recruitment_id = ?", recruitmentID)
		if filter.Role != "" {
			q = q.Where("role = ?", filter.Role)
		}
		if filter.Status != "" {
			q = q.Where("status = ?", filter.Status)
		}
		return q
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q := base().Order("applied_at ASC")
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit).Offset(filter.Offset)
	}

	var apps []domain.Application
	if err := q.Find(&apps).Error; err != nil {
		return nil, 0, err
	}
	return apps, total, nil
}

func (r *applicationRepository) CountByRecruitment(recruitmentID uint, role domain.ApplicationRole, status domain.ApplicationStatus) (int64, error) {
	var count int64
	q := r.db.Model(&domain.Application{}).Where("recruitment_id = ?", recruitmentID)
	if role != "" {
		q = q.Where("role = ?", role)
	}
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Count(&count).Error
	return count, err
}

func (r *applicationRepository) HasActive(recruitmentID, accountID uint) (bool, error) {
	var count int64
	err := r.db.Model(&domain.Application{}).
		Where("recruitment_id = ? AND account_id = ? AND status IN ?", recruitmentID, accountID, []domain.ApplicationStatus{
			domain.ApplicationStatusApplied,
			domain.ApplicationStatusApproved,
			domain.ApplicationStatusMatched,
		}).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *applicationRepository) UpdateReview(id uint, status domain.ApplicationStatus, rejectReason *string) error {
	now := time.Now()

	res := r.db.Model(&domain.Application{}).
		Where("id = ? AND status NOT IN ?", id, []domain.ApplicationStatus{
			domain.ApplicationStatusMatched,
			domain.ApplicationStatusCanceled,
		}).
		Updates(map[string]any{
			"status":        status,
			"reject_reason": rejectReason,
			"processed_at":  now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		if _, err := r.FindByID(id); err != nil {
			return err
		}
		return domain.ErrReviewStateInvalid
	}
	return nil
}

func (r *applicationRepository) Cancel(id uint) error {
	now := time.Now()

	res := r.db.Model(&domain.Application{}).
		Where("id = ? AND status IN ?", id, []domain.ApplicationStatus{
			domain.ApplicationStatusApplied,
			domain.ApplicationStatusApproved,
		}).
		Updates(map[string]any{
			"status":       domain.ApplicationStatusCanceled,
			"processed_at": now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		if _, err := r.FindByID(id); err != nil {
			return err
		}
		return domain.ErrReviewStateInvalid
	}
	return nil
}
