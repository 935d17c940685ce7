package repository

import (
	"errors"
	"time"

	"github.com/CampusOrbit/mentoring_service/internal/domain"
	"gorm.io/gorm"
)

type RecruitmentFilter struct {
	Status     domain.RecruitmentStatus
	SemesterID uint
	Limit      int
	Offset     int
}

type RecruitmentRepository interface {
	Create(rec *domain.Recruitment) error
	FindByID(id uint) (*domain.Recruitment, error)
	List(filter RecruitmentFilter) ([]domain.Recruitment, int64, error)

	// SetStatus is idempotent: setting a recruitment to its current status is
	// a no-op returning success, so scheduler re-runs are safe.
	SetStatus(id uint, status domain.RecruitmentStatus) error

	// MarkBatchCommitted is the commit serialization point: of two racing
	// callers at most one sees batch_committed = false and wins.
	MarkBatchCommitted(id uint) error

	// AdvanceLifecycle applies both time-driven bulk transitions in order
	// (DRAFT->OPEN, then OPEN->CLOSED) inside one transaction.
	AdvanceLifecycle(now time.Time) (opened int64, closed int64, err error)
}

type recruitmentRepository struct {
	db *gorm.DB
}

func NewRecruitmentRepository(db *gorm.DB) RecruitmentRepository {
	return &recruitmentRepository{db: db}
}

func (r *recruitmentRepository) Create(rec *domain.Recruitment) error {
	return r.db.Create(rec).Error
}

func (r *recruitmentRepository) FindByID(id uint) (*domain.Recruitment, error) {
	var rec domain.Recruitment
	if err := r.db.First(&rec, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecruitmentNotFound
		}
		return nil, err
	}
	return &rec, nil
}

func (r *recruitmentRepository) List(filter RecruitmentFilter) ([]domain.Recruitment, int64, error) {
	base := func() *gorm.DB {
		q := r.db.Model(&domain.Recruitment{})
		if filter.Status != "" {
			q = q.Where("status = ?", filter.Status)
		}
		if filter.SemesterID != 0 {
			q = q.Where("semester_id = ?", filter.SemesterID)
		}
		return q
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q := base().Order("created_at DESC")
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit).Offset(filter.Offset)
	}

	var recs []domain.Recruitment
	if err := q.Find(&recs).Error; err != nil {
		return nil, 0, err
	}
	return recs, total, nil
}

func (r *recruitmentRepository) SetStatus(id uint, status domain.RecruitmentStatus) error {
	rec, err := r.FindByID(id)
	if err != nil {
		return err
	}
	if rec.Status == status {
		return nil
	}
	return r.db.Model(&domain.Recruitment{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *recruitmentRepository) MarkBatchCommitted(id uint) error {
	return markBatchCommitted(r.db, id)
}

func markBatchCommitted(tx *gorm.DB, id uint) error {
	res := tx.Model(&domain.Recruitment{}).
		Where("id = ? AND batch_committed = ?", id, false).
		Update("batch_committed", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := tx.Model(&domain.Recruitment{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return domain.ErrRecruitmentNotFound
		}
		return domain.ErrBatchAlreadyCommitted
	}
	return nil
}

func (r *recruitmentRepository) AdvanceLifecycle(now time.Time) (int64, int64, error) {
	var opened, closed int64

	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&domain.Recruitment{}).
			Where("status = ? AND start_at <= ? AND end_at > ?", domain.RecruitmentStatusDraft, now, now).
			Update("status", domain.RecruitmentStatusOpen)
		if res.Error != nil {
			return res.Error
		}
		opened = res.RowsAffected

		res = tx.Model(&domain.Recruitment{}).
			Where("status = ? AND end_at <= ?", domain.RecruitmentStatusOpen, now).
			Update("status", domain.RecruitmentStatusClosed)
		if res.Error != nil {
			return res.Error
		}
		closed = res.RowsAffected
		return nil
	})
	if err != nil {
		return 0, 0, err
	}
	return opened, closed, nil
}
