package repository

import (
	"errors"

	"github.com/CampusOrbit/mentoring_service/internal/domain"
	"gorm.io/gorm"
)

type MatchingRepository interface {
	// CommitBatch turns the proposed assignments into matching rows, flips
	// every referenced application to MATCHED and locks the recruitment, all
	// inside one transaction. Validation of every assignment completes before
	// the first write; any failure rolls the whole batch back.
	CommitBatch(recruitmentID uint, assignments []domain.Assignment) ([]domain.Matching, error)

	FindByID(id uint) (*domain.Matching, error)
	ListByRecruitment(recruitmentID uint) ([]domain.Matching, error)
}

type matchingRepository struct {
	db *gorm.DB
}

func NewMatchingRepository(db *gorm.DB) MatchingRepository {
	return &matchingRepository{db: db}
}

func (r *matchingRepository) CommitBatch(recruitmentID uint, assignments []domain.Assignment) ([]domain.Matching, error) {
	if len(assignments) == 0 {
		return nil, domain.ErrAssignmentsRequired
	}

	var created []domain.Matching

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var rec domain.Recruitment
		if err := tx.First(&rec, recruitmentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrRecruitmentNotFound
			}
			return err
		}
		if rec.BatchCommitted {
			return domain.ErrBatchAlreadyCommitted
		}

		// Validate pass: every assignment is checked before anything is
		// written, so a failure on assignment k never leaves 1..k-1 applied.
		for i, a := range assignments {
			if err := validateAssignment(tx, recruitmentID, a); err != nil {
				return &domain.AssignmentError{Index: i + 1, Err: err}
			}
		}

		// Apply pass. The status guard on the MATCHED flip is the safety net
		// against a reviewer racing the commit: if an application is no
		// longer APPROVED by write time, the whole batch fails.
		for i, a := range assignments {
			m := domain.Matching{
				RecruitmentID:       recruitmentID,
				MenteeApplicationID: a.MenteeApplicationID,
				MentorApplicationID: a.MentorApplicationID,
			}
			if err := tx.Create(&m).Error; err != nil {
				return &domain.AssignmentError{Index: i + 1, Err: err}
			}

			for _, appID := range []uint{a.MenteeApplicationID, a.MentorApplicationID} {
				res := tx.Model(&domain.Application{}).
					Where("id = ? AND status = ?", appID, domain.ApplicationStatusApproved).
					Update("status", domain.ApplicationStatusMatched)
				if res.Error != nil {
					return res.Error
				}
				if res.RowsAffected == 0 {
					return &domain.AssignmentError{Index: i + 1, Err: domain.ErrNotApproved}
				}
			}
			created = append(created, m)
		}

		return markBatchCommitted(tx, recruitmentID)
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func validateAssignment(tx *gorm.DB, recruitmentID uint, a domain.Assignment) error {
	var mentee, mentor domain.Application

	if err := tx.First(&mentee, a.MenteeApplicationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrMenteeAppNotFound
		}
		return err
	}
	if err := tx.First(&mentor, a.MentorApplicationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrMentorAppNotFound
		}
		return err
	}

	if mentee.RecruitmentID != recruitmentID || mentor.RecruitmentID != recruitmentID {
		return domain.ErrRecruitmentMismatch
	}
	if mentee.Role != domain.RoleMentee || mentor.Role != domain.RoleMentor {
		return domain.ErrRoleMismatch
	}
	if mentee.Status != domain.ApplicationStatusApproved || mentor.Status != domain.ApplicationStatusApproved {
		return domain.ErrNotApproved
	}
	return nil
}

func (r *matchingRepository) FindByID(id uint) (*domain.Matching, error) {
	var m domain.Matching
	err := r.db.
		Preload("MenteeApplication").
		Preload("MentorApplication").
		First(&m, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMatchingNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *matchingRepository) ListByRecruitment(recruitmentID uint) ([]domain.Matching, error) {
	var matchings []domain.Matching
	err := r.db.
		Preload("MenteeApplication").
		Preload("MentorApplication").
		Where("recruitment_id = ?", recruitmentID).
		Order("id ASC").
		Find(&matchings).Error
	if err != nil {
		return nil, err
	}
	return matchings, nil
}
