package services

import (
	"strings"
	"time"

	"github.com/CampusOrbit/mentoring_service/internal/domain"
	"github.com/CampusOrbit/mentoring_service/internal/dto"
	"github.com/CampusOrbit/mentoring_service/internal/repository"
	"github.com/CampusOrbit/mentoring_service/pkg/utils"
)

type RecruitmentService interface {
	Create(operatorID uint, input dto.CreateRecruitmentRequest) (*dto.RecruitmentResponse, error)
	List(query dto.ListRecruitmentQuery) (*dto.RecruitmentListResponse, error)
	Detail(id uint) (*dto.RecruitmentResponse, error)

	// Preview lists the approved mentees/mentors of a recruitment with
	// counts, for the operator to verify assignments before the one-shot
	// batch commit.
	Preview(id uint) (*dto.MatchingPreviewResponse, error)
}

type recruitmentService struct {
	recruitmentRepo repository.RecruitmentRepository
	applicationRepo repository.ApplicationRepository
}

func NewRecruitmentService(
	recruitmentRepo repository.RecruitmentRepository,
	applicationRepo repository.ApplicationRepository,
) RecruitmentService {
	return &recruitmentService{
		recruitmentRepo: recruitmentRepo,
		applicationRepo: applicationRepo,
	}
}

func (s *recruitmentService) Create(operatorID uint, input dto.CreateRecruitmentRequest) (*dto.RecruitmentResponse, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, &domain.Error{Code: "TITLE_REQUIRED", Message: "title is required"}
	}
	if !input.EndAt.After(input.StartAt) {
		return nil, domain.ErrInvalidWindow
	}

	rec := &domain.Recruitment{
		Title:       title,
		Description: strings.TrimSpace(input.Description),
		SemesterID:  input.SemesterID,
		StartAt:     input.StartAt,
		EndAt:       input.EndAt,
		Status:      domain.RecruitmentStatusDraft,
		CreatedBy:   operatorID,
	}
	if err := s.recruitmentRepo.Create(rec); err != nil {
		return nil, err
	}

	resp := toRecruitmentResponse(rec)
	return &resp, nil
}

func (s *recruitmentService) List(query dto.ListRecruitmentQuery) (*dto.RecruitmentListResponse, error) {
	limit, offset := utils.NormalizePage(query.Limit, query.Offset)

	recs, total, err := s.recruitmentRepo.List(repository.RecruitmentFilter{
		Status:     domain.RecruitmentStatus(strings.ToUpper(strings.TrimSpace(query.Status))),
		SemesterID: query.SemesterID,
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		return nil, err
	}

	items := make([]dto.RecruitmentResponse, 0, len(recs))
	for i := range recs {
		items = append(items, toRecruitmentResponse(&recs[i]))
	}
	return &dto.RecruitmentListResponse{Items: items, Total: total}, nil
}

func (s *recruitmentService) Detail(id uint) (*dto.RecruitmentResponse, error) {
	rec, err := s.recruitmentRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	resp := toRecruitmentResponse(rec)
	return &resp, nil
}

func (s *recruitmentService) Preview(id uint) (*dto.MatchingPreviewResponse, error) {
	rec, err := s.recruitmentRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	mentees, menteeCount, err := s.applicationRepo.ListByRecruitment(id, repository.ApplicationFilter{
		Role:   domain.RoleMentee,
		Status: domain.ApplicationStatusApproved,
	})
	if err != nil {
		return nil, err
	}
	mentors, mentorCount, err := s.applicationRepo.ListByRecruitment(id, repository.ApplicationFilter{
		Role:   domain.RoleMentor,
		Status: domain.ApplicationStatusApproved,
	})
	if err != nil {
		return nil, err
	}

	return &dto.MatchingPreviewResponse{
		RecruitmentID:  rec.ID,
		BatchCommitted: rec.BatchCommitted,
		MenteeCount:    menteeCount,
		MentorCount:    mentorCount,
		Mentees:        toApplicationResponses(mentees),
		Mentors:        toApplicationResponses(mentors),
	}, nil
}

func toRecruitmentResponse(rec *domain.Recruitment) dto.RecruitmentResponse {
	return dto.RecruitmentResponse{
		ID:             rec.ID,
		Title:          rec.Title,
		Description:    rec.Description,
		SemesterID:     rec.SemesterID,
		StartAt:        rec.StartAt.Format(time.RFC3339),
		EndAt:          rec.EndAt.Format(time.RFC3339),
		Status:         string(rec.Status),
		BatchCommitted: rec.BatchCommitted,
	}
}
