package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/CampusOrbit/mentoring_service/internal/domain"
	"github.com/CampusOrbit/mentoring_service/internal/dto"
	"github.com/CampusOrbit/mentoring_service/internal/interfaces"
	"github.com/CampusOrbit/mentoring_service/internal/repository"
	"github.com/CampusOrbit/mentoring_service/pkg/utils"
	"github.com/sirupsen/logrus"
)

type ApplicationService interface {
	Submit(ctx context.Context, accountID uint, input dto.SubmitApplicationRequest) (*dto.ApplicationResponse, error)
	List(recruitmentID uint, query dto.ListApplicationQuery) (*dto.ApplicationListResponse, error)
	Detail(id uint) (*dto.ApplicationResponse, error)
	Cancel(id uint) error

	// Review operations. Reviewing a MATCHED or CANCELED application fails
	// with REVIEW_STATE_INVALID instead of silently overwriting the status.
	Approve(id uint) error
	Reject(id uint, reason string) error
}

type applicationService struct {
	applicationRepo repository.ApplicationRepository
	recruitmentRepo repository.RecruitmentRepository
	directory       interfaces.AccountDirectory
	producer        interfaces.ProducerHandler
}

func NewApplicationService(
	applicationRepo repository.ApplicationRepository,
	recruitmentRepo repository.RecruitmentRepository,
	directory interfaces.AccountDirectory,
	producer interfaces.ProducerHandler,
) ApplicationService {
	return &applicationService{
		applicationRepo: applicationRepo,
		recruitmentRepo: recruitmentRepo,
		directory:       directory,
		producer:        producer,
	}
}

func (s *applicationService) Submit(ctx context.Context, accountID uint, input dto.SubmitApplicationRequest) (*dto.ApplicationResponse, error) {
	role := domain.ApplicationRole(strings.ToUpper(strings.TrimSpace(input.Role)))
	if role != domain.RoleMentor && role != domain.RoleMentee {
		return nil, domain.ErrInvalidRole
	}

	rec, err := s.recruitmentRepo.FindByID(input.RecruitmentID)
	if err != nil {
		return nil, err
	}
	if rec.Status != domain.RecruitmentStatusOpen {
		return nil, domain.ErrRecruitmentNotOpen
	}

	active, err := s.applicationRepo.HasActive(rec.ID, accountID)
	if err != nil {
		return nil, err
	}
	if active {
		return nil, domain.ErrDuplicateApplication
	}

	// Snapshot the applicant identity once; review listings never go back to
	// the directory.
	profile, err := s.directory.Lookup(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("directory lookup failed: %w", err)
	}

	app := &domain.Application{
		RecruitmentID: rec.ID,
		AccountID:     accountID,
		Role:          role,
		Status:        domain.ApplicationStatusApplied,
		DisplayName:   profile.DisplayName,
		Department:    profile.Department,
		Grade:         profile.Grade,
		Reason:        strings.TrimSpace(input.Reason),
	}
	if err := s.applicationRepo.Create(app); err != nil {
		return nil, err
	}

	resp := toApplicationResponse(app)
	return &resp, nil
}

func (s *applicationService) List(recruitmentID uint, query dto.ListApplicationQuery) (*dto.ApplicationListResponse, error) {
	if _, err := s.recruitmentRepo.FindByID(recruitmentID); err != nil {
		return nil, err
	}

	limit, offset := utils.NormalizePage(query.Limit, query.Offset)
	apps, total, err := s.applicationRepo.ListByRecruitment(recruitmentID, repository.ApplicationFilter{
		Role:   domain.ApplicationRole(strings.ToUpper(strings.TrimSpace(query.Role))),
		Status: domain.ApplicationStatus(strings.ToUpper(strings.TrimSpace(query.Status))),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, err
	}

	return &dto.ApplicationListResponse{
		Items: toApplicationResponses(apps),
		Total: total,
	}, nil
}

func (s *applicationService) Detail(id uint) (*dto.ApplicationResponse, error) {
	app, err := s.applicationRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	resp := toApplicationResponse(app)
	return &resp, nil
}

func (s *applicationService) Cancel(id uint) error {
	return s.applicationRepo.Cancel(id)
}

func (s *applicationService) Approve(id uint) error {
	app, err := s.applicationRepo.FindByID(id)
	if err != nil {
		return err
	}
	if app.Status.IsTerminal() {
		return domain.ErrReviewStateInvalid
	}

	if err := s.applicationRepo.UpdateReview(id, domain.ApplicationStatusApproved, nil); err != nil {
		return err
	}

	s.publishReviewed(app, string(domain.ApplicationStatusApproved), "")
	return nil
}

func (s *applicationService) Reject(id uint, reason string) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return domain.ErrRejectReasonRequired
	}

	app, err := s.applicationRepo.FindByID(id)
	if err != nil {
		return err
	}
	if app.Status.IsTerminal() {
		return domain.ErrReviewStateInvalid
	}

	if err := s.applicationRepo.UpdateReview(id, domain.ApplicationStatusRejected, &reason); err != nil {
		return err
	}

	s.publishReviewed(app, string(domain.ApplicationStatusRejected), reason)
	return nil
}

// publishReviewed is fire-and-forget: a broker failure never rolls back the
// review itself.
func (s *applicationService) publishReviewed(app *domain.Application, decision, reason string) {
	event := dto.ApplicationReviewedEvent{
		ApplicationID: app.ID,
		RecruitmentID: app.RecruitmentID,
		AccountID:     app.AccountID,
		Decision:      decision,
		Reason:        reason,
	}
	payload, err := json.Marshal(event)
	if err != nil {
		logrus.Warnf("marshal reviewed event: %v", err)
		return
	}
	if err := s.producer.PublishMessage([]byte("application.reviewed"), payload); err != nil {
		logrus.Warnf("publish reviewed event for application %d: %v", app.ID, err)
	}
}

func toApplicationResponse(app *domain.Application) dto.ApplicationResponse {
	resp := dto.ApplicationResponse{
		ID:            app.ID,
		RecruitmentID: app.RecruitmentID,
		AccountID:     app.AccountID,
		Role:          string(app.Role),
		Status:        string(app.Status),
		DisplayName:   app.DisplayName,
		Department:    app.Department,
		Grade:         app.Grade,
		Reason:        app.Reason,
		RejectReason:  app.RejectReason,
		AppliedAt:     app.AppliedAt.Format(time.RFC3339),
	}
	if app.ProcessedAt != nil {
		processed := app.ProcessedAt.Format(time.RFC3339)
		resp.ProcessedAt = &processed
	}
	return resp
}

func toApplicationResponses(apps []domain.Application) []dto.ApplicationResponse {
	out := make([]dto.ApplicationResponse, 0, len(apps))
	for i := range apps {
		out = append(out, toApplicationResponse(&apps[i]))
	}
	return out
}
