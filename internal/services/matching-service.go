package services

import (
	"encoding/json"
	"time"

	"github.com/CampusOrbit/mentoring_service/internal/domain"
	"github.com/CampusOrbit/mentoring_service/internal/dto"
	"github.com/CampusOrbit/mentoring_service/internal/interfaces"
	"github.com/CampusOrbit/mentoring_service/internal/repository"
	"github.com/sirupsen/logrus"
)

type MatchingService interface {
	// CommitBatch is one-shot and all-or-nothing per recruitment: every
	// assignment validates or none is applied, and a second call always fails
	// with BATCH_ALREADY_COMMITTED. There is no uncommit.
	CommitBatch(recruitmentID uint, input dto.CommitBatchRequest) (*dto.CommitBatchResponse, error)
}

type matchingService struct {
	matchingRepo repository.MatchingRepository
	producer     interfaces.ProducerHandler
}

func NewMatchingService(
	matchingRepo repository.MatchingRepository,
	producer interfaces.ProducerHandler,
) MatchingService {
	return &matchingService{
		matchingRepo: matchingRepo,
		producer:     producer,
	}
}

func (s *matchingService) CommitBatch(recruitmentID uint, input dto.CommitBatchRequest) (*dto.CommitBatchResponse, error) {
	if len(input.Assignments) == 0 {
		return nil, domain.ErrAssignmentsRequired
	}

	assignments := make([]domain.Assignment, 0, len(input.Assignments))
	for _, a := range input.Assignments {
		assignments = append(assignments, domain.Assignment{
			MenteeApplicationID: a.MenteeApplicationID,
			MentorApplicationID: a.MentorApplicationID,
		})
	}

	created, err := s.matchingRepo.CommitBatch(recruitmentID, assignments)
	if err != nil {
		return nil, err
	}

	s.publishCommitted(recruitmentID, created)

	resp := &dto.CommitBatchResponse{RecruitmentID: recruitmentID}
	for i := range created {
		resp.Matchings = append(resp.Matchings, dto.MatchingResponse{
			ID:                  created[i].ID,
			RecruitmentID:       created[i].RecruitmentID,
			MenteeApplicationID: created[i].MenteeApplicationID,
			MentorApplicationID: created[i].MentorApplicationID,
			CreatedAt:           created[i].CreatedAt.Format(time.RFC3339),
		})
	}
	return resp, nil
}

func (s *matchingService) publishCommitted(recruitmentID uint, matchings []domain.Matching) {
	event := dto.BatchCommittedEvent{RecruitmentID: recruitmentID}
	for i := range matchings {
		event.MatchingIDs = append(event.MatchingIDs, matchings[i].ID)
	}
	payload, err := json.Marshal(event)
	if err != nil {
		logrus.Warnf("marshal committed event: %v", err)
		return
	}
	if err := s.producer.PublishMessage([]byte("matching.committed"), payload); err != nil {
		logrus.Warnf("publish committed event for recruitment %d: %v", recruitmentID, err)
	}
}
