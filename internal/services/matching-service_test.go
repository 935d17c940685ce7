package services

import (
	"encoding/json"
	"testing"

	"github.com/CampusOrbit/mentoring_service/internal/domain"
	"github.com/CampusOrbit/mentoring_service/internal/dto"
	"github.com/CampusOrbit/mentoring_service/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommitBatch_EmptyAssignments(t *testing.T) {
	db := newTestDB(t)
	producer := &fakeProducer{}
	svc := NewMatchingService(repository.NewMatchingRepository(db), producer)

	_, err := svc.CommitBatch(1, dto.CommitBatchRequest{})
	assert.ErrorIs(t, err, domain.ErrAssignmentsRequired)
	assert.Empty(t, producer.keys)
}

func TestCommitBatch_SuccessPublishesEvent(t *testing.T) {
	db := newTestDB(t)
	producer := &fakeProducer{}
	svc := NewMatchingService(repository.NewMatchingRepository(db), producer)

	rec := seedRecruitment(t, db, domain.RecruitmentStatusClosed)
	mentee := seedApplication(t, db, rec.ID, 10, domain.RoleMentee, domain.ApplicationStatusApproved)
	mentor := seedApplication(t, db, rec.ID, 20, domain.RoleMentor, domain.ApplicationStatusApproved)

	resp, err := svc.CommitBatch(rec.ID, dto.CommitBatchRequest{
		Assignments: []dto.AssignmentRequest{
			{MenteeApplicationID: mentee.ID, MentorApplicationID: mentor.ID},
		},
	})
	require.NoError(t, err)
	require.Len(t, resp.Matchings, 1)

	require.Len(t, producer.keys, 1)
	assert.Equal(t, "matching.committed", producer.keys[0])

	var event dto.BatchCommittedEvent
	require.NoError(t, json.Unmarshal(producer.payload[0], &event))
	assert.Equal(t, rec.ID, event.RecruitmentID)
	assert.Equal(t, []uint{resp.Matchings[0].ID}, event.MatchingIDs)
}

func TestCommitBatch_FailureDoesNotPublish(t *testing.T) {
	db := newTestDB(t)
	producer := &fakeProducer{}
	svc := NewMatchingService(repository.NewMatchingRepository(db), producer)

	rec := seedRecruitment(t, db, domain.RecruitmentStatusClosed)
	mentee := seedApplication(t, db, rec.ID, 10, domain.RoleMentee, domain.ApplicationStatusApproved)

	_, err := svc.CommitBatch(rec.ID, dto.CommitBatchRequest{
		Assignments: []dto.AssignmentRequest{
			{MenteeApplicationID: mentee.ID, MentorApplicationID: 999},
		},
	})

	var assignErr *domain.AssignmentError
	require.ErrorAs(t, err, &assignErr)
	assert.Equal(t, 1, assignErr.Index)
	assert.Empty(t, producer.keys)
}
