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

func newThreadEnv(t *testing.T) (*gorm.DB, ThreadService) {
	t.Helper()

	db := newTestDB(t)
	svc := NewThreadService(
		repository.NewMatchingRepository(db),
		repository.NewMessageRepository(db),
	)
	return db, svc
}

func seedMatching(t *testing.T, db *gorm.DB, recruitmentID uint, menteeAccount, mentorAccount uint) *domain.Matching {
	t.Helper()

	mentee := seedApplication(t, db, recruitmentID, menteeAccount, domain.RoleMentee, domain.ApplicationStatusMatched)
	mentor := seedApplication(t, db, recruitmentID, mentorAccount, domain.RoleMentor, domain.ApplicationStatusMatched)

	m := &domain.Matching{
		RecruitmentID:       recruitmentID,
		MenteeApplicationID: mentee.ID,
		MentorApplicationID: mentor.ID,
	}
	require.NoError(t, db.Create(m).Error)
	return m
}

func seedMessage(t *testing.T, db *gorm.DB, matchingID uint, msgType domain.MessageType, at time.Time) {
	t.Helper()

	msg := &domain.MatchingMessage{
		MatchingID: matchingID,
		Type:       msgType,
		AuthorID:   1,
		Content:    "hello",
	}
	msg.CreatedAt = at
	require.NoError(t, db.Create(msg).Error)
}

func TestRoomStatus_Derivation(t *testing.T) {
	db, svc := newThreadEnv(t)
	rec := seedRecruitment(t, db, domain.RecruitmentStatusClosed)
	m := seedMatching(t, db, rec.ID, 10, 20)

	// empty thread is waiting for a question
	detail, err := svc.RoomDetail(m.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.RoomStatusAnswerPending), detail.Status)

	now := time.Now()
	seedMessage(t, db, m.ID, domain.MessageTypeQuestion, now.Add(-3*time.Minute))
	detail, err = svc.RoomDetail(m.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.RoomStatusAnswerPending), detail.Status)

	seedMessage(t, db, m.ID, domain.MessageTypeAnswer, now.Add(-2*time.Minute))
	detail, err = svc.RoomDetail(m.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.RoomStatusAnswered), detail.Status)

	// a later question flips it back, regardless of history
	seedMessage(t, db, m.ID, domain.MessageTypeQuestion, now.Add(-time.Minute))
	detail, err = svc.RoomDetail(m.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.RoomStatusAnswerPending), detail.Status)
	require.Len(t, detail.Messages, 3)
	assert.Equal(t, string(domain.MessageTypeQuestion), detail.Messages[0].Type)
	assert.Equal(t, string(domain.MessageTypeAnswer), detail.Messages[1].Type)
}

func TestRoomDetail_NotFound(t *testing.T) {
	_, svc := newThreadEnv(t)

	_, err := svc.RoomDetail(999)
	assert.ErrorIs(t, err, domain.ErrMatchingNotFound)
}

func TestRoomDetail_IncludesIdentitySnapshots(t *testing.T) {
	db, svc := newThreadEnv(t)
	rec := seedRecruitment(t, db, domain.RecruitmentStatusClosed)
	m := seedMatching(t, db, rec.ID, 10, 20)

	detail, err := svc.RoomDetail(m.ID)
	require.NoError(t, err)
	assert.Equal(t, uint(10), detail.Mentee.AccountID)
	assert.Equal(t, uint(20), detail.Mentor.AccountID)
	assert.Equal(t, "Test Account", detail.Mentee.DisplayName)
}

func TestListRooms_OrderedByRecency(t *testing.T) {
	db, svc := newThreadEnv(t)
	rec := seedRecruitment(t, db, domain.RecruitmentStatusClosed)

	quiet := seedMatching(t, db, rec.ID, 10, 20)
	older := seedMatching(t, db, rec.ID, 11, 21)
	recent := seedMatching(t, db, rec.ID, 12, 22)

	now := time.Now()
	seedMessage(t, db, older.ID, domain.MessageTypeQuestion, now.Add(-time.Hour))
	seedMessage(t, db, recent.ID, domain.MessageTypeQuestion, now.Add(-30*time.Minute))
	seedMessage(t, db, recent.ID, domain.MessageTypeAnswer, now.Add(-10*time.Minute))

	resp, err := svc.ListRooms(rec.ID, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(3), resp.Total)
	require.Len(t, resp.Items, 3)

	assert.Equal(t, recent.ID, resp.Items[0].MatchingID)
	assert.Equal(t, string(domain.RoomStatusAnswered), resp.Items[0].Status)
	assert.Equal(t, 1, resp.Items[0].AnswerCount)
	assert.Equal(t, 2, resp.Items[0].MessageCount)

	assert.Equal(t, older.ID, resp.Items[1].MatchingID)
	assert.Equal(t, string(domain.RoomStatusAnswerPending), resp.Items[1].Status)

	// silent rooms trail, identified by matching id
	assert.Equal(t, quiet.ID, resp.Items[2].MatchingID)
	assert.Nil(t, resp.Items[2].LastMessageAt)
	assert.Equal(t, string(domain.RoomStatusAnswerPending), resp.Items[2].Status)
}

func TestListRooms_Pagination(t *testing.T) {
	db, svc := newThreadEnv(t)
	rec := seedRecruitment(t, db, domain.RecruitmentStatusClosed)

	first := seedMatching(t, db, rec.ID, 10, 20)
	second := seedMatching(t, db, rec.ID, 11, 21)

	resp, err := svc.ListRooms(rec.ID, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.Total)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, first.ID, resp.Items[0].MatchingID)

	resp, err = svc.ListRooms(rec.ID, 1, 1)
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, second.ID, resp.Items[0].MatchingID)

	resp, err = svc.ListRooms(rec.ID, 1, 5)
	require.NoError(t, err)
	assert.Empty(t, resp.Items)
}

func TestPostMessage(t *testing.T) {
	db, svc := newThreadEnv(t)
	rec := seedRecruitment(t, db, domain.RecruitmentStatusClosed)
	m := seedMatching(t, db, rec.ID, 10, 20)

	err := svc.PostMessage(10, m.ID, dto.PostMessageRequest{Type: "SHOUT", Content: "hi"})
	assert.ErrorIs(t, err, domain.ErrInvalidMessageType)

	err = svc.PostMessage(10, m.ID, dto.PostMessageRequest{Type: "QUESTION", Content: "  "})
	assert.ErrorIs(t, err, domain.ErrMessageRequired)

	err = svc.PostMessage(10, 999, dto.PostMessageRequest{Type: "QUESTION", Content: "anyone there?"})
	assert.ErrorIs(t, err, domain.ErrMatchingNotFound)

	require.NoError(t, svc.PostMessage(10, m.ID, dto.PostMessageRequest{Type: "question", Content: "how do I start?"}))

	detail, err := svc.RoomDetail(m.ID)
	require.NoError(t, err)
	require.Len(t, detail.Messages, 1)
	assert.Equal(t, string(domain.MessageTypeQuestion), detail.Messages[0].Type)
	assert.Equal(t, "how do I start?", detail.Messages[0].Content)
	assert.Equal(t, uint(10), detail.Messages[0].AuthorID)
}
