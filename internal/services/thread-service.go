package services

import (
	"sort"
	"strings"
	"time"

	"github.com/CampusOrbit/mentoring_service/internal/domain"
	"github.com/CampusOrbit/mentoring_service/internal/dto"
	"github.com/CampusOrbit/mentoring_service/internal/repository"
	"github.com/CampusOrbit/mentoring_service/pkg/utils"
)

type ThreadService interface {
	ListRooms(recruitmentID uint, limit, offset int) (*dto.RoomListResponse, error)
	RoomDetail(matchingID uint) (*dto.RoomDetailResponse, error)
	PostMessage(authorID, matchingID uint, input dto.PostMessageRequest) error
}

type threadService struct {
	matchingRepo repository.MatchingRepository
	messageRepo  repository.MessageRepository
}

func NewThreadService(
	matchingRepo repository.MatchingRepository,
	messageRepo repository.MessageRepository,
) ThreadService {
	return &threadService{
		matchingRepo: matchingRepo,
		messageRepo:  messageRepo,
	}
}

func (s *threadService) ListRooms(recruitmentID uint, limit, offset int) (*dto.RoomListResponse, error) {
	matchings, err := s.matchingRepo.ListByRecruitment(recruitmentID)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(matchings))
	for i := range matchings {
		ids = append(ids, matchings[i].ID)
	}
	msgs, err := s.messageRepo.ListByMatchings(ids)
	if err != nil {
		return nil, err
	}

	// Messages arrive ordered by creation time, so the last one seen per room
	// carries the derived status.
	byRoom := make(map[uint][]domain.MatchingMessage, len(matchings))
	for _, m := range msgs {
		byRoom[m.MatchingID] = append(byRoom[m.MatchingID], m)
	}

	summaries := make([]dto.RoomSummaryResponse, 0, len(matchings))
	lastAt := make(map[uint]time.Time, len(matchings))
	for i := range matchings {
		m := &matchings[i]
		roomMsgs := byRoom[m.ID]

		summary := dto.RoomSummaryResponse{
			MatchingID:   m.ID,
			Status:       string(domain.DeriveRoomStatus(roomMsgs)),
			MessageCount: len(roomMsgs),
		}
		if m.MenteeApplication != nil {
			summary.MenteeName = m.MenteeApplication.DisplayName
		}
		if m.MentorApplication != nil {
			summary.MentorName = m.MentorApplication.DisplayName
		}
		for _, msg := range roomMsgs {
			if msg.Type == domain.MessageTypeAnswer {
				summary.AnswerCount++
			}
		}
		if len(roomMsgs) > 0 {
			last := roomMsgs[len(roomMsgs)-1].CreatedAt
			lastAt[m.ID] = last
			formatted := last.Format(time.RFC3339)
			summary.LastMessageAt = &formatted
		}
		summaries = append(summaries, summary)
	}

	// Most recently active rooms first; silent rooms fall back to matching id
	// order at the tail.
	sort.SliceStable(summaries, func(i, j int) bool {
		ti, iOK := lastAt[summaries[i].MatchingID]
		tj, jOK := lastAt[summaries[j].MatchingID]
		if iOK && jOK {
			if !ti.Equal(tj) {
				return ti.After(tj)
			}
			return summaries[i].MatchingID < summaries[j].MatchingID
		}
		if iOK != jOK {
			return iOK
		}
		return summaries[i].MatchingID < summaries[j].MatchingID
	})

	total := int64(len(summaries))
	limit, offset = utils.NormalizePage(limit, offset)
	if offset >= len(summaries) {
		return &dto.RoomListResponse{Items: []dto.RoomSummaryResponse{}, Total: total}, nil
	}
	end := offset + limit
	if end > len(summaries) {
		end = len(summaries)
	}
	return &dto.RoomListResponse{Items: summaries[offset:end], Total: total}, nil
}

func (s *threadService) RoomDetail(matchingID uint) (*dto.RoomDetailResponse, error) {
	m, err := s.matchingRepo.FindByID(matchingID)
	if err != nil {
		return nil, err
	}

	msgs, err := s.messageRepo.ListByMatching(matchingID)
	if err != nil {
		return nil, err
	}

	resp := &dto.RoomDetailResponse{
		MatchingID: m.ID,
		Status:     string(domain.DeriveRoomStatus(msgs)),
		Messages:   make([]dto.RoomMessageResponse, 0, len(msgs)),
	}
	if m.MenteeApplication != nil {
		resp.Mentee = toApplicationResponse(m.MenteeApplication)
	}
	if m.MentorApplication != nil {
		resp.Mentor = toApplicationResponse(m.MentorApplication)
	}
	for _, msg := range msgs {
		resp.Messages = append(resp.Messages, dto.RoomMessageResponse{
			ID:        msg.ID,
			Type:      string(msg.Type),
			AuthorID:  msg.AuthorID,
			Content:   msg.Content,
			CreatedAt: msg.CreatedAt.Format(time.RFC3339),
		})
	}
	return resp, nil
}

func (s *threadService) PostMessage(authorID, matchingID uint, input dto.PostMessageRequest) error {
	msgType := domain.MessageType(strings.ToUpper(strings.TrimSpace(input.Type)))
	if msgType != domain.MessageTypeQuestion && msgType != domain.MessageTypeAnswer {
		return domain.ErrInvalidMessageType
	}
	content := strings.TrimSpace(input.Content)
	if content == "" {
		return domain.ErrMessageRequired
	}

	if _, err := s.matchingRepo.FindByID(matchingID); err != nil {
		return err
	}

	return s.messageRepo.Append(&domain.MatchingMessage{
		MatchingID: matchingID,
		Type:       msgType,
		AuthorID:   authorID,
		Content:    content,
	})
}
