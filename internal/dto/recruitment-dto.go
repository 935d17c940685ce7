package dto

import "time"

type CreateRecruitmentRequest struct {
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description"`
	SemesterID  uint      `json:"semester_id" validate:"required"`
	StartAt     time.Time `json:"start_at" validate:"required"`
	EndAt       time.Time `json:"end_at" validate:"required"`
}

type ListRecruitmentQuery struct {
	Status     string `query:"status"`
	SemesterID uint   `query:"semester_id"`
	Limit      int    `query:"limit"`
	Offset     int    `query:"offset"`
}

type RecruitmentResponse struct {
	ID             uint   `json:"id"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	SemesterID     uint   `json:"semester_id"`
	StartAt        string `json:"start_at"`
	EndAt          string `json:"end_at"`
	Status         string `json:"status"`
	BatchCommitted bool   `json:"batch_committed"`
}

type RecruitmentListResponse struct {
	Items []RecruitmentResponse `json:"items"`
	Total int64                 `json:"total"`
}

// MatchingPreviewResponse lists the commit candidates for a recruitment so an
// operator can check assignments before the one-shot commit.
type MatchingPreviewResponse struct {
	RecruitmentID  uint                  `json:"recruitment_id"`
	BatchCommitted bool                  `json:"batch_committed"`
	MenteeCount    int64                 `json:"mentee_count"`
	MentorCount    int64                 `json:"mentor_count"`
	Mentees        []ApplicationResponse `json:"mentees"`
	Mentors        []ApplicationResponse `json:"mentors"`
}
