package dto

type AssignmentRequest struct {
	MenteeApplicationID uint `json:"mentee_application_id" validate:"required"`
	MentorApplicationID uint `json:"mentor_application_id" validate:"required"`
}

type CommitBatchRequest struct {
	Assignments []AssignmentRequest `json:"assignments" validate:"required,min=1"`
}

type MatchingResponse struct {
	ID                  uint   `json:"id"`
	RecruitmentID       uint   `json:"recruitment_id"`
	MenteeApplicationID uint   `json:"mentee_application_id"`
	MentorApplicationID uint   `json:"mentor_application_id"`
	CreatedAt           string `json:"created_at"`
}

type CommitBatchResponse struct {
	RecruitmentID uint               `json:"recruitment_id"`
	Matchings     []MatchingResponse `json:"matchings"`
}
