package dto

type SubmitApplicationRequest struct {
	RecruitmentID uint   `json:"recruitment_id" validate:"required"`
	Role          string `json:"role" validate:"required,oneof=MENTOR MENTEE"`
	Reason        string `json:"reason"`
}

type ListApplicationQuery struct {
	Role   string `query:"role"`
	Status string `query:"status"`
	Limit  int    `query:"limit"`
	Offset int    `query:"offset"`
}

type ApplicationResponse struct {
	ID            uint    `json:"id"`
	RecruitmentID uint    `json:"recruitment_id"`
	AccountID     uint    `json:"account_id"`
	Role          string  `json:"role"`
	Status        string  `json:"status"`
	DisplayName   string  `json:"display_name"`
	Department    string  `json:"department"`
	Grade         *string `json:"grade,omitempty"`
	Reason        string  `json:"reason"`
	RejectReason  *string `json:"reject_reason,omitempty"`
	AppliedAt     string  `json:"applied_at"`
	ProcessedAt   *string `json:"processed_at,omitempty"`
}

type ApplicationListResponse struct {
	Items []ApplicationResponse `json:"items"`
	Total int64                 `json:"total"`
}

type RejectApplicationRequest struct {
	Reason string `json:"reason"`
}
