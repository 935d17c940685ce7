package dto

// Events published to the notification topic. Delivery is best-effort; the
// consumer side (notification service) is a separate deployment.

type ApplicationReviewedEvent struct {
	ApplicationID uint   `json:"application_id"`
	RecruitmentID uint   `json:"recruitment_id"`
	AccountID     uint   `json:"account_id"`
	Decision      string `json:"decision"` // APPROVED | REJECTED
	Reason        string `json:"reason,omitempty"`
}

type BatchCommittedEvent struct {
	RecruitmentID uint   `json:"recruitment_id"`
	MatchingIDs   []uint `json:"matching_ids"`
}
