package domain

import (
	"time"

	"gorm.io/gorm"
)

type ApplicationRole string

const (
	RoleMentor ApplicationRole = "MENTOR"
	RoleMentee ApplicationRole = "MENTEE"
)

type ApplicationStatus string

const (
	ApplicationStatusApplied  ApplicationStatus = "APPLIED"
	ApplicationStatusApproved ApplicationStatus = "APPROVED"
	ApplicationStatusRejected ApplicationStatus = "REJECTED"
	ApplicationStatusCanceled ApplicationStatus = "CANCELED"
	ApplicationStatusMatched  ApplicationStatus = "MATCHED"
)

// IsTerminal reports whether no review transition may leave the status.
func (s ApplicationStatus) IsTerminal() bool {
	return s == ApplicationStatusMatched || s == ApplicationStatusCanceled
}

// Application is one participant's request to join a recruitment under a role.
// DisplayName/Department/Grade are a snapshot taken from the account directory
// at submit time; they are never re-queried afterward.
type Application struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	RecruitmentID uint            `gorm:"not null;index" json:"recruitment_id"`
	AccountID     uint            `gorm:"not null;index" json:"account_id"`
	Role          ApplicationRole `gorm:"type:varchar(10);not null" json:"role"`

	Status ApplicationStatus `gorm:"type:varchar(20);not null;default:'APPLIED'" json:"status"`

	DisplayName string  `gorm:"type:varchar(100);not null" json:"display_name"`
	Department  string  `gorm:"type:varchar(100);not null" json:"department"`
	Grade       *string `gorm:"type:varchar(20)" json:"grade,omitempty"` // mentors may have none

	Reason       string  `gorm:"type:text" json:"reason"`
	RejectReason *string `gorm:"type:text" json:"reject_reason,omitempty"` // set iff status = REJECTED

	AppliedAt   time.Time  `gorm:"autoCreateTime" json:"applied_at"`
	ProcessedAt *time.Time `json:"processed_at,omitempty"`

	gorm.Model
}
