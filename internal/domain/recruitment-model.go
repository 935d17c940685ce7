package domain

import (
	"time"

	"gorm.io/gorm"
)

type RecruitmentStatus string

const (
	RecruitmentStatusDraft  RecruitmentStatus = "DRAFT"
	RecruitmentStatusOpen   RecruitmentStatus = "OPEN"
	RecruitmentStatusClosed RecruitmentStatus = "CLOSED"
)

// Recruitment is one time-boxed mentoring campaign. Status only moves forward
// (DRAFT -> OPEN -> CLOSED) and BatchCommitted only flips false -> true.
type Recruitment struct {
	ID          uint              `gorm:"primaryKey" json:"id"`
	Title       string            `gorm:"type:varchar(200);not null" json:"title"`
	Description string            `gorm:"type:text" json:"description"`
	SemesterID  uint              `gorm:"not null;index" json:"semester_id"` // reference only, owned by the semester registry
	StartAt     time.Time         `gorm:"not null;index" json:"start_at"`
	EndAt       time.Time         `gorm:"not null;index" json:"end_at"`
	Status      RecruitmentStatus `gorm:"type:varchar(20);not null;default:'DRAFT'" json:"status"`

	BatchCommitted bool `gorm:"not null;default:false" json:"batch_committed"`

	CreatedBy uint `gorm:"not null" json:"created_by"` // operator account id

	gorm.Model
}
