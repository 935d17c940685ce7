package domain

import (
	"gorm.io/gorm"
)

// Matching is a committed pairing of one approved mentee application with one
// approved mentor application. Rows are created only by the batch commit and
// are never updated or deleted afterward.
type Matching struct {
	ID            uint `gorm:"primaryKey" json:"id"`
	RecruitmentID uint `gorm:"not null;index;uniqueIndex:uidx_matchings_pair" json:"recruitment_id"`

	MenteeApplicationID uint `gorm:"not null;uniqueIndex:uidx_matchings_pair" json:"mentee_application_id"`
	MentorApplicationID uint `gorm:"not null;uniqueIndex:uidx_matchings_pair" json:"mentor_application_id"`

	MenteeApplication *Application `gorm:"foreignKey:MenteeApplicationID" json:"mentee_application,omitempty"`
	MentorApplication *Application `gorm:"foreignKey:MentorApplicationID" json:"mentor_application,omitempty"`

	gorm.Model
}

// Assignment is one operator-proposed pairing inside a batch commit.
type Assignment struct {
	MenteeApplicationID uint
	MentorApplicationID uint
}
