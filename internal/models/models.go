package models

import "time"

// Activity is a named extracurricular offering. A nil MaxParticipants means
// unlimited; a nil Category means uncategorized and is kept distinct from "".
type Activity struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Name            string `gorm:"uniqueIndex;not null"`
	Description     string `gorm:"type:text"`
	Schedule        string
	MaxParticipants *int
	Category        *string `gorm:"index"`

	Participants []Participant `gorm:"constraint:OnDelete:CASCADE"`
}

// Participant is one student enrolled in one activity.
type Participant struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time

	Email      string `gorm:"not null;uniqueIndex:idx_participant_activity_email,priority:2"`
	ActivityID uint   `gorm:"not null;uniqueIndex:idx_participant_activity_email,priority:1"`
}
