package models

import "time"

// Lead assessment status values.
const (
	LeadUnprocessed = 0
	LeadProcessed   = 1
)

// LeadAssessment captures a prospective client's intake form submitted
// from the public site. Rows are created by the public form, transitioned
// to processed by an admin, and never deleted.
type LeadAssessment struct {
	ID             uint       `json:"id" gorm:"primaryKey"`
	Name           string     `json:"name" gorm:"size:50;not null"`
	Gender         string     `json:"gender" gorm:"size:10"`
	Phone          string     `json:"phone" gorm:"size:20;not null"`
	Phone2         string     `json:"phone2" gorm:"size:20"`
	Birthday       string     `json:"birthday" gorm:"size:20"`
	Email          string     `json:"email" gorm:"size:100"`
	TargetCountry  string     `json:"target_country" gorm:"size:50;not null"`
	TargetCountry2 string     `json:"target_country2" gorm:"size:50"`
	Intention      string     `json:"intention" gorm:"size:100"`
	CallbackTime   string     `json:"callback_time" gorm:"size:50"`
	Budget         string     `json:"budget" gorm:"size:50"`
	English        string     `json:"english" gorm:"size:50"`
	LegalPerson    string     `json:"legal_person" gorm:"size:10"`
	Shareholder    string     `json:"shareholder" gorm:"size:10"`
	Position       string     `json:"position" gorm:"size:100"`
	Company        string     `json:"company" gorm:"size:200"`
	Referral       string     `json:"referral" gorm:"size:100"`
	Status         int        `json:"status" gorm:"default:0"`
	ProcessedAt    *time.Time `json:"processed_at"`
	CreatedAt      time.Time  `json:"created_at"`
}

func (LeadAssessment) TableName() string {
	return "lead_assessments"
}
