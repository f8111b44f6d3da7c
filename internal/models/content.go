package models

import "time"

type NewsCategory struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	Name      string `json:"name" gorm:"size:50;not null"`
	SortOrder int    `json:"sort_order" gorm:"default:0"`
}

func (NewsCategory) TableName() string {
	return "news_categories"
}

// NewsArticle is a public news item. Hits is stored for display only;
// no route currently increments it.
type NewsArticle struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"size:200;not null"`
	Keywords    string    `json:"keywords" gorm:"size:200"`
	Description string    `json:"description" gorm:"size:500"`
	CategoryID  *uint     `json:"category_id"`
	Content     string    `json:"content" gorm:"type:text"`
	Source      string    `json:"source" gorm:"size:100"`
	Pic         string    `json:"pic" gorm:"size:255"`
	Hits        int       `json:"hits" gorm:"default:0"`
	CreatedAt   time.Time `json:"created_at"`
}

func (NewsArticle) TableName() string {
	return "news_articles"
}

// Program is an immigration project. CountryID is required; ContinentID
// is optional.
type Program struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"size:200;not null"`
	Keywords    string    `json:"keywords" gorm:"size:200"`
	Description string    `json:"description" gorm:"size:500"`
	ContinentID *uint     `json:"continent_id"`
	CountryID   uint      `json:"country_id" gorm:"not null"`
	Content     string    `json:"content" gorm:"type:text"`
	Advantages  string    `json:"advantages" gorm:"type:text"`
	Process     string    `json:"process" gorm:"type:text"`
	Conditions  string    `json:"conditions" gorm:"type:text"`
	Pic         string    `json:"pic" gorm:"size:255"`
	Hits        int       `json:"hits" gorm:"default:0"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Program) TableName() string {
	return "programs"
}

type CaseStudy struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"size:200;not null"`
	Keywords    string    `json:"keywords" gorm:"size:200"`
	Description string    `json:"description" gorm:"size:500"`
	CountryID   *uint     `json:"country_id"`
	Content     string    `json:"content" gorm:"type:text"`
	Pic         string    `json:"pic" gorm:"size:255"`
	Hits        int       `json:"hits" gorm:"default:0"`
	CreatedAt   time.Time `json:"created_at"`
}

func (CaseStudy) TableName() string {
	return "case_studies"
}

// Event keeps its time, address and country as free text rather than
// foreign keys, matching how the marketing team enters them.
type Event struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"size:200;not null"`
	Time        string    `json:"time" gorm:"size:100"`
	Address     string    `json:"address" gorm:"size:200"`
	CountryName string    `json:"country_name" gorm:"size:50"`
	Keywords    string    `json:"keywords" gorm:"size:200"`
	Description string    `json:"description" gorm:"size:500"`
	Content     string    `json:"content" gorm:"type:text"`
	Pic         string    `json:"pic" gorm:"size:255"`
	Hits        int       `json:"hits" gorm:"default:0"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Event) TableName() string {
	return "events"
}

type TeamMember struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:50;not null"`
	Title       string    `json:"title" gorm:"size:100"`
	Pic         string    `json:"pic" gorm:"size:255"`
	Content     string    `json:"content" gorm:"type:text"`
	Keywords    string    `json:"keywords" gorm:"size:200"`
	Description string    `json:"description" gorm:"size:500"`
	QQ          string    `json:"qq" gorm:"size:20"`
	SortOrder   int       `json:"sort_order" gorm:"default:0"`
	Hits        int       `json:"hits" gorm:"default:0"`
	CreatedAt   time.Time `json:"created_at"`
}

func (TeamMember) TableName() string {
	return "team_members"
}
