package models

import "time"

// Listing status values shared by PropertyListing and Advertisement.
const (
	StatusDisabled = 0
	StatusEnabled  = 1
)

// PropertyListing is an overseas property. Public list views only show
// rows with Status = StatusEnabled; admin views show both states.
type PropertyListing struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"size:200;not null"`
	ContinentID *uint     `json:"continent_id"`
	CountryID   *uint     `json:"country_id"`
	City        string    `json:"city" gorm:"size:100"`
	Features    string    `json:"features" gorm:"size:200"`
	Keywords    string    `json:"keywords" gorm:"size:200"`
	Description string    `json:"description" gorm:"size:500"`
	Pic         string    `json:"pic" gorm:"size:255"`
	TotalPrice  string    `json:"total_price" gorm:"size:50"`
	UnitPrice   string    `json:"unit_price" gorm:"size:50"`
	Category    string    `json:"category" gorm:"size:50"`
	Ownership   string    `json:"ownership" gorm:"size:50"`
	Layout      string    `json:"layout" gorm:"size:100"`
	Decoration  string    `json:"decoration" gorm:"size:50"`
	Content     string    `json:"content" gorm:"type:text"`
	Hits        int       `json:"hits" gorm:"default:0"`
	Status      int       `json:"status" gorm:"default:1"`
	CreatedAt   time.Time `json:"created_at"`
}

func (PropertyListing) TableName() string {
	return "property_listings"
}

type Advertisement struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"size:200;not null"`
	URL       string    `json:"url" gorm:"size:255"`
	Pic       string    `json:"pic" gorm:"size:255"`
	Status    int       `json:"status" gorm:"default:1"`
	CreatedAt time.Time `json:"created_at"`
}

func (Advertisement) TableName() string {
	return "advertisements"
}

type FriendLink struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"size:100;not null"`
	URL       string    `json:"url" gorm:"size:255;not null"`
	CreatedAt time.Time `json:"created_at"`
}

func (FriendLink) TableName() string {
	return "friend_links"
}
