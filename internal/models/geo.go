package models

// Continent is a lookup row used to group countries and listings.
type Continent struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	Name      string `json:"name" gorm:"size:50;not null"`
	SortOrder int    `json:"sort_order" gorm:"default:0"`
}

func (Continent) TableName() string {
	return "continents"
}

// Country carries the large free-text destination guides shown on the
// public country pages. ContinentID is optional and orphaned references
// are tolerated (no cascade on delete).
type Country struct {
	ID             uint   `json:"id" gorm:"primaryKey"`
	Name           string `json:"name" gorm:"size:50;not null"`
	NameEn         string `json:"name_en" gorm:"size:100"`
	ContinentID    *uint  `json:"continent_id"`
	SortOrder      int    `json:"sort_order" gorm:"default:0"`
	Flag           string `json:"flag" gorm:"size:255"`
	CoverPic       string `json:"cover_pic" gorm:"size:255"`
	Content        string `json:"content" gorm:"type:text"`
	VideoContent   string `json:"video_content" gorm:"type:text"`
	VideoPic       string `json:"video_pic" gorm:"size:255"`
	LifeContent    string `json:"life_content" gorm:"type:text"`
	LifePic        string `json:"life_pic" gorm:"size:255"`
	EduContent     string `json:"edu_content" gorm:"type:text"`
	EduPic         string `json:"edu_pic" gorm:"size:255"`
	HousingContent string `json:"housing_content" gorm:"type:text"`
	HousingPic     string `json:"housing_pic" gorm:"size:255"`
}

func (Country) TableName() string {
	return "countries"
}
