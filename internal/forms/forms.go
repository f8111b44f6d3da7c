// Package forms defines the form schemas for every create/edit screen and
// the public assessment form, and translates binding failures into
// per-field human-readable messages.
package forms

type LoginForm struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

type NewsForm struct {
	Title       string `form:"title" binding:"required,max=200"`
	CategoryID  *uint  `form:"category_id"`
	Keywords    string `form:"keywords" binding:"max=200"`
	Description string `form:"description" binding:"max=500"`
	Content     string `form:"content"`
	Source      string `form:"source" binding:"max=100"`
	Pic         string `form:"pic" binding:"max=255"`
}

type CategoryForm struct {
	Name      string `form:"name" binding:"required,max=50"`
	SortOrder int    `form:"sort_order"`
}

type ProgramForm struct {
	Title       string `form:"title" binding:"required,max=200"`
	ContinentID *uint  `form:"continent_id"`
	CountryID   uint   `form:"country_id" binding:"required"`
	Keywords    string `form:"keywords" binding:"max=200"`
	Description string `form:"description" binding:"max=500"`
	Content     string `form:"content"`
	Advantages  string `form:"advantages"`
	Process     string `form:"process"`
	Conditions  string `form:"conditions"`
	Pic         string `form:"pic" binding:"max=255"`
}

type CaseForm struct {
	Title       string `form:"title" binding:"required,max=200"`
	CountryID   *uint  `form:"country_id"`
	Keywords    string `form:"keywords" binding:"max=200"`
	Description string `form:"description" binding:"max=500"`
	Content     string `form:"content"`
	Pic         string `form:"pic" binding:"max=255"`
}

type TeamForm struct {
	Name        string `form:"name" binding:"required,max=50"`
	Title       string `form:"title" binding:"max=100"`
	Keywords    string `form:"keywords" binding:"max=200"`
	Description string `form:"description" binding:"max=500"`
	Content     string `form:"content"`
	Pic         string `form:"pic" binding:"max=255"`
	QQ          string `form:"qq" binding:"max=20"`
	SortOrder   int    `form:"sort_order"`
}

type EventForm struct {
	Title       string `form:"title" binding:"required,max=200"`
	Time        string `form:"time" binding:"max=100"`
	Address     string `form:"address" binding:"max=200"`
	CountryName string `form:"country_name" binding:"max=50"`
	Keywords    string `form:"keywords" binding:"max=200"`
	Description string `form:"description" binding:"max=500"`
	Content     string `form:"content"`
	Pic         string `form:"pic" binding:"max=255"`
}

type PropertyForm struct {
	Title       string `form:"title" binding:"required,max=200"`
	ContinentID *uint  `form:"continent_id"`
	CountryID   *uint  `form:"country_id"`
	City        string `form:"city" binding:"max=100"`
	Features    string `form:"features" binding:"max=200"`
	Keywords    string `form:"keywords" binding:"max=200"`
	Description string `form:"description" binding:"max=500"`
	Pic         string `form:"pic" binding:"max=255"`
	TotalPrice  string `form:"total_price" binding:"max=50"`
	UnitPrice   string `form:"unit_price" binding:"max=50"`
	Category    string `form:"category" binding:"max=50"`
	Ownership   string `form:"ownership" binding:"max=50"`
	Layout      string `form:"layout" binding:"max=100"`
	Decoration  string `form:"decoration" binding:"max=50"`
	Content     string `form:"content"`
	Status      int    `form:"status" binding:"oneof=0 1"`
}

type CountryForm struct {
	Name           string `form:"name" binding:"required,max=50"`
	NameEn         string `form:"name_en" binding:"max=100"`
	ContinentID    *uint  `form:"continent_id"`
	SortOrder      int    `form:"sort_order"`
	Flag           string `form:"flag" binding:"max=255"`
	CoverPic       string `form:"cover_pic" binding:"max=255"`
	Content        string `form:"content"`
	VideoContent   string `form:"video_content"`
	VideoPic       string `form:"video_pic" binding:"max=255"`
	LifeContent    string `form:"life_content"`
	LifePic        string `form:"life_pic" binding:"max=255"`
	EduContent     string `form:"edu_content"`
	EduPic         string `form:"edu_pic" binding:"max=255"`
	HousingContent string `form:"housing_content"`
	HousingPic     string `form:"housing_pic" binding:"max=255"`
}

type AdForm struct {
	Title  string `form:"title" binding:"required,max=200"`
	URL    string `form:"url" binding:"max=255"`
	Pic    string `form:"pic" binding:"max=255"`
	Status int    `form:"status" binding:"oneof=0 1"`
}

type LinkForm struct {
	Title string `form:"title" binding:"required,max=100"`
	URL   string `form:"url" binding:"required,max=255"`
}

// AssessmentForm is the public lead-intake form. Empty optional fields
// normalize to empty strings rather than erroring.
type AssessmentForm struct {
	Name           string `form:"name" binding:"required,max=50"`
	Gender         string `form:"gender" binding:"omitempty,oneof=男 女"`
	Phone          string `form:"phone" binding:"required,max=20"`
	Phone2         string `form:"phone2" binding:"max=20"`
	Birthday       string `form:"birthday" binding:"max=20"`
	Email          string `form:"email" binding:"omitempty,email"`
	TargetCountry  string `form:"target_country" binding:"required,max=50"`
	TargetCountry2 string `form:"target_country2" binding:"max=50"`
	Intention      string `form:"intention" binding:"max=100"`
	CallbackTime   string `form:"callback_time" binding:"max=50"`
	Budget         string `form:"budget" binding:"max=50"`
	English        string `form:"english" binding:"max=50"`
	LegalPerson    string `form:"legal_person" binding:"max=10"`
	Shareholder    string `form:"shareholder" binding:"max=10"`
	Position       string `form:"position" binding:"max=100"`
	Company        string `form:"company" binding:"max=200"`
	Referral       string `form:"referral" binding:"max=100"`
}

type AdminUserCreateForm struct {
	Username        string `form:"username" binding:"required,max=50"`
	Password        string `form:"password" binding:"required,min=8"`
	ConfirmPassword string `form:"confirm_password" binding:"required,eqfield=Password"`
}

type AdminPasswordForm struct {
	Password        string `form:"password" binding:"required,min=8"`
	ConfirmPassword string `form:"confirm_password" binding:"required,eqfield=Password"`
}
