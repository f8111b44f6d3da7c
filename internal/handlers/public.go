package handlers

import (
	"net/http"
	"strings"

	"newvisas-cms/internal/config"
	"newvisas-cms/internal/crud"
	"newvisas-cms/internal/forms"
	"newvisas-cms/internal/models"
	"newvisas-cms/internal/pagination"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// PublicHandler serves the visitor-facing pages. Every page loads the
// shared chrome data (enabled ads, friend links, countries for the nav)
// on top of its own content.
type PublicHandler struct {
	db         *gorm.DB
	cfg        *config.Config
	ads        *crud.Store[models.Advertisement]
	links      *crud.Store[models.FriendLink]
	countries  *crud.Store[models.Country]
	categories *crud.Store[models.NewsCategory]
	news       *crud.Store[models.NewsArticle]
	programs   *crud.Store[models.Program]
	cases      *crud.Store[models.CaseStudy]
	team       *crud.Store[models.TeamMember]
	events     *crud.Store[models.Event]
	properties *crud.Store[models.PropertyListing]
	leads      *crud.Store[models.LeadAssessment]
}

func NewPublicHandler(db *gorm.DB, cfg *config.Config) *PublicHandler {
	return &PublicHandler{
		db:         db,
		cfg:        cfg,
		ads:        crud.NewStore[models.Advertisement](db),
		links:      crud.NewStore[models.FriendLink](db),
		countries:  crud.NewStore[models.Country](db),
		categories: crud.NewStore[models.NewsCategory](db),
		news:       crud.NewStore[models.NewsArticle](db),
		programs:   crud.NewStore[models.Program](db),
		cases:      crud.NewStore[models.CaseStudy](db),
		team:       crud.NewStore[models.TeamMember](db),
		events:     crud.NewStore[models.Event](db),
		properties: crud.NewStore[models.PropertyListing](db),
		leads:      crud.NewStore[models.LeadAssessment](db),
	}
}

// chrome returns the data every public template expects.
func (h *PublicHandler) chrome() (gin.H, error) {
	ads, _, err := h.ads.List(crud.ListOptions{PerPage: 20, Order: "id DESC", Filters: []crud.Filter{{Query: "status = ?", Args: []interface{}{models.StatusEnabled}}}})
	if err != nil {
		return nil, err
	}
	links, _, err := h.links.List(crud.ListOptions{PerPage: 50, Order: "id ASC"})
	if err != nil {
		return nil, err
	}
	countries, _, err := h.countries.List(crud.ListOptions{PerPage: 200, Order: "sort_order ASC, id ASC"})
	if err != nil {
		return nil, err
	}
	return gin.H{"Ads": ads, "Links": links, "Countries": countries}, nil
}

func (h *PublicHandler) render(c *gin.Context, name string, data gin.H) {
	base, err := h.chrome()
	if err != nil {
		renderPublicError(c, err)
		return
	}
	for k, v := range data {
		base[k] = v
	}
	c.HTML(http.StatusOK, name, base)
}

func (h *PublicHandler) Home(c *gin.Context) {
	programs, _, err := h.programs.List(crud.ListOptions{PerPage: 8, Order: "id DESC"})
	if err != nil {
		renderPublicError(c, err)
		return
	}
	news, _, err := h.news.List(crud.ListOptions{PerPage: 8, Order: "id DESC"})
	if err != nil {
		renderPublicError(c, err)
		return
	}
	cases, _, err := h.cases.List(crud.ListOptions{PerPage: 6, Order: "id DESC"})
	if err != nil {
		renderPublicError(c, err)
		return
	}
	properties, _, err := h.properties.List(crud.ListOptions{PerPage: 6, Order: "id DESC", Filters: []crud.Filter{{Query: "status = ?", Args: []interface{}{models.StatusEnabled}}}})
	if err != nil {
		renderPublicError(c, err)
		return
	}
	h.render(c, "public/home", gin.H{
		"Programs":   programs,
		"News":       news,
		"Cases":      cases,
		"Properties": properties,
	})
}

func (h *PublicHandler) ProgramList(c *gin.Context) {
	page := pageParam(c)
	opts := crud.ListOptions{Page: page, PerPage: h.cfg.PageSize, Order: "id DESC"}
	if country := c.Query("country"); country != "" {
		opts.Filters = append(opts.Filters, crud.Filter{Query: "country_id = ?", Args: []interface{}{country}})
	}
	items, total, err := h.programs.List(opts)
	if err != nil {
		renderPublicError(c, err)
		return
	}
	h.render(c, "public/program_list", gin.H{
		"Items": items,
		"Pager": pagination.Build(page, total, h.cfg.PageSize, "/program", c.Request.URL.Query()),
	})
}

func (h *PublicHandler) ProgramDetail(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		renderNotFound(c)
		return
	}
	item, err := h.programs.GetByID(id)
	if err == crud.ErrNotFound {
		renderNotFound(c)
		return
	}
	if err != nil {
		renderPublicError(c, err)
		return
	}
	related, _, err := h.programs.List(crud.ListOptions{PerPage: 6, Order: "id DESC", Filters: []crud.Filter{
		{Query: "country_id = ? AND id <> ?", Args: []interface{}{item.CountryID, item.ID}},
	}})
	if err != nil {
		renderPublicError(c, err)
		return
	}
	h.render(c, "public/program_detail", gin.H{"Item": item, "Related": related})
}

func (h *PublicHandler) NewsList(c *gin.Context) {
	page := pageParam(c)
	opts := crud.ListOptions{Page: page, PerPage: h.cfg.PageSize, Order: "id DESC"}
	if category := c.Query("category"); category != "" {
		opts.Filters = append(opts.Filters, crud.Filter{Query: "category_id = ?", Args: []interface{}{category}})
	}
	items, total, err := h.news.List(opts)
	if err != nil {
		renderPublicError(c, err)
		return
	}
	categories, _, err := h.categories.List(crud.ListOptions{PerPage: 100, Order: "sort_order ASC, id ASC"})
	if err != nil {
		renderPublicError(c, err)
		return
	}
	h.render(c, "public/news_list", gin.H{
		"Items":      items,
		"Categories": categories,
		"Pager":      pagination.Build(page, total, h.cfg.PageSize, "/news", c.Request.URL.Query()),
	})
}

func (h *PublicHandler) NewsDetail(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		renderNotFound(c)
		return
	}
	item, err := h.news.GetByID(id)
	if err == crud.ErrNotFound {
		renderNotFound(c)
		return
	}
	if err != nil {
		renderPublicError(c, err)
		return
	}
	h.render(c, "public/news_detail", gin.H{"Item": item})
}

func (h *PublicHandler) CaseList(c *gin.Context) {
	page := pageParam(c)
	items, total, err := h.cases.List(crud.ListOptions{Page: page, PerPage: h.cfg.PageSize, Order: "id DESC"})
	if err != nil {
		renderPublicError(c, err)
		return
	}
	h.render(c, "public/case_list", gin.H{
		"Items": items,
		"Pager": pagination.Build(page, total, h.cfg.PageSize, "/case", c.Request.URL.Query()),
	})
}

func (h *PublicHandler) CaseDetail(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		renderNotFound(c)
		return
	}
	item, err := h.cases.GetByID(id)
	if err == crud.ErrNotFound {
		renderNotFound(c)
		return
	}
	if err != nil {
		renderPublicError(c, err)
		return
	}
	h.render(c, "public/case_detail", gin.H{"Item": item})
}

func (h *PublicHandler) TeamList(c *gin.Context) {
	page := pageParam(c)
	items, total, err := h.team.List(crud.ListOptions{Page: page, PerPage: h.cfg.PageSize, Order: "sort_order ASC, id DESC"})
	if err != nil {
		renderPublicError(c, err)
		return
	}
	h.render(c, "public/team_list", gin.H{
		"Items": items,
		"Pager": pagination.Build(page, total, h.cfg.PageSize, "/team", c.Request.URL.Query()),
	})
}

func (h *PublicHandler) TeamDetail(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		renderNotFound(c)
		return
	}
	item, err := h.team.GetByID(id)
	if err == crud.ErrNotFound {
		renderNotFound(c)
		return
	}
	if err != nil {
		renderPublicError(c, err)
		return
	}
	h.render(c, "public/team_detail", gin.H{"Item": item})
}

func (h *PublicHandler) EventList(c *gin.Context) {
	page := pageParam(c)
	items, total, err := h.events.List(crud.ListOptions{Page: page, PerPage: h.cfg.PageSize, Order: "id DESC"})
	if err != nil {
		renderPublicError(c, err)
		return
	}
	h.render(c, "public/event_list", gin.H{
		"Items": items,
		"Pager": pagination.Build(page, total, h.cfg.PageSize, "/events", c.Request.URL.Query()),
	})
}

func (h *PublicHandler) EventDetail(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		renderNotFound(c)
		return
	}
	item, err := h.events.GetByID(id)
	if err == crud.ErrNotFound {
		renderNotFound(c)
		return
	}
	if err != nil {
		renderPublicError(c, err)
		return
	}
	h.render(c, "public/event_detail", gin.H{"Item": item})
}

func (h *PublicHandler) PropertyList(c *gin.Context) {
	page := pageParam(c)
	opts := crud.ListOptions{Page: page, PerPage: h.cfg.PageSize, Order: "id DESC", Filters: []crud.Filter{
		{Query: "status = ?", Args: []interface{}{models.StatusEnabled}},
	}}
	if city := strings.TrimSpace(c.Query("city")); city != "" {
		opts.Filters = append(opts.Filters, crud.Filter{Query: "city LIKE ?", Args: []interface{}{"%" + city + "%"}})
	}
	items, total, err := h.properties.List(opts)
	if err != nil {
		renderPublicError(c, err)
		return
	}
	h.render(c, "public/property_list", gin.H{
		"Items": items,
		"Pager": pagination.Build(page, total, h.cfg.PageSize, "/property", c.Request.URL.Query()),
	})
}

// PropertyDetail hides disabled listings from the public site even when
// the id is valid.
func (h *PublicHandler) PropertyDetail(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		renderNotFound(c)
		return
	}
	item, err := h.properties.GetByID(id)
	if err == crud.ErrNotFound {
		renderNotFound(c)
		return
	}
	if err != nil {
		renderPublicError(c, err)
		return
	}
	if item.Status != models.StatusEnabled {
		renderNotFound(c)
		return
	}
	h.render(c, "public/property_detail", gin.H{"Item": item})
}

func (h *PublicHandler) About(c *gin.Context) {
	team, _, err := h.team.List(crud.ListOptions{PerPage: 12, Order: "sort_order ASC, id DESC"})
	if err != nil {
		renderPublicError(c, err)
		return
	}
	h.render(c, "public/about", gin.H{"Team": team})
}

func (h *PublicHandler) Contact(c *gin.Context) {
	h.render(c, "public/contact", gin.H{})
}

func (h *PublicHandler) AssessmentPage(c *gin.Context) {
	h.render(c, "public/assessment", gin.H{"Form": forms.AssessmentForm{}, "Errors": forms.FieldErrors{}})
}

// AssessmentSubmit records a lead. Validation failures re-render the
// form with the submitted values and per-field messages.
func (h *PublicHandler) AssessmentSubmit(c *gin.Context) {
	var form forms.AssessmentForm
	if err := c.ShouldBind(&form); err != nil {
		base, cerr := h.chrome()
		if cerr != nil {
			renderPublicError(c, cerr)
			return
		}
		base["Form"] = form
		base["Errors"] = forms.Translate(err)
		c.HTML(http.StatusBadRequest, "public/assessment", base)
		return
	}

	lead := models.LeadAssessment{
		Name:           strings.TrimSpace(form.Name),
		Gender:         form.Gender,
		Phone:          strings.TrimSpace(form.Phone),
		Phone2:         strings.TrimSpace(form.Phone2),
		Birthday:       form.Birthday,
		Email:          strings.TrimSpace(form.Email),
		TargetCountry:  form.TargetCountry,
		TargetCountry2: form.TargetCountry2,
		Intention:      form.Intention,
		CallbackTime:   form.CallbackTime,
		Budget:         form.Budget,
		English:        form.English,
		LegalPerson:    form.LegalPerson,
		Shareholder:    form.Shareholder,
		Position:       form.Position,
		Company:        form.Company,
		Referral:       form.Referral,
		Status:         models.LeadUnprocessed,
	}
	if err := h.leads.Create(&lead); err != nil {
		logrus.WithError(err).Error("save assessment failed")
		renderPublicError(c, err)
		return
	}
	h.render(c, "public/assessment_success", gin.H{"Name": lead.Name})
}

func (h *PublicHandler) NotFound(c *gin.Context) {
	renderNotFound(c)
}
