package handlers

import (
	"net/http"
	"strings"

	"newvisas-cms/internal/config"
	"newvisas-cms/internal/crud"
	"newvisas-cms/internal/forms"
	"newvisas-cms/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CountryHandler struct {
	cfg        *config.Config
	countries  *crud.Store[models.Country]
	continents *crud.Store[models.Continent]
}

func NewCountryHandler(db *gorm.DB, cfg *config.Config) *CountryHandler {
	return &CountryHandler{
		cfg:        cfg,
		countries:  crud.NewStore[models.Country](db),
		continents: crud.NewStore[models.Continent](db),
	}
}

// List shows every country without pagination; the table is a small
// lookup set ordered by explicit sort order.
func (h *CountryHandler) List(c *gin.Context) {
	items, _, err := h.countries.List(crud.ListOptions{Order: "sort_order ASC, id ASC"})
	if err != nil {
		renderAdminError(c, http.StatusInternalServerError, "加载国家列表失败", "/admin/dashboard", err)
		return
	}
	c.HTML(http.StatusOK, "admin/country_list", gin.H{
		"User":  adminName(c),
		"Items": items,
	})
}

func (h *CountryHandler) renderForm(c *gin.Context, status int, id uint, form *forms.CountryForm, errs forms.FieldErrors) {
	continents, _, err := h.continents.List(crud.ListOptions{Order: "sort_order ASC"})
	if err != nil {
		renderAdminError(c, http.StatusInternalServerError, "加载大洲列表失败", "/admin/country", err)
		return
	}
	c.HTML(status, "admin/country_form", gin.H{
		"User":       adminName(c),
		"ID":         id,
		"Form":       form,
		"Errors":     errs,
		"Continents": continents,
	})
}

func (h *CountryHandler) AddPage(c *gin.Context) {
	h.renderForm(c, http.StatusOK, 0, &forms.CountryForm{}, nil)
}

func (h *CountryHandler) Create(c *gin.Context) {
	var form forms.CountryForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderForm(c, http.StatusBadRequest, 0, &form, forms.Translate(err))
		return
	}

	country := h.apply(&models.Country{}, &form)
	if err := h.countries.Create(country); err != nil {
		renderAdminError(c, http.StatusInternalServerError, "保存国家失败", "/admin/country", err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/admin/country")
}

func (h *CountryHandler) EditPage(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.Redirect(http.StatusFound, "/admin/country")
		return
	}
	country, err := h.countries.GetByID(id)
	if err != nil {
		c.Redirect(http.StatusFound, "/admin/country")
		return
	}

	form := forms.CountryForm{
		Name:           country.Name,
		NameEn:         country.NameEn,
		ContinentID:    country.ContinentID,
		SortOrder:      country.SortOrder,
		Flag:           country.Flag,
		CoverPic:       country.CoverPic,
		Content:        country.Content,
		VideoContent:   country.VideoContent,
		VideoPic:       country.VideoPic,
		LifeContent:    country.LifeContent,
		LifePic:        country.LifePic,
		EduContent:     country.EduContent,
		EduPic:         country.EduPic,
		HousingContent: country.HousingContent,
		HousingPic:     country.HousingPic,
	}
	h.renderForm(c, http.StatusOK, country.ID, &form, nil)
}

func (h *CountryHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.Redirect(http.StatusFound, "/admin/country")
		return
	}
	country, err := h.countries.GetByID(id)
	if err != nil {
		c.Redirect(http.StatusFound, "/admin/country")
		return
	}

	var form forms.CountryForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderForm(c, http.StatusBadRequest, id, &form, forms.Translate(err))
		return
	}

	h.apply(country, &form)
	if err := h.countries.Save(country); err != nil {
		renderAdminError(c, http.StatusInternalServerError, "保存国家失败", "/admin/country", err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/admin/country")
}

// Delete removes the country only; programs, cases and listings that
// reference it keep their now-dangling country id.
func (h *CountryHandler) Delete(c *gin.Context) {
	if id, ok := parseID(c); ok {
		if err := h.countries.Delete(id); err != nil {
			renderAdminError(c, http.StatusInternalServerError, "删除国家失败", "/admin/country", err)
			return
		}
	}
	c.Redirect(http.StatusSeeOther, "/admin/country")
}

func (h *CountryHandler) apply(country *models.Country, form *forms.CountryForm) *models.Country {
	country.Name = strings.TrimSpace(form.Name)
	country.NameEn = form.NameEn
	country.ContinentID = form.ContinentID
	country.SortOrder = form.SortOrder
	country.Flag = form.Flag
	country.CoverPic = form.CoverPic
	country.Content = form.Content
	country.VideoContent = form.VideoContent
	country.VideoPic = form.VideoPic
	country.LifeContent = form.LifeContent
	country.LifePic = form.LifePic
	country.EduContent = form.EduContent
	country.EduPic = form.EduPic
	country.HousingContent = form.HousingContent
	country.HousingPic = form.HousingPic
	return country
}
