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
	"gorm.io/gorm"
)

type PropertyHandler struct {
	cfg        *config.Config
	listings   *crud.Store[models.PropertyListing]
	countries  *crud.Store[models.Country]
	continents *crud.Store[models.Continent]
}

func NewPropertyHandler(db *gorm.DB, cfg *config.Config) *PropertyHandler {
	return &PropertyHandler{
		cfg:        cfg,
		listings:   crud.NewStore[models.PropertyListing](db),
		countries:  crud.NewStore[models.Country](db),
		continents: crud.NewStore[models.Continent](db),
	}
}

// List shows listings in both publish states; only the public site
// filters on Status.
func (h *PropertyHandler) List(c *gin.Context) {
	page := pageParam(c)
	search := c.Query("search")
	status := c.Query("status")

	var filters []crud.Filter
	if search != "" {
		filters = append(filters, crud.Filter{Query: "title LIKE ?", Args: []interface{}{"%" + search + "%"}})
	}
	if status != "" {
		filters = append(filters, crud.Filter{Query: "status = ?", Args: []interface{}{status}})
	}

	items, total, err := h.listings.List(crud.ListOptions{
		Page:    page,
		PerPage: h.cfg.PageSize,
		Order:   "id DESC",
		Filters: filters,
	})
	if err != nil {
		renderAdminError(c, http.StatusInternalServerError, "加载房产列表失败", "/admin/dashboard", err)
		return
	}

	c.HTML(http.StatusOK, "admin/property_list", gin.H{
		"User":   adminName(c),
		"Items":  items,
		"Search": search,
		"Status": status,
		"Pager":  pagination.Build(page, total, h.cfg.PageSize, "/admin/property", c.Request.URL.Query()),
	})
}

func (h *PropertyHandler) renderForm(c *gin.Context, status int, id uint, form *forms.PropertyForm, errs forms.FieldErrors) {
	countries, _, err := h.countries.List(crud.ListOptions{Order: "sort_order ASC"})
	if err != nil {
		renderAdminError(c, http.StatusInternalServerError, "加载国家列表失败", "/admin/property", err)
		return
	}
	continents, _, err := h.continents.List(crud.ListOptions{Order: "sort_order ASC"})
	if err != nil {
		renderAdminError(c, http.StatusInternalServerError, "加载大洲列表失败", "/admin/property", err)
		return
	}
	c.HTML(status, "admin/property_form", gin.H{
		"User":       adminName(c),
		"ID":         id,
		"Form":       form,
		"Errors":     errs,
		"Countries":  countries,
		"Continents": continents,
	})
}

func (h *PropertyHandler) AddPage(c *gin.Context) {
	h.renderForm(c, http.StatusOK, 0, &forms.PropertyForm{Status: models.StatusEnabled}, nil)
}

func (h *PropertyHandler) Create(c *gin.Context) {
	var form forms.PropertyForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderForm(c, http.StatusBadRequest, 0, &form, forms.Translate(err))
		return
	}

	listing := h.apply(&models.PropertyListing{}, &form)
	if err := h.listings.Create(listing); err != nil {
		renderAdminError(c, http.StatusInternalServerError, "保存房产失败", "/admin/property", err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/admin/property")
}

func (h *PropertyHandler) EditPage(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.Redirect(http.StatusFound, "/admin/property")
		return
	}
	listing, err := h.listings.GetByID(id)
	if err != nil {
		c.Redirect(http.StatusFound, "/admin/property")
		return
	}

	form := forms.PropertyForm{
		Title:       listing.Title,
		ContinentID: listing.ContinentID,
		CountryID:   listing.CountryID,
		City:        listing.City,
		Features:    listing.Features,
		Keywords:    listing.Keywords,
		Description: listing.Description,
		Pic:         listing.Pic,
		TotalPrice:  listing.TotalPrice,
		UnitPrice:   listing.UnitPrice,
		Category:    listing.Category,
		Ownership:   listing.Ownership,
		Layout:      listing.Layout,
		Decoration:  listing.Decoration,
		Content:     listing.Content,
		Status:      listing.Status,
	}
	h.renderForm(c, http.StatusOK, listing.ID, &form, nil)
}

func (h *PropertyHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.Redirect(http.StatusFound, "/admin/property")
		return
	}
	listing, err := h.listings.GetByID(id)
	if err != nil {
		c.Redirect(http.StatusFound, "/admin/property")
		return
	}

	var form forms.PropertyForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderForm(c, http.StatusBadRequest, id, &form, forms.Translate(err))
		return
	}

	h.apply(listing, &form)
	if err := h.listings.Save(listing); err != nil {
		renderAdminError(c, http.StatusInternalServerError, "保存房产失败", "/admin/property", err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/admin/property")
}

func (h *PropertyHandler) Delete(c *gin.Context) {
	if id, ok := parseID(c); ok {
		if err := h.listings.Delete(id); err != nil {
			renderAdminError(c, http.StatusInternalServerError, "删除房产失败", "/admin/property", err)
			return
		}
	}
	c.Redirect(http.StatusSeeOther, "/admin/property")
}

func (h *PropertyHandler) apply(listing *models.PropertyListing, form *forms.PropertyForm) *models.PropertyListing {
	listing.Title = strings.TrimSpace(form.Title)
	listing.ContinentID = form.ContinentID
	listing.CountryID = form.CountryID
	listing.City = form.City
	listing.Features = form.Features
	listing.Keywords = form.Keywords
	listing.Description = form.Description
	listing.Pic = form.Pic
	listing.TotalPrice = form.TotalPrice
	listing.UnitPrice = form.UnitPrice
	listing.Category = form.Category
	listing.Ownership = form.Ownership
	listing.Layout = form.Layout
	listing.Decoration = form.Decoration
	listing.Content = form.Content
	listing.Status = form.Status
	return listing
}
