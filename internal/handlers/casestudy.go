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

type CaseHandler struct {
	cfg       *config.Config
	cases     *crud.Store[models.CaseStudy]
	countries *crud.Store[models.Country]
}

func NewCaseHandler(db *gorm.DB, cfg *config.Config) *CaseHandler {
	return &CaseHandler{
		cfg:       cfg,
		cases:     crud.NewStore[models.CaseStudy](db),
		countries: crud.NewStore[models.Country](db),
	}
}

func (h *CaseHandler) List(c *gin.Context) {
	page := pageParam(c)
	search := c.Query("search")

	var filters []crud.Filter
	if search != "" {
		filters = append(filters, crud.Filter{Query: "title LIKE ?", Args: []interface{}{"%" + search + "%"}})
	}

	items, total, err := h.cases.List(crud.ListOptions{
		Page:    page,
		PerPage: h.cfg.PageSize,
		Order:   "id DESC",
		Filters: filters,
	})
	if err != nil {
		renderAdminError(c, http.StatusInternalServerError, "加载案例列表失败", "/admin/dashboard", err)
		return
	}

	c.HTML(http.StatusOK, "admin/case_list", gin.H{
		"User":   adminName(c),
		"Items":  items,
		"Search": search,
		"Pager":  pagination.Build(page, total, h.cfg.PageSize, "/admin/case", c.Request.URL.Query()),
	})
}

func (h *CaseHandler) renderForm(c *gin.Context, status int, id uint, form *forms.CaseForm, errs forms.FieldErrors) {
	countries, _, err := h.countries.List(crud.ListOptions{Order: "sort_order ASC"})
	if err != nil {
		renderAdminError(c, http.StatusInternalServerError, "加载国家列表失败", "/admin/case", err)
		return
	}
	c.HTML(status, "admin/case_form", gin.H{
		"User":      adminName(c),
		"ID":        id,
		"Form":      form,
		"Errors":    errs,
		"Countries": countries,
	})
}

func (h *CaseHandler) AddPage(c *gin.Context) {
	h.renderForm(c, http.StatusOK, 0, &forms.CaseForm{}, nil)
}

func (h *CaseHandler) Create(c *gin.Context) {
	var form forms.CaseForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderForm(c, http.StatusBadRequest, 0, &form, forms.Translate(err))
		return
	}

	caseStudy := models.CaseStudy{
		Title:       strings.TrimSpace(form.Title),
		CountryID:   form.CountryID,
		Keywords:    form.Keywords,
		Description: form.Description,
		Content:     form.Content,
		Pic:         form.Pic,
	}
	if err := h.cases.Create(&caseStudy); err != nil {
		renderAdminError(c, http.StatusInternalServerError, "保存案例失败", "/admin/case", err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/admin/case")
}

func (h *CaseHandler) EditPage(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.Redirect(http.StatusFound, "/admin/case")
		return
	}
	caseStudy, err := h.cases.GetByID(id)
	if err != nil {
		c.Redirect(http.StatusFound, "/admin/case")
		return
	}

	form := forms.CaseForm{
		Title:       caseStudy.Title,
		CountryID:   caseStudy.CountryID,
		Keywords:    caseStudy.Keywords,
		Description: caseStudy.Description,
		Content:     caseStudy.Content,
		Pic:         caseStudy.Pic,
	}
	h.renderForm(c, http.StatusOK, caseStudy.ID, &form, nil)
}

func (h *CaseHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.Redirect(http.StatusFound, "/admin/case")
		return
	}
	caseStudy, err := h.cases.GetByID(id)
	if err != nil {
		c.Redirect(http.StatusFound, "/admin/case")
		return
	}

	var form forms.CaseForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderForm(c, http.StatusBadRequest, id, &form, forms.Translate(err))
		return
	}

	caseStudy.Title = strings.TrimSpace(form.Title)
	caseStudy.CountryID = form.CountryID
	caseStudy.Keywords = form.Keywords
	caseStudy.Description = form.Description
	caseStudy.Content = form.Content
	caseStudy.Pic = form.Pic
	if err := h.cases.Save(caseStudy); err != nil {
		renderAdminError(c, http.StatusInternalServerError, "保存案例失败", "/admin/case", err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/admin/case")
}

func (h *CaseHandler) Delete(c *gin.Context) {
	if id, ok := parseID(c); ok {
		if err := h.cases.Delete(id); err != nil {
			renderAdminError(c, http.StatusInternalServerError, "删除案例失败", "/admin/case", err)
			return
		}
	}
	c.Redirect(http.StatusSeeOther, "/admin/case")
}
