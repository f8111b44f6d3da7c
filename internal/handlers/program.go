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

type ProgramHandler struct {
	cfg        *config.Config
	programs   *crud.Store[models.Program]
	countries  *crud.Store[models.Country]
	continents *crud.Store[models.Continent]
}

func NewProgramHandler(db *gorm.DB, cfg *config.Config) *ProgramHandler {
	return &ProgramHandler{
		cfg:        cfg,
		programs:   crud.NewStore[models.Program](db),
		countries:  crud.NewStore[models.Country](db),
		continents: crud.NewStore[models.Continent](db),
	}
}

func (h *ProgramHandler) List(c *gin.Context) {
	page := pageParam(c)
	search := c.Query("search")
	countryID := c.Query("country_id")

	var filters []crud.Filter
	if search != "" {
		filters = append(filters, crud.Filter{Query: "title LIKE ?", Args: []interface{}{"%" + search + "%"}})
	}
	if countryID != "" {
		filters = append(filters, crud.Filter{Query: "country_id = ?", Args: []interface{}{countryID}})
	}

	items, total, err := h.programs.List(crud.ListOptions{
		Page:    page,
		PerPage: h.cfg.PageSize,
		Order:   "id DESC",
		Filters: filters,
	})
	if err != nil {
		renderAdminError(c, http.StatusInternalServerError, "加载项目列表失败", "/admin/dashboard", err)
		return
	}

	countries, _, err := h.countries.List(crud.ListOptions{Order: "sort_order ASC"})
	if err != nil {
		renderAdminError(c, http.StatusInternalServerError, "加载国家列表失败", "/admin/dashboard", err)
		return
	}

	c.HTML(http.StatusOK, "admin/program_list", gin.H{
		"User":      adminName(c),
		"Items":     items,
		"Countries": countries,
		"Search":    search,
		"CountryID": countryID,
		"Pager":     pagination.Build(page, total, h.cfg.PageSize, "/admin/program", c.Request.URL.Query()),
	})
}

func (h *ProgramHandler) renderForm(c *gin.Context, status int, id uint, form *forms.ProgramForm, errs forms.FieldErrors) {
	countries, _, err := h.countries.List(crud.ListOptions{Order: "sort_order ASC"})
	if err != nil {
		renderAdminError(c, http.StatusInternalServerError, "加载国家列表失败", "/admin/program", err)
		return
	}
	continents, _, err := h.continents.List(crud.ListOptions{Order: "sort_order ASC"})
	if err != nil {
		renderAdminError(c, http.StatusInternalServerError, "加载大洲列表失败", "/admin/program", err)
		return
	}
	c.HTML(status, "admin/program_form", gin.H{
		"User":       adminName(c),
		"ID":         id,
		"Form":       form,
		"Errors":     errs,
		"Countries":  countries,
		"Continents": continents,
	})
}

func (h *ProgramHandler) AddPage(c *gin.Context) {
	h.renderForm(c, http.StatusOK, 0, &forms.ProgramForm{}, nil)
}

func (h *ProgramHandler) Create(c *gin.Context) {
	var form forms.ProgramForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderForm(c, http.StatusBadRequest, 0, &form, forms.Translate(err))
		return
	}

	program := models.Program{
		Title:       strings.TrimSpace(form.Title),
		ContinentID: form.ContinentID,
		CountryID:   form.CountryID,
		Keywords:    form.Keywords,
		Description: form.Description,
		Content:     form.Content,
		Advantages:  form.Advantages,
		Process:     form.Process,
		Conditions:  form.Conditions,
		Pic:         form.Pic,
	}
	if err := h.programs.Create(&program); err != nil {
		renderAdminError(c, http.StatusInternalServerError, "保存项目失败", "/admin/program", err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/admin/program")
}

func (h *ProgramHandler) EditPage(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.Redirect(http.StatusFound, "/admin/program")
		return
	}
	program, err := h.programs.GetByID(id)
	if err != nil {
		c.Redirect(http.StatusFound, "/admin/program")
		return
	}

	form := forms.ProgramForm{
		Title:       program.Title,
		ContinentID: program.ContinentID,
		CountryID:   program.CountryID,
		Keywords:    program.Keywords,
		Description: program.Description,
		Content:     program.Content,
		Advantages:  program.Advantages,
		Process:     program.Process,
		Conditions:  program.Conditions,
		Pic:         program.Pic,
	}
	h.renderForm(c, http.StatusOK, program.ID, &form, nil)
}

func (h *ProgramHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.Redirect(http.StatusFound, "/admin/program")
		return
	}
	program, err := h.programs.GetByID(id)
	if err != nil {
		c.Redirect(http.StatusFound, "/admin/program")
		return
	}

	var form forms.ProgramForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderForm(c, http.StatusBadRequest, id, &form, forms.Translate(err))
		return
	}

	program.Title = strings.TrimSpace(form.Title)
	program.ContinentID = form.ContinentID
	program.CountryID = form.CountryID
	program.Keywords = form.Keywords
	program.Description = form.Description
	program.Content = form.Content
	program.Advantages = form.Advantages
	program.Process = form.Process
	program.Conditions = form.Conditions
	program.Pic = form.Pic
	if err := h.programs.Save(program); err != nil {
		renderAdminError(c, http.StatusInternalServerError, "保存项目失败", "/admin/program", err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/admin/program")
}

func (h *ProgramHandler) Delete(c *gin.Context) {
	if id, ok := parseID(c); ok {
		if err := h.programs.Delete(id); err != nil {
			renderAdminError(c, http.StatusInternalServerError, "删除项目失败", "/admin/program", err)
			return
		}
	}
	c.Redirect(http.StatusSeeOther, "/admin/program")
}
