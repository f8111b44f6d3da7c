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

type EventHandler struct {
	cfg    *config.Config
	events *crud.Store[models.Event]
}

func NewEventHandler(db *gorm.DB, cfg *config.Config) *EventHandler {
	return &EventHandler{cfg: cfg, events: crud.NewStore[models.Event](db)}
}

func (h *EventHandler) List(c *gin.Context) {
	page := pageParam(c)
	search := c.Query("search")

	var filters []crud.Filter
	if search != "" {
		filters = append(filters, crud.Filter{Query: "title LIKE ?", Args: []interface{}{"%" + search + "%"}})
	}

	items, total, err := h.events.List(crud.ListOptions{
		Page:    page,
		PerPage: h.cfg.PageSize,
		Order:   "id DESC",
		Filters: filters,
	})
	if err != nil {
		renderAdminError(c, http.StatusInternalServerError, "加载活动列表失败", "/admin/dashboard", err)
		return
	}

	c.HTML(http.StatusOK, "admin/event_list", gin.H{
		"User":   adminName(c),
		"Items":  items,
		"Search": search,
		"Pager":  pagination.Build(page, total, h.cfg.PageSize, "/admin/events", c.Request.URL.Query()),
	})
}

func (h *EventHandler) renderForm(c *gin.Context, status int, id uint, form *forms.EventForm, errs forms.FieldErrors) {
	c.HTML(status, "admin/event_form", gin.H{
		"User":   adminName(c),
		"ID":     id,
		"Form":   form,
		"Errors": errs,
	})
}

func (h *EventHandler) AddPage(c *gin.Context) {
	h.renderForm(c, http.StatusOK, 0, &forms.EventForm{}, nil)
}

func (h *EventHandler) Create(c *gin.Context) {
	var form forms.EventForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderForm(c, http.StatusBadRequest, 0, &form, forms.Translate(err))
		return
	}

	event := models.Event{
		Title:       strings.TrimSpace(form.Title),
		Time:        form.Time,
		Address:     form.Address,
		CountryName: form.CountryName,
		Keywords:    form.Keywords,
		Description: form.Description,
		Content:     form.Content,
		Pic:         form.Pic,
	}
	if err := h.events.Create(&event); err != nil {
		renderAdminError(c, http.StatusInternalServerError, "保存活动失败", "/admin/events", err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/admin/events")
}

func (h *EventHandler) EditPage(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.Redirect(http.StatusFound, "/admin/events")
		return
	}
	event, err := h.events.GetByID(id)
	if err != nil {
		c.Redirect(http.StatusFound, "/admin/events")
		return
	}

	form := forms.EventForm{
		Title:       event.Title,
		Time:        event.Time,
		Address:     event.Address,
		CountryName: event.CountryName,
		Keywords:    event.Keywords,
		Description: event.Description,
		Content:     event.Content,
		Pic:         event.Pic,
	}
	h.renderForm(c, http.StatusOK, event.ID, &form, nil)
}

func (h *EventHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.Redirect(http.StatusFound, "/admin/events")
		return
	}
	event, err := h.events.GetByID(id)
	if err != nil {
		c.Redirect(http.StatusFound, "/admin/events")
		return
	}

	var form forms.EventForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderForm(c, http.StatusBadRequest, id, &form, forms.Translate(err))
		return
	}

	event.Title = strings.TrimSpace(form.Title)
	event.Time = form.Time
	event.Address = form.Address
	event.CountryName = form.CountryName
	event.Keywords = form.Keywords
	event.Description = form.Description
	event.Content = form.Content
	event.Pic = form.Pic
	if err := h.events.Save(event); err != nil {
		renderAdminError(c, http.StatusInternalServerError, "保存活动失败", "/admin/events", err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/admin/events")
}

func (h *EventHandler) Delete(c *gin.Context) {
	if id, ok := parseID(c); ok {
		if err := h.events.Delete(id); err != nil {
			renderAdminError(c, http.StatusInternalServerError, "删除活动失败", "/admin/events", err)
			return
		}
	}
	c.Redirect(http.StatusSeeOther, "/admin/events")
}
