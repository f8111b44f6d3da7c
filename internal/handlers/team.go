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

type TeamHandler struct {
	cfg     *config.Config
	members *crud.Store[models.TeamMember]
}

func NewTeamHandler(db *gorm.DB, cfg *config.Config) *TeamHandler {
	return &TeamHandler{cfg: cfg, members: crud.NewStore[models.TeamMember](db)}
}

func (h *TeamHandler) List(c *gin.Context) {
	page := pageParam(c)

	items, total, err := h.members.List(crud.ListOptions{
		Page:    page,
		PerPage: h.cfg.PageSize,
		Order:   "sort_order ASC, id DESC",
	})
	if err != nil {
		renderAdminError(c, http.StatusInternalServerError, "加载团队列表失败", "/admin/dashboard", err)
		return
	}

	c.HTML(http.StatusOK, "admin/team_list", gin.H{
		"User":  adminName(c),
		"Items": items,
		"Pager": pagination.Build(page, total, h.cfg.PageSize, "/admin/team", c.Request.URL.Query()),
	})
}

func (h *TeamHandler) renderForm(c *gin.Context, status int, id uint, form *forms.TeamForm, errs forms.FieldErrors) {
	c.HTML(status, "admin/team_form", gin.H{
		"User":   adminName(c),
		"ID":     id,
		"Form":   form,
		"Errors": errs,
	})
}

func (h *TeamHandler) AddPage(c *gin.Context) {
	h.renderForm(c, http.StatusOK, 0, &forms.TeamForm{}, nil)
}

func (h *TeamHandler) Create(c *gin.Context) {
	var form forms.TeamForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderForm(c, http.StatusBadRequest, 0, &form, forms.Translate(err))
		return
	}

	member := models.TeamMember{
		Name:        strings.TrimSpace(form.Name),
		Title:       form.Title,
		Keywords:    form.Keywords,
		Description: form.Description,
		Content:     form.Content,
		Pic:         form.Pic,
		QQ:          form.QQ,
		SortOrder:   form.SortOrder,
	}
	if err := h.members.Create(&member); err != nil {
		renderAdminError(c, http.StatusInternalServerError, "保存团队成员失败", "/admin/team", err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/admin/team")
}

func (h *TeamHandler) EditPage(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.Redirect(http.StatusFound, "/admin/team")
		return
	}
	member, err := h.members.GetByID(id)
	if err != nil {
		c.Redirect(http.StatusFound, "/admin/team")
		return
	}

	form := forms.TeamForm{
		Name:        member.Name,
		Title:       member.Title,
		Keywords:    member.Keywords,
		Description: member.Description,
		Content:     member.Content,
		Pic:         member.Pic,
		QQ:          member.QQ,
		SortOrder:   member.SortOrder,
	}
	h.renderForm(c, http.StatusOK, member.ID, &form, nil)
}

func (h *TeamHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.Redirect(http.StatusFound, "/admin/team")
		return
	}
	member, err := h.members.GetByID(id)
	if err != nil {
		c.Redirect(http.StatusFound, "/admin/team")
		return
	}

	var form forms.TeamForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderForm(c, http.StatusBadRequest, id, &form, forms.Translate(err))
		return
	}

	member.Name = strings.TrimSpace(form.Name)
	member.Title = form.Title
	member.Keywords = form.Keywords
	member.Description = form.Description
	member.Content = form.Content
	member.Pic = form.Pic
	member.QQ = form.QQ
	member.SortOrder = form.SortOrder
	if err := h.members.Save(member); err != nil {
		renderAdminError(c, http.StatusInternalServerError, "保存团队成员失败", "/admin/team", err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/admin/team")
}

func (h *TeamHandler) Delete(c *gin.Context) {
	if id, ok := parseID(c); ok {
		if err := h.members.Delete(id); err != nil {
			renderAdminError(c, http.StatusInternalServerError, "删除团队成员失败", "/admin/team", err)
			return
		}
	}
	c.Redirect(http.StatusSeeOther, "/admin/team")
}
