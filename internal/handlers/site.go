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

// AdHandler manages the advertisement carousel entries.
type AdHandler struct {
	cfg *config.Config
	ads *crud.Store[models.Advertisement]
}

func NewAdHandler(db *gorm.DB, cfg *config.Config) *AdHandler {
	return &AdHandler{cfg: cfg, ads: crud.NewStore[models.Advertisement](db)}
}

func (h *AdHandler) List(c *gin.Context) {
	items, _, err := h.ads.List(crud.ListOptions{Order: "id DESC"})
	if err != nil {
		renderAdminError(c, http.StatusInternalServerError, "加载广告列表失败", "/admin/dashboard", err)
		return
	}
	c.HTML(http.StatusOK, "admin/ad_list", gin.H{
		"User":  adminName(c),
		"Items": items,
	})
}

func (h *AdHandler) AddPage(c *gin.Context) {
	c.HTML(http.StatusOK, "admin/ad_form", gin.H{
		"User": adminName(c),
		"ID":   uint(0),
		"Form": &forms.AdForm{Status: models.StatusEnabled},
	})
}

func (h *AdHandler) Create(c *gin.Context) {
	var form forms.AdForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "admin/ad_form", gin.H{
			"User":   adminName(c),
			"ID":     uint(0),
			"Form":   &form,
			"Errors": forms.Translate(err),
		})
		return
	}

	ad := models.Advertisement{
		Title:  strings.TrimSpace(form.Title),
		URL:    form.URL,
		Pic:    form.Pic,
		Status: form.Status,
	}
	if err := h.ads.Create(&ad); err != nil {
		renderAdminError(c, http.StatusInternalServerError, "保存广告失败", "/admin/ad", err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/admin/ad")
}

func (h *AdHandler) EditPage(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.Redirect(http.StatusFound, "/admin/ad")
		return
	}
	ad, err := h.ads.GetByID(id)
	if err != nil {
		c.Redirect(http.StatusFound, "/admin/ad")
		return
	}
	c.HTML(http.StatusOK, "admin/ad_form", gin.H{
		"User": adminName(c),
		"ID":   ad.ID,
		"Form": &forms.AdForm{Title: ad.Title, URL: ad.URL, Pic: ad.Pic, Status: ad.Status},
	})
}

func (h *AdHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.Redirect(http.StatusFound, "/admin/ad")
		return
	}
	ad, err := h.ads.GetByID(id)
	if err != nil {
		c.Redirect(http.StatusFound, "/admin/ad")
		return
	}

	var form forms.AdForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "admin/ad_form", gin.H{
			"User":   adminName(c),
			"ID":     id,
			"Form":   &form,
			"Errors": forms.Translate(err),
		})
		return
	}

	ad.Title = strings.TrimSpace(form.Title)
	ad.URL = form.URL
	ad.Pic = form.Pic
	ad.Status = form.Status
	if err := h.ads.Save(ad); err != nil {
		renderAdminError(c, http.StatusInternalServerError, "保存广告失败", "/admin/ad", err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/admin/ad")
}

func (h *AdHandler) Delete(c *gin.Context) {
	if id, ok := parseID(c); ok {
		if err := h.ads.Delete(id); err != nil {
			renderAdminError(c, http.StatusInternalServerError, "删除广告失败", "/admin/ad", err)
			return
		}
	}
	c.Redirect(http.StatusSeeOther, "/admin/ad")
}

// LinkHandler manages the friend links shown in the public footer.
type LinkHandler struct {
	cfg   *config.Config
	links *crud.Store[models.FriendLink]
}

func NewLinkHandler(db *gorm.DB, cfg *config.Config) *LinkHandler {
	return &LinkHandler{cfg: cfg, links: crud.NewStore[models.FriendLink](db)}
}

func (h *LinkHandler) List(c *gin.Context) {
	items, _, err := h.links.List(crud.ListOptions{Order: "id DESC"})
	if err != nil {
		renderAdminError(c, http.StatusInternalServerError, "加载链接列表失败", "/admin/dashboard", err)
		return
	}
	c.HTML(http.StatusOK, "admin/link_list", gin.H{
		"User":  adminName(c),
		"Items": items,
	})
}

func (h *LinkHandler) AddPage(c *gin.Context) {
	c.HTML(http.StatusOK, "admin/link_form", gin.H{
		"User": adminName(c),
		"ID":   uint(0),
		"Form": &forms.LinkForm{},
	})
}

func (h *LinkHandler) Create(c *gin.Context) {
	var form forms.LinkForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "admin/link_form", gin.H{
			"User":   adminName(c),
			"ID":     uint(0),
			"Form":   &form,
			"Errors": forms.Translate(err),
		})
		return
	}

	link := models.FriendLink{Title: strings.TrimSpace(form.Title), URL: form.URL}
	if err := h.links.Create(&link); err != nil {
		renderAdminError(c, http.StatusInternalServerError, "保存链接失败", "/admin/link", err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/admin/link")
}

func (h *LinkHandler) EditPage(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.Redirect(http.StatusFound, "/admin/link")
		return
	}
	link, err := h.links.GetByID(id)
	if err != nil {
		c.Redirect(http.StatusFound, "/admin/link")
		return
	}
	c.HTML(http.StatusOK, "admin/link_form", gin.H{
		"User": adminName(c),
		"ID":   link.ID,
		"Form": &forms.LinkForm{Title: link.Title, URL: link.URL},
	})
}

func (h *LinkHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.Redirect(http.StatusFound, "/admin/link")
		return
	}
	link, err := h.links.GetByID(id)
	if err != nil {
		c.Redirect(http.StatusFound, "/admin/link")
		return
	}

	var form forms.LinkForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "admin/link_form", gin.H{
			"User":   adminName(c),
			"ID":     id,
			"Form":   &form,
			"Errors": forms.Translate(err),
		})
		return
	}

	link.Title = strings.TrimSpace(form.Title)
	link.URL = form.URL
	if err := h.links.Save(link); err != nil {
		renderAdminError(c, http.StatusInternalServerError, "保存链接失败", "/admin/link", err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/admin/link")
}

func (h *LinkHandler) Delete(c *gin.Context) {
	if id, ok := parseID(c); ok {
		if err := h.links.Delete(id); err != nil {
			renderAdminError(c, http.StatusInternalServerError, "删除链接失败", "/admin/link", err)
			return
		}
	}
	c.Redirect(http.StatusSeeOther, "/admin/link")
}
