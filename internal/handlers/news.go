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

type NewsHandler struct {
	cfg        *config.Config
	news       *crud.Store[models.NewsArticle]
	categories *crud.Store[models.NewsCategory]
}

func NewNewsHandler(db *gorm.DB, cfg *config.Config) *NewsHandler {
	return &NewsHandler{
		cfg:        cfg,
		news:       crud.NewStore[models.NewsArticle](db),
		categories: crud.NewStore[models.NewsCategory](db),
	}
}

func (h *NewsHandler) List(c *gin.Context) {
	page := pageParam(c)
	search := c.Query("search")
	categoryID := c.Query("category")

	var filters []crud.Filter
	if search != "" {
		filters = append(filters, crud.Filter{Query: "title LIKE ?", Args: []interface{}{"%" + search + "%"}})
	}
	if categoryID != "" {
		filters = append(filters, crud.Filter{Query: "category_id = ?", Args: []interface{}{categoryID}})
	}

	items, total, err := h.news.List(crud.ListOptions{
		Page:    page,
		PerPage: h.cfg.PageSize,
		Order:   "id DESC",
		Filters: filters,
	})
	if err != nil {
		renderAdminError(c, http.StatusInternalServerError, "加载新闻列表失败", "/admin/dashboard", err)
		return
	}

	categories, _, err := h.categories.List(crud.ListOptions{Order: "sort_order ASC"})
	if err != nil {
		renderAdminError(c, http.StatusInternalServerError, "加载新闻分类失败", "/admin/dashboard", err)
		return
	}

	c.HTML(http.StatusOK, "admin/news_list", gin.H{
		"User":       adminName(c),
		"Items":      items,
		"Categories": categories,
		"Search":     search,
		"CategoryID": categoryID,
		"Pager":      pagination.Build(page, total, h.cfg.PageSize, "/admin/news", c.Request.URL.Query()),
	})
}

func (h *NewsHandler) renderForm(c *gin.Context, status int, id uint, form *forms.NewsForm, errs forms.FieldErrors) {
	categories, _, err := h.categories.List(crud.ListOptions{Order: "sort_order ASC"})
	if err != nil {
		renderAdminError(c, http.StatusInternalServerError, "加载新闻分类失败", "/admin/news", err)
		return
	}
	c.HTML(status, "admin/news_form", gin.H{
		"User":       adminName(c),
		"ID":         id,
		"Form":       form,
		"Errors":     errs,
		"Categories": categories,
	})
}

func (h *NewsHandler) AddPage(c *gin.Context) {
	h.renderForm(c, http.StatusOK, 0, &forms.NewsForm{}, nil)
}

func (h *NewsHandler) Create(c *gin.Context) {
	var form forms.NewsForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderForm(c, http.StatusBadRequest, 0, &form, forms.Translate(err))
		return
	}

	article := models.NewsArticle{
		Title:       strings.TrimSpace(form.Title),
		CategoryID:  form.CategoryID,
		Keywords:    form.Keywords,
		Description: form.Description,
		Content:     form.Content,
		Source:      form.Source,
		Pic:         form.Pic,
	}
	if err := h.news.Create(&article); err != nil {
		renderAdminError(c, http.StatusInternalServerError, "保存新闻失败", "/admin/news", err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/admin/news")
}

func (h *NewsHandler) EditPage(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.Redirect(http.StatusFound, "/admin/news")
		return
	}
	article, err := h.news.GetByID(id)
	if err != nil {
		c.Redirect(http.StatusFound, "/admin/news")
		return
	}

	form := forms.NewsForm{
		Title:       article.Title,
		CategoryID:  article.CategoryID,
		Keywords:    article.Keywords,
		Description: article.Description,
		Content:     article.Content,
		Source:      article.Source,
		Pic:         article.Pic,
	}
	h.renderForm(c, http.StatusOK, article.ID, &form, nil)
}

func (h *NewsHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.Redirect(http.StatusFound, "/admin/news")
		return
	}
	article, err := h.news.GetByID(id)
	if err != nil {
		c.Redirect(http.StatusFound, "/admin/news")
		return
	}

	var form forms.NewsForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderForm(c, http.StatusBadRequest, id, &form, forms.Translate(err))
		return
	}

	article.Title = strings.TrimSpace(form.Title)
	article.CategoryID = form.CategoryID
	article.Keywords = form.Keywords
	article.Description = form.Description
	article.Content = form.Content
	article.Source = form.Source
	article.Pic = form.Pic
	if err := h.news.Save(article); err != nil {
		renderAdminError(c, http.StatusInternalServerError, "保存新闻失败", "/admin/news", err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/admin/news")
}

func (h *NewsHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if ok {
		if err := h.news.Delete(id); err != nil {
			renderAdminError(c, http.StatusInternalServerError, "删除新闻失败", "/admin/news", err)
			return
		}
	}
	c.Redirect(http.StatusSeeOther, "/admin/news")
}

// Category management (news categories).

type CategoryHandler struct {
	cfg        *config.Config
	categories *crud.Store[models.NewsCategory]
}

func NewCategoryHandler(db *gorm.DB, cfg *config.Config) *CategoryHandler {
	return &CategoryHandler{cfg: cfg, categories: crud.NewStore[models.NewsCategory](db)}
}

func (h *CategoryHandler) List(c *gin.Context) {
	items, _, err := h.categories.List(crud.ListOptions{Order: "sort_order ASC"})
	if err != nil {
		renderAdminError(c, http.StatusInternalServerError, "加载分类列表失败", "/admin/dashboard", err)
		return
	}
	c.HTML(http.StatusOK, "admin/category_list", gin.H{
		"User":  adminName(c),
		"Items": items,
	})
}

func (h *CategoryHandler) AddPage(c *gin.Context) {
	c.HTML(http.StatusOK, "admin/category_form", gin.H{
		"User": adminName(c),
		"ID":   uint(0),
		"Form": &forms.CategoryForm{},
	})
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var form forms.CategoryForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "admin/category_form", gin.H{
			"User":   adminName(c),
			"ID":     uint(0),
			"Form":   &form,
			"Errors": forms.Translate(err),
		})
		return
	}

	category := models.NewsCategory{Name: strings.TrimSpace(form.Name), SortOrder: form.SortOrder}
	if err := h.categories.Create(&category); err != nil {
		renderAdminError(c, http.StatusInternalServerError, "保存分类失败", "/admin/category", err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/admin/category")
}

func (h *CategoryHandler) EditPage(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.Redirect(http.StatusFound, "/admin/category")
		return
	}
	category, err := h.categories.GetByID(id)
	if err != nil {
		c.Redirect(http.StatusFound, "/admin/category")
		return
	}
	c.HTML(http.StatusOK, "admin/category_form", gin.H{
		"User": adminName(c),
		"ID":   category.ID,
		"Form": &forms.CategoryForm{Name: category.Name, SortOrder: category.SortOrder},
	})
}

func (h *CategoryHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.Redirect(http.StatusFound, "/admin/category")
		return
	}
	category, err := h.categories.GetByID(id)
	if err != nil {
		c.Redirect(http.StatusFound, "/admin/category")
		return
	}

	var form forms.CategoryForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "admin/category_form", gin.H{
			"User":   adminName(c),
			"ID":     id,
			"Form":   &form,
			"Errors": forms.Translate(err),
		})
		return
	}

	category.Name = strings.TrimSpace(form.Name)
	category.SortOrder = form.SortOrder
	if err := h.categories.Save(category); err != nil {
		renderAdminError(c, http.StatusInternalServerError, "保存分类失败", "/admin/category", err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/admin/category")
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	if id, ok := parseID(c); ok {
		if err := h.categories.Delete(id); err != nil {
			renderAdminError(c, http.StatusInternalServerError, "删除分类失败", "/admin/category", err)
			return
		}
	}
	c.Redirect(http.StatusSeeOther, "/admin/category")
}
