package handlers

import (
	"net/http"
	"regexp"
	"strings"

	"newvisas-cms/internal/config"
	"newvisas-cms/internal/crud"
	"newvisas-cms/internal/forms"
	"newvisas-cms/internal/middleware"
	"newvisas-cms/internal/models"
	"newvisas-cms/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

type UsersHandler struct {
	db    *gorm.DB
	cfg   *config.Config
	users *crud.Store[models.AdminUser]
}

func NewUsersHandler(db *gorm.DB, cfg *config.Config) *UsersHandler {
	return &UsersHandler{db: db, cfg: cfg, users: crud.NewStore[models.AdminUser](db)}
}

func (h *UsersHandler) List(c *gin.Context) {
	items, _, err := h.users.List(crud.ListOptions{Order: "created_at ASC"})
	if err != nil {
		renderAdminError(c, http.StatusInternalServerError, "加载用户列表失败", "/admin/dashboard", err)
		return
	}
	identity, _ := middleware.CurrentAdmin(c)
	c.HTML(http.StatusOK, "admin/users_list", gin.H{
		"User":      identity.Username,
		"CurrentID": identity.ID,
		"Items":     items,
	})
}

func (h *UsersHandler) AddPage(c *gin.Context) {
	c.HTML(http.StatusOK, "admin/user_form", gin.H{
		"User": adminName(c),
		"Form": &forms.AdminUserCreateForm{},
	})
}

func (h *UsersHandler) Create(c *gin.Context) {
	var form forms.AdminUserCreateForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "admin/user_form", gin.H{
			"User":   adminName(c),
			"Form":   &form,
			"Errors": forms.Translate(err),
		})
		return
	}

	username := strings.TrimSpace(form.Username)
	if !usernamePattern.MatchString(username) {
		c.HTML(http.StatusBadRequest, "admin/user_form", gin.H{
			"User":   adminName(c),
			"Form":   &form,
			"Errors": forms.FieldErrors{"username": "用户名只能包含字母、数字、下划线和连字符"},
		})
		return
	}

	var existing models.AdminUser
	if err := h.db.Where("username = ?", username).First(&existing).Error; err == nil {
		c.HTML(http.StatusBadRequest, "admin/user_form", gin.H{
			"User":   adminName(c),
			"Form":   &form,
			"Errors": forms.FieldErrors{"username": "用户名已存在"},
		})
		return
	}

	hash, err := utils.HashPassword(form.Password)
	if err != nil {
		renderAdminError(c, http.StatusInternalServerError, "创建用户失败", "/admin/users", err)
		return
	}

	admin := models.AdminUser{Username: username, PasswordHash: hash}
	if err := h.users.Create(&admin); err != nil {
		renderAdminError(c, http.StatusInternalServerError, "创建用户失败", "/admin/users", err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/admin/users")
}

// EditPage only allows changing the password.
func (h *UsersHandler) EditPage(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.Redirect(http.StatusFound, "/admin/users")
		return
	}
	target, err := h.users.GetByID(id)
	if err != nil {
		c.Redirect(http.StatusFound, "/admin/users")
		return
	}
	c.HTML(http.StatusOK, "admin/user_password", gin.H{
		"User":   adminName(c),
		"Target": target,
		"Form":   &forms.AdminPasswordForm{},
	})
}

func (h *UsersHandler) UpdatePassword(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.Redirect(http.StatusFound, "/admin/users")
		return
	}
	target, err := h.users.GetByID(id)
	if err != nil {
		c.Redirect(http.StatusFound, "/admin/users")
		return
	}

	var form forms.AdminPasswordForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "admin/user_password", gin.H{
			"User":   adminName(c),
			"Target": target,
			"Form":   &form,
			"Errors": forms.Translate(err),
		})
		return
	}

	hash, err := utils.HashPassword(form.Password)
	if err != nil {
		renderAdminError(c, http.StatusInternalServerError, "修改密码失败", "/admin/users", err)
		return
	}

	target.PasswordHash = hash
	if err := h.users.Save(target); err != nil {
		renderAdminError(c, http.StatusInternalServerError, "修改密码失败", "/admin/users", err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/admin/users")
}

// Delete rejects self-deletion and deletion of the last remaining admin;
// both render a visible 403 page and change nothing.
func (h *UsersHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.Redirect(http.StatusFound, "/admin/users")
		return
	}

	target, err := h.users.GetByID(id)
	if err != nil {
		c.Redirect(http.StatusFound, "/admin/users")
		return
	}

	identity, _ := middleware.CurrentAdmin(c)
	if identity.ID == target.ID {
		renderAdminError(c, http.StatusForbidden, "不能删除当前登录的用户！", "/admin/users", nil)
		return
	}

	count, err := h.users.Count()
	if err != nil {
		renderAdminError(c, http.StatusInternalServerError, "删除用户失败", "/admin/users", err)
		return
	}
	if count <= 1 {
		renderAdminError(c, http.StatusForbidden, "系统至少需要保留一个管理员账号！", "/admin/users", nil)
		return
	}

	if err := h.users.Delete(target.ID); err != nil {
		renderAdminError(c, http.StatusInternalServerError, "删除用户失败", "/admin/users", err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/admin/users")
}
