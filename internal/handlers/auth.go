package handlers

import (
	"net/http"
	"strings"

	"newvisas-cms/internal/config"
	"newvisas-cms/internal/forms"
	"newvisas-cms/internal/middleware"
	"newvisas-cms/internal/models"
	"newvisas-cms/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type AuthHandler struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{db: db, cfg: cfg}
}

func (h *AuthHandler) LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "admin/login", gin.H{})
}

// Login verifies the submitted credentials. Bad credentials render a
// visible 401 page; all other auth failures elsewhere degrade to a
// redirect back here.
func (h *AuthHandler) Login(c *gin.Context) {
	var form forms.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusUnauthorized, "admin/login", gin.H{"Error": "用户名或密码错误"})
		return
	}

	username := strings.TrimSpace(form.Username)

	var admin models.AdminUser
	if err := h.db.Where("username = ?", username).First(&admin).Error; err != nil {
		c.HTML(http.StatusUnauthorized, "admin/login", gin.H{"Error": "用户名或密码错误"})
		return
	}

	if !utils.VerifyPassword(form.Password, admin.PasswordHash) {
		c.HTML(http.StatusUnauthorized, "admin/login", gin.H{"Error": "用户名或密码错误"})
		return
	}

	token, err := utils.GenerateToken(admin.ID, admin.Username, h.cfg.JWTSecret, h.cfg.SessionExpiry)
	if err != nil {
		renderAdminError(c, http.StatusInternalServerError, "登录失败，请重试", "/admin/login", err)
		return
	}

	if err := h.db.Model(&admin).UpdateColumn("login_count", gorm.Expr("login_count + 1")).Error; err != nil {
		logrus.WithError(err).Warn("failed to bump login counter")
	}

	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.CookieName, token, int(h.cfg.SessionExpiry.Seconds()), "/", "", true, true)
	c.Redirect(http.StatusFound, "/admin/dashboard")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.CookieName, "", -1, "/", "", true, true)
	c.Redirect(http.StatusFound, "/admin/login")
}
