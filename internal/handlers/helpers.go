// Package handlers contains the routed HTTP handlers for the public site
// and the admin back office. Each handler family owns its entity stores
// and receives its dependencies through a constructor.
package handlers

import (
	"net/http"
	"strconv"

	"newvisas-cms/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

func adminName(c *gin.Context) string {
	identity, _ := middleware.CurrentAdmin(c)
	return identity.Username
}

// renderAdminError renders the back-office error page. Used for guarded
// operations (403) and unexpected failures (500); the underlying error is
// logged server-side and never shown to the client.
func renderAdminError(c *gin.Context, status int, message string, backURL string, err error) {
	if err != nil {
		logrus.WithError(err).WithField("path", c.Request.URL.Path).Error("admin request failed")
	}
	c.HTML(status, "admin/error", gin.H{
		"User":    adminName(c),
		"Message": message,
		"BackURL": backURL,
	})
	c.Abort()
}

// renderNotFound renders the public 404 page.
func renderNotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "public/404", gin.H{})
	c.Abort()
}

func renderPublicError(c *gin.Context, err error) {
	logrus.WithError(err).WithField("path", c.Request.URL.Path).Error("request failed")
	c.HTML(http.StatusInternalServerError, "public/error", gin.H{})
	c.Abort()
}
