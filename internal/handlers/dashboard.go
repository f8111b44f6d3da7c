package handlers

import (
	"net/http"

	"newvisas-cms/internal/config"
	"newvisas-cms/internal/crud"
	"newvisas-cms/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type DashboardHandler struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewDashboardHandler(db *gorm.DB, cfg *config.Config) *DashboardHandler {
	return &DashboardHandler{db: db, cfg: cfg}
}

// Dashboard shows entity counts and the latest unprocessed leads.
func (h *DashboardHandler) Dashboard(c *gin.Context) {
	counts := gin.H{}
	for name, model := range map[string]interface{}{
		"News":       &models.NewsArticle{},
		"Programs":   &models.Program{},
		"Cases":      &models.CaseStudy{},
		"Events":     &models.Event{},
		"Properties": &models.PropertyListing{},
		"Team":       &models.TeamMember{},
		"Countries":  &models.Country{},
	} {
		var n int64
		if err := h.db.Model(model).Count(&n).Error; err != nil {
			renderAdminError(c, http.StatusInternalServerError, "加载统计数据失败", "/admin/dashboard", err)
			return
		}
		counts[name] = n
	}

	leadStore := crud.NewStore[models.LeadAssessment](h.db)
	pending, pendingTotal, err := leadStore.List(crud.ListOptions{
		Page:    1,
		PerPage: 5,
		Order:   "id DESC",
		Filters: []crud.Filter{{Query: "status = ?", Args: []interface{}{models.LeadUnprocessed}}},
	})
	if err != nil {
		renderAdminError(c, http.StatusInternalServerError, "加载评估申请失败", "/admin/dashboard", err)
		return
	}

	c.HTML(http.StatusOK, "admin/dashboard", gin.H{
		"User":         adminName(c),
		"Counts":       counts,
		"PendingLeads": pending,
		"PendingTotal": pendingTotal,
	})
}
