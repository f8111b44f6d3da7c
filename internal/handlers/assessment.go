package handlers

import (
	"net/http"
	"time"

	"newvisas-cms/internal/config"
	"newvisas-cms/internal/crud"
	"newvisas-cms/internal/models"
	"newvisas-cms/internal/pagination"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AssessmentHandler manages submitted lead assessments in the back
// office. Leads are created by the public form and never deleted.
type AssessmentHandler struct {
	db    *gorm.DB
	cfg   *config.Config
	leads *crud.Store[models.LeadAssessment]
}

func NewAssessmentHandler(db *gorm.DB, cfg *config.Config) *AssessmentHandler {
	return &AssessmentHandler{db: db, cfg: cfg, leads: crud.NewStore[models.LeadAssessment](db)}
}

func (h *AssessmentHandler) List(c *gin.Context) {
	page := pageParam(c)
	status := c.Query("status")

	var filters []crud.Filter
	if status != "" {
		filters = append(filters, crud.Filter{Query: "status = ?", Args: []interface{}{status}})
	}

	items, total, err := h.leads.List(crud.ListOptions{
		Page:    page,
		PerPage: h.cfg.PageSize,
		Order:   "id DESC",
		Filters: filters,
	})
	if err != nil {
		renderAdminError(c, http.StatusInternalServerError, "加载评估申请失败", "/admin/dashboard", err)
		return
	}

	c.HTML(http.StatusOK, "admin/assessment_list", gin.H{
		"User":   adminName(c),
		"Items":  items,
		"Status": status,
		"Pager":  pagination.Build(page, total, h.cfg.PageSize, "/admin/pinggu", c.Request.URL.Query()),
	})
}

func (h *AssessmentHandler) Detail(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.Redirect(http.StatusFound, "/admin/pinggu")
		return
	}
	lead, err := h.leads.GetByID(id)
	if err != nil {
		c.Redirect(http.StatusFound, "/admin/pinggu")
		return
	}
	c.HTML(http.StatusOK, "admin/assessment_detail", gin.H{
		"User": adminName(c),
		"Item": lead,
	})
}

// Process transitions a lead to processed and stamps the time. The
// update is unconditional, so processing an already-processed lead is
// an idempotent no-op apart from refreshing the timestamp.
func (h *AssessmentHandler) Process(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.Redirect(http.StatusFound, "/admin/pinggu")
		return
	}

	now := time.Now()
	err := h.db.Model(&models.LeadAssessment{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":       models.LeadProcessed,
			"processed_at": now,
		}).Error
	if err != nil {
		renderAdminError(c, http.StatusInternalServerError, "处理评估申请失败", "/admin/pinggu", err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/admin/pinggu")
}
