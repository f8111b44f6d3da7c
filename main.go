package main

import (
	"context"
	"html/template"
	"os"
	"time"

	"newvisas-cms/internal/config"
	"newvisas-cms/internal/database"
	"newvisas-cms/internal/handlers"
	"newvisas-cms/internal/middleware"
	"newvisas-cms/internal/redis"
	"newvisas-cms/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("no .env file found, using environment variables")
	}

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		logrus.Fatalf("Failed to initialize database: %v", err)
	}

	if err := database.SeedContinents(db); err != nil {
		logrus.Fatalf("Failed to seed continents: %v", err)
	}
	if err := database.EnsureAdmin(db, os.Getenv("ADMIN_USERNAME"), os.Getenv("ADMIN_PASSWORD")); err != nil {
		logrus.Fatalf("Failed to ensure admin account: %v", err)
	}

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisClient, err = redis.Initialize(cfg.RedisURL)
		if err != nil {
			logrus.Warnf("Redis unavailable, rate limiting disabled: %v", err)
			redisClient = nil
		}
	}

	storage, err := services.NewStorageService(cfg)
	if err != nil {
		logrus.Fatalf("Failed to initialize object storage: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := storage.EnsureBucket(ctx); err != nil {
		cancel()
		logrus.Fatalf("Failed to ensure storage bucket: %v", err)
	}
	cancel()

	var limiter middleware.Counter
	if redisClient != nil {
		limiter = redisClient
	}

	r := setupRouter(db, cfg, limiter, storage)

	logrus.Infof("Server starting on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		logrus.Fatalf("Failed to start server: %v", err)
	}
}

func setupRouter(db *gorm.DB, cfg *config.Config, limiter middleware.Counter, storage services.ObjectStorage) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	r.SetFuncMap(template.FuncMap{
		// deref unwraps optional foreign keys for select preselection.
		"deref": func(p *uint) uint {
			if p == nil {
				return 0
			}
			return *p
		},
		// safeHTML renders stored rich-text content without escaping.
		"safeHTML": func(s string) template.HTML {
			return template.HTML(s)
		},
	})
	r.LoadHTMLGlob("web/templates/**/*.html")
	r.Static("/static", "./web/static")

	public := handlers.NewPublicHandler(db, cfg)
	auth := handlers.NewAuthHandler(db, cfg)
	dashboard := handlers.NewDashboardHandler(db, cfg)
	news := handlers.NewNewsHandler(db, cfg)
	categories := handlers.NewCategoryHandler(db, cfg)
	programs := handlers.NewProgramHandler(db, cfg)
	cases := handlers.NewCaseHandler(db, cfg)
	team := handlers.NewTeamHandler(db, cfg)
	events := handlers.NewEventHandler(db, cfg)
	properties := handlers.NewPropertyHandler(db, cfg)
	countries := handlers.NewCountryHandler(db, cfg)
	ads := handlers.NewAdHandler(db, cfg)
	links := handlers.NewLinkHandler(db, cfg)
	users := handlers.NewUsersHandler(db, cfg)
	assessments := handlers.NewAssessmentHandler(db, cfg)
	uploads := handlers.NewUploadHandler(cfg, storage)

	// Public site
	r.GET("/", public.Home)
	r.GET("/program", public.ProgramList)
	r.GET("/program/:id", public.ProgramDetail)
	r.GET("/news", public.NewsList)
	r.GET("/news/:id", public.NewsDetail)
	r.GET("/case", public.CaseList)
	r.GET("/case/:id", public.CaseDetail)
	r.GET("/team", public.TeamList)
	r.GET("/team/:id", public.TeamDetail)
	r.GET("/events", public.EventList)
	r.GET("/events/:id", public.EventDetail)
	r.GET("/property", public.PropertyList)
	r.GET("/property/:id", public.PropertyDetail)
	r.GET("/about", public.About)
	r.GET("/contact", public.Contact)
	r.GET("/assessment", public.AssessmentPage)
	r.POST("/assessment",
		middleware.RateLimit(limiter, cfg.AssessmentLimit, time.Minute),
		public.AssessmentSubmit)

	// Admin login is outside the auth group
	r.GET("/admin/login", auth.LoginPage)
	r.POST("/admin/login", auth.Login)

	admin := r.Group("/admin", middleware.AuthRequired(cfg.JWTSecret))
	{
		admin.GET("", dashboard.Dashboard)
		admin.GET("/dashboard", dashboard.Dashboard)
		admin.GET("/logout", auth.Logout)

		admin.GET("/news", news.List)
		admin.GET("/news/add", news.AddPage)
		admin.POST("/news/add", news.Create)
		admin.GET("/news/edit/:id", news.EditPage)
		admin.POST("/news/edit/:id", news.Update)
		admin.POST("/news/delete/:id", news.Delete)

		admin.GET("/category", categories.List)
		admin.GET("/category/add", categories.AddPage)
		admin.POST("/category/add", categories.Create)
		admin.GET("/category/edit/:id", categories.EditPage)
		admin.POST("/category/edit/:id", categories.Update)
		admin.POST("/category/delete/:id", categories.Delete)

		admin.GET("/program", programs.List)
		admin.GET("/program/add", programs.AddPage)
		admin.POST("/program/add", programs.Create)
		admin.GET("/program/edit/:id", programs.EditPage)
		admin.POST("/program/edit/:id", programs.Update)
		admin.POST("/program/delete/:id", programs.Delete)

		admin.GET("/case", cases.List)
		admin.GET("/case/add", cases.AddPage)
		admin.POST("/case/add", cases.Create)
		admin.GET("/case/edit/:id", cases.EditPage)
		admin.POST("/case/edit/:id", cases.Update)
		admin.POST("/case/delete/:id", cases.Delete)

		admin.GET("/team", team.List)
		admin.GET("/team/add", team.AddPage)
		admin.POST("/team/add", team.Create)
		admin.GET("/team/edit/:id", team.EditPage)
		admin.POST("/team/edit/:id", team.Update)
		admin.POST("/team/delete/:id", team.Delete)

		admin.GET("/events", events.List)
		admin.GET("/events/add", events.AddPage)
		admin.POST("/events/add", events.Create)
		admin.GET("/events/edit/:id", events.EditPage)
		admin.POST("/events/edit/:id", events.Update)
		admin.POST("/events/delete/:id", events.Delete)

		admin.GET("/property", properties.List)
		admin.GET("/property/add", properties.AddPage)
		admin.POST("/property/add", properties.Create)
		admin.GET("/property/edit/:id", properties.EditPage)
		admin.POST("/property/edit/:id", properties.Update)
		admin.POST("/property/delete/:id", properties.Delete)

		admin.GET("/country", countries.List)
		admin.GET("/country/add", countries.AddPage)
		admin.POST("/country/add", countries.Create)
		admin.GET("/country/edit/:id", countries.EditPage)
		admin.POST("/country/edit/:id", countries.Update)
		admin.POST("/country/delete/:id", countries.Delete)

		admin.GET("/ad", ads.List)
		admin.GET("/ad/add", ads.AddPage)
		admin.POST("/ad/add", ads.Create)
		admin.GET("/ad/edit/:id", ads.EditPage)
		admin.POST("/ad/edit/:id", ads.Update)
		admin.POST("/ad/delete/:id", ads.Delete)

		admin.GET("/link", links.List)
		admin.GET("/link/add", links.AddPage)
		admin.POST("/link/add", links.Create)
		admin.GET("/link/edit/:id", links.EditPage)
		admin.POST("/link/edit/:id", links.Update)
		admin.POST("/link/delete/:id", links.Delete)

		admin.GET("/users", users.List)
		admin.GET("/users/add", users.AddPage)
		admin.POST("/users/add", users.Create)
		admin.GET("/users/edit/:id", users.EditPage)
		admin.POST("/users/edit/:id", users.UpdatePassword)
		admin.POST("/users/delete/:id", users.Delete)

		admin.GET("/pinggu", assessments.List)
		admin.GET("/pinggu/:id", assessments.Detail)
		admin.POST("/pinggu/process/:id", assessments.Process)

		admin.GET("/upload-page", uploads.Page)
		admin.POST("/upload", uploads.Upload)
		admin.POST("/upload/batch", uploads.UploadBatch)
		admin.POST("/upload/delete", uploads.Delete)
	}

	r.NoRoute(public.NotFound)

	return r
}
