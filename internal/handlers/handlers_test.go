package handlers

import (
	"context"
	"fmt"
	"html/template"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"net/url"
	"strings"
	"testing"
	"time"

	"newvisas-cms/internal/config"
	"newvisas-cms/internal/database"
	"newvisas-cms/internal/middleware"
	"newvisas-cms/internal/models"
	"newvisas-cms/internal/services"
	"newvisas-cms/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	testSecret   = "handlers-test-secret"
	testPassword = "test-password-123"
)

// fakeStorage records puts and removes without touching real object
// storage.
type fakeStorage struct {
	puts    []string
	removes []string
}

func (f *fakeStorage) Put(_ context.Context, key string, r io.Reader, _ int64, _ string) (string, error) {
	io.Copy(io.Discard, r)
	f.puts = append(f.puts, key)
	return "http://storage.test/" + key, nil
}

func (f *fakeStorage) Remove(_ context.Context, key string) error {
	f.removes = append(f.removes, key)
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:         testSecret,
		SessionExpiry:     time.Hour,
		PageSize:          15,
		MaxUploadSize:     5 * 1024 * 1024,
		AllowedImageTypes: []string{"image/jpeg", "image/png", "image/gif", "image/webp"},
	}
}

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:handlers_%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func seedAdmin(t *testing.T, db *gorm.DB, username string) models.AdminUser {
	t.Helper()
	hash, err := utils.HashPassword(testPassword)
	require.NoError(t, err)
	admin := models.AdminUser{Username: username, PasswordHash: hash}
	require.NoError(t, db.Create(&admin).Error)
	return admin
}

// testRouter mirrors the production route table for the pieces under
// test, loading the real templates.
func testRouter(t *testing.T, db *gorm.DB, cfg *config.Config, storage services.ObjectStorage) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.SetFuncMap(template.FuncMap{
		"deref": func(p *uint) uint {
			if p == nil {
				return 0
			}
			return *p
		},
		"safeHTML": func(s string) template.HTML { return template.HTML(s) },
	})
	r.LoadHTMLGlob("../../web/templates/**/*.html")

	public := NewPublicHandler(db, cfg)
	auth := NewAuthHandler(db, cfg)
	news := NewNewsHandler(db, cfg)
	properties := NewPropertyHandler(db, cfg)
	users := NewUsersHandler(db, cfg)
	assessments := NewAssessmentHandler(db, cfg)

	r.GET("/", public.Home)
	r.GET("/news", public.NewsList)
	r.GET("/news/:id", public.NewsDetail)
	r.GET("/property/:id", public.PropertyDetail)
	r.GET("/assessment", public.AssessmentPage)
	r.POST("/assessment", public.AssessmentSubmit)

	r.GET("/admin/login", auth.LoginPage)
	r.POST("/admin/login", auth.Login)

	admin := r.Group("/admin", middleware.AuthRequired(cfg.JWTSecret))
	{
		admin.GET("/logout", auth.Logout)
		admin.GET("/news", news.List)
		admin.POST("/news/add", news.Create)
		admin.GET("/news/edit/:id", news.EditPage)
		admin.POST("/news/edit/:id", news.Update)
		admin.POST("/news/delete/:id", news.Delete)
		admin.GET("/property", properties.List)
		admin.GET("/users", users.List)
		admin.POST("/users/add", users.Create)
		admin.POST("/users/delete/:id", users.Delete)
		admin.GET("/pinggu", assessments.List)
		admin.GET("/pinggu/:id", assessments.Detail)
		admin.POST("/pinggu/process/:id", assessments.Process)

		if storage != nil {
			uploads := NewUploadHandler(cfg, storage)
			admin.POST("/upload", uploads.Upload)
			admin.POST("/upload/batch", uploads.UploadBatch)
			admin.POST("/upload/delete", uploads.Delete)
		}
	}

	r.NoRoute(public.NotFound)
	return r
}

func sessionCookie(t *testing.T, admin models.AdminUser) *http.Cookie {
	t.Helper()
	token, err := utils.GenerateToken(admin.ID, admin.Username, testSecret, time.Hour)
	require.NoError(t, err)
	return &http.Cookie{Name: middleware.CookieName, Value: token}
}

func postForm(r *gin.Engine, path string, values url.Values, cookie *http.Cookie) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	r.ServeHTTP(w, req)
	return w
}

func get(r *gin.Engine, path string, cookie *http.Cookie) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestLoginSuccessSetsCookie(t *testing.T) {
	db := testDB(t)
	seedAdmin(t, db, "admin")
	r := testRouter(t, db, testConfig(), nil)

	w := postForm(r, "/admin/login", url.Values{
		"username": {"admin"},
		"password": {testPassword},
	}, nil)

	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/dashboard", w.Header().Get("Location"))

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	var session *http.Cookie
	for _, c := range cookies {
		if c.Name == middleware.CookieName {
			session = c
		}
	}
	require.NotNil(t, session)
	assert.NotEmpty(t, session.Value)
	assert.True(t, session.HttpOnly)
	assert.True(t, session.Secure)

	claims, err := utils.ValidateToken(session.Value, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
}

func TestLoginBadPassword(t *testing.T) {
	db := testDB(t)
	seedAdmin(t, db, "admin")
	r := testRouter(t, db, testConfig(), nil)

	w := postForm(r, "/admin/login", url.Values{
		"username": {"admin"},
		"password": {"wrong"},
	}, nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "用户名或密码错误")
}

func TestLoginIncrementsCounter(t *testing.T) {
	db := testDB(t)
	admin := seedAdmin(t, db, "admin")
	r := testRouter(t, db, testConfig(), nil)

	postForm(r, "/admin/login", url.Values{
		"username": {"admin"},
		"password": {testPassword},
	}, nil)

	var after models.AdminUser
	require.NoError(t, db.First(&after, admin.ID).Error)
	assert.Equal(t, 1, after.LoginCount)
}

func TestAdminRoutesRedirectWithoutSession(t *testing.T) {
	db := testDB(t)
	r := testRouter(t, db, testConfig(), nil)

	w := get(r, "/admin/news", nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/login", w.Header().Get("Location"))
}

func TestNewsCreateEditRoundTrip(t *testing.T) {
	db := testDB(t)
	admin := seedAdmin(t, db, "admin")
	cookie := sessionCookie(t, admin)
	r := testRouter(t, db, testConfig(), nil)

	w := postForm(r, "/admin/news/add", url.Values{
		"title":   {"  加拿大移民新政  "},
		"content": {"<p>正文</p>"},
		"source":  {"官网"},
	}, cookie)
	require.Equal(t, http.StatusSeeOther, w.Code)

	var article models.NewsArticle
	require.NoError(t, db.First(&article).Error)
	assert.Equal(t, "加拿大移民新政", article.Title, "title is trimmed")

	w = postForm(r, fmt.Sprintf("/admin/news/edit/%d", article.ID), url.Values{
		"title": {"更新后的标题"},
	}, cookie)
	require.Equal(t, http.StatusSeeOther, w.Code)

	require.NoError(t, db.First(&article, article.ID).Error)
	assert.Equal(t, "更新后的标题", article.Title)

	w = get(r, fmt.Sprintf("/admin/news/edit/%d", article.ID), cookie)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "更新后的标题")
}

func TestNewsCreateValidationError(t *testing.T) {
	db := testDB(t)
	admin := seedAdmin(t, db, "admin")
	r := testRouter(t, db, testConfig(), nil)

	w := postForm(r, "/admin/news/add", url.Values{"title": {""}}, sessionCookie(t, admin))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "请输入标题")

	var count int64
	db.Model(&models.NewsArticle{}).Count(&count)
	assert.Zero(t, count)
}

func TestNewsListFiltersByCategory(t *testing.T) {
	db := testDB(t)
	admin := seedAdmin(t, db, "admin")
	r := testRouter(t, db, testConfig(), nil)

	visa := models.NewsCategory{Name: "签证动态"}
	policy := models.NewsCategory{Name: "政策解读"}
	require.NoError(t, db.Create(&visa).Error)
	require.NoError(t, db.Create(&policy).Error)
	require.NoError(t, db.Create(&models.NewsArticle{Title: "签证文章", CategoryID: &visa.ID}).Error)
	require.NoError(t, db.Create(&models.NewsArticle{Title: "政策文章", CategoryID: &policy.ID}).Error)

	// same param name as the public list
	w := get(r, fmt.Sprintf("/admin/news?category=%d", visa.ID), sessionCookie(t, admin))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "签证文章")
	assert.NotContains(t, w.Body.String(), "政策文章")
}

func TestNewsDelete(t *testing.T) {
	db := testDB(t)
	admin := seedAdmin(t, db, "admin")
	r := testRouter(t, db, testConfig(), nil)

	article := models.NewsArticle{Title: "将被删除"}
	require.NoError(t, db.Create(&article).Error)

	w := postForm(r, fmt.Sprintf("/admin/news/delete/%d", article.ID), nil, sessionCookie(t, admin))
	assert.Equal(t, http.StatusSeeOther, w.Code)

	var count int64
	db.Model(&models.NewsArticle{}).Count(&count)
	assert.Zero(t, count)
}

func TestUsersDeleteSelfForbidden(t *testing.T) {
	db := testDB(t)
	admin := seedAdmin(t, db, "admin")
	seedAdmin(t, db, "other")
	r := testRouter(t, db, testConfig(), nil)

	w := postForm(r, fmt.Sprintf("/admin/users/delete/%d", admin.ID), nil, sessionCookie(t, admin))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "不能删除当前登录的用户")

	var count int64
	db.Model(&models.AdminUser{}).Count(&count)
	assert.Equal(t, int64(2), count)
}

func TestUsersDeleteLastAdminForbidden(t *testing.T) {
	db := testDB(t)
	admin := seedAdmin(t, db, "admin")
	other := seedAdmin(t, db, "other")
	r := testRouter(t, db, testConfig(), nil)
	cookie := sessionCookie(t, admin)

	otherCookie := sessionCookie(t, other)

	w := postForm(r, fmt.Sprintf("/admin/users/delete/%d", other.ID), nil, cookie)
	require.Equal(t, http.StatusSeeOther, w.Code)

	// other's token is still valid even though the row is gone; the last
	// remaining account must survive it.
	w = postForm(r, fmt.Sprintf("/admin/users/delete/%d", admin.ID), nil, otherCookie)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "至少需要保留一个管理员")

	var count int64
	db.Model(&models.AdminUser{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestUsersCreateRejectsBadUsername(t *testing.T) {
	db := testDB(t)
	admin := seedAdmin(t, db, "admin")
	r := testRouter(t, db, testConfig(), nil)

	w := postForm(r, "/admin/users/add", url.Values{
		"username":         {"bad name!"},
		"password":         {"password-123"},
		"confirm_password": {"password-123"},
	}, sessionCookie(t, admin))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "用户名只能包含字母、数字、下划线和连字符")
}

func TestUsersCreateRejectsDuplicate(t *testing.T) {
	db := testDB(t)
	admin := seedAdmin(t, db, "admin")
	r := testRouter(t, db, testConfig(), nil)

	w := postForm(r, "/admin/users/add", url.Values{
		"username":         {"admin"},
		"password":         {"password-123"},
		"confirm_password": {"password-123"},
	}, sessionCookie(t, admin))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "用户名已存在")
}

func TestAssessmentLifecycle(t *testing.T) {
	db := testDB(t)
	admin := seedAdmin(t, db, "admin")
	r := testRouter(t, db, testConfig(), nil)

	// public submit
	w := postForm(r, "/assessment", url.Values{
		"name":           {"张三"},
		"phone":          {"13800138000"},
		"target_country": {"加拿大"},
		"gender":         {"男"},
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "提交成功")

	var lead models.LeadAssessment
	require.NoError(t, db.First(&lead).Error)
	assert.Equal(t, models.LeadUnprocessed, lead.Status)
	assert.Nil(t, lead.ProcessedAt)

	// admin list and detail
	cookie := sessionCookie(t, admin)
	w = get(r, "/admin/pinggu", cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "张三")

	w = get(r, fmt.Sprintf("/admin/pinggu/%d", lead.ID), cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "13800138000")

	// process
	w = postForm(r, fmt.Sprintf("/admin/pinggu/process/%d", lead.ID), nil, cookie)
	require.Equal(t, http.StatusSeeOther, w.Code)

	require.NoError(t, db.First(&lead, lead.ID).Error)
	assert.Equal(t, models.LeadProcessed, lead.Status)
	require.NotNil(t, lead.ProcessedAt)

	// processing again is a no-op apart from the timestamp
	w = postForm(r, fmt.Sprintf("/admin/pinggu/process/%d", lead.ID), nil, cookie)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	require.NoError(t, db.First(&lead, lead.ID).Error)
	assert.Equal(t, models.LeadProcessed, lead.Status)
}

func TestAssessmentValidationFailure(t *testing.T) {
	db := testDB(t)
	r := testRouter(t, db, testConfig(), nil)

	w := postForm(r, "/assessment", url.Values{
		"name":  {"张三"},
		"email": {"not-an-email"},
	}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "请输入联系电话")
	assert.Contains(t, w.Body.String(), "请输入有效的邮箱地址")

	var count int64
	db.Model(&models.LeadAssessment{}).Count(&count)
	assert.Zero(t, count)
}

func TestPublicNewsDetailNotFound(t *testing.T) {
	db := testDB(t)
	r := testRouter(t, db, testConfig(), nil)

	w := get(r, "/news/99999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = get(r, "/news/abc", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPublicPropertyHidesDisabled(t *testing.T) {
	db := testDB(t)
	r := testRouter(t, db, testConfig(), nil)

	listing := models.PropertyListing{Title: "测试房源", Status: models.StatusDisabled}
	require.NoError(t, db.Create(&listing).Error)

	w := get(r, fmt.Sprintf("/property/%d", listing.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	require.NoError(t, db.Model(&listing).Update("status", models.StatusEnabled).Error)
	w = get(r, fmt.Sprintf("/property/%d", listing.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "测试房源")
}

func TestHomePage(t *testing.T) {
	db := testDB(t)
	r := testRouter(t, db, testConfig(), nil)

	require.NoError(t, db.Create(&models.NewsArticle{Title: "首页新闻"}).Error)
	require.NoError(t, db.Create(&models.Advertisement{Title: "横幅", Pic: "/x.jpg", Status: models.StatusEnabled}).Error)

	w := get(r, "/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "首页新闻")
}

func multipartUpload(t *testing.T, field, filename, contentType string, size int) (*strings.Reader, string) {
	t.Helper()
	var b strings.Builder
	mw := multipart.NewWriter(&b)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, field, filename))
	h.Set("Content-Type", contentType)
	part, err := mw.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write([]byte(strings.Repeat("a", size)))
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return strings.NewReader(b.String()), mw.FormDataContentType()
}

func TestUploadSingle(t *testing.T) {
	db := testDB(t)
	admin := seedAdmin(t, db, "admin")
	storage := &fakeStorage{}
	r := testRouter(t, db, testConfig(), storage)

	body, contentType := multipartUpload(t, "file", "photo.jpg", "image/jpeg", 128)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/upload", body)
	req.Header.Set("Content-Type", contentType)
	req.AddCookie(sessionCookie(t, admin))
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
	assert.Contains(t, w.Body.String(), "http://storage.test/uploads/")
	require.Len(t, storage.puts, 1)
	assert.True(t, strings.HasSuffix(storage.puts[0], ".jpg"))
}

func TestUploadRejectsBadType(t *testing.T) {
	db := testDB(t)
	admin := seedAdmin(t, db, "admin")
	storage := &fakeStorage{}
	r := testRouter(t, db, testConfig(), storage)

	body, contentType := multipartUpload(t, "file", "doc.pdf", "application/pdf", 128)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/upload", body)
	req.Header.Set("Content-Type", contentType)
	req.AddCookie(sessionCookie(t, admin))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "仅支持")
	assert.Empty(t, storage.puts)
}

func TestUploadRejectsOversize(t *testing.T) {
	db := testDB(t)
	admin := seedAdmin(t, db, "admin")
	cfg := testConfig()
	cfg.MaxUploadSize = 64
	storage := &fakeStorage{}
	r := testRouter(t, db, cfg, storage)

	body, contentType := multipartUpload(t, "file", "big.jpg", "image/jpeg", 1024)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/upload", body)
	req.Header.Set("Content-Type", contentType)
	req.AddCookie(sessionCookie(t, admin))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, storage.puts)
}

func TestUploadDelete(t *testing.T) {
	db := testDB(t)
	admin := seedAdmin(t, db, "admin")
	storage := &fakeStorage{}
	r := testRouter(t, db, testConfig(), storage)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/upload/delete",
		strings.NewReader(`{"key":"uploads/123-abc.jpg"}`))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(sessionCookie(t, admin))
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"uploads/123-abc.jpg"}, storage.removes)
}

func TestLogoutClearsCookie(t *testing.T) {
	db := testDB(t)
	admin := seedAdmin(t, db, "admin")
	r := testRouter(t, db, testConfig(), nil)

	w := get(r, "/admin/logout", sessionCookie(t, admin))
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/login", w.Header().Get("Location"))

	var cleared *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == middleware.CookieName {
			cleared = c
		}
	}
	require.NotNil(t, cleared)
	assert.Empty(t, cleared.Value)
	assert.Negative(t, cleared.MaxAge)
}
