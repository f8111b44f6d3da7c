package handlers

import (
	"net/http"

	"newvisas-cms/internal/config"
	"newvisas-cms/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type UploadHandler struct {
	cfg     *config.Config
	storage services.ObjectStorage
}

// UploadResult is the JSON body returned for each stored file.
type UploadResult struct {
	Success  bool   `json:"success"`
	URL      string `json:"url,omitempty"`
	Key      string `json:"key,omitempty"`
	Filename string `json:"filename"`
	Size     int64  `json:"size,omitempty"`
	Type     string `json:"type,omitempty"`
	Error    string `json:"error,omitempty"`
}

func NewUploadHandler(cfg *config.Config, storage services.ObjectStorage) *UploadHandler {
	return &UploadHandler{cfg: cfg, storage: storage}
}

func (h *UploadHandler) Page(c *gin.Context) {
	c.HTML(http.StatusOK, "admin/upload", gin.H{"User": adminName(c)})
}

// Upload accepts a single "file" field, validates type and size, and
// stores it under a randomized key. Validation failures are structured
// errors, not exceptions.
func (h *UploadHandler) Upload(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "请选择要上传的文件"})
		return
	}
	defer file.Close()

	if err := services.ValidateImage(header, h.cfg.AllowedImageTypes, h.cfg.MaxUploadSize); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	key := services.ObjectKey(header.Filename)
	url, err := h.storage.Put(c.Request.Context(), key, file, header.Size, header.Header.Get("Content-Type"))
	if err != nil {
		logrus.WithError(err).Error("upload failed")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "上传失败，请重试"})
		return
	}

	c.JSON(http.StatusOK, UploadResult{
		Success:  true,
		URL:      url,
		Key:      key,
		Filename: header.Filename,
		Size:     header.Size,
		Type:     header.Header.Get("Content-Type"),
	})
}

// UploadBatch stores each "files" entry independently and reports
// per-file outcomes; one bad file does not fail the batch.
func (h *UploadHandler) UploadBatch(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "请选择要上传的文件"})
		return
	}
	files := form.File["files"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "请选择要上传的文件"})
		return
	}

	results := make([]UploadResult, 0, len(files))
	uploaded := 0
	for _, header := range files {
		if err := services.ValidateImage(header, h.cfg.AllowedImageTypes, h.cfg.MaxUploadSize); err != nil {
			results = append(results, UploadResult{Success: false, Filename: header.Filename, Error: err.Error()})
			continue
		}

		file, err := header.Open()
		if err != nil {
			results = append(results, UploadResult{Success: false, Filename: header.Filename, Error: "读取文件失败"})
			continue
		}

		key := services.ObjectKey(header.Filename)
		url, err := h.storage.Put(c.Request.Context(), key, file, header.Size, header.Header.Get("Content-Type"))
		file.Close()
		if err != nil {
			logrus.WithError(err).WithField("filename", header.Filename).Error("batch upload failed")
			results = append(results, UploadResult{Success: false, Filename: header.Filename, Error: "上传失败，请重试"})
			continue
		}

		uploaded++
		results = append(results, UploadResult{
			Success:  true,
			URL:      url,
			Key:      key,
			Filename: header.Filename,
			Size:     header.Size,
			Type:     header.Header.Get("Content-Type"),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"uploaded": uploaded,
		"failed":   len(files) - uploaded,
		"results":  results,
	})
}

// Delete removes an object by key. It does not verify the key is
// unreferenced, so entity rows may keep dangling image URLs.
func (h *UploadHandler) Delete(c *gin.Context) {
	var req struct {
		Key string `json:"key" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "请提供文件路径"})
		return
	}

	if err := h.storage.Remove(c.Request.Context(), req.Key); err != nil {
		logrus.WithError(err).WithField("key", req.Key).Error("delete object failed")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "删除失败，请重试"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "文件已删除"})
}
