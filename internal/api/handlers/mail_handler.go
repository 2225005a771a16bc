// internal/api/handlers/mail_handler.go
// 寄信 API Handler

package handlers

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"job-mailer/internal/config"
	"job-mailer/internal/dispatcher"
	"job-mailer/internal/models"
	"job-mailer/internal/recipients"
)

// MailHandler 寄信 Handler
type MailHandler struct {
	cfg        *config.Config
	dispatcher *dispatcher.Dispatcher
	uploadDir  string
}

// NewMailHandler 建立 Mail Handler
func NewMailHandler(cfg *config.Config, d *dispatcher.Dispatcher) *MailHandler {
	dir := cfg.UploadDir
	if dir == "" {
		dir = filepath.Join(os.TempDir(), "job-mailer-uploads")
	}
	return &MailHandler{
		cfg:        cfg,
		dispatcher: d,
		uploadDir:  dir,
	}
}

// Send 單筆寄送
// multipart 欄位: email (必填)、name、subject、body、resume (檔案，選填)
func (h *MailHandler) Send(c *gin.Context) {
	toEmail := models.NormalizeEmail(c.PostForm("email"))
	toName := strings.TrimSpace(c.PostForm("name"))
	subjectOverride := strings.TrimSpace(c.PostForm("subject"))
	bodyOverride := strings.TrimSpace(c.PostForm("body"))

	if toEmail == "" || !models.IsValidEmail(toEmail) {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "Valid email is required."})
		return
	}

	// 上傳的履歷存到暫存檔，所有離開路徑都要清掉
	resumePath, resumeName, err := h.saveUpload(c, "resume")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		return
	}
	if resumePath != "" {
		defer os.Remove(resumePath)
	}

	subject := subjectOverride
	if subject == "" {
		subject = h.cfg.DefaultSubject
	}

	messageID, err := h.dispatcher.SendOne(models.Recipient{
		Email:   toEmail,
		Name:    toName,
		Subject: subjectOverride,
		Body:    bodyOverride,
	}, resumePath, resumeName)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":        true,
		"toEmail":   toEmail,
		"subject":   subject,
		"messageId": messageID,
		"usedDefaults": gin.H{
			"subject": subjectOverride == "",
			"body":    bodyOverride == "",
			"resume":  resumePath == "",
		},
	})
}

// SendBulk 批次寄送
// multipart 欄位: excel (必填)、resume (檔案，選填，套用到所有列)
func (h *MailHandler) SendBulk(c *gin.Context) {
	excelPath, excelName, err := h.saveUpload(c, "excel")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		return
	}
	if excelPath == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "Excel (.xlsx) file is required."})
		return
	}
	defer os.Remove(excelPath)

	resumePath, resumeName, err := h.saveUpload(c, "resume")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		return
	}
	if resumePath != "" {
		defer os.Remove(resumePath)
	}

	rows, err := recipients.LoadXLSX(excelPath)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"ok": false,
			"error": fmt.Sprintf(
				"Failed to read Excel. Make sure it's a valid .xlsx with columns: email, recipient name, subject, body. (%v)", err),
		})
		return
	}
	if len(rows) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"ok":    false,
			"error": "No valid rows found. Ensure your sheet has an 'email' (or 'mail') column with valid emails.",
		})
		return
	}

	log.Printf("[ui] bulk send requested: excel=%s rows=%d resume=%s",
		excelName, len(rows), orDefault(resumeName, "(default)"))

	summary, err := h.dispatcher.SendBulk(rows, resumePath, resumeName)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	results := summary.Results
	if results == nil {
		results = []models.DispatchResult{}
	}
	c.JSON(http.StatusOK, gin.H{
		"ok":      true,
		"total":   summary.Total,
		"sent":    summary.Sent,
		"failed":  summary.Failed,
		"results": results,
	})
}

// TemplateXLSX 下載批次寄送範本
func (h *MailHandler) TemplateXLSX(c *gin.Context) {
	log.Printf("[ui] template download: %s", c.Request.URL.Path)

	buf, err := recipients.TemplateWorkbook()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "Failed to build template workbook."})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="job-mailer-template.xlsx"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf)
}

// saveUpload 把 multipart 檔案存到暫存目錄，回傳 (暫存路徑, 原始檔名)
// 欄位不存在時回傳空字串，不視為錯誤
func (h *MailHandler) saveUpload(c *gin.Context, field string) (string, string, error) {
	file, err := c.FormFile(field)
	if err != nil {
		// 欄位不存在或不是 multipart，都當成沒有附檔
		return "", "", nil
	}

	if err := os.MkdirAll(h.uploadDir, 0755); err != nil {
		return "", "", fmt.Errorf("cannot prepare upload dir: %w", err)
	}

	dst := filepath.Join(h.uploadDir, uuid.New().String()+filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, dst); err != nil {
		return "", "", fmt.Errorf("cannot save uploaded %s: %w", field, err)
	}
	return dst, filepath.Base(file.Filename), nil
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
