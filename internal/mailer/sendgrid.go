// internal/mailer/sendgrid.go
// SendGrid 郵件發送服務

package mailer

import (
	"encoding/base64"
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"job-mailer/internal/config"
	"job-mailer/internal/models"
)

// SendGridSender SendGrid 郵件發送服務
// 實作 Sender interface
type SendGridSender struct {
	cfg    *config.Config
	client *sendgrid.Client
}

// NewSendGridSender 建立 SendGrid 服務
func NewSendGridSender(cfg *config.Config) *SendGridSender {
	client := sendgrid.NewSendClient(cfg.SendGridAPIKey)
	return &SendGridSender{
		cfg:    cfg,
		client: client,
	}
}

// Name 回傳服務名稱
func (s *SendGridSender) Name() string {
	return "SendGrid"
}

// Send 發送郵件 (使用 SendGrid API)
func (s *SendGridSender) Send(msg *models.MailMessage) (string, error) {
	from := mail.NewEmail(msg.FromName, msg.FromAddress)

	message := mail.NewV3Mail()
	message.SetFrom(from)
	message.Subject = msg.Subject

	personalization := mail.NewPersonalization()
	personalization.AddTos(mail.NewEmail("", msg.ToAddress))
	message.AddPersonalizations(personalization)

	// 設定郵件內容 (SendGrid 要求順序: text/plain 必須在 text/html 之前)
	if msg.Text != "" {
		message.AddContent(mail.NewContent("text/plain", msg.Text))
	}
	if msg.HTML != "" {
		message.AddContent(mail.NewContent("text/html", msg.HTML))
	}

	// 載入附件
	if err := s.loadAttachments(msg, message); err != nil {
		return "", fmt.Errorf("failed to load attachments: %w", err)
	}

	// 發送郵件
	response, err := s.client.Send(message)
	if err != nil {
		return "", fmt.Errorf("failed to send email via SendGrid: %w", err)
	}

	// 檢查回應狀態 (2xx 表示成功)
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return "", fmt.Errorf("SendGrid API error (status %d): %s", response.StatusCode, response.Body)
	}

	// SendGrid 的 message id 由回應 header 提供
	if ids := response.Headers["X-Message-Id"]; len(ids) > 0 {
		return ids[0], nil
	}
	return "", nil
}

// loadAttachments 載入附件
func (s *SendGridSender) loadAttachments(msg *models.MailMessage, message *mail.SGMailV3) error {
	for _, att := range msg.Attachments {
		content, err := os.ReadFile(att.Path)
		if err != nil {
			return fmt.Errorf("failed to read attachment %s: %w", att.Filename, err)
		}

		contentType := mime.TypeByExtension(filepath.Ext(att.Filename))
		if contentType == "" {
			contentType = "application/octet-stream"
		}

		attachment := mail.NewAttachment()
		attachment.SetContent(base64.StdEncoding.EncodeToString(content))
		attachment.SetType(contentType)
		attachment.SetFilename(filepath.Base(att.Filename))
		attachment.SetDisposition("attachment")

		message.AddAttachment(attachment)
	}

	return nil
}
