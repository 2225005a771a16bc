// internal/mailer/sender.go
// 郵件發送服務共用介面

package mailer

import (
	"fmt"
	"os"
	"path/filepath"

	"job-mailer/internal/config"
	"job-mailer/internal/models"
)

// Sender 郵件發送服務介面
// 所有郵件發送服務 (SMTP、SendGrid 等) 都需實作此介面
type Sender interface {
	// Send 發送郵件，成功時回傳 message id
	Send(msg *models.MailMessage) (string, error)

	// Name 回傳服務名稱，用於 logging
	Name() string
}

// NewSender 依設定建立發送服務
// DRY_RUN 優先於 MAIL_PROVIDER
func NewSender(cfg *config.Config) Sender {
	if cfg.DryRun {
		return NewDryRunSender()
	}
	if cfg.MailProvider == "sendgrid" {
		return NewSendGridSender(cfg)
	}
	return NewSMTPSender(cfg)
}

// MissingResumeError 找不到履歷附件
type MissingResumeError struct {
	Path string
}

func (e *MissingResumeError) Error() string {
	return fmt.Sprintf("resume not found at %s (put your PDF there or set RESUME_PATH in .env)", e.Path)
}

// ResolveResume 決定履歷附件：呼叫端提供的檔案優先，否則退回預設路徑
// 檔案不存在時回傳 *MissingResumeError，該次寄送失敗但不影響其他寄送
func ResolveResume(uploadPath, uploadName, defaultPath string) (models.Attachment, error) {
	path := defaultPath
	filename := filepath.Base(defaultPath)
	if uploadPath != "" {
		path = uploadPath
		if uploadName != "" {
			filename = uploadName
		} else {
			filename = filepath.Base(uploadPath)
		}
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	if _, err := os.Stat(abs); err != nil {
		return models.Attachment{}, &MissingResumeError{Path: abs}
	}

	return models.Attachment{Filename: filename, Path: abs}, nil
}
