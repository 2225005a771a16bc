// internal/mailer/dryrun.go
// Dry-run 模式 - 只記錄不寄出

package mailer

import (
	"fmt"
	"log"

	"github.com/google/uuid"

	"job-mailer/internal/models"
)

// DryRunSender 測試模式發送服務，記錄郵件內容但不實際寄出
type DryRunSender struct{}

// NewDryRunSender 建立 dry-run 服務
func NewDryRunSender() *DryRunSender {
	return &DryRunSender{}
}

// Name 回傳服務名稱
func (s *DryRunSender) Name() string {
	return "DryRun"
}

// Send 記錄郵件摘要並回傳假的 message id
func (s *DryRunSender) Send(msg *models.MailMessage) (string, error) {
	log.Printf("[dry-run] would send to=%s subject=%q attachments=%d",
		msg.ToAddress, msg.Subject, len(msg.Attachments))
	return fmt.Sprintf("<dry-run-%s@job-mailer.local>", uuid.New().String()), nil
}
