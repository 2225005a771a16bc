// internal/mailer/smtp.go
// SMTP 郵件發送服務 (gomail)

package mailer

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/gomail.v2"

	"job-mailer/internal/config"
	"job-mailer/internal/models"
)

// SMTPSender SMTP 郵件發送服務
// 實作 Sender interface，每次寄送獨立撥號，寄信量低不需要連線池
type SMTPSender struct {
	cfg    *config.Config
	dialer *gomail.Dialer
}

// NewSMTPSender 建立 SMTP 服務
func NewSMTPSender(cfg *config.Config) *SMTPSender {
	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass)
	dialer.SSL = cfg.SMTPSecure
	return &SMTPSender{
		cfg:    cfg,
		dialer: dialer,
	}
}

// Name 回傳服務名稱
func (s *SMTPSender) Name() string {
	return "SMTP"
}

// Send 發送郵件
func (s *SMTPSender) Send(msg *models.MailMessage) (string, error) {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", msg.FromAddress, msg.FromName)
	m.SetHeader("To", msg.ToAddress)
	m.SetHeader("Subject", msg.Subject)

	// gomail 不產生 Message-ID，自行生成以便回報給呼叫端
	messageID := newMessageID(msg.FromAddress)
	m.SetHeader("Message-ID", messageID)

	m.SetBody("text/plain", msg.Text)
	if msg.HTML != "" {
		m.AddAlternative("text/html", msg.HTML)
	}

	for _, att := range msg.Attachments {
		m.Attach(att.Path, gomail.Rename(att.Filename))
	}

	if err := s.dialer.DialAndSend(m); err != nil {
		return "", fmt.Errorf("smtp send to %s: %w", msg.ToAddress, err)
	}
	return messageID, nil
}

// newMessageID 以寄件人網域產生 RFC 5322 Message-ID
func newMessageID(fromAddress string) string {
	domain := "job-mailer.local"
	if i := strings.LastIndex(fromAddress, "@"); i >= 0 && i+1 < len(fromAddress) {
		domain = fromAddress[i+1:]
	}
	return fmt.Sprintf("<%s@%s>", uuid.New().String(), domain)
}
