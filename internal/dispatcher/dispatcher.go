// internal/dispatcher/dispatcher.go
// 寄送流程調度 - 排程路徑與批次路徑

package dispatcher

import (
	"log"
	"sync"
	"time"

	"job-mailer/internal/config"
	"job-mailer/internal/mailer"
	"job-mailer/internal/models"
	"job-mailer/internal/recipients"
	"job-mailer/internal/sentlog"
	"job-mailer/internal/template"
)

// Dispatcher 寄送調度器
// 內部鎖確保同一時間只有一個寄送流程在跑：cron、檔案監看與 HTTP 觸發
// 都會經過這把鎖，寄送紀錄的讀寫因此不會交錯
type Dispatcher struct {
	cfg     *config.Config
	sender  mailer.Sender
	store   *sentlog.Store
	builder *template.Builder

	mu    sync.Mutex
	sleep func(time.Duration) // 測試時可替換
}

// New 建立調度器
func New(cfg *config.Config, sender mailer.Sender, store *sentlog.Store, builder *template.Builder) *Dispatcher {
	return &Dispatcher{
		cfg:     cfg,
		sender:  sender,
		store:   store,
		builder: builder,
		sleep:   time.Sleep,
	}
}

// SendPending 排程路徑：載入名單，略過已寄出的收件人，逐一寄送並記錄結果
// 單一收件人失敗只記錄不中斷；名單檔案讀不到才回傳錯誤
func (d *Dispatcher) SendPending(source string) (models.BulkSummary, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	list, err := recipients.Load(d.cfg.RecipientsCSV)
	if err != nil {
		return models.BulkSummary{}, err
	}

	sentLog, err := d.store.Load()
	if err != nil {
		return models.BulkSummary{}, err
	}

	var summary models.BulkSummary
	for _, r := range list {
		if sentLog[r.Email].Status() == sentlog.StatusSent {
			summary.Skipped++
			continue
		}
		summary.Total++

		result := d.sendRecorded(r, source)
		summary.Results = append(summary.Results, result)
		if result.OK {
			summary.Sent++
		} else {
			summary.Failed++
		}
	}

	log.Printf("[send] %s run done: total=%d sent=%d failed=%d skipped=%d",
		source, summary.Total, summary.Sent, summary.Failed, summary.Skipped)
	return summary, nil
}

// sendRecorded 寄送單一收件人並把結果寫入寄送紀錄
func (d *Dispatcher) sendRecorded(r models.Recipient, source string) models.DispatchResult {
	resume, err := mailer.ResolveResume("", "", d.cfg.ResumePath)
	if err != nil {
		d.markError(r, source, err)
		return models.DispatchResult{Email: r.Email, OK: false, Error: err.Error()}
	}

	msg := d.buildMessage(r, resume)
	messageID, err := d.sender.Send(msg)
	if err != nil {
		log.Printf("[send] FAILED -> %s: %v", r.Email, err)
		d.markError(r, source, err)
		return models.DispatchResult{Email: r.Email, OK: false, Error: err.Error()}
	}

	log.Printf("[send] sent -> %s (messageId=%s)", r.Email, messageID)
	if err := d.store.MarkSent(r.Email, sentlog.Entry{
		"name":      r.Name,
		"subject":   msg.Subject,
		"messageId": messageID,
		"source":    source,
	}); err != nil {
		log.Printf("[send] warning: cannot update sent log for %s: %v", r.Email, err)
	}
	return models.DispatchResult{Email: r.Email, OK: true, MessageID: messageID}
}

func (d *Dispatcher) markError(r models.Recipient, source string, sendErr error) {
	if err := d.store.MarkError(r.Email, sentlog.Entry{
		"name":   r.Name,
		"error":  sendErr.Error(),
		"source": source,
	}); err != nil {
		log.Printf("[send] warning: cannot update sent log for %s: %v", r.Email, err)
	}
}

// SendBulk 批次路徑：不看寄送紀錄，逐列寄送並回傳完整結果
// 共用履歷先解析一次，找不到時整批失敗 (*mailer.MissingResumeError)；
// 單列寄送失敗僅記錄於結果列，每列之間固定延遲以免觸發供應商限流
func (d *Dispatcher) SendBulk(rows []models.Recipient, resumePath, resumeName string) (models.BulkSummary, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	resume, err := mailer.ResolveResume(resumePath, resumeName, d.cfg.ResumePath)
	if err != nil {
		return models.BulkSummary{}, err
	}

	var summary models.BulkSummary
	for _, r := range rows {
		summary.Total++

		msg := d.buildMessage(r, resume)
		log.Printf("[bulk] sending -> %s", r.Email)
		messageID, err := d.sender.Send(msg)
		if err != nil {
			log.Printf("[bulk] send FAILED -> %s: %v", r.Email, err)
			summary.Failed++
			summary.Results = append(summary.Results, models.DispatchResult{
				Email: r.Email, OK: false, Error: err.Error(),
			})
		} else {
			log.Printf("[bulk] sent OK -> %s (messageId=%s)", r.Email, messageID)
			summary.Sent++
			summary.Results = append(summary.Results, models.DispatchResult{
				Email: r.Email, OK: true, MessageID: messageID,
			})
		}

		d.sleep(d.cfg.SendDelay)
	}

	return summary, nil
}

// SendOne 單筆寄送 (UI 觸發)，不經過寄送紀錄
func (d *Dispatcher) SendOne(r models.Recipient, resumePath, resumeName string) (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	resume, err := mailer.ResolveResume(resumePath, resumeName, d.cfg.ResumePath)
	if err != nil {
		return "", err
	}

	msg := d.buildMessage(r, resume)
	return d.sender.Send(msg)
}

// buildMessage 組出一封郵件：主旨與內文的覆寫優先，否則用預設模板
func (d *Dispatcher) buildMessage(r models.Recipient, resume models.Attachment) *models.MailMessage {
	subject := r.Subject
	if subject == "" {
		subject = d.cfg.DefaultSubject
	}

	var content template.Email
	if r.Body != "" {
		content = d.builder.BuildOverride(r.Name, r.Email, subject, r.Body)
	} else {
		content = d.builder.Build(r.Name, r.Email, subject)
	}

	return &models.MailMessage{
		FromName:    d.cfg.FromName,
		FromAddress: d.cfg.FromEmail,
		ToAddress:   r.Email,
		Subject:     content.Subject,
		Text:        content.Text,
		HTML:        content.HTML,
		Attachments: []models.Attachment{resume},
	}
}
