// internal/models/mail.go
// 郵件資料模型

package models

// MailMessage 一封待寄出的郵件
type MailMessage struct {
	FromName    string       `json:"from_name,omitempty"`
	FromAddress string       `json:"from"`
	ToAddress   string       `json:"to"`
	Subject     string       `json:"subject"`
	Text        string       `json:"text,omitempty"`
	HTML        string       `json:"html,omitempty"`
	Attachments []Attachment `json:"attachments,omitempty"`
}

// Attachment 附件 (以檔案路徑提供)
type Attachment struct {
	Filename string `json:"filename"`
	Path     string `json:"path"`
}

// DispatchResult 單封郵件的寄送結果 (不落地，僅回傳給呼叫端)
type DispatchResult struct {
	Email     string `json:"email"`
	OK        bool   `json:"ok"`
	MessageID string `json:"messageId,omitempty"`
	Error     string `json:"error,omitempty"`
}

// BulkSummary 批次寄送結果彙總
type BulkSummary struct {
	Total   int              `json:"total"`
	Sent    int              `json:"sent"`
	Failed  int              `json:"failed"`
	Skipped int              `json:"skipped,omitempty"`
	Results []DispatchResult `json:"results,omitempty"`
}
