// internal/models/recipient.go
// 收件人資料模型

package models

import (
	"regexp"
	"strings"
)

// Recipient 收件人
// Subject / Body 為選填欄位，空字串表示使用預設模板
type Recipient struct {
	Email   string `json:"email"`
	Name    string `json:"name,omitempty"`
	Subject string `json:"subject,omitempty"`
	Body    string `json:"body,omitempty"`
}

// 寬鬆的 email 格式檢查，足以擋掉明顯的垃圾資料
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// NormalizeEmail 正規化 email (去空白、轉小寫)
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// IsValidEmail 檢查 email 格式
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}
