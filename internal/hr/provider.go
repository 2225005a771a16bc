// internal/hr/provider.go
// HR / 招募窗口查詢共用介面

package hr

import (
	"context"
	"strings"

	"job-mailer/internal/models"
)

// Contact 查詢到的聯絡人
type Contact struct {
	Email      string `json:"email"`
	Name       string `json:"name"`
	Position   string `json:"position"`
	Seniority  string `json:"seniority"`
	Confidence *int   `json:"confidence"`
	Source     string `json:"source"`
}

// 查詢結果模式
const (
	ModeRecruitingOnly    = "recruiting_only"
	ModeAllEmailsFallback = "all_emails_fallback"
)

// SearchResult 一次網域查詢的結果
type SearchResult struct {
	Contacts []Contact
	Mode     string
	Phone    string
}

// Provider 人才資料庫查詢介面
// 各家 API 的回應格式差異封裝在各自的 adapter 內
type Provider interface {
	// Name 回傳提供者名稱
	Name() string

	// SearchByDomain 以公司網域查詢招募相關聯絡人
	SearchByDomain(ctx context.Context, domain string) (*SearchResult, error)

	// Configured 是否已設定 API key
	Configured() bool
}

// NormalizeDomain 清理網域輸入：去掉 scheme、www 前綴與路徑
func NormalizeDomain(domain string) string {
	d := strings.ToLower(strings.TrimSpace(domain))
	d = strings.TrimPrefix(d, "https://")
	d = strings.TrimPrefix(d, "http://")
	d = strings.TrimPrefix(d, "www.")
	if i := strings.IndexByte(d, '/'); i >= 0 {
		d = d[:i]
	}
	return d
}

// 職稱關鍵字 (Apollo 查詢條件用)
var recruitingTitles = []string{
	"Talent Acquisition",
	"Recruiter",
	"Recruitment",
	"HR",
	"Human Resources",
	"People Operations",
	"People Ops",
}

// 職稱片段 (Hunter 回應過濾用)
var recruitingHints = []string{
	"talent",
	"recruit",
	"hr",
	"human resources",
	"people ops",
	"people operations",
}

// isRecruitingRole 職稱或資歷字串是否屬於招募相關職務
func isRecruitingRole(s string) bool {
	v := strings.ToLower(s)
	for _, hint := range recruitingHints {
		if strings.Contains(v, hint) {
			return true
		}
	}
	return false
}

func validContactEmail(email string) bool {
	return email != "" && models.IsValidEmail(email)
}
