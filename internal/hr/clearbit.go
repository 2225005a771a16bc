// internal/hr/clearbit.go
// 公司名稱 → 網域解析 (Clearbit autocomplete，免金鑰)

package hr

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// DomainResolver 公司名稱解析器
type DomainResolver struct {
	baseURL    string
	httpClient *http.Client
}

// NewDomainResolver 建立解析器
func NewDomainResolver() *DomainResolver {
	return &DomainResolver{
		baseURL:    "https://autocomplete.clearbit.com",
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type clearbitSuggestion struct {
	Domain  string `json:"domain"`
	Website string `json:"website"`
}

// Resolve 盡力而為：查不到或服務不可用時回傳空字串，不視為錯誤
func (r *DomainResolver) Resolve(ctx context.Context, company string) string {
	if company == "" {
		return ""
	}

	endpoint := fmt.Sprintf("%s/v1/companies/suggest?query=%s", r.baseURL, url.QueryEscape(company))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return ""
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ""
	}

	var suggestions []clearbitSuggestion
	if err := json.NewDecoder(resp.Body).Decode(&suggestions); err != nil || len(suggestions) == 0 {
		return ""
	}

	return NormalizeDomain(firstNonEmpty(suggestions[0].Domain, suggestions[0].Website))
}
