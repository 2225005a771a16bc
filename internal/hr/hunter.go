// internal/hr/hunter.go
// Hunter.io domain-search adapter

package hr

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Hunter Hunter.io 查詢服務
// 實作 Provider interface
type Hunter struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewHunter 建立 Hunter 服務
func NewHunter(apiKey string) *Hunter {
	return &Hunter{
		apiKey:     apiKey,
		baseURL:    "https://api.hunter.io",
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// Name 回傳提供者名稱
func (h *Hunter) Name() string {
	return "hunter"
}

// Configured 是否已設定 API key
func (h *Hunter) Configured() bool {
	return h.apiKey != ""
}

// hunterResponse Hunter domain-search 回應結構 (只取用得到的欄位)
type hunterResponse struct {
	Data struct {
		Emails []struct {
			Value      string `json:"value"`
			FirstName  string `json:"first_name"`
			LastName   string `json:"last_name"`
			Position   string `json:"position"`
			Department string `json:"department"`
			Seniority  string `json:"seniority"`
			Confidence *int   `json:"confidence"`
		} `json:"emails"`
		Organization struct {
			PhoneNumber string `json:"phone_number"`
		} `json:"organization"`
		PhoneNumber string `json:"phone_number"`
	} `json:"data"`
	Errors []struct {
		Details string `json:"details"`
		Message string `json:"message"`
	} `json:"errors"`
}

// SearchByDomain 查詢網域下的信箱，優先回傳招募相關職務；
// 沒有招募職務時退回全部聯絡人 (mode: all_emails_fallback)
func (h *Hunter) SearchByDomain(ctx context.Context, domain string) (*SearchResult, error) {
	if h.apiKey == "" {
		return nil, fmt.Errorf("HUNTER_API_KEY is not set on the server")
	}
	d := NormalizeDomain(domain)
	if d == "" {
		return nil, fmt.Errorf("valid domain is required (example: company.com)")
	}

	endpoint := fmt.Sprintf("%s/v2/domain-search?domain=%s&api_key=%s",
		h.baseURL, url.QueryEscape(d), url.QueryEscape(h.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build hunter request: %w", err)
	}

	resp, err := h.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("hunter request failed: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	var payload hunterResponse
	_ = json.Unmarshal(body, &payload)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := "Hunter request failed"
		if len(payload.Errors) > 0 {
			if payload.Errors[0].Details != "" {
				msg = payload.Errors[0].Details
			} else if payload.Errors[0].Message != "" {
				msg = payload.Errors[0].Message
			}
		}
		return nil, fmt.Errorf("%s", msg)
	}

	var all []Contact
	for _, e := range payload.Data.Emails {
		email := strings.ToLower(strings.TrimSpace(e.Value))
		if !validContactEmail(email) {
			continue
		}
		position := e.Position
		if position == "" {
			position = e.Department
		}
		all = append(all, Contact{
			Email:      email,
			Name:       strings.TrimSpace(e.FirstName + " " + e.LastName),
			Position:   position,
			Seniority:  e.Seniority,
			Confidence: e.Confidence,
			Source:     "hunter",
		})
		if len(all) >= 50 {
			break
		}
	}

	var recruiting []Contact
	for _, c := range all {
		if isRecruitingRole(c.Position + " " + c.Seniority) {
			recruiting = append(recruiting, c)
			if len(recruiting) >= 25 {
				break
			}
		}
	}

	result := &SearchResult{Phone: firstNonEmpty(payload.Data.Organization.PhoneNumber, payload.Data.PhoneNumber)}
	if len(recruiting) > 0 {
		result.Contacts = recruiting
		result.Mode = ModeRecruitingOnly
	} else {
		result.Contacts = capContacts(all, 25)
		result.Mode = ModeAllEmailsFallback
	}
	return result, nil
}

func capContacts(in []Contact, n int) []Contact {
	if len(in) > n {
		return in[:n]
	}
	return in
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
