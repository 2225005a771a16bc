// internal/hr/apollo.go
// Apollo.io people-search adapter

package hr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Apollo Apollo.io 查詢服務
// 實作 Provider interface
// 注意: Apollo 的端點與回應格式依方案不同可能有差異，端點可由設定覆寫，
// 回應解析採寬鬆模式，認得的欄位名稱都試一輪
type Apollo struct {
	apiKey     string
	baseURL    string
	endpoint   string
	httpClient *http.Client
}

// NewApollo 建立 Apollo 服務
func NewApollo(apiKey, baseURL, endpoint string) *Apollo {
	return &Apollo{
		apiKey:     apiKey,
		baseURL:    baseURL,
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// Name 回傳提供者名稱
func (a *Apollo) Name() string {
	return "apollo"
}

// Configured 是否已設定 API key
func (a *Apollo) Configured() bool {
	return a.apiKey != ""
}

// LooksLikeGraphOSKey Apollo GraphOS 的 key 以 "service:" 開頭，
// 跟 Apollo.io 的 API key 是兩個不同產品，常被搞混
func LooksLikeGraphOSKey(key string) bool {
	return strings.HasPrefix(strings.TrimSpace(key), "service:")
}

type apolloRequest struct {
	APIKey       string   `json:"api_key"`
	Domains      string   `json:"q_organization_domains"`
	Page         int      `json:"page"`
	PerPage      int      `json:"per_page"`
	PersonTitles []string `json:"person_titles"`
}

type apolloPerson struct {
	Email        string `json:"email"`
	EmailAddress string `json:"email_address"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Title        string `json:"title"`
	JobTitle     string `json:"job_title"`
	Position     string `json:"position"`
	Seniority    string `json:"seniority"`
}

type apolloResponse struct {
	People   []apolloPerson `json:"people"`
	Contacts []apolloPerson `json:"contacts"`
	Data     struct {
		People   []apolloPerson `json:"people"`
		Contacts []apolloPerson `json:"contacts"`
	} `json:"data"`
	Error   string   `json:"error"`
	Message string   `json:"message"`
	Errors  []string `json:"errors"`
}

// SearchByDomain 以網域查詢招募職稱的聯絡人
func (a *Apollo) SearchByDomain(ctx context.Context, domain string) (*SearchResult, error) {
	if a.apiKey == "" {
		return nil, fmt.Errorf("APOLLO_API_KEY is not set on the server")
	}
	if LooksLikeGraphOSKey(a.apiKey) {
		return nil, fmt.Errorf("APOLLO_API_KEY looks like an Apollo GraphOS (service:...) key; HR lookup needs an Apollo.io API key")
	}
	d := NormalizeDomain(domain)
	if d == "" {
		return nil, fmt.Errorf("valid domain is required (example: company.com)")
	}

	reqBody, err := json.Marshal(apolloRequest{
		APIKey:       a.apiKey,
		Domains:      d,
		Page:         1,
		PerPage:      25,
		PersonTitles: recruitingTitles,
	})
	if err != nil {
		return nil, fmt.Errorf("encode apollo request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+a.endpoint, bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("build apollo request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("apollo request failed: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	var payload apolloResponse
	_ = json.Unmarshal(body, &payload)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if resp.StatusCode == http.StatusUnauthorized {
			return nil, fmt.Errorf("apollo request failed (401): the API key is invalid or not an Apollo.io API key")
		}
		msg := payload.Error
		if msg == "" {
			msg = payload.Message
		}
		if msg == "" && len(payload.Errors) > 0 {
			msg = payload.Errors[0]
		}
		if msg == "" {
			msg = fmt.Sprintf("apollo request failed (%d)", resp.StatusCode)
		}
		return nil, fmt.Errorf("%s", msg)
	}

	people := payload.People
	if len(people) == 0 {
		people = payload.Contacts
	}
	if len(people) == 0 {
		people = payload.Data.People
	}
	if len(people) == 0 {
		people = payload.Data.Contacts
	}

	var contacts []Contact
	for _, p := range people {
		email := strings.ToLower(strings.TrimSpace(firstNonEmpty(p.Email, p.EmailAddress)))
		if !validContactEmail(email) {
			continue
		}
		contacts = append(contacts, Contact{
			Email:     email,
			Name:      strings.TrimSpace(p.FirstName + " " + p.LastName),
			Position:  firstNonEmpty(p.Title, p.JobTitle, p.Position),
			Seniority: p.Seniority,
			Source:    "apollo",
		})
		if len(contacts) >= 25 {
			break
		}
	}

	return &SearchResult{Contacts: contacts, Mode: ModeRecruitingOnly}, nil
}
