// internal/api/handlers/hr_handler.go
// HR 查詢 API Handler

package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"job-mailer/internal/config"
	"job-mailer/internal/hr"
)

// HRHandler HR 查詢 Handler
type HRHandler struct {
	cfg       *config.Config
	providers map[string]hr.Provider
	resolver  *hr.DomainResolver
}

// NewHRHandler 建立 HR Handler
func NewHRHandler(cfg *config.Config, providers map[string]hr.Provider, resolver *hr.DomainResolver) *HRHandler {
	return &HRHandler{
		cfg:       cfg,
		providers: providers,
		resolver:  resolver,
	}
}

// Lookup 以公司網域 (或名稱) 查詢招募窗口
// query: company / domain / provider
func (h *HRHandler) Lookup(c *gin.Context) {
	company := strings.TrimSpace(c.Query("company"))
	domain := hr.NormalizeDomain(c.Query("domain"))

	providerName := strings.ToLower(strings.TrimSpace(c.Query("provider")))
	if providerName == "" {
		providerName = h.cfg.HRProvider
	}
	if providerName == "" {
		providerName = "hunter"
	}

	// 只給公司名稱時先解析網域
	if domain == "" && company != "" {
		domain = h.resolver.Resolve(c.Request.Context(), company)
	}
	if domain == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"ok":    false,
			"error": "Provide a company domain (recommended) or a company name (domain will be auto-detected when possible).",
		})
		return
	}

	provider, ok := h.providers[providerName]
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "Unknown provider: " + providerName})
		return
	}

	result, err := provider.SearchByDomain(c.Request.Context(), domain)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	contacts := result.Contacts
	if contacts == nil {
		contacts = []hr.Contact{}
	}

	var phone any
	if result.Phone != "" {
		phone = result.Phone
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":       true,
		"provider": provider.Name(),
		"company":  company,
		"domain":   domain,
		"contacts": contacts,
		"mode":     result.Mode,
		"phone":    phone,
	})
}

// ProviderStatus 回傳各提供者是否已設定 (不回傳任何金鑰)
func (h *HRHandler) ProviderStatus(c *gin.Context) {
	hunterConfigured := h.providers["hunter"] != nil && h.providers["hunter"].Configured()
	apolloConfigured := h.providers["apollo"] != nil && h.providers["apollo"].Configured()

	c.JSON(http.StatusOK, gin.H{
		"ok": true,
		"providers": gin.H{
			"hunter": gin.H{
				"configured": hunterConfigured,
			},
			"apollo": gin.H{
				"configured":       apolloConfigured,
				"looksLikeGraphOS": hr.LooksLikeGraphOSKey(h.cfg.ApolloAPIKey),
			},
		},
	})
}
