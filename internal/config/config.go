// internal/config/config.go
// 設定模組 - 載入環境變數

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config 應用程式設定
type Config struct {
	// 環境
	Env string

	// SMTP 寄信
	SMTPHost   string
	SMTPPort   int
	SMTPSecure bool
	SMTPUser   string
	SMTPPass   string

	// 寄件人
	FromName  string
	FromEmail string

	// 郵件服務提供者 (smtp 或 sendgrid)
	MailProvider   string
	SendGridAPIKey string

	// 檔案路徑
	RecipientsCSV string
	SentJSONPath  string
	ResumePath    string

	// 排程
	ScheduleCron string
	ScheduleTZ   string

	// 寄信行為
	DefaultSubject string
	SendDelay      time.Duration
	DryRun         bool

	// UI Server
	UIHost     string
	UIPort     string
	UIAuthUser string
	UIAuthPass string
	UploadDir  string
	SessionTTL time.Duration

	// HR 查詢提供者
	HRProvider     string
	HunterAPIKey   string
	ApolloAPIKey   string
	ApolloBaseURL  string
	ApolloEndpoint string

	// 求職者資訊 (用於郵件模板)
	ApplicantName     string
	ApplicantTitle    string
	ApplicantLinkedIn string
	ApplicantSite     string
	ApplicantEmail    string
	ApplicantPhone    string
}

// Load 載入設定
func Load() *Config {
	// 嘗試載入 .env 檔案 (開發環境)
	_ = godotenv.Load()

	smtpUser := getEnv("SMTP_USER", "")

	return &Config{
		// 環境
		Env: getEnv("APP_ENV", "development"),

		// SMTP
		SMTPHost:   getEnv("SMTP_HOST", ""),
		SMTPPort:   getEnvAsInt("SMTP_PORT", 465),
		SMTPSecure: getEnvAsBool("SMTP_SECURE", true),
		SMTPUser:   smtpUser,
		SMTPPass:   getEnv("SMTP_PASS", ""),

		// 寄件人 (FROM_EMAIL 未設定時退回 SMTP_USER)
		FromName:  getEnv("FROM_NAME", ""),
		FromEmail: getEnv("FROM_EMAIL", smtpUser),

		// 郵件服務提供者
		MailProvider:   strings.ToLower(getEnv("MAIL_PROVIDER", "smtp")),
		SendGridAPIKey: getEnv("SENDGRID_API_KEY", ""),

		// 檔案路徑
		RecipientsCSV: getEnv("RECIPIENTS_CSV", "data/recipients.csv"),
		SentJSONPath:  getEnv("SENT_JSON", "data/sent.json"),
		ResumePath:    getEnv("RESUME_PATH", "data/resume.pdf"),

		// 排程
		ScheduleCron: getEnv("SCHEDULE_CRON", "0 9 * * *"),
		ScheduleTZ:   getEnv("SCHEDULE_TZ", "Asia/Kolkata"),

		// 寄信行為
		DefaultSubject: getEnv("EMAIL_SUBJECT",
			"Application for MERN Stack Developer Role — Immediate Joiner | 3 Yrs Experience"),
		SendDelay: time.Duration(getEnvAsInt("DELAY_MS_BETWEEN_EMAILS", 4000)) * time.Millisecond,
		DryRun:    getEnvAsBool("DRY_RUN", false),

		// UI Server
		UIHost:     getEnv("UI_HOST", "127.0.0.1"),
		UIPort:     getEnv("UI_PORT", "4545"),
		UIAuthUser: strings.TrimSpace(getEnv("UI_AUTH_USER", "")),
		UIAuthPass: strings.TrimSpace(getEnv("UI_AUTH_PASS", "")),
		UploadDir:  getEnv("UPLOAD_DIR", ""),
		SessionTTL: time.Duration(getEnvAsInt("SESSION_TTL_HOURS", 12)) * time.Hour,

		// HR 查詢提供者
		HRProvider:     strings.ToLower(getEnv("HR_PROVIDER", "hunter")),
		HunterAPIKey:   strings.TrimSpace(getEnv("HUNTER_API_KEY", "")),
		ApolloAPIKey:   strings.TrimSpace(getEnv("APOLLO_API_KEY", "")),
		ApolloBaseURL:  getEnv("APOLLO_BASE_URL", "https://api.apollo.io"),
		ApolloEndpoint: getEnv("APOLLO_ENDPOINT", "/v1/mixed_people/search"),

		// 求職者資訊
		ApplicantName:     getEnv("APPLICANT_NAME", "Shubham Pawar"),
		ApplicantTitle:    getEnv("APPLICANT_TITLE", "MERN Stack Developer | Software Engineer"),
		ApplicantLinkedIn: getEnv("APPLICANT_LINKEDIN", "https://www.linkedin.com/in/shubhampawar-"),
		ApplicantSite:     getEnv("APPLICANT_PORTFOLIO", "https://shubhamsportfoliosite.netlify.app/"),
		ApplicantEmail:    getEnv("APPLICANT_EMAIL", "pawarshubham1295@gmail.com"),
		ApplicantPhone:    getEnv("APPLICANT_PHONE", "7020567907"),
	}
}

// ConfigError 啟動時缺少必要設定
type ConfigError struct {
	Missing []string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("missing required config: %s (set these in .env)", strings.Join(e.Missing, ", "))
}

// Validate 檢查必要設定，缺少時回傳 *ConfigError
// SendGrid 模式不需要 SMTP 帳密，但仍需寄件人 email
func (c *Config) Validate() error {
	var missing []string

	if c.MailProvider == "sendgrid" {
		if c.SendGridAPIKey == "" {
			missing = append(missing, "SENDGRID_API_KEY")
		}
	} else {
		if c.SMTPHost == "" {
			missing = append(missing, "SMTP_HOST")
		}
		if c.SMTPPort == 0 {
			missing = append(missing, "SMTP_PORT")
		}
		if c.SMTPUser == "" {
			missing = append(missing, "SMTP_USER")
		}
		if c.SMTPPass == "" {
			missing = append(missing, "SMTP_PASS")
		}
	}

	if c.FromEmail == "" {
		missing = append(missing, "FROM_EMAIL")
	}

	if len(missing) > 0 {
		return &ConfigError{Missing: missing}
	}
	return nil
}

// AuthEnabled UI 登入是否啟用 (帳號密碼皆有設定)
func (c *Config) AuthEnabled() bool {
	return c.UIAuthUser != "" && c.UIAuthPass != ""
}

// getEnv 取得環境變數，若不存在則回傳預設值
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt 取得環境變數並轉換為整數
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsBool 取得環境變數並轉換為布林值
func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return value == "true" || value == "1" || value == "yes"
	}
	return defaultValue
}
