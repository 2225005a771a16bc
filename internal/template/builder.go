// internal/template/builder.go
// 郵件內容產生 - 預設求職信模板與自訂內文模板

package template

import (
	"bytes"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"
)

// Profile 求職者資訊，填入模板的署名與連結
type Profile struct {
	Name      string
	Title     string
	LinkedIn  string
	Portfolio string
	Email     string
	Phone     string
}

// Email 產生結果，固定包含純文字與 HTML 兩種版本
type Email struct {
	Subject string
	Text    string
	HTML    string
}

// 收件人名字空白時的預設稱謂
const defaultGreeting = "Hiring Team"

// Builder 郵件內容產生器
// HTML 版本一律經由 html/template 輸出，插入的使用者字串自動跳脫
type Builder struct {
	profile   Profile
	textTmpl  *texttemplate.Template
	htmlTmpl  *htmltemplate.Template
	overrideT *texttemplate.Template
	overrideH *htmltemplate.Template
}

type templateData struct {
	Greeting string
	Body     string
	Profile  Profile
}

// NewBuilder 建立產生器，模板解析失敗屬程式錯誤，直接 panic
func NewBuilder(profile Profile) *Builder {
	return &Builder{
		profile:   profile,
		textTmpl:  texttemplate.Must(texttemplate.New("default").Parse(defaultText)),
		htmlTmpl:  htmltemplate.Must(htmltemplate.New("default").Parse(defaultHTML)),
		overrideT: texttemplate.Must(texttemplate.New("override").Parse(overrideText)),
		overrideH: htmltemplate.Must(htmltemplate.New("override").Parse(overrideHTML)),
	}
}

// Build 產生預設求職信
func (b *Builder) Build(name, email, subject string) Email {
	data := templateData{Greeting: greeting(name), Profile: b.profile}
	return Email{
		Subject: subject,
		Text:    render(b.textTmpl, data),
		HTML:    renderHTML(b.htmlTmpl, data),
	}
}

// BuildOverride 產生自訂內文的信件：稱謂 + 內文 + 固定署名
func (b *Builder) BuildOverride(name, email, subject, body string) Email {
	data := templateData{
		Greeting: greeting(name),
		Body:     strings.TrimSpace(body),
		Profile:  b.profile,
	}
	return Email{
		Subject: subject,
		Text:    render(b.overrideT, data),
		HTML:    renderHTML(b.overrideH, data),
	}
}

// greeting 收件人名字，空白時退回固定稱謂
// (原本依 email 關鍵字猜稱謂的邏輯每個分支都回傳同一個值，已收斂)
func greeting(name string) string {
	if n := strings.TrimSpace(name); n != "" {
		return n
	}
	return defaultGreeting
}

func render(t *texttemplate.Template, data templateData) string {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		// 模板與資料皆由本套件掌控，執行失敗屬程式錯誤
		panic(err)
	}
	return buf.String()
}

func renderHTML(t *htmltemplate.Template, data templateData) string {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		panic(err)
	}
	return buf.String()
}
