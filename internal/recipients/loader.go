// internal/recipients/loader.go
// 收件人名單載入 (CSV)

package recipients

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"job-mailer/internal/models"
)

// FormatError 名單檔案無法讀取或解析
type FormatError struct {
	Path string
	Err  error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("cannot read recipients file %s: %v", e.Path, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// Load 載入 CSV 收件人名單
// 優先以含標頭的格式解析 (email,name 欄位，大小寫不拘)；
// 若解析不出任何有效列，退回無標頭格式：
//   - "someone@x.com,Name"
//   - "someone@x.com"
//
// 無效或空白的 email 直接略過，不視為錯誤；零筆有效資料也不是錯誤。
func Load(csvPath string) ([]models.Recipient, error) {
	raw, err := os.ReadFile(csvPath)
	if err != nil {
		return nil, &FormatError{Path: csvPath, Err: err}
	}

	rows, err := parseCSV(raw)
	if err != nil {
		return nil, &FormatError{Path: csvPath, Err: err}
	}
	if len(rows) == 0 {
		return nil, nil
	}

	var out []models.Recipient

	// 標頭模式
	if cols := headerColumns(rows[0]); cols.email >= 0 {
		for _, row := range rows[1:] {
			out = appendRow(out, pick(row, cols.email), pick(row, cols.name))
		}
	}

	// 標頭模式解析不出任何資料時退回無標頭模式
	if len(out) == 0 {
		for _, row := range rows {
			out = appendRow(out, pick(row, 0), pick(row, 1))
		}
	}

	return Dedupe(out), nil
}

// Dedupe 以正規化 email 去重，保留先出現的資料列；
// 後續重複列的 name/subject/body 可回填先前的空白欄位。
func Dedupe(in []models.Recipient) []models.Recipient {
	var out []models.Recipient
	index := make(map[string]int)
	for _, r := range in {
		i, ok := index[r.Email]
		if !ok {
			index[r.Email] = len(out)
			out = append(out, r)
			continue
		}
		if out[i].Name == "" && r.Name != "" {
			out[i].Name = r.Name
		}
		if out[i].Subject == "" && r.Subject != "" {
			out[i].Subject = r.Subject
		}
		if out[i].Body == "" && r.Body != "" {
			out[i].Body = r.Body
		}
	}
	return out
}

func parseCSV(raw []byte) ([][]string, error) {
	reader := csv.NewReader(bytes.NewReader(raw))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	return reader.ReadAll()
}

type columns struct {
	email int
	name  int
}

// headerColumns 從第一列找出 email / name 欄位位置；找不到 email 欄位時回傳 -1
func headerColumns(header []string) columns {
	cols := columns{email: -1, name: -1}
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "email":
			if cols.email < 0 {
				cols.email = i
			}
		case "name":
			if cols.name < 0 {
				cols.name = i
			}
		}
	}
	return cols
}

func pick(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func appendRow(out []models.Recipient, email, name string) []models.Recipient {
	e := models.NormalizeEmail(email)
	if e == "" || !models.IsValidEmail(e) {
		return out
	}
	return append(out, models.Recipient{Email: e, Name: name})
}
