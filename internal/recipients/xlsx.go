// internal/recipients/xlsx.go
// 收件人名單載入 (Excel)

package recipients

import (
	"strings"

	"github.com/xuri/excelize/v2"

	"job-mailer/internal/models"
)

// 欄位別名 (大小寫不拘)，含客戶表單常見的拼字錯誤
var (
	emailAliases = []string{"email", "mail", "email id", "mail id", "email address"}
	nameAliases  = []string{"recipient name", "receipnt name", "name"}
)

// LoadXLSX 從 Excel 第一個工作表載入收件人名單
// 預期欄位 (大小寫不拘)：email/mail、recipient name/name、subject、body。
// 無效 email 的資料列直接略過；重複的 email 去重並回填空白欄位。
func LoadXLSX(path string) ([]models.Recipient, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &FormatError{Path: path, Err: err}
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, &FormatError{Path: path, Err: err}
	}
	if len(rows) < 2 {
		return nil, nil
	}

	header := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		header[i] = strings.ToLower(strings.TrimSpace(h))
	}

	emailCol := findColumn(header, emailAliases)
	nameCol := findColumn(header, nameAliases)
	subjectCol := findColumn(header, []string{"subject"})
	bodyCol := findColumn(header, []string{"body"})

	var out []models.Recipient
	for _, row := range rows[1:] {
		email := models.NormalizeEmail(pick(row, emailCol))
		if email == "" || !models.IsValidEmail(email) {
			continue
		}
		out = append(out, models.Recipient{
			Email:   email,
			Name:    pick(row, nameCol),
			Subject: pick(row, subjectCol),
			Body:    pick(row, bodyCol),
		})
	}

	return Dedupe(out), nil
}

// findColumn 依別名順序找欄位，回傳最先匹配到的索引；找不到回傳 -1
func findColumn(header []string, aliases []string) int {
	for _, alias := range aliases {
		for i, h := range header {
			if h == alias {
				return i
			}
		}
	}
	return -1
}
