// internal/recipients/template_xlsx.go
// 批次寄送用 Excel 範本產生

package recipients

import (
	"bytes"

	"github.com/xuri/excelize/v2"
)

// TemplateWorkbook 產生可下載的 Excel 範本 (含標頭與兩列範例)
func TemplateWorkbook() ([]byte, error) {
	rows := [][]interface{}{
		{"email", "recipient name", "subject", "body"},
		{"hr@company.com", "Hiring Team", "", ""},
		{"recruiter@company.com", "Priya",
			"Application for MERN Stack Developer Role — Immediate Joiner | 3 Yrs Experience", ""},
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "recipients"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
