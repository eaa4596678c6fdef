package service

import (
	"bytes"
	"encoding/csv"

	"airmen-backend/internal/model"
)

// exportHeader is the fixed column projection of the status export.
var exportHeader = []string{
	"BD No", "Rank", "Name (EN)", "Name (BN)",
	"TDY", "DET", "Med Cat",
	"Trade", "Flight", "Mobile", "Accom Mode", "Accom Address",
}

// ExportCSV renders one row per record, comma delimited with RFC 4180
// quoting. The output starts with a UTF-8 BOM so spreadsheet tools render
// Bangla names correctly. Absent overlay fields export as the literal "N/A".
func ExportCSV(data []model.Airman) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("\uFEFF")

	w := csv.NewWriter(&buf)
	if err := w.Write(exportHeader); err != nil {
		return nil, err
	}
	for _, a := range data {
		row := []string{
			a.BDNo,
			string(a.Rank),
			a.NameEn,
			a.NameBn,
			orNA(a.TDYLocation),
			orNA(a.DETLocation),
			orNA(a.MedCat),
			string(a.Trade),
			string(a.Flight),
			a.Mobile,
			string(a.Accommodation),
			deref(a.AccomAddress),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func orNA(s *string) string {
	if s == nil || *s == "" {
		return "N/A"
	}
	return *s
}
