package service

import (
	"encoding/csv"
	"strings"
	"testing"

	"airmen-backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportCSVStartsWithBOM(t *testing.T) {
	out, err := ExportCSV(sampleAirmen())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), "\uFEFF"), "export must carry a UTF-8 BOM")
}

func TestExportCSVRows(t *testing.T) {
	out, err := ExportCSV(sampleAirmen())
	require.NoError(t, err)

	r := csv.NewReader(strings.NewReader(strings.TrimPrefix(string(out), "\uFEFF")))
	records, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4, "header plus one row per record")

	header := records[0]
	assert.Equal(t, []string{
		"BD No", "Rank", "Name (EN)", "Name (BN)",
		"TDY", "DET", "Med Cat",
		"Trade", "Flight", "Mobile", "Accom Mode", "Accom Address",
	}, header)

	// Record 1001 has a TDY but no DET or Med Cat.
	row := records[1]
	assert.Equal(t, "1001", row[0])
	assert.Equal(t, "Cox's Bazar", row[4])
	assert.Equal(t, "N/A", row[5])
	assert.Equal(t, "N/A", row[6])

	// Bangla names survive the round trip.
	assert.Equal(t, "মোঃ রহিম উদ্দিন", row[3])
}

func TestExportCSVQuoting(t *testing.T) {
	addr := `House 7, Road "B", Tejgaon`
	data := []model.Airman{{
		BDNo: "2001", Rank: model.RankAC, Trade: model.TradeMTOF, Flight: model.FlightMTOps,
		NameEn: "Test, Person", NameBn: "টেস্ট", Accommodation: model.AccomLOOA,
		AccomAddress: &addr,
	}}

	out, err := ExportCSV(data)
	require.NoError(t, err)

	r := csv.NewReader(strings.NewReader(strings.TrimPrefix(string(out), "\uFEFF")))
	records, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "Test, Person", records[1][2])
	assert.Equal(t, addr, records[1][11])
}

func TestExportCSVEmptySet(t *testing.T) {
	out, err := ExportCSV(nil)
	require.NoError(t, err)

	body := strings.TrimPrefix(string(out), "\uFEFF")
	lines := strings.Split(strings.TrimSpace(body), "\n")
	assert.Len(t, lines, 1, "header only")
}
