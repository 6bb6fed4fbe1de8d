package csvcatalog

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	enc "github.com/MrJamesThe3rd/carlot/internal/encoding"
	"github.com/MrJamesThe3rd/carlot/internal/vehicle"
)

// Load reads a vehicle table from a CSV export. The layout is detected from the header row,
// which may be preceded by free-form preamble lines.
func Load(r io.Reader) ([]vehicle.Vehicle, error) {
	utf8r, charset, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	raw, err := io.ReadAll(utf8r)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var lastErr error

	for i := range profiles {
		p := &profiles[i]

		rows, err := readRows(raw, p.Comma)
		if err != nil {
			lastErr = err
			continue
		}

		cols, headerIdx, ok := findHeader(p, rows)
		if !ok {
			continue
		}

		slog.Info("loading vehicle catalog", "profile", p.Name, "charset", charset)

		return parseRows(p, cols, rows[headerIdx+1:], headerIdx+1)
	}

	if lastErr != nil {
		return nil, fmt.Errorf("read csv: %w", lastErr)
	}

	return nil, fmt.Errorf("no matching catalog format found: expected id, make, model and price columns")
}

func readRows(raw []byte, comma rune) ([][]string, error) {
	reader := csv.NewReader(bytes.NewReader(raw))
	reader.Comma = comma
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	return reader.ReadAll()
}

func findHeader(p *Profile, rows [][]string) (map[string]int, int, bool) {
	for rowIdx, row := range rows {
		cols := make(map[string]int, len(row))

		for i, cell := range row {
			if name := strings.TrimSpace(cell); name != "" {
				cols[name] = i
			}
		}

		if p.matches(cols) {
			return cols, rowIdx, true
		}
	}

	return nil, 0, false
}

// parseRows converts data rows. headerRowNum is the 0-based header index, used for error messages.
func parseRows(p *Profile, cols map[string]int, rows [][]string, headerRowNum int) ([]vehicle.Vehicle, error) {
	cell := func(row []string, f field) string {
		name, ok := p.Columns[f]
		if !ok {
			return ""
		}

		idx, ok := cols[name]
		if !ok || idx >= len(row) {
			return ""
		}

		return strings.TrimSpace(row[idx])
	}

	var out []vehicle.Vehicle

	for i, row := range rows {
		rowNum := headerRowNum + i + 2

		// Short rows are totals and footers.
		if len(row) < len(cols) {
			continue
		}

		id, mk := cell(row, fieldID), cell(row, fieldMake)
		if id == "" || mk == "" {
			continue
		}

		v := vehicle.Vehicle{
			ID:           id,
			Make:         mk,
			Model:        cell(row, fieldModel),
			Variant:      cell(row, fieldVariant),
			BodyType:     cell(row, fieldBody),
			Transmission: cell(row, fieldTransmission),
			FuelType:     cell(row, fieldFuel),
			Colour:       cell(row, fieldColour),
			Location:     cell(row, fieldLocation),
			Condition:    cell(row, fieldCondition),
			ImageKey:     cell(row, fieldImage),
			PPSR:         vehicle.PPSR{Status: ppsrStatus(cell(row, fieldPPSR))},
			Seller: vehicle.Seller{
				Name:       cell(row, fieldSeller),
				Dealership: cell(row, fieldDealership),
			},
		}

		var err error

		if v.Price, err = price(cell(row, fieldPrice), true); err != nil {
			return nil, fmt.Errorf("row %d: price: %w", rowNum, err)
		}

		for _, opt := range []struct {
			f    field
			dest *int64
		}{
			{fieldTradePrice, &v.TradePrice},
			{fieldRetailPrice, &v.RetailPrice},
			{fieldAskingPrice, &v.AskingPrice},
		} {
			if *opt.dest, err = price(cell(row, opt.f), false); err != nil {
				return nil, fmt.Errorf("row %d: %s: %w", rowNum, p.Columns[opt.f], err)
			}
		}

		v.Year = atoi(cell(row, fieldYear))
		v.OdometerKM = atoi(strings.ReplaceAll(cell(row, fieldOdometer), ",", ""))

		out = append(out, v)
	}

	return out, nil
}

func price(s string, required bool) (int64, error) {
	if s == "" && !required {
		return 0, nil
	}

	return vehicle.ParsePrice(s)
}

// atoi returns zero for blank or malformed numbers; year and odometer are informational.
func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}

	return n
}

func ppsrStatus(s string) vehicle.PPSRStatus {
	switch strings.ToLower(strings.ReplaceAll(s, " ", "_")) {
	case "":
		return ""
	case "clear":
		return vehicle.PPSRClear
	case "encumbered", "finance_owing":
		return vehicle.PPSREncumbered
	case "written_off", "wovr":
		return vehicle.PPSRWrittenOff
	case "stolen":
		return vehicle.PPSRStolen
	}

	return vehicle.PPSRStatus(strings.ToLower(s))
}
