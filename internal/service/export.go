package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"iter"
	"strings"
	"time"

	"country-limits/internal/core/domain"
)

var exportHeader = []string{
	"Code", "Name", "Balance", "Landing", "Current Limit", "Valid Until",
	"Protocol", "Overlimit", "Limit Exceeded", "Status", "Pending Limit",
	"Pending Valid Until", "Requested By", "Last Updated", "Last Updated By",
}

// WriteCSV writes one row per record. It returns the number of rows written.
func WriteCSV(w io.Writer, records iter.Seq[domain.CountryRecord]) (int, error) {
	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return 0, fmt.Errorf("write csv header: %w", err)
	}

	n := 0
	for rec := range records {
		var pendingLimit, pendingValid, requestedBy string
		if rec.Pending != nil {
			pendingLimit = rec.Pending.NewLimit
			pendingValid = rec.Pending.NewValidUntil
			requestedBy = rec.Pending.RequestedBy
		}
		row := []string{
			rec.Code, rec.Name, rec.Balance, rec.Landing, rec.CurrentLimit,
			rec.CurrentValidUntil, rec.CurrentProtocol, rec.Overlimit,
			rec.LimitExceeded, string(rec.Status), pendingLimit, pendingValid,
			requestedBy, rec.LastUpdated.UTC().Format(time.RFC3339), rec.LastUpdatedBy,
		}
		for i := range row {
			row[i] = spreadsheetSafe(row[i])
		}
		if err := cw.Write(row); err != nil {
			return n, fmt.Errorf("write csv row %s: %w", rec.Code, err)
		}
		n++
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return n, fmt.Errorf("flush csv: %w", err)
	}
	return n, nil
}

// spreadsheetSafe quotes cells a spreadsheet would evaluate as a formula.
func spreadsheetSafe(cell string) string {
	if cell != "" && strings.ContainsRune("=+-@\t\r", rune(cell[0])) {
		return "'" + cell
	}
	return cell
}
