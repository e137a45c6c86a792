package timetable

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shonan-transit/commute-routes/utils"
)

// utf8BOM is the byte-order mark Excel prepends to exported CSV.
const utf8BOM = "\uFEFF"

// ReadRecords reads one leg CSV into raw records, clock text untouched.
// Headers are matched case-insensitively in any column order and a leading
// BOM is stripped.
func ReadRecords(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readRecords(f, path)
}

func readRecords(r io.Reader, name string) ([]Record, error) {
	rows, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("read %s: no header row", name)
	}
	head := rows[0]
	head[0] = strings.TrimPrefix(head[0], utf8BOM)
	idx := func(col string) int {
		for i, h := range head {
			if strings.EqualFold(h, col) {
				return i
			}
		}
		return -1
	}
	dep := idx("departure")
	arr := idx("arrival")
	if dep < 0 || arr < 0 {
		return nil, fmt.Errorf("read %s: missing departure/arrival columns", name)
	}
	recs := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		recs = append(recs, Record{Departure: row[dep], Arrival: row[arr]})
	}
	return recs, nil
}

// ParseTrains converts raw records to minute-of-day trains. The first
// malformed clock text aborts the conversion.
func ParseTrains(recs []Record) ([]Train, error) {
	trains := make([]Train, 0, len(recs))
	for i, rec := range recs {
		dep, err := utils.ParseClockToMinutes(rec.Departure)
		if err != nil {
			return nil, fmt.Errorf("row %d departure: %w", i+1, err)
		}
		arr, err := utils.ParseClockToMinutes(rec.Arrival)
		if err != nil {
			return nil, fmt.Errorf("row %d arrival: %w", i+1, err)
		}
		trains = append(trains, Train{Departure: dep, Arrival: arr})
	}
	return trains, nil
}
