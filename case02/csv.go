package case02

import (
	"encoding/csv"
	"errors"
	"io"
	"math"
	"strconv"
	"strings"
	"time"
)

var epoch02 = time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)

var errMissingColumns = errors.New("case02: csv header missing expected columns")

func cleanToken(s string) string {
	return strings.TrimSpace(strings.Trim(strings.TrimSpace(s), `"`))
}

// parseDecimalMaybeComma parses a possibly comma-decimal float, dropping the
// dataset's -200 sentinel for "no reading".
func parseDecimalMaybeComma(s string) (float64, bool) {
	s = cleanToken(s)
	if s == "" || s == "-200" {
		return 0, false
	}

	f, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	if err != nil {
		return 0, false
	}

	return f, true
}

func parseIntOrNone(s string) (int64, bool) {
	f, ok := parseDecimalMaybeComma(s)
	if !ok {
		return 0, false
	}

	return int64(f), true
}

// parseDatetimeToMinutes parses the UCI Air Quality dataset's
// "DD/MM/YYYY" + "HH.MM.SS" column pair into minutes since 1970-01-01.
func parseDatetimeToMinutes(dateS, timeS string) (int64, bool) {
	dateS = cleanToken(dateS)
	timeS = cleanToken(timeS)
	if dateS == "" || timeS == "" {
		return 0, false
	}

	t, err := time.Parse("02/01/2006 15.04.05", dateS+" "+timeS)
	if err != nil {
		return 0, false
	}

	return int64(t.Sub(epoch02).Minutes()), true
}

func findCol(cols []string, name string) int {
	for i, c := range cols {
		if c == name {
			return i
		}
	}

	return -1
}

// ReadCSV parses air-quality ticks from the UCI-style semicolon-delimited
// CSV (header row with Date/Time/CO(GT)/C6H6(GT)/NOx(GT)/NO2(GT)/T/RH/AH
// columns). Rows with a missing or sentinel (-200) reading in any required
// column are skipped silently. maxRows < 0 means unlimited.
func ReadCSV(r io.Reader, maxRows int) ([]Tick, error) {
	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	cols := make([]string, len(header))
	for i, c := range header {
		cols[i] = cleanToken(c)
	}

	iDate := findCol(cols, "Date")
	iTime := findCol(cols, "Time")
	iCO := findCol(cols, "CO(GT)")
	iC6 := findCol(cols, "C6H6(GT)")
	iNOx := findCol(cols, "NOx(GT)")
	iNO2 := findCol(cols, "NO2(GT)")
	iT := findCol(cols, "T")
	iRH := findCol(cols, "RH")
	iAH := findCol(cols, "AH")

	required := []int{iDate, iTime, iCO, iC6, iNOx, iNO2, iT, iRH, iAH}
	maxIdx := -1
	for _, i := range required {
		if i < 0 {
			return nil, errMissingColumns
		}
		if i > maxIdx {
			maxIdx = i
		}
	}

	var ticks []Tick
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		if maxRows >= 0 && len(ticks) >= maxRows {
			break
		}
		if len(row) <= maxIdx {
			continue
		}

		tMin, ok := parseDatetimeToMinutes(row[iDate], row[iTime])
		if !ok {
			continue
		}

		co, ok1 := parseDecimalMaybeComma(row[iCO])
		c6, ok2 := parseDecimalMaybeComma(row[iC6])
		nox, ok3 := parseIntOrNone(row[iNOx])
		no2, ok4 := parseIntOrNone(row[iNO2])
		tt, ok5 := parseDecimalMaybeComma(row[iT])
		rh, ok6 := parseDecimalMaybeComma(row[iRH])
		ah, ok7 := parseDecimalMaybeComma(row[iAH])
		if !(ok1 && ok2 && ok3 && ok4 && ok5 && ok6 && ok7) {
			continue
		}

		ticks = append(ticks, Tick{
			TMin:    tMin,
			COx10:   int64(math.Round(co * 10)),
			C6H6x10: int64(math.Round(c6 * 10)),
			NOx:     nox,
			NO2:     no2,
			Tx10:    int64(math.Round(tt * 10)),
			RHx10:   int64(math.Round(rh * 10)),
			AHx1000: int64(math.Round(ah * 1000)),
		})
	}

	return ticks, nil
}
