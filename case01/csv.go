package case01

import (
	"encoding/csv"
	"io"
	"math"
	"strconv"
	"strings"
	"time"
)

var epoch01 = time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)

// DaysToDate formats a day count (days since 1970-01-01) as YYYY-MM-DD.
func DaysToDate(days int64) string {
	return epoch01.AddDate(0, 0, int(days)).Format("2006-01-02")
}

// DateToDays parses a YYYY-MM-DD date string into a day count.
func DateToDays(s string) (int64, error) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}

	return int64(t.Sub(epoch01).Hours() / 24), nil
}

func parseFloatOrNone(s string) (float64, bool) {
	t := strings.TrimSpace(s)
	if t == "" {
		return 0, false
	}

	switch strings.ToLower(t) {
	case "nan", "null":
		return 0, false
	}

	f, err := strconv.ParseFloat(t, 64)
	if err != nil {
		return 0, false
	}

	return f, true
}

func parseVolume(s string) int64 {
	v := strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if v == "" {
		return 0
	}

	if strings.ContainsAny(v, ".eE") {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0
		}

		return int64(f)
	}

	i, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0
	}

	return i
}

// ReadCSV parses OHLCV bars from a CSV reader (date,open,high,low,close,volume).
//
// Rows failing type coercion (bad date, non-numeric O/H/L/C) are skipped
// silently. A header row starting with "date" or "timestamp" is skipped.
// maxRows <= 0 means unlimited.
func ReadCSV(r io.Reader, priceScale int64, maxRows int) ([]Bar, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	var bars []Bar
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		if len(row) == 0 {
			continue
		}

		switch strings.ToLower(strings.TrimSpace(row[0])) {
		case "date", "timestamp":
			continue
		}

		if len(row) < 6 {
			continue
		}

		o, ok := parseFloatOrNone(row[1])
		if !ok {
			continue
		}
		h, ok := parseFloatOrNone(row[2])
		if !ok {
			continue
		}
		l, ok := parseFloatOrNone(row[3])
		if !ok {
			continue
		}
		c, ok := parseFloatOrNone(row[4])
		if !ok {
			continue
		}

		days, err := DateToDays(row[0])
		if err != nil {
			continue
		}

		bars = append(bars, Bar{
			Days:  days,
			Open:  int64(math.Round(o * float64(priceScale))),
			High:  int64(math.Round(h * float64(priceScale))),
			Low:   int64(math.Round(l * float64(priceScale))),
			Close: int64(math.Round(c * float64(priceScale))),
			Vol:   parseVolume(row[5]),
		})

		if maxRows > 0 && len(bars) >= maxRows {
			break
		}
	}

	return bars, nil
}
