package case04

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"io"
	"strings"
)

var errMissingColumns = errors.New("case04: csv header missing required columns")

var requiredColumns = []string{
	"Transaction_ID", "Sender_Address", "Receiver_Address", "Amount", "Transaction_Fee",
	"Timestamp", "Block_ID", "Mining_Pool", "Currency", "Transaction_Type", "Transaction_Status",
	"Gas_Price_Gwei",
}

var delimiterCandidates = []rune{',', '\t', ';', '|'}

// SniffDelimiter picks the field delimiter whose count is both nonzero and
// identical across the sample's lines, in preference order
// comma/tab/semicolon/pipe. It falls back to comma when no candidate is
// consistent, matching the reference dialect sniffer's comma default.
func SniffDelimiter(sample []byte) rune {
	lines := bytes.Split(sample, []byte("\n"))
	if len(lines) > 0 && len(bytes.TrimSpace(lines[len(lines)-1])) == 0 {
		lines = lines[:len(lines)-1]
	}

	for _, d := range delimiterCandidates {
		if consistentCount(lines, d) > 0 {
			return d
		}
	}

	return ','
}

func consistentCount(lines [][]byte, d rune) int {
	if len(lines) == 0 {
		return 0
	}

	want := bytes.Count(lines[0], []byte(string(d)))
	if want == 0 {
		return 0
	}

	for _, l := range lines[1:] {
		if bytes.Count(l, []byte(string(d))) != want {
			return 0
		}
	}

	return want
}

// ReadCSV parses crypto transaction rows from r, sniffing the field
// delimiter from a leading sample the way a dialect-detecting CSV reader
// would. maxRows < 0 means unlimited.
func ReadCSV(r io.Reader, maxRows int) ([]Row, error) {
	br := bufio.NewReaderSize(r, 8192)

	sample, err := br.Peek(4096)
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return nil, err
	}

	cr := csv.NewReader(br)
	cr.Comma = SniffDelimiter(sample)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	idx := make(map[string]int, len(header))
	for i, c := range header {
		idx[strings.TrimSpace(c)] = i
	}

	cols := make([]int, len(requiredColumns))
	maxIdx := -1
	for i, name := range requiredColumns {
		pos, ok := idx[name]
		if !ok {
			return nil, errMissingColumns
		}
		cols[i] = pos
		if pos > maxIdx {
			maxIdx = pos
		}
	}

	var rows []Row
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if maxRows >= 0 && len(rows) >= maxRows {
			break
		}
		if len(rec) <= maxIdx {
			continue
		}

		rows = append(rows, Row{
			TransactionID:     rec[cols[0]],
			SenderAddress:     rec[cols[1]],
			ReceiverAddress:   rec[cols[2]],
			Amount:            rec[cols[3]],
			TransactionFee:    rec[cols[4]],
			Timestamp:         rec[cols[5]],
			BlockID:           rec[cols[6]],
			MiningPool:        rec[cols[7]],
			Currency:          rec[cols[8]],
			TransactionType:   rec[cols[9]],
			TransactionStatus: rec[cols[10]],
			GasPriceGwei:      rec[cols[11]],
		})
	}

	return rows, nil
}
