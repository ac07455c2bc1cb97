package case03

import "bytes"

// SplitLines splits raw file bytes into lines the way universal newline
// splitting does: it recognizes "\r\n", "\n", and "\r" as line terminators
// and drops the terminator bytes from each returned line. A trailing
// terminator does not produce a final empty line; a file with no trailing
// terminator still yields its last line.
func SplitLines(raw []byte) [][]byte {
	var lines [][]byte

	start := 0
	for i := 0; i < len(raw); i++ {
		switch raw[i] {
		case '\n':
			lines = append(lines, raw[start:i])
			start = i + 1
		case '\r':
			lines = append(lines, raw[start:i])
			if i+1 < len(raw) && raw[i+1] == '\n' {
				i++
			}
			start = i + 1
		}
	}
	if start < len(raw) {
		lines = append(lines, raw[start:])
	}

	return lines
}

// ReadLines splits raw into a header line and its following data lines,
// truncating the data lines to maxRows when maxRows >= 0. It returns a nil
// header and no data lines for an empty input.
func ReadLines(raw []byte, maxRows int) (header []byte, dataLines [][]byte) {
	lines := SplitLines(raw)
	if len(lines) == 0 {
		return nil, nil
	}

	header = lines[0]
	dataLines = lines[1:]
	if maxRows >= 0 && len(dataLines) > maxRows {
		dataLines = dataLines[:maxRows]
	}

	return header, dataLines
}

// JoinLines is the inverse of SplitLines for callers that need to
// reconstruct a text blob from decoded lines, using "\n" as the separator
// regardless of the source file's original line-ending convention.
func JoinLines(header []byte, lines [][]byte) []byte {
	return bytes.Join(append([][]byte{header}, lines...), []byte("\n"))
}
