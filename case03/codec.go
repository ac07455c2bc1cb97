package case03

import (
	"fmt"

	"github.com/starcodec/star/errs"
	"github.com/starcodec/star/format"
	"github.com/starcodec/star/internal/pool"
	"github.com/starcodec/star/varint"
)

// Encode packs header followed by lines into a STAR03 blob. Each line is
// stored as a front-coded record against the immediately preceding line
// (the header line itself is never front-coded, and the first data line is
// front-coded against an empty predecessor).
func Encode(header []byte, lines [][]byte) []byte {
	buf := pool.Get()
	defer pool.Put(buf)

	buf.Write(format.MagicCase03)
	buf.Write(varint.AppendUvarint(nil, uint64(len(header))))
	buf.Write(header)

	prev := []byte(nil)
	for _, cur := range lines {
		p := commonPrefixLen(prev, cur)
		suffix := cur[p:]

		buf.Write(varint.AppendUvarint(nil, uint64(p)))
		buf.Write(varint.AppendUvarint(nil, uint64(len(suffix))))
		buf.Write(suffix)

		prev = cur
	}

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())
	return out
}

func commonPrefixLen(prev, cur []byte) int {
	m := len(prev)
	if len(cur) < m {
		m = len(cur)
	}
	p := 0
	for p < m && prev[p] == cur[p] {
		p++
	}
	return p
}

// Decode unpacks a STAR03 blob into its header line and data lines. There is
// no stored row count: decoding consumes records until the buffer is
// exhausted.
func Decode(data []byte) (header []byte, lines [][]byte, err error) {
	if !hasMagic(data) {
		return nil, nil, fmt.Errorf("case03: %w", errs.ErrBadMagic)
	}
	pos := len(format.MagicCase03)

	hLen, adv, err := varint.Uvarint(data[pos:])
	if err != nil {
		return nil, nil, fmt.Errorf("case03: header length: %w", err)
	}
	pos += adv

	if uint64(len(data)-pos) < hLen {
		return nil, nil, fmt.Errorf("case03: header: %w", errs.ErrTruncatedBody)
	}
	header = data[pos : pos+int(hLen)]
	pos += int(hLen)

	var prev []byte
	for pos < len(data) {
		p, adv, err := varint.Uvarint(data[pos:])
		if err != nil {
			return nil, nil, fmt.Errorf("case03: prefix length: %w", err)
		}
		pos += adv

		sLen, adv, err := varint.Uvarint(data[pos:])
		if err != nil {
			return nil, nil, fmt.Errorf("case03: suffix length: %w", err)
		}
		pos += adv

		if p > uint64(len(prev)) || uint64(len(data)-pos) < sLen {
			return nil, nil, fmt.Errorf("case03: record: %w", errs.ErrTruncatedBody)
		}

		line := make([]byte, p, p+sLen)
		copy(line, prev[:p])
		line = append(line, data[pos:pos+int(sLen)]...)
		pos += int(sLen)

		lines = append(lines, line)
		prev = line
	}

	return header, lines, nil
}

func hasMagic(data []byte) bool {
	if len(data) < len(format.MagicCase03) {
		return false
	}
	for i, b := range format.MagicCase03 {
		if data[i] != b {
			return false
		}
	}
	return true
}
