package case04

import (
	"encoding/binary"
	"fmt"

	"github.com/starcodec/star/errs"
	"github.com/starcodec/star/format"
	"github.com/starcodec/star/internal/pool"
	"github.com/starcodec/star/varint"
)

// NumCols is the fixed column count this codec writes into the header,
// kept as a sanity check against blobs from other writers rather than a
// quantity this implementation ever varies.
const NumCols = 12

func buildDict(rows []Row, col int) (codes map[string]uint32, values []string) {
	codes = make(map[string]uint32)
	for _, r := range rows {
		v := r.dictValue(col)
		if _, ok := codes[v]; !ok {
			codes[v] = uint32(len(values))
			values = append(values, v)
		}
	}
	return codes, values
}

func writeStr(buf *pool.Buffer, s string) {
	buf.Write(varint.AppendUvarint(nil, uint64(len(s))))
	buf.Write([]byte(s))
}

// Encode packs rows into a STAR4 blob: a dictionary table for the four
// categorical columns in first-occurrence order, followed by one record
// per row referencing those dictionaries by uvarint code.
func Encode(rows []Row) []byte {
	var dictCodes [4]map[string]uint32
	var dictValues [4][]string
	for i := 0; i < 4; i++ {
		dictCodes[i], dictValues[i] = buildDict(rows, i)
	}

	buf := pool.Get()
	defer pool.Put(buf)

	buf.Write(format.MagicCase04)

	var hdr [8]byte
	binary.LittleEndian.PutUint32(hdr[0:4], uint32(len(rows)))
	binary.LittleEndian.PutUint32(hdr[4:8], NumCols)
	buf.Write(hdr[:])

	for i := 0; i < 4; i++ {
		var n [4]byte
		binary.LittleEndian.PutUint32(n[:], uint32(len(dictValues[i])))
		buf.Write(n[:])

		for _, s := range dictValues[i] {
			var l [4]byte
			binary.LittleEndian.PutUint32(l[:], uint32(len(s)))
			buf.Write(l[:])
			buf.Write([]byte(s))
		}
	}

	for _, r := range rows {
		writeStr(buf, r.TransactionID)
		writeStr(buf, r.SenderAddress)
		writeStr(buf, r.ReceiverAddress)
		writeStr(buf, r.Amount)
		writeStr(buf, r.TransactionFee)
		writeStr(buf, r.Timestamp)
		writeStr(buf, r.BlockID)

		for i := 0; i < 4; i++ {
			buf.Write(varint.AppendUvarint(nil, uint64(dictCodes[i][r.dictValue(i)])))
		}

		writeStr(buf, r.GasPriceGwei)
	}

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())
	return out
}

func readStr(data []byte, pos int) (string, int, error) {
	n, adv, err := varint.Uvarint(data[pos:])
	if err != nil {
		return "", 0, err
	}
	pos += adv

	if uint64(len(data)-pos) < n {
		return "", 0, errs.ErrTruncatedBody
	}

	return string(data[pos : pos+int(n)]), pos + int(n), nil
}

// Decode unpacks a complete STAR4 blob into its row sequence.
func Decode(data []byte) ([]Row, error) {
	if len(data) < len(format.MagicCase04)+8 {
		return nil, fmt.Errorf("case04: %w", errs.ErrTruncatedBody)
	}
	for i, b := range format.MagicCase04 {
		if data[i] != b {
			return nil, fmt.Errorf("case04: %w", errs.ErrBadMagic)
		}
	}

	pos := len(format.MagicCase04)
	nRows := binary.LittleEndian.Uint32(data[pos:])
	pos += 4
	nCols := binary.LittleEndian.Uint32(data[pos:])
	pos += 4
	if nCols != NumCols {
		return nil, fmt.Errorf("case04: unexpected column count %d: %w", nCols, errs.ErrBadMagic)
	}

	var dicts [4][]string
	for i := 0; i < 4; i++ {
		if len(data) < pos+4 {
			return nil, fmt.Errorf("case04: dictionary %s: %w", dictColumns[i], errs.ErrTruncatedBody)
		}
		n := binary.LittleEndian.Uint32(data[pos:])
		pos += 4

		values := make([]string, 0, n)
		for j := uint32(0); j < n; j++ {
			if len(data) < pos+4 {
				return nil, fmt.Errorf("case04: dictionary %s: %w", dictColumns[i], errs.ErrTruncatedBody)
			}
			l := binary.LittleEndian.Uint32(data[pos:])
			pos += 4
			if uint64(len(data)-pos) < uint64(l) {
				return nil, fmt.Errorf("case04: dictionary %s: %w", dictColumns[i], errs.ErrTruncatedBody)
			}
			values = append(values, string(data[pos:pos+int(l)]))
			pos += int(l)
		}
		dicts[i] = values
	}

	rows := make([]Row, 0, nRows)
	for i := uint32(0); i < nRows; i++ {
		var r Row
		var err error

		r.TransactionID, pos, err = readStr(data, pos)
		if err != nil {
			return nil, fmt.Errorf("case04: row %d: %w", i, err)
		}
		r.SenderAddress, pos, err = readStr(data, pos)
		if err != nil {
			return nil, fmt.Errorf("case04: row %d: %w", i, err)
		}
		r.ReceiverAddress, pos, err = readStr(data, pos)
		if err != nil {
			return nil, fmt.Errorf("case04: row %d: %w", i, err)
		}
		r.Amount, pos, err = readStr(data, pos)
		if err != nil {
			return nil, fmt.Errorf("case04: row %d: %w", i, err)
		}
		r.TransactionFee, pos, err = readStr(data, pos)
		if err != nil {
			return nil, fmt.Errorf("case04: row %d: %w", i, err)
		}
		r.Timestamp, pos, err = readStr(data, pos)
		if err != nil {
			return nil, fmt.Errorf("case04: row %d: %w", i, err)
		}
		r.BlockID, pos, err = readStr(data, pos)
		if err != nil {
			return nil, fmt.Errorf("case04: row %d: %w", i, err)
		}

		for d := 0; d < 4; d++ {
			var code uint64
			var adv int
			code, adv, err = varint.Uvarint(data[pos:])
			if err != nil {
				return nil, fmt.Errorf("case04: row %d: dictionary code: %w", i, err)
			}
			pos += adv

			if code >= uint64(len(dicts[d])) {
				return nil, fmt.Errorf("case04: row %d: %w", i, errs.ErrBadRow)
			}
			setDictValue(&r, d, dicts[d][code])
		}

		r.GasPriceGwei, pos, err = readStr(data, pos)
		if err != nil {
			return nil, fmt.Errorf("case04: row %d: %w", i, err)
		}

		rows = append(rows, r)
	}

	return rows, nil
}
