// Package case01 implements the STAR codec for fixed-point OHLCV bars:
// daily (or otherwise dated) open/high/low/close/volume rows, delta-chained
// and run-length compressed, with a block-boundary anchor index and a
// seek-replay engine.
package case01

// Bar is one OHLCV row: six signed integer fields, a day count followed by
// four fixed-point prices and a volume.
//
// Days is days since 1970-01-01; Open/High/Low/Close are prices scaled by
// the file's price_scale (typically 100, i.e. integer cents); Vol is integer
// volume. Bar is a frozen value type compared with == for round-trip
// verification.
type Bar struct {
	Days  int64
	Open  int64
	High  int64
	Low   int64
	Close int64
	Vol   int64
}

// fields returns the bar's six values in wire order, for delta computation
// and block encoding.
func (b Bar) fields() [6]int64 {
	return [6]int64{b.Days, b.Open, b.High, b.Low, b.Close, b.Vol}
}

func barFromFields(f []int64) Bar {
	return Bar{Days: f[0], Open: f[1], High: f[2], Low: f[3], Close: f[4], Vol: f[5]}
}

func addFields(a Bar, delta []int64) Bar {
	return Bar{
		Days:  a.Days + delta[0],
		Open:  a.Open + delta[1],
		High:  a.High + delta[2],
		Low:   a.Low + delta[3],
		Close: a.Close + delta[4],
		Vol:   a.Vol + delta[5],
	}
}

func subFields(b, a Bar) []int64 {
	bf, af := b.fields(), a.fields()
	d := make([]int64, 6)
	for i := range d {
		d[i] = bf[i] - af[i]
	}

	return d
}

// Width is the number of delta fields per row, used by internal/deltablock.
const Width = 6
