// Package case02 implements the STAR codec for heterogeneous fixed-point
// air-quality sensor ticks, an 8-field analogue of case01's codec, sharing
// the tag-0/tag-1 block scheme via internal/deltablock.
package case02

// Width is the number of delta fields per row.
const Width = 8

// Tick is one air-quality sensor reading: eight signed fixed-point fields.
//
// TMin is minutes since 1970-01-01 00:00. The remaining fields are
// fixed-point sensor readings scaled as named (x10 or x1000) at CSV parse
// time; NOx/NO2 are already integers in the source dataset.
type Tick struct {
	TMin    int64
	COx10   int64
	C6H6x10 int64
	NOx     int64
	NO2     int64
	Tx10    int64
	RHx10   int64
	AHx1000 int64
}

func (t Tick) fields() [Width]int64 {
	return [Width]int64{t.TMin, t.COx10, t.C6H6x10, t.NOx, t.NO2, t.Tx10, t.RHx10, t.AHx1000}
}

func tickFromFields(f []int64) Tick {
	return Tick{
		TMin: f[0], COx10: f[1], C6H6x10: f[2], NOx: f[3],
		NO2: f[4], Tx10: f[5], RHx10: f[6], AHx1000: f[7],
	}
}

func addTickFields(a Tick, delta []int64) Tick {
	af := a.fields()
	out := make([]int64, Width)
	for i := range out {
		out[i] = af[i] + delta[i]
	}

	return tickFromFields(out)
}

func subTickFields(b, a Tick) []int64 {
	bf, af := b.fields(), a.fields()
	d := make([]int64, Width)
	for i := range d {
		d[i] = bf[i] - af[i]
	}

	return d
}
