package report_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/starcodec/star/compress"
	"github.com/starcodec/star/format"
	"github.com/starcodec/star/report"
)

func TestTableRendersHeadersAndRows(t *testing.T) {
	var buf bytes.Buffer
	report.Table(&buf, []string{"row", "t_min"}, [][]string{{"0", "0"}, {"1", "60"}})

	out := buf.String()
	assert.Contains(t, out, "ROW")
	assert.Contains(t, out, "60")
}

func TestKeyValuePrintsTitleAndPairs(t *testing.T) {
	var buf bytes.Buffer
	report.KeyValue(&buf, "Baseline:", [][2]string{{"raw file bytes", "1,234"}})

	out := buf.String()
	require := strings.Contains(out, "Baseline:") && strings.Contains(out, "1,234")
	assert.True(t, require)
}

func TestCompressionTableComputesRatios(t *testing.T) {
	var buf bytes.Buffer
	reports := []compress.Report{
		{Algorithm: format.CompressionZlib, OriginalSize: 1000, CompressedSize: 400},
	}
	report.CompressionTable(&buf, reports, 2000)

	out := buf.String()
	assert.Contains(t, out, "zlib")
	assert.Contains(t, out, "0.4000")
	assert.Contains(t, out, "0.2000")
}
