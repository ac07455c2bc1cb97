package dispatch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starcodec/star/case01"
	"github.com/starcodec/star/dispatch"
	"github.com/starcodec/star/format"
)

func TestClassifyKnownCase(t *testing.T) {
	blob := case01.Encode(nil, case01.DefaultPriceScale)
	c, err := dispatch.Classify(blob)
	require.NoError(t, err)
	assert.Equal(t, format.Case01, c)
}

func TestClassifyUnknown(t *testing.T) {
	_, err := dispatch.Classify([]byte("totally not a star blob"))
	require.Error(t, err)
}

func TestIndexMagicFor(t *testing.T) {
	m, err := dispatch.IndexMagicFor(format.Case04)
	require.NoError(t, err)
	assert.Equal(t, format.IndexMagicCase04, m)

	_, err = dispatch.IndexMagicFor(format.CaseUnknown)
	require.Error(t, err)
}
