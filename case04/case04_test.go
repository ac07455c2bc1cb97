package case04_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starcodec/star/case04"
	"github.com/starcodec/star/format"
)

func sampleRows() []case04.Row {
	return []case04.Row{
		{
			TransactionID: "tx1", SenderAddress: "a1", ReceiverAddress: "b1", Amount: "1.5",
			TransactionFee: "0.01", Timestamp: "2024-01-01T00:00:00Z", BlockID: "100",
			MiningPool: "F2Pool", Currency: "BTC", TransactionType: "transfer", TransactionStatus: "confirmed",
			GasPriceGwei: "12",
		},
		{
			TransactionID: "tx2", SenderAddress: "a2", ReceiverAddress: "b2", Amount: "0.002",
			TransactionFee: "0.0001", Timestamp: "2024-01-01T00:05:00Z", BlockID: "101",
			MiningPool: "AntPool", Currency: "ETH", TransactionType: "swap", TransactionStatus: "pending",
			GasPriceGwei: "30",
		},
		{
			TransactionID: "tx3", SenderAddress: "a3", ReceiverAddress: "b3", Amount: "10",
			TransactionFee: "0.5", Timestamp: "2024-01-01T00:10:00Z", BlockID: "102",
			MiningPool: "F2Pool", Currency: "BTC", TransactionType: "transfer", TransactionStatus: "confirmed",
			GasPriceGwei: "11",
		},
	}
}

func TestRoundTripDictionaryCoding(t *testing.T) {
	rows := sampleRows()
	out := case04.Encode(rows)
	assert.Equal(t, format.Case04, format.SniffMagic(out))

	decoded, err := case04.Decode(out)
	require.NoError(t, err)
	assert.Equal(t, rows, decoded)
}

func TestEncodeEmptyRows(t *testing.T) {
	out := case04.Encode(nil)
	decoded, err := case04.Decode(out)
	require.NoError(t, err)
	assert.Empty(t, decoded)
}

func TestDecodeBadMagic(t *testing.T) {
	_, err := case04.Decode([]byte("short"))
	require.Error(t, err)
}

func TestReadCSVSniffsDelimiterAndMapsColumns(t *testing.T) {
	header := "Transaction_ID,Sender_Address,Receiver_Address,Amount,Transaction_Fee,Timestamp,Block_ID,Mining_Pool,Currency,Transaction_Type,Transaction_Status,Gas_Price_Gwei"
	row := "tx1,a1,b1,1.5,0.01,2024-01-01T00:00:00Z,100,F2Pool,BTC,transfer,confirmed,12"
	csv := header + "\n" + row + "\n"

	rows, err := case04.ReadCSV(strings.NewReader(csv), -1)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "tx1", rows[0].TransactionID)
	assert.Equal(t, "F2Pool", rows[0].MiningPool)
}

func TestReadCSVMissingColumnsErrors(t *testing.T) {
	csv := "Transaction_ID,Sender_Address\ntx1,a1\n"
	_, err := case04.ReadCSV(strings.NewReader(csv), -1)
	require.Error(t, err)
}

func TestIndexReplayProjection(t *testing.T) {
	rows := make([]case04.Row, 500)
	for i := range rows {
		rows[i] = case04.Row{
			TransactionID: fmt.Sprintf("tx%d", i), MiningPool: "F2Pool", Currency: "BTC",
			TransactionType: "transfer", TransactionStatus: "confirmed",
		}
	}

	star := case04.Encode(rows)
	idx, err := case04.BuildIndex(star, 1, 64)
	require.NoError(t, err)

	row := uint32(200)
	out, err := case04.Replay(star, idx, case04.SeekRequest{SeekRow: &row, Rows: 3})
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, int64(200), out[0].Row)
	assert.Equal(t, int64(202), out[2].Row)
}

func TestIndexRowCountMatchesBlob(t *testing.T) {
	rows := sampleRows()
	star := case04.Encode(rows)

	n, err := case04.RowCount(star)
	require.NoError(t, err)
	assert.Equal(t, len(rows), n)
}
