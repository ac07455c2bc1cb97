package case04

// Row is one crypto transaction record. Every field keeps its source CSV
// text verbatim: amounts, fees, and gas prices are stored as literal
// strings rather than parsed numbers, so no precision or formatting is
// lost on the round trip.
type Row struct {
	TransactionID     string
	SenderAddress     string
	ReceiverAddress   string
	Amount            string
	TransactionFee    string
	Timestamp         string
	BlockID           string
	MiningPool        string
	Currency          string
	TransactionType   string
	TransactionStatus string
	GasPriceGwei      string
}

// dictColumns names the four categorical fields encoded as dictionaries,
// in the fixed order they appear in the wire format.
var dictColumns = [4]string{"Mining_Pool", "Currency", "Transaction_Type", "Transaction_Status"}

func (r Row) dictValue(i int) string {
	switch i {
	case 0:
		return r.MiningPool
	case 1:
		return r.Currency
	case 2:
		return r.TransactionType
	default:
		return r.TransactionStatus
	}
}

func setDictValue(r *Row, i int, v string) {
	switch i {
	case 0:
		r.MiningPool = v
	case 1:
		r.Currency = v
	case 2:
		r.TransactionType = v
	default:
		r.TransactionStatus = v
	}
}
