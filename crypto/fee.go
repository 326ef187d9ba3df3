package crypto

// Bitcoin transaction size estimate in bytes (legacy P2PKH shapes)
const (
	TxInputBytes    = 148
	TxOutputBytes   = 34
	TxOverheadBytes = 10
)

// DefaultSatPerByte is the fallback fee rate in satoshis per byte
const DefaultSatPerByte = 10.0

// TransactionSize estimates the serialized size in bytes of a Bitcoin
// transaction with the given number of inputs and outputs
func TransactionSize(inputs, outputs int) int {
	return inputs*TxInputBytes + outputs*TxOutputBytes + TxOverheadBytes
}

// TransactionFee estimates the fee in BTC for a transaction at a
// sat/byte rate. A transaction needs at least one input and one
// output; invalid shapes return 0.
func TransactionFee(inputs, outputs int, satPerByte float64) float64 {
	if inputs <= 0 || outputs <= 0 {
		return 0
	}

	feeSatoshis := float64(TransactionSize(inputs, outputs)) * satPerByte
	return feeSatoshis / 100000000.0
}
