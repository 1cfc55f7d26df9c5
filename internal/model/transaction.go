// Package model holds the decoded transaction value types.
package model

import "github.com/btcsuite/btcd/chaincfg/chainhash"

// LockTimeThreshold splits lock time semantics: values below it are block
// heights, values at or above it are Unix timestamps.
const LockTimeThreshold = 500_000_000

// Transaction is the structured form of one raw transaction. It is built
// atomically by the decoder and never mutated afterwards; derived metrics
// and classifications are pure functions over it.
type Transaction struct {
	Version    int32
	Inputs     []TxIn
	Outputs    []TxOut
	LockTime   uint32
	HasWitness bool
}

// OutPoint references the output being spent. PrevTxID holds the 32 txid
// bytes in wire order; chainhash.Hash prints them byte-reversed, matching
// the conventional display form.
type OutPoint struct {
	PrevTxID chainhash.Hash
	Vout     uint32
}

// TxIn is one transaction input. Witness is empty for inputs that carry
// no witness data.
type TxIn struct {
	PreviousOutput OutPoint
	ScriptSig      []byte
	Sequence       uint32
	Witness        [][]byte
}

// TxOut is one transaction output. Value counts satoshis.
type TxOut struct {
	Value        uint64
	ScriptPubKey []byte
}

// LockTimeIsBlockHeight reports whether the lock time field names a block
// height rather than a Unix timestamp.
func (t *Transaction) LockTimeIsBlockHeight() bool {
	return t.LockTime < LockTimeThreshold
}

// TotalOutputValue sums output values in satoshis.
func (t *Transaction) TotalOutputValue() uint64 {
	var total uint64
	for _, out := range t.Outputs {
		total += out.Value
	}
	return total
}
