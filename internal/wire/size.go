package wire

import (
	"encoding/binary"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/txlens7000/internal/model"
)

// Metrics carries the derived size figures for one decoded transaction.
// All figures are recomputed from the structured fields with minimal
// CompactSize emission, not taken from the original buffer.
type Metrics struct {
	// BaseSize is the serialized length without marker/flag and witness data.
	BaseSize uint64
	// TotalSize is the serialized length including witness data when present.
	TotalSize uint64
	// Weight is BaseSize*3 + TotalSize, in weight units.
	Weight uint64
	// VirtualSize is ceil(Weight/4), in virtual bytes.
	VirtualSize uint64
}

// SizeMetrics derives base size, total size, weight and virtual size.
// Sizes are bounded by the decoded input length, so uint64 arithmetic
// cannot overflow for any transaction that fit in memory.
func SizeMetrics(tx *model.Transaction) Metrics {
	base := uint64(serializedLen(tx, false))
	total := base
	if tx.HasWitness {
		total = uint64(serializedLen(tx, true))
	}
	weight := base*3 + total
	return Metrics{
		BaseSize:    base,
		TotalSize:   total,
		Weight:      weight,
		VirtualSize: (weight + 3) / 4,
	}
}

// Txid is the double SHA-256 of the base serialization. chainhash.Hash
// formats it byte-reversed, the conventional display order.
func Txid(tx *model.Transaction) chainhash.Hash {
	return chainhash.DoubleHashH(serialize(tx, false))
}

// WTxid is the double SHA-256 of the full serialization. It equals Txid
// for transactions without witness data.
func WTxid(tx *model.Transaction) chainhash.Hash {
	if !tx.HasWitness {
		return Txid(tx)
	}
	return chainhash.DoubleHashH(serialize(tx, true))
}

// serialize re-encodes the transaction with minimal CompactSize prefixes.
// It exists for size derivation and txid hashing only; the module offers
// no public re-encoding API.
func serialize(tx *model.Transaction, withWitness bool) []byte {
	buf := make([]byte, 0, serializedLen(tx, withWitness))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(tx.Version))
	if withWitness {
		buf = append(buf, witnessMarker, witnessFlag)
	}
	buf = appendCompactSize(buf, uint64(len(tx.Inputs)))
	for i := range tx.Inputs {
		in := &tx.Inputs[i]
		buf = append(buf, in.PreviousOutput.PrevTxID[:]...)
		buf = binary.LittleEndian.AppendUint32(buf, in.PreviousOutput.Vout)
		buf = appendCompactSize(buf, uint64(len(in.ScriptSig)))
		buf = append(buf, in.ScriptSig...)
		buf = binary.LittleEndian.AppendUint32(buf, in.Sequence)
	}
	buf = appendCompactSize(buf, uint64(len(tx.Outputs)))
	for i := range tx.Outputs {
		out := &tx.Outputs[i]
		buf = binary.LittleEndian.AppendUint64(buf, out.Value)
		buf = appendCompactSize(buf, uint64(len(out.ScriptPubKey)))
		buf = append(buf, out.ScriptPubKey...)
	}
	if withWitness {
		for i := range tx.Inputs {
			witness := tx.Inputs[i].Witness
			buf = appendCompactSize(buf, uint64(len(witness)))
			for _, item := range witness {
				buf = appendCompactSize(buf, uint64(len(item)))
				buf = append(buf, item...)
			}
		}
	}
	return binary.LittleEndian.AppendUint32(buf, tx.LockTime)
}

func serializedLen(tx *model.Transaction, withWitness bool) int {
	n := 4 + 4 // version + lock time
	if withWitness {
		n += 2
	}
	n += compactSizeLen(uint64(len(tx.Inputs)))
	for i := range tx.Inputs {
		in := &tx.Inputs[i]
		n += 32 + 4 + compactSizeLen(uint64(len(in.ScriptSig))) + len(in.ScriptSig) + 4
	}
	n += compactSizeLen(uint64(len(tx.Outputs)))
	for i := range tx.Outputs {
		out := &tx.Outputs[i]
		n += 8 + compactSizeLen(uint64(len(out.ScriptPubKey))) + len(out.ScriptPubKey)
	}
	if withWitness {
		for i := range tx.Inputs {
			witness := tx.Inputs[i].Witness
			n += compactSizeLen(uint64(len(witness)))
			for _, item := range witness {
				n += compactSizeLen(uint64(len(item))) + len(item)
			}
		}
	}
	return n
}
