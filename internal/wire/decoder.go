package wire

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/goodnatureofminers/txlens7000/internal/model"
)

const (
	witnessMarker = 0x00
	witnessFlag   = 0x01

	// Minimum serialized sizes (txid+vout+empty script+sequence, and
	// value+empty script), used to bound count prefixes against the
	// remaining buffer before allocating.
	minTxInLen  = 32 + 4 + 1 + 4
	minTxOutLen = 8 + 1
)

// DecodeHex trims surrounding whitespace, decodes the hex text and
// decodes the resulting bytes as one transaction.
func DecodeHex(s string) (*model.Transaction, error) {
	raw, err := hex.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidHex, err)
	}
	return Decode(raw)
}

// Decode parses raw as one complete transaction. The buffer must contain
// exactly one transaction: extra bytes after the lock time fail with
// ErrTrailingData. Decode never returns a partial result.
func Decode(raw []byte) (*model.Transaction, error) {
	c := newCursor(raw)
	tx := &model.Transaction{}

	version, err := c.readUint32("version")
	if err != nil {
		return nil, err
	}
	tx.Version = int32(version)

	// A zero byte where the input count belongs signals the segwit
	// marker/flag pair. Only flag 0x01 is defined; a zero marker with any
	// other flag is an encoding this decoder does not support.
	if b0, b1, ok := c.peek2(); ok && b0 == witnessMarker {
		if b1 != witnessFlag {
			return nil, fmt.Errorf("marker 0x%02x flag 0x%02x: %w", b0, b1, ErrUnsupportedEncoding)
		}
		c.skip(2)
		tx.HasWitness = true
	}

	inputCount, err := readCompactSize(c, "input count")
	if err != nil {
		return nil, err
	}
	if inputCount > uint64(c.remaining())/minTxInLen {
		return nil, fmt.Errorf("input count %d exceeds remaining %d bytes: %w", inputCount, c.remaining(), ErrTruncatedInput)
	}
	tx.Inputs = make([]model.TxIn, 0, inputCount)
	for i := uint64(0); i < inputCount; i++ {
		in, err := decodeTxIn(c, i)
		if err != nil {
			return nil, err
		}
		tx.Inputs = append(tx.Inputs, in)
	}

	outputCount, err := readCompactSize(c, "output count")
	if err != nil {
		return nil, err
	}
	if outputCount > uint64(c.remaining())/minTxOutLen {
		return nil, fmt.Errorf("output count %d exceeds remaining %d bytes: %w", outputCount, c.remaining(), ErrTruncatedInput)
	}
	tx.Outputs = make([]model.TxOut, 0, outputCount)
	for i := uint64(0); i < outputCount; i++ {
		out, err := decodeTxOut(c, i)
		if err != nil {
			return nil, err
		}
		tx.Outputs = append(tx.Outputs, out)
	}

	// Witness stacks follow input order: stack i belongs to input i.
	if tx.HasWitness {
		for i := range tx.Inputs {
			witness, err := decodeWitness(c, uint64(i))
			if err != nil {
				return nil, err
			}
			tx.Inputs[i].Witness = witness
		}
	}

	tx.LockTime, err = c.readUint32("lock time")
	if err != nil {
		return nil, err
	}

	if n := c.remaining(); n != 0 {
		return nil, fmt.Errorf("%d unconsumed bytes after lock time: %w", n, ErrTrailingData)
	}
	return tx, nil
}

func decodeTxIn(c *cursor, index uint64) (model.TxIn, error) {
	var in model.TxIn

	txid, err := c.take(32, fmt.Sprintf("input %d previous txid", index))
	if err != nil {
		return model.TxIn{}, err
	}
	copy(in.PreviousOutput.PrevTxID[:], txid)

	in.PreviousOutput.Vout, err = c.readUint32(fmt.Sprintf("input %d previous output index", index))
	if err != nil {
		return model.TxIn{}, err
	}

	scriptLen, err := readCompactSize(c, fmt.Sprintf("input %d script length", index))
	if err != nil {
		return model.TxIn{}, err
	}
	if scriptLen > uint64(c.remaining()) {
		return model.TxIn{}, fmt.Errorf("input %d script length %d exceeds remaining %d bytes: %w", index, scriptLen, c.remaining(), ErrTruncatedInput)
	}
	script, err := c.take(int(scriptLen), fmt.Sprintf("input %d script", index))
	if err != nil {
		return model.TxIn{}, err
	}
	in.ScriptSig = append([]byte(nil), script...)

	in.Sequence, err = c.readUint32(fmt.Sprintf("input %d sequence", index))
	if err != nil {
		return model.TxIn{}, err
	}
	return in, nil
}

func decodeTxOut(c *cursor, index uint64) (model.TxOut, error) {
	var out model.TxOut

	value, err := c.readUint64(fmt.Sprintf("output %d value", index))
	if err != nil {
		return model.TxOut{}, err
	}
	out.Value = value

	scriptLen, err := readCompactSize(c, fmt.Sprintf("output %d script length", index))
	if err != nil {
		return model.TxOut{}, err
	}
	if scriptLen > uint64(c.remaining()) {
		return model.TxOut{}, fmt.Errorf("output %d script length %d exceeds remaining %d bytes: %w", index, scriptLen, c.remaining(), ErrTruncatedInput)
	}
	script, err := c.take(int(scriptLen), fmt.Sprintf("output %d script", index))
	if err != nil {
		return model.TxOut{}, err
	}
	out.ScriptPubKey = append([]byte(nil), script...)
	return out, nil
}

func decodeWitness(c *cursor, input uint64) ([][]byte, error) {
	itemCount, err := readCompactSize(c, fmt.Sprintf("input %d witness item count", input))
	if err != nil {
		return nil, err
	}
	// Every item costs at least its one-byte length prefix.
	if itemCount > uint64(c.remaining()) {
		return nil, fmt.Errorf("input %d witness item count %d exceeds remaining %d bytes: %w", input, itemCount, c.remaining(), ErrTruncatedInput)
	}
	witness := make([][]byte, 0, itemCount)
	for i := uint64(0); i < itemCount; i++ {
		itemLen, err := readCompactSize(c, fmt.Sprintf("input %d witness item %d length", input, i))
		if err != nil {
			return nil, err
		}
		if itemLen > uint64(c.remaining()) {
			return nil, fmt.Errorf("input %d witness item %d length %d exceeds remaining %d bytes: %w", input, i, itemLen, c.remaining(), ErrTruncatedInput)
		}
		item, err := c.take(int(itemLen), fmt.Sprintf("input %d witness item %d", input, i))
		if err != nil {
			return nil, err
		}
		witness = append(witness, append([]byte(nil), item...))
	}
	return witness, nil
}
