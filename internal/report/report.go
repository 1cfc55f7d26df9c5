// Package report builds the presentation view of a decoded transaction.
// It consumes the classifiers and size metrics; it never re-derives any
// classification logic itself.
package report

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/txscript"
	"github.com/goodnatureofminers/txlens7000/internal/classify"
	"github.com/goodnatureofminers/txlens7000/internal/model"
	"github.com/goodnatureofminers/txlens7000/internal/wire"
	"github.com/goodnatureofminers/txlens7000/pkg/safe"
)

// Report is the flattened, display-ready view of one transaction.
type Report struct {
	Txid         string `json:"txid"`
	WTxid        string `json:"wtxid"`
	Version      int32  `json:"version"`
	LockTime     uint32 `json:"lock_time"`
	LockTimeKind string `json:"lock_time_kind"`
	HasWitness   bool   `json:"has_witness"`

	BaseSize    uint64 `json:"base_size"`
	TotalSize   uint64 `json:"total_size"`
	Weight      uint64 `json:"weight"`
	VirtualSize uint64 `json:"virtual_size"`

	InputCount      uint32 `json:"input_count"`
	OutputCount     uint32 `json:"output_count"`
	TotalOutputSats uint64 `json:"total_output_sats"`
	TotalOutputBTC  string `json:"total_output_btc"`

	Inputs  []Input  `json:"inputs"`
	Outputs []Output `json:"outputs"`
}

// Input is the display view of one input.
type Input struct {
	Index        uint32        `json:"index"`
	Type         string        `json:"type"`
	PrevTxid     string        `json:"prev_txid"`
	PrevVout     uint32        `json:"prev_vout"`
	ScriptSigHex string        `json:"script_sig_hex"`
	ScriptSigLen uint32        `json:"script_sig_len"`
	Sequence     uint32        `json:"sequence"`
	RelativeLock *RelativeLock `json:"relative_lock,omitempty"`
	Witness      []WitnessItem `json:"witness,omitempty"`
}

// RelativeLock is the decoded relative lock time of a sequence number.
type RelativeLock struct {
	Kind  string `json:"kind"`
	Value uint16 `json:"value"`
}

// WitnessItem is the display view of one witness stack item.
type WitnessItem struct {
	Hex   string `json:"hex"`
	Label string `json:"label"`
}

// Output is the display view of one output.
type Output struct {
	Index         uint32 `json:"index"`
	ValueSats     uint64 `json:"value_sats"`
	ValueBTC      string `json:"value_btc"`
	IsAnchor      bool   `json:"is_anchor"`
	AnchorAddress string `json:"anchor_address,omitempty"`
	ScriptLen     uint32 `json:"script_len"`
	ScriptHex     string `json:"script_hex"`
	ScriptAsm     string `json:"script_asm,omitempty"`
}

// Build assembles the report from the decoded transaction, invoking the
// classifiers per input, witness item and output.
func Build(tx *model.Transaction) (*Report, error) {
	inputCount, err := safe.Uint32(len(tx.Inputs))
	if err != nil {
		return nil, fmt.Errorf("input count overflow: %w", err)
	}
	outputCount, err := safe.Uint32(len(tx.Outputs))
	if err != nil {
		return nil, fmt.Errorf("output count overflow: %w", err)
	}

	metrics := wire.SizeMetrics(tx)
	r := &Report{
		Txid:            wire.Txid(tx).String(),
		WTxid:           wire.WTxid(tx).String(),
		Version:         tx.Version,
		LockTime:        tx.LockTime,
		LockTimeKind:    lockTimeKind(tx),
		HasWitness:      tx.HasWitness,
		BaseSize:        metrics.BaseSize,
		TotalSize:       metrics.TotalSize,
		Weight:          metrics.Weight,
		VirtualSize:     metrics.VirtualSize,
		InputCount:      inputCount,
		OutputCount:     outputCount,
		TotalOutputSats: tx.TotalOutputValue(),
		TotalOutputBTC:  formatBTC(tx.TotalOutputValue()),
		Inputs:          make([]Input, 0, len(tx.Inputs)),
		Outputs:         make([]Output, 0, len(tx.Outputs)),
	}

	for idx, in := range tx.Inputs {
		index, err := safe.Uint32(idx)
		if err != nil {
			return nil, fmt.Errorf("input index overflow: %w", err)
		}
		view := Input{
			Index:        index,
			Type:         string(classify.InputType(in)),
			PrevTxid:     in.PreviousOutput.PrevTxID.String(),
			PrevVout:     in.PreviousOutput.Vout,
			ScriptSigHex: fmt.Sprintf("%x", in.ScriptSig),
			ScriptSigLen: uint32(len(in.ScriptSig)),
			Sequence:     in.Sequence,
		}
		if rel, ok := model.RelativeLockTimeFromSequence(in.Sequence); ok {
			kind := "blocks"
			if rel.Seconds {
				kind = "512-second intervals"
			}
			view.RelativeLock = &RelativeLock{Kind: kind, Value: rel.Value}
		}
		for _, item := range in.Witness {
			view.Witness = append(view.Witness, WitnessItem{
				Hex:   fmt.Sprintf("%x", item),
				Label: classify.WitnessItemLabel(item),
			})
		}
		r.Inputs = append(r.Inputs, view)
	}

	for idx, out := range tx.Outputs {
		index, err := safe.Uint32(idx)
		if err != nil {
			return nil, fmt.Errorf("output index overflow: %w", err)
		}
		view := Output{
			Index:     index,
			ValueSats: out.Value,
			ValueBTC:  formatBTC(out.Value),
			IsAnchor:  classify.IsAnchorOutput(out),
			ScriptLen: uint32(len(out.ScriptPubKey)),
			ScriptHex: fmt.Sprintf("%x", out.ScriptPubKey),
		}
		if view.IsAnchor {
			view.AnchorAddress = classify.AnchorAddress
		}
		if asm, err := txscript.DisasmString(out.ScriptPubKey); err == nil {
			view.ScriptAsm = asm
		}
		r.Outputs = append(r.Outputs, view)
	}

	return r, nil
}

func lockTimeKind(tx *model.Transaction) string {
	if tx.LockTimeIsBlockHeight() {
		return "block height"
	}
	return "unix timestamp"
}

func formatBTC(sats uint64) string {
	return fmt.Sprintf("%.8f", btcutil.Amount(sats).ToBTC())
}
