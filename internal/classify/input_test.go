package classify

import (
	"testing"

	"github.com/goodnatureofminers/txlens7000/internal/model"
)

func item(first byte, n int) []byte {
	b := make([]byte, n)
	if n > 0 {
		b[0] = first
	}
	return b
}

func TestInputType(t *testing.T) {
	tests := []struct {
		name      string
		witness   [][]byte
		scriptSig []byte
		want      model.SpendType
	}{
		{
			name:    "p2wpkh signature and compressed key",
			witness: [][]byte{item(0x30, 72), item(0x02, 33)},
			want:    model.SpendP2WPKH,
		},
		{
			name:    "p2wpkh uncompressed key",
			witness: [][]byte{item(0x30, 71), item(0x04, 65)},
			want:    model.SpendP2WPKH,
		},
		{
			name:    "two items falling through to script hash",
			witness: [][]byte{item(0x30, 72), item(0x51, 40)},
			want:    model.SpendP2WSH,
		},
		{
			name:    "multisig script hash",
			witness: [][]byte{{}, item(0x30, 72), item(0x30, 71), item(0x52, 105)},
			want:    model.SpendP2WSH,
		},
		{
			name:    "taproot key path",
			witness: [][]byte{item(0xab, 64)},
			want:    model.SpendTaprootKeyPath,
		},
		{
			name:    "taproot key path with sighash byte",
			witness: [][]byte{item(0xab, 65)},
			want:    model.SpendTaprootKeyPath,
		},
		{
			name:    "taproot script path even control block",
			witness: [][]byte{item(0xab, 64), item(0x51, 5), item(0xc0, 33)},
			want:    model.SpendTaprootScriptPath,
		},
		{
			name:    "taproot script path odd control block",
			witness: [][]byte{item(0x51, 5), item(0xc1, 20)},
			want:    model.SpendTaprootScriptPath,
		},
		{
			name:    "single short item is unclassified segwit",
			witness: [][]byte{item(0x00, 10)},
			want:    model.SpendSegwitUnknown,
		},
		{
			name:    "two short items without control block",
			witness: [][]byte{item(0x01, 5), item(0x02, 6)},
			want:    model.SpendSegwitUnknown,
		},
		{
			name:      "legacy p2pkh script sig",
			scriptSig: item(0x48, 107),
			want:      model.SpendP2PKH,
		},
		{
			name:      "legacy boundary 100 is not p2pkh",
			scriptSig: item(0x48, 100),
			want:      model.SpendLegacy,
		},
		{
			name:      "legacy boundary 150 is not p2pkh",
			scriptSig: item(0x48, 150),
			want:      model.SpendLegacy,
		},
		{
			name:      "short legacy script",
			scriptSig: item(0x00, 23),
			want:      model.SpendLegacy,
		},
		{
			name: "no script and no witness",
			want: model.SpendUnknown,
		},
		{
			name:      "witness wins over script sig",
			witness:   [][]byte{item(0x30, 72), item(0x02, 33)},
			scriptSig: item(0x48, 107),
			want:      model.SpendP2WPKH,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := model.TxIn{Witness: tt.witness, ScriptSig: tt.scriptSig}
			if got := InputType(in); got != tt.want {
				t.Errorf("InputType() = %q, want %q", got, tt.want)
			}
		})
	}
}
