// Package classify infers spend types and witness item roles from
// structural byte patterns. The wire format carries no type tag, so every
// result here is a best-effort label derived from shape alone; unusual
// but valid scripts can be mislabeled and callers must treat the labels
// as presentation hints, not consensus facts.
package classify

import "github.com/goodnatureofminers/txlens7000/internal/model"

// Control block prefixes of a taproot script-path spend (parity bit only).
const (
	taprootControlEven = 0xc0
	taprootControlOdd  = 0xc1
)

// InputType labels how an input is spent. The checks run in order and the
// first match wins; a two-item witness stack that fails the pubkey-length
// test deliberately falls through to the script-hash test.
func InputType(in model.TxIn) model.SpendType {
	if len(in.Witness) > 0 {
		count := len(in.Witness)
		last := in.Witness[count-1]

		if count == 2 {
			if l := len(in.Witness[1]); l == 33 || l == 65 {
				return model.SpendP2WPKH
			}
		}
		if count >= 2 && len(last) > 33 {
			return model.SpendP2WSH
		}
		if count == 1 {
			if l := len(in.Witness[0]); l == 64 || l == 65 {
				return model.SpendTaprootKeyPath
			}
		} else if count >= 2 && len(last) > 0 && (last[0] == taprootControlEven || last[0] == taprootControlOdd) {
			return model.SpendTaprootScriptPath
		}
		return model.SpendSegwitUnknown
	}

	if l := len(in.ScriptSig); l > 0 {
		// A signature plus compressed pubkey push lands around 107 bytes.
		if l > 100 && l < 150 {
			return model.SpendP2PKH
		}
		return model.SpendLegacy
	}

	return model.SpendUnknown
}
