package wire

import (
	"bytes"
	"encoding/hex"
	"errors"
	"reflect"
	"testing"

	"github.com/goodnatureofminers/txlens7000/internal/model"
)

// Legacy single-input two-output transaction, 226 bytes.
const legacyTxHex = "0100000001c997a5e56e104102fa209c6a852dd90660a20b2d9c352423edce25857fcd3704000000006b48304502210085e06b2d9e8cd4f2e88e60f5d4a69ff8e28fad7e8aecb8ab5c4ab34e3c42f044022028de87e6bb9dab5c6b8a88e4c8ef11b3d7d35a36e38ec4ba41c15d5b6e8713580121035ddc8e7f9e1e8f6b7b5f1b8c0b3e1e5d9e9f8b0b1b1b1b1b1b1b1b1b1b1b1b1bffffffff0200e1f505000000001976a914ab68025513c3dbd2f7b92a94e0581f5d50f654e788acd0ef8100000000001976a9148d1c5f69c46a73328b5f23f82a2de5e6b50e1e7588ac00000000"

func legacyTxBytes(t *testing.T) []byte {
	t.Helper()
	raw, err := hex.DecodeString(legacyTxHex)
	if err != nil {
		t.Fatalf("bad test vector: %v", err)
	}
	return raw
}

// filled returns n bytes starting with first, padded with a repeating pattern.
func filled(first byte, n int) []byte {
	b := make([]byte, n)
	b[0] = first
	for i := 1; i < n; i++ {
		b[i] = byte(i)
	}
	return b
}

// witnessTx is a hand-built single-input transaction spending a witness
// output: empty script sig, two-item witness stack (72-byte signature,
// 33-byte pubkey), one 22-byte program output.
func witnessTx() *model.Transaction {
	tx := &model.Transaction{
		Version:    2,
		HasWitness: true,
		LockTime:   650_000,
		Inputs: []model.TxIn{{
			Sequence: 0xfffffffe,
			Witness:  [][]byte{filled(0x30, 72), filled(0x02, 33)},
		}},
		Outputs: []model.TxOut{{
			Value:        54_321,
			ScriptPubKey: append([]byte{0x00, 0x14}, filled(0xaa, 20)...),
		}},
	}
	copy(tx.Inputs[0].PreviousOutput.PrevTxID[:], filled(0x11, 32))
	tx.Inputs[0].PreviousOutput.Vout = 1
	return tx
}

func TestDecodeLegacyTransaction(t *testing.T) {
	tx, err := DecodeHex(legacyTxHex)
	if err != nil {
		t.Fatalf("DecodeHex() error = %v", err)
	}

	if tx.Version != 1 {
		t.Errorf("Version = %d, want 1", tx.Version)
	}
	if tx.HasWitness {
		t.Error("HasWitness = true, want false")
	}
	if tx.LockTime != 0 {
		t.Errorf("LockTime = %d, want 0", tx.LockTime)
	}
	if len(tx.Inputs) != 1 || len(tx.Outputs) != 2 {
		t.Fatalf("got %d inputs, %d outputs, want 1 and 2", len(tx.Inputs), len(tx.Outputs))
	}

	in := tx.Inputs[0]
	// chainhash prints the txid byte-reversed relative to wire order.
	if got, want := in.PreviousOutput.PrevTxID.String(), "0437cd7f8525ceed2324359c2d0ba26006d92d856a9c20fa0241106ee5a597c9"; got != want {
		t.Errorf("PrevTxID = %s, want %s", got, want)
	}
	if in.PreviousOutput.Vout != 0 {
		t.Errorf("Vout = %d, want 0", in.PreviousOutput.Vout)
	}
	if len(in.ScriptSig) != 107 {
		t.Errorf("ScriptSig length = %d, want 107", len(in.ScriptSig))
	}
	if in.Sequence != 0xffffffff {
		t.Errorf("Sequence = %#x, want 0xffffffff", in.Sequence)
	}
	if len(in.Witness) != 0 {
		t.Errorf("Witness length = %d, want 0", len(in.Witness))
	}

	if tx.Outputs[0].Value != 100_000_000 {
		t.Errorf("output 0 value = %d, want 100000000", tx.Outputs[0].Value)
	}
	if tx.Outputs[1].Value != 8_515_536 {
		t.Errorf("output 1 value = %d, want 8515536", tx.Outputs[1].Value)
	}
	for i, out := range tx.Outputs {
		if len(out.ScriptPubKey) != 25 {
			t.Errorf("output %d script length = %d, want 25", i, len(out.ScriptPubKey))
		}
	}
}

func TestDecodeHexTrimsWhitespace(t *testing.T) {
	if _, err := DecodeHex("  \t" + legacyTxHex + "\n"); err != nil {
		t.Fatalf("DecodeHex() with surrounding whitespace error = %v", err)
	}
}

func TestDecodeHexInvalidHex(t *testing.T) {
	_, err := DecodeHex("not_valid_hex")
	if !errors.Is(err, ErrInvalidHex) {
		t.Fatalf("DecodeHex() error = %v, want ErrInvalidHex", err)
	}
}

func TestDecodeHexWellFormedButTooShort(t *testing.T) {
	// Valid hex, but far too short to hold a transaction: this must be a
	// decode failure, not a hex failure.
	_, err := DecodeHex("deadbeef")
	if errors.Is(err, ErrInvalidHex) {
		t.Fatalf("DecodeHex(deadbeef) classified as invalid hex: %v", err)
	}
	if !errors.Is(err, ErrTruncatedInput) {
		t.Fatalf("DecodeHex(deadbeef) error = %v, want ErrTruncatedInput", err)
	}
}

func TestDecodeUnsupportedWitnessFlag(t *testing.T) {
	for _, flag := range []byte{0x00, 0x02, 0xff} {
		raw := []byte{0x01, 0x00, 0x00, 0x00, 0x00, flag}
		_, err := Decode(raw)
		if !errors.Is(err, ErrUnsupportedEncoding) {
			t.Errorf("flag %#x: error = %v, want ErrUnsupportedEncoding", flag, err)
		}
	}
}

func TestDecodeTrailingData(t *testing.T) {
	raw := append(legacyTxBytes(t), 0x00)
	_, err := Decode(raw)
	if !errors.Is(err, ErrTrailingData) {
		t.Fatalf("Decode() with extra byte error = %v, want ErrTrailingData", err)
	}
}

func TestDecodeEveryTruncationFails(t *testing.T) {
	raw := legacyTxBytes(t)
	for cut := 0; cut < len(raw); cut++ {
		_, err := Decode(raw[:cut])
		if err == nil {
			t.Fatalf("Decode() of %d-byte prefix unexpectedly succeeded", cut)
		}
		if !errors.Is(err, ErrTruncatedInput) && !errors.Is(err, ErrTrailingData) {
			t.Fatalf("Decode() of %d-byte prefix error = %v, want truncated or trailing", cut, err)
		}
	}
}

func TestDecodeCountBoundsCheck(t *testing.T) {
	tests := []struct {
		name string
		raw  []byte
	}{
		{
			name: "input count exceeds buffer",
			raw:  []byte{0x01, 0x00, 0x00, 0x00, 0xfd, 0xff, 0xff},
		},
		{
			name: "output count exceeds buffer",
			raw: []byte{
				0x01, 0x00, 0x00, 0x00, // version
				0x01, // one input
				0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x11,
				0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x11,
				0x00, 0x00, 0x00, 0x00, // vout
				0x00,                   // empty script
				0xff, 0xff, 0xff, 0xff, // sequence
				0xfe, 0xff, 0xff, 0xff, 0xff, // absurd output count
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.raw)
			if !errors.Is(err, ErrTruncatedInput) {
				t.Fatalf("Decode() error = %v, want ErrTruncatedInput", err)
			}
		})
	}
}

func TestDecodeWitnessTransaction(t *testing.T) {
	want := witnessTx()
	raw := serialize(want, true)

	got, err := Decode(raw)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if !got.HasWitness {
		t.Fatal("HasWitness = false, want true")
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Decode() got = %#v, want %#v", got, want)
	}
}

func TestRoundTrip(t *testing.T) {
	t.Run("legacy", func(t *testing.T) {
		raw := legacyTxBytes(t)
		tx, err := Decode(raw)
		if err != nil {
			t.Fatalf("Decode() error = %v", err)
		}
		if out := serialize(tx, tx.HasWitness); !bytes.Equal(out, raw) {
			t.Fatalf("serialize() differs from original encoding\n got %x\nwant %x", out, raw)
		}
	})

	t.Run("witness", func(t *testing.T) {
		raw := serialize(witnessTx(), true)
		tx, err := Decode(raw)
		if err != nil {
			t.Fatalf("Decode() error = %v", err)
		}
		again, err := Decode(serialize(tx, tx.HasWitness))
		if err != nil {
			t.Fatalf("second Decode() error = %v", err)
		}
		if !reflect.DeepEqual(again, tx) {
			t.Fatalf("round trip changed the transaction\n got %#v\nwant %#v", again, tx)
		}
	})

	t.Run("non-minimal counts canonicalized", func(t *testing.T) {
		raw := legacyTxBytes(t)
		// Re-encode the single-byte input count 0x01 in the 3-byte form.
		widened := append([]byte(nil), raw[:4]...)
		widened = append(widened, 0xfd, 0x01, 0x00)
		widened = append(widened, raw[5:]...)

		tx, err := Decode(widened)
		if err != nil {
			t.Fatalf("Decode() of widened encoding error = %v", err)
		}
		if out := serialize(tx, tx.HasWitness); !bytes.Equal(out, raw) {
			t.Fatalf("serialize() did not emit minimal form\n got %x\nwant %x", out, raw)
		}
	})
}

func TestDecodeEmptyWitnessStack(t *testing.T) {
	tx := witnessTx()
	tx.Inputs[0].Witness = [][]byte{}
	raw := serialize(tx, true)

	got, err := Decode(raw)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if len(got.Inputs[0].Witness) != 0 {
		t.Fatalf("Witness length = %d, want 0", len(got.Inputs[0].Witness))
	}
	if !got.HasWitness {
		t.Fatal("HasWitness = false, want true")
	}
}
