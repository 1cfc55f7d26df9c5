package classify

import (
	"bytes"

	"github.com/goodnatureofminers/txlens7000/internal/model"
)

// anchorScript is OP_1 followed by a push of the 2-byte program 0x4e73:
// the fixed anyone-can-spend anchor pattern used for CPFP fee bumping.
var anchorScript = []byte{0x51, 0x02, 0x4e, 0x73}

// AnchorAddress is the mainnet address of the anchor script. The pattern
// is a single fixed script, so the label is a constant rather than the
// product of address encoding.
const AnchorAddress = "bc1pfeessrawgf"

// IsAnchorOutput reports whether the output pays to the fixed anchor
// script. This is an exact byte match, not a heuristic.
func IsAnchorOutput(out model.TxOut) bool {
	return bytes.Equal(out.ScriptPubKey, anchorScript)
}
