package classify

import (
	"fmt"

	"github.com/goodnatureofminers/txlens7000/internal/model"
)

// WitnessItemKind labels one witness stack item by its byte length.
func WitnessItemKind(length int) model.WitnessItemKind {
	switch {
	case length == 0:
		return model.WitnessEmpty
	case length == 33 || length == 65:
		return model.WitnessPublicKey
	case length >= 70 && length <= 73:
		return model.WitnessSignatureDER
	case length == 64:
		return model.WitnessSignatureFixed
	case length >= 1 && length <= 75:
		return model.WitnessData
	case length > 100:
		return model.WitnessScriptOrData
	default:
		return model.WitnessData
	}
}

// WitnessItemLabel renders the kind for display, carrying the byte count
// for the data-like kinds.
func WitnessItemLabel(item []byte) string {
	kind := WitnessItemKind(len(item))
	switch kind {
	case model.WitnessData, model.WitnessScriptOrData:
		return fmt.Sprintf("%s (%d bytes)", kind, len(item))
	default:
		return string(kind)
	}
}
