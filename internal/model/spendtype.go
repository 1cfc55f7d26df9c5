package model

// SpendType labels how an input appears to be spent. The labels come from
// structural byte patterns only (the wire format carries no type tag), so
// they are best-effort and may mislabel unusual but valid scripts.
type SpendType string

const (
	SpendP2WPKH            SpendType = "pay-to-witness-public-key-hash"
	SpendP2WSH             SpendType = "pay-to-witness-script-hash"
	SpendTaprootKeyPath    SpendType = "taproot key-path spend"
	SpendTaprootScriptPath SpendType = "taproot script-path spend"
	SpendSegwitUnknown     SpendType = "segwit (unknown subtype)"
	SpendP2PKH             SpendType = "pay-to-public-key-hash (legacy)"
	SpendLegacy            SpendType = "pay-to-script-hash or other legacy"
	SpendUnknown           SpendType = "unknown"
)

// WitnessItemKind labels the inferred role of one witness stack item.
type WitnessItemKind string

const (
	WitnessEmpty          WitnessItemKind = "empty witness item"
	WitnessPublicKey      WitnessItemKind = "public key"
	WitnessSignatureDER   WitnessItemKind = "signature (DER-encoded)"
	WitnessSignatureFixed WitnessItemKind = "signature (fixed-width)"
	WitnessData           WitnessItemKind = "data"
	WitnessScriptOrData   WitnessItemKind = "script or data"
)
