package model

const (
	sequenceDisableFlag = 1 << 31
	sequenceTypeFlag    = 1 << 22
	sequenceValueMask   = 0xffff
)

// RelativeLockTime is the relative lock encoded in a sequence number.
// When Seconds is true the value counts 512-second intervals, otherwise
// it counts blocks.
type RelativeLockTime struct {
	Seconds bool
	Value   uint16
}

// RelativeLockTimeFromSequence decodes the relative lock time carried by
// a sequence number. It reports false when the top bit disables relative
// lock semantics.
func RelativeLockTimeFromSequence(sequence uint32) (RelativeLockTime, bool) {
	if sequence&sequenceDisableFlag != 0 {
		return RelativeLockTime{}, false
	}
	return RelativeLockTime{
		Seconds: sequence&sequenceTypeFlag != 0,
		Value:   uint16(sequence & sequenceValueMask),
	}, true
}
