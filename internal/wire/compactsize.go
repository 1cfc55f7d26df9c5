package wire

import "encoding/binary"

// readCompactSize decodes the self-describing unsigned integer encoding:
// a value below 0xfd is the prefix byte itself, otherwise the prefix
// selects a 2, 4 or 8 byte little-endian payload.
//
// Non-minimal encodings (for example 5 written in the 3-byte form) are
// accepted unchanged. The reference implementation this mirrors shares
// that leniency, and the re-serializer always emits the minimal form, so
// round-tripping canonicalizes such values.
func readCompactSize(c *cursor, field string) (uint64, error) {
	prefix, err := c.readByte(field)
	if err != nil {
		return 0, err
	}
	switch prefix {
	case 0xfd:
		v, err := c.readUint16(field)
		return uint64(v), err
	case 0xfe:
		v, err := c.readUint32(field)
		return uint64(v), err
	case 0xff:
		return c.readUint64(field)
	default:
		return uint64(prefix), nil
	}
}

// appendCompactSize appends the minimal encoding of v.
func appendCompactSize(buf []byte, v uint64) []byte {
	switch {
	case v < 0xfd:
		return append(buf, byte(v))
	case v <= 0xffff:
		buf = append(buf, 0xfd)
		return binary.LittleEndian.AppendUint16(buf, uint16(v))
	case v <= 0xffffffff:
		buf = append(buf, 0xfe)
		return binary.LittleEndian.AppendUint32(buf, uint32(v))
	default:
		buf = append(buf, 0xff)
		return binary.LittleEndian.AppendUint64(buf, v)
	}
}

// compactSizeLen returns the encoded length of v in minimal form.
func compactSizeLen(v uint64) int {
	switch {
	case v < 0xfd:
		return 1
	case v <= 0xffff:
		return 3
	case v <= 0xffffffff:
		return 5
	default:
		return 9
	}
}
