// Package endian provides the byte order engines used by gutil writers,
// readers and frames.
//
// An EndianEngine is the union of encoding/binary's ByteOrder and
// AppendByteOrder, so one value can both patch fixed offsets (PutUint16)
// and grow a slice (AppendUint16).
//
// gutil's wire format is network order, so most callers want:
//
//	engine := endian.Default()
//	engine.PutUint32(buf[cursor:], uint32(v))
//
// Little-endian is available for peers that expect host order on x86/ARM:
//
//	engine := endian.GetLittleEndianEngine()
//
// All engines are immutable and safe for concurrent use.
package endian

import "encoding/binary"

// EndianEngine combines binary.ByteOrder and binary.AppendByteOrder.
//
// binary.BigEndian and binary.LittleEndian both satisfy it.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// Default returns the engine used when no byte order is configured: big-endian.
func Default() EndianEngine {
	return binary.BigEndian
}

// GetBigEndianEngine returns the big-endian (network order) engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// IsLittleEndian reports whether engine writes the least significant byte first.
func IsLittleEndian(engine EndianEngine) bool {
	var sample [2]byte
	engine.PutUint16(sample[:], 0x0102)

	return sample[0] == 0x02
}
