// Package endian provides byte order utilities for binary encoding and
// decoding of GeoPackage geometry blobs.
//
// This package extends Go's standard encoding/binary package by combining
// ByteOrder and AppendByteOrder interfaces into a unified EndianEngine
// interface. The GeoPackage geometry blob format (and the WKB it wraps)
// is little-endian only; the header codec threads GetLittleEndianEngine()
// through every encode/decode call so the byte-order choice lives in one
// place rather than being hand-rolled inline.
//
// # Basic Usage
//
//	import "github.com/geopkg-go/geopkg/endian"
//
//	engine := endian.GetLittleEndianEngine()
//	buf = engine.AppendUint32(buf, srsID)
//
// # Performance
//
// Using EndianEngine (which includes AppendByteOrder) avoids an
// intermediate allocation compared to ByteOrder alone:
//
//	// Using EndianEngine (recommended)
//	buf = engine.AppendUint64(buf, value)
//
//	// Using ByteOrder only
//	tmp := make([]byte, 8)
//	engine.PutUint64(tmp, value)
//	buf = append(buf, tmp...) // extra allocation
//
// # Thread Safety
//
// All functions in this package are safe for concurrent use. The
// returned EndianEngine instances are immutable and stateless.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from
// encoding/binary into a single interface for convenient byte order
// operations. Satisfied by binary.LittleEndian and binary.BigEndian.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine. This is the
// only byte order the GeoPackage geometry blob format produces or
// accepts; a blob whose byte-order bit selects big-endian is rejected
// by the header codec rather than decoded with this engine's counterpart.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine. The header codec
// does not use it: it rejects a big-endian blob from the byte-order
// bit alone.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
