// Package wkb implements the GeoPackage geometry blob envelope and
// primitive codec: the 8-byte header, the optional envelope region,
// and the little-endian WKB coordinate primitives the geometry types in
// package geom encode into and decode out of.
//
// # Blob layout
//
// A GeoPackage geometry blob is:
//
//	header(8 bytes) | envelope(0/32/48/48/64 bytes) | WKB body
//
// DecodeHeader reports where the envelope ends and the WKB body begins:
//
//	h, bodyOffset, err := wkb.DecodeHeader(data)
//	env, err := wkb.DecodeEnvelope(h.EnvelopeCode, data[wkb.HeaderSize:bodyOffset])
//
// # Byte order
//
// This package produces and accepts little-endian blobs only; a
// big-endian byte-order bit in the header is a MalformedHeader error,
// never silently accepted (spec P8).
package wkb
