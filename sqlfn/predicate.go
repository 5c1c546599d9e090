package sqlfn

import (
	"math"

	"github.com/geopkg-go/geopkg/geom"
	"github.com/geopkg-go/geopkg/internal/hash"
	"github.com/geopkg-go/geopkg/wkb"
)

const emptyFlagBit = 4

// IsEmpty implements ST_IsEmpty: null if blob is null, else the blob's
// empty flag as 0 or 1. It reads only the first four header bytes
// (magic, version, flags) and never touches the cache, since there is nothing to share with the bounds
// functions.
func IsEmpty(blob []byte) any {
	if blob == nil {
		return nil
	}
	if len(blob) < wkb.HeaderSize {
		return nil
	}
	if blob[0] != 'G' || blob[1] != 'P' || blob[2] != 0 {
		return nil
	}
	return int64((blob[3] >> emptyFlagBit) & 1)
}

// MinX implements ST_MinX.
func (c *Cache) MinX(blob []byte) any { return c.axis(blob, func(b bounds) float64 { return b.minX }) }

// MaxX implements ST_MaxX.
func (c *Cache) MaxX(blob []byte) any { return c.axis(blob, func(b bounds) float64 { return b.maxX }) }

// MinY implements ST_MinY.
func (c *Cache) MinY(blob []byte) any { return c.axis(blob, func(b bounds) float64 { return b.minY }) }

// MaxY implements ST_MaxY.
func (c *Cache) MaxY(blob []byte) any { return c.axis(blob, func(b bounds) float64 { return b.maxY }) }

func (c *Cache) axis(blob []byte, pick func(bounds) float64) any {
	if blob == nil {
		return nil
	}
	b, ok := c.boundsOf(blob)
	if !ok {
		return nil
	}
	v := pick(b)
	if math.IsNaN(v) {
		return nil
	}
	return v
}

// boundsOf implements the §4.6 algorithm: prefer the header envelope,
// fall back to a Point's own coordinates, fall back to a full decode
// and its materialized envelope. Any failure along the way yields
// ok=false (the caller returns SQL null), never an error.
func (c *Cache) boundsOf(blob []byte) (bounds, bool) {
	key := hash.Blob(blob)
	if b, ok := c.get(key); ok {
		return b, true
	}

	h, bodyOffset, err := wkb.DecodeHeader(blob)
	if err != nil {
		return bounds{}, false
	}

	if len(blob) < bodyOffset {
		return bounds{}, false
	}
	if h.EnvelopeCode != wkb.EnvelopeNone {
		env, err := wkb.DecodeEnvelope(h.EnvelopeCode, blob[wkb.HeaderSize:bodyOffset])
		if err != nil {
			return bounds{}, false
		}
		b := bounds{env.MinX, env.MaxX, env.MinY, env.MaxY}
		c.put(key, b)
		return b, true
	}

	if len(blob) < bodyOffset+wkb.WKBPrefixSize {
		return bounds{}, false
	}
	typeCode, err := wkb.DecodeWKBPrefix(blob[bodyOffset:])
	if err != nil {
		return bounds{}, false
	}

	kind, hasZ, hasM, ok := geom.KindForTypeCode(typeCode)
	if !ok {
		return bounds{}, false
	}

	var b bounds
	if kind == geom.KindPoint {
		coord, _, err := wkb.UnpackPointBody(blob[bodyOffset+wkb.WKBPrefixSize:], hasZ, hasM)
		if err != nil {
			return bounds{}, false
		}
		b = bounds{coord.X, coord.X, coord.Y, coord.Y}
	} else {
		g, err := geom.DecodeAny(blob)
		if err != nil {
			return bounds{}, false
		}
		env, err := g.Envelope()
		if err != nil {
			return bounds{}, false
		}
		b = bounds{env.MinX, env.MaxX, env.MinY, env.MaxY}
	}

	c.put(key, b)
	return b, true
}
