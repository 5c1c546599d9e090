package wkb

import (
	"math"

	"github.com/geopkg-go/geopkg/errs"
)

// Coord is a single coordinate tuple. Z and M are ignored when the
// owning geometry's kind has no Z or M axis, and the decoders leave
// them zero; callers that know the dimensionality pass hasZ/hasM
// alongside Coord slices rather than inspecting these fields.
type Coord struct {
	X, Y, Z, M float64
}

// Envelope is an axis-aligned bounding box. Unused axes (Z, M, or both)
// carry NaN. EmptyEnvelope is the sentinel for "no envelope": all
// fields NaN, Code EnvelopeNone.
type Envelope struct {
	Code EnvelopeCode
	MinX float64
	MaxX float64
	MinY float64
	MaxY float64
	MinZ float64
	MaxZ float64
	MinM float64
	MaxM float64
}

// EmptyEnvelope is the envelope value for an absent or empty geometry.
var EmptyEnvelope = Envelope{
	Code: EnvelopeNone,
	MinX: math.NaN(), MaxX: math.NaN(),
	MinY: math.NaN(), MaxY: math.NaN(),
	MinZ: math.NaN(), MaxZ: math.NaN(),
	MinM: math.NaN(), MaxM: math.NaN(),
}

func nanEqual(a, b float64) bool {
	if a == b {
		return true
	}
	return math.IsNaN(a) && math.IsNaN(b)
}

// Equal compares two envelopes field by field, treating NaN as equal
// to NaN so that EmptyEnvelope.Equal(EmptyEnvelope) holds.
func (e Envelope) Equal(o Envelope) bool {
	return e.Code == o.Code &&
		nanEqual(e.MinX, o.MinX) && nanEqual(e.MaxX, o.MaxX) &&
		nanEqual(e.MinY, o.MinY) && nanEqual(e.MaxY, o.MaxY) &&
		nanEqual(e.MinZ, o.MinZ) && nanEqual(e.MaxZ, o.MaxZ) &&
		nanEqual(e.MinM, o.MinM) && nanEqual(e.MaxM, o.MaxM)
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func codeFor(hasZ, hasM bool) EnvelopeCode {
	switch {
	case hasZ && hasM:
		return EnvelopeXYZM
	case hasZ:
		return EnvelopeXYZ
	case hasM:
		return EnvelopeXYM
	default:
		return EnvelopeXY
	}
}

// EnvelopeFromCoords computes the tight axis-aligned envelope of
// coords. An empty slice yields EmptyEnvelope.
func EnvelopeFromCoords(coords []Coord, hasZ, hasM bool) Envelope {
	if len(coords) == 0 {
		return EmptyEnvelope
	}

	first := coords[0]
	env := Envelope{
		Code: codeFor(hasZ, hasM),
		MinX: first.X, MaxX: first.X,
		MinY: first.Y, MaxY: first.Y,
		MinZ: math.NaN(), MaxZ: math.NaN(),
		MinM: math.NaN(), MaxM: math.NaN(),
	}
	if hasZ {
		env.MinZ, env.MaxZ = first.Z, first.Z
	}
	if hasM {
		env.MinM, env.MaxM = first.M, first.M
	}

	for _, c := range coords[1:] {
		env.MinX, env.MaxX = minF(env.MinX, c.X), maxF(env.MaxX, c.X)
		env.MinY, env.MaxY = minF(env.MinY, c.Y), maxF(env.MaxY, c.Y)
		if hasZ {
			env.MinZ, env.MaxZ = minF(env.MinZ, c.Z), maxF(env.MaxZ, c.Z)
		}
		if hasM {
			env.MinM, env.MaxM = minF(env.MinM, c.M), maxF(env.MaxM, c.M)
		}
	}

	return env
}

// EnvelopeFromSub merges the envelopes of an aggregate's direct
// sub-geometries (e.g. the LineString envelopes making up a
// MultiLineString), skipping any that are EnvelopeNone. If every
// sub-envelope is EnvelopeNone the result is EmptyEnvelope.
func EnvelopeFromSub(envs []Envelope) Envelope {
	out := EmptyEnvelope
	haveAny := false
	haveZ := false
	haveM := false

	for _, e := range envs {
		if e.Code == EnvelopeNone {
			continue
		}
		if !haveAny {
			out.MinX, out.MaxX = e.MinX, e.MaxX
			out.MinY, out.MaxY = e.MinY, e.MaxY
			haveAny = true
		} else {
			out.MinX, out.MaxX = minF(out.MinX, e.MinX), maxF(out.MaxX, e.MaxX)
			out.MinY, out.MaxY = minF(out.MinY, e.MinY), maxF(out.MaxY, e.MaxY)
		}

		if !math.IsNaN(e.MinZ) {
			if !haveZ {
				out.MinZ, out.MaxZ = e.MinZ, e.MaxZ
				haveZ = true
			} else {
				out.MinZ, out.MaxZ = minF(out.MinZ, e.MinZ), maxF(out.MaxZ, e.MaxZ)
			}
		}
		if !math.IsNaN(e.MinM) {
			if !haveM {
				out.MinM, out.MaxM = e.MinM, e.MaxM
				haveM = true
			} else {
				out.MinM, out.MaxM = minF(out.MinM, e.MinM), maxF(out.MaxM, e.MaxM)
			}
		}
	}

	if !haveAny {
		return EmptyEnvelope
	}
	out.Code = codeFor(haveZ, haveM)
	return out
}

func packDoubles(vals ...float64) []byte {
	buf := make([]byte, 8*len(vals))
	for i, v := range vals {
		leEngine.PutUint64(buf[i*8:i*8+8], math.Float64bits(v))
	}
	return buf
}

// EncodeEnvelope serializes env's in-range axes as LE doubles, in the
// fixed minX,maxX,minY,maxY[,minZ,maxZ][,minM,maxM] order. The returned
// code is env.Code; for EnvelopeNone the byte slice is nil.
func EncodeEnvelope(env Envelope) (EnvelopeCode, []byte) {
	switch env.Code {
	case EnvelopeNone:
		return EnvelopeNone, nil
	case EnvelopeXY:
		return EnvelopeXY, packDoubles(env.MinX, env.MaxX, env.MinY, env.MaxY)
	case EnvelopeXYZ:
		return EnvelopeXYZ, packDoubles(env.MinX, env.MaxX, env.MinY, env.MaxY, env.MinZ, env.MaxZ)
	case EnvelopeXYM:
		return EnvelopeXYM, packDoubles(env.MinX, env.MaxX, env.MinY, env.MaxY, env.MinM, env.MaxM)
	case EnvelopeXYZM:
		return EnvelopeXYZM, packDoubles(env.MinX, env.MaxX, env.MinY, env.MaxY, env.MinZ, env.MaxZ, env.MinM, env.MaxM)
	default:
		return EnvelopeNone, nil
	}
}

// DecodeEnvelope parses the envelope region following the header,
// whose length and layout are determined by code.
func DecodeEnvelope(code EnvelopeCode, data []byte) (Envelope, error) {
	need, ok := EnvelopeByteLen(code)
	if !ok {
		return Envelope{}, errs.ErrUnsupportedEnvelopeCode
	}
	if code == EnvelopeNone {
		return EmptyEnvelope, nil
	}
	if len(data) < need {
		return Envelope{}, errs.AtOffset(HeaderSize, errs.ErrTruncated)
	}

	vals := make([]float64, need/8)
	for i := range vals {
		vals[i] = math.Float64frombits(leEngine.Uint64(data[i*8 : i*8+8]))
	}

	env := Envelope{
		Code: code,
		MinX: vals[0], MaxX: vals[1],
		MinY: vals[2], MaxY: vals[3],
		MinZ: math.NaN(), MaxZ: math.NaN(),
		MinM: math.NaN(), MaxM: math.NaN(),
	}
	switch code {
	case EnvelopeXYZ:
		env.MinZ, env.MaxZ = vals[4], vals[5]
	case EnvelopeXYM:
		env.MinM, env.MaxM = vals[4], vals[5]
	case EnvelopeXYZM:
		env.MinZ, env.MaxZ = vals[4], vals[5]
		env.MinM, env.MaxM = vals[6], vals[7]
	}
	return env, nil
}
