package geom

import (
	"github.com/geopkg-go/geopkg/errs"
	"github.com/geopkg-go/geopkg/internal/pool"
	"github.com/geopkg-go/geopkg/wkb"
)

// Geometry is satisfied by every variant: the Point value type and the
// five pointer aggregate types. Envelope and Encode return an error for
// the five lazily-decoded aggregates: both may trigger the deferred
// materialization of a body that turns out truncated or over-counted,
// the one way a value returned successfully from a Decode* call can
// still fail later.
type Geometry interface {
	SRID() int32
	Kind() GeometryKind
	HasZ() bool
	HasM() bool
	IsEmpty() bool
	Envelope() (wkb.Envelope, error)
	Encode() ([]byte, error)
}

// decodeHeaderAndEnvelope reads a blob's header and envelope region, returning
// the SRID, whether the blob-level empty flag is set, the decoded
// envelope (nil if the blob carries none), and the offset at which the
// WKB body begins.
func decodeHeaderAndEnvelope(data []byte) (srid int32, empty bool, env *wkb.Envelope, bodyOffset int, err error) {
	h, bodyOffset, err := wkb.DecodeHeader(data)
	if err != nil {
		return 0, false, nil, 0, err
	}
	if len(data) < bodyOffset {
		return 0, false, nil, 0, errs.AtOffset(wkb.HeaderSize, errs.ErrTruncated)
	}
	if h.EnvelopeCode != wkb.EnvelopeNone {
		e, err := wkb.DecodeEnvelope(h.EnvelopeCode, data[wkb.HeaderSize:bodyOffset])
		if err != nil {
			return 0, false, nil, 0, errs.AtOffset(wkb.HeaderSize, err)
		}
		env = &e
	}
	return h.SRSID, h.Empty, env, bodyOffset, nil
}

// checkPrefix reads the 5-byte WKB prefix at the start of body and
// confirms it names the expected (kind, hasZ, hasM) variant.
func checkPrefix(body []byte, kind GeometryKind, hasZ, hasM bool) error {
	wantCode, err := typeCodeFor(kind, hasZ, hasM)
	if err != nil {
		return err
	}
	gotCode, err := wkb.DecodeWKBPrefix(body)
	if err != nil {
		return err
	}
	if gotCode != wantCode {
		return errs.ErrWrongGeometryType
	}
	return nil
}

// encodeHeaderAndEnvelope is the shared §4.4 step: build the header+envelope
// prefix for an encoded blob. Point variants call it with forceNone
// true (singletons always omit their envelope).
func encodeHeaderAndEnvelope(buf *pool.ByteBuffer, srid int32, empty bool, env wkb.Envelope, forceNone bool) {
	code := env.Code
	var envBytes []byte
	if forceNone || empty {
		code = wkb.EnvelopeNone
	} else {
		code, envBytes = wkb.EncodeEnvelope(env)
	}
	buf.MustWrite(wkb.EncodeHeader(wkb.Header{SRSID: srid, Empty: empty, EnvelopeCode: code}))
	if len(envBytes) > 0 {
		buf.MustWrite(envBytes)
	}
}

func cloneBytes(data []byte) []byte {
	out := make([]byte, len(data))
	copy(out, data)
	return out
}
