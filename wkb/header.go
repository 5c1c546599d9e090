package wkb

import (
	"sync"

	"github.com/geopkg-go/geopkg/endian"
	"github.com/geopkg-go/geopkg/errs"
)

// HeaderSize is the fixed length of the magic/version/flags/srs prefix
// that begins every GeoPackage geometry blob.
const HeaderSize = 8

const (
	magicG  = 'G'
	magicP  = 'P'
	version = 0
)

// Flags byte bit layout (header byte offset 3).
const (
	byteOrderBit  = 0
	envelopeShift = 1
	envelopeMask  = 0b0000_1110
	emptyBit      = 4
)

// EnvelopeCode identifies which axes, if any, an encoded envelope
// covers. Values 5-7 are reserved by the format and are rejected by
// DecodeHeader rather than mapped to a best guess.
type EnvelopeCode uint8

const (
	EnvelopeNone EnvelopeCode = 0
	EnvelopeXY   EnvelopeCode = 1
	EnvelopeXYZ  EnvelopeCode = 2
	EnvelopeXYM  EnvelopeCode = 3
	EnvelopeXYZM EnvelopeCode = 4
)

var envelopeByteLen = [...]int{
	EnvelopeNone: 0,
	EnvelopeXY:   32,
	EnvelopeXYZ:  48,
	EnvelopeXYM:  48,
	EnvelopeXYZM: 64,
}

// EnvelopeByteLen reports the number of envelope bytes that follow the
// header for code, and whether code is one of the five defined values.
func EnvelopeByteLen(code EnvelopeCode) (int, bool) {
	if int(code) >= len(envelopeByteLen) {
		return 0, false
	}
	return envelopeByteLen[code], true
}

// Header is the parsed form of a blob's 8-byte prefix.
type Header struct {
	SRSID        int32
	Empty        bool
	EnvelopeCode EnvelopeCode
}

var leEngine = endian.GetLittleEndianEngine()

type headerMemoKey struct {
	srsID int32
	empty bool
	code  EnvelopeCode
}

// headerMemoCapacity bounds the memo so that a workload cycling through
// many distinct SRS ids can't grow it without limit; the handful of
// combinations a real table actually uses will stay resident.
const headerMemoCapacity = 64

type headerMemo struct {
	mu      sync.Mutex
	entries map[headerMemoKey][]byte
}

func (m *headerMemo) get(key headerMemoKey) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.entries[key]
	return b, ok
}

func (m *headerMemo) put(key headerMemoKey, b []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.entries) >= headerMemoCapacity {
		m.entries = make(map[headerMemoKey][]byte, headerMemoCapacity)
	}
	m.entries[key] = b
}

var defaultHeaderMemo = &headerMemo{entries: make(map[headerMemoKey][]byte, headerMemoCapacity)}

// EncodeHeader produces the 8-byte magic/version/flags/srs sequence for
// h. The byte order flag is always set to little-endian: this package
// never writes a big-endian blob. Encodings are memoized on
// (SRSID, Empty, EnvelopeCode) since a table inserts the same handful
// of combinations over and over.
func EncodeHeader(h Header) []byte {
	key := headerMemoKey{h.SRSID, h.Empty, h.EnvelopeCode}
	if cached, ok := defaultHeaderMemo.get(key); ok {
		out := make([]byte, HeaderSize)
		copy(out, cached)
		return out
	}

	buf := make([]byte, HeaderSize)
	buf[0], buf[1], buf[2] = magicG, magicP, version

	flags := byte(1) << byteOrderBit
	flags |= byte(h.EnvelopeCode) << envelopeShift
	if h.Empty {
		flags |= 1 << emptyBit
	}
	buf[3] = flags

	leEngine.PutUint32(buf[4:8], uint32(h.SRSID))

	cached := make([]byte, HeaderSize)
	copy(cached, buf)
	defaultHeaderMemo.put(key, cached)

	return buf
}

// DecodeHeader parses the 8-byte header prefix of data. bodyOffset is
// the absolute offset at which the envelope (if any) ends and the WKB
// body begins: HeaderSize plus the envelope's byte length.
func DecodeHeader(data []byte) (h Header, bodyOffset int, err error) {
	if len(data) < HeaderSize {
		return Header{}, 0, errs.AtOffset(0, errs.ErrTruncated)
	}
	if data[0] != magicG || data[1] != magicP || data[2] != version {
		return Header{}, 0, errs.AtOffset(0, errs.ErrMalformedHeader)
	}

	flags := data[3]
	if flags&(1<<byteOrderBit) == 0 {
		return Header{}, 0, errs.AtOffset(3, errs.ErrMalformedHeader)
	}

	code := EnvelopeCode((flags & envelopeMask) >> envelopeShift)
	envLen, ok := EnvelopeByteLen(code)
	if !ok {
		return Header{}, 0, errs.AtOffset(3, errs.ErrUnsupportedEnvelopeCode)
	}

	h = Header{
		SRSID:        int32(leEngine.Uint32(data[4:8])),
		Empty:        (flags>>emptyBit)&1 == 1,
		EnvelopeCode: code,
	}
	return h, HeaderSize + envLen, nil
}
