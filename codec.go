package uricodec

import (
	"errors"
	"fmt"
	"sync"
)

// ErrMalformedEscape is reported by Decode and DecodeInto when a '%' is not
// followed by two hexadecimal digits, or when the reassembled byte stream is
// not valid UTF-8. Match it with errors.Is.
var ErrMalformedEscape = errors.New("uricodec: malformed escape")

const upperhex = "0123456789ABCDEF"

// Pre-computed lookup table for the mark and reserved characters that
// encodeURI leaves untouched - faster than strings.IndexByte chains
var unescapedMarkLUT = [256]bool{
	// Marks
	'-': true, '_': true, '.': true, '!': true, '~': true,
	'*': true, '\'': true, '(': true, ')': true,
	// URI-reserved punctuation
	';': true, ',': true, '/': true, '?': true, ':': true,
	'@': true, '&': true, '=': true, '+': true, '$': true, '#': true,
}

// isUnescaped reports whether c passes through the encoder literally:
// ASCII alphanumerics plus the fixed mark/reserved set above.
func isUnescaped(c byte) bool {
	if c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' {
		return true
	}
	return unescapedMarkLUT[c]
}

func ishex(c byte) bool {
	switch {
	case '0' <= c && c <= '9':
		return true
	case 'a' <= c && c <= 'f':
		return true
	case 'A' <= c && c <= 'F':
		return true
	}
	return false
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	}
	return c - 'A' + 10
}

// scratch is the reusable working buffer behind the allocating entry points
type scratch struct {
	buf []byte
}

// Zero-allocation scratch pool to reuse buffers across calls
var scratchPool = sync.Pool{
	New: func() interface{} {
		return &scratch{buf: make([]byte, 0, 512)}
	},
}

// Reset clears the scratch for reuse without allocating
func (sc *scratch) reset() {
	sc.buf = sc.buf[:0]
}

// Encode percent-escapes s the way encodeURI does: code points in the
// unescaped set pass through literally, every other code point becomes one
// '%XX' token per UTF-8 byte, upper-case hex, in byte order. Encoding is
// total - it always succeeds and returns a new ASCII string.
// This is the safest API - the result is a fresh string owned by the caller.
func Encode(s string) string {
	if len(s) == 0 {
		return ""
	}

	// Get scratch from pool to avoid allocating the working buffer
	sc := scratchPool.Get().(*scratch)
	defer func() {
		sc.reset()
		scratchPool.Put(sc)
	}()

	sc.buf = EncodeInto(sc.buf, s)
	return string(sc.buf)
}

// EncodeInto appends the encoded form of s to buf and returns the extended
// buffer. Caller owns the memory.
// This is the fastest API - zero allocations when buf has enough capacity.
func EncodeInto(buf []byte, s string) []byte {
	i := 0
	for i < len(s) {
		c := s[i]

		// Fast ASCII path - most common case
		if c < 0x80 {
			if isUnescaped(c) {
				buf = append(buf, c)
			} else {
				buf = append(buf, '%', upperhex[c>>4], upperhex[c&0xF])
			}
			i++
			continue
		}

		// Multi-byte code point - escape each UTF-8 byte in order
		r, size, ok := decodeRune(s[i:])
		if !ok {
			// Not valid UTF-8; escape the raw byte so encoding stays total
			buf = append(buf, '%', upperhex[c>>4], upperhex[c&0xF])
			i++
			continue
		}

		var utf8buf [4]byte
		n := encodeRune(utf8buf[:], r)
		for j := 0; j < n; j++ {
			b := utf8buf[j]
			buf = append(buf, '%', upperhex[b>>4], upperhex[b&0xF])
		}
		i += size
	}
	return buf
}

// Decode reverses Encode: each '%XX' token (either hex case) becomes one
// byte and the reassembled byte stream is interpreted as UTF-8. It fails
// with ErrMalformedEscape before producing any output when an escape is
// incomplete, a hex digit is invalid, or the byte stream is not valid
// UTF-8 - there is no partial result and no replacement-character fallback.
// This is the safest API - the result is a fresh string owned by the caller.
func Decode(s string) (string, error) {
	if len(s) == 0 {
		return "", nil
	}

	// Get scratch from pool to avoid allocating the working buffer
	sc := scratchPool.Get().(*scratch)
	defer func() {
		sc.reset()
		scratchPool.Put(sc)
	}()

	buf, err := DecodeInto(sc.buf, s)
	if err != nil {
		return "", err
	}
	sc.buf = buf
	return string(buf), nil
}

// DecodeInto appends the decoded form of s to buf and returns the extended
// buffer, or nil and ErrMalformedEscape. On failure buf is unchanged up to
// its original length. Caller owns the memory.
// This is the fastest API - zero allocations when buf has enough capacity.
func DecodeInto(buf []byte, s string) ([]byte, error) {
	start := len(buf)

	for i := 0; i < len(s); {
		if s[i] == '%' {
			if i+2 >= len(s) || !ishex(s[i+1]) || !ishex(s[i+2]) {
				return nil, fmt.Errorf("%w: invalid escape at offset %d", ErrMalformedEscape, i)
			}
			buf = append(buf, unhex(s[i+1])<<4|unhex(s[i+2]))
			i += 3
			continue
		}
		buf = append(buf, s[i])
		i++
	}

	// Validate the reassembled byte stream as strict UTF-8. The no-copy
	// string view is safe: the bytes are only read while it is alive.
	assembled := unsafeBytesToString(buf[start:])
	for off := 0; off < len(assembled); {
		_, size, ok := decodeRune(assembled[off:])
		if !ok {
			return nil, fmt.Errorf("%w: invalid UTF-8 at byte %d of decoded output", ErrMalformedEscape, off)
		}
		off += size
	}

	return buf, nil
}
