package uricodec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeRune(t *testing.T) {
	tests := []struct {
		name        string
		r           rune
		expected    []byte
		expectedLen int
	}{
		{
			name:        "ASCII lowercase",
			r:           'a',
			expected:    []byte{'a'},
			expectedLen: 1,
		},
		{
			name:        "ASCII uppercase",
			r:           'A',
			expected:    []byte{'A'},
			expectedLen: 1,
		},
		{
			name:        "2-byte rune",
			r:           'ñ',
			expected:    []byte{0xC3, 0xB1},
			expectedLen: 2,
		},
		{
			name:        "3-byte rune",
			r:           '€',
			expected:    []byte{0xE2, 0x82, 0xAC},
			expectedLen: 3,
		},
		{
			name:        "4-byte rune",
			r:           '😀',
			expected:    []byte{0xF0, 0x9F, 0x98, 0x80},
			expectedLen: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := make([]byte, 4)
			n := encodeRune(buf, tt.r)
			assert.Equal(t, tt.expectedLen, n)
			assert.Equal(t, tt.expected, buf[:n])
		})
	}
}

func TestDecodeRune(t *testing.T) {
	tests := []struct {
		name        string
		s           string
		expected    rune
		expectedLen int
		expectedOK  bool
	}{
		{
			name:        "ASCII character",
			s:           "a",
			expected:    'a',
			expectedLen: 1,
			expectedOK:  true,
		},
		{
			name:        "2-byte rune",
			s:           "ñ",
			expected:    'ñ',
			expectedLen: 2,
			expectedOK:  true,
		},
		{
			name:        "3-byte rune",
			s:           "€",
			expected:    '€',
			expectedLen: 3,
			expectedOK:  true,
		},
		{
			name:        "4-byte rune",
			s:           "😀",
			expected:    '😀',
			expectedLen: 4,
			expectedOK:  true,
		},
		{
			name:        "Highest valid code point",
			s:           "\xF4\x8F\xBF\xBF",
			expected:    0x10FFFF,
			expectedLen: 4,
			expectedOK:  true,
		},
		{
			name:       "Truncated 2-byte sequence",
			s:          "\xC3",
			expectedOK: false,
		},
		{
			name:       "Truncated 3-byte sequence",
			s:          "\xE2\x82",
			expectedOK: false,
		},
		{
			name:       "Lone continuation byte",
			s:          "\x80",
			expectedOK: false,
		},
		{
			name:       "Overlong 2-byte encoding",
			s:          "\xC0\x80",
			expectedOK: false,
		},
		{
			name:       "Overlong 3-byte encoding",
			s:          "\xE0\x9F\xBF",
			expectedOK: false,
		},
		{
			name:       "Overlong 4-byte encoding",
			s:          "\xF0\x8F\xBF\xBF",
			expectedOK: false,
		},
		{
			name:       "UTF-16 surrogate half",
			s:          "\xED\xA0\x80",
			expectedOK: false,
		},
		{
			name:       "Code point above U+10FFFF",
			s:          "\xF4\x90\x80\x80",
			expectedOK: false,
		},
		{
			name:       "Invalid lead byte 0xF5",
			s:          "\xF5\x80\x80\x80",
			expectedOK: false,
		},
		{
			name:       "Empty input",
			s:          "",
			expectedOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, n, ok := decodeRune(tt.s)
			assert.Equal(t, tt.expectedOK, ok)
			if tt.expectedOK {
				assert.Equal(t, tt.expected, r)
				assert.Equal(t, tt.expectedLen, n)
			}
		})
	}
}

func TestRunePrimitivesRoundTrip(t *testing.T) {
	runes := []rune{'a', 'Z', '~', 'ñ', '€', '漢', '😀', 0x10FFFF}

	for _, r := range runes {
		buf := make([]byte, 4)
		n := encodeRune(buf, r)

		decoded, size, ok := decodeRune(string(buf[:n]))
		assert.True(t, ok, "encodeRune output for %U should decode", r)
		assert.Equal(t, r, decoded)
		assert.Equal(t, n, size)
	}
}
