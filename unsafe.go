package uricodec

import "unsafe"

// unsafeBytesToString converts []byte to string without allocation
// SAFE to use here because:
// 1. The bytes are freshly assembled scratch output, stable while the view is alive
// 2. We only use this for the read-only UTF-8 validation pass in DecodeInto
func unsafeBytesToString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return *(*string)(unsafe.Pointer(&b))
}
