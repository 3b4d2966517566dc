package uricodec

// Op selects which of the two global operations a host call targets.
type Op int

const (
	// OpEncode routes to Encode (the encodeURI global).
	OpEncode Op = iota
	// OpDecode routes to Decode (the decodeURI global).
	OpDecode
)

// Call routes one host-level invocation to the encoder or decoder.
//
// arg is the raw first argument: nil means the argument was absent or not
// representable as text, and the call yields no result (ok=false) - a
// distinct outcome from the empty string. An empty textual argument returns
// "" with ok=true immediately, without running either transform. Decode
// failures surface as ok=false with a non-nil error.
func Call(op Op, arg *string) (result string, ok bool, err error) {
	if arg == nil {
		return "", false, nil
	}
	if len(*arg) == 0 {
		return "", true, nil
	}

	if op == OpDecode {
		result, err = Decode(*arg)
		if err != nil {
			return "", false, err
		}
		return result, true, nil
	}
	return Encode(*arg), true, nil
}

// EncodeArg is Call(OpEncode, arg) without the error return that encoding
// can never produce.
func EncodeArg(arg *string) (string, bool) {
	result, ok, _ := Call(OpEncode, arg)
	return result, ok
}

// DecodeArg is Call(OpDecode, arg).
func DecodeArg(arg *string) (string, bool, error) {
	return Call(OpDecode, arg)
}
