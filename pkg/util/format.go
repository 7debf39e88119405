package util

// HexBytes formats bytes as a lowercase hex string without a 0x prefix.
func HexBytes(b []byte) string {
	hex := make([]byte, len(b)*2)
	for i, v := range b {
		hex[i*2] = "0123456789abcdef"[v>>4]
		hex[i*2+1] = "0123456789abcdef"[v&0x0f]
	}
	return string(hex)
}

// Hash32Hex formats a 32-byte value as hex without a 0x prefix. An all-zero
// value formats as the empty string so templates can treat it as unset.
func Hash32Hex(h [32]byte) string {
	if IsZero32(h) {
		return ""
	}
	return HexBytes(h[:])
}

// IsZero32 reports whether a 32-byte value is all zeroes.
func IsZero32(h [32]byte) bool {
	for _, b := range h {
		if b != 0 {
			return false
		}
	}
	return true
}
