package cpu

import "encoding/binary"

// WordsToBytes converts a slice of 32-bit instruction words to a big-endian
// byte slice.
func WordsToBytes(words []uint32) []byte {
	out := make([]byte, len(words)*4)
	for i, w := range words {
		binary.BigEndian.PutUint32(out[i*4:], w)
	}
	return out
}

// BytesToWords interprets bytes as big-endian 32-bit instruction words.
// A trailing partial word is zero-padded.
func BytesToWords(b []byte) []uint32 {
	for len(b)%4 != 0 {
		b = append(b, 0)
	}
	out := make([]uint32, len(b)/4)
	for i := range out {
		out[i] = binary.BigEndian.Uint32(b[i*4:])
	}
	return out
}
