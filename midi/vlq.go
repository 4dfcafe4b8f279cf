package midi

// AppendVLQ appends the MIDI variable-length encoding of v to dst and
// returns the extended slice. Seven value bits per byte, most
// significant group first, continuation bit 0x80 on every byte but the
// last. Zero encodes as the single byte 0x00; the full 32-bit range
// needs at most five bytes.
func AppendVLQ(dst []byte, v uint32) []byte {
	var buf [5]byte
	n := len(buf) - 1
	buf[n] = byte(v & 0x7F)
	for v >>= 7; v > 0; v >>= 7 {
		n--
		buf[n] = byte(v&0x7F) | 0x80
	}
	return append(dst, buf[n:]...)
}
