package midi

// Output is the append-only byte sink the encoder writes through. It
// supports appending, a length query and extraction of an independent
// copy; there is no way to rewrite bytes already written. The track
// length field, unknowable until the body is complete, is patched by
// rebuilding into a fresh Output rather than splicing in place.
type Output struct {
	buf []byte
}

// NewOutput returns an empty sink.
func NewOutput() *Output {
	return &Output{}
}

// AppendByte appends a single byte.
func (o *Output) AppendByte(b byte) {
	o.buf = append(o.buf, b)
}

// Append appends p in order.
func (o *Output) Append(p []byte) {
	o.buf = append(o.buf, p...)
}

// Len returns the number of bytes written so far.
func (o *Output) Len() int {
	return len(o.buf)
}

// Bytes returns an independent copy of everything written so far. The
// caller may hold or modify it without affecting the sink.
func (o *Output) Bytes() []byte {
	out := make([]byte, len(o.buf))
	copy(out, o.buf)
	return out
}
