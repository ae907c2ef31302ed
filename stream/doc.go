// Package stream wraps the core tsz Encoder/Decoder with an optional outer
// envelope: compression of the finished byte stream plus a checksum over
// the envelope payload. It never changes the core wire format produced
// by tsz.Encoder — a caller who only wants the exact Gorilla byte stream
// uses tsz directly and skips this package entirely.
package stream
