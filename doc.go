// Package tsz implements the Gorilla time-series compression scheme:
// delta-of-delta timestamp encoding and XOR-based value encoding over a
// bit-packed stream. An Encoder consumes DataPoints sharing a header
// timestamp and produces a byte slice; a Decoder reverses the process
// exactly, bit-for-bit.
package tsz
