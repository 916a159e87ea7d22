package natskv

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/zeebo/xxh3"

	"github.com/bhavya-boda/Large-Scale-Matrix-Multiplication/types"
)

// Chunk wire format: an 8-byte little-endian xxh3 checksum of the payload,
// followed by the payload of row-major float64 bits, little-endian.
const checksumLen = 8

// encodeChunk serializes a row band into the chunk wire format.
func encodeChunk(rows [][]float64) []byte {
	size := 0
	for _, row := range rows {
		size += len(row) * 8
	}

	buf := make([]byte, checksumLen+size)
	off := checksumLen
	for _, row := range rows {
		for _, v := range row {
			binary.LittleEndian.PutUint64(buf[off:], math.Float64bits(v))
			off += 8
		}
	}

	binary.LittleEndian.PutUint64(buf[:checksumLen], xxh3.Hash(buf[checksumLen:]))

	return buf
}

// decodeChunk deserializes a row band of the given shape, verifying the
// content checksum.
func decodeChunk(buf []byte, rows, cols int) ([][]float64, error) {
	want := checksumLen + rows*cols*8
	if len(buf) != want {
		return nil, fmt.Errorf("chunk is %d bytes, expected %d: %w", len(buf), want, types.ErrStorage)
	}

	payload := buf[checksumLen:]
	if got := xxh3.Hash(payload); got != binary.LittleEndian.Uint64(buf[:checksumLen]) {
		return nil, fmt.Errorf("chunk checksum mismatch: %w", types.ErrStorage)
	}

	out := make([][]float64, rows)
	off := 0
	for i := range out {
		row := make([]float64, cols)
		for j := range row {
			row[j] = math.Float64frombits(binary.LittleEndian.Uint64(payload[off:]))
			off += 8
		}
		out[i] = row
	}

	return out, nil
}
