package natskv

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bhavya-boda/Large-Scale-Matrix-Multiplication/types"
)

func TestCodec_RoundTrip(t *testing.T) {
	rows := [][]float64{
		{1.5, -2.25, 0},
		{3, 4, 5.0625},
	}

	buf := encodeChunk(rows)
	got, err := decodeChunk(buf, 2, 3)

	require.NoError(t, err)
	require.Equal(t, rows, got)
}

func TestCodec_EmptyBand(t *testing.T) {
	buf := encodeChunk(nil)
	got, err := decodeChunk(buf, 0, 0)

	require.NoError(t, err)
	require.Empty(t, got)
}

func TestDecode_RejectsTruncatedChunk(t *testing.T) {
	buf := encodeChunk([][]float64{{1, 2}})

	_, err := decodeChunk(buf[:len(buf)-1], 1, 2)

	require.ErrorIs(t, err, types.ErrStorage)
	require.Contains(t, err.Error(), "bytes")
}

func TestDecode_RejectsCorruptPayload(t *testing.T) {
	buf := encodeChunk([][]float64{{1, 2}, {3, 4}})
	buf[checksumLen] ^= 0xff

	_, err := decodeChunk(buf, 2, 2)

	require.ErrorIs(t, err, types.ErrStorage)
	require.Contains(t, err.Error(), "checksum")
}
