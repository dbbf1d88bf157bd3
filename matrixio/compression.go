// SPDX-License-Identifier: MIT

package matrixio

import (
	"encoding/binary"
	"fmt"
	"strings"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression selects the payload codec of a binary snapshot.
type Compression uint8

const (
	// CompressionNone stores the payload raw.
	CompressionNone Compression = 0
	// CompressionLZ4 uses LZ4 block compression (fast).
	CompressionLZ4 Compression = 1
	// CompressionZSTD uses Zstandard (better ratio).
	CompressionZSTD Compression = 2
)

// String returns the flag name of c.
func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionLZ4:
		return "lz4"
	case CompressionZSTD:
		return "zstd"
	default:
		return fmt.Sprintf("Compression(%d)", uint8(c))
	}
}

// ParseCompression maps "none", "lz4" or "zstd" (case-insensitive) to a Compression.
func ParseCompression(s string) (Compression, error) {
	switch strings.ToLower(s) {
	case "", "none":
		return CompressionNone, nil
	case "lz4":
		return CompressionLZ4, nil
	case "zstd", "zstandard":
		return CompressionZSTD, nil
	default:
		return 0, fmt.Errorf("ParseCompression(%q): %w", s, ErrUnknownCompression)
	}
}

// zstd encoders/decoders are expensive to build; pool them.
var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() (*zstd.Encoder, error) {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder), nil
	}

	return zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
}

func getZstdDecoder() (*zstd.Decoder, error) {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder), nil
	}

	return zstd.NewReader(nil)
}

// Block layout: [uncompressedLen uint32][compressedLen uint32][data...].
// compressedLen == 0 means data is stored raw.
const blockHeaderSize = 8

// lz4MaxRatio bounds how far an LZ4 block can expand; a match token encodes
// at most 255 bytes per input byte.
const lz4MaxRatio = 255

// compressBlock frames data, compressing it when that actually saves space.
func compressBlock(data []byte, c Compression) ([]byte, error) {
	var (
		packed []byte
		err    error
	)
	switch {
	case c > CompressionZSTD:
		return nil, fmt.Errorf("compress: %v: %w", c, ErrUnknownCompression)
	case len(data) == 0 || c == CompressionNone:
	case c == CompressionLZ4:
		packed, err = compressLZ4(data)
	case c == CompressionZSTD:
		packed, err = compressZSTD(data)
	}
	if err != nil {
		return nil, err
	}

	if len(packed) == 0 || len(packed) >= len(data) {
		out := make([]byte, blockHeaderSize+len(data))
		binary.LittleEndian.PutUint32(out[0:], uint32(len(data)))
		binary.LittleEndian.PutUint32(out[4:], 0)
		copy(out[blockHeaderSize:], data)

		return out, nil
	}
	out := make([]byte, blockHeaderSize+len(packed))
	binary.LittleEndian.PutUint32(out[0:], uint32(len(data)))
	binary.LittleEndian.PutUint32(out[4:], uint32(len(packed)))
	copy(out[blockHeaderSize:], packed)

	return out, nil
}

func compressLZ4(data []byte) ([]byte, error) {
	buf := make([]byte, lz4.CompressBlockBound(len(data)))
	n, err := lz4.CompressBlock(data, buf, nil)
	if err != nil {
		return nil, err
	}

	return buf[:n], nil
}

func compressZSTD(data []byte) ([]byte, error) {
	enc, err := getZstdEncoder()
	if err != nil {
		return nil, err
	}
	defer zstdEncoderPool.Put(enc)

	return enc.EncodeAll(data, nil), nil
}

// decompressBlock reverses compressBlock and returns the payload and the
// number of bytes consumed from block. want is the payload length the caller
// expects; a header announcing anything else is rejected before allocating.
func decompressBlock(block []byte, c Compression, want int) ([]byte, int, error) {
	if len(block) < blockHeaderSize {
		return nil, 0, fmt.Errorf("block header: %w", ErrCorrupt)
	}
	rawLen := binary.LittleEndian.Uint32(block[0:])
	packedLen := binary.LittleEndian.Uint32(block[4:])
	if int64(rawLen) != int64(want) {
		return nil, 0, fmt.Errorf("block announces %d bytes, want %d: %w", rawLen, want, ErrCorrupt)
	}

	if packedLen == 0 {
		end := blockHeaderSize + int(rawLen)
		if len(block) < end {
			return nil, 0, fmt.Errorf("raw block: %w", ErrCorrupt)
		}

		return block[blockHeaderSize:end], end, nil
	}

	end := blockHeaderSize + int(packedLen)
	if len(block) < end {
		return nil, 0, fmt.Errorf("packed block: %w", ErrCorrupt)
	}
	packed := block[blockHeaderSize:end]

	switch c {
	case CompressionLZ4:
		if uint64(rawLen) > uint64(packedLen)*lz4MaxRatio {
			return nil, 0, fmt.Errorf("lz4: %d bytes cannot expand to %d: %w", packedLen, rawLen, ErrCorrupt)
		}
		out := make([]byte, rawLen)
		n, err := lz4.UncompressBlock(packed, out)
		if err != nil {
			return nil, 0, fmt.Errorf("lz4: %w: %w", ErrCorrupt, err)
		}
		if uint32(n) != rawLen {
			return nil, 0, fmt.Errorf("lz4 size mismatch: %w", ErrCorrupt)
		}

		return out, end, nil
	case CompressionZSTD:
		var h zstd.Header
		if err := h.Decode(packed); err != nil {
			return nil, 0, fmt.Errorf("zstd header: %w: %w", ErrCorrupt, err)
		}
		if h.HasFCS && h.FrameContentSize != uint64(rawLen) {
			return nil, 0, fmt.Errorf("zstd frame announces %d bytes: %w", h.FrameContentSize, ErrCorrupt)
		}
		dec, err := getZstdDecoder()
		if err != nil {
			return nil, 0, err
		}
		defer zstdDecoderPool.Put(dec)
		decoded, err := dec.DecodeAll(packed, nil)
		if err != nil {
			return nil, 0, fmt.Errorf("zstd: %w: %w", ErrCorrupt, err)
		}
		if uint32(len(decoded)) != rawLen {
			return nil, 0, fmt.Errorf("zstd size mismatch: %w", ErrCorrupt)
		}

		return decoded, end, nil
	default:
		return nil, 0, fmt.Errorf("decompress: %v: %w", c, ErrUnknownCompression)
	}
}
