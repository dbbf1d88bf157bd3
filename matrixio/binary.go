// SPDX-License-Identifier: MIT

package matrixio

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/katalvlaran/lvmatrix/matrix"
)

// Snapshot layout (little endian):
//
//	offset  size  field
//	0       4     magic "LVMX"
//	4       1     format version
//	5       1     compression id
//	6       4     rows
//	10      4     cols
//	14      8+n   payload block (see compressBlock), rows*cols float64 row-major
const (
	magic         = "LVMX"
	formatVersion = 1
	headerSize    = 14

	// maxPayload bounds rows*cols*8 so the product cannot overflow int.
	maxPayload = math.MaxInt32
)

// MarshalBinary encodes m into an LVMX snapshot using compression c.
func MarshalBinary(m matrix.Matrix, c Compression) ([]byte, error) {
	rows, cols := m.Rows(), m.Cols()
	payload := make([]byte, 0, rows*cols*8)
	for i := 0; i < rows; i++ {
		r, err := m.Row(i)
		if err != nil {
			return nil, fmt.Errorf("MarshalBinary: %w", err)
		}
		for _, v := range r {
			payload = binary.LittleEndian.AppendUint64(payload, math.Float64bits(v))
		}
	}
	block, err := compressBlock(payload, c)
	if err != nil {
		return nil, fmt.Errorf("MarshalBinary: %w", err)
	}

	out := make([]byte, headerSize, headerSize+len(block))
	copy(out, magic)
	out[4] = formatVersion
	out[5] = byte(c)
	binary.LittleEndian.PutUint32(out[6:], uint32(rows))
	binary.LittleEndian.PutUint32(out[10:], uint32(cols))

	return append(out, block...), nil
}

// UnmarshalBinary decodes an LVMX snapshot into a new matrix.
//
// Errors: ErrBadMagic, ErrUnsupportedVersion, ErrUnknownCompression, ErrCorrupt,
// and matrix sentinels from ingestion (e.g. matrix.ErrNaNInf under the
// default numeric policy).
func UnmarshalBinary(data []byte, opts ...matrix.Option) (*matrix.Numeric, error) {
	if len(data) < headerSize {
		return nil, fmt.Errorf("UnmarshalBinary: header: %w", ErrCorrupt)
	}
	if string(data[:4]) != magic {
		return nil, fmt.Errorf("UnmarshalBinary: %w", ErrBadMagic)
	}
	if data[4] != formatVersion {
		return nil, fmt.Errorf("UnmarshalBinary: version %d: %w", data[4], ErrUnsupportedVersion)
	}
	c := Compression(data[5])
	if c > CompressionZSTD {
		return nil, fmt.Errorf("UnmarshalBinary: %v: %w", c, ErrUnknownCompression)
	}
	rows := int(binary.LittleEndian.Uint32(data[6:]))
	cols := int(binary.LittleEndian.Uint32(data[10:]))

	if cols != 0 && rows > maxPayload/8/cols {
		return nil, fmt.Errorf("UnmarshalBinary: shape %dx%d too large: %w", rows, cols, ErrCorrupt)
	}
	want := rows * cols * 8

	payload, _, err := decompressBlock(data[headerSize:], c, want)
	if err != nil {
		return nil, fmt.Errorf("UnmarshalBinary: %w", err)
	}
	if want == 0 {
		// 0×n and n×0 headers describe the empty matrix.
		rows, cols = 0, 0
	}

	// Capacities are backed by the decoded payload, never by the header alone.
	m, err := matrix.NewNumeric(rows, cols, opts...)
	if err != nil {
		return nil, fmt.Errorf("UnmarshalBinary: %w", err)
	}
	row := make([]float64, cols)
	for i := 0; i < rows; i++ {
		for j := range row {
			off := (i*cols + j) * 8
			row[j] = math.Float64frombits(binary.LittleEndian.Uint64(payload[off:]))
		}
		if err = m.AddRow(row); err != nil {
			return nil, fmt.Errorf("UnmarshalBinary: row %d: %w", i, err)
		}
	}

	return m, nil
}

// WriteBinary writes an LVMX snapshot of m to w.
func WriteBinary(w io.Writer, m matrix.Matrix, c Compression) error {
	data, err := MarshalBinary(m, c)
	if err != nil {
		return err
	}
	_, err = w.Write(data)

	return err
}

// ReadBinary reads a whole LVMX snapshot from r.
func ReadBinary(r io.Reader, opts ...matrix.Option) (*matrix.Numeric, error) {
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("ReadBinary: %w", err)
	}

	return UnmarshalBinary(buf.Bytes(), opts...)
}
