package maze

import (
	"encoding/binary"
	"fmt"
)

// Encode writes spec's header and grid into a contiguous EncodedSpec,
// per the fixed binary layout in EncodedSpec's doc comment.
func Encode(spec *MazeSpec) EncodedSpec {
	rows, cols := spec.Grid.Rows, spec.Grid.Cols
	buf := make([]byte, HeaderSize+rows*cols)
	binary.LittleEndian.PutUint32(buf[0:4], uint32(rows))
	binary.LittleEndian.PutUint32(buf[4:8], uint32(cols))
	binary.LittleEndian.PutUint32(buf[8:12], uint32(spec.Start.X))
	binary.LittleEndian.PutUint32(buf[12:16], uint32(spec.Start.Y))
	binary.LittleEndian.PutUint32(buf[16:20], uint32(spec.Goal.X))
	binary.LittleEndian.PutUint32(buf[20:24], uint32(spec.Goal.Y))
	copy(buf[HeaderSize:], spec.Grid.Cells)
	return buf
}

// Decode is the inverse of Encode. The returned MazeSpec owns a fresh
// copy of the grid bytes, so the caller is free to reuse or discard data.
func Decode(data EncodedSpec) (*MazeSpec, error) {
	if len(data) < HeaderSize {
		return nil, fmt.Errorf("maze: encoded spec too short: %d bytes", len(data))
	}
	rows := int(binary.LittleEndian.Uint32(data[0:4]))
	cols := int(binary.LittleEndian.Uint32(data[4:8]))
	startX := int(binary.LittleEndian.Uint32(data[8:12]))
	startY := int(binary.LittleEndian.Uint32(data[12:16]))
	goalX := int(binary.LittleEndian.Uint32(data[16:20]))
	goalY := int(binary.LittleEndian.Uint32(data[20:24]))

	want := HeaderSize + rows*cols
	if len(data) != want {
		return nil, fmt.Errorf("maze: encoded spec size mismatch: want %d bytes, got %d", want, len(data))
	}

	cells := make([]byte, rows*cols)
	copy(cells, data[HeaderSize:])

	return &MazeSpec{
		Grid:  &Grid{Rows: rows, Cols: cols, Cells: cells},
		Start: Point{X: startX, Y: startY},
		Goal:  Point{X: goalX, Y: goalY},
	}, nil
}
