package icon

import (
	"bytes"
	"encoding/binary"
)

// BuildICO wraps one PNG payload per size into an ICO container
// (PNG-compressed entries, understood by Vista and later). Entries keep
// the given order; the width and height bytes store 0 for 256 and up.
func BuildICO(sizes []int, pngs [][]byte) []byte {
	n := len(pngs)

	var buf bytes.Buffer
	// ICONDIR: reserved, type (1=icon), image count.
	binary.Write(&buf, binary.LittleEndian, [3]uint16{0, 1, uint16(n)})

	offset := uint32(6 + n*16) // header + directory entries
	for i, data := range pngs {
		dim := uint8(sizes[i])
		if sizes[i] >= 256 {
			dim = 0
		}
		buf.Write([]byte{dim, dim, 0, 0})                          // width, height, palette, reserved
		binary.Write(&buf, binary.LittleEndian, uint16(1))         // color planes
		binary.Write(&buf, binary.LittleEndian, uint16(32))        // bits per pixel
		binary.Write(&buf, binary.LittleEndian, uint32(len(data))) // payload size
		binary.Write(&buf, binary.LittleEndian, offset)            // payload offset
		offset += uint32(len(data))
	}

	for _, data := range pngs {
		buf.Write(data)
	}
	return buf.Bytes()
}
