// Package bcsv implements the tabular binary record format used for KCL's
// "PA" surface-attribute sidecar: a fixed header, field descriptors, fixed-
// size rows packed per descriptor, a Shift-JIS string pool, and trailing
// 0x40 padding to a 32-byte boundary.
package bcsv

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/aurelien-rainone/aligned"
)

// DataType identifies how a Field's bytes are interpreted.
type DataType uint8

// The six BCSV field data types.
const (
	UINT32  DataType = 0
	FLOAT32 DataType = 2
	SINT32  DataType = 3
	SINT16  DataType = 4
	SINT8   DataType = 5
	STRING  DataType = 6
)

// Size returns the on-disk size in bytes of one value of this data type.
func (d DataType) Size() int {
	switch d {
	case UINT32, FLOAT32, SINT32, STRING:
		return 4
	case SINT16:
		return 2
	case SINT8:
		return 1
	default:
		return 0
	}
}

// FormatError is returned when decoding encounters an invalid field
// DataType (the one decode failure mode this package defines).
type FormatError struct {
	msg string
}

func (e *FormatError) Error() string { return e.msg }

// Field is one 12-byte field descriptor.
type Field struct {
	NameHash uint32
	Mask     uint32
	Offset   uint16
	Shift    uint8
	DataType DataType
}

// NewField builds a Field descriptor, hashing name into NameHash.
func NewField(name string, offset uint16, mask uint32, shift uint8, dataType DataType) Field {
	return Field{
		NameHash: NameHash(name),
		Mask:     mask,
		Offset:   offset,
		Shift:    shift,
		DataType: dataType,
	}
}

// NameHash computes the BCSV field name hash: h = (h*31 + codepoint) mod
// 2^32 over each rune of name, starting from h=0.
func NameHash(name string) uint32 {
	var h uint32
	for _, r := range name {
		h = h*31 + uint32(r)
	}
	return h
}

const (
	headerSize    = 16
	fieldSize     = 12
	alignBoundary = 0x20
	alignPadByte  = 0x40
)

// fileHeader is the fixed 16-byte BCSV header.
type fileHeader struct {
	EntryCount  uint32
	FieldCount  uint32
	EntryOffset uint32
	EntrySize   uint32
}

// Row is one record's values, indexed the same as the Fields slice passed
// to Encode/Decode. A STRING field's value is a string; every other
// non-float field is an integer (a UINT32 field also takes a bool, encoded
// as 1 or 0), and FLOAT32 fields take a float32 or float64.
type Row = []interface{}

// Encode writes len(rows) entries described by fields to w.
func Encode(w io.Writer, fields []Field, rows []Row) error {
	entrySize := entrySizeOf(fields)

	hdr := fileHeader{
		EntryCount:  uint32(len(rows)),
		FieldCount:  uint32(len(fields)),
		EntryOffset: uint32(headerSize + len(fields)*fieldSize),
		EntrySize:   uint32(entrySize),
	}

	written := 0
	n, err := writeHeader(w, hdr)
	written += n
	if err != nil {
		return err
	}
	for _, f := range fields {
		n, err := writeField(w, f)
		written += n
		if err != nil {
			return err
		}
	}

	stringTable := make(map[string]uint32)
	var stringPool bytes.Buffer

	for _, row := range rows {
		block := make([]byte, entrySize)

		for i, f := range fields {
			value := row[i]
			switch f.DataType {
			case UINT32:
				current := binary.LittleEndian.Uint32(block[f.Offset:])
				v := (toUint32(value) << f.Shift) | current
				binary.LittleEndian.PutUint32(block[f.Offset:], v)
			case FLOAT32:
				binary.LittleEndian.PutUint32(block[f.Offset:], float32Bits(value))
			case SINT32:
				binary.LittleEndian.PutUint32(block[f.Offset:], uint32(toInt64(value)))
			case SINT16:
				binary.LittleEndian.PutUint16(block[f.Offset:], uint16(toInt64(value)))
			case SINT8:
				block[f.Offset] = byte(toInt64(value))
			case STRING:
				s := value.(string)
				off, ok := stringTable[s]
				if !ok {
					off = uint32(stringPool.Len())
					stringTable[s] = off
					stringPool.Write(encodeShiftJIS(s))
					stringPool.WriteByte(0)
				}
				binary.LittleEndian.PutUint32(block[f.Offset:], off)
			default:
				return &FormatError{msg: "invalid field data type"}
			}
		}

		n, err := w.Write(block)
		written += n
		if err != nil {
			return err
		}
	}

	n, err = w.Write(stringPool.Bytes())
	written += n
	if err != nil {
		return err
	}

	pad := aligned.AlignN(written, alignBoundary) - written
	if pad > 0 {
		padding := bytes.Repeat([]byte{alignPadByte}, pad)
		if _, err := w.Write(padding); err != nil {
			return err
		}
	}
	return nil
}

func entrySizeOf(fields []Field) int {
	size := 0
	for _, f := range fields {
		if end := int(f.Offset) + f.DataType.Size(); end > size {
			size = end
		}
	}
	return aligned.AlignN(size, 4)
}

// Decode reads a BCSV table from r, using the field descriptors found in
// the file itself (matching the generic decode path of the original
// format, which can read any table regardless of the caller's expected
// schema).
func Decode(r io.ReadSeeker) ([]Row, []Field, error) {
	hdr, err := readHeader(r)
	if err != nil {
		return nil, nil, err
	}
	descriptors := make([]Field, hdr.FieldCount)
	for i := range descriptors {
		f, err := readField(r)
		if err != nil {
			return nil, nil, err
		}
		descriptors[i] = f
	}

	if _, err := r.Seek(int64(hdr.EntryOffset)+int64(hdr.EntryCount)*int64(hdr.EntrySize), io.SeekStart); err != nil {
		return nil, nil, err
	}
	pool, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, err
	}

	if _, err := r.Seek(int64(hdr.EntryOffset), io.SeekStart); err != nil {
		return nil, nil, err
	}

	rows := make([]Row, hdr.EntryCount)
	for e := range rows {
		block := make([]byte, hdr.EntrySize)
		if _, err := io.ReadFull(r, block); err != nil {
			return nil, nil, err
		}
		row := make(Row, len(descriptors))
		for i, f := range descriptors {
			switch f.DataType {
			case UINT32:
				raw := binary.LittleEndian.Uint32(block[f.Offset:])
				row[i] = (raw & f.Mask) >> f.Shift
			case FLOAT32:
				row[i] = math.Float32frombits(binary.LittleEndian.Uint32(block[f.Offset:]))
			case SINT32:
				row[i] = int32(binary.LittleEndian.Uint32(block[f.Offset:]))
			case SINT16:
				row[i] = int16(binary.LittleEndian.Uint16(block[f.Offset:]))
			case SINT8:
				row[i] = int8(block[f.Offset])
			case STRING:
				off := binary.LittleEndian.Uint32(block[f.Offset:])
				row[i] = decodeShiftJISCString(pool, off)
			default:
				return nil, nil, &FormatError{msg: "invalid field data type"}
			}
		}
		rows[e] = row
	}
	return rows, descriptors, nil
}

// writeHeader/writeField/readHeader/readField write and read the fixed
// 16-byte file header and 12-byte field descriptors, field by field, the
// same way collision.header is written: no reflection, no struct tags.

func writeHeader(w io.Writer, h fileHeader) (int, error) {
	var buf [headerSize]byte
	binary.LittleEndian.PutUint32(buf[0:], h.EntryCount)
	binary.LittleEndian.PutUint32(buf[4:], h.FieldCount)
	binary.LittleEndian.PutUint32(buf[8:], h.EntryOffset)
	binary.LittleEndian.PutUint32(buf[12:], h.EntrySize)
	return w.Write(buf[:])
}

func readHeader(r io.Reader) (fileHeader, error) {
	var buf [headerSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return fileHeader{}, err
	}
	return fileHeader{
		EntryCount:  binary.LittleEndian.Uint32(buf[0:]),
		FieldCount:  binary.LittleEndian.Uint32(buf[4:]),
		EntryOffset: binary.LittleEndian.Uint32(buf[8:]),
		EntrySize:   binary.LittleEndian.Uint32(buf[12:]),
	}, nil
}

func writeField(w io.Writer, f Field) (int, error) {
	var buf [fieldSize]byte
	binary.LittleEndian.PutUint32(buf[0:], f.NameHash)
	binary.LittleEndian.PutUint32(buf[4:], f.Mask)
	binary.LittleEndian.PutUint16(buf[8:], f.Offset)
	buf[10] = byte(f.Shift)
	buf[11] = byte(f.DataType)
	return w.Write(buf[:])
}

func readField(r io.Reader) (Field, error) {
	var buf [fieldSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return Field{}, err
	}
	return Field{
		NameHash: binary.LittleEndian.Uint32(buf[0:]),
		Mask:     binary.LittleEndian.Uint32(buf[4:]),
		Offset:   binary.LittleEndian.Uint16(buf[8:]),
		Shift:    uint8(buf[10]),
		DataType: DataType(buf[11]),
	}, nil
}

func toUint32(v interface{}) uint32 {
	switch x := v.(type) {
	case uint32:
		return x
	case uint16:
		return uint32(x)
	case uint8:
		return uint32(x)
	case int:
		return uint32(x)
	case bool:
		if x {
			return 1
		}
		return 0
	default:
		panic(fmt.Sprintf("bcsv: unsupported UINT32 value %T", v))
	}
}

func toInt64(v interface{}) int64 {
	switch x := v.(type) {
	case int:
		return int64(x)
	case int32:
		return int64(x)
	case int16:
		return int64(x)
	case int8:
		return int64(x)
	default:
		panic(fmt.Sprintf("bcsv: unsupported integer value %T", v))
	}
}

func float32Bits(v interface{}) uint32 {
	switch x := v.(type) {
	case float32:
		return math.Float32bits(x)
	case float64:
		return math.Float32bits(float32(x))
	default:
		panic(fmt.Sprintf("bcsv: unsupported FLOAT32 value %T", v))
	}
}

// encodeShiftJIS/decodeShiftJISCString only implement the ASCII-compatible
// subset of Shift-JIS (codepoints < 0x80 are byte-identical in both).
// None of the retrieved reference repositories carry a CJK text-encoding
// library, and every string this format actually stores (group names,
// surface-code labels) is ASCII; see DESIGN.md.
func encodeShiftJIS(s string) []byte {
	return []byte(s)
}

func decodeShiftJISCString(pool []byte, offset uint32) string {
	end := int(offset)
	for end < len(pool) && pool[end] != 0 {
		end++
	}
	return string(pool[offset:end])
}
