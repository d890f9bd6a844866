// Package tiffmeta pulls the embedded OME-XML text out of a TIFF container.
// It reads just enough of the classic TIFF structure (header plus the first
// image file directory) to locate the ImageDescription tag; pixel data is
// never touched. BigTIFF is not supported.
package tiffmeta

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// TIFF structures, per the TIFF 6.0 specification. The header is the byte
// order mark, the magic number 42, and the offset of the first IFD. Each IFD
// is an entry count followed by 12-byte entries of tag, data type, value
// count, and inline value or value offset.
const (
	leHeader = "II\x2a\x00" // little-endian byte order mark + magic
	beHeader = "MM\x00\x2a" // big-endian byte order mark + magic

	ifdEntryLen = 12

	tagImageDescription = 270
	dtASCII             = 2
)

// ErrNoDescription is returned when the container carries no usable
// ImageDescription tag.
var ErrNoDescription = errors.New("no ImageDescription tag found")

// ImageDescription opens the TIFF at path and returns the text of its
// ImageDescription tag from the first IFD, with trailing NUL terminators
// stripped.
func ImageDescription(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	desc, err := Read(f)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	return desc, nil
}

// Read extracts the first IFD's ImageDescription text from a TIFF container.
func Read(r io.ReaderAt) (string, error) {
	header := make([]byte, 8)
	if _, err := r.ReadAt(header, 0); err != nil {
		return "", fmt.Errorf("reading TIFF header: %w", err)
	}

	var order binary.ByteOrder
	switch string(header[:4]) {
	case leHeader:
		order = binary.LittleEndian
	case beHeader:
		order = binary.BigEndian
	default:
		return "", fmt.Errorf("not a TIFF file (bad header % x)", header[:4])
	}

	ifdOffset := int64(order.Uint32(header[4:8]))
	countBuf := make([]byte, 2)
	if _, err := r.ReadAt(countBuf, ifdOffset); err != nil {
		return "", fmt.Errorf("reading IFD at offset %d: %w", ifdOffset, err)
	}
	entryCount := int(order.Uint16(countBuf))

	entries := make([]byte, entryCount*ifdEntryLen)
	if _, err := r.ReadAt(entries, ifdOffset+2); err != nil {
		return "", fmt.Errorf("reading %d IFD entries: %w", entryCount, err)
	}

	for i := 0; i < entryCount; i++ {
		entry := entries[i*ifdEntryLen : (i+1)*ifdEntryLen]
		if order.Uint16(entry[0:2]) != tagImageDescription {
			continue
		}
		if order.Uint16(entry[2:4]) != dtASCII {
			return "", fmt.Errorf("ImageDescription tag has non-ASCII data type %d",
				order.Uint16(entry[2:4]))
		}
		count := order.Uint32(entry[4:8])
		value := make([]byte, count)
		if count <= 4 {
			// Values of up to 4 bytes are stored inline in the entry.
			copy(value, entry[8:8+count])
		} else {
			offset := int64(order.Uint32(entry[8:12]))
			if _, err := r.ReadAt(value, offset); err != nil {
				return "", fmt.Errorf("reading ImageDescription value at offset %d: %w",
					offset, err)
			}
		}
		return strings.TrimRight(string(value), "\x00"), nil
	}
	return "", ErrNoDescription
}
