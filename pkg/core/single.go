package core

import (
	"fmt"
	"io"
)

// Versions of the single-file container. Version 0 carries only the size;
// version 1 adds the reserved compression and error-correction codes.
const (
	SingleVersion0 uint16 = 0
	SingleVersion1 uint16 = 1
)

func checkSingleVersion(version uint16) error {
	switch version {
	case SingleVersion0, SingleVersion1:
		return nil
	}
	return ErrInvalidInput.New(fmt.Sprintf("no single-file format version %d", version))
}

// EncodeSingle writes data as a single-file container of the given version:
// signature, version, the reserved codes (version 1 only), the 64-bit size
// and then the raw bytes.
func EncodeSingle(w io.Writer, version uint16, data []byte) error {
	if err := checkSingleVersion(version); err != nil {
		return err
	}

	buf := make([]byte, 0, len(Magic)+2+4+8)
	buf = append(buf, Magic...)
	buf = byteOrder.AppendUint16(buf, version)
	if version == SingleVersion1 {
		buf = byteOrder.AppendUint16(buf, CompressionNone)
		buf = byteOrder.AppendUint16(buf, ErrorCorrectionNone)
	}
	buf = byteOrder.AppendUint64(buf, uint64(len(data)))

	if _, err := w.Write(buf); err != nil {
		return ErrIO.Wrap(err, "writing header")
	}
	if _, err := w.Write(data); err != nil {
		return ErrIO.Wrap(err, "writing content")
	}
	return nil
}

// DecodeSingle parses a single-file container that must be of exactly the
// given version and returns its content.
func DecodeSingle(r io.Reader, version uint16) ([]byte, error) {
	if err := checkSingleVersion(version); err != nil {
		return nil, err
	}
	if err := readMagic(r); err != nil {
		return nil, err
	}
	if err := readVersion(r, version); err != nil {
		return nil, err
	}
	if version == SingleVersion1 {
		if _, _, err := readReservedCodes(r); err != nil {
			return nil, err
		}
	}
	size, err := readUint64(r, "size")
	if err != nil {
		return nil, err
	}
	return readPayload(r, size, "content")
}
