package core

import (
	"encoding/binary"
	"io"
	"math"

	errors "gopkg.in/src-d/go-errors.v1"
)

// Constants for the container format
const (
	Magic = "ABOBA1" // Signature at the start of every container

	// Version of the multi-entry archive format. Versions 0 and 1 are the
	// single-file formats, see single.go.
	Version uint16 = 2

	CompressionNone     uint16 = 0 // Only accepted compression code
	ErrorCorrectionNone uint16 = 0 // Only accepted error-correction code

	MaxPathLen = math.MaxUint16 // Longest encodable relative path, in bytes
)

// byteOrder is the host's native order; the format does not normalize it.
var byteOrder = binary.NativeEndian

var (
	// ErrInvalidInput is returned for bad arguments and unusable sources.
	ErrInvalidInput = errors.NewKind("invalid input: %s")
	// ErrFormat is returned when a container does not parse.
	ErrFormat = errors.NewKind("malformed archive: %s")
	// ErrIO is returned when the host filesystem fails an operation.
	ErrIO = errors.NewKind("i/o failure: %s")
)

// Header is the fixed prefix of a multi-entry archive.
type Header struct {
	Version         uint16
	Compression     uint16
	ErrorCorrection uint16
	Count           uint64 // Number of records that follow
}

// Entry is one record of an archive: a directory or a file with its content.
type Entry struct {
	Path    string // Relative path within the archive, slash separated
	IsDir   bool
	Content []byte // File content; nil for directories
}

// Size returns the number of content bytes the record carries.
func (e *Entry) Size() uint64 {
	return uint64(len(e.Content))
}

func (h Header) write(w io.Writer) error {
	buf := make([]byte, 0, len(Magic)+2+2+2+8)
	buf = append(buf, Magic...)
	buf = byteOrder.AppendUint16(buf, h.Version)
	buf = byteOrder.AppendUint16(buf, h.Compression)
	buf = byteOrder.AppendUint16(buf, h.ErrorCorrection)
	buf = byteOrder.AppendUint64(buf, h.Count)
	_, err := w.Write(buf)
	return err
}

// readMagic consumes the signature and fails unless it matches byte for byte.
func readMagic(r io.Reader) error {
	var sig [len(Magic)]byte
	if err := readFull(r, sig[:], "signature"); err != nil {
		return err
	}
	if string(sig[:]) != Magic {
		return ErrFormat.New(fmtQuoted("bad signature", sig[:]))
	}
	return nil
}

// readVersion consumes the version field and fails unless it equals want.
func readVersion(r io.Reader, want uint16) error {
	v, err := readUint16(r, "version")
	if err != nil {
		return err
	}
	if v != want {
		return ErrFormat.New(fmtMismatch("unsupported version", v, want))
	}
	return nil
}

// readReservedCodes consumes the compression and error-correction codes.
// Both are reserved and must be zero.
func readReservedCodes(r io.Reader) (compression, correction uint16, err error) {
	if compression, err = readUint16(r, "compression code"); err != nil {
		return
	}
	if compression != CompressionNone {
		err = ErrFormat.New(fmtMismatch("unsupported compression code", compression, CompressionNone))
		return
	}
	if correction, err = readUint16(r, "error-correction code"); err != nil {
		return
	}
	if correction != ErrorCorrectionNone {
		err = ErrFormat.New(fmtMismatch("unsupported error-correction code", correction, ErrorCorrectionNone))
	}
	return
}

func readHeader(r io.Reader) (Header, error) {
	if err := readMagic(r); err != nil {
		return Header{}, err
	}
	if err := readVersion(r, Version); err != nil {
		return Header{}, err
	}
	comp, ecc, err := readReservedCodes(r)
	if err != nil {
		return Header{}, err
	}
	count, err := readUint64(r, "entry count")
	if err != nil {
		return Header{}, err
	}
	return Header{Version: Version, Compression: comp, ErrorCorrection: ecc, Count: count}, nil
}
