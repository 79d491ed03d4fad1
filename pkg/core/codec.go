package core

import (
	"bytes"
	"fmt"
	"io"
	"math"
)

// readFull fills buf from r. Running out of input is a format error, any
// other failure is an I/O error.
func readFull(r io.Reader, buf []byte, what string) error {
	if _, err := io.ReadFull(r, buf); err != nil {
		return classifyRead(err, what)
	}
	return nil
}

func classifyRead(err error, what string) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return ErrFormat.Wrap(io.ErrUnexpectedEOF, "truncated "+what)
	}
	return ErrIO.Wrap(err, "reading "+what)
}

func readUint16(r io.Reader, what string) (uint16, error) {
	var buf [2]byte
	if err := readFull(r, buf[:], what); err != nil {
		return 0, err
	}
	return byteOrder.Uint16(buf[:]), nil
}

func readUint64(r io.Reader, what string) (uint64, error) {
	var buf [8]byte
	if err := readFull(r, buf[:], what); err != nil {
		return 0, err
	}
	return byteOrder.Uint64(buf[:]), nil
}

// readPayload reads exactly n bytes. The buffer grows with the data actually
// present, so a corrupt size field cannot force a huge allocation up front.
func readPayload(r io.Reader, n uint64, what string) ([]byte, error) {
	if n > math.MaxInt64 {
		return nil, ErrFormat.New(fmt.Sprintf("%s size %d exceeds int64", what, n))
	}
	var buf bytes.Buffer
	if n <= 64*1024 {
		buf.Grow(int(n))
	}
	got, err := io.Copy(&buf, io.LimitReader(r, int64(n)))
	if err != nil {
		return nil, ErrIO.Wrap(err, "reading "+what)
	}
	if uint64(got) != n {
		return nil, ErrFormat.Wrap(io.ErrUnexpectedEOF,
			fmt.Sprintf("truncated %s: %d of %d bytes", what, got, n))
	}
	return buf.Bytes(), nil
}

func fmtQuoted(msg string, b []byte) string {
	return fmt.Sprintf("%s %q", msg, b)
}

func fmtMismatch(msg string, got, want uint16) string {
	return fmt.Sprintf("%s %d, want %d", msg, got, want)
}
