package core

import (
	"io"
)

// Reader parses a multi-entry archive one record at a time. It never seeks
// and holds only the record most recently returned by Next.
type Reader struct {
	r      io.Reader
	header Header
	read   uint64
}

// NewReader validates the archive header: the signature, the version and
// both reserved codes. Any mismatch is ErrFormat.
func NewReader(r io.Reader) (*Reader, error) {
	h, err := readHeader(r)
	if err != nil {
		return nil, err
	}
	return &Reader{r: r, header: h}, nil
}

// Header returns the validated archive header.
func (r *Reader) Header() Header {
	return r.header
}

// Next returns the next record, or io.EOF once the number of records
// announced by the header has been consumed. Trailing bytes after the last
// record are not inspected.
func (r *Reader) Next() (*Entry, error) {
	if r.read >= r.header.Count {
		return nil, io.EOF
	}

	n, err := readUint16(r.r, "path length")
	if err != nil {
		return nil, err
	}
	p := make([]byte, n)
	if err := readFull(r.r, p, "path"); err != nil {
		return nil, err
	}
	var flag [1]byte
	if err := readFull(r.r, flag[:], "directory flag of "+string(p)); err != nil {
		return nil, err
	}

	e := &Entry{Path: string(p), IsDir: flag[0] != 0}
	if !e.IsDir {
		size, err := readUint64(r.r, "size of "+e.Path)
		if err != nil {
			return nil, err
		}
		if e.Content, err = readPayload(r.r, size, "content of "+e.Path); err != nil {
			return nil, err
		}
	}

	r.read++
	return e, nil
}
