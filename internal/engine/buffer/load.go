package buffer

import (
	"bufio"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// Open loads the file at path into a new document.
//
// A file that does not exist yet yields an empty document that keeps
// the path, so it can be saved later. Any other read failure is returned
// as an *OpError.
func Open(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			d := NewDocument()
			d.path = path
			return d, nil
		}
		return nil, &OpError{Op: "open", Path: path, Err: err}
	}
	d := Parse(data)
	d.path = path
	return d, nil
}

// Read loads a document from r.
func Read(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(data), nil
}

// Parse splits data into lines.
//
// "\n", "\r" and "\r\n" all terminate a line. A terminator at the very
// end of data does not start a new empty line, and empty data yields a
// single empty line.
func Parse(data []byte) *Document {
	d := &Document{}
	start := 0
	for i := 0; i < len(data); i++ {
		switch data[i] {
		case '\n':
			d.lines = append(d.lines, NewLineFrom(data[start:i]))
			start = i + 1
		case '\r':
			d.lines = append(d.lines, NewLineFrom(data[start:i]))
			if i+1 < len(data) && data[i+1] == '\n' {
				i++
			}
			start = i + 1
		}
	}
	if start < len(data) || len(d.lines) == 0 {
		d.lines = append(d.lines, NewLineFrom(data[start:]))
	}
	return d
}

// WriteTo writes every line followed by "\n" to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var n int64
	for _, l := range d.lines {
		m, err := bw.Write(l.Bytes())
		n += int64(m)
		if err != nil {
			return n, err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return n, err
		}
		n++
	}
	return n, bw.Flush()
}

// Save writes the document to its path.
// The content goes to a temporary file in the same directory which then
// replaces the target, so a failed write never truncates the original.
func (d *Document) Save() error {
	if d.path == "" {
		return ErrNoPath
	}
	return d.SaveAs(d.path)
}

// SaveAs writes the document to path and associates the document with it.
func (d *Document) SaveAs(path string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return &OpError{Op: "save", Path: path, Err: err}
	}
	tmpName := tmp.Name()
	cleanup := func() {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
	}

	if _, err := d.WriteTo(tmp); err != nil {
		cleanup()
		return &OpError{Op: "save", Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return &OpError{Op: "save", Path: path, Err: err}
	}

	// Keep the original permissions when overwriting.
	if info, err := os.Stat(path); err == nil {
		_ = os.Chmod(tmpName, info.Mode().Perm())
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return &OpError{Op: "save", Path: path, Err: err}
	}
	d.path = path
	return nil
}
