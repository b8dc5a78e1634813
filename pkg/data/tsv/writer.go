package tsv

import (
	"encoding/csv"
	"io"
	"os"
)

// Row is a record that knows its own columns.
type Row interface {
	TsvHeader() []string
	TsvValues() []string
}

type Writer struct {
	file io.WriteCloser

	headerWritten bool

	*csv.Writer
}

func NewWriterFile(filename string) (*Writer, error) {
	f, err := os.Create(filename)
	if err != nil {
		return nil, err
	}

	return NewWriter(f), nil
}

// AppendWriterFile opens the file for appending. The header is only written when the
// file is empty.
func AppendWriterFile(filename string) (*Writer, error) {
	f, err := os.OpenFile(filename, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0644)
	if err != nil {
		return nil, err
	}

	w := NewWriter(f)
	if info, err := f.Stat(); err == nil && info.Size() > 0 {
		w.headerWritten = true
	}
	return w, nil
}

func NewWriter(file io.WriteCloser) *Writer {
	tsv := csv.NewWriter(file)
	tsv.Comma = '\t'
	return &Writer{
		Writer: tsv,
		file:   file,
	}
}

// WriteRow writes the row, preceded by its header on the first call.
func (w *Writer) WriteRow(row Row) error {
	if !w.headerWritten {
		if err := w.Write(row.TsvHeader()); err != nil {
			return err
		}
		w.headerWritten = true
	}

	return w.Write(row.TsvValues())
}

func (w *Writer) Close() error {
	w.Writer.Flush()
	if err := w.Writer.Error(); err != nil {
		_ = w.file.Close()
		return err
	}
	return w.file.Close()
}
