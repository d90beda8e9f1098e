package shared

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
)

const (
	csvFlushEvery = 200
	csvBufferSize = 32 * 1024
)

// CSVStreamer writes rows through a buffered csv.Writer, flushing
// periodically so large collections stream instead of buffering whole.
type CSVStreamer struct {
	buf          *bufio.Writer
	csv          *csv.Writer
	pendingLines int
}

// NewCSVStreamer wraps w for CSV output. CRLF line endings for spreadsheet
// compatibility.
func NewCSVStreamer(w io.Writer) *CSVStreamer {
	buf := bufio.NewWriterSize(w, csvBufferSize)
	writer := csv.NewWriter(buf)
	writer.UseCRLF = true
	return &CSVStreamer{buf: buf, csv: writer}
}

// WriteRow appends one record.
func (s *CSVStreamer) WriteRow(row []string) error {
	if s == nil || s.csv == nil {
		return fmt.Errorf("csv streamer not initialised")
	}
	if err := s.csv.Write(row); err != nil {
		return err
	}
	s.pendingLines++
	if s.pendingLines >= csvFlushEvery {
		return s.Flush()
	}
	return nil
}

// Flush forces buffered rows out.
func (s *CSVStreamer) Flush() error {
	if s == nil || s.csv == nil || s.buf == nil {
		return fmt.Errorf("csv streamer not initialised")
	}
	s.csv.Flush()
	if err := s.csv.Error(); err != nil {
		return err
	}
	if err := s.buf.Flush(); err != nil {
		return err
	}
	s.pendingLines = 0
	return nil
}

// Close flushes any remaining rows.
func (s *CSVStreamer) Close() error {
	return s.Flush()
}
