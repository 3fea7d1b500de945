package recorder

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/0xsoniclabs/aida-randwalk/walk"
	"github.com/Fantom-foundation/lachesis-base/common/bigendian"
	"github.com/klauspost/compress/gzip"
)

// rowsFileMagic guards rows files against unrelated gzip content.
const rowsFileMagic = "walkrows"

// NewRowWriter creates a new RowWriter that streams walk outcomes into a
// gzip-compressed file using a buffer. The study parameters are written
// ahead of the rows so that a reader can rebuild the table.
func NewRowWriter(filename string, probability float64, steps int, start int64) (RowWriter, error) {
	if probability <= 0.0 || probability >= 1.0 {
		return nil, fmt.Errorf("step probability (%v) must be in the open interval (0,1)", probability)
	}
	if steps <= 0 {
		return nil, fmt.Errorf("number of steps (%v) must be greater than zero", steps)
	}
	_, err := os.Stat(filename)
	if err == nil {
		return nil, fmt.Errorf("file %s already exists", filename)
	}

	file, err := os.Create(filename)
	if err != nil {
		return nil, err
	}

	gzipWriter := gzip.NewWriter(file)
	w := &rowWriter{
		buffer: bufio.NewWriter(gzipWriter),
		closer: gzipWriter,
		steps:  steps,
	}
	if err := w.writeHeader(probability, steps, start); err != nil {
		return nil, errors.Join(err, w.Close())
	}
	return w, nil
}

//go:generate mockgen -source writer.go -destination writer_mock.go -package recorder

type RowWriter interface {
	// WriteRow appends the outcome of one walk to the file.
	WriteRow(row walk.Row) error
	Close() error
}

// WriteBuffer is a wrapper around necessary interfaces for writing data to a file for mocking purposes.
type WriteBuffer interface {
	io.Writer
	Flush() error
}

type rowWriter struct {
	buffer WriteBuffer
	closer io.Closer
	steps  int
}

// writeHeader encodes the magic bytes and the study parameters.
func (w *rowWriter) writeHeader(probability float64, steps int, start int64) error {
	if err := w.writeData([]byte(rowsFileMagic)); err != nil {
		return err
	}
	if err := w.writeUint64(math.Float64bits(probability)); err != nil {
		return err
	}
	if err := w.writeUint32(uint32(steps)); err != nil {
		return err
	}
	return w.writeUint64(uint64(start))
}

// WriteRow appends one row as a pair of big-endian encoded uint32 values.
// The trial number is not stored; it is implied by the row order.
func (w *rowWriter) WriteRow(row walk.Row) error {
	if row.Tau < 0 || row.Tau > w.steps {
		return fmt.Errorf("row %v has a last-maximum index (%v) outside the walk", row.Trial, row.Tau)
	}
	if row.Gamma < 0 || row.Gamma > w.steps {
		return fmt.Errorf("row %v has a last-return index (%v) outside the walk", row.Trial, row.Gamma)
	}
	if err := w.writeUint32(uint32(row.Tau)); err != nil {
		return err
	}
	return w.writeUint32(uint32(row.Gamma))
}

func (w *rowWriter) writeData(data []byte) error {
	_, err := w.buffer.Write(data)
	if err != nil {
		return fmt.Errorf("error writing []byte to buffer: %w", err)
	}
	return nil
}

func (w *rowWriter) writeUint32(data uint32) error {
	_, err := w.buffer.Write(bigendian.Uint32ToBytes(data))
	if err != nil {
		return fmt.Errorf("error writing uint32 to buffer: %w", err)
	}
	return nil
}

func (w *rowWriter) writeUint64(data uint64) error {
	_, err := w.buffer.Write(bigendian.Uint64ToBytes(data))
	if err != nil {
		return fmt.Errorf("error writing uint64 to buffer: %w", err)
	}
	return nil
}

func (w *rowWriter) Close() error {
	// Flush the buffer to ensure all data is written to the file
	// then close the file
	return errors.Join(w.buffer.Flush(), w.closer.Close())
}

// WriteStudy streams all rows of the table into a fresh rows file.
func WriteStudy(filename string, table *walk.Table) error {
	w, err := NewRowWriter(filename, table.Probability(), table.Steps(), table.Start())
	if err != nil {
		return err
	}
	for _, row := range table.Rows() {
		if err := w.WriteRow(row); err != nil {
			return errors.Join(err, w.Close())
		}
	}
	return w.Close()
}
