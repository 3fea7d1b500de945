package recorder

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/0xsoniclabs/aida-randwalk/walk"
	"github.com/Fantom-foundation/lachesis-base/common/bigendian"
	"github.com/cockroachdb/errors"
	"github.com/klauspost/compress/gzip"
)

// NewRowReader opens a rows file, checks its magic bytes, and decodes the
// study parameters ahead of the rows.
func NewRowReader(filename string) (RowReader, error) {
	stat, err := os.Stat(filename)
	if err != nil {
		return nil, fmt.Errorf("could not stat file: %s, does it exist? %w", filename, err)
	}
	if stat.IsDir() {
		return nil, errors.New("given path to rows file is a directory")
	}
	if stat.Size() == 0 {
		return nil, errors.New("given rows file is empty")
	}
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("could not open rows file: %s, %w", filename, err)
	}
	gzipReader, err := gzip.NewReader(file)
	if err != nil {
		return nil, fmt.Errorf("could not create gzip reader for rows file: %s, %w", filename, err)
	}
	r := &rowReader{
		reader: bufio.NewReader(gzipReader),
		closer: gzipReader,
	}
	if err := r.readHeader(filename); err != nil {
		return nil, errors.Join(err, r.Close())
	}
	return r, nil
}

//go:generate mockgen -source reader.go -destination reader_mock.go -package recorder

type RowReader interface {
	// Probability returns the step probability of the recorded study.
	Probability() float64
	// Steps returns the number of steps per walk of the recorded study.
	Steps() int
	// Start returns the start position of the recorded study.
	Start() int64
	// ReadRow returns the next row of the file. The end of the file is
	// reported as io.EOF.
	ReadRow() (walk.Row, error)
	Close() error
}

// ReadBuffer is a wrapper around necessary interfaces for reading data from a file for mocking purposes.
type ReadBuffer interface {
	io.Reader
}

type rowReader struct {
	reader      ReadBuffer
	closer      io.Closer
	probability float64
	steps       int
	start       int64
	next        int
}

func (r *rowReader) readHeader(filename string) error {
	magic, err := r.readData(len(rowsFileMagic))
	if err != nil {
		return fmt.Errorf("could not read rows file header: %w", err)
	}
	if string(magic) != rowsFileMagic {
		return fmt.Errorf("file %v is not a rows file of a walk study", filename)
	}
	bits, err := r.readUint64()
	if err != nil {
		return fmt.Errorf("could not read rows file header: %w", err)
	}
	r.probability = math.Float64frombits(bits)
	steps, err := r.readUint32()
	if err != nil {
		return fmt.Errorf("could not read rows file header: %w", err)
	}
	r.steps = int(steps)
	startBits, err := r.readUint64()
	if err != nil {
		return fmt.Errorf("could not read rows file header: %w", err)
	}
	r.start = int64(startBits)
	if r.steps <= 0 {
		return fmt.Errorf("rows file %v has an invalid number of steps (%v)", filename, r.steps)
	}
	if math.IsNaN(r.probability) || r.probability <= 0.0 || r.probability >= 1.0 {
		return fmt.Errorf("rows file %v has an invalid step probability (%v)", filename, r.probability)
	}
	return nil
}

func (r *rowReader) Probability() float64 {
	return r.probability
}

func (r *rowReader) Steps() int {
	return r.steps
}

func (r *rowReader) Start() int64 {
	return r.start
}

// ReadRow decodes the next pair of statistics. The trial number and the
// normalised statistics are derived while reading. A file ending between
// the two values of a row is reported as io.ErrUnexpectedEOF.
func (r *rowReader) ReadRow() (walk.Row, error) {
	tau, err := r.readUint32()
	if err != nil {
		return walk.Row{}, err
	}
	gamma, err := r.readUint32()
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return walk.Row{}, err
	}
	n := float64(r.steps)
	row := walk.Row{
		Trial:     r.next,
		Tau:       int(tau),
		Gamma:     int(gamma),
		TauNorm:   float64(tau) / n,
		GammaNorm: float64(gamma) / n,
	}
	r.next++
	return row, nil
}

func (r *rowReader) readData(size int) ([]byte, error) {
	var (
		err  error
		data = make([]byte, size)
	)
	if _, err = io.ReadFull(r.reader, data); err != nil {
		return nil, err
	}
	return data, nil
}

func (r *rowReader) readUint32() (uint32, error) {
	data, err := r.readData(4)
	if err != nil {
		return 0, err
	}
	return bigendian.BytesToUint32(data), nil
}

func (r *rowReader) readUint64() (uint64, error) {
	data, err := r.readData(8)
	if err != nil {
		return 0, err
	}
	return bigendian.BytesToUint64(data), nil
}

func (r *rowReader) Close() error {
	return r.closer.Close()
}

// ReadStudy loads a complete rows file back into a table.
func ReadStudy(filename string) (*walk.Table, error) {
	r, err := NewRowReader(filename)
	if err != nil {
		return nil, err
	}
	table := walk.NewTable(r.Probability(), r.Steps(), r.Start(), 0)
	for {
		row, err := r.ReadRow()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, errors.Join(err, r.Close())
		}
		table.Append(row.Tau, row.Gamma)
	}
	return table, r.Close()
}
