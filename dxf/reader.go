package dxf

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

var ErrBinary = errors.New("binary DXF is not supported")

const binarySentinel = "AutoCAD Binary DXF"

// Reader is a forward-only record stream. Next advances to the following
// record and returns io.EOF once the stream is exhausted; Record returns
// the record Next last advanced to.
type Reader interface {
	Next() error
	Record() Record
}

// TextReader reads the ASCII encoding: a group code line followed by a
// value line, repeated.
type TextReader struct {
	sc   *bufio.Scanner
	line int
	rec  Record
	err  error
}

func NewTextReader(r io.Reader) *TextReader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	return &TextReader{sc: sc}
}

// OpenFile opens path for reading. The caller closes the returned file.
func OpenFile(path string) (*TextReader, *os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open dxf file: %w", err)
	}
	return NewTextReader(f), f, nil
}

func (r *TextReader) Record() Record { return r.rec }

func (r *TextReader) Next() error {
	if r.err != nil {
		return r.err
	}

	codeLine, ok := r.readLine()
	if !ok {
		return r.err
	}
	if r.line == 1 {
		codeLine = strings.TrimPrefix(codeLine, "\ufeff")
		if strings.HasPrefix(codeLine, binarySentinel) {
			r.err = ErrBinary
			return r.err
		}
	}
	start := r.line

	code, err := strconv.Atoi(strings.TrimSpace(codeLine))
	if err != nil {
		r.err = fmt.Errorf("line %d: invalid group code %q", start, codeLine)
		return r.err
	}

	value, ok := r.readLine()
	if !ok {
		if r.err == io.EOF {
			r.err = fmt.Errorf("line %d: group code %d without value: %w", start, code, io.ErrUnexpectedEOF)
		}
		return r.err
	}

	r.rec = Record{Code: code, Value: value, Line: start}
	return nil
}

func (r *TextReader) readLine() (string, bool) {
	if !r.sc.Scan() {
		if err := r.sc.Err(); err != nil {
			r.err = fmt.Errorf("line %d: %w", r.line+1, err)
		} else {
			r.err = io.EOF
		}
		return "", false
	}
	r.line++
	return strings.TrimRight(r.sc.Text(), "\r"), true
}

// RecordReader replays records held in memory.
type RecordReader struct {
	records []Record
	pos     int
}

// NewRecordReader returns a reader over records. Records with no line
// number are numbered by their position, two lines per record as in the
// ASCII encoding.
func NewRecordReader(records ...Record) *RecordReader {
	rs := make([]Record, len(records))
	for i, rec := range records {
		if rec.Line == 0 {
			rec.Line = 2*i + 1
		}
		rs[i] = rec
	}
	return &RecordReader{records: rs, pos: -1}
}

func (r *RecordReader) Record() Record {
	if r.pos < 0 || r.pos >= len(r.records) {
		return Record{}
	}
	return r.records[r.pos]
}

func (r *RecordReader) Next() error {
	if r.pos+1 >= len(r.records) {
		r.pos = len(r.records)
		return io.EOF
	}
	r.pos++
	return nil
}

// Pairs builds records from alternating codes and values, which keeps
// hand-written streams readable:
//
//	dxf.Pairs(0, "SECTION", 2, "TABLES")
func Pairs(kv ...any) []Record {
	if len(kv)%2 != 0 {
		panic("dxf.Pairs: odd number of arguments")
	}
	records := make([]Record, 0, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		code, ok := kv[i].(int)
		if !ok {
			panic(fmt.Sprintf("dxf.Pairs: argument %d is %T, want int", i, kv[i]))
		}
		records = append(records, Record{Code: code, Value: fmt.Sprint(kv[i+1])})
	}
	return records
}

// WriteText writes records in the ASCII encoding.
func WriteText(w io.Writer, records []Record) error {
	bw := bufio.NewWriter(w)
	for _, rec := range records {
		if _, err := fmt.Fprintf(bw, "%3d\n%s\n", rec.Code, rec.Value); err != nil {
			return err
		}
	}
	return bw.Flush()
}
