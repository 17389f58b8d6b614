package dxf

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dhamidi/cadkit/cad"
)

// Record is one (group code, value) pair. Value holds the text as read;
// the typed accessors decode it on demand.
type Record struct {
	Code  int
	Value string
	Line  int
}

func (r Record) String() string {
	return fmt.Sprintf("%d %s", r.Code, r.Value)
}

// Token returns the value without surrounding blanks, the form structural
// tokens, names and handles are compared in.
func (r Record) Token() string {
	return strings.TrimSpace(r.Value)
}

// Is reports whether r carries the given code and token.
func (r Record) Is(code int, token string) bool {
	return r.Code == code && r.Token() == token
}

func (r Record) Int() (int, error) {
	v, err := strconv.Atoi(r.Token())
	if err != nil {
		// Some writers emit integral values with a fraction.
		f, ferr := strconv.ParseFloat(r.Token(), 64)
		if ferr != nil || f != float64(int(f)) {
			return 0, fmt.Errorf("code %d: invalid integer %q", r.Code, r.Value)
		}
		return int(f), nil
	}
	return v, nil
}

func (r Record) Int16() (int16, error) {
	v, err := r.Int()
	if err != nil {
		return 0, err
	}
	if v < -32768 || v > 32767 {
		return 0, fmt.Errorf("code %d: value %d out of range", r.Code, v)
	}
	return int16(v), nil
}

func (r Record) Float() (float64, error) {
	v, err := strconv.ParseFloat(r.Token(), 64)
	if err != nil {
		return 0, fmt.Errorf("code %d: invalid number %q", r.Code, r.Value)
	}
	return v, nil
}

func (r Record) Bool() (bool, error) {
	v, err := r.Int()
	if err != nil {
		return false, err
	}
	return v != 0, nil
}

func (r Record) Handle() (cad.Handle, error) {
	h, err := cad.ParseHandle(r.Value)
	if err != nil {
		return 0, fmt.Errorf("code %d: %w", r.Code, err)
	}
	return h, nil
}
