package cad

import (
	"fmt"
	"strconv"
	"strings"
)

// Handle identifies exactly one object within a document. The zero handle
// means unset, or no owner when used as an owner reference.
type Handle uint64

func (h Handle) String() string {
	return strings.ToUpper(strconv.FormatUint(uint64(h), 16))
}

func (h Handle) IsZero() bool { return h == 0 }

// ParseHandle decodes the hexadecimal form used by DXF files.
func ParseHandle(s string) (Handle, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty handle")
	}
	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid handle %q: %w", s, err)
	}
	return Handle(v), nil
}
