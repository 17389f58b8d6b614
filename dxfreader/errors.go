package dxfreader

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnexpectedToken = errors.New("unexpected token")
	ErrUnknownTable    = errors.New("unknown table")
	ErrMissingOwner    = errors.New("missing owner")
	ErrInvalidValue    = errors.New("invalid value")
	ErrUnexpectedEOF   = errors.New("unexpected end of stream")
)

// FormatError is the single failure Parse returns when a document cannot be
// reconstructed. Err is one of the sentinel errors of this package or of
// package cad.
type FormatError struct {
	File  string
	Line  int
	Token string
	Msg   string
	Err   error
}

func (e *FormatError) Error() string {
	var sb strings.Builder
	if e.File != "" {
		sb.WriteString(e.File)
		sb.WriteString(":")
	}
	if e.Line > 0 {
		fmt.Fprintf(&sb, "%d:", e.Line)
	}
	if sb.Len() > 0 {
		sb.WriteString(" ")
	}
	sb.WriteString(e.Msg)
	if e.Err != nil {
		if e.Msg != "" {
			sb.WriteString(": ")
		}
		sb.WriteString(e.Err.Error())
	}
	if e.Token != "" {
		fmt.Fprintf(&sb, " (at %q)", e.Token)
	}
	return sb.String()
}

func (e *FormatError) Unwrap() error { return e.Err }
