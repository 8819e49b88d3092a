package decode

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrUnknownChart      = errors.New("unknown chart type")
	ErrInvalidDocument   = errors.New("invalid document")
)

type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

type OptionError struct {
	Option string
	Chart  string
	File   string
	Err    error
	Position
}

func (e OptionError) Error() string {
	msg := fmt.Sprintf("option %s invalid in chart %s", e.Option, e.Chart)
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %s", msg, e.Err)
	}
	if e.File != "" {
		msg = fmt.Sprintf("%s (%s:%s)", msg, e.File, e.Position)
	}
	return msg
}

func (e OptionError) Unwrap() error {
	return e.Err
}

type DecodeError struct {
	Message string
	File    string
	Position
}

func (e DecodeError) Error() string {
	if e.File == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.File, e.Message)
}

func (e DecodeError) Unwrap() error {
	return ErrInvalidDocument
}
