package main

import (
	"fmt"
)

type ParseError struct {
	File   string
	Line   int
	Column int
	Err    error
}

func (e ParseError) Error() string {
	return fmt.Sprintf("%s:%d: column %d: %s", e.File, e.Line, e.Column, e.Err)
}

func (e ParseError) Unwrap() error {
	return e.Err
}

type ColumnError struct {
	File   string
	Line   int
	Column int
	Count  int
}

func (e ColumnError) Error() string {
	return fmt.Sprintf("%s:%d: column %d out of range (%d columns)", e.File, e.Line, e.Column, e.Count)
}
