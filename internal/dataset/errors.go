package dataset

import (
	"errors"
	"fmt"
)

// ErrMalformedInput 结构性输入错误的哨兵值，可用 errors.Is 判断
var ErrMalformedInput = errors.New("malformed input")

// MalformedInputError 缺列、类型错误、主键重复等结构性问题，整个加载失败
type MalformedInputError struct {
	Source string
	Line   int
	Column string
	Reason string
}

func (e *MalformedInputError) Error() string {
	msg := "malformed input in " + e.Source
	if e.Line > 0 {
		msg += fmt.Sprintf(" line %d", e.Line)
	}
	if e.Column != "" {
		msg += fmt.Sprintf(" column %q", e.Column)
	}
	return msg + ": " + e.Reason
}

func (e *MalformedInputError) Is(target error) bool {
	return target == ErrMalformedInput
}

func malformed(source string, line int, column, format string, args ...any) *MalformedInputError {
	return &MalformedInputError{
		Source: source,
		Line:   line,
		Column: column,
		Reason: fmt.Sprintf(format, args...),
	}
}
