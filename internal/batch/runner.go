package batch

import (
	"errors"
	"fmt"
	"io"
	"runtime/debug"
	"strings"
)

// Summary is the tally of a batch run.
type Summary struct {
	Success int
	Errors  int
}

// PanicError carries a panic recovered while processing one file.
type PanicError struct {
	Value interface{}
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// FileFunc processes one input file.
type FileFunc func(path string) error

// Runner processes files one at a time and keeps going after failures.
//
// The hooks are optional. Before runs ahead of each file; After runs once the
// file is done with its outcome (nil on success). When Trace is set, every
// failure is followed by its error chain and, for panics, the stack.
type Runner struct {
	Out    io.Writer
	Trace  bool
	Before func(path string)
	After  func(path string, err error)
}

// Run calls fn for each file in order and returns the tally.
func (r *Runner) Run(files []string, fn FileFunc) Summary {
	var summary Summary

	for _, path := range files {
		if r.Before != nil {
			r.Before(path)
		}

		err := protect(path, fn)
		if err != nil {
			summary.Errors++
		} else {
			summary.Success++
		}

		if r.After != nil {
			r.After(path, err)
		}
		if err != nil && r.Trace && r.Out != nil {
			fmt.Fprint(r.Out, FormatTrace(err))
		}
	}

	return summary
}

// protect runs fn, turning a panic into a *PanicError.
func protect(path string, fn FileFunc) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = &PanicError{Value: p, Stack: debug.Stack()}
		}
	}()
	return fn(path)
}

// FormatTrace renders err as a traceback: the outermost message first, then
// each wrapped cause, then the goroutine stack if err came from a panic.
func FormatTrace(err error) string {
	var b strings.Builder
	b.WriteString("Traceback:\n")

	depth := 0
	for e := err; e != nil; e = errors.Unwrap(e) {
		fmt.Fprintf(&b, "%s%s\n", strings.Repeat("  ", depth+1), e.Error())
		depth++
	}

	var pe *PanicError
	if errors.As(err, &pe) && len(pe.Stack) > 0 {
		b.Write(pe.Stack)
		if pe.Stack[len(pe.Stack)-1] != '\n' {
			b.WriteByte('\n')
		}
	}

	return b.String()
}
