package errors

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
)

// AnnotatedError includes more context than a plain error that is useful for troubleshooting.
type AnnotatedError struct {
	// msg is the error message.
	msg string
	// pc is the program counter for the location of the error provided by runtime.Callers.
	pc uintptr
	// attrs are slog attributes that are added to the log event to provide more context for the error.
	attrs []slog.Attr
	// wrapped is the underlying error, if any.
	wrapped error
}

func newAnnotatedError(msg string, wrapped error, attrs []slog.Attr) *AnnotatedError {
	var pcs [1]uintptr
	// Skip runtime.Callers, this function and the exported constructor.
	runtime.Callers(3, pcs[:]) //nolint:mnd // see above
	return &AnnotatedError{
		msg:     msg,
		pc:      pcs[0],
		attrs:   attrs,
		wrapped: wrapped,
	}
}

// New creates a new AnnotatedError with the given message and attributes.
func New(msg string, attrs ...slog.Attr) *AnnotatedError {
	return newAnnotatedError(msg, nil, attrs)
}

// NewSentinel creates a plain error without other context that can be used as sentinel error that can be detected
// with errors.Is.
func NewSentinel(msg string) error {
	return errors.New(msg)
}

// Wrap adds a message, the caller's source location and attributes to err.
func Wrap(err error, msg string, attrs ...slog.Attr) error {
	return newAnnotatedError(msg, err, attrs)
}

// Wrap is a convenience function for wrapping errors, e.g., adding context to a sentinel error.
func (e *AnnotatedError) Wrap(err error) error {
	return fmt.Errorf("%w: %w", e, err)
}

// Error implements error interface.
func (e *AnnotatedError) Error() string {
	if e.wrapped == nil {
		return e.msg
	}
	return fmt.Sprintf("%s: %s", e.msg, e.wrapped.Error())
}

// Unwrap returns the wrapped error so that errors.Is and errors.As see through the annotation.
func (e *AnnotatedError) Unwrap() error {
	return e.wrapped
}

func (e *AnnotatedError) source() slog.Attr {
	frames := runtime.CallersFrames([]uintptr{e.pc})
	frame, _ := frames.Next()
	return slog.String("source", fmt.Sprintf("%s:%d", frame.File, frame.Line))
}

// LogValue formats the error for useful logging.
func (e *AnnotatedError) LogValue() slog.Value {
	attrs := append([]slog.Attr{e.source()}, e.attrs...)
	return slog.GroupValue(attrs...)
}

// SlogError returns an attribute describing err. Attributes of every AnnotatedError in the chain are collected
// and the source location points at the innermost annotation so that developers can locate it faster.
func SlogError(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "<nil>")
	}
	var (
		attrs     = []slog.Attr{slog.String("message", err.Error())}
		innermost *AnnotatedError
	)
	for e := err; e != nil; e = errors.Unwrap(e) {
		if annotated, ok := e.(*AnnotatedError); ok {
			attrs = append(attrs, annotated.attrs...)
			innermost = annotated
		}
	}
	if innermost != nil {
		attrs = append(attrs, innermost.source())
	}
	return slog.Attr{Key: "error", Value: slog.GroupValue(attrs...)}
}

// As exposes stdlib errors.As.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Is exposes stdlib errors.Is.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// Unwrap exposes stdlib errors.Unwrap.
func Unwrap(err error) error {
	return errors.Unwrap(err)
}

// Join exposes stdlib errors.Join.
func Join(errs ...error) error {
	return errors.Join(errs...)
}
