package sinks

import (
	"io"

	"github.com/arielf-camacho/pue/primitives"
)

var _ = primitives.Pushee[*string](&WriterPushee[string]{})

// WriterPushee writes every pushed item to an io.Writer, followed by a
// separator.
//
// -- "a" -- "b" -- nil -->
//
// -- WriterPushee separator = "\n" --
//
// -> "a\nb\n"
//
// A failed write goes to the error handler and the rest of the stream is
// ignored.
type WriterPushee[T ~string | ~[]byte] struct {
	writer       io.Writer
	separator    string
	errorHandler func(error)
	stopped      bool
}

// WriterPusheeBuilder is a fluent builder for WriterPushee.
type WriterPusheeBuilder[T ~string | ~[]byte] struct {
	writer       io.Writer
	separator    string
	errorHandler func(error)
}

// Writer creates a new WriterPusheeBuilder for building a WriterPushee.
func Writer[T ~string | ~[]byte](w io.Writer) *WriterPusheeBuilder[T] {
	return &WriterPusheeBuilder[T]{writer: w}
}

// Separator sets what is written after every item.
func (b *WriterPusheeBuilder[T]) Separator(sep string) *WriterPusheeBuilder[T] {
	b.separator = sep
	return b
}

// ErrorHandler sets the error handler for the WriterPushee.
func (b *WriterPusheeBuilder[T]) ErrorHandler(handler func(error)) *WriterPusheeBuilder[T] {
	b.errorHandler = handler
	return b
}

// Build creates the WriterPushee.
func (b *WriterPusheeBuilder[T]) Build() *WriterPushee[T] {
	return &WriterPushee[T]{
		writer:       b.writer,
		separator:    b.separator,
		errorHandler: b.errorHandler,
	}
}

// Call implements primitives.Pushee.
func (w *WriterPushee[T]) Call(item *T) primitives.Unit {
	if w.stopped {
		return primitives.Unit{}
	}
	if item == nil {
		w.stopped = true
		return primitives.Unit{}
	}

	buf := make([]byte, 0, len(*item)+len(w.separator))
	buf = append(buf, []byte(*item)...)
	buf = append(buf, w.separator...)
	if _, err := w.writer.Write(buf); err != nil {
		w.stopped = true
		if w.errorHandler != nil {
			w.errorHandler(err)
		}
	}
	return primitives.Unit{}
}
