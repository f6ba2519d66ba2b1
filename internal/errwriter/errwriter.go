// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package errwriter wraps an io.Writer to latch the first write error. Once a
// write fails, every subsequent call returns the same error without
// attempting to write again.
package errwriter

import (
	"bufio"
	"io"
	"sync"

	"github.com/pkg/errors"
)

// Writer wraps an io.Writer and remembers its first error. Write and Flush
// may be called concurrently, e.g. from a signal handler flushing output
// while a run is still in progress; a mutex guards the buffered writer and
// the latched error.
type Writer struct {
	mu  sync.Mutex
	w   *bufio.Writer
	Err error
}

// New wraps w in a buffered, error-latching Writer.
func New(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// Write implements io.Writer. Once Err is set, Write keeps returning it
// without touching the underlying writer.
func (w *Writer) Write(p []byte) (n int, err error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.Err != nil {
		return 0, w.Err
	}
	n, err = w.w.Write(p)
	if err != nil {
		w.Err = errors.Wrap(err, "write failed")
	}
	return n, w.Err
}

// Flush flushes any buffered bytes to the underlying writer.
func (w *Writer) Flush() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.Err != nil {
		return w.Err
	}
	if err := w.w.Flush(); err != nil {
		w.Err = errors.Wrap(err, "flush failed")
		return w.Err
	}
	return nil
}
