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

package vm

import (
	"bufio"
	"io"
	"os"

	"github.com/cndofx/svm/internal/errwriter"
)

// Option configures an Instance at construction time.
type Option func(*Instance)

// Input sets the reader used by the non-raw IN instruction to read a line of
// decimal input. Defaults to os.Stdin.
func Input(r io.Reader) Option {
	return func(i *Instance) { i.input = bufio.NewReader(r) }
}

// Output sets the writer used by OUT and by the IN prompt. Defaults to
// os.Stdout. Writes are latched through an errwriter.Writer so that once a
// write fails, later writes return the same error instead of retrying.
func Output(w io.Writer) Option {
	return func(i *Instance) { i.output = errwriter.New(w) }
}

// Instance is a single svm virtual machine. Its stack and memory are owned
// exclusively for the lifetime of the instance; there is no reset and no
// re-entry.
type Instance struct {
	program []Cell
	stack   [StackSize]Cell
	sp      int
	memory  [MemSize]Cell
	ip      int
	hf      bool
	rf      bool

	input  *bufio.Reader
	output *errwriter.Writer

	insCount int64
}

// New creates a new Instance with an empty program and zero-initialized
// memory.
func New(opts ...Option) *Instance {
	i := &Instance{
		input:  bufio.NewReader(os.Stdin),
		output: errwriter.New(os.Stdout),
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// IP returns the current instruction pointer.
func (i *Instance) IP() int { return i.ip }

// Halted reports whether HALT has been executed.
func (i *Instance) Halted() bool { return i.hf }

// RawMode reports whether raw mode (set by RF, cleared by CRF) is active.
func (i *Instance) RawMode() bool { return i.rf }

// InstructionCount returns the number of instructions dispatched so far by
// the most recent call to Run.
func (i *Instance) InstructionCount() int64 { return i.insCount }

// Stack returns the live portion of the operand stack, bottom first. The
// returned slice aliases the instance's storage and is only valid until the
// next call that mutates the stack.
func (i *Instance) Stack() []Cell { return i.stack[:i.sp] }

// Memory returns the full 1024-word memory array. The returned slice aliases
// the instance's storage.
func (i *Instance) Memory() []Cell { return i.memory[:] }

// Program returns the loaded program words.
func (i *Instance) Program() []Cell { return i.program }

// Flush flushes buffered output. Run flushes automatically on return; Flush
// exists so a caller that interrupts a run early (e.g. on SIGINT) can still
// deliver whatever output was already produced.
func (i *Instance) Flush() error { return i.output.Flush() }
