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
	"fmt"

	"github.com/pkg/errors"
)

// Kind discriminates the fatal error taxonomy a VM run can terminate with.
type Kind int

const (
	// StackOverflow is returned when a push would exceed StackSize.
	StackOverflow Kind = iota
	// CorruptStack is returned when a pop or peek needs more entries than
	// the stack holds.
	CorruptStack
	// InvalidMemoryAddress is returned when a LOAD, STOR or jump address
	// falls outside [0, MemSize).
	InvalidMemoryAddress
	// UnknownInstruction is returned for a negative word outside the
	// defined opcode set.
	UnknownInstruction
	// IOError is returned for any failure of standard-stream I/O, for a
	// malformed IN input, for division/modulus by zero, or for an
	// unsupported raw-mode IN.
	IOError
)

func (k Kind) String() string {
	switch k {
	case StackOverflow:
		return "stack overflow"
	case CorruptStack:
		return "corrupt stack"
	case InvalidMemoryAddress:
		return "invalid memory address"
	case UnknownInstruction:
		return "unknown instruction"
	case IOError:
		return "IO error"
	default:
		return "unknown error kind"
	}
}

// Error is the error type returned by Run and Load. It records the kind of
// fatal condition and the instruction pointer at which it was detected.
type Error struct {
	Kind Kind
	IP   int
	err  error
}

func (e *Error) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s at ip=%d: %v", e.Kind, e.IP, e.err)
	}
	return fmt.Sprintf("%s at ip=%d", e.Kind, e.IP)
}

// Unwrap exposes the underlying cause, if any, for use with errors.Is/As.
func (e *Error) Unwrap() error { return e.err }

// Format implements fmt.Formatter so that "%+v" prints a stack trace for the
// wrapped cause, same as github.com/pkg/errors values do.
func (e *Error) Format(s fmt.State, verb rune) {
	if verb == 'v' && s.Flag('+') {
		fmt.Fprintf(s, "%s at ip=%d", e.Kind, e.IP)
		if e.err != nil {
			fmt.Fprintf(s, ": %+v", e.err)
		}
		return
	}
	fmt.Fprint(s, e.Error())
}

func (i *Instance) errf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, IP: i.ip, err: errors.Errorf(format, args...)}
}

func (i *Instance) wrap(kind Kind, err error, msg string) *Error {
	return &Error{Kind: kind, IP: i.ip, err: errors.Wrap(err, msg)}
}
