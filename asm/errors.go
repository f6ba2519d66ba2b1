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

package asm

import (
	"fmt"
	"strings"
)

// maxErrors bounds how many diagnostics a single Assemble call accumulates
// before giving up, so that a badly broken source file doesn't produce an
// unbounded error list.
const maxErrors = 10

// Position identifies a location in assembler source.
type Position struct {
	Name string
	Line int
	Col  int
}

func (p Position) String() string {
	return fmt.Sprintf("%s:%d:%d", p.Name, p.Line, p.Col)
}

// diag is a single positioned diagnostic.
type diag struct {
	Pos Position
	Msg string
}

func (d diag) String() string {
	return fmt.Sprintf("%s: %s", d.Pos, d.Msg)
}

// Error is the error type returned by Assemble. It carries every diagnostic
// collected before assembly was aborted, up to maxErrors.
type Error []diag

func (e Error) Error() string {
	l := make([]string, len(e))
	for n, d := range e {
		l[n] = d.String()
	}
	return strings.Join(l, "\n")
}

func errUnexpectedChar(pos Position, ch rune) diag {
	return diag{pos, fmt.Sprintf("unexpected char %q", ch)}
}

func errInvalidInstruction(pos Position, word string) diag {
	return diag{pos, fmt.Sprintf("invalid instruction: %q", word)}
}

func errParseNumber(pos Position, word string) diag {
	return diag{pos, fmt.Sprintf("unable to parse number %q", word)}
}

func errDuplicateLabel(pos Position, name string) diag {
	return diag{pos, fmt.Sprintf("duplicate label %q", name)}
}

func errUndefinedLabel(pos Position, name string) diag {
	return diag{pos, fmt.Sprintf("undefined label %q", name)}
}
