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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cndofx/svm/vm"
)

func assemble(t *testing.T, src string) []vm.Cell {
	t.Helper()
	code, err := Assemble("test", strings.NewReader(src))
	require.NoError(t, err)
	return code
}

func cells(vals ...int32) []vm.Cell {
	c := make([]vm.Cell, len(vals))
	for n, v := range vals {
		c[n] = vm.Cell(v)
	}
	return c
}

func TestPushAndAdd(t *testing.T) {
	got := assemble(t, "3 4 ADD OUT HALT")
	assert.Equal(t, cells(3, 4, -3, -2, -31, -30), got)
}

func TestNegativeLiteral(t *testing.T) {
	got := assemble(t, "-5 OUT HALT")
	assert.Equal(t, cells(5, -8, -2, -31, -30), got)
}

func TestMemoryRoundTrip(t *testing.T) {
	got := assemble(t, "42 7 STOR 7 LOAD OUT HALT")
	assert.Equal(t, cells(42, 7, -22, 7, -21, -2, -31, -30), got)
}

func TestConditionalSkip(t *testing.T) {
	got := assemble(t, `
1 2 @END JE
99 OUT HALT
:END
HALT
`)
	// label END is defined right after the "99 OUT HALT" block: words
	// 1,2,JE-placeholder(->END),JE,99,OUT,HALT = indices 0..6, END at 7.
	want := cells(1, 2, 7, -24, 99, -2, -31, -31, -30)
	assert.Equal(t, want, got)
}

func TestStringLayout(t *testing.T) {
	got := assemble(t, `"abc"`)
	// terminator 0 then code points in reverse, plus the trailing NOP.
	want := cells(0, 'c', 'b', 'a', -30)
	assert.Equal(t, want, got)
}

func TestPrintExpansionLayout(t *testing.T) {
	got := assemble(t, `"Hi" PRINT HALT`)
	// "Hi" -> 0, 'i', 'H' at indices 0,1,2. PRINT starts at index 3.
	want := cells(0, 'i', 'H',
		-101, // RF
		-18,  // DUP (prn=4)
		0,
		11, // end = prn+7 = 11 (CRF)
		-24, // JE
		-2,  // OUT
		4,   // prn
		-23, // JMP
		-102, // CRF (end)
		-17,  // POP
		-31,  // HALT
		-30,  // trailing NOP
	)
	assert.Equal(t, want, got)
}

func TestLabelResolutionIdempotent(t *testing.T) {
	src := `
:LOOP
1 2 ADD
@LOOP JMP
`
	a := assemble(t, src)
	b := assemble(t, src)
	assert.Equal(t, a, b)
}

func TestJumpFixedPoint(t *testing.T) {
	got := assemble(t, `@L JMP NOP :L HALT`)
	// @L JMP -> placeholder at 0, JMP at 1, NOP at 2; L is defined at index 3.
	assert.Equal(t, vm.Cell(3), got[0])
}

func TestDuplicateLabelFails(t *testing.T) {
	_, err := Assemble("test", strings.NewReader(":A NOP :A NOP"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate label")
}

func TestUndefinedLabelFails(t *testing.T) {
	_, err := Assemble("test", strings.NewReader("@MISSING JMP"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "undefined label")
}

func TestUnknownMnemonicFails(t *testing.T) {
	_, err := Assemble("test", strings.NewReader("FROB"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid instruction")
}

func TestUnparseableNumberFails(t *testing.T) {
	_, err := Assemble("test", strings.NewReader("99999999999999999999"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unable to parse number")
}

func TestUnexpectedCharFails(t *testing.T) {
	_, err := Assemble("test", strings.NewReader("#"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected char")
}

func TestErrorsCapAtMaxErrors(t *testing.T) {
	var src strings.Builder
	for n := 0; n < maxErrors+5; n++ {
		src.WriteString("# ")
	}
	_, err := Assemble("test", strings.NewReader(src.String()))
	require.Error(t, err)
	asmErr, ok := err.(Error)
	require.True(t, ok)
	assert.Len(t, asmErr, maxErrors)
}

func TestCommentsAndWhitespaceIgnored(t *testing.T) {
	got := assemble(t, "; a comment\n  3   4 ADD ; trailing\nOUT HALT")
	assert.Equal(t, cells(3, 4, -3, -2, -31, -30), got)
}

func TestMnemonicsCaseInsensitive(t *testing.T) {
	got := assemble(t, "3 4 add out halt")
	assert.Equal(t, cells(3, 4, -3, -2, -31, -30), got)
}
