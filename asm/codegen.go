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
	"io"

	"github.com/cndofx/svm/vm"
)

// opWords maps a mnemonic Kind to the single opcode word it emits. Kinds not
// present here (LabelDef, LabelRef, String, EscapedString, Number, Print) are
// handled specially by the generator.
var opWords = map[Kind]vm.Cell{
	In:   vm.OpIn,
	Out:  vm.OpOut,
	Add:  vm.OpAdd,
	Sub:  vm.OpSub,
	Mul:  vm.OpMul,
	Div:  vm.OpDiv,
	Mod:  vm.OpMod,
	Neg:  vm.OpNeg,
	Inc:  vm.OpInc,
	Dec:  vm.OpDec,
	And:  vm.OpAnd,
	Or:   vm.OpOr,
	Not:  vm.OpNot,
	Xor:  vm.OpXor,
	Shl:  vm.OpShl,
	Shr:  vm.OpShr,
	Pop:  vm.OpPop,
	Dup:  vm.OpDup,
	Swp:  vm.OpSwp,
	Ovr:  vm.OpOvr,
	Load: vm.OpLoad,
	Stor: vm.OpStor,
	Jmp:  vm.OpJmp,
	Je:   vm.OpJe,
	Jne:  vm.OpJne,
	Jg:   vm.OpJg,
	Jge:  vm.OpJge,
	Jl:   vm.OpJl,
	Jle:  vm.OpJle,
	Nop:  vm.OpNop,
	Halt: vm.OpHalt,
	Rf:   vm.OpRf,
	Crf:  vm.OpCrf,
}

// labelRef is a forward or backward reference to a label, recorded at the
// program index that needs back-patching once the label's address is known.
type labelRef struct {
	name string
	at   int
	pos  Position
}

// generator holds the single-pass code generation state: the emitted code
// buffer, the label definition table, and the list of references awaiting
// back-patching.
type generator struct {
	code []vm.Cell
	defs map[string]int
	refs []labelRef
	errs []diag
}

func (g *generator) fail(d diag) {
	g.errs = append(g.errs, d)
}

func (g *generator) full() bool {
	return len(g.errs) >= maxErrors
}

func (g *generator) emit(c vm.Cell) {
	g.code = append(g.code, c)
}

// Assemble reads svm source text from r and returns the assembled bytecode.
// name tags diagnostics with a source name (typically the input file name).
func Assemble(name string, r io.Reader) ([]vm.Cell, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	lex := NewLexer(name, string(src))
	g := &generator{defs: make(map[string]int)}

	for {
		tok, lexErr := lex.Next()
		if lexErr == io.EOF {
			break
		}
		if lexErr != nil {
			g.fail(diag(lexErr.(tokenError)))
			if g.full() {
				break
			}
			continue
		}
		g.emitToken(tok)
		if g.full() {
			break
		}
	}

	// Safety pad: guarantees any trailing jump target computed against
	// len(code) before this point still lands inside the program.
	g.emit(vm.OpNop)

	g.resolve()

	if len(g.errs) > 0 {
		return nil, Error(g.errs)
	}
	return g.code, nil
}

func (g *generator) emitToken(tok Token) {
	switch tok.Kind {
	case LabelDef:
		if _, dup := g.defs[tok.Text]; dup {
			g.fail(errDuplicateLabel(tok.Pos, tok.Text))
			return
		}
		g.defs[tok.Text] = len(g.code)

	case LabelRef:
		g.refs = append(g.refs, labelRef{name: tok.Text, at: len(g.code), pos: tok.Pos})
		g.emit(0) // placeholder, back-patched in resolve

	case Number:
		g.emitNumber(tok.Num)

	case String, EscapedString:
		g.emitString(tok.Text)

	case Print:
		g.emitPrint()

	default:
		op, ok := opWords[tok.Kind]
		if !ok {
			// Unreachable: every Kind the lexer produces is handled above
			// or present in opWords.
			g.fail(errInvalidInstruction(tok.Pos, tok.Text))
			return
		}
		g.emit(op)
	}
}

// emitNumber emits a non-negative literal directly. Negative literals are
// emitted as their magnitude followed by NEG, since the wire format only
// carries non-negative immediates; unary negation restores the sign at run
// time.
func (g *generator) emitNumber(n int32) {
	if n >= 0 {
		g.emit(vm.Cell(n))
		return
	}
	g.emit(vm.Cell(-int64(n)))
	g.emit(vm.OpNeg)
}

// emitString emits a zero terminator followed by the string's code points in
// reverse order, so that a loop which pops and prints characters (see
// emitPrint) encounters them front-to-back.
func (g *generator) emitString(s string) {
	runes := []rune(s)
	g.emit(0)
	for i := len(runes) - 1; i >= 0; i-- {
		g.emit(vm.Cell(runes[i]))
	}
}

// emitPrint expands PRINT into a fixed ten-word loop: enter raw mode, then
// repeatedly duplicate the top of stack, compare it against the zero
// terminator, print and loop while nonzero, and finally leave raw mode and
// discard the terminator.
//
//	RF
//	DUP
//	0
//	end
//	JE
//	OUT
//	prn
//	JMP
//	CRF
//	POP
func (g *generator) emitPrint() {
	base := len(g.code)
	prn := base + 1 // address of DUP, where the loop jumps back to
	end := prn + 7  // address of CRF, where JE lands once the sentinel is seen

	g.emit(vm.OpRf)      // base+0
	g.emit(vm.OpDup)     // base+1 (prn)
	g.emit(0)            // base+2
	g.emit(vm.Cell(end)) // base+3
	g.emit(vm.OpJe)      // base+4
	g.emit(vm.OpOut)     // base+5
	g.emit(vm.Cell(prn)) // base+6
	g.emit(vm.OpJmp)     // base+7
	g.emit(vm.OpCrf)     // base+8 (end)
	g.emit(vm.OpPop)     // base+9
}

// resolve back-patches every recorded label reference now that all
// definitions have been seen, failing with an undefined-label diagnostic for
// any reference whose name was never defined.
func (g *generator) resolve() {
	for _, ref := range g.refs {
		addr, ok := g.defs[ref.name]
		if !ok {
			if !g.full() {
				g.fail(errUndefinedLabel(ref.pos, ref.name))
			}
			continue
		}
		g.code[ref.at] = vm.Cell(addr)
	}
}
