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

// Kind discriminates the shape of a Token.
type Kind int

const (
	LabelDef Kind = iota
	LabelRef
	String
	// EscapedString is never produced by the Lexer (no escape processing
	// is implemented); the code generator treats it exactly like String.
	// The variant is kept distinct so that a future escape syntax can be
	// added without reshaping the token set.
	EscapedString
	Number

	In
	Out
	Add
	Sub
	Mul
	Div
	Mod
	Neg
	Inc
	Dec
	And
	Or
	Not
	Xor
	Shl
	Shr
	Pop
	Dup
	Swp
	Ovr
	Load
	Stor
	Jmp
	Je
	Jne
	Jg
	Jge
	Jl
	Jle
	Nop
	Halt
	Rf
	Crf
	Print
)

// mnemonics maps a case-folded mnemonic word to its token Kind.
var mnemonics = map[string]Kind{
	"IN":    In,
	"OUT":   Out,
	"ADD":   Add,
	"SUB":   Sub,
	"MUL":   Mul,
	"DIV":   Div,
	"MOD":   Mod,
	"NEG":   Neg,
	"INC":   Inc,
	"DEC":   Dec,
	"AND":   And,
	"OR":    Or,
	"NOT":   Not,
	"XOR":   Xor,
	"SHL":   Shl,
	"SHR":   Shr,
	"POP":   Pop,
	"DUP":   Dup,
	"SWP":   Swp,
	"OVR":   Ovr,
	"LOAD":  Load,
	"STOR":  Stor,
	"JMP":   Jmp,
	"JE":    Je,
	"JNE":   Jne,
	"JG":    Jg,
	"JGE":   Jge,
	"JL":    Jl,
	"JLE":   Jle,
	"NOP":   Nop,
	"HALT":  Halt,
	"RF":    Rf,
	"CRF":   Crf,
	"PRINT": Print,
}

// Token is one lexical unit of assembler source.
type Token struct {
	Kind Kind
	Text string // label/reference name, or string literal body
	Num  int32  // value for Number
	Pos  Position
}
