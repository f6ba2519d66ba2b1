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

// Cell is the raw 32 bit word type shared by bytecode, the operand stack and
// memory.
type Cell int32

// StackSize and MemSize are the fixed capacities of the operand stack and of
// the addressable memory. Neither grows at runtime.
const (
	StackSize = 1024
	MemSize   = 1024
)

// Opcodes. Any negative Cell not listed here is an unknown instruction; any
// non-negative Cell is an immediate push.
const (
	OpIn   Cell = -1
	OpOut  Cell = -2
	OpAdd  Cell = -3
	OpSub  Cell = -4
	OpMul  Cell = -5
	OpDiv  Cell = -6
	OpMod  Cell = -7
	OpNeg  Cell = -8
	OpInc  Cell = -9
	OpDec  Cell = -10
	OpAnd  Cell = -11
	OpOr   Cell = -12
	OpNot  Cell = -13
	OpXor  Cell = -14
	OpShl  Cell = -15
	OpShr  Cell = -16
	OpPop  Cell = -17
	OpDup  Cell = -18
	OpSwp  Cell = -19
	OpOvr  Cell = -20
	OpLoad Cell = -21
	OpStor Cell = -22
	OpJmp  Cell = -23
	OpJe   Cell = -24
	OpJne  Cell = -25
	OpJg   Cell = -26
	OpJge  Cell = -27
	OpJl   Cell = -28
	OpJle  Cell = -29
	OpNop  Cell = -30
	OpHalt Cell = -31
	OpRf   Cell = -101
	OpCrf  Cell = -102
)
