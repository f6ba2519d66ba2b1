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

// Package vm implements the stack-oriented virtual machine described by the
// svm instruction set: a flat program of signed 32-bit words, a 1024-word
// operand stack, a 1024-word random access memory and a single instruction
// pointer.
//
// Non-negative words are immediates: they push themselves on the operand
// stack. Negative words in a reserved range are opcodes (see the Op
// constants). Any other negative word is an unknown instruction and halts
// execution with an error.
//
// An Instance is created with New, loaded with Load or LoadFile, and run
// once to completion with Run. There is no reset and no re-entry; build a
// new Instance to run a program again.
package vm
