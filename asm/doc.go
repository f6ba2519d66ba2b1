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

// Package asm assembles svm source text into svm bytecode.
//
// The pipeline is lexer -> token stream -> code generator. The lexer (see
// Lexer) splits source into a lazy stream of Tokens: label definitions
// (":name"), label references ("@name"), string literals, number literals,
// and one token per mnemonic. Whitespace separates tokens; ';' starts a
// line comment.
//
// The code generator (see Assemble) makes a single pass over the token
// stream, emitting one or more words per token and back-patching label
// references once every definition has been seen. A program that references
// an undefined label, or defines the same label twice, fails to assemble.
//
// Negative number literals are emitted as their magnitude followed by NEG,
// since immediates on the wire must be non-negative. String literals are
// emitted as a zero terminator followed by their code points in reverse
// order, so that the PRINT macro (which pops characters off the stack)
// prints them back in source order. PRINT itself expands inline to a
// ten-word loop that enters raw mode, prints until the zero sentinel, and
// then clears raw mode (CRF), whatever mode was active before.
package asm
