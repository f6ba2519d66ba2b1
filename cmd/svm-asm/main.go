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

// Command svm-asm assembles a source file into a bytecode file.
//
// Usage:
//
//	svm-asm <infile> <outfile>
package main

import (
	"fmt"
	"os"

	"github.com/cndofx/svm/asm"
	"github.com/cndofx/svm/vm"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintf(os.Stderr, "usage: svm-asm <infile> <outfile>\n")
		os.Exit(1)
	}
	inName, outName := os.Args[1], os.Args[2]

	in, err := os.Open(inName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "svm-asm: %v\n", err)
		os.Exit(1)
	}
	defer in.Close()

	code, err := asm.Assemble(inName, in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "svm-asm: %v\n", err)
		os.Exit(1)
	}

	out, err := os.Create(outName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "svm-asm: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	if err := vm.WriteImage(out, code); err != nil {
		fmt.Fprintf(os.Stderr, "svm-asm: %v\n", err)
		os.Exit(1)
	}
}
