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

// Command svm loads a bytecode file and runs it.
//
// Usage:
//
//	svm <program-file>
package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/cndofx/svm/vm"
)

func atExit(i *vm.Instance, err error) {
	if i != nil {
		i.Flush()
	}
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "svm: %+v\n", err)
	os.Exit(1)
}

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: svm <program-file>\n")
		os.Exit(1)
	}

	i := vm.New()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	go func() {
		<-sig
		i.Flush()
		os.Exit(1)
	}()

	var err error
	defer func() { atExit(i, err) }()

	if err = i.LoadFile(os.Args[1]); err != nil {
		return
	}
	err = i.Run()
}
