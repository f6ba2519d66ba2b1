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
	"io"
	"strconv"
	"strings"
)

// doIn implements IN. In non-raw mode it prints the "?" prompt, flushes
// output, reads one line from the input reader, trims it, and parses it as a
// signed decimal integer. Raw-mode IN is unspecified by the VM and is
// reported as an IOError rather than guessed at.
func (i *Instance) doIn() error {
	if i.rf {
		return i.errf(IOError, "raw-mode IN is unsupported")
	}
	if _, err := i.output.Write([]byte{'?'}); err != nil {
		return i.wrap(IOError, err, "prompt write failed")
	}
	if err := i.output.Flush(); err != nil {
		return i.wrap(IOError, err, "prompt flush failed")
	}
	line, err := i.input.ReadString('\n')
	if err != nil && err != io.EOF {
		return i.wrap(IOError, err, "read failed")
	}
	if err == io.EOF && strings.TrimSpace(line) == "" {
		return i.wrap(IOError, io.EOF, "read failed")
	}
	v, perr := strconv.ParseInt(strings.TrimSpace(line), 10, 32)
	if perr != nil {
		return i.wrap(IOError, perr, "unable to parse number")
	}
	return i.push(Cell(v))
}

// doOut implements OUT. In non-raw mode it pops a value and prints it as a
// signed decimal followed by a newline. In raw mode it pops a value, reduces
// it modulo 256, and writes that single byte with no newline.
func (i *Instance) doOut() error {
	v, err := i.pop()
	if err != nil {
		return err
	}
	if i.rf {
		if _, err := i.output.Write([]byte{byte(uint32(v))}); err != nil {
			return i.wrap(IOError, err, "write failed")
		}
		return nil
	}
	if _, err := fmt.Fprintf(i.output, "%d\n", v); err != nil {
		return i.wrap(IOError, err, "write failed")
	}
	return nil
}
