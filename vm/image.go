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
	"bufio"
	"encoding/binary"
	"io"
	"os"

	"github.com/pkg/errors"
)

// Load reads a little-endian stream of signed 32-bit words from r and
// appends them to the program. The stream length must be a multiple of 4
// bytes, matching the on-disk bytecode format; a short trailing read is
// reported as an IOError.
func (i *Instance) Load(r io.Reader) error {
	br := bufio.NewReader(r)
	for {
		var raw int32
		err := binary.Read(br, binary.LittleEndian, &raw)
		switch err {
		case nil:
			i.program = append(i.program, Cell(raw))
		case io.EOF:
			return nil
		case io.ErrUnexpectedEOF:
			return i.wrap(IOError, err, "bytecode length is not a multiple of 4 bytes")
		default:
			return i.wrap(IOError, err, "read failed")
		}
	}
}

// LoadFile opens fileName and loads its contents as bytecode (see Load).
func (i *Instance) LoadFile(fileName string) error {
	f, err := os.Open(fileName)
	if err != nil {
		return i.wrap(IOError, err, "open failed")
	}
	defer f.Close()
	return i.Load(f)
}

// WriteImage writes code to w as a little-endian stream of signed 32-bit
// words, the same format Load reads. It is used by the assembler to emit a
// bytecode file.
func WriteImage(w io.Writer, code []Cell) error {
	bw := bufio.NewWriter(w)
	for _, c := range code {
		if err := binary.Write(bw, binary.LittleEndian, int32(c)); err != nil {
			return errors.Wrap(err, "write failed")
		}
	}
	return bw.Flush()
}
