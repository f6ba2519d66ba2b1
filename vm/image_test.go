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
	"bytes"
	"testing"
)

func TestWriteImageLoadRoundTrip(t *testing.T) {
	code := []Cell{3, 4, OpAdd, OpOut, OpHalt}
	var buf bytes.Buffer
	if err := WriteImage(&buf, code); err != nil {
		t.Fatalf("WriteImage: %v", err)
	}
	if buf.Len() != len(code)*4 {
		t.Fatalf("got %d bytes, want %d", buf.Len(), len(code)*4)
	}

	i := New()
	if err := i.Load(&buf); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(i.program) != len(code) {
		t.Fatalf("got %d words, want %d", len(i.program), len(code))
	}
	for n, c := range code {
		if i.program[n] != c {
			t.Errorf("word %d: got %d, want %d", n, i.program[n], c)
		}
	}
}

func TestLoadRejectsShortTrailingWord(t *testing.T) {
	i := New()
	err := i.Load(bytes.NewReader([]byte{1, 2, 3}))
	if err == nil {
		t.Fatal("expected an error for truncated bytecode")
	}
	verr, ok := err.(*Error)
	if !ok || verr.Kind != IOError {
		t.Fatalf("got %v (%T), want IOError", err, err)
	}
}
