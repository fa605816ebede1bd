// Copyright 2019 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package riscv

import "fmt"

// Isa is the target register width, the only run-time parameter the decoder
// accepts. It is a caller-supplied tag, never inferred from the word itself.
type Isa int

const (
	Rv32 Isa = iota
	Rv64
)

func (w Isa) String() string {
	if w == Rv64 {
		return "rv64"
	}
	return "rv32"
}

// abiNames is the standard ABI register alias table (riscv-spec, chapter 25).
var abiNames = [32]string{
	"zero", "ra", "sp", "gp", "tp", "t0", "t1", "t2",
	"s0", "s1", "a0", "a1", "a2", "a3", "a4", "a5",
	"a6", "a7", "s2", "s3", "s4", "s5", "s6", "s7",
	"s8", "s9", "s10", "s11", "t3", "t4", "t5", "t6",
}

// ABIName renders the conventional alias for register r (e.g. "sp" for 2).
func ABIName(r uint32) string {
	if r < uint32(len(abiNames)) {
		return abiNames[r]
	}
	return fmt.Sprintf("x%d", r)
}
