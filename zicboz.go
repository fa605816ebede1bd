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

// ZicbozOp enumerates the cache-block-zero extension's single operation.
type ZicbozOp int

const (
	OpCBOZERO ZicbozOp = iota
)

func (ZicbozOp) Extension() Extension { return ExtZicboz }
func (ZicbozOp) Format() Format        { return FormatOnlyRs1 }
func (ZicbozOp) Mnemonic() string      { return "cbo.zero" }

// cbozCacheOp is the CBO sub-opcode (imm[11:0]) naming CBO.ZERO among the
// broader cache-block-operation family; only it is in scope here.
const cbozCacheOp = 0b100

// decodeZicboz32 assembles a CBO.ZERO instruction: only rs1 is present, and
// the destination field must be zero.
func decodeZicboz32(word uint32) (Instruction, error) {
	if slice(word, 31, 20) != cbozCacheOp {
		return Instruction{}, ErrInvalidOpcode
	}
	if slice(word, 11, 7) != 0 {
		return Instruction{}, ErrInvalidOpcode
	}
	return Instruction{
		op:     OpCBOZERO,
		format: FormatOnlyRs1,
		rs1:    regPresent(slice(word, 19, 15)),
	}, nil
}
