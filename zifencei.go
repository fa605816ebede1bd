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

// ZifenceiOp enumerates the Zifencei extension's single operation.
type ZifenceiOp int

const (
	OpFENCE ZifenceiOp = iota
)

func (ZifenceiOp) Extension() Extension { return ExtZifencei }
func (ZifenceiOp) Format() Format        { return FormatI }
func (ZifenceiOp) Mnemonic() string      { return "fence" }

// decodeZifencei32 assembles a FENCE instruction: rd and rs1 are present
// but ignored by real hardware; imm carries the fm|pred|succ bits verbatim.
func decodeZifencei32(word uint32) (Instruction, error) {
	if slice(word, 14, 12) != 0b000 {
		return Instruction{}, ErrInvalidFunct3
	}
	return Instruction{
		op:     OpFENCE,
		format: FormatI,
		rd:     regPresent(slice(word, 11, 7)),
		rs1:    regPresent(slice(word, 19, 15)),
		imm:    int32(slice(word, 31, 20)),
		hasImm: true,
	}, nil
}
