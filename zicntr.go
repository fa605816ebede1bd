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

// ZicntrOp enumerates the base counters-and-timers extension's operations.
type ZicntrOp int

const (
	OpRDCYCLE ZicntrOp = iota
	OpRDTIME
	OpRDINSTRET
	OpRDCYCLEH
	OpRDTIMEH
	OpRDINSTRETH
)

func (ZicntrOp) Extension() Extension { return ExtZicntr }
func (ZicntrOp) Format() Format        { return FormatOnlyRd }

func (o ZicntrOp) Mnemonic() string {
	switch o {
	case OpRDCYCLE:
		return "rdcycle"
	case OpRDTIME:
		return "rdtime"
	case OpRDINSTRET:
		return "rdinstret"
	case OpRDCYCLEH:
		return "rdcycleh"
	case OpRDTIMEH:
		return "rdtimeh"
	case OpRDINSTRETH:
		return "rdinstreth"
	default:
		return "unknown"
	}
}

var zicntrByCSR = map[uint32]ZicntrOp{
	0xC00: OpRDCYCLE,
	0xC01: OpRDTIME,
	0xC02: OpRDINSTRET,
	0xC80: OpRDCYCLEH,
	0xC81: OpRDTIMEH,
	0xC82: OpRDINSTRETH,
}

// decodeZicntr32 assembles a base-counter read. The classifier has already
// confirmed funct3 == 010 (CSRRS) and a recognized CSR number; the rs1
// field is not checked. Only rd is present.
func decodeZicntr32(word uint32) (Instruction, error) {
	op, ok := zicntrByCSR[slice(word, 31, 20)]
	if !ok {
		return Instruction{}, ErrInvalidOpcode
	}
	return Instruction{
		op:     op,
		format: FormatOnlyRd,
		rd:     regPresent(slice(word, 11, 7)),
	}, nil
}
