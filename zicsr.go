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

// ZicsrOp enumerates the control-and-status-register extension's
// operations: three register-source forms and their immediate-source
// counterparts.
type ZicsrOp int

const (
	OpCSRRW ZicsrOp = iota
	OpCSRRS
	OpCSRRC
	OpCSRRWI
	OpCSRRSI
	OpCSRRCI
)

func (ZicsrOp) Extension() Extension { return ExtZicsr }

func (o ZicsrOp) Format() Format {
	switch o {
	case OpCSRRWI, OpCSRRSI, OpCSRRCI:
		return FormatCSRUimm
	default:
		return FormatCSR
	}
}

func (o ZicsrOp) Mnemonic() string {
	switch o {
	case OpCSRRW:
		return "csrrw"
	case OpCSRRS:
		return "csrrs"
	case OpCSRRC:
		return "csrrc"
	case OpCSRRWI:
		return "csrrwi"
	case OpCSRRSI:
		return "csrrsi"
	case OpCSRRCI:
		return "csrrci"
	default:
		return "unknown"
	}
}

// decodeZicsr32 assembles a CSR-access instruction. The rs2 slot carries
// the 12-bit CSR number for every form; register forms additionally carry
// rs1, immediate forms carry imm holding the 5-bit unsigned uimm.
func decodeZicsr32(word uint32) (Instruction, error) {
	var op ZicsrOp
	switch slice(word, 14, 12) {
	case 0b001:
		op = OpCSRRW
	case 0b010:
		op = OpCSRRS
	case 0b011:
		op = OpCSRRC
	case 0b101:
		op = OpCSRRWI
	case 0b110:
		op = OpCSRRSI
	case 0b111:
		op = OpCSRRCI
	default:
		return Instruction{}, ErrInvalidFunct3
	}

	inst := Instruction{
		op:     op,
		format: op.Format(),
		rd:     regPresent(slice(word, 11, 7)),
		rs2:    regPresent(slice(word, 31, 20)),
	}
	if op.Format() == FormatCSRUimm {
		inst.imm, inst.hasImm = int32(slice(word, 19, 15)), true
	} else {
		inst.rs1 = regPresent(slice(word, 19, 15))
	}
	return inst, nil
}
