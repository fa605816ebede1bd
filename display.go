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

// String renders the instruction per its format tag, using the standard
// ABI register alias table.
func (i Instruction) String() string {
	m := i.op.Mnemonic()
	r := func(slot regSlot) string { return ABIName(slot.v) }

	switch i.format {
	case FormatR, FormatM, FormatA:
		return fmt.Sprintf("%s %s, %s, %s", m, r(i.rd), r(i.rs1), r(i.rs2))
	case FormatALR:
		return fmt.Sprintf("%s %s, %s, %d", m, r(i.rd), r(i.rs1), i.imm)
	case FormatRShamt:
		return fmt.Sprintf("%s %s, %s", m, r(i.rd), r(i.rs1))
	case FormatI, FormatCL:
		return fmt.Sprintf("%s %s, %s, %d", m, r(i.rd), r(i.rs1), i.imm)
	case FormatS, FormatCS:
		return fmt.Sprintf("%s %s, %d(%s)", m, r(i.rs1), i.imm, r(i.rs2))
	case FormatB:
		return fmt.Sprintf("%s %s, %d(%s)", m, r(i.rs1), i.imm, r(i.rs2))
	case FormatU, FormatJ:
		return fmt.Sprintf("%s %s, 0x%x", m, r(i.rd), uint32(i.imm))
	case FormatCIW:
		return fmt.Sprintf("%s %s, sp, %d", m, r(i.rd), i.imm)
	case FormatCSS:
		return fmt.Sprintf("%s %s, %d(sp)", m, r(i.rs2), i.imm)
	case FormatCJ:
		return fmt.Sprintf("%s %d", m, i.imm)
	case FormatCI:
		return fmt.Sprintf("%s %s, %s, %d", m, r(i.rd), r(i.rd), i.imm)
	case FormatCR:
		switch i.op {
		case OpCEBREAK:
			return m
		case OpCJR:
			return fmt.Sprintf("%s zero, 0(%s)", m, r(i.rs1))
		case OpCJALR:
			return fmt.Sprintf("%s ra, 0(%s)", m, r(i.rs1))
		case OpCMV:
			return fmt.Sprintf("%s %s, %s", m, r(i.rd), r(i.rs2))
		default: // OpCADD
			return fmt.Sprintf("%s %s, %s, %s", m, r(i.rd), r(i.rd), r(i.rs2))
		}
	case FormatCA:
		return fmt.Sprintf("%s %s, %s, %s", m, r(i.rd), r(i.rd), r(i.rs2))
	case FormatCB:
		return fmt.Sprintf("%s %s, %d", m, r(i.rs1), i.imm)
	case FormatCSR:
		return fmt.Sprintf("%s %s, 0x%x, %s", m, r(i.rd), i.rs2.v, r(i.rs1))
	case FormatCSRUimm:
		return fmt.Sprintf("%s %s, %d, %d", m, r(i.rd), i.rs2.v, i.imm)
	case FormatOnlyRd:
		return fmt.Sprintf("%s %s", m, r(i.rd))
	case FormatOnlyRs1:
		return fmt.Sprintf("%s %s", m, r(i.rs1))
	case FormatOnlyRs2:
		return fmt.Sprintf("%s %s", m, r(i.rs2))
	case FormatNoOperand:
		return m
	default:
		return m
	}
}
