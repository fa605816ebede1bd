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

// zicntrCSRs is the set of CSR numbers (bits 31..20) Zicntr claims ahead of
// the general Zicsr arm.
var zicntrCSRs = map[uint32]bool{
	0xC00: true, 0xC01: true, 0xC02: true,
	0xC80: true, 0xC81: true, 0xC82: true,
}

// classifyExtension32 names the extension a 32-bit word belongs to. It
// inspects only the major opcode and the funct3/funct5/funct7/CSR
// subfields, never the rest of the word.
func classifyExtension32(word uint32) (Extension, error) {
	opcode := slice(word, 6, 0)
	funct3 := slice(word, 14, 12)

	switch opcode {
	case opMiscMem:
		switch funct3 {
		case 0b000:
			return ExtZifencei, nil
		case 0b010:
			return ExtZicboz, nil
		default:
			return 0, ErrUnknownExtension
		}
	case opAmo:
		funct5 := slice(word, 31, 27)
		if _, ok := amoFamily[funct5]; ok {
			return ExtA, nil
		}
		if funct5 == 0b01001 {
			return ExtZicfiss, nil
		}
		return 0, ErrUnknownExtension
	case opOp:
		if slice(word, 31, 25) == 0b0000001 {
			return ExtM, nil
		}
		return ExtBaseI, nil
	case opOp32:
		switch slice(word, 31, 25) {
		case 0b0000000, 0b0100000:
			return ExtBaseI, nil
		case 0b0000001:
			return ExtM, nil
		default:
			return 0, ErrUnknownExtension
		}
	case opSystem:
		switch {
		case funct3 == 0b000 && slice(word, 31, 25) == 0b0000000:
			return ExtBaseI, nil
		case funct3 == 0b000:
			return ExtPriv, nil
		case funct3 == 0b010 && zicntrCSRs[slice(word, 31, 20)]:
			return ExtZicntr, nil
		case funct3 == 0b100:
			return ExtZicfiss, nil
		default:
			return ExtZicsr, nil
		}
	default:
		return ExtBaseI, nil
	}
}
