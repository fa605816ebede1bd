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

// COp enumerates the compressed-instruction extension's operations.
type COp int

const (
	OpCADDI4SPN COp = iota
	OpCLW
	OpCLD
	OpCSW
	OpCSD
	OpCADDI
	OpCJAL
	OpCADDIW
	OpCLI
	OpCADDI16SP
	OpCLUI
	OpCSRLI
	OpCSRAI
	OpCANDI
	OpCSUB
	OpCXOR
	OpCOR
	OpCAND
	OpCSUBW
	OpCADDW
	OpCJ
	OpCBEQZ
	OpCBNEZ
	OpCSLLI
	OpCLWSP
	OpCLDSP
	OpCJR
	OpCMV
	OpCEBREAK
	OpCJALR
	OpCADD
	OpCSWSP
	OpCSDSP
)

func (COp) Extension() Extension { return ExtC }

func (o COp) Format() Format {
	switch o {
	case OpCADDI4SPN:
		return FormatCIW
	case OpCLW, OpCLD:
		return FormatCL
	case OpCSW, OpCSD:
		return FormatCS
	case OpCADDI, OpCADDIW, OpCLI, OpCADDI16SP, OpCLUI, OpCSLLI, OpCLWSP, OpCLDSP:
		return FormatCI
	case OpCJAL, OpCJ:
		return FormatCJ
	case OpCSRLI, OpCSRAI, OpCANDI, OpCBEQZ, OpCBNEZ:
		return FormatCB
	case OpCSUB, OpCXOR, OpCOR, OpCAND, OpCSUBW, OpCADDW:
		return FormatCA
	case OpCJR, OpCMV, OpCEBREAK, OpCJALR, OpCADD:
		return FormatCR
	case OpCSWSP, OpCSDSP:
		return FormatCSS
	default:
		return FormatCI
	}
}

func (o COp) Mnemonic() string {
	switch o {
	case OpCADDI4SPN:
		return "c.addi4spn"
	case OpCLW:
		return "c.lw"
	case OpCLD:
		return "c.ld"
	case OpCSW:
		return "c.sw"
	case OpCSD:
		return "c.sd"
	case OpCADDI:
		return "c.addi"
	case OpCJAL:
		return "c.jal"
	case OpCADDIW:
		return "c.addiw"
	case OpCLI:
		return "c.li"
	case OpCADDI16SP:
		return "c.addi16sp"
	case OpCLUI:
		return "c.lui"
	case OpCSRLI:
		return "c.srli"
	case OpCSRAI:
		return "c.srai"
	case OpCANDI:
		return "c.andi"
	case OpCSUB:
		return "c.sub"
	case OpCXOR:
		return "c.xor"
	case OpCOR:
		return "c.or"
	case OpCAND:
		return "c.and"
	case OpCSUBW:
		return "c.subw"
	case OpCADDW:
		return "c.addw"
	case OpCJ:
		return "c.j"
	case OpCBEQZ:
		return "c.beqz"
	case OpCBNEZ:
		return "c.bnez"
	case OpCSLLI:
		return "c.slli"
	case OpCLWSP:
		return "c.lwsp"
	case OpCLDSP:
		return "c.ldsp"
	case OpCJR:
		return "c.jr"
	case OpCMV:
		return "c.mv"
	case OpCEBREAK:
		return "c.ebreak"
	case OpCJALR:
		return "c.jalr"
	case OpCADD:
		return "c.add"
	case OpCSWSP:
		return "c.swsp"
	case OpCSDSP:
		return "c.sdsp"
	default:
		return "unknown"
	}
}

const (
	regZero uint32 = 0
	regRA   uint32 = 1
	regSP   uint32 = 2
)

// rvcRegOffset maps a compressed 3-bit "short" register field (x8..x15)
// onto the full 5-bit register file.
const rvcRegOffset = 8

func decodeCR(in uint16) (r1, r2 uint32)  { return uint32(in>>7) & 0x1f, uint32(in>>2) & 0x1f }
func decodeCI(in uint16) (imm, r uint32)  { return uint32(in>>7)&0x20 | uint32(in>>2)&0x1f, uint32(in>>7) & 0x1f }
func decodeCSS(in uint16) (imm, r uint32) { return uint32(in>>7) & 0x3f, uint32(in>>2) & 0x1f }
func decodeCIW(in uint16) (imm, r uint32) {
	return uint32(in>>5) & 0xff, uint32(in>>2)&0x7 + rvcRegOffset
}
func decodeCL(in uint16) (imm, r1, r2 uint32) {
	return uint32(in>>8)&0x1c | uint32(in>>5)&0x3, uint32(in>>7)&0x7 + rvcRegOffset, uint32(in>>2)&0x7 + rvcRegOffset
}
func decodeCS(in uint16) (imm, r1, r2 uint32) {
	return uint32(in>>8)&0x1c | uint32(in>>5)&0x3, uint32(in>>7)&0x7 + rvcRegOffset, uint32(in>>2)&0x7 + rvcRegOffset
}
func decodeCB(in uint16) (imm, r uint32) {
	return uint32(in>>5)&0xe0 | uint32(in>>2)&0x1f, uint32(in>>7)&0x7 + rvcRegOffset
}
func decodeShiftCB(in uint16) (shamt, r uint32) {
	return uint32(in&0x1000)>>7 | uint32(in>>2)&0x1f, uint32(in>>7)&0x7 + rvcRegOffset
}
func decodeCJ(in uint16) (offset uint32) { return uint32(in>>2) & 0x7ff }

// decodeC16 decodes a single compressed (RVC) instruction. The all-zero
// word is handled by the caller (top-level decode), not here.
func decodeC16(in uint16, isa Isa) (Instruction, error) {
	inst := Instruction{compressed: true}

	switch in>>11&0x1c | in&0x3 {
	case 0x00: // C.ADDI4SPN
		imm, r := decodeCIW(in)
		imm = imm&0xc0>>2 | imm&0x3c<<4 | imm&0x2<<1 | imm&0x1<<3
		inst.op, inst.rd, inst.rs1, inst.imm, inst.hasImm = OpCADDI4SPN, regPresent(r), regPresent(regSP), int32(imm), true
	case 0x04: // C.FLD / C.LQ — D/Q-extension loads, not modeled here
		return Instruction{}, ErrUnknownExtension
	case 0x08: // C.LW
		imm, r1, r2 := decodeCL(in)
		imm = (imm<<5 | imm) & 0x3e << 1
		inst.op, inst.rd, inst.rs1, inst.imm, inst.hasImm = OpCLW, regPresent(r2), regPresent(r1), int32(imm), true
	case 0x0C: // C.FLW (RV32, F-extension) / C.LD (RV64)
		if isa != Rv64 {
			return Instruction{}, ErrUnknownExtension
		}
		imm, r1, r2 := decodeCL(in)
		imm = (imm<<6 | imm<<1) & 0xf8
		inst.op, inst.rd, inst.rs1, inst.imm, inst.hasImm = OpCLD, regPresent(r2), regPresent(r1), int32(imm), true
	case 0x10:
		return Instruction{}, ErrIllegalInstruction
	case 0x14: // C.FSD / C.SQ — D/Q-extension stores, not modeled here
		return Instruction{}, ErrUnknownExtension
	case 0x18: // C.SW
		imm, r1, r2 := decodeCS(in)
		imm = (imm<<5 | imm) << 1 & 0x7c
		inst.op, inst.rs1, inst.rs2, inst.imm, inst.hasImm = OpCSW, regPresent(r1), regPresent(r2), int32(imm), true
	case 0x1C: // C.FSW (RV32, F-extension) / C.SD (RV64)
		if isa != Rv64 {
			return Instruction{}, ErrUnknownExtension
		}
		imm, r1, r2 := decodeCS(in)
		imm = (imm<<5 | imm) << 1 & 0xf8
		inst.op, inst.rs1, inst.rs2, inst.imm, inst.hasImm = OpCSD, regPresent(r1), regPresent(r2), int32(imm), true
	case 0x01: // C.NOP / C.ADDI
		imm, r := decodeCI(in)
		inst.op, inst.rd, inst.rs1, inst.imm, inst.hasImm = OpCADDI, regPresent(r), regPresent(r), toSignedNBit(imm, 6), true
	case 0x05: // C.JAL (RV32) / C.ADDIW (RV64)
		if isa == Rv64 {
			imm, r := decodeCI(in)
			inst.op, inst.rd, inst.rs1, inst.imm, inst.hasImm = OpCADDIW, regPresent(r), regPresent(r), toSignedNBit(imm, 6), true
		} else {
			imm := cjImm(decodeCJ(in))
			inst.op, inst.rd, inst.imm, inst.hasImm = OpCJAL, regPresent(regRA), toSignedNBit(imm, 12), true
		}
	case 0x09: // C.LI
		imm, r := decodeCI(in)
		inst.op, inst.rd, inst.rs1, inst.imm, inst.hasImm = OpCLI, regPresent(r), regPresent(regZero), toSignedNBit(imm, 6), true
	case 0x0D: // C.ADDI16SP / C.LUI
		imm, r := decodeCI(in)
		if r != regSP {
			inst.op, inst.rd, inst.imm, inst.hasImm = OpCLUI, regPresent(r), toSignedNBit(imm<<12, 18), true
		} else {
			v := imm&0x20<<4 | imm&0x10 | imm&0x8<<3 | imm&0x6<<6 | imm&0x1<<5
			inst.op, inst.rd, inst.rs1, inst.imm, inst.hasImm = OpCADDI16SP, regPresent(regSP), regPresent(regSP), toSignedNBit(v, 10), true
		}
	case 0x11:
		switch in >> 10 & 0x3 {
		case 0x00: // C.SRLI
			imm, r := decodeShiftCB(in)
			inst.op, inst.rd, inst.rs1, inst.imm, inst.hasImm = OpCSRLI, regPresent(r), regPresent(r), int32(imm), true
			inst.format = inst.op.(COp).Format()
			return inst, nil
		case 0x01: // C.SRAI
			imm, r := decodeShiftCB(in)
			inst.op, inst.rd, inst.rs1, inst.imm, inst.hasImm = OpCSRAI, regPresent(r), regPresent(r), int32(imm), true
			inst.format = inst.op.(COp).Format()
			return inst, nil
		case 0x02: // C.ANDI
			imm, r := decodeShiftCB(in)
			inst.op, inst.rd, inst.rs1, inst.imm, inst.hasImm = OpCANDI, regPresent(r), regPresent(r), toSignedNBit(imm, 6), true
			inst.format = inst.op.(COp).Format()
			return inst, nil
		}
		_, r1, r2 := decodeCS(in)
		switch (in >> 8 & 0x1c) | (in >> 5 & 0x3) {
		case 0xc: // C.SUB
			inst.op, inst.rd, inst.rs1, inst.rs2 = OpCSUB, regPresent(r1), regPresent(r1), regPresent(r2)
		case 0xd: // C.XOR
			inst.op, inst.rd, inst.rs1, inst.rs2 = OpCXOR, regPresent(r1), regPresent(r1), regPresent(r2)
		case 0xe: // C.OR
			inst.op, inst.rd, inst.rs1, inst.rs2 = OpCOR, regPresent(r1), regPresent(r1), regPresent(r2)
		case 0xf: // C.AND
			inst.op, inst.rd, inst.rs1, inst.rs2 = OpCAND, regPresent(r1), regPresent(r1), regPresent(r2)
		case 0x1c: // C.SUBW
			if isa != Rv64 {
				return Instruction{}, ErrOnlyRv64Inst
			}
			inst.op, inst.rd, inst.rs1, inst.rs2 = OpCSUBW, regPresent(r1), regPresent(r1), regPresent(r2)
		case 0x1d: // C.ADDW
			if isa != Rv64 {
				return Instruction{}, ErrOnlyRv64Inst
			}
			inst.op, inst.rd, inst.rs1, inst.rs2 = OpCADDW, regPresent(r1), regPresent(r1), regPresent(r2)
		default:
			return Instruction{}, ErrIllegalInstruction
		}
	case 0x15: // C.J
		imm := decodeCJ(in)
		imm = imm&0x200>>5 | imm&0x40<<4 | imm&0x5a0<<1 | imm&0x10<<3 | imm&0xe | imm&1<<5
		inst.op, inst.imm, inst.hasImm = OpCJ, toSignedNBit(imm, 12), true
	case 0x19: // C.BEQZ
		imm, r := decodeCB(in)
		imm = imm&0x80<<1 | imm&0x60>>2 | imm&0x18<<3 | imm&0x6 | imm&0x1<<5
		inst.op, inst.rs1, inst.rs2, inst.imm, inst.hasImm = OpCBEQZ, regPresent(r), regPresent(regZero), toSignedNBit(imm, 9), true
	case 0x1D: // C.BNEZ
		imm, r := decodeCB(in)
		imm = imm&0x80<<1 | imm&0x60>>2 | imm&0x18<<3 | imm&0x6 | imm&0x1<<5
		inst.op, inst.rs1, inst.rs2, inst.imm, inst.hasImm = OpCBNEZ, regPresent(r), regPresent(regZero), toSignedNBit(imm, 9), true
	case 0x02: // C.SLLI
		imm, r := decodeCI(in)
		inst.op, inst.rd, inst.rs1, inst.imm, inst.hasImm = OpCSLLI, regPresent(r), regPresent(r), int32(imm), true
	case 0x06: // C.FLDSP / C.LQSP — D/Q-extension, not modeled here
		return Instruction{}, ErrUnknownExtension
	case 0x0A: // C.LWSP
		imm, r := decodeCI(in)
		imm = (imm<<6 | imm) & 0xfc
		inst.op, inst.rd, inst.rs1, inst.imm, inst.hasImm = OpCLWSP, regPresent(r), regPresent(regSP), int32(imm), true
	case 0x0E: // C.FLWSP (RV32, F-extension) / C.LDSP (RV64)
		if isa != Rv64 {
			return Instruction{}, ErrUnknownExtension
		}
		imm, r := decodeCI(in)
		imm = (imm<<6 | imm) & 0x1f8
		inst.op, inst.rd, inst.rs1, inst.imm, inst.hasImm = OpCLDSP, regPresent(r), regPresent(regSP), int32(imm), true
	case 0x12:
		r1, r2 := decodeCR(in)
		b := in & 0x1000
		switch {
		case b == 0 && r2 == 0: // C.JR
			inst.op, inst.rs1 = OpCJR, regPresent(r1)
		case b == 0: // C.MV
			inst.op, inst.rd, inst.rs1, inst.rs2 = OpCMV, regPresent(r1), regPresent(regZero), regPresent(r2)
		case b == 0x1000 && r1 == 0 && r2 == 0: // C.EBREAK
			inst.op = OpCEBREAK
		case b == 0x1000 && r2 == 0: // C.JALR
			inst.op, inst.rs1 = OpCJALR, regPresent(r1)
		default: // C.ADD
			inst.op, inst.rd, inst.rs1, inst.rs2 = OpCADD, regPresent(r1), regPresent(r1), regPresent(r2)
		}
	case 0x16: // C.FSDSP / C.SQSP — D/Q-extension, not modeled here
		return Instruction{}, ErrUnknownExtension
	case 0x1A: // C.SWSP
		imm, r := decodeCSS(in)
		imm = (imm<<6 | imm) & 0xfc
		inst.op, inst.rs1, inst.rs2, inst.imm, inst.hasImm = OpCSWSP, regPresent(regSP), regPresent(r), int32(imm), true
	case 0x1E: // C.FSWSP (RV32, F-extension) / C.SDSP (RV64)
		if isa != Rv64 {
			return Instruction{}, ErrUnknownExtension
		}
		imm, r := decodeCSS(in)
		imm = (imm<<6 | imm) & 0x1f8
		inst.op, inst.rs1, inst.rs2, inst.imm, inst.hasImm = OpCSDSP, regPresent(regSP), regPresent(r), int32(imm), true
	default:
		return Instruction{}, ErrIllegalInstruction
	}

	inst.format = inst.op.(COp).Format()
	return inst, nil
}

// cjImm applies the C.JAL/C.J jump-offset permutation to an 11-bit raw
// field shared by both operations.
func cjImm(imm uint32) uint32 {
	return imm&0x200>>5 | imm&0x40<<4 | imm&0x5a0<<1 | imm&0x10<<3 | imm&0xe | imm&1<<5
}
