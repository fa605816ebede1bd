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

// Major opcodes (bits 6..0) that belong to the mandatory base integer set.
const (
	opLUI     uint32 = 0b0110111
	opAUIPC   uint32 = 0b0010111
	opJAL     uint32 = 0b1101111
	opJALR    uint32 = 0b1100111
	opBranch  uint32 = 0b1100011
	opLoad    uint32 = 0b0000011
	opStore   uint32 = 0b0100011
	opOpImm   uint32 = 0b0010011
	opOp      uint32 = 0b0110011
	opSystem  uint32 = 0b1110011
	opOpImm32 uint32 = 0b0011011
	opOp32    uint32 = 0b0111011
	opMiscMem uint32 = 0b0001111
	opAmo     uint32 = 0b0101111
)

// BaseIOp enumerates every operation of the mandatory RV32I/RV64I base
// integer instruction set.
type BaseIOp int

const (
	OpLUI BaseIOp = iota
	OpAUIPC
	OpJAL
	OpJALR
	OpBEQ
	OpBNE
	OpBLT
	OpBGE
	OpBLTU
	OpBGEU
	OpLB
	OpLH
	OpLW
	OpLBU
	OpLHU
	OpSB
	OpSH
	OpSW
	OpADDI
	OpSLTI
	OpSLTIU
	OpXORI
	OpORI
	OpANDI
	OpSLLI
	OpSRLI
	OpSRAI
	OpADD
	OpSUB
	OpSLL
	OpSLT
	OpSLTU
	OpXOR
	OpSRL
	OpSRA
	OpOR
	OpAND
	OpECALL
	OpEBREAK
	OpLWU
	OpLD
	OpSD
	OpADDIW
	OpSLLIW
	OpSRLIW
	OpSRAIW
	OpADDW
	OpSUBW
	OpSLLW
	OpSRLW
	OpSRAW
)

func (BaseIOp) Extension() Extension { return ExtBaseI }

// rv64OnlyBaseI is the set of Base-I operations only legal under Rv64.
var rv64OnlyBaseI = map[BaseIOp]bool{
	OpLWU: true, OpLD: true, OpSD: true,
	OpADDIW: true, OpSLLIW: true, OpSRLIW: true, OpSRAIW: true,
	OpADDW: true, OpSUBW: true, OpSLLW: true, OpSRLW: true, OpSRAW: true,
}

func (o BaseIOp) Format() Format {
	switch o {
	case OpLUI, OpAUIPC:
		return FormatU
	case OpJAL:
		return FormatJ
	case OpJALR, OpLB, OpLH, OpLW, OpLBU, OpLHU, OpLWU, OpLD,
		OpADDI, OpSLTI, OpSLTIU, OpXORI, OpORI, OpANDI, OpADDIW:
		return FormatI
	case OpBEQ, OpBNE, OpBLT, OpBGE, OpBLTU, OpBGEU:
		return FormatB
	case OpSB, OpSH, OpSW, OpSD:
		return FormatS
	case OpSLLI, OpSRLI, OpSRAI, OpSLLIW, OpSRLIW, OpSRAIW:
		return FormatRShamt
	case OpECALL, OpEBREAK:
		return FormatNoOperand
	default: // ADD, SUB, SLL, SLT, SLTU, XOR, SRL, SRA, OR, AND and -W forms
		return FormatR
	}
}

func (o BaseIOp) Mnemonic() string {
	switch o {
	case OpLUI:
		return "lui"
	case OpAUIPC:
		return "auipc"
	case OpJAL:
		return "jal"
	case OpJALR:
		return "jalr"
	case OpBEQ:
		return "beq"
	case OpBNE:
		return "bne"
	case OpBLT:
		return "blt"
	case OpBGE:
		return "bge"
	case OpBLTU:
		return "bltu"
	case OpBGEU:
		return "bgeu"
	case OpLB:
		return "lb"
	case OpLH:
		return "lh"
	case OpLW:
		return "lw"
	case OpLBU:
		return "lbu"
	case OpLHU:
		return "lhu"
	case OpSB:
		return "sb"
	case OpSH:
		return "sh"
	case OpSW:
		return "sw"
	case OpADDI:
		return "addi"
	case OpSLTI:
		return "slti"
	case OpSLTIU:
		return "sltiu"
	case OpXORI:
		return "xori"
	case OpORI:
		return "ori"
	case OpANDI:
		return "andi"
	case OpSLLI:
		return "slli"
	case OpSRLI:
		return "srli"
	case OpSRAI:
		return "srai"
	case OpADD:
		return "add"
	case OpSUB:
		return "sub"
	case OpSLL:
		return "sll"
	case OpSLT:
		return "slt"
	case OpSLTU:
		return "sltu"
	case OpXOR:
		return "xor"
	case OpSRL:
		return "srl"
	case OpSRA:
		return "sra"
	case OpOR:
		return "or"
	case OpAND:
		return "and"
	case OpECALL:
		return "ecall"
	case OpEBREAK:
		return "ebreak"
	case OpLWU:
		return "lwu"
	case OpLD:
		return "ld"
	case OpSD:
		return "sd"
	case OpADDIW:
		return "addiw"
	case OpSLLIW:
		return "slliw"
	case OpSRLIW:
		return "srliw"
	case OpSRAIW:
		return "sraiw"
	case OpADDW:
		return "addw"
	case OpSUBW:
		return "subw"
	case OpSLLW:
		return "sllw"
	case OpSRLW:
		return "srlw"
	case OpSRAW:
		return "sraw"
	default:
		return "unknown"
	}
}

// immI, immS, immB, immU and immJ reassemble the five base instruction
// formats' immediates using slice/set, per the decoder's bit-utility design.
func immI(word uint32) int32 { return toSignedNBit(slice(word, 31, 20), 12) }

func immS(word uint32) int32 {
	lo := set(slice(word, 11, 7), []uint32{4, 3, 2, 1, 0})
	hi := set(slice(word, 31, 25), []uint32{11, 10, 9, 8, 7, 6, 5})
	return toSignedNBit(lo|hi, 12)
}

func immB(word uint32) int32 {
	lo := set(slice(word, 11, 7), []uint32{4, 3, 2, 1, 11})
	hi := set(slice(word, 31, 25), []uint32{12, 10, 9, 8, 7, 6, 5})
	return toSignedNBit(lo|hi, 13)
}

func immU(word uint32) int32 { return int32(slice(word, 31, 12) << 12) }

func immJ(word uint32) int32 {
	v := set(slice(word, 31, 12), []uint32{
		20, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1, 11, 19, 18, 17, 16, 15, 14, 13, 12,
	})
	return toSignedNBit(v, 21)
}

// parseBaseIOpcode dispatches a 32-bit word already classified as Base-I to
// its specific operation. Width legality (the -W/64-bit-only operations) is
// checked at the leaves.
func parseBaseIOpcode(word uint32, isa Isa) (BaseIOp, error) {
	opcode := slice(word, 6, 0)
	funct3 := slice(word, 14, 12)

	switch opcode {
	case opLUI:
		return OpLUI, nil
	case opAUIPC:
		return OpAUIPC, nil
	case opJAL:
		return OpJAL, nil
	case opJALR:
		if funct3 != 0b000 {
			return 0, ErrInvalidFunct3
		}
		return OpJALR, nil
	case opBranch:
		switch funct3 {
		case 0b000:
			return OpBEQ, nil
		case 0b001:
			return OpBNE, nil
		case 0b100:
			return OpBLT, nil
		case 0b101:
			return OpBGE, nil
		case 0b110:
			return OpBLTU, nil
		case 0b111:
			return OpBGEU, nil
		default:
			return 0, ErrInvalidFunct3
		}
	case opLoad:
		switch funct3 {
		case 0b000:
			return OpLB, nil
		case 0b001:
			return OpLH, nil
		case 0b010:
			return OpLW, nil
		case 0b100:
			return OpLBU, nil
		case 0b101:
			return OpLHU, nil
		case 0b110:
			if isa != Rv64 {
				return 0, ErrOnlyRv64Inst
			}
			return OpLWU, nil
		case 0b011:
			if isa != Rv64 {
				return 0, ErrOnlyRv64Inst
			}
			return OpLD, nil
		default:
			return 0, ErrInvalidFunct3
		}
	case opStore:
		switch funct3 {
		case 0b000:
			return OpSB, nil
		case 0b001:
			return OpSH, nil
		case 0b010:
			return OpSW, nil
		case 0b011:
			if isa != Rv64 {
				return 0, ErrOnlyRv64Inst
			}
			return OpSD, nil
		default:
			return 0, ErrInvalidFunct3
		}
	case opOpImm:
		switch funct3 {
		case 0b000:
			return OpADDI, nil
		case 0b010:
			return OpSLTI, nil
		case 0b011:
			return OpSLTIU, nil
		case 0b100:
			return OpXORI, nil
		case 0b110:
			return OpORI, nil
		case 0b111:
			return OpANDI, nil
		case 0b001:
			if isa == Rv64 {
				if slice(word, 31, 26) != 0 {
					return 0, ErrInvalidFunct6
				}
			} else if slice(word, 31, 25) != 0 {
				return 0, ErrInvalidFunct7
			}
			return OpSLLI, nil
		case 0b101:
			if isa == Rv64 {
				switch slice(word, 31, 26) {
				case 0b000000:
					return OpSRLI, nil
				case 0b010000:
					return OpSRAI, nil
				default:
					return 0, ErrInvalidFunct6
				}
			}
			switch slice(word, 31, 25) {
			case 0b0000000:
				return OpSRLI, nil
			case 0b0100000:
				return OpSRAI, nil
			default:
				return 0, ErrInvalidFunct7
			}
		}
	case opOp:
		funct7 := slice(word, 31, 25)
		switch funct3 {
		case 0b000:
			switch funct7 {
			case 0b0000000:
				return OpADD, nil
			case 0b0100000:
				return OpSUB, nil
			default:
				return 0, ErrInvalidFunct7
			}
		case 0b001:
			if funct7 != 0 {
				return 0, ErrInvalidFunct7
			}
			return OpSLL, nil
		case 0b010:
			if funct7 != 0 {
				return 0, ErrInvalidFunct7
			}
			return OpSLT, nil
		case 0b011:
			if funct7 != 0 {
				return 0, ErrInvalidFunct7
			}
			return OpSLTU, nil
		case 0b100:
			if funct7 != 0 {
				return 0, ErrInvalidFunct7
			}
			return OpXOR, nil
		case 0b101:
			switch funct7 {
			case 0b0000000:
				return OpSRL, nil
			case 0b0100000:
				return OpSRA, nil
			default:
				return 0, ErrInvalidFunct7
			}
		case 0b110:
			if funct7 != 0 {
				return 0, ErrInvalidFunct7
			}
			return OpOR, nil
		case 0b111:
			if funct7 != 0 {
				return 0, ErrInvalidFunct7
			}
			return OpAND, nil
		}
	case opSystem:
		// The extension classifier only hands this word to Base-I when
		// funct3 == 0 and funct7 == 0 (ECALL/EBREAK); everything else with
		// this opcode belongs to Priv, Zicsr, Zicntr or Zicfiss.
		switch slice(word, 31, 20) {
		case 0b0000_0000_0000:
			return OpECALL, nil
		case 0b0000_0000_0001:
			return OpEBREAK, nil
		default:
			return 0, ErrInvalidFunct7
		}
	case opOpImm32:
		if isa != Rv64 {
			return 0, ErrOnlyRv64Inst
		}
		switch funct3 {
		case 0b000:
			return OpADDIW, nil
		case 0b001:
			if slice(word, 31, 25) != 0 {
				return 0, ErrInvalidFunct7
			}
			return OpSLLIW, nil
		case 0b101:
			switch slice(word, 31, 25) {
			case 0b0000000:
				return OpSRLIW, nil
			case 0b0100000:
				return OpSRAIW, nil
			default:
				return 0, ErrInvalidFunct7
			}
		default:
			return 0, ErrInvalidFunct3
		}
	case opOp32:
		if isa != Rv64 {
			return 0, ErrOnlyRv64Inst
		}
		funct7 := slice(word, 31, 25)
		switch funct3 {
		case 0b000:
			switch funct7 {
			case 0b0000000:
				return OpADDW, nil
			case 0b0100000:
				return OpSUBW, nil
			default:
				return 0, ErrInvalidFunct7
			}
		case 0b001:
			if funct7 != 0 {
				return 0, ErrInvalidFunct7
			}
			return OpSLLW, nil
		case 0b101:
			switch funct7 {
			case 0b0000000:
				return OpSRLW, nil
			case 0b0100000:
				return OpSRAW, nil
			default:
				return 0, ErrInvalidFunct7
			}
		default:
			return 0, ErrInvalidFunct3
		}
	}
	return 0, ErrInvalidOpcode
}

// decodeBaseI32 assembles a full Instruction for a 32-bit word already
// classified as Base-I.
func decodeBaseI32(word uint32, isa Isa) (Instruction, error) {
	op, err := parseBaseIOpcode(word, isa)
	if err != nil {
		return Instruction{}, err
	}
	if rv64OnlyBaseI[op] && isa != Rv64 {
		return Instruction{}, ErrOnlyRv64Inst
	}

	rd := regPresent(slice(word, 11, 7))
	rs1 := regPresent(slice(word, 19, 15))
	rs2 := regPresent(slice(word, 24, 20))

	inst := Instruction{op: op, format: op.Format()}

	switch op.Format() {
	case FormatU:
		inst.rd = rd
		inst.imm, inst.hasImm = immU(word), true
	case FormatJ:
		inst.rd = rd
		inst.imm, inst.hasImm = immJ(word), true
	case FormatI:
		inst.rd = rd
		inst.rs1 = rs1
		inst.imm, inst.hasImm = immI(word), true
	case FormatB:
		inst.rs1 = rs1
		inst.rs2 = rs2
		inst.imm, inst.hasImm = immB(word), true
	case FormatS:
		inst.rs1 = rs1
		inst.rs2 = rs2
		inst.imm, inst.hasImm = immS(word), true
	case FormatRShamt:
		inst.rd = rd
		inst.rs1 = rs1
		var shamt uint32
		if isShamt6(op) && isa == Rv64 {
			shamt = slice(word, 25, 20)
		} else {
			shamt = slice(word, 24, 20)
		}
		inst.imm, inst.hasImm = int32(shamt), true
	case FormatR:
		inst.rd = rd
		inst.rs1 = rs1
		inst.rs2 = rs2
	case FormatNoOperand:
		// ECALL/EBREAK carry no operands.
	}
	return inst, nil
}

// isShamt6 reports whether op's shift amount widens to 6 bits on Rv64. The
// word-wide -W shift variants always use a 5-bit shift amount.
func isShamt6(op BaseIOp) bool {
	switch op {
	case OpSLLI, OpSRLI, OpSRAI:
		return true
	default:
		return false
	}
}
