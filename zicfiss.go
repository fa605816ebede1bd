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

// ZicfissOp enumerates the shadow-stack control-flow-integrity extension's
// operations, including its two compressed forms.
type ZicfissOp int

const (
	OpSSPUSH ZicfissOp = iota
	OpSSPOPCHK
	OpSSRDP
	OpSSAMOSWAPW
	OpSSAMOSWAPD
	OpCSSPUSH   // compressed C.SSPUSH
	OpCSSPOPCHK // compressed C.SSPOPCHK
)

func (ZicfissOp) Extension() Extension { return ExtZicfiss }

func (o ZicfissOp) Format() Format {
	switch o {
	case OpSSPUSH:
		return FormatOnlyRs2
	case OpSSPOPCHK:
		return FormatOnlyRs1
	case OpSSRDP:
		return FormatOnlyRd
	case OpCSSPUSH, OpCSSPOPCHK:
		return FormatOnlyRd
	default: // SSAMOSWAP_W/D
		return FormatA
	}
}

func (o ZicfissOp) Mnemonic() string {
	switch o {
	case OpSSPUSH:
		return "sspush"
	case OpSSPOPCHK:
		return "sspopchk"
	case OpSSRDP:
		return "ssrdp"
	case OpSSAMOSWAPW:
		return "ssamoswap.w"
	case OpSSAMOSWAPD:
		return "ssamoswap.d"
	case OpCSSPUSH:
		return "c.sspush"
	case OpCSSPOPCHK:
		return "c.sspopchk"
	default:
		return "unknown"
	}
}

// The 12-bit funct7|rs2 field (bits 31..20) that names each SYSTEM-opcode
// Zicfiss operation. SSPUSH has two legal encodings (push ra, push t0);
// SSPOPCHK and SSRDP share a prefix and split on rs1 == 0.
const (
	sspushRA    = 0xCE1
	sspushT0    = 0xCE5
	sspopchkKey = 0xCDC
)

// parseZicfissSystemOpcode dispatches the SYSTEM-opcode (32-bit) half of
// Zicfiss: SSPUSH, SSPOPCHK, SSRDP.
func parseZicfissSystemOpcode(word uint32) (ZicfissOp, error) {
	if slice(word, 14, 12) != 0b100 {
		return 0, ErrInvalidFunct3
	}
	switch slice(word, 31, 20) {
	case sspushRA, sspushT0:
		return OpSSPUSH, nil
	case sspopchkKey:
		if slice(word, 19, 15) == 0 {
			return OpSSRDP, nil
		}
		return OpSSPOPCHK, nil
	default:
		return 0, ErrInvalidOpcode
	}
}

// decodeZicfiss32 assembles a Zicfiss instruction from either the
// SYSTEM-opcode family (SSPUSH/SSPOPCHK/SSRDP) or the AMO-opcode family
// (SSAMOSWAP.W/.D), per spec §4.4's operation-specific register rules.
func decodeZicfiss32(word uint32, isa Isa) (Instruction, error) {
	opcode := slice(word, 6, 0)

	if opcode == opSystem {
		op, err := parseZicfissSystemOpcode(word)
		if err != nil {
			return Instruction{}, err
		}
		inst := Instruction{op: op, format: op.Format()}
		switch op {
		case OpSSPUSH:
			inst.rs2 = regPresent(slice(word, 24, 20))
		case OpSSPOPCHK:
			inst.rs1 = regPresent(slice(word, 19, 15))
		case OpSSRDP:
			inst.rd = regPresent(slice(word, 11, 7))
		}
		return inst, nil
	}

	// opAmo: SSAMOSWAP.W / SSAMOSWAP.D, laid out exactly like an A-type atomic.
	var op ZicfissOp
	switch slice(word, 14, 12) {
	case 0b010:
		op = OpSSAMOSWAPW
	case 0b011:
		if isa != Rv64 {
			return Instruction{}, ErrOnlyRv64Inst
		}
		op = OpSSAMOSWAPD
	default:
		return Instruction{}, ErrInvalidFunct3
	}
	return Instruction{
		op:     op,
		format: FormatA,
		rd:     regPresent(slice(word, 11, 7)),
		rs1:    regPresent(slice(word, 19, 15)),
		rs2:    regPresent(slice(word, 24, 20)),
		imm:    int32(slice(word, 26, 25)),
		hasImm: true,
	}, nil
}

// Exact 16-bit word matches for the compressed shadow-stack pair. These are
// reserved encodings Decode16 routes to Zicfiss instead of C, ahead of the
// general compressed decode tree.
const (
	wordCSSPUSH   uint16 = 0b0110_0000_1000_0001
	wordCSSPOPCHK uint16 = 0b0110_0010_1000_0001
)

// decodeZicfiss16 assembles one of the two compressed shadow-stack
// instructions. Both carry a fixed register in their rd slot: ra (x1) for
// C.SSPUSH, t0 (x5) for C.SSPOPCHK.
func decodeZicfiss16(word uint16) (Instruction, error) {
	switch word {
	case wordCSSPUSH:
		return Instruction{op: OpCSSPUSH, format: FormatOnlyRd, rd: regPresent(1), compressed: true}, nil
	case wordCSSPOPCHK:
		return Instruction{op: OpCSSPOPCHK, format: FormatOnlyRd, rd: regPresent(5), compressed: true}, nil
	default:
		return Instruction{}, ErrIllegalInstruction
	}
}
