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

// AOp enumerates the atomic memory operation extension's operations, each
// in its word-wide (.W) and double-wide (.D, Rv64-only) form.
type AOp int

const (
	OpLRW AOp = iota
	OpLRD
	OpSCW
	OpSCD
	OpAMOSWAPW
	OpAMOSWAPD
	OpAMOADDW
	OpAMOADDD
	OpAMOXORW
	OpAMOXORD
	OpAMOANDW
	OpAMOANDD
	OpAMOORW
	OpAMOORD
	OpAMOMINW
	OpAMOMIND
	OpAMOMAXW
	OpAMOMAXD
	OpAMOMINUW
	OpAMOMINUD
	OpAMOMAXUW
	OpAMOMAXUD
)

func (AOp) Extension() Extension { return ExtA }

func (o AOp) Format() Format {
	if o == OpLRW || o == OpLRD {
		return FormatALR
	}
	return FormatA
}

var rv64OnlyA = map[AOp]bool{
	OpLRD: true, OpSCD: true, OpAMOSWAPD: true, OpAMOADDD: true, OpAMOXORD: true,
	OpAMOANDD: true, OpAMOORD: true, OpAMOMIND: true, OpAMOMAXD: true,
	OpAMOMINUD: true, OpAMOMAXUD: true,
}

func (o AOp) Mnemonic() string {
	switch o {
	case OpLRW:
		return "lr.w"
	case OpLRD:
		return "lr.d"
	case OpSCW:
		return "sc.w"
	case OpSCD:
		return "sc.d"
	case OpAMOSWAPW:
		return "amoswap.w"
	case OpAMOSWAPD:
		return "amoswap.d"
	case OpAMOADDW:
		return "amoadd.w"
	case OpAMOADDD:
		return "amoadd.d"
	case OpAMOXORW:
		return "amoxor.w"
	case OpAMOXORD:
		return "amoxor.d"
	case OpAMOANDW:
		return "amoand.w"
	case OpAMOANDD:
		return "amoand.d"
	case OpAMOORW:
		return "amoor.w"
	case OpAMOORD:
		return "amoor.d"
	case OpAMOMINW:
		return "amomin.w"
	case OpAMOMIND:
		return "amomin.d"
	case OpAMOMAXW:
		return "amomax.w"
	case OpAMOMAXD:
		return "amomax.d"
	case OpAMOMINUW:
		return "amominu.w"
	case OpAMOMINUD:
		return "amominu.d"
	case OpAMOMAXUW:
		return "amomaxu.w"
	case OpAMOMAXUD:
		return "amomaxu.d"
	default:
		return "unknown"
	}
}

// amoFamily selects the operation family by funct5 (bits 31..27), in its
// word-wide form; amoWideVariant resolves the matching double-wide form.
var amoFamily = map[uint32]AOp{
	0b00010: OpLRW,
	0b00011: OpSCW,
	0b00001: OpAMOSWAPW,
	0b00000: OpAMOADDW,
	0b00100: OpAMOXORW,
	0b01100: OpAMOANDW,
	0b01000: OpAMOORW,
	0b10000: OpAMOMINW,
	0b10100: OpAMOMAXW,
	0b11000: OpAMOMINUW,
	0b11100: OpAMOMAXUW,
}

var amoWideVariant = map[AOp]AOp{
	OpLRW: OpLRD, OpSCW: OpSCD, OpAMOSWAPW: OpAMOSWAPD, OpAMOADDW: OpAMOADDD,
	OpAMOXORW: OpAMOXORD, OpAMOANDW: OpAMOANDD, OpAMOORW: OpAMOORD,
	OpAMOMINW: OpAMOMIND, OpAMOMAXW: OpAMOMAXD, OpAMOMINUW: OpAMOMINUD,
	OpAMOMAXUW: OpAMOMAXUD,
}

// parseAOpcode dispatches a 32-bit word already classified as A.
func parseAOpcode(word uint32, isa Isa) (AOp, error) {
	funct3 := slice(word, 14, 12)
	funct5 := slice(word, 31, 27)

	op, ok := amoFamily[funct5]
	if !ok {
		return 0, ErrInvalidFunct5
	}
	switch funct3 {
	case 0b010: // .W
		return op, nil
	case 0b011: // .D
		if isa != Rv64 {
			return 0, ErrOnlyRv64Inst
		}
		return amoWideVariant[op], nil
	default:
		return 0, ErrInvalidFunct3
	}
}

// decodeA32 assembles a full Instruction for a 32-bit word classified as A.
// rd, rs1, and the {aq,rl} ordering bits are present for every operation;
// rs2 is absent only for LR.
func decodeA32(word uint32, isa Isa) (Instruction, error) {
	op, err := parseAOpcode(word, isa)
	if err != nil {
		return Instruction{}, err
	}
	if rv64OnlyA[op] && isa != Rv64 {
		return Instruction{}, ErrOnlyRv64Inst
	}

	inst := Instruction{
		op:     op,
		format: op.Format(),
		rd:     regPresent(slice(word, 11, 7)),
		rs1:    regPresent(slice(word, 19, 15)),
		imm:    int32(slice(word, 26, 25)),
		hasImm: true,
	}
	if op != OpLRW && op != OpLRD {
		inst.rs2 = regPresent(slice(word, 24, 20))
	}
	return inst, nil
}
