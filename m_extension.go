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

// MOp enumerates the integer multiply/divide extension's operations.
type MOp int

const (
	OpMUL MOp = iota
	OpMULH
	OpMULHSU
	OpMULHU
	OpDIV
	OpDIVU
	OpREM
	OpREMU
	OpMULW
	OpDIVW
	OpDIVUW
	OpREMW
	OpREMUW
)

func (MOp) Extension() Extension { return ExtM }

func (o MOp) Format() Format { return FormatM }

var rv64OnlyM = map[MOp]bool{
	OpMULW: true, OpDIVW: true, OpDIVUW: true, OpREMW: true, OpREMUW: true,
}

func (o MOp) Mnemonic() string {
	switch o {
	case OpMUL:
		return "mul"
	case OpMULH:
		return "mulh"
	case OpMULHSU:
		return "mulhsu"
	case OpMULHU:
		return "mulhu"
	case OpDIV:
		return "div"
	case OpDIVU:
		return "divu"
	case OpREM:
		return "rem"
	case OpREMU:
		return "remu"
	case OpMULW:
		return "mulw"
	case OpDIVW:
		return "divw"
	case OpDIVUW:
		return "divuw"
	case OpREMW:
		return "remw"
	case OpREMUW:
		return "remuw"
	default:
		return "unknown"
	}
}

// parseMOpcode dispatches a 32-bit word already classified as M.
func parseMOpcode(word uint32, isa Isa) (MOp, error) {
	opcode := slice(word, 6, 0)
	funct3 := slice(word, 14, 12)

	switch opcode {
	case opOp:
		switch funct3 {
		case 0b000:
			return OpMUL, nil
		case 0b001:
			return OpMULH, nil
		case 0b010:
			return OpMULHSU, nil
		case 0b011:
			return OpMULHU, nil
		case 0b100:
			return OpDIV, nil
		case 0b101:
			return OpDIVU, nil
		case 0b110:
			return OpREM, nil
		case 0b111:
			return OpREMU, nil
		default:
			return 0, ErrInvalidFunct3
		}
	case opOp32:
		if isa != Rv64 {
			return 0, ErrOnlyRv64Inst
		}
		switch funct3 {
		case 0b000:
			return OpMULW, nil
		case 0b100:
			return OpDIVW, nil
		case 0b101:
			return OpDIVUW, nil
		case 0b110:
			return OpREMW, nil
		case 0b111:
			return OpREMUW, nil
		default:
			return 0, ErrInvalidFunct3
		}
	}
	return 0, ErrInvalidOpcode
}

// decodeM32 assembles a full Instruction for a 32-bit word classified as M.
// Every M operation is register-register (R-type); none carries an
// immediate.
func decodeM32(word uint32, isa Isa) (Instruction, error) {
	op, err := parseMOpcode(word, isa)
	if err != nil {
		return Instruction{}, err
	}
	if rv64OnlyM[op] && isa != Rv64 {
		return Instruction{}, ErrOnlyRv64Inst
	}
	return Instruction{
		op:     op,
		format: FormatM,
		rd:     regPresent(slice(word, 11, 7)),
		rs1:    regPresent(slice(word, 19, 15)),
		rs2:    regPresent(slice(word, 24, 20)),
	}, nil
}
