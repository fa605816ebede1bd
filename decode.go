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

// Package riscv decodes RISC-V machine instructions — 16-bit compressed and
// 32-bit standard-width encodings — into a structured Instruction naming
// the operation, its register operands, and its immediate. Decoding is a
// pure function of the word and a caller-supplied Isa; it performs no I/O,
// holds no state between calls, and never panics on a malformed word.
package riscv

// Decode32 decodes a 32-bit word under the given register width. It fails
// with Not32BitInst if the word's low two bits are not 0b11.
func Decode32(word uint32, isa Isa) (Instruction, error) {
	if slice(word, 1, 0) != 0b11 {
		return Instruction{}, ErrNot32BitInst
	}

	ext, err := classifyExtension32(word)
	if err != nil {
		return Instruction{}, err
	}

	switch ext {
	case ExtBaseI:
		return decodeBaseI32(word, isa)
	case ExtM:
		return decodeM32(word, isa)
	case ExtA:
		return decodeA32(word, isa)
	case ExtZifencei:
		return decodeZifencei32(word)
	case ExtZicsr:
		return decodeZicsr32(word)
	case ExtZicntr:
		return decodeZicntr32(word)
	case ExtZicfiss:
		return decodeZicfiss32(word, isa)
	case ExtZicboz:
		return decodeZicboz32(word)
	case ExtPriv:
		return decodePriv32(word)
	default:
		return Instruction{}, ErrUnknownExtension
	}
}

// reservedZicfiss16 holds the two 16-bit encodings Decode16 routes to
// Zicfiss ahead of the general compressed decode tree.
func reservedZicfiss16(word uint16) bool {
	return word == wordCSSPUSH || word == wordCSSPOPCHK
}

// Decode16 decodes a 16-bit word under the given register width. The
// all-zero word is always illegal.
func Decode16(word uint16, isa Isa) (Instruction, error) {
	if word == 0 {
		return Instruction{}, ErrIllegalInstruction
	}
	if reservedZicfiss16(word) {
		return decodeZicfiss16(word)
	}
	return decodeC16(word, isa)
}

// DecodeAuto inspects the low two bits of a machine word to choose the
// 16- or 32-bit decode path, assuming Rv64 register width.
func DecodeAuto(word uint32) (Instruction, error) {
	if slice(word, 1, 0) == 0b11 {
		return Decode32(word, Rv64)
	}
	return Decode16(uint16(word), Rv64)
}
