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

// Extension names the standard RISC-V extension an operation belongs to.
type Extension int

const (
	ExtBaseI Extension = iota
	ExtM
	ExtA
	ExtC
	ExtZifencei
	ExtZicsr
	ExtZicntr
	ExtZicfiss
	ExtZicboz
	ExtPriv
)

func (e Extension) String() string {
	switch e {
	case ExtBaseI:
		return "I"
	case ExtM:
		return "M"
	case ExtA:
		return "A"
	case ExtC:
		return "C"
	case ExtZifencei:
		return "Zifencei"
	case ExtZicsr:
		return "Zicsr"
	case ExtZicntr:
		return "Zicntr"
	case ExtZicfiss:
		return "Zicfiss"
	case ExtZicboz:
		return "Zicboz"
	case ExtPriv:
		return "Priv"
	default:
		return "unknown"
	}
}

// Operation is implemented by every extension's local opcode enum, pairing
// it with the extension it belongs to. This is the tagged-sum (extension,
// extension-local operation) identity described in the decoder's data
// model: no single flat enum spans every mnemonic across extensions, so
// two extensions may reuse a name (e.g. an atomic variant) without
// colliding.
type Operation interface {
	Extension() Extension
	Format() Format
	Mnemonic() string
}

// regSlot is a register operand slot: present with a value in 0..31 (or,
// for the CSR-overloaded rs2 slot, 0..4095), or entirely absent.
type regSlot struct {
	v  uint32
	ok bool
}

func regPresent(v uint32) regSlot { return regSlot{v: v, ok: true} }

// Instruction is a decoded RISC-V instruction. It is immutable after
// construction and comparable by value (== compares every field).
type Instruction struct {
	op         Operation
	rd         regSlot
	rs1        regSlot
	rs2        regSlot
	imm        int32
	hasImm     bool
	format     Format
	compressed bool
}

// Operation returns the decoded (extension, extension-local operation) pair.
func (i Instruction) Operation() Operation { return i.op }

// Extension returns the extension the decoded operation belongs to.
func (i Instruction) Extension() Extension { return i.op.Extension() }

// Format returns the display format tag for this instruction.
func (i Instruction) Format() Format { return i.format }

// IsCompressed reports whether this instruction was decoded from a 16-bit
// word.
func (i Instruction) IsCompressed() bool { return i.compressed }

// Rd returns the destination register, if this operation has one.
func (i Instruction) Rd() (uint32, bool) { return i.rd.v, i.rd.ok }

// Rs1 returns the first source register, if this operation has one.
func (i Instruction) Rs1() (uint32, bool) { return i.rs1.v, i.rs1.ok }

// Rs2 returns the second source register, if this operation has one. For
// CSR operations this slot instead carries the 12-bit CSR number.
func (i Instruction) Rs2() (uint32, bool) { return i.rs2.v, i.rs2.ok }

// Imm returns the decoded immediate, if this operation has one.
func (i Instruction) Imm() (int32, bool) { return i.imm, i.hasImm }
