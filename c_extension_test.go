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

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeC16LiteralScenarios(t *testing.T) {
	t.Run("C.J imm=-280", func(t *testing.T) {
		inst, err := decodeC16(0xB5E5, Rv64)
		require.NoError(t, err)
		require.Equal(t, OpCJ, inst.op)
		require.True(t, inst.IsCompressed())
		imm, _ := inst.Imm()
		require.Equal(t, int32(-280), imm)
	})

	t.Run("C.JR rs1=1", func(t *testing.T) {
		inst, err := decodeC16(0x8082, Rv64)
		require.NoError(t, err)
		require.Equal(t, OpCJR, inst.op)
		rs1, _ := inst.Rs1()
		require.EqualValues(t, 1, rs1)
	})
}

func TestDecodeC16Constructed(t *testing.T) {
	t.Run("C.ADDI16SP vs C.LUI disambiguate on rd==sp", func(t *testing.T) {
		addi16sp, err := decodeC16(0x7105, Rv64)
		require.NoError(t, err)
		require.Equal(t, OpCADDI16SP, addi16sp.op)
		rd, _ := addi16sp.Rd()
		require.EqualValues(t, regSP, rd)

		lui, err := decodeC16(0x7285, Rv64)
		require.NoError(t, err)
		require.Equal(t, OpCLUI, lui.op)
		rd, _ = lui.Rd()
		require.EqualValues(t, 5, rd)
	})

	t.Run("C.SRLI sets format and decodes shamt", func(t *testing.T) {
		inst, err := decodeC16(0x8115, Rv64)
		require.NoError(t, err)
		require.Equal(t, OpCSRLI, inst.op)
		require.Equal(t, FormatCB, inst.Format())
		rd, _ := inst.Rd()
		require.EqualValues(t, 10, rd)
		imm, _ := inst.Imm()
		require.Equal(t, int32(5), imm)
	})

	t.Run("C.ADDIW is RV64-only, C.JAL takes its slot on RV32", func(t *testing.T) {
		const word = 0x3495
		addiw, err := decodeC16(word, Rv64)
		require.NoError(t, err)
		require.Equal(t, OpCADDIW, addiw.op)
		rd, _ := addiw.Rd()
		require.EqualValues(t, 9, rd)
		imm, _ := addiw.Imm()
		require.Equal(t, int32(-27), imm)

		jal, err := decodeC16(word, Rv32)
		require.NoError(t, err)
		require.Equal(t, OpCJAL, jal.op)
		rd, _ = jal.Rd()
		require.EqualValues(t, regRA, rd)
	})

	t.Run("C.SUBW requires Rv64", func(t *testing.T) {
		// quadrant 0x11 (funct3=100), bits[11:10]=11 falls through to the CA
		// sub-block, and bit12|bits[11:10]|bits[6:5] = 0x1c selects C.SUBW.
		const word = 0x9D09
		_, err := decodeC16(word, Rv32)
		require.ErrorIs(t, err, ErrOnlyRv64Inst)

		inst, err := decodeC16(word, Rv64)
		require.NoError(t, err)
		require.Equal(t, OpCSUBW, inst.op)
	})

	t.Run("reserved quadrant-0 funct3=100 word is illegal", func(t *testing.T) {
		_, err := decodeC16(0x8000, Rv64)
		require.ErrorIs(t, err, ErrIllegalInstruction)
	})

	t.Run("D/Q-extension load slots are an unknown extension here", func(t *testing.T) {
		_, err := decodeC16(0x2000, Rv64) // quadrant 0x04: C.FLD/C.LQ
		require.ErrorIs(t, err, ErrUnknownExtension)
	})

	t.Run("all-zero word is illegal at the Decode16 boundary", func(t *testing.T) {
		_, err := Decode16(0, Rv64)
		require.ErrorIs(t, err, ErrIllegalInstruction)
	})
}
