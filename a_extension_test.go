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

// aType builds an AMO-family 32-bit word (aq/rl in bits 26..25, just below funct5).
func aType(funct5, aqrl, rs2, rs1, funct3, rd uint32) uint32 {
	return funct5<<27 | aqrl<<25 | rs2<<20 | rs1<<15 | funct3<<12 | rd<<7 | opAmo
}

func TestDecodeA32(t *testing.T) {
	t.Run("AMOADD.W rd=15 rs1=14 rs2=13 imm=2", func(t *testing.T) {
		inst, err := decodeA32(0x04D727AF, Rv64)
		require.NoError(t, err)
		require.Equal(t, OpAMOADDW, inst.op)
		rd, _ := inst.Rd()
		rs1, _ := inst.Rs1()
		rs2, _ := inst.Rs2()
		imm, _ := inst.Imm()
		require.EqualValues(t, 15, rd)
		require.EqualValues(t, 14, rs1)
		require.EqualValues(t, 13, rs2)
		require.Equal(t, int32(2), imm)
	})

	t.Run("LR.W carries no rs2", func(t *testing.T) {
		word := aType(0b00010, 0, 0, 8, 0b010, 9)
		inst, err := decodeA32(word, Rv64)
		require.NoError(t, err)
		require.Equal(t, OpLRW, inst.op)
		require.Equal(t, FormatALR, inst.Format())
		_, ok := inst.Rs2()
		require.False(t, ok)
	})

	t.Run("LR.D requires Rv64", func(t *testing.T) {
		word := aType(0b00010, 0, 0, 8, 0b011, 9)
		_, err := decodeA32(word, Rv32)
		require.ErrorIs(t, err, ErrOnlyRv64Inst)

		inst, err := decodeA32(word, Rv64)
		require.NoError(t, err)
		require.Equal(t, OpLRD, inst.op)
	})

	t.Run("SC.W carries rs2", func(t *testing.T) {
		word := aType(0b00011, 0, 4, 8, 0b010, 9)
		inst, err := decodeA32(word, Rv64)
		require.NoError(t, err)
		require.Equal(t, OpSCW, inst.op)
		rs2, ok := inst.Rs2()
		require.True(t, ok)
		require.EqualValues(t, 4, rs2)
	})

	t.Run("unrecognized funct5", func(t *testing.T) {
		word := aType(0b11111, 0, 4, 8, 0b010, 9)
		_, err := decodeA32(word, Rv64)
		require.ErrorIs(t, err, ErrInvalidFunct5)
	})

	t.Run("unrecognized funct3", func(t *testing.T) {
		word := aType(0b00010, 0, 0, 8, 0b001, 9)
		_, err := decodeA32(word, Rv64)
		require.ErrorIs(t, err, ErrInvalidFunct3)
	})
}
