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

package riscv_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	riscv "github.com/google/riscv-decode"
)

func TestDecodeProperties(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Decode invariants")
}

var _ = Describe("register and format invariants", func() {
	It("keeps every register field within the architectural range", func() {
		for _, word := range []uint32{
			0x04D727AF,             // amoadd.w
			0b1110_1110_1100_0010_1000_0010_1001_0011, // addi
		} {
			inst, err := riscv.Decode32(word, riscv.Rv64)
			Expect(err).NotTo(HaveOccurred())
			for _, get := range []func() (uint32, bool){inst.Rd, inst.Rs1, inst.Rs2} {
				if v, ok := get(); ok && inst.Format() != riscv.FormatCSR && inst.Format() != riscv.FormatCSRUimm {
					Expect(v).To(BeNumerically("<", 32))
				}
			}
		}
	})

	It("never reports an instruction as both compressed and 32-bit-decoded", func() {
		from32, err := riscv.Decode32(0x04D727AF, riscv.Rv64)
		Expect(err).NotTo(HaveOccurred())
		Expect(from32.IsCompressed()).To(BeFalse())

		from16, err := riscv.Decode16(0x8082, riscv.Rv64)
		Expect(err).NotTo(HaveOccurred())
		Expect(from16.IsCompressed()).To(BeTrue())
	})
})

var _ = Describe("Not32BitInst law", func() {
	It("rejects every word whose low two bits aren't 0b11", func() {
		for low := uint32(0); low < 3; low++ {
			_, err := riscv.Decode32(0xDEADBE00|low, riscv.Rv64)
			Expect(err).To(MatchError(riscv.ErrNot32BitInst))
		}
	})
})

var _ = Describe("zero-word law", func() {
	It("treats the all-zero 16-bit word as illegal regardless of Isa", func() {
		_, errRv32 := riscv.Decode16(0, riscv.Rv32)
		_, errRv64 := riscv.Decode16(0, riscv.Rv64)
		Expect(errRv32).To(MatchError(riscv.ErrIllegalInstruction))
		Expect(errRv64).To(MatchError(riscv.ErrIllegalInstruction))
	})
})

var _ = Describe("64-bit-only gating", func() {
	DescribeTable("Rv64-only operations are rejected under Rv32",
		func(word uint32) {
			_, err := riscv.Decode32(word, riscv.Rv32)
			Expect(err).To(MatchError(riscv.ErrOnlyRv64Inst))
			_, err = riscv.Decode32(word, riscv.Rv64)
			Expect(err).NotTo(HaveOccurred())
		},
		Entry("LD", uint32(0x33073983)),
	)
})
