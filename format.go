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

// Format tags the operand shape of an instruction for display purposes.
type Format int

const (
	FormatR Format = iota
	FormatRShamt
	FormatI
	FormatS
	FormatB
	FormatU
	FormatJ
	FormatM
	FormatA
	FormatALR
	FormatCSR
	FormatCSRUimm
	FormatCR
	FormatCI
	FormatCSS
	FormatCIW
	FormatCL
	FormatCS
	FormatCA
	FormatCB
	FormatCJ
	FormatNoOperand
	FormatOnlyRd
	FormatOnlyRs1
	FormatOnlyRs2
)

func (f Format) String() string {
	switch f {
	case FormatR:
		return "R"
	case FormatRShamt:
		return "R-shamt"
	case FormatI:
		return "I"
	case FormatS:
		return "S"
	case FormatB:
		return "B"
	case FormatU:
		return "U"
	case FormatJ:
		return "J"
	case FormatM:
		return "M"
	case FormatA:
		return "A"
	case FormatALR:
		return "A-LR"
	case FormatCSR:
		return "CSR"
	case FormatCSRUimm:
		return "CSR-uimm"
	case FormatCR:
		return "CR"
	case FormatCI:
		return "CI"
	case FormatCSS:
		return "CSS"
	case FormatCIW:
		return "CIW"
	case FormatCL:
		return "CL"
	case FormatCS:
		return "CS"
	case FormatCA:
		return "CA"
	case FormatCB:
		return "CB"
	case FormatCJ:
		return "CJ"
	case FormatNoOperand:
		return "no-operand"
	case FormatOnlyRd:
		return "only-rd"
	case FormatOnlyRs1:
		return "only-rs1"
	case FormatOnlyRs2:
		return "only-rs2"
	default:
		return "unknown"
	}
}
