// This file is part of c64core.
//
// c64core is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// c64core is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with c64core.  If not, see <https://www.gnu.org/licenses/>.

// Package functional_test runs Klaus Dormann's 6502 functional test binary
// against cpu6502, the same way the interpreter this package was adapted
// from validates itself. The test binary is not distributed with this
// module - TestFunctional skips itself when KLAUS_FUNCTIONAL_TEST_ROM is
// unset, the same pattern used elsewhere in this module for the copyrighted
// C64 KERNAL/BASIC ROM images.
package functional_test
