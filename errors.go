/*
 * errors.go, part of gochem.
 *
 * Copyright 2021 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package mcstep

// Error is the decoration-capable error interface used across this
// dependency pack: a plain message plus a trail of calling-function
// decorations appended on the way up the stack.
type Error interface {
	Error() string
	Decorate(string) []string
}

// GenericError is the only concrete Error this package returns; it is used
// for construction-time failures (NewBox, NewEngine). The topology
// package's BuildExclusionTables returns that package's own Error type.
// Everything else that goes wrong here is a programmer error and panics
// instead, per this package's convention: fundamental functions assume
// their inputs were already validated by the caller that built the Box.
type GenericError struct {
	message string
	deco    []string
}

func (err GenericError) Error() string { return err.message }

func (err GenericError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

func newError(caller, message string) Error {
	return GenericError{message, []string{caller}}
}

// PanicMsg is a panic value type for programmer errors. No function of this
// package currently panics with a PanicMsg: bad indices surface as Go's own
// index-out-of-range panics, and Rollback does not check the
// snapshot/rollback protocol.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }
