/*
 * errors.go, part of molbox.
 *
 *
 * Copyright 2023 Raul Mera <rauldotmeraatusachdotcl>
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
 *
 * molbox is currently developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */

package molbox

import "fmt"

//Error is the interface for errors returned by this library. The Decorate method
//allows to add and retrieve info from the error, without changing its type or
//wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string //Decorate adds information when the error is passed up. Each call also returns the current decoration slice. If passed an empty string, it just returns the current value without adding anything. The slice should contain the names of the functions in the calling stack, plus, for each function, any relevant information, in the format "FunctionName: Extra info"
}

//errDecorate is a helper function that asserts that the error
//implements molbox.Error and decorates the error with the caller's name before returning it.
//if used with a non-molbox.Error error, it will cause a panic.
func errDecorate(err error, caller string) error {
	err2 := err.(Error)
	err2.Decorate(caller)
	return err2
}

//InvalidBoxError is the structure for errors in the construction of a box,
//the only stage at which this library can fail. It fulfills molbox.Error.
type InvalidBoxError struct {
	message string
	deco    []string
}

func (err InvalidBoxError) Error() string {
	return fmt.Sprintf("molbox: invalid box: %s", err.message)
}

//Decorate adds new information to the error
func (E InvalidBoxError) Decorate(deco string) []string {
	//Even though this method does not use a pointer as a receiver, and tries to alter the receiver,
	//it should work, since E.deco is a slice, and hence a pointer itself.
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

const (
	NonPositiveLengths = "edge lengths must all be finite and strictly positive"
	AnglesOutOfRange   = "angles must lie strictly between 0 and 180 degrees"
	DegenerateVectors  = "vectors are collinear or coplanar, they don't span a volume"
	NonFiniteVectors   = "vectors must have only finite components"
	NegativePrecision  = "precision must be a non-negative number of decimals"
	NilInput           = "given nil input"
)
