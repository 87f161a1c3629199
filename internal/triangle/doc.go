// Package triangle solves plane triangles from partial data.
//
// The four classical cases are supported: three sides (SSS), two sides and
// the included angle (SAS), two angles and the included side (ASA) and two
// angles and a side opposite one of them (AAS). Every solver validates its
// input and returns either a fully solved Triangle or an *Error whose Kind
// distinguishes bad input from numerical failure. Nothing in this package
// panics, keeps state or performs I/O.
//
// Angles are always expressed in degrees. Side A is opposite angle Alpha,
// side B opposite Beta and side C opposite Gamma.
package triangle
