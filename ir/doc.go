// Package ir defines the value model shared by the objops packages.
//
// A value is any Go value.  [KindOf] sorts values into a closed set of
// kinds: null, bool, number, string, func, sequence, mapping and date.
// Anything else is [UnknownKind].  Sequences include Go slices and arrays
// and [*Sequence], which carries named attributes besides its items.
// Mappings are Go maps with string keys.
//
// The package also provides structural equality ([Equal]), truthiness
// ([Truth]), the [Absent] sentinel and `$`-path parsing ([ParsePath]).
package ir
