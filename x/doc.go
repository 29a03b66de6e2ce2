/*
Package x contains some standard extensions and the interfaces
they are built upon.

Extensions are groups of message handlers along with the models
they persist. They are wired together in the application and
should only depend on interfaces defined here or in the root
package, never on each other.
*/
package x

// Validater is implemented by anything that can validate its
// internal consistency. Structs that are persisted or sent as
// messages should implement it.
//
// (Yes, this is a different concept than a validator in the
// consensus sense.)
type Validater interface {
	Validate() error
}
