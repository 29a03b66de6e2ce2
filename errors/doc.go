/*
Package errors implements custom error interfaces for the ledger.

The idea is to reuse as many errors from this package as possible and
define new ones only when necessary. Errors are categorized by a numeric
code so the host can report failures over the ABCI interface without
leaking internal details. Each error instance created during runtime
should wrap one of the registered root errors, so that the category can
be recovered with Is and ABCIInfo even after wrapping.
*/
package errors
