/*
Package nftokentest provides mocks and helpers for testing
code that processes ledger transactions.

Mocks implement the core interfaces (Tx, Msg, Handler,
Authenticator) with configurable results, so that extension
tests do not need a fully wired application.
*/
package nftokentest
