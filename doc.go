/*
Package nftoken defines the common interfaces that weave together the
subpackages of this repository: the abstract key-value store, messages and
transactions, handlers, and the query router.

The actual token ledger lives in x/nft. This package only provides the
kernel it is built on, so that the store backend, the authentication source
and the dispatch plumbing can be swapped without touching the ledger logic.
*/
package nftoken
