/*
Package nft implements a minimal non-fungible token ledger.

Tokens are named by dense unsigned integers, assigned
sequentially starting at 0. A single contract-level owner,
set at genesis, may mint new tokens. Each token is held by
exactly one address and may carry at most one approval,
delegating transfer rights for that token to another address.

State transitions are expressed as messages (mint, transfer,
update approval, transfer by an approved address) processed
by handlers registered on the application router. All
validation happens before the first write, so a failed
operation never leaves partial state.
*/
package nft
