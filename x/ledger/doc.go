/*
Package ledger keeps track of token balances per account and
implements the transfer service the rest of the application builds on.

Every account is named by an address and holds one wallet. A wallet is
a set of balances, at most one per asset kind. Balances are unsigned
64-bit integers of the smallest token unit.

The Controller is the only write path into the ledger. Moves are
all-or-nothing: either both wallets are updated or neither is.
*/
package ledger
