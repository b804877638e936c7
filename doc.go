/*

Package vaultlock defines interfaces used throughout the escrow ledger,
such as: storage, transactions, handlers and derived authorities.
It also contains helpers to work with errors, context and block time.
Look into this package to get a brief overview of design decisions made
around interfaces and extension building blocks.

The escrow lifecycle itself lives in x/escrow, token balances and
transfers in x/ledger, and the storage primitives in store and orm.

*/

package vaultlock
