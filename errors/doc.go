/*
Package errors implements custom error interfaces for the escrow ledger.

The idea is to reuse as many errors from this package as possible and
define custom package errors only when an error code must be surfaced
to a caller with a distinct meaning (see x/escrow for the settlement
error taxonomy).

Errors should be registered once, during the program initialisation, and
only wrapped during the runtime. Wrapping attaches call context while
keeping the root cause testable with the Is method.
*/
package errors
