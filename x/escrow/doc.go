/*
Package escrow implements a two-party token exchange with
deterministically derived vault accounts.

An initializer locks a deposit of one asset kind and names the
receiver, the asset kind and amount expected in return, a fee rate in
basis points, a fee collector account, and an expiry time. The deposit
is held in a keyless vault account whose address is derived from the
escrow ID, so no private key can ever move the locked funds outside of
the settlement rules.

Once the expiry time has been reached the receiver may claim: the
receiver's counter-payment and the locked deposit change hands in one
atomic settlement, with the configured fee cut paid to the collector.
Before expiry the initializer may instead return the escrow and take
the deposit back. Either way the escrow record is removed and its ID
is never reused.
*/
package escrow
