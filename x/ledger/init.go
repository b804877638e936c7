package ledger

import (
	"github.com/vaultlock/vaultlock"
	"github.com/vaultlock/vaultlock/token"
)

const optKey = "ledger"

// GenesisAccount is used to parse the json from genesis file
// use vaultlock.Address, so address in hex, not base64
type GenesisAccount struct {
	Address  vaultlock.Address `json:"address"`
	Balances []GenesisBalance  `json:"balances"`
}

// GenesisBalance is one token holding of a genesis account
type GenesisBalance struct {
	Token  token.ID `json:"token"`
	Amount uint64   `json:"amount"`
}

// Initializer fulfils the vaultlock.Initializer interface to load
// data from the genesis file
type Initializer struct{}

var _ vaultlock.Initializer = Initializer{}

// FromGenesis will parse initial account info from genesis
// and save it to the database
func (Initializer) FromGenesis(opts vaultlock.Options, kv vaultlock.KVStore) error {
	accts := []GenesisAccount{}
	if err := opts.ReadOptions(optKey, &accts); err != nil {
		return err
	}
	bucket := NewBucket()
	for _, acct := range accts {
		if err := acct.Address.Validate(); err != nil {
			return err
		}
		wallet := NewWallet(acct.Address)
		for _, b := range acct.Balances {
			if err := wallet.Add(b.Token, b.Amount); err != nil {
				return err
			}
		}
		if err := bucket.Save(kv, wallet); err != nil {
			return err
		}
	}
	return nil
}
