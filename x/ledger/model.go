package ledger

import (
	"bytes"
	"sort"

	"github.com/vaultlock/vaultlock"
	"github.com/vaultlock/vaultlock/errors"
	"github.com/vaultlock/vaultlock/orm"
	"github.com/vaultlock/vaultlock/token"
)

// BucketName is where we store the wallets
const BucketName = "ledger"

// Balance is the amount of one asset kind held by a wallet
type Balance struct {
	Token  token.ID
	Amount uint64
}

// Set is the value stored per account: a sorted list of balances,
// at most one per asset kind
type Set struct {
	Balances []Balance
}

var _ orm.CloneableData = (*Set)(nil)

// Validate requires all balances sorted by token with no duplicates
// and no zero amounts
func (s *Set) Validate() error {
	for i, b := range s.Balances {
		if err := b.Token.Validate(); err != nil {
			return err
		}
		if b.Amount == 0 {
			return errors.Wrapf(errors.ErrAmount, "zero balance for %s", b.Token)
		}
		if i > 0 && bytes.Compare(s.Balances[i-1].Token, b.Token) >= 0 {
			return errors.Wrap(errors.ErrModel, "balances unsorted or duplicate token")
		}
	}
	return nil
}

// Copy makes a new set with the same balances
func (s *Set) Copy() orm.CloneableData {
	out := make([]Balance, len(s.Balances))
	for i, b := range s.Balances {
		out[i] = Balance{Token: b.Token.Clone(), Amount: b.Amount}
	}
	return &Set{Balances: out}
}

// index returns the position of the given token, and whether it is present
func (s *Set) index(id token.ID) (int, bool) {
	i := sort.Search(len(s.Balances), func(i int) bool {
		return bytes.Compare(s.Balances[i].Token, id) >= 0
	})
	return i, i < len(s.Balances) && s.Balances[i].Token.Equals(id)
}

//--- Wallet (Set object, balances + key)

// Wallet is the object we pass around in our code. It contains a set
// of balances, as well as the address it is stored under.
//
// Wallet is a type-safe wrapper around orm.SimpleObj
type Wallet struct {
	key   []byte
	value *Set
}

var _ orm.Object = (*Wallet)(nil)

// NewWallet creates an empty wallet with this address
func NewWallet(key vaultlock.Address) *Wallet {
	return &Wallet{
		key:   key,
		value: new(Set),
	}
}

// Value gets the value stored in the object
func (w Wallet) Value() orm.CloneableData {
	return w.value
}

// Key returns the key to store the object under
func (w Wallet) Key() []byte {
	return w.key
}

// Validate makes sure the key is set and the balances are well formed
func (w Wallet) Validate() error {
	if err := vaultlock.Address(w.key).Validate(); err != nil {
		return err
	}
	return w.value.Validate()
}

// SetKey may be used to update the wallet address
func (w *Wallet) SetKey(key []byte) {
	w.key = key
}

// Clone will make a copy of this object
func (w *Wallet) Clone() orm.Object {
	res := &Wallet{
		value: w.value.Copy().(*Set),
	}
	if len(w.key) > 0 {
		res.key = append([]byte(nil), w.key...)
	}
	return res
}

// Balance returns the amount of the given token held in the wallet,
// zero if the token is not present
func (w Wallet) Balance(id token.ID) uint64 {
	if i, ok := w.value.index(id); ok {
		return w.value.Balances[i].Amount
	}
	return 0
}

// Add increases the balance of the given token. Fails on overflow.
func (w *Wallet) Add(id token.ID, amount uint64) error {
	i, ok := w.value.index(id)
	if !ok {
		bs := w.value.Balances
		bs = append(bs, Balance{})
		copy(bs[i+1:], bs[i:])
		bs[i] = Balance{Token: id.Clone(), Amount: amount}
		w.value.Balances = bs
		return nil
	}
	cur := w.value.Balances[i].Amount
	if cur+amount < cur {
		return errors.Wrapf(errors.ErrOverflow, "balance of %s", id)
	}
	w.value.Balances[i].Amount = cur + amount
	return nil
}

// Subtract decreases the balance of the given token, removing the
// entry when it drops to zero. Fails if the wallet holds less than
// the requested amount.
func (w *Wallet) Subtract(id token.ID, amount uint64) error {
	i, ok := w.value.index(id)
	if !ok || w.value.Balances[i].Amount < amount {
		return errors.Wrapf(errors.ErrInsufficientFunds, "balance of %s", id)
	}
	w.value.Balances[i].Amount -= amount
	if w.value.Balances[i].Amount == 0 {
		w.value.Balances = append(w.value.Balances[:i], w.value.Balances[i+1:]...)
	}
	return nil
}

// IsEmpty returns true when the wallet holds no balances at all
func (w Wallet) IsEmpty() bool {
	return len(w.value.Balances) == 0
}

//--- ledger.Bucket - type-safe bucket

// Bucket is a type-safe wrapper around orm.Bucket
type Bucket struct {
	orm.Bucket
}

// NewBucket initializes a ledger.Bucket with default name
func NewBucket() Bucket {
	return Bucket{
		Bucket: orm.NewBucket(BucketName, NewWallet(nil)),
	}
}

// Get loads the wallet at the given address, or nil if none is stored
func (b Bucket) Get(db vaultlock.ReadOnlyKVStore, key vaultlock.Address) (*Wallet, error) {
	obj, err := b.Bucket.Get(db, key)
	if err != nil {
		return nil, err
	}
	return AsWallet(obj), nil
}

// GetOrCreate loads the wallet at the given address, creating an
// empty one if none is stored yet
func (b Bucket) GetOrCreate(db vaultlock.ReadOnlyKVStore, key vaultlock.Address) (*Wallet, error) {
	w, err := b.Get(db, key)
	if err == nil && w == nil {
		w = NewWallet(key)
	}
	return w, err
}

// Save persists the wallet, deleting it when all balances are gone
func (b Bucket) Save(db vaultlock.KVStore, w *Wallet) error {
	if w.IsEmpty() {
		return b.Bucket.Delete(db, w.Key())
	}
	return b.Bucket.Save(db, w)
}

// AsWallet safely extracts a Wallet from the generic object
func AsWallet(obj orm.Object) *Wallet {
	if obj == nil {
		return nil
	}
	return obj.(*Wallet)
}
