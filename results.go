package vaultlock

// Tag is an informational key/value pair attached to a DeliverResult.
// Tags are consumed by off-ledger observers to index transaction
// history. The core never reads them back.
type Tag struct {
	Key   []byte
	Value []byte
}

// NewTag is a helper to shorten tag construction in handler code.
func NewTag(key, value string) Tag {
	return Tag{Key: []byte(key), Value: []byte(value)}
}

// DeliverResult captures any non-error result of a Deliver call,
// to make sure people use error for error cases
type DeliverResult struct {
	// Data is a machine-parseable return value, like id of created entity
	Data []byte
	// Log is human-readable informational string
	Log string
	// Tags, if present, can be used by the caller to index and search
	// the transaction history. They carry the notification events and
	// are purely informational.
	Tags []Tag
	// GasUsed is the units of work consumed by the transaction
	GasUsed int64
}

// CheckResult captures any non-error result of a Check call,
// to make sure people use error for error cases
type CheckResult struct {
	// Data is a machine-parseable return value, like id of created entity
	Data []byte
	// Log is human-readable informational string
	Log string
	// GasAllocated is the maximum units of work we allow this tx to perform
	GasAllocated int64
}
