package escrow

import (
	"strconv"

	"github.com/vaultlock/vaultlock"
	"github.com/vaultlock/vaultlock/orm"
)

// Tag keys emitted with delivery results so clients can follow the
// escrow lifecycle without parsing state.
const (
	TagAction      = "escrow.action"
	TagEscrowID    = "escrow.id"
	TagInitializer = "escrow.initializer"
	TagReceiver    = "escrow.receiver"
	TagExpiry      = "escrow.expiry"
)

// Actions published under TagAction
const (
	ActionInitialized = "initialized"
	ActionClaimed     = "claimed"
	ActionReturned    = "returned"
)

func eventTags(action string, escrowID []byte, e *Escrow) []vaultlock.Tag {
	tags := []vaultlock.Tag{
		vaultlock.NewTag(TagAction, action),
		vaultlock.NewTag(TagEscrowID, strconv.FormatInt(orm.DecodeSequence(escrowID), 10)),
		vaultlock.NewTag(TagInitializer, e.Initializer.String()),
		vaultlock.NewTag(TagReceiver, e.Receiver.String()),
	}
	if action == ActionInitialized {
		tags = append(tags, vaultlock.NewTag(TagExpiry, strconv.FormatInt(int64(e.Expiry), 10)))
	}
	return tags
}
