package storage

import "errors"

// Slot names, one durable slot per persisted collection.
const (
	SlotCart     = "cart"
	SlotWishlist = "wishlist"
	SlotUser     = "user"
	SlotOrders   = "orders"
)

var (
	ErrSlotNotFound = errors.New("storage slot not found")
)

// Store persists JSON snapshots of store state, one slot per collection.
// Slots load and fail independently: a missing or malformed slot must not
// affect any other slot.
type Store interface {
	// Load decodes the slot into the given value. Returns ErrSlotNotFound
	// when the slot has never been written.
	Load(slot string, into any) error
	// Save serializes the value and durably replaces the slot.
	Save(slot string, v any) error
	// Delete removes the slot. Deleting an absent slot is a no-op.
	Delete(slot string) error
}
