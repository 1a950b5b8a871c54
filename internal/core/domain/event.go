package domain

import (
	"time"

	"github.com/google/uuid"
)

// EventKind names a notification emitted after a committed operation.
type EventKind string

const (
	EventIdentityCreated      EventKind = "IDENTITY_CREATED"
	EventIdentityDeleted      EventKind = "IDENTITY_DELETED"
	EventVendorRegistered     EventKind = "VENDOR_REGISTERED"
	EventVendorRemoved        EventKind = "VENDOR_REMOVED"
	EventAffiliateRegistered  EventKind = "AFFILIATE_REGISTERED"
	EventAffiliateRemoved     EventKind = "AFFILIATE_REMOVED"
	EventAffiliateLinkAdded   EventKind = "AFFILIATE_LINK_ADDED"
	EventAffiliateLinkRemoved EventKind = "AFFILIATE_LINK_REMOVED"
	EventWhitelistAdded       EventKind = "WHITELIST_ADDED"
	EventWhitelistRemoved     EventKind = "WHITELIST_REMOVED"
	EventOwnershipTransferred EventKind = "OWNERSHIP_TRANSFERRED"
	EventPaymentSplit         EventKind = "PAYMENT_SPLIT"
)

// Event is a structured notification for external indexers. It carries no
// state the service reads back.
type Event struct {
	ID         uuid.UUID         `json:"id"`
	Kind       EventKind         `json:"kind"`
	Actor      Principal         `json:"actor"`
	Subject    DID               `json:"subject"`
	Attributes map[string]string `json:"attributes,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
}

// NewEvent creates an event stamped with a fresh ID and the current time.
func NewEvent(kind EventKind, actor Principal, subject DID) *Event {
	return &Event{
		ID:         uuid.New(),
		Kind:       kind,
		Actor:      actor,
		Subject:    subject,
		Attributes: map[string]string{},
		CreatedAt:  time.Now().UTC(),
	}
}

// With sets an attribute and returns the event for chaining.
func (e *Event) With(key, value string) *Event {
	e.Attributes[key] = value
	return e
}
