package domain

// Role is a registry membership kind.
type Role string

const (
	RoleVendor    Role = "VENDOR"
	RoleAffiliate Role = "AFFILIATE"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleVendor || r == RoleAffiliate
}

// IdentityResult is returned when a new identity is minted through the registry.
type IdentityResult struct {
	ID         DID       `json:"id"`
	Controller Principal `json:"controller"`
	// Referrer is the upline that was recorded, NoDID when the proposed
	// referrer was rejected or absent.
	Referrer DID `json:"referrer"`
}

// Linked reports whether a referrer link was stored at creation.
func (r *IdentityResult) Linked() bool {
	return r.Referrer != NoDID
}
