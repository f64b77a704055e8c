package domain

// Principal is the authenticated identity attached to a request. It is
// reconstructed from the session token on every request and never persisted.
type Principal struct {
	ID   string `json:"user_id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

// CheckOwnership allows the operation when the principal is an admin or owns
// the target resource. ownerID must be the owner recorded on the loaded
// record, never an id supplied by the client.
func (p Principal) CheckOwnership(ownerID string) error {
	if p.Role == RoleAdmin {
		return nil
	}
	if p.ID != "" && p.ID == ownerID {
		return nil
	}
	return ErrForbidden
}
