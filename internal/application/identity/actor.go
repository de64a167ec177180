package identity

// Actor is the authenticated caller as seen by the application layer.
// All authorization decisions are expressed against it.
type Actor struct {
	UserID  uint
	Email   string
	OngID   *uint
	BoardID *uint
	Admin   bool
}

// HasOng reports whether the actor acts on behalf of an NGO
func (a *Actor) HasOng() bool {
	return a.OngID != nil
}

// IsBoardMember reports whether the actor belongs to an oversight board
func (a *Actor) IsBoardMember() bool {
	return a.BoardID != nil
}
