package models

// Group represents a shared ledger of expenses between a fixed set of members.
// Groups only ever grow: members can be added but never removed, and groups
// never merge or split.
type Group struct {
	// ID is the unique identifier for the group (UUID format).
	ID string

	// Name is the display name of the group (e.g. "Roommates", "Ski Trip").
	Name string

	// Owner is the username of the user who created the group.
	// The owner is always present in Members.
	Owner string

	// Members is the list of usernames in this group, in insertion order.
	// The order is not semantically meaningful but is preserved for display
	// and used as the deterministic tie-break order in settlement output.
	Members []string

	// CreatedAt is the Unix timestamp when the group was created.
	CreatedAt int64
}

// HasMember reports whether username is in the group's member list.
func (g *Group) HasMember(username string) bool {
	for _, m := range g.Members {
		if m == username {
			return true
		}
	}
	return false
}
