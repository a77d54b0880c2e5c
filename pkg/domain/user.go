package domain

// UserID identifies a chat platform user. It is the opaque identifier the
// messaging platform assigns (for LINE, a "U..." string) and is used as the
// push message recipient.
type UserID string

func (id UserID) String() string { return string(id) }
