package domain

// Selection is the session-scoped record of which stadium and shop a staff
// user currently has active. It is not part of the persisted portal schema;
// it lives only in the session's selection store.
type Selection struct {
	Stadium *Stadium `json:"stadium,omitempty"`
	Shop    *Shop    `json:"shop,omitempty"`
}

func (s Selection) Empty() bool {
	return s.Stadium == nil && s.Shop == nil
}
