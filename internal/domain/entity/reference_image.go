package entity

// ReferenceImage is the locally kept copy of the last image registered for a user.
type ReferenceImage struct {
	UserID      string
	Data        []byte
	ContentType string
	FullName    string
	Email       string
}
