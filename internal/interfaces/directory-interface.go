package interfaces

import "context"

// AccountProfile is the directory record used to snapshot applicant identity
// at submit time. Grade is nil for accounts without one (staff mentors).
type AccountProfile struct {
	AccountID   uint    `json:"account_id"`
	DisplayName string  `json:"display_name"`
	Department  string  `json:"department"`
	Grade       *string `json:"grade,omitempty"`
}

type AccountDirectory interface {
	Lookup(ctx context.Context, accountID uint) (*AccountProfile, error)
}
