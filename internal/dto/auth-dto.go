package dto

// AuthClaims is the identity the gateway already authenticated. The core
// trusts these claims; Operator carries the external authorizer's decision on
// review/commit access.
type AuthClaims struct {
	AccountID uint    `json:"account_id"`
	Operator  bool    `json:"operator"`
	Iat       float64 `json:"iat"`
	Expiry    float64 `json:"expiry"`
}
