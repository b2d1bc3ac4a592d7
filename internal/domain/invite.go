package domain

// InviteCode is a single entry in the invite registry. The JSON shape is the
// registry's wire format: a short opaque code plus a used flag that starts
// false and flips to true exactly once at redemption. Entries are never
// deleted and there is no expiry.
type InviteCode struct {
	Code string `json:"code"`
	Used bool   `json:"used,omitempty"`
}
