package dto

// InviteResponse is returned after issuing a tenant invite.
type InviteResponse struct {
	Code string `json:"code"`
	Link string `json:"link"`
}
