package core

// RequesterContext is what the auth middleware learned about the caller
type RequesterContext struct {
	Type int    `json:"type"`
	ID   string `json:"id,omitempty"`
	Role string `json:"role,omitempty"`
}

func (r RequesterContext) IsAdmin() bool {
	return r.Type == Admin
}

func (r RequesterContext) IsKnown() bool {
	return r.Type != Unknown
}
