package model

// LoginRequest is the JSON body for POST /admin/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ContactRequest is the JSON body for POST /api/contact. The form may send
// either a single name or firstName+lastName; phone and intent are optional.
type ContactRequest struct {
	Name      string `json:"name"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Intent    string `json:"intent"`
	Message   string `json:"message"`
}

// FullName resolves the submitted name, preferring the legacy single field.
func (r ContactRequest) FullName() string {
	if r.Name != "" {
		return r.Name
	}
	switch {
	case r.FirstName != "" && r.LastName != "":
		return r.FirstName + " " + r.LastName
	case r.FirstName != "":
		return r.FirstName
	default:
		return r.LastName
	}
}
