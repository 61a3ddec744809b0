package auth

// RegisterDTO is the transport shape for HR user registration.
type RegisterDTO struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	CompanyName string `json:"company_name"`
}

// LoginDTO is populated from the form-encoded login request.
type LoginDTO struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenResponse is the login response body.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// UserResponse is the profile shape returned by register and /auth/me.
type UserResponse struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	CompanyID   int64  `json:"company_id"`
	CompanyName string `json:"company_name"`
}

// ValidationError represents a simple validation error from DTO validation.
type ValidationError struct {
	Msg string
}

func (v ValidationError) Error() string { return v.Msg }

// Validate checks required fields and returns a ValidationError on failure.
// An empty password is allowed: it hashes like any other string.
func (d RegisterDTO) Validate() error {
	if d.Username == "" {
		return ValidationError{Msg: "username is required"}
	}
	if d.Email == "" {
		return ValidationError{Msg: "email is required"}
	}
	if d.CompanyName == "" {
		return ValidationError{Msg: "company_name is required"}
	}
	return nil
}

func (d LoginDTO) Validate() error {
	if d.Username == "" {
		return ValidationError{Msg: "username is required"}
	}
	return nil
}
