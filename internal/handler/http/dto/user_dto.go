package dto

// CreateUserRequest is the registration payload. Credential rules are checked
// by the usecase, binding only covers presence and size.
type CreateUserRequest struct {
	Username  string  `json:"username" binding:"required,max=64"`
	Email     string  `json:"email" binding:"required,max=254"`
	Password  string  `json:"password" binding:"required,max=72"`
	FirstName *string `json:"firstname" binding:"omitempty,max=100"`
	LastName  *string `json:"lastname" binding:"omitempty,max=100"`
}

// LoginRequest accepts either a username or an email in Username.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdateUserRequest overwrites only the fields that are present.
type UpdateUserRequest struct {
	FirstName *string `json:"firstname" binding:"omitempty,max=100"`
	LastName  *string `json:"lastname" binding:"omitempty,max=100"`
}
