package auth

// ChangePasswordRequest carries the new password typed twice.
type ChangePasswordRequest struct {
	Password         string `json:"password" validate:"required,min=6"`
	RepeatedPassword string `json:"repeatedPassword" validate:"required"`
}
