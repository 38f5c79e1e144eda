package dto

// SettingsReq represents the request body for the /settings endpoint.
// Absent fields are left unchanged; cppEmail and password pairing rules are
// checked in the usecase so the errors cite the violated rule.
type SettingsReq struct {
	Name        *string `json:"name"`
	Email       *string `json:"email" binding:"omitempty,email"`
	CppEmail    *string `json:"cppEmail" binding:"omitempty,email"`
	Password    *string `json:"password"`
	NewPassword *string `json:"newPassword"`
}
