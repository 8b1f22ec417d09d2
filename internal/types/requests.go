package types

// RegisterRequest is the payload for account creation
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Username string `json:"username" binding:"required,min=3,max=50"`
}

// LoginRequest is the payload for login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse carries the signed token back to the client
type AuthResponse struct {
	Token string `json:"token"`
}

// UpdateProfileRequest carries optional profile field updates
type UpdateProfileRequest struct {
	Username         *string `json:"username"`
	BloodType        *string `json:"blood_type"`
	EmergencyContact *string `json:"emergency_contact"`
	EmergencyPhone   *string `json:"emergency_phone"`
}

// PersonalAllergenRequest is the payload for creating or updating a
// personal allergen entry
type PersonalAllergenRequest struct {
	Name        string   `json:"name" binding:"required"`
	IsAllergic  bool     `json:"is_allergic"`
	Intensity   string   `json:"intensity" binding:"required,oneof=low medium high"`
	Category    string   `json:"category" binding:"required"`
	KUAPerLiter *float64 `json:"kua_per_liter"`
	Notes       string   `json:"notes"`
}
