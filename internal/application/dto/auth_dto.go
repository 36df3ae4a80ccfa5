package dto

// LoginRequest body para POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse token JWT más el usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"usuario"`
}

// RegisterRequest body para POST /api/auth/register.
// La cuenta nace con rol "none" y estado "inactivo" hasta que un
// administrador la active.
type RegisterRequest struct {
	Name     string `json:"nombre"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ResetPasswordRequest body para POST /api/auth/reset.
type ResetPasswordRequest struct {
	Email string `json:"email"`
}

// PasswordChangeRequest body para POST /api/auth/password-request
// (solo vendedores): solicita a los administradores un cambio de contraseña.
type PasswordChangeRequest struct {
	Email       string `json:"email"`
	NewPassword string `json:"nueva_password"`
}

// WarningResponse mensaje no fatal para el usuario (ej: correo no enviado).
type WarningResponse struct {
	Message  string   `json:"mensaje"`
	Warnings []string `json:"advertencias,omitempty"`
}
