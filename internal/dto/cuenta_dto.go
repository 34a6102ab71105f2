package dto

// ─── Auth ────────────────────────────────────────────────────────────────────

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ─── Cuentas ─────────────────────────────────────────────────────────────────

// CrearCuentaRequest registers an account via POST /accounts.
// The role list accepts both spellings of admin the backend stores.
type CrearCuentaRequest struct {
	Nombre               string `json:"name"                  validate:"required,min=1,max=120"`
	Email                string `json:"email"                 validate:"required,email"`
	Password             string `json:"password"              validate:"required,min=8"`
	PasswordConfirmacion string `json:"password_confirmation" validate:"required,eqfield=Password"`
	Rol                  string `json:"role"                  validate:"required,oneof=admin administrador consultor vendedor"`
}

type ActualizarCuentaRequest struct {
	Nombre string `json:"name"  validate:"required,min=1,max=120"`
	Email  string `json:"email" validate:"required,email"`
	Rol    string `json:"role"  validate:"required,oneof=admin administrador consultor vendedor"`
}

// CambiarPasswordRequest goes to PATCH /accounts/{id}/change-password.
type CambiarPasswordRequest struct {
	PasswordActual       string `json:"current_password"          validate:"required"`
	PasswordNueva        string `json:"new_password"              validate:"required,min=8"`
	PasswordConfirmacion string `json:"new_password_confirmation" validate:"required,eqfield=PasswordNueva"`
}
