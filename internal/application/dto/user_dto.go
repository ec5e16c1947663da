package dto

import "time"

// RegisterRequest alta de usuario dentro de una empresa.
type RegisterRequest struct {
	EmpresaID int64  `json:"empresa_id"`
	Correo    string `json:"correo"`
	Password  string `json:"password"`
	Nombre    string `json:"nombre"`
	Rol       string `json:"rol"`
}

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Correo   string `json:"correo"`
	Password string `json:"password"`
}

// UserResponse usuario sin campos sensibles.
type UserResponse struct {
	ID        int64     `json:"id"`
	EmpresaID *int64    `json:"empresa_id"`
	Correo    string    `json:"correo"`
	Nombre    string    `json:"nombre"`
	Rol       string    `json:"rol"`
	Estado    string    `json:"estado"`
	CreadoEn  time.Time `json:"creado_en"`
}

// LoginResponse token emitido más el usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"usuario"`
}
