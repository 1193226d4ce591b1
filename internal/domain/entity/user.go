package entity

import "time"

// Roles de las cuentas demo.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
	RoleDemo  = "demo"
)

// DemoAccount cuenta de demostración. La contraseña se conserva solo como hash bcrypt.
type DemoAccount struct {
	Username     string
	PasswordHash string
	Nombre       string
	Rol          string
	Email        string
}

// UserProfile perfil devuelto tras un login exitoso.
type UserProfile struct {
	Username       string `json:"username"`
	Nombre         string `json:"nombre"`
	Rol            string `json:"rol"`
	Email          string `json:"email"`
	LoginTime      string `json:"login_time"`
	SessionExpires string `json:"session_expires"`
}

// Session resultado del login: perfil + token opaco. No se persiste en ningún lado.
type Session struct {
	Token     string
	User      UserProfile
	IssuedAt  time.Time
	ExpiresAt time.Time
}
