// Package accounts implementa la tabla de cuentas demo (repository.AccountDirectory).
package accounts

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"

	"github.com/jhoicas/mvp-cfdi-api/internal/domain/entity"
)

// Seed cuenta tal como se configura: contraseña en texto plano, se hashea al construir el directorio.
type Seed struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Nombre   string `yaml:"nombre"`
	Rol      string `yaml:"rol"`
	Email    string `yaml:"email"`
}

// DefaultAccounts las tres cuentas demo integradas.
func DefaultAccounts() []Seed {
	return []Seed{
		{Username: "admin", Password: "admin123", Nombre: "Administrador Demo", Rol: entity.RoleAdmin, Email: "admin@mvp-cfdi.com"},
		{Username: "usuario", Password: "user123", Nombre: "Usuario Demo", Rol: entity.RoleUser, Email: "usuario@mvp-cfdi.com"},
		{Username: "demo", Password: "demo", Nombre: "Usuario Demostración", Rol: entity.RoleDemo, Email: "demo@mvp-cfdi.com"},
	}
}

type yamlFile struct {
	Accounts []Seed `yaml:"accounts"`
}

// LoadYAML lee una tabla de cuentas con la forma:
//
//	accounts:
//	  - username: admin
//	    password: admin123
//	    nombre: Administrador Demo
//	    rol: admin
//	    email: admin@mvp-cfdi.com
func LoadYAML(path string) ([]Seed, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("accounts: leer %s: %w", path, err)
	}
	var f yamlFile
	if err := yaml.Unmarshal(content, &f); err != nil {
		return nil, fmt.Errorf("accounts: parsear %s: %w", path, err)
	}
	for i, s := range f.Accounts {
		if s.Username == "" {
			return nil, fmt.Errorf("accounts: cuenta #%d sin username", i+1)
		}
	}
	return f.Accounts, nil
}

// Directory tabla en memoria de cuentas demo; inmutable tras construirse.
type Directory struct {
	byUsername map[string]*entity.DemoAccount
}

// NewDirectory hashea cada contraseña con el costo indicado (0 = bcrypt.DefaultCost).
// Si un username se repite, gana la última entrada.
func NewDirectory(seeds []Seed, cost int) (*Directory, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	d := &Directory{byUsername: make(map[string]*entity.DemoAccount, len(seeds))}
	for _, s := range seeds {
		hash, err := bcrypt.GenerateFromPassword([]byte(s.Password), cost)
		if err != nil {
			return nil, fmt.Errorf("accounts: hash de %s: %w", s.Username, err)
		}
		d.byUsername[s.Username] = &entity.DemoAccount{
			Username:     s.Username,
			PasswordHash: string(hash),
			Nombre:       s.Nombre,
			Rol:          s.Rol,
			Email:        s.Email,
		}
	}
	return d, nil
}

// Find busca por username exacto (sensible a mayúsculas).
func (d *Directory) Find(_ context.Context, username string) (*entity.DemoAccount, error) {
	acc, ok := d.byUsername[username]
	if !ok {
		return nil, nil
	}
	cp := *acc
	return &cp, nil
}

// Verify compara password contra el hash bcrypt de la cuenta.
func (d *Directory) Verify(account *entity.DemoAccount, password string) bool {
	if account == nil {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) == nil
}

// Len número de cuentas cargadas.
func (d *Directory) Len() int { return len(d.byUsername) }
