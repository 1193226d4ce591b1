package auth

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jhoicas/mvp-cfdi-api/internal/application/dto"
	"github.com/jhoicas/mvp-cfdi-api/internal/domain"
	"github.com/jhoicas/mvp-cfdi-api/internal/domain/entity"
	"github.com/jhoicas/mvp-cfdi-api/internal/domain/repository"
)

// SessionConfig parámetros de emisión del token.
type SessionConfig struct {
	TokenSalt  string
	SessionTTL time.Duration    // solo informativo: session_expires no se valida en ningún lado
	Now        func() time.Time // nil = time.Now
}

// AuthUseCase login/logout de demostración. No guarda sesiones: el token es un hash
// opaco que nadie verifica. No usar fuera de una demo.
type AuthUseCase struct {
	accounts repository.AccountDirectory
	cfg      SessionConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(accounts repository.AccountDirectory, cfg SessionConfig) *AuthUseCase {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &AuthUseCase{accounts: accounts, cfg: cfg}
}

// Login acepta:
//  1. una cuenta demo cuyo password coincide → perfil de esa cuenta;
//  2. cualquier otro par username/password no vacío → perfil sintético con rol "demo".
//
// El punto 2 incluye un username demo con password incorrecto: no se rechaza, se degrada
// a rol "demo". Devuelve domain.ErrMissingCredentials si falta alguno de los dos.
func (uc *AuthUseCase) Login(ctx context.Context, username, password string) (*entity.Session, error) {
	if username == "" || password == "" {
		return nil, domain.ErrMissingCredentials
	}
	profile, err := uc.resolveProfile(ctx, username, password)
	if err != nil {
		return nil, err
	}

	now := uc.cfg.Now()
	ts := dto.Timestamp(now)
	expires := now.Add(uc.cfg.SessionTTL)
	profile.LoginTime = ts
	profile.SessionExpires = dto.Timestamp(expires)

	return &entity.Session{
		Token:     uc.token(username, ts),
		User:      *profile,
		IssuedAt:  now,
		ExpiresAt: expires,
	}, nil
}

func (uc *AuthUseCase) resolveProfile(ctx context.Context, username, password string) (*entity.UserProfile, error) {
	acc, err := uc.accounts.Find(ctx, username)
	if err != nil {
		return nil, err
	}
	if acc != nil && uc.accounts.Verify(acc, password) {
		return &entity.UserProfile{
			Username: username,
			Nombre:   acc.Nombre,
			Rol:      acc.Rol,
			Email:    acc.Email,
		}, nil
	}
	if username != "" && password != "" {
		return &entity.UserProfile{
			Username: username,
			Nombre:   "Usuario " + titleCase(username),
			Rol:      entity.RoleDemo,
			Email:    username + "@demo.com",
		}, nil
	}
	return nil, domain.ErrInvalidCredentials
}

// Logout solo exige que el token no esté vacío; no hay estado que limpiar.
func (uc *AuthUseCase) Logout(_ context.Context, token string) error {
	if token == "" {
		return domain.ErrMissingToken
	}
	return nil
}

// token = md5(username:timestamp:salt) en hexadecimal.
func (uc *AuthUseCase) token(username, timestamp string) string {
	sum := md5.Sum([]byte(username + ":" + timestamp + ":" + uc.cfg.TokenSalt))
	return hex.EncodeToString(sum[:])
}

// titleCase inicia palabra después de cualquier carácter que no sea letra (espacio, "_", dígito, "'"):
// "juan_perez" → "Juan_Perez", "user1name" → "User1Name", "o'neil" → "O'Neil".
// Cada tramo de letras pasa por cases.Title; el Caser no es seguro entre goroutines, se crea uno por llamada.
func titleCase(s string) string {
	caser := cases.Title(language.Und)
	var b strings.Builder
	b.Grow(len(s))
	start := -1
	for i, r := range s {
		if unicode.IsLetter(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			b.WriteString(caser.String(s[start:i]))
			start = -1
		}
		b.WriteRune(r)
	}
	if start >= 0 {
		b.WriteString(caser.String(s[start:]))
	}
	return b.String()
}
