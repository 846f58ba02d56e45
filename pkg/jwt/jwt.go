package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims claims estándar JWT más los datos del empleado en sesión.
// SessionID (jti) enlaza el token con el registro de sesiones para poder revocarlo.
type Claims struct {
	jwt.RegisteredClaims
	Rut     string `json:"rut"`
	Role    string `json:"role"` // "cashier" | "manager"
	StoreID int    `json:"store_id"`
}

// Session datos extraídos de un token válido.
type Session struct {
	ID        string
	Rut       string
	Role      string
	StoreID   int
	ExpiresAt time.Time
}

// Generate firma un token HS256 para la sesión indicada.
func Generate(secret, issuer string, s Session) (string, error) {
	if secret == "" {
		return "", errors.New("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        s.ID,
			Issuer:    issuer,
			Subject:   s.Rut,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(s.ExpiresAt),
		},
		Rut:     s.Rut,
		Role:    s.Role,
		StoreID: s.StoreID,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida firma y expiración y devuelve la sesión contenida en el token.
func Parse(secret, tokenString string) (*Session, error) {
	if secret == "" {
		return nil, errors.New("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("claims inválidos")
	}
	if claims.ID == "" || claims.Rut == "" {
		return nil, errors.New("token sin sesión")
	}
	s := &Session{
		ID:      claims.ID,
		Rut:     claims.Rut,
		Role:    claims.Role,
		StoreID: claims.StoreID,
	}
	if claims.ExpiresAt != nil {
		s.ExpiresAt = claims.ExpiresAt.Time
	}
	return s, nil
}
