package entity

import "time"

// Session sesión de un empleado autenticado.
type Session struct {
	ID        string    `json:"id"`
	Rut       string    `json:"rut"`
	Role      string    `json:"role"`
	StoreID   int       `json:"store_id"`
	ExpiresAt time.Time `json:"expires_at"`
}
