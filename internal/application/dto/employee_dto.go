package dto

import "time"

// LoginRequest credenciales de empleado.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Type     string `json:"type"` // cashier | manager
}

// LoginResponse token de sesión.
type LoginResponse struct {
	SessionToken string `json:"session_token"`
}

// EmployeeResponse datos públicos de un empleado.
type EmployeeResponse struct {
	Rut       string `json:"rut"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Role      string `json:"type"`
	StoreID   int    `json:"storeId"`
	FullTime  *bool  `json:"fullTime,omitempty"`
	Fired     *bool  `json:"fired,omitempty"`
}

// HireCashierRequest contratación de un cajero en la sucursal del gerente.
type HireCashierRequest struct {
	Rut       string `json:"rut"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	FullTime  *bool  `json:"fullTime"`
}

// HireCashierResponse la contraseña se muestra una sola vez; solo se guarda su hash.
type HireCashierResponse struct {
	Rut               string `json:"rut"`
	GeneratedPassword string `json:"generatedPassword"`
}

// ContractRequest cambio de jornada.
type ContractRequest struct {
	FullTime *bool `json:"fullTime"`
}

// SalaryRequest nuevo sueldo vigente desde ahora.
type SalaryRequest struct {
	Amount int `json:"amount"`
}

// SalaryResponse registro del historial de sueldos.
type SalaryResponse struct {
	ID        int64     `json:"id"`
	Amount    int       `json:"amount"`
	ValidFrom time.Time `json:"validFrom"`
}
