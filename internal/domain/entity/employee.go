package entity

import "time"

// Roles de empleado.
const (
	RoleCashier = "cashier"
	RoleManager = "manager"
)

// Employee datos comunes de cajeros y gerentes. El RUT es la clave.
type Employee struct {
	Rut          string
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	PasswordHash string // bcrypt
	Role         string
	StoreID      int
}

// Cashier cajero. Fired desactiva la cuenta sin borrar su historial de ventas.
type Cashier struct {
	Employee
	FullTime bool
	Fired    bool
}

// Active indica si el cajero puede operar.
func (c *Cashier) Active() bool {
	return !c.Fired
}

// Manager gerente de una sucursal.
type Manager struct {
	Employee
}

// Salary monto de sueldo de un cajero vigente desde ValidFrom hasta el siguiente registro.
type Salary struct {
	ID         int64
	CashierRut string
	Amount     int // en pesos
	ValidFrom  time.Time
}
