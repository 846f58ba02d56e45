package entity

// Client cliente de la cadena, independiente de la sucursal.
type Client struct {
	Rut       string
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Address   string
}
