package dto

// CreateClientRequest alta de cliente.
type CreateClientRequest struct {
	Rut       string `json:"rut"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
}

// ClientResponse cliente.
type ClientResponse struct {
	Rut       string `json:"rut"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
}
