package dto

// NamedResponse id + nombre (marcas, tallas).
type NamedResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ProductTypeResponse tipo de producto.
type ProductTypeResponse struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// RegionResponse región con sus comunas.
type RegionResponse struct {
	Number   int             `json:"number"`
	Name     string          `json:"name"`
	Communes []NamedResponse `json:"communes"`
}

// StoreResponse sucursal.
type StoreResponse struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Address       string `json:"address"`
	AddressNumber int    `json:"addressNumber"`
	CommuneID     int    `json:"communeId"`
}

// SupplierResponse proveedor.
type SupplierResponse struct {
	Rut           string `json:"rut"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	AddressNumber int    `json:"addressNumber"`
	CommuneID     int    `json:"communeId"`
	Brands        []int  `json:"brands"`
}

// CreateNamedRequest alta de marca o talla.
type CreateNamedRequest struct {
	Name string `json:"name"`
}
