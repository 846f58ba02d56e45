package entity

// Brand marca de productos.
type Brand struct {
	ID   int
	Name string
}

// ProductType tipo de producto (polera, pantalón, etc.).
type ProductType struct {
	ID          int
	Name        string
	Description string
}

// ProductSize talla.
type ProductSize struct {
	ID   int
	Name string
}

// Supplier proveedor; abastece una o más marcas.
type Supplier struct {
	Rut           string
	Name          string
	Email         string
	Phone         string
	Address       string
	AddressNumber int
	CommuneID     int
	BrandIDs      []int
}
