package entity

// Store sucursal de la cadena.
type Store struct {
	ID            int
	Name          string
	Address       string
	AddressNumber int
	CommuneID     int
}

// Region región del país; es dueña de sus comunas.
type Region struct {
	Number   int
	Name     string
	Communes []Commune
}

// Commune comuna, pertenece a exactamente una región.
type Commune struct {
	ID           int
	Name         string
	RegionNumber int
}
