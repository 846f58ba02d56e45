// Package catalog contiene los criterios de búsqueda del catálogo de productos.
package catalog

import (
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// SortDir dirección de ordenamiento.
type SortDir string

const (
	Asc  SortDir = "asc"
	Desc SortDir = "desc"
)

// ParseSortDir interpreta "asc"/"desc" sin distinguir mayúsculas. Cualquier otro valor se ignora (nil).
func ParseSortDir(s string) *SortDir {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "asc":
		d := Asc
		return &d
	case "desc":
		d := Desc
		return &d
	}
	return nil
}

// Filter criterios opcionales de búsqueda. Un campo vacío o nil no restringe.
type Filter struct {
	Name     string
	Types    []int
	Sizes    []int
	Brands   []int
	Colors   []int
	Regions  []int
	Communes []int
	MinPrice *int // con IVA, inclusivo
	MaxPrice *int // con IVA, inclusivo

	SortByName  *SortDir
	SortByPrice *SortDir
}

// Normalize recorta y normaliza (NFC) el nombre y deja los conjuntos de ids ordenados y sin repetidos.
func (f Filter) Normalize() Filter {
	f.Name = norm.NFC.String(strings.TrimSpace(f.Name))
	f.Types = uniqueIDs(f.Types)
	f.Sizes = uniqueIDs(f.Sizes)
	f.Brands = uniqueIDs(f.Brands)
	f.Colors = uniqueIDs(f.Colors)
	f.Regions = uniqueIDs(f.Regions)
	f.Communes = uniqueIDs(f.Communes)
	return f
}

// NeedsCommuneJoin la búsqueda filtra por geografía.
func (f Filter) NeedsCommuneJoin() bool {
	return len(f.Regions) > 0 || len(f.Communes) > 0
}

// NeedsRegionJoin la búsqueda filtra por región.
func (f Filter) NeedsRegionJoin() bool {
	return len(f.Regions) > 0
}

// SupplierFilter criterios del listado de proveedores.
type SupplierFilter struct {
	Brands   []int
	Communes []int
}

// ParseIDs convierte valores repetidos y/o separados por coma en ids.
// Los valores que no son enteros se descartan sin error; quien necesite validación estricta debe hacerla antes.
func ParseIDs(values ...string) []int {
	var ids []int
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			id, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil {
				continue
			}
			ids = append(ids, id)
		}
	}
	return ids
}

// ParseBound interpreta un límite de precio; vacío o inválido => nil.
func ParseBound(s string) *int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return nil
	}
	return &n
}

func uniqueIDs(ids []int) []int {
	if len(ids) == 0 {
		return nil
	}
	out := slices.Clone(ids)
	slices.Sort(out)
	return slices.Compact(out)
}
