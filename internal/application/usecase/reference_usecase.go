package usecase

import (
	"context"

	"github.com/Pixoll/db-uni-project-api/internal/application/dto"
	"github.com/Pixoll/db-uni-project-api/internal/domain"
	"github.com/Pixoll/db-uni-project-api/internal/domain/catalog"
	"github.com/Pixoll/db-uni-project-api/internal/domain/repository"
)

// ReferenceUseCase expone los datos de referencia del catálogo y la geografía.
type ReferenceUseCase struct {
	repo         repository.ReferenceRepository
	supplierRepo repository.SupplierRepository
}

// NewReferenceUseCase construye el caso de uso.
func NewReferenceUseCase(repo repository.ReferenceRepository, supplierRepo repository.SupplierRepository) *ReferenceUseCase {
	return &ReferenceUseCase{repo: repo, supplierRepo: supplierRepo}
}

func (uc *ReferenceUseCase) Brands(ctx context.Context) ([]dto.NamedResponse, error) {
	list, err := uc.repo.ListBrands(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.NamedResponse, len(list))
	for i, b := range list {
		out[i] = dto.NamedResponse{ID: b.ID, Name: b.Name}
	}
	return out, nil
}

func (uc *ReferenceUseCase) Types(ctx context.Context) ([]dto.ProductTypeResponse, error) {
	list, err := uc.repo.ListTypes(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductTypeResponse, len(list))
	for i, t := range list {
		out[i] = dto.ProductTypeResponse{ID: t.ID, Name: t.Name, Description: t.Description}
	}
	return out, nil
}

func (uc *ReferenceUseCase) Sizes(ctx context.Context) ([]dto.NamedResponse, error) {
	list, err := uc.repo.ListSizes(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.NamedResponse, len(list))
	for i, s := range list {
		out[i] = dto.NamedResponse{ID: s.ID, Name: s.Name}
	}
	return out, nil
}

// Regions regiones con sus comunas.
func (uc *ReferenceUseCase) Regions(ctx context.Context) ([]dto.RegionResponse, error) {
	list, err := uc.repo.ListRegions(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RegionResponse, len(list))
	for i, r := range list {
		communes := make([]dto.NamedResponse, len(r.Communes))
		for j, c := range r.Communes {
			communes[j] = dto.NamedResponse{ID: c.ID, Name: c.Name}
		}
		out[i] = dto.RegionResponse{Number: r.Number, Name: r.Name, Communes: communes}
	}
	return out, nil
}

func (uc *ReferenceUseCase) Stores(ctx context.Context) ([]dto.StoreResponse, error) {
	list, err := uc.repo.ListStores(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StoreResponse, len(list))
	for i, s := range list {
		out[i] = dto.StoreResponse{
			ID: s.ID, Name: s.Name, Address: s.Address, AddressNumber: s.AddressNumber, CommuneID: s.CommuneID,
		}
	}
	return out, nil
}

// Suppliers proveedores filtrados por marca y/o comuna.
func (uc *ReferenceUseCase) Suppliers(ctx context.Context, f catalog.SupplierFilter) ([]dto.SupplierResponse, error) {
	list, err := uc.supplierRepo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SupplierResponse, len(list))
	for i, s := range list {
		out[i] = toSupplierResponse(s.Rut, s.Name, s.Email, s.Phone, s.Address, s.AddressNumber, s.CommuneID, s.BrandIDs)
	}
	return out, nil
}

// Supplier un proveedor por RUT. domain.ErrNotFound si no existe.
func (uc *ReferenceUseCase) Supplier(ctx context.Context, rut string) (*dto.SupplierResponse, error) {
	s, err := uc.supplierRepo.GetByRut(ctx, rut)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	resp := toSupplierResponse(s.Rut, s.Name, s.Email, s.Phone, s.Address, s.AddressNumber, s.CommuneID, s.BrandIDs)
	return &resp, nil
}

func toSupplierResponse(rut, name, email, phone, address string, number, commune int, brands []int) dto.SupplierResponse {
	if brands == nil {
		brands = []int{}
	}
	return dto.SupplierResponse{
		Rut: rut, Name: name, Email: email, Phone: phone,
		Address: address, AddressNumber: number, CommuneID: commune, Brands: brands,
	}
}
