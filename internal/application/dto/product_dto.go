package dto

// ProductSummaryResponse fila del buscador.
type ProductSummaryResponse struct {
	SKU       int64  `json:"sku"`
	Name      string `json:"name"`
	Brand     string `json:"brand"`
	Color     string `json:"color"` // "#rrggbb"
	Price     int    `json:"price"` // con IVA
	Available bool   `json:"available"`
}

// ProductDetailResponse ficha de un producto.
type ProductDetailResponse struct {
	SKU         int64  `json:"sku"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Brand       string `json:"brand"`
	Type        string `json:"type"`
	Size        string `json:"size"`
	Color       string `json:"color"`
	Price       int    `json:"price"`
	Available   bool   `json:"available"`
}

// StoreProductResponse producto de la sucursal del empleado con su stock.
type StoreProductResponse struct {
	ProductDetailResponse
	StockForSale   int `json:"stockForSale"`
	StockInStorage int `json:"stockInStorage"`
	MinStock       int `json:"minStock"`
	MaxStock       int `json:"maxStock"`
}

// StoreStockResponse stock total de un producto en una sucursal.
type StoreStockResponse struct {
	StoreID   int    `json:"storeId"`
	StoreName string `json:"storeName"`
	Stock     int    `json:"stock"`
}

// UpdateStockRequest edición parcial de la fila de stock en la sucursal del gerente.
type UpdateStockRequest struct {
	SKU       int64 `json:"sku"`
	Min       *int  `json:"min"`
	Max       *int  `json:"max"`
	ForSale   *int  `json:"forSale"`
	InStorage *int  `json:"inStorage"`
}

// StockResponse fila de stock.
type StockResponse struct {
	SKU       int64 `json:"sku"`
	StoreID   int   `json:"storeId"`
	Min       int   `json:"min"`
	Max       int   `json:"max"`
	ForSale   int   `json:"forSale"`
	InStorage int   `json:"inStorage"`
}

// TransferStockRequest traslado de unidades de bodega a sala.
type TransferStockRequest struct {
	SKU      int64 `json:"sku"`
	Quantity int   `json:"quantity"`
}

// ReplenishmentSuggestionResponse producto bajo el mínimo en sala con la reposición sugerida.
type ReplenishmentSuggestionResponse struct {
	SKU          int64  `json:"sku"`
	Name         string `json:"name"`
	ForSale      int    `json:"forSale"`
	InStorage    int    `json:"inStorage"`
	Min          int    `json:"min"`
	Max          int    `json:"max"`
	SuggestedQty int    `json:"suggestedQty"`
	Missing      int    `json:"missing"`
}

// CreateProductRequest alta de producto con su fila de stock en la sucursal del gerente.
type CreateProductRequest struct {
	Name            string `json:"name"`
	Description     string `json:"description"`
	Color           *int   `json:"color"` // 0x000000..0xffffff
	PriceWithoutTax int    `json:"priceWithoutTax"`
	TypeID          int    `json:"typeId"`
	SizeID          int    `json:"sizeId"`
	BrandID         int    `json:"brandId"`
	MinStock        int    `json:"minStock"`
	MaxStock        int    `json:"maxStock"`
}

// CreateProductResponse SKU asignado.
type CreateProductResponse struct {
	SKU int64 `json:"sku"`
}
