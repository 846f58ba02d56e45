package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Pixoll/db-uni-project-api/internal/domain/catalog"
)

// queryValues todos los valores de un parámetro repetible (?type=1&type=2).
func queryValues(c *fiber.Ctx, key string) []string {
	raw := c.Context().QueryArgs().PeekMulti(key)
	out := make([]string, len(raw))
	for i, v := range raw {
		out[i] = string(v)
	}
	return out
}

// parseFilter arma el filtro del buscador desde la query. Ids y cotas no numéricos se descartan.
func parseFilter(c *fiber.Ctx) catalog.Filter {
	return catalog.Filter{
		Name:        c.Query("name"),
		Types:       catalog.ParseIDs(queryValues(c, "type")...),
		Sizes:       catalog.ParseIDs(queryValues(c, "size")...),
		Brands:      catalog.ParseIDs(queryValues(c, "brand")...),
		Colors:      catalog.ParseIDs(queryValues(c, "color")...),
		Regions:     catalog.ParseIDs(queryValues(c, "region")...),
		Communes:    catalog.ParseIDs(queryValues(c, "commune")...),
		MinPrice:    catalog.ParseBound(c.Query("minPrice")),
		MaxPrice:    catalog.ParseBound(c.Query("maxPrice")),
		SortByName:  catalog.ParseSortDir(c.Query("sortByName")),
		SortByPrice: catalog.ParseSortDir(c.Query("sortByPrice")),
	}
}

func parseSupplierFilter(c *fiber.Ctx) catalog.SupplierFilter {
	return catalog.SupplierFilter{
		Brands:   catalog.ParseIDs(queryValues(c, "brand")...),
		Communes: catalog.ParseIDs(queryValues(c, "commune")...),
	}
}
