package postgres

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Pixoll/db-uni-project-api/internal/domain/catalog"
)

// priceWithTax expresión del precio con IVA; $1 es siempre la tasa de IVA.
const priceWithTax = "ROUND(p.pre_tax_price * (1 + $1::numeric))::int"

// predicate condición con sus valores; cada '?' de sql corresponde, en orden, a un elemento de args.
type predicate struct {
	sql  string
	args []any
}

// predicates lista ordenada de condiciones. Los placeholders $n se numeran al renderizar
// a partir de esta misma lista, así una condición nunca queda desfasada de su valor.
type predicates []predicate

func (ps *predicates) add(sql string, args ...any) {
	*ps = append(*ps, predicate{sql: sql, args: args})
}

// render une las condiciones con AND. first es el número del primer placeholder libre.
func (ps predicates) render(first int) (string, []any) {
	var (
		sb   strings.Builder
		args []any
	)
	for i, p := range ps {
		if i > 0 {
			sb.WriteString(" AND ")
		}
		rest := p.sql
		for _, a := range p.args {
			idx := strings.IndexByte(rest, '?')
			if idx < 0 {
				break
			}
			sb.WriteString(rest[:idx])
			sb.WriteString("$")
			sb.WriteString(strconv.Itoa(first + len(args)))
			args = append(args, a)
			rest = rest[idx+1:]
		}
		sb.WriteString(rest)
	}
	return sb.String(), args
}

// searchPlan resultado de compilar un catalog.Filter.
type searchPlan struct {
	joinCommune bool
	joinRegion  bool
	where       predicates
	orderBy     []string
}

// compileFilter traduce el filtro a joins, condiciones y orden. No toca la base de datos.
func compileFilter(f catalog.Filter) searchPlan {
	plan := searchPlan{
		joinCommune: f.NeedsCommuneJoin(),
		joinRegion:  f.NeedsRegionJoin(),
	}

	plan.where.add("p.deleted = FALSE")
	if f.Name != "" {
		plan.where.add("p.name ILIKE '%' || ? || '%'", escapeLike(f.Name))
	}
	if f.MinPrice != nil {
		plan.where.add(priceWithTax+" >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		plan.where.add(priceWithTax+" <= ?", *f.MaxPrice)
	}
	if len(f.Types) > 0 {
		plan.where.add("p.type_id = ANY(?)", f.Types)
	}
	if len(f.Sizes) > 0 {
		plan.where.add("p.size_id = ANY(?)", f.Sizes)
	}
	if len(f.Brands) > 0 {
		plan.where.add("p.brand_id = ANY(?)", f.Brands)
	}
	if len(f.Colors) > 0 {
		plan.where.add("p.color = ANY(?)", f.Colors)
	}
	if len(f.Communes) > 0 {
		plan.where.add("c.id = ANY(?)", f.Communes)
	}
	if len(f.Regions) > 0 {
		plan.where.add("r.number = ANY(?)", f.Regions)
	}

	// Nombre antes que precio: el precio solo desempata dentro de un mismo nombre.
	if f.SortByName != nil {
		plan.orderBy = append(plan.orderBy, "p.name "+sqlDir(*f.SortByName))
	}
	if f.SortByPrice != nil {
		plan.orderBy = append(plan.orderBy, "p.pre_tax_price "+sqlDir(*f.SortByPrice))
	}
	return plan
}

// sql arma la consulta final del buscador. $1 es la tasa de IVA.
func (p searchPlan) sql(taxRate decimal.Decimal) (string, []any) {
	var sb strings.Builder
	sb.WriteString(`SELECT p.sku, p.name, b.name, p.color, ` + priceWithTax + ` AS price,
		COALESCE(SUM(st.for_sale + st.in_storage), 0) > 0 AS available
		FROM product AS p
		INNER JOIN brand AS b ON b.id = p.brand_id`)
	if p.joinCommune {
		sb.WriteString(`
		INNER JOIN stock AS st ON st.sku = p.sku
		INNER JOIN store AS su ON su.id = st.store_id
		INNER JOIN commune AS c ON c.id = su.commune_id`)
	} else {
		sb.WriteString(`
		LEFT JOIN stock AS st ON st.sku = p.sku`)
	}
	if p.joinRegion {
		sb.WriteString(`
		INNER JOIN region AS r ON r.number = c.region_number`)
	}

	where, args := p.where.render(2)
	sb.WriteString("\n\t\tWHERE ")
	sb.WriteString(where)
	sb.WriteString("\n\t\tGROUP BY p.sku, p.name, b.name, p.color, p.pre_tax_price")

	order := append(append([]string(nil), p.orderBy...), "p.sku ASC")
	sb.WriteString("\n\t\tORDER BY ")
	sb.WriteString(strings.Join(order, ", "))

	return sb.String(), append([]any{taxRate}, args...)
}

func sqlDir(d catalog.SortDir) string {
	if d == catalog.Desc {
		return "DESC"
	}
	return "ASC"
}

// escapeLike escapa los comodines de LIKE para que el nombre se busque literal.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
