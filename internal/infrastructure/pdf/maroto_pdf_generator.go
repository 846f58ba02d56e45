// Package pdf genera la boleta o factura de una venta.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Sucursal + dirección │  BOLETA/FACTURA N° + Fecha   │
//	│  CLIENTE: Nombre + RUT + contacto                           │
//	│  CAJERO: Nombre + RUT                                       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | SKU | Producto | P.Unit | Subtotal           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Neto / IVA / TOTAL                                │
//	│  FOOTER: QR de verificación + leyenda                       │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/Pixoll/db-uni-project-api/internal/application/sales"
	"github.com/Pixoll/db-uni-project-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ sales.DocumentGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa sales.DocumentGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateSalePDF genera el PDF y devuelve sus bytes. Store, Client y Cashier pueden ser nil.
func (g *MarotoPDFGenerator) GenerateSalePDF(_ context.Context, doc sales.SaleDocument) ([]byte, error) {
	if doc.Sale == nil {
		return nil, fmt.Errorf("pdf: venta nula")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(documentTitle(doc.Sale.Type), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(doc.Sale, doc.Store))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(clientRow(doc.Client, doc.Sale.ClientRut))
	m.AddRows(cashierRow(doc.Cashier, doc.Sale.CashierRut))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableLineRows(doc.Sale.Lines)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(doc))

	m.AddRows(line.NewRow(3))
	m.AddRows(footerRow(doc.Sale))

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return out.GetBytes(), nil
}

func documentTitle(saleType string) string {
	if saleType == entity.SaleTypeInvoice {
		return "FACTURA"
	}
	return "BOLETA"
}

func headerRow(sale *entity.Sale, store *entity.Store) core.Row {
	storeName, storeAddr := "Sucursal "+strconv.Itoa(sale.StoreID), ""
	if store != nil {
		storeName = store.Name
		storeAddr = fmt.Sprintf("%s %d", store.Address, store.AddressNumber)
	}
	return row.New(18).Add(
		col.New(7).Add(
			text.New(storeName, props.Text{Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1}),
			text.New(nonEmpty(storeAddr, "-"), props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New(documentTitle(sale.Type), props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New("N° "+strconv.FormatInt(sale.ID, 10), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+sale.Date.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

func clientRow(c *entity.Client, rut string) core.Row {
	name, contact := "-", "-"
	if c != nil {
		name = c.FirstName + " " + c.LastName
		contact = fmt.Sprintf("Email: %s   |   Tel: %s   |   Dirección: %s",
			nonEmpty(c.Email, "-"), nonEmpty(c.Phone, "-"), nonEmpty(c.Address, "-"))
	}
	return row.New(16).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
			text.New(name+"   RUT: "+rut, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
			text.New(contact, props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

func cashierRow(c *entity.Cashier, rut string) core.Row {
	name := "-"
	if c != nil {
		name = c.FirstName + " " + c.LastName
	}
	return row.New(8).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Atendido por: %s (%s)", name, rut), props.Text{Size: 8, Top: 2, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("SKU", 2, align.Left),
		h("Producto", 4, align.Left),
		h("Precio Unit.", 2, align.Right),
		h("Subtotal", 3, align.Right),
	)
}

// tableLineRows una fila por línea. Precios sin IVA.
func tableLineRows(lines []entity.SaleLine) []core.Row {
	rows := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		rows = append(rows, row.New(7).Add(
			col.New(1).Add(text.New(strconv.Itoa(l.Quantity), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(strconv.FormatInt(l.SKU, 10), props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(4).Add(text.New(l.Name, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(money(l.UnitPrice), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(3).Add(text.New(money(l.UnitPrice*l.Quantity), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return rows
}

func totalsRow(doc sales.SaleDocument) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1, Top: top})
	}
	return row.New(22).Add(
		col.New(6),
		col.New(3).Add(
			label("Neto:"),
			text.New("IVA ("+doc.TaxRate+"):", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: 6}),
			text.New("TOTAL:", props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Right: 2, Top: 12, Color: colorPrimary}),
		),
		col.New(3).Add(
			value(money(doc.Net), 0),
			value(money(doc.Tax), 6),
			text.New(money(doc.Sale.Total), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Right: 1, Top: 12, Color: colorPrimary,
			}),
		),
	)
}

// footerRow QR con los datos mínimos para verificar el documento en caja.
func footerRow(sale *entity.Sale) core.Row {
	qr := fmt.Sprintf("%s;%d;%d;%d", sale.Type, sale.ID, sale.StoreID, sale.Total)
	return row.New(40).Add(
		col.New(3).Add(code.NewQr(qr, props.Rect{Percent: 90, Center: true})),
		col.New(9).Add(
			text.New("Conserve este documento como respaldo de su compra.", props.Text{
				Size: 8, Top: 4, Left: 3, Color: colorGray,
			}),
			text.New("Precios unitarios sin IVA; el IVA se aplica sobre el neto de la venta.", props.Text{
				Size: 7, Top: 10, Left: 3, Color: colorGray,
			}),
		),
	)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// money formatea pesos con puntos de miles. Ej: 1000000 => "$1.000.000".
func money(n int) string {
	s := strconv.Itoa(n)
	neg := false
	if n < 0 {
		neg, s = true, s[1:]
	}
	buf := make([]byte, 0, len(s)+len(s)/3+2)
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	if neg {
		return "-$" + string(buf)
	}
	return "$" + string(buf)
}
