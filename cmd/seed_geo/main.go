// seed_geo genera el script SQL que puebla regiones y comunas a partir del CSV de códigos
// territoriales (CUT) del INE.
//
// Uso: go run ./cmd/seed_geo [ruta/cut.csv]
// Por defecto busca cut.csv en el directorio actual. El archivo viene en ISO-8859-1 y separado por ';':
//
//	codigo_comuna;nombre_comuna;codigo_region;nombre_region
//
// Escribe: internal/infrastructure/postgres/migrations/003_seed_geo.sql
package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

type region struct {
	number int
	name   string
}

type commune struct {
	id     int
	name   string
	region int
}

func main() {
	csvPath := "cut.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}
	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	regions, communes, err := parseCUT(transform.NewReader(f, charmap.ISO8859_1.NewDecoder()))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}

	outPath := filepath.Join(findModuleRoot(), "internal", "infrastructure", "postgres", "migrations", "003_seed_geo.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	if err := writeSQL(out, regions, communes); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir SQL: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Generado %s: %d regiones, %d comunas\n", outPath, len(regions), len(communes))
}

// parseCUT lee el CSV ya decodificado a UTF-8. La primera fila es cabecera; las filas con
// códigos no numéricos se saltan. Regiones y comunas salen ordenadas por código.
func parseCUT(r io.Reader) ([]region, []commune, error) {
	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	regionNames := make(map[int]string)
	var communes []commune
	header := true
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, err
		}
		if header {
			header = false
			continue
		}
		if len(rec) < 4 {
			continue
		}
		id, err1 := strconv.Atoi(strings.TrimSpace(rec[0]))
		number, err2 := strconv.Atoi(strings.TrimSpace(rec[2]))
		if err1 != nil || err2 != nil {
			continue
		}
		regionNames[number] = clean(rec[3])
		communes = append(communes, commune{id: id, name: clean(rec[1]), region: number})
	}

	regions := make([]region, 0, len(regionNames))
	for n, name := range regionNames {
		regions = append(regions, region{number: n, name: name})
	}
	sort.Slice(regions, func(i, j int) bool { return regions[i].number < regions[j].number })
	sort.Slice(communes, func(i, j int) bool { return communes[i].id < communes[j].id })
	return regions, communes, nil
}

func writeSQL(w io.Writer, regions []region, communes []commune) error {
	var b strings.Builder
	b.WriteString("-- Regiones y comunas de Chile (CUT)\n")
	b.WriteString("-- Generado por cmd/seed_geo\n\n")

	if len(regions) > 0 {
		b.WriteString("INSERT INTO region (number, name) VALUES\n")
		for i, r := range regions {
			fmt.Fprintf(&b, "  (%d, '%s')%s\n", r.number, escapeSQL(r.name), sep(i, len(regions)))
		}
		b.WriteString("ON CONFLICT (number) DO UPDATE SET name = EXCLUDED.name;\n\n")
	}
	if len(communes) > 0 {
		b.WriteString("INSERT INTO commune (id, name, region_number) VALUES\n")
		for i, c := range communes {
			fmt.Fprintf(&b, "  (%d, '%s', %d)%s\n", c.id, escapeSQL(c.name), c.region, sep(i, len(communes)))
		}
		b.WriteString("ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, region_number = EXCLUDED.region_number;\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func sep(i, n int) string {
	if i < n-1 {
		return ","
	}
	return ""
}

func clean(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
