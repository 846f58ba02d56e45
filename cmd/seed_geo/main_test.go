package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

const sample = "codigo_comuna;nombre_comuna;codigo_region;nombre_region\n" +
	"13101;Santiago;13;Metropolitana de Santiago\n" +
	"5101;Valparaíso;5;Valparaíso\n" +
	"x;Comuna rota;5;Valparaíso\n" +
	"13114;Las Condes;13;Metropolitana de Santiago\n"

func TestParseCUT_Latin1(t *testing.T) {
	encoded, err := charmap.ISO8859_1.NewEncoder().String(sample)
	require.NoError(t, err)

	regions, communes, err := parseCUT(transform.NewReader(strings.NewReader(encoded), charmap.ISO8859_1.NewDecoder()))
	require.NoError(t, err)

	assert.Equal(t, []region{{5, "Valparaíso"}, {13, "Metropolitana de Santiago"}}, regions)
	assert.Equal(t, []commune{
		{5101, "Valparaíso", 5},
		{13101, "Santiago", 13},
		{13114, "Las Condes", 13},
	}, communes)
}

func TestWriteSQL(t *testing.T) {
	var buf bytes.Buffer
	err := writeSQL(&buf,
		[]region{{9, "La Araucanía"}},
		[]commune{{9101, "Temuco", 9}, {9999, "O'Higgins", 9}},
	)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "INSERT INTO region (number, name) VALUES\n  (9, 'La Araucanía')\nON CONFLICT")
	assert.Contains(t, out, "  (9101, 'Temuco', 9),\n  (9999, 'O''Higgins', 9)\nON CONFLICT (id)")
}

func TestWriteSQL_Vacio(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeSQL(&buf, nil, nil))
	assert.NotContains(t, buf.String(), "INSERT")
}
