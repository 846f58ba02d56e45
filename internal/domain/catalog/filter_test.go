package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIDs_DescartaInvalidos(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3, 7}, ParseIDs("1,2", "x", "3, 7,", "4.5"))
	assert.Nil(t, ParseIDs("", "abc"))
}

func TestParseSortDir(t *testing.T) {
	require.NotNil(t, ParseSortDir("ASC"))
	assert.Equal(t, Asc, *ParseSortDir("ASC"))
	assert.Equal(t, Desc, *ParseSortDir(" desc "))
	assert.Nil(t, ParseSortDir("random"))
	assert.Nil(t, ParseSortDir(""))
}

func TestParseBound(t *testing.T) {
	require.NotNil(t, ParseBound("1000"))
	assert.Equal(t, 1000, *ParseBound("1000"))
	assert.Nil(t, ParseBound("mil"))
}

func TestNormalize(t *testing.T) {
	f := Filter{
		Name:   "  Café  ", // e + acento combinado
		Brands: []int{3, 1, 3},
		Colors: []int{},
	}.Normalize()

	assert.Equal(t, "Caf\u00e9", f.Name)
	assert.Equal(t, []int{1, 3}, f.Brands)
	assert.Nil(t, f.Colors)
}

func TestJoinRequirements(t *testing.T) {
	assert.False(t, Filter{}.NeedsCommuneJoin())
	assert.True(t, Filter{Communes: []int{5}}.NeedsCommuneJoin())
	assert.False(t, Filter{Communes: []int{5}}.NeedsRegionJoin())
	assert.True(t, Filter{Regions: []int{13}}.NeedsCommuneJoin())
	assert.True(t, Filter{Regions: []int{13}}.NeedsRegionJoin())
}
