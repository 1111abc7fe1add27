package tableio

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gitrdm/ljoin/join"
)

func TestLoadCSVBuildsSortedTable(t *testing.T) {
	src := "2,c@c\n0,a@a\n3,b@b\n"
	table, err := LoadCSV(strings.NewReader(src), 2)
	require.NoError(t, err)
	require.Equal(t, 3, table.Len())

	first, _ := table.Row(0)[0].Atom()
	require.Equal(t, "0", first)
}

func TestLoadCSVAggregatesArityMismatches(t *testing.T) {
	src := "a,b\nc\nd,e,f\n"
	_, err := LoadCSV(strings.NewReader(src), 2)
	require.Error(t, err)
	require.ErrorIs(t, err, join.ErrArityMismatch)
	require.Contains(t, err.Error(), "line 2")
	require.Contains(t, err.Error(), "line 3")
}

func TestLoadJSONBuildsSortedTable(t *testing.T) {
	src := "[\"2\",\"c@c\"]\n[\"0\",\"a@a\"]\n"
	table, err := LoadJSON(strings.NewReader(src), 2)
	require.NoError(t, err)
	require.Equal(t, 2, table.Len())

	first, _ := table.Row(0)[0].Atom()
	require.Equal(t, "0", first)
}

func TestLoadJSONAggregatesArityMismatches(t *testing.T) {
	src := "[\"a\"]\n[\"b\",\"c\",\"d\"]\n"
	_, err := LoadJSON(strings.NewReader(src), 2)
	require.Error(t, err)
	require.ErrorIs(t, err, join.ErrArityMismatch)
}
