package tabular

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileIsEmpty(t *testing.T) {
	rows := Load(filepath.Join(t.TempDir(), "nope.xlsx"), UserColumns, nil)
	assert.Empty(t, rows)
}

func TestLoadCorruptFileIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("this is not a workbook"), 0o644))

	rows := Load(path, UserColumns, nil)
	assert.Empty(t, rows)
}

func TestSaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.xlsx")

	in := []Row{
		{"username": "alice", "password": "h1", "role": "customer", "active": "True", "created_at": "2024-01-01 10:00:00"},
		{"username": "bob", "password": "h2", "role": "seller", "active": "False", "created_at": "2024-01-02 11:30:00"},
	}
	require.NoError(t, Save(path, UserColumns, in))

	out := Load(path, UserColumns, nil)
	require.Len(t, out, 2)
	assert.Equal(t, "alice", out[0]["username"])
	assert.Equal(t, "seller", out[1]["role"])
	assert.Equal(t, "False", out[1]["active"])
}

func TestLoadBackfillsMissingColumns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.xlsx")

	// A workbook from before the active/created_at columns existed.
	old := []string{"username", "password", "role"}
	require.NoError(t, Save(path, old, []Row{
		{"username": "alice", "password": "h1", "role": "customer"},
	}))

	out := Load(path, UserColumns, nil)
	require.Len(t, out, 1)
	assert.Equal(t, "alice", out[0]["username"])
	assert.Equal(t, "", out[0]["active"])
	assert.Equal(t, "", out[0]["created_at"])
	for _, col := range UserColumns {
		_, ok := out[0][col]
		assert.True(t, ok, "column %q missing after backfill", col)
	}
}

func TestLoadIgnoresUnknownColumns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.xlsx")

	cols := append([]string{"legacy_flag"}, ProductColumns...)
	require.NoError(t, Save(path, cols, []Row{
		{"legacy_flag": "x", "id": "1", "name": "Lamp", "price": "18.00", "stock": "8", "seller": "s1"},
	}))

	out := Load(path, ProductColumns, nil)
	require.Len(t, out, 1)
	assert.Equal(t, "Lamp", out[0]["name"])
	_, ok := out[0]["legacy_flag"]
	assert.False(t, ok)
}

func TestNormalizeOrdersDropsBlankProductNames(t *testing.T) {
	rows := []Row{
		{"id": "1", "product_name": "Lamp"},
		{"id": "2", "product_name": ""},
		{"id": "3", "product_name": "Hub"},
	}

	out := NormalizeOrders(rows)
	require.Len(t, out, 2)
	assert.Equal(t, "Lamp", out[0]["product_name"])
	assert.Equal(t, "Hub", out[1]["product_name"])
	// Ids were unique and non-zero, so they stay put.
	assert.Equal(t, "1", out[0]["id"])
	assert.Equal(t, "3", out[1]["id"])
}

func TestNormalizeOrdersRenumbersDuplicates(t *testing.T) {
	rows := []Row{
		{"id": "7", "product_name": "A"},
		{"id": "7", "product_name": "B"},
		{"id": "9", "product_name": "C"},
	}

	out := NormalizeOrders(rows)
	require.Len(t, out, 3)
	for i, row := range out {
		assert.Equal(t, i+1, atoi(t, row["id"]))
	}
}

func TestNormalizeOrdersRenumbersZerosAndGarbage(t *testing.T) {
	rows := []Row{
		{"id": "0", "product_name": "A"},
		{"id": "not-a-number", "product_name": "B"},
		{"id": "5", "product_name": "C"},
	}

	out := NormalizeOrders(rows)
	require.Len(t, out, 3)
	assert.Equal(t, "1", out[0]["id"])
	assert.Equal(t, "2", out[1]["id"])
	assert.Equal(t, "3", out[2]["id"])
}

func atoi(t *testing.T, s string) int {
	t.Helper()
	n, err := strconv.Atoi(s)
	require.NoError(t, err)
	return n
}
