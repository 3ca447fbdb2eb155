package curve

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestLoadCurveFile(t *testing.T) {
	dir := t.TempDir()
	writeCSV(t, dir, "c.csv", "x,y\n# digitized 2024-11\n4,0.2\n1.25,0.56\n2,0.39\n")

	pts, err := LoadCurveFile(filepath.Join(dir, "c.csv"))
	require.NoError(t, err)
	require.Len(t, pts, 3)
	// sorted by x regardless of file order
	assert.Equal(t, []Point{{1.25, 0.56}, {2, 0.39}, {4, 0.2}}, pts)
}

func TestLoadCurveFileEmpty(t *testing.T) {
	dir := t.TempDir()
	writeCSV(t, dir, "c.csv", "x,y\n")

	_, err := LoadCurveFile(filepath.Join(dir, "c.csv"))
	assert.Error(t, err)
}

func TestLoadFamilyDir(t *testing.T) {
	dir := t.TempDir()
	writeCSV(t, dir, "1.5.csv", "x,y\n50,1.27\n700,1.46\n")
	writeCSV(t, dir, "3.csv", "x,y\n50,1.31\n700,1.51\n")

	families, err := LoadFamilyDir(dir)
	require.NoError(t, err)
	require.Len(t, families, 2)
	assert.Equal(t, []Point{{50, 1.27}, {700, 1.46}}, families[1.5])
	assert.Equal(t, []Point{{50, 1.31}, {700, 1.51}}, families[3])
}

func TestLoadFamilyDirBadFilename(t *testing.T) {
	dir := t.TempDir()
	writeCSV(t, dir, "curve-a.csv", "x,y\n50,1.27\n")

	_, err := LoadFamilyDir(dir)
	assert.Error(t, err)
}

func TestLoadFamilyDirEmpty(t *testing.T) {
	_, err := LoadFamilyDir(t.TempDir())
	assert.Error(t, err)
}

func TestLoadSingleCurveDirRejectsMultiple(t *testing.T) {
	dir := t.TempDir()
	writeCSV(t, dir, "1.csv", "x,y\n1,1\n")
	writeCSV(t, dir, "2.csv", "x,y\n1,2\n")

	_, err := LoadSingleCurveDir(dir)
	assert.Error(t, err)
}

func TestLoadStoreDirPartialOverride(t *testing.T) {
	dir := t.TempDir()
	writeCSV(t, filepath.Join(dir, "fig3"), "0.csv", "x,y\n1.25,1.0\n14,0.5\n")

	store, err := LoadStoreDir(dir)
	require.NoError(t, err)

	k, _ := store.KNoVents(1.25)
	assert.Equal(t, 1.0, k)

	// untouched figures fall back to the built-ins
	def := NewDefaultStore()
	want, _ := def.KVents(4, 300)
	got, _ := store.KVents(4, 300)
	assert.Equal(t, want, got)
}

func TestLoadStoreDirEmptyIsAllDefaults(t *testing.T) {
	store, err := LoadStoreDir(t.TempDir())
	require.NoError(t, err)

	def := NewDefaultStore()
	want, _ := def.KNoVents(3)
	got, _ := store.KNoVents(3)
	assert.Equal(t, want, got)
}
