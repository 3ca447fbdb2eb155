package curve

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"
)

// Digitized reference data ships as folders of CSV files, one folder per
// figure. For family-keyed figures the file name is the family key
// ("1.5.csv" -> key 1.5); single-curve figures use one file per folder.
// Rows are x,y under an "x,y" header; lines starting with '#' are comments.

type sampleRow struct {
	X float64 `csv:"x"`
	Y float64 `csv:"y"`
}

// LoadCurveFile reads one CSV curve, sorted by x.
func LoadCurveFile(path string) ([]Point, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.Comment = '#'
	reader.TrimLeadingSpace = true

	var rows []*sampleRow
	if err := gocsv.UnmarshalCSV(reader, &rows); err != nil {
		return nil, fmt.Errorf("curve: %s: %w", filepath.Base(path), err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("curve: no data in %s", filepath.Base(path))
	}

	pts := make([]Point, len(rows))
	for i, r := range rows {
		pts[i] = Point{X: r.X, Y: r.Y}
	}
	sort.Slice(pts, func(i, j int) bool { return pts[i].X < pts[j].X })
	return pts, nil
}

// LoadFamilyDir reads every *.csv in dir into a family map keyed by the
// numeric file name.
func LoadFamilyDir(dir string) (map[float64][]Point, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.csv"))
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("curve: no CSV files in %s", dir)
	}

	families := make(map[float64][]Point, len(paths))
	for _, path := range paths {
		stem := strings.TrimSuffix(filepath.Base(path), ".csv")
		key, err := strconv.ParseFloat(stem, 64)
		if err != nil {
			return nil, fmt.Errorf("curve: invalid curve filename %s", filepath.Base(path))
		}
		pts, err := LoadCurveFile(path)
		if err != nil {
			return nil, err
		}
		families[key] = pts
	}
	return families, nil
}

// LoadStoreDir assembles a Store from a data directory with optional
// subfolders fig3..fig8. Missing subfolders keep the built-in defaults, so a
// host can override just the figures it has digitized itself.
func LoadStoreDir(dir string) (*Store, error) {
	var data StoreData
	var err error

	single := map[string]*[]Point{
		"fig3": &data.Fig3,
		"fig4": &data.Fig4,
		"fig7": &data.Fig7,
		"fig8": &data.Fig8,
	}
	for name, dst := range single {
		sub := filepath.Join(dir, name)
		if _, statErr := os.Stat(sub); statErr != nil {
			continue
		}
		if *dst, err = LoadSingleCurveDir(sub); err != nil {
			return nil, err
		}
	}

	family := map[string]*map[float64][]Point{
		"fig5": &data.Fig5,
		"fig6": &data.Fig6,
	}
	for name, dst := range family {
		sub := filepath.Join(dir, name)
		if _, statErr := os.Stat(sub); statErr != nil {
			continue
		}
		if *dst, err = LoadFamilyDir(sub); err != nil {
			return nil, err
		}
	}
	return NewStore(data)
}

// LoadSingleCurveDir reads a folder expected to hold exactly one curve and
// returns its points. Used for the single-curve figures (3, 4 base, 7).
func LoadSingleCurveDir(dir string) ([]Point, error) {
	families, err := LoadFamilyDir(dir)
	if err != nil {
		return nil, err
	}
	if len(families) != 1 {
		return nil, fmt.Errorf("curve: expected one curve in %s, found %d", dir, len(families))
	}
	for _, pts := range families {
		return pts, nil
	}
	return nil, nil
}
