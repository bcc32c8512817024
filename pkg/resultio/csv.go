// Package resultio writes analysis results to CSV. Parquet export and
// the plotting GUI are out of scope for this module.
package resultio

import (
	"encoding/csv"
	"io"
	"sort"
	"strconv"

	"github.com/gospice/gospice/pkg/mna"
)

// WriteCSV writes one row per solution map, column-unioned across all
// rows and sorted for a stable header, with "time"/"frequency" first
// when present.
func WriteCSV(w io.Writer, solutions []mna.Solution) error {
	columns := collectColumns(solutions)

	cw := csv.NewWriter(w)
	if err := cw.Write(columns); err != nil {
		return err
	}
	for _, sol := range solutions {
		row := make([]string, len(columns))
		for i, col := range columns {
			if v, ok := sol[col]; ok {
				row[i] = strconv.FormatFloat(v, 'g', -1, 64)
			}
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func collectColumns(solutions []mna.Solution) []string {
	seen := map[string]bool{}
	for _, sol := range solutions {
		for k := range sol {
			seen[k] = true
		}
	}

	var leading []string
	for _, k := range []string{mna.TimeKey, mna.FrequencyKey} {
		if seen[k] {
			leading = append(leading, k)
			delete(seen, k)
		}
	}

	rest := make([]string, 0, len(seen))
	for k := range seen {
		rest = append(rest, k)
	}
	sort.Strings(rest)

	return append(leading, rest...)
}
