package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// WriteCandidates appends one base's candidate block.
func WriteCandidates(w io.Writer, base int, candidates []string) error {
	_, err := fmt.Fprintf(w, "*** Lychrel candidates in base: %d\n*** Number of candidates: %d\n%s\n\n",
		base, len(candidates), strings.Join(candidates, ","))

	return err
}

// DensityRow is the candidate count for one base.
type DensityRow struct {
	Base       int
	Candidates int
}

// densityHeader is the CSV header row.
var densityHeader = []string{"Base", "Number of Lychrel candidates"}

// WriteDensityCSV writes a header and one row per base.
func WriteDensityCSV(w io.Writer, rows []DensityRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(densityHeader); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write([]string{strconv.Itoa(r.Base), strconv.Itoa(r.Candidates)}); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}
