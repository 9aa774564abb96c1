package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/katalvlaran/lychrel/internal/batch"
)

// maxListed bounds how many candidates are printed per base.
const maxListed = 12

// printReport renders the run card and one line per base. logPath is shown
// when the run logged to a file.
func printReport(w io.Writer, rep batch.Report, logPath string) {
	t := newTheme(w)

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", t.Title.Render("Run"), rep.Name)
	fmt.Fprintf(&b, "%s %s\n", t.Label.Render("ID:      "), rep.RunID)
	fmt.Fprintf(&b, "%s %d\n", t.Label.Render("Depth:   "), rep.Depth)
	fmt.Fprintf(&b, "%s %s\n", t.Label.Render("Stop:    "), rep.Stop)
	if !rep.StartedAt.IsZero() && !rep.EndedAt.IsZero() {
		fmt.Fprintf(&b, "%s %s\n", t.Label.Render("Duration:"), rep.EndedAt.Sub(rep.StartedAt).Round(time.Millisecond))
	}
	if rep.Dir != "" {
		fmt.Fprintf(&b, "%s %s\n", t.Label.Render("Output:  "), rep.Dir)
	}
	if logPath != "" {
		fmt.Fprintf(&b, "%s %s\n", t.Label.Render("Log:     "), logPath)
	}
	fmt.Fprintln(w, t.Card.Render(strings.TrimRight(b.String(), "\n")))

	for _, br := range rep.Bases {
		fmt.Fprintf(w, "%s seeds=%d palindromes=%d candidates=%s",
			t.Title.Render(fmt.Sprintf("base %2d", br.Base)),
			br.Seeds, br.Palindromes,
			t.Candidate.Render(fmt.Sprint(len(br.Candidates))))
		if br.MaxSeed != "" {
			fmt.Fprintf(w, " %s", t.Muted.Render(fmt.Sprintf("longest=%s (%d steps)", br.MaxSeed, br.MaxIterations)))
		}
		fmt.Fprintln(w)
		if len(br.Candidates) > 0 {
			fmt.Fprintf(w, "  %s\n", listCandidates(br.Candidates))
		}
	}
}

func listCandidates(c []string) string {
	if len(c) <= maxListed {
		return strings.Join(c, " ")
	}
	return fmt.Sprintf("%s ... (+%d more)", strings.Join(c[:maxListed], " "), len(c)-maxListed)
}
