package export

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/lychrel/lychrel"
	"github.com/katalvlaran/lychrel/number"
)

const (
	threadHeader = "[ THREAD ]"
	commentMark  = "#"

	// maxLine bounds a single digit string read back by ReadThreads.
	maxLine = 16 << 20
)

// ErrMalformedThread indicates a value line outside any [ THREAD ] block.
var ErrMalformedThread = errors.New("export: value outside a thread block")

// ThreadSummary is the per-seed outcome recorded while writing a thread file.
type ThreadSummary struct {
	Seed       string
	Outcome    lychrel.Outcome
	Iterations int
}

// WriteThreads writes the full thread of every seed in order.
//
// The Lychrel marker reflects the thread's actual terminal state, so a
// palindrome found on the final permitted step is reported as NO.
func WriteThreads(w io.Writer, seeds []number.Number, depth int) ([]ThreadSummary, error) {
	if depth < 1 {
		return nil, fmt.Errorf("%w: got %d", lychrel.ErrBadDepth, depth)
	}
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "# MAX_ITER_DEPTH = %d\n", depth); err != nil {
		return nil, err
	}

	summaries := make([]ThreadSummary, 0, len(seeds))
	for _, seed := range seeds {
		s, err := writeThread(bw, seed, depth)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}

	return summaries, bw.Flush()
}

func writeThread(bw *bufio.Writer, seed number.Number, depth int) (ThreadSummary, error) {
	th, err := lychrel.NewThread(seed, depth)
	if err != nil {
		return ThreadSummary{}, err
	}

	bw.WriteString(threadHeader)
	bw.WriteByte('\n')
	bw.WriteString(seed.Digits())
	bw.WriteByte('\n')
	for v := range th.All() {
		bw.WriteString(v.Digits())
		bw.WriteByte('\n')
	}
	if err := th.Err(); err != nil {
		return ThreadSummary{}, err
	}

	if th.Outcome() == lychrel.PalindromeFound {
		fmt.Fprintf(bw, "# Lychrel = NO\n# nb_iter = %d\n\n", th.Iterations()+1)
	} else {
		bw.WriteString("# Lychrel = YES\n# nb_iter = MAX_ITER\n\n")
	}

	// bufio.Writer keeps the first write error; surface it here.
	if _, err := bw.Write(nil); err != nil {
		return ThreadSummary{}, err
	}

	return ThreadSummary{Seed: seed.Digits(), Outcome: th.Outcome(), Iterations: th.Iterations()}, nil
}

// ReadThreads parses a thread file into digit-string threads. Each returned
// slice starts with the seed. Comments and blank lines are skipped.
func ReadThreads(r io.Reader) ([][]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)

	var (
		threads [][]string
		cur     []string
		open    bool
		line    int
	)
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), "\r")
		switch {
		case text == "" || strings.HasPrefix(text, commentMark):
			continue
		case text == threadHeader:
			if open && len(cur) > 0 {
				threads = append(threads, cur)
			}
			cur, open = nil, true
		case !open:
			return nil, fmt.Errorf("%w: line %d", ErrMalformedThread, line)
		default:
			cur = append(cur, text)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("export: read threads: %w", err)
	}
	if open && len(cur) > 0 {
		threads = append(threads, cur)
	}

	return threads, nil
}
