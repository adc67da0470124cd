package bench

import (
	"fmt"
	"io"
	"strings"
	"time"
)

const tableRule = "------------------------------------------------------------------"

// WriteTable renders results as a fixed-width table with a rule after each
// step count:
//
//	N    | Impl       | Result          | Time (ms)  | Status
func WriteTable(w io.Writer, results []Result) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%-4s | %-10s | %-15s | %-10s | %-10s\n", "N", "Impl", "Result", "Time (ms)", "Status")
	sb.WriteString(tableRule + "\n")

	for i, r := range results {
		value, elapsed := "-", "-"
		switch r.Status {
		case StatusOK, StatusMatch, StatusMismatch:
			value = fmt.Sprintf("%d", r.Value)
			elapsed = fmt.Sprintf("%.2f", millis(r.Elapsed))
		case StatusTimeout:
			elapsed = fmt.Sprintf("> %.0f", millis(r.Elapsed))
		case StatusError:
			elapsed = fmt.Sprintf("%.2f", millis(r.Elapsed))
		}
		fmt.Fprintf(&sb, "%-4d | %-10s | %-15s | %-10s | %-10s\n", r.N, r.Impl, value, elapsed, r.Status)
		if r.Status == StatusError && r.Err != nil {
			fmt.Fprintf(&sb, "     ! %v\n", r.Err)
		}
		if i == len(results)-1 || results[i+1].N != r.N {
			sb.WriteString(tableRule + "\n")
		}
	}

	_, err := io.WriteString(w, sb.String())

	return err
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
