package logic

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
)

func printStats(w io.Writer, blocks, errored, rounds int, duration time.Duration) {
	rate := float64(blocks)
	if secs := duration.Seconds(); secs > 0 {
		rate /= secs
	}

	fmt.Fprintf(w, "\nStats\n")
	fmt.Fprintf(w, "  Blocks:    %s\n", humanize.Comma(int64(blocks)))
	fmt.Fprintf(w, "  Rounds:    %d\n", rounds)
	fmt.Fprintf(w, "  Errors:    %d\n", errored)
	fmt.Fprintf(w, "  Duration:  %s\n", duration.Round(time.Microsecond))
	fmt.Fprintf(w, "  Rate:      %s blocks/s\n", humanize.CommafWithDigits(rate, 0))
}
