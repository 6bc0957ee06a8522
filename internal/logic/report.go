package logic

import (
	"fmt"
	"io"

	"github.com/athapa23/ece545-f22-prj/internal/vectors"
	"github.com/athapa23/ece545-f22-prj/pkg/xtea"
)

const ruler = "-----------------------------"

// traceWriter is the observer that renders a vector's rounds as they run.
// Round lines are skipped when rounds is false. The first write error is kept.
type traceWriter struct {
	w      io.Writer
	rounds bool
	err    error
}

func (tw *traceWriter) printf(format string, args ...any) {
	if tw.err != nil {
		return
	}

	_, tw.err = fmt.Fprintf(tw.w, format, args...)
}

// header writes the vector banner ahead of its rounds.
func (tw *traceWriter) header(vec vectors.Vector) {
	tw.printf("%s\n vector %s : %04x %04x\n%s\n", ruler, vec.Name, vec.Block.High, vec.Block.Low, ruler)
}

// ObserveRound implements xtea.Observer.
func (tw *traceWriter) ObserveRound(r xtea.RoundTrace) {
	if !tw.rounds {
		return
	}

	tw.printf("  round %d\n", r.Index)
	tw.printf("    w0   : %04x\n", r.W0)
	tw.printf("    k0   : %04x\n", r.K0)
	tw.printf("    t0   : %04x\n", r.T0)
	tw.printf("    high : %04x\n", r.High)
	tw.printf("    sum  : %04x\n", r.Sum)
	tw.printf("    w1   : %04x\n", r.W1)
	tw.printf("    k1   : %04x\n", r.K1)
	tw.printf("    t1   : %04x\n", r.T1)
	tw.printf("    low  : %04x\n", r.Low)
}

// ObserveDone implements xtea.Observer.
func (tw *traceWriter) ObserveDone(b xtea.Block) {
	tw.printf("  cipher : %04x %04x (%08x)\n\n", b.High, b.Low, b.Uint32())
}
