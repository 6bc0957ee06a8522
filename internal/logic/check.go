package logic

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/athapa23/ece545-f22-prj/internal/config"
)

// RunCheck validates that every vector carrying an expected ciphertext enciphers to it.
// Vectors without an expectation are counted but not compared.
// Passing vectors go to the report, mismatches to stderr.
func RunCheck(cfg *config.Config) error {
	start := time.Now()

	if len(cfg.Args) == 0 {
		return ErrNoArgs
	}

	vecs, err := load(cfg.Args)
	if err != nil {
		return err
	}

	c, err := newCipher(cfg)
	if err != nil {
		return err
	}

	results := process(cfg, c, vecs, false)

	var failures, checked int

	err = emit(cfg, func(w io.Writer) error {
		for _, res := range results {
			vec := res.vector

			if !vec.HasExpect {
				continue
			}

			checked++

			got := res.output.Uint32()

			if got != vec.Expect {
				fmt.Fprintf(os.Stderr, "vector %s: %08x -> %08x, want %08x (ERROR)\n",
					vec.Name, vec.Block.Uint32(), got, vec.Expect)

				failures++

				continue
			}

			if cfg.Quiet {
				continue
			}

			if _, err := fmt.Fprintf(w, "vector %s: %08x -> %08x ok\n", vec.Name, vec.Block.Uint32(), got); err != nil {
				return fmt.Errorf("writing result: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	if cfg.Stats {
		printStats(os.Stderr, len(vecs), failures, c.Rounds(), time.Since(start))
	}

	if failures > 0 {
		return fmt.Errorf("%w: %d of %d vector(s) failed", ErrMismatch, failures, checked)
	}

	return nil
}
