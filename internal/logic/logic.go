// Package logic implements the trace, encrypt/decrypt and check operations over vector tables.
package logic

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/athapa23/ece545-f22-prj/internal/config"
	"github.com/athapa23/ece545-f22-prj/internal/fileutil"
	"github.com/athapa23/ece545-f22-prj/internal/vectors"
	"github.com/athapa23/ece545-f22-prj/pkg/xtea"
)

// result is the outcome of enciphering or deciphering a single vector.
type result struct {
	vector vectors.Vector
	output xtea.Block
	// trace holds the rendered rounds when tracing was requested
	trace *bytes.Buffer
}

// newCipher builds a cipher from the configured key and round count.
func newCipher(cfg *config.Config) (*xtea.Cipher, error) {
	key, err := cfg.KeyTable()
	if err != nil {
		return nil, fmt.Errorf("resolving key: %w", err)
	}

	c, err := xtea.NewCipher(key, xtea.WithRounds(cfg.Rounds))
	if err != nil {
		return nil, fmt.Errorf("creating cipher: %w", err)
	}

	return c, nil
}

// process runs every vector through the cipher on up to cfg.Parallel workers.
// With trace set, each vector's rounds are rendered into its own buffer while enciphering.
// Results keep the order of vecs.
func process(cfg *config.Config, c *xtea.Cipher, vecs []vectors.Vector, trace bool) []result {
	results := make([]result, len(vecs))

	group := errgroup.Group{}
	group.SetLimit(max(1, cfg.Parallel))

	for i, vec := range vecs {
		group.Go(func() error {
			res := result{vector: vec}

			switch {
			case cfg.Decrypt:
				res.output = c.Decipher(vec.Block)
			case trace:
				res.trace = &bytes.Buffer{}

				tw := &traceWriter{w: res.trace, rounds: !cfg.Quiet}
				tw.header(vec)

				res.output = c.EncipherTrace(vec.Block, tw)
			default:
				res.output = c.Encipher(vec.Block)
			}

			results[i] = res

			return nil
		})
	}

	_ = group.Wait() //nolint:errcheck // workers never fail

	return results
}

// load returns the vectors from the given files, or the sample table when none are given.
func load(paths []string) ([]vectors.Vector, error) {
	if len(paths) == 0 {
		return vectors.Samples(), nil
	}

	vecs, err := vectors.LoadAll(paths)
	if err != nil {
		return nil, fmt.Errorf("loading vectors: %w", err)
	}

	return vecs, nil
}

// emit writes the report to stdout, or atomically to cfg.Output when set.
func emit(cfg *config.Config, write func(io.Writer) error) error {
	if cfg.Output == "" {
		return write(os.Stdout)
	}

	if _, err := fileutil.WriteAtomic(cfg.Output, write); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	if !cfg.Quiet {
		fmt.Fprintf(os.Stderr, "Report written to %q\n", cfg.Output)
	}

	return nil
}

// RunTrace enciphers the sample table, or the vector files in cfg.Args,
// and prints each vector's round-by-round trace. With Quiet only the cipher lines are printed.
func RunTrace(cfg *config.Config) error {
	start := time.Now()

	vecs, err := load(cfg.Args)
	if err != nil {
		return err
	}

	c, err := newCipher(cfg)
	if err != nil {
		return err
	}

	results := process(cfg, c, vecs, true)

	err = emit(cfg, func(w io.Writer) error {
		fmt.Fprintf(w, "key    : %s\nrounds : %d\n\n", c.Key(), c.Rounds())

		for _, res := range results {
			if _, err := res.trace.WriteTo(w); err != nil {
				return fmt.Errorf("writing trace: %w", err)
			}
		}

		return nil
	})

	if cfg.Stats {
		printStats(os.Stderr, len(results), 0, c.Rounds(), time.Since(start))
	}

	return err
}

// RunMessages enciphers, or with cfg.Decrypt deciphers, the 32-bit hex messages in cfg.Args.
func RunMessages(cfg *config.Config) error {
	start := time.Now()

	if len(cfg.Args) == 0 {
		return ErrNoArgs
	}

	vecs := make([]vectors.Vector, len(cfg.Args))

	for i, arg := range cfg.Args {
		msg, err := vectors.ParseMessage(arg)
		if err != nil {
			return err
		}

		vecs[i] = vectors.Vector{Name: arg, Block: xtea.Split(msg)}
	}

	c, err := newCipher(cfg)
	if err != nil {
		return err
	}

	results := process(cfg, c, vecs, false)

	err = emit(cfg, func(w io.Writer) error {
		for _, res := range results {
			if _, err := fmt.Fprintf(w, "%08x -> %08x\n", res.vector.Block.Uint32(), res.output.Uint32()); err != nil {
				return fmt.Errorf("writing result: %w", err)
			}
		}

		return nil
	})

	if cfg.Stats {
		printStats(os.Stderr, len(results), 0, c.Rounds(), time.Since(start))
	}

	return err
}
