package logic_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/athapa23/ece545-f22-prj/internal/config"
	"github.com/athapa23/ece545-f22-prj/internal/logic"
)

func newConfig(t *testing.T, args ...string) *config.Config {
	t.Helper()

	return &config.Config{
		Rounds:   3,
		Parallel: 4,
		Quiet:    true,
		Output:   filepath.Join(t.TempDir(), "report.txt"),
		Args:     args,
	}
}

func readOutput(t *testing.T, cfg *config.Config) string {
	t.Helper()

	data, err := os.ReadFile(cfg.Output)
	if err != nil {
		t.Fatalf("reading report: %v", err)
	}

	return string(data)
}

func TestRunCheck(t *testing.T) {
	t.Parallel()

	if err := logic.RunCheck(newConfig(t, "testdata/pass.yml")); err != nil {
		t.Errorf("RunCheck(pass.yml) = %v, want nil", err)
	}

	err := logic.RunCheck(newConfig(t, "testdata/fail.jsonc"))
	if !errors.Is(err, logic.ErrMismatch) {
		t.Fatalf("RunCheck(fail.jsonc) = %v, want ErrMismatch", err)
	}

	if !strings.Contains(err.Error(), "1 of 2") {
		t.Errorf("RunCheck(fail.jsonc) error %q does not count 1 of 2 failures", err)
	}

	if err := logic.RunCheck(newConfig(t)); !errors.Is(err, logic.ErrNoArgs) {
		t.Errorf("RunCheck without files = %v, want ErrNoArgs", err)
	}
}

func TestRunCheckReport(t *testing.T) {
	t.Parallel()

	cfg := newConfig(t, "testdata/pass.yml")
	cfg.Quiet = false

	if err := logic.RunCheck(cfg); err != nil {
		t.Fatalf("RunCheck(pass.yml) = %v, want nil", err)
	}

	out := readOutput(t, cfg)

	for _, want := range []string{
		"vector 0: ffff0000 -> 6a801569 ok\n",
		"vector 6: 01011010 -> 13ac48b8 ok\n",
		"vector 9: da1a0001 -> 8799d0da ok\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("check report missing %q", want)
		}
	}

	if got := strings.Count(out, " ok\n"); got != 10 {
		t.Errorf("check report has %d ok lines, want 10", got)
	}

	if strings.Contains(out, "no expectation") {
		t.Error("check report lists a vector without an expectation")
	}

	failed := newConfig(t, "testdata/fail.jsonc")
	failed.Quiet = false

	if err := logic.RunCheck(failed); !errors.Is(err, logic.ErrMismatch) {
		t.Fatalf("RunCheck(fail.jsonc) = %v, want ErrMismatch", err)
	}

	if got := readOutput(t, failed); got != "vector good: ffff0000 -> 6a801569 ok\n" {
		t.Errorf("failing check report = %q, want only the passing vector", got)
	}
}

func TestRunTraceStreamsThroughObserver(t *testing.T) {
	t.Parallel()

	cfg := newConfig(t, "testdata/fail.jsonc")
	cfg.Quiet = false
	cfg.Rounds = 1

	if err := logic.RunTrace(cfg); err != nil {
		t.Fatalf("RunTrace: %v", err)
	}

	out := readOutput(t, cfg)

	want := " vector good : ffff 0000\n" + ruler() + "\n" +
		"  round 0\n" +
		"    w0   : 0000\n" +
		"    k0   : abcd\n" +
		"    t0   : abcd\n" +
		"    high : abcc\n" +
		"    sum  : 800a\n" +
		"    w1   : 656a\n" +
		"    k1   : 2bd7\n" +
		"    t1   : 4ebd\n" +
		"    low  : 4ebd\n" +
		"  cipher : abcc 4ebd (abcc4ebd)\n"

	if !strings.Contains(out, want) {
		t.Errorf("one-round trace = %q, want it to contain %q", out, want)
	}

	if got := strings.Count(out, "  round "); got != 2 {
		t.Errorf("trace has %d round sections, want 2", got)
	}
}

func ruler() string {
	return strings.Repeat("-", 29)
}

func TestRunCheckOtherKey(t *testing.T) {
	t.Parallel()

	cfg := newConfig(t, "testdata/pass.yml")
	cfg.Key = "0000cccc6666fedc"

	if err := logic.RunCheck(cfg); !errors.Is(err, logic.ErrMismatch) {
		t.Errorf("RunCheck with a different key = %v, want ErrMismatch", err)
	}
}

func TestRunTrace(t *testing.T) {
	t.Parallel()

	cfg := newConfig(t)
	cfg.Quiet = false

	if err := logic.RunTrace(cfg); err != nil {
		t.Fatalf("RunTrace: %v", err)
	}

	out := readOutput(t, cfg)

	for _, want := range []string{
		"key    : {abcd, cccc, 6666, fedc}",
		"rounds : 3",
		" vector 0 : ffff 0000",
		"    w0   : 3862",
		"    k0   : e670",
		"    sum  : 801e",
		"  cipher : 6a80 1569 (6a801569)",
		" vector 6 : 0101 1010",
		"  cipher : 13ac 48b8 (13ac48b8)",
		" vector 9 : da1a 0001",
		"  cipher : 8799 d0da (8799d0da)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("trace missing %q", want)
		}
	}

	if got := strings.Count(out, "  round "); got != 30 {
		t.Errorf("trace has %d round sections, want 30", got)
	}
}

func TestRunTraceQuiet(t *testing.T) {
	t.Parallel()

	cfg := newConfig(t, "testdata/fail.jsonc")

	if err := logic.RunTrace(cfg); err != nil {
		t.Fatalf("RunTrace: %v", err)
	}

	out := readOutput(t, cfg)

	if strings.Contains(out, "  round ") {
		t.Error("quiet trace contains round sections")
	}

	if got := strings.Count(out, "  cipher : 6a80 1569"); got != 2 {
		t.Errorf("quiet trace has %d cipher lines, want 2", got)
	}
}

func TestRunMessages(t *testing.T) {
	t.Parallel()

	cfg := newConfig(t, "0xFFFF0000", "0000ffff", "01011010")

	if err := logic.RunMessages(cfg); err != nil {
		t.Fatalf("RunMessages: %v", err)
	}

	want := "ffff0000 -> 6a801569\n0000ffff -> 86d07eef\n01011010 -> 13ac48b8\n"
	if got := readOutput(t, cfg); got != want {
		t.Errorf("encrypt output = %q, want %q", got, want)
	}

	dec := newConfig(t, "6a801569", "86d07eef")
	dec.Decrypt = true

	if err := logic.RunMessages(dec); err != nil {
		t.Fatalf("RunMessages decrypt: %v", err)
	}

	want = "6a801569 -> ffff0000\n86d07eef -> 0000ffff\n"
	if got := readOutput(t, dec); got != want {
		t.Errorf("decrypt output = %q, want %q", got, want)
	}
}

func TestRunMessagesErrors(t *testing.T) {
	t.Parallel()

	if err := logic.RunMessages(newConfig(t)); !errors.Is(err, logic.ErrNoArgs) {
		t.Errorf("RunMessages without args = %v, want ErrNoArgs", err)
	}

	if err := logic.RunMessages(newConfig(t, "not-hex")); err == nil {
		t.Error("RunMessages accepted a non-hex message")
	}

	cfg := newConfig(t, "1")
	cfg.KeyFile = filepath.Join(t.TempDir(), "missing.key")

	if err := logic.RunMessages(cfg); err == nil {
		t.Error("RunMessages accepted a missing key file")
	}
}

func TestKeyFile(t *testing.T) {
	t.Parallel()

	keyFile := filepath.Join(t.TempDir(), "sample.key")
	if err := os.WriteFile(keyFile, []byte("abcdcccc6666fedc\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg := newConfig(t, "ffff0000")
	cfg.KeyFile = keyFile

	if err := logic.RunMessages(cfg); err != nil {
		t.Fatalf("RunMessages: %v", err)
	}

	if got := readOutput(t, cfg); got != "ffff0000 -> 6a801569\n" {
		t.Errorf("output = %q", got)
	}
}
