package main

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/combviz/internal/config"
	"github.com/san-kum/combviz/internal/trace"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	a := &app{}
	cmd := a.rootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := a.execute(cmd)
	return out.String(), err
}

func TestRootCommandHasSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range newRootCmd().Commands() {
		names[c.Name()] = true
	}

	for _, want := range []string{
		"play", "trace", "plot", "stats", "verify",
		"export-json", "export-csv", "export-svg", "export-gif",
		"batch", "serve", "presets", "version",
	} {
		if !names[want] {
			t.Errorf("root command missing subcommand %q", want)
		}
	}
}

func TestVersionOutput(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.HasPrefix(out, "combviz dev") {
		t.Errorf("unexpected version output %q", out)
	}
}

func TestTraceCommand(t *testing.T) {
	out, err := execute(t, "trace", "--input", "5,3,8,1", "--kinds", "swap", "--no-color")
	if err != nil {
		t.Fatalf("trace failed: %v", err)
	}
	if strings.Count(out, "swap") != 2 {
		t.Errorf("expected two swap rows:\n%s", out)
	}
	if strings.Contains(out, "compare") {
		t.Errorf("compare rows should be filtered out:\n%s", out)
	}
}

func TestStatsCommand(t *testing.T) {
	out, err := execute(t, "stats", "-i", "5,3,8,1")
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	for _, want := range []string{"compares", "swaps", "initial_inversions", "PHASE", "1 3 5 8", "swaps per phase"} {
		if !strings.Contains(out, want) {
			t.Errorf("stats output missing %q:\n%s", want, out)
		}
	}
}

func TestVerifyCommand(t *testing.T) {
	out, err := execute(t, "verify", "--preset", "reversed", "--size", "20", "--seed", "9")
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if !strings.HasPrefix(out, "ok: ") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestExportJSONThenVerifyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.json")
	if _, err := execute(t, "export-json", "-i", "9,4,7,1,3", "--compact", "-o", path); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	out, err := execute(t, "verify", "--file", path)
	if err != nil {
		t.Fatalf("verify --file failed: %v", err)
	}
	if !strings.Contains(out, "sorted [1 3 4 7 9]") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestExportCSVCommand(t *testing.T) {
	out, err := execute(t, "export-csv", "-i", "2,1")
	if err != nil {
		t.Fatalf("export-csv failed: %v", err)
	}
	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if len(records) != 8 {
		t.Errorf("expected header plus 7 rows, got %d", len(records))
	}
}

func TestExportSVGCommand(t *testing.T) {
	out, err := execute(t, "export-svg", "-i", "5,3,8,1", "--step", "3", "--theme", "ocean")
	if err != nil {
		t.Fatalf("export-svg failed: %v", err)
	}
	if !strings.Contains(out, "<svg") || !strings.Contains(out, "swap gap=3") {
		t.Errorf("unexpected svg:\n%s", out)
	}
}

func TestExportGIFCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sort.gif")
	if _, err := execute(t, "export-gif", "-i", "3,1,2", "-o", path, "--width", "60", "--height", "30"); err != nil {
		t.Fatalf("export-gif failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read gif: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("GIF89a")) {
		t.Error("output is not a GIF")
	}
}

func TestBatchCommand(t *testing.T) {
	dir := t.TempDir()
	scenario := filepath.Join(dir, "runs.yaml")
	body := `name: demo
runs:
  - name: example
    input: [5, 3, 8, 1]
  - preset: reversed
    size: 10
    seed: 4
`
	if err := os.WriteFile(scenario, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	outDir := filepath.Join(dir, "out")
	out, err := execute(t, "batch", scenario, "--out-dir", outDir)
	if err != nil {
		t.Fatalf("batch failed: %v", err)
	}
	if !strings.Contains(out, "example") || !strings.Contains(out, "run-2") {
		t.Errorf("missing runs in output:\n%s", out)
	}
	if strings.Count(out, " ok") != 2 {
		t.Errorf("expected both runs verified:\n%s", out)
	}
	for _, name := range []string{"example.json", "run-2.json"} {
		if _, err := os.Stat(filepath.Join(outDir, name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}
}

func TestPresetsCommand(t *testing.T) {
	out, err := execute(t, "presets")
	if err != nil {
		t.Fatalf("presets failed: %v", err)
	}
	for _, name := range []string{"example", "random", "reversed", "nearly_sorted"} {
		if !strings.Contains(out, name) {
			t.Errorf("presets output missing %q", name)
		}
	}
}

func TestInvalidInput(t *testing.T) {
	_, err := execute(t, "trace", "--input", "7")
	if err == nil {
		t.Fatal("expected error for a single value")
	}
	if !strings.Contains(err.Error(), "need at least two values") {
		t.Errorf("unexpected error: %v", err)
	}

	if _, err := execute(t, "trace", "--input", "1,x"); err == nil {
		t.Error("expected parse error")
	}
	if _, err := execute(t, "trace", "--preset", "zigzag"); err == nil {
		t.Error("expected unknown preset error")
	}
	if _, err := execute(t, "stats", "--log-level", "loud"); err == nil {
		t.Error("expected log level error")
	}
}

func TestInputFlagsOverrideConfig(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "combviz.yaml")
	if err := os.WriteFile(cfgPath, []byte("input: [4, 3, 2, 1]\nlocale: ja\n"), 0644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "stats", "--config", cfgPath)
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if !strings.Contains(out, "input: [4 3 2 1]") {
		t.Errorf("config input not used:\n%s", out)
	}

	out, err = execute(t, "stats", "--config", cfgPath, "--input", "2,1")
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if !strings.Contains(out, "input: [2 1]") {
		t.Errorf("flag input did not override config:\n%s", out)
	}

	out, err = execute(t, "plot", "--config", cfgPath, "--step", "0")
	if err != nil {
		t.Fatalf("plot failed: %v", err)
	}
	if !strings.Contains(out, "コムソート") {
		t.Errorf("expected japanese description from config locale:\n%s", out)
	}
}

func TestGeneratorUsesLocale(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Locale = "ja"

	tr, err := generator(cfg)([]float64{2, 1})
	if err != nil {
		t.Fatal(err)
	}
	if tr.First().Kind != trace.KindInit || !strings.Contains(tr.First().Description, "コムソート") {
		t.Errorf("first step = %+v", tr.First())
	}
}

func TestLogFileClosedOnFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "combviz.log")
	a := &app{}
	cmd := a.rootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"trace", "--input", "7", "--log-file", path, "--log-level", "debug"})

	if err := a.execute(cmd); err == nil {
		t.Fatal("expected an error for a single value")
	}
	if a.logSink != nil {
		t.Error("log file left open after a failing command")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), "config resolved") {
		t.Errorf("log file missing setup record: %q", data)
	}
}
