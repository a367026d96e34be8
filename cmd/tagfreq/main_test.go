package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/revelaction/tagfreq/config"
	"github.com/revelaction/tagfreq/file"
	"github.com/revelaction/tagfreq/report"
)

const sample = "# sent_id = 1\n" +
	"1\tLas\tel\tDET\tDA0FP0\tDefinite=Def|Gender=Fem|Number=Plur|PronType=Art\t2\tdet\t_\t_\n" +
	"2\tcasas\tcasa\tNOUN\tNCFP000\tGender=Fem|Number=Plur\t0\troot\t_\t_\n" +
	"3\tblancas\tblanco\tADJ\tAQ0FP0\tGender=Fem|Number=Plur\t2\tamod\t_\tSpaceAfter=No\n" +
	"4\t.\t.\tPUNCT\tFp\t_\t2\tpunct\t_\t_\n" +
	"\n" +
	"# sent_id = 2\n" +
	"1-2\tdel\t_\t_\t_\t_\t_\t_\t_\t_\n" +
	"1\tde\tde\tADP\tSPS00\t_\t3\tcase\t_\t_\n" +
	"2\tel\tel\tDET\tDA0MS0\tDefinite=Def|Gender=Masc|Number=Sing|PronType=Art\t3\tdet\t_\t_\n" +
	"3\tcampo\tcampo\tNOUN\tNCMS000\tGender=Masc|Number=Sing\t0\troot\t_\t_\n" +
	"\n"

func write(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

// run executes the app with a config file holding cfg and returns stdout.
func run(t *testing.T, cfg string, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	cfgPath := write(t, dir, "config.yaml", cfg)
	docPath := write(t, dir, "es.conllu", sample)

	full := []string{"tagfreq", "--config", cfgPath}
	for _, a := range args {
		if a == "FILE" {
			a = docPath
		}
		full = append(full, a)
	}

	var out, errOut bytes.Buffer
	err := newApp(UI{Out: &out, Err: &errOut}).Run(full)
	return out.String(), err
}

func TestCountTop(t *testing.T) {
	got, err := run(t, "format: text\n", "count", "--upos", "-n", "2", "FILE")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "Retrieving top 2 upos counts from es.conllu:\n" +
		"1. DET: 2\n" +
		"2. NOUN: 2\n" +
		"\n"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestCountShortList(t *testing.T) {
	got, err := run(t, "format: text\n", "count", "--deprel", "--count", "10", "--words-only", "FILE")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "Retrieving top 10 deprel counts from es.conllu:\n" +
		"This list has less than 10 entries!\n" +
		"1. det: 2\n" +
		"2. root: 2\n" +
		"3. amod: 1\n" +
		"4. punct: 1\n" +
		"5. case: 1\n" +
		"\n"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestCountCategoryOrder(t *testing.T) {
	got, err := run(t, "format: text\n", "count", "--indi_feats", "--upos", "-n", "1", "FILE")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	upos := strings.Index(got, "upos counts")
	indi := strings.Index(got, "individual feats counts")
	if upos < 0 || indi < 0 || upos > indi {
		t.Errorf("expected upos before individual feats, got %q", got)
	}
	if !strings.Contains(got, "1. Gender=Fem: 3\n") {
		t.Errorf("expected Gender=Fem first, got %q", got)
	}
}

func TestCountConfigCategories(t *testing.T) {
	got, err := run(t, "format: json\ncategories: [feats]\n", "count", "FILE")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var result struct {
		Title   string `json:"title"`
		Reports []struct {
			Category string `json:"category"`
			Distinct int    `json:"distinct"`
		} `json:"reports"`
	}
	if err := json.Unmarshal([]byte(got), &result); err != nil {
		t.Fatalf("failed to unmarshal %q: %v", got, err)
	}

	if len(result.Reports) != 1 || result.Reports[0].Category != "feats" {
		t.Fatalf("expected one feats report, got %+v", result.Reports)
	}
	if result.Reports[0].Distinct != 4 {
		t.Errorf("expected 4 distinct feature sets, got %d", result.Reports[0].Distinct)
	}
}

func TestCountFormatFlagOverridesConfig(t *testing.T) {
	got, err := run(t, "format: json\n", "count", "--xpos", "--format", "markdown", "FILE")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.HasPrefix(got, "# Tag counts of es.conllu") {
		t.Errorf("expected markdown output, got %q", got)
	}
}

func TestCountErrors(t *testing.T) {
	tests := []struct {
		name string
		cfg  string
		args []string
		want error
	}{
		{"zero count", "format: text\n", []string{"count", "--upos", "-n", "0", "FILE"}, config.ErrInvalidTop},
		{"negative count", "format: text\n", []string{"count", "--upos", "--count", "-3", "FILE"}, config.ErrInvalidTop},
		{"no category", "format: text\n", []string{"count", "FILE"}, report.ErrNoCategory},
		{"bad format", "format: text\n", []string{"count", "--upos", "--format", "html", "FILE"}, config.ErrInvalidFormat},
		{"bad config category", "categories: [lemma]\n", []string{"count", "FILE"}, config.ErrInvalidCategory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.cfg, tt.args...)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			if out != "" {
				t.Errorf("expected no output, got %q", out)
			}
		})
	}
}

func TestCountExtension(t *testing.T) {
	dir := t.TempDir()
	cfgPath := write(t, dir, "config.yaml", "format: text\n")
	txt := write(t, dir, "es.txt", sample)

	var out, errOut bytes.Buffer
	err := newApp(UI{Out: &out, Err: &errOut}).Run([]string{"tagfreq", "--config", cfgPath, "count", "--upos", txt})
	if !errors.Is(err, file.ErrExtension) {
		t.Fatalf("expected %v, got %v", file.ErrExtension, err)
	}
}

func TestCountMissingFile(t *testing.T) {
	_, err := run(t, "format: text\n", "count", "--upos")
	if err == nil {
		t.Fatal("expected error without FILE")
	}
}

func TestStat(t *testing.T) {
	got, err := run(t, "format: text\n", "stat", "--dis", "FILE")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "Num sentences 2, num tokens 8, num tokens per sentence 4\n" +
		"Num tokens with feats 5, num feature pairs 14\n" +
		"4 tokens: 2 sentences\n"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestStatSentence(t *testing.T) {
	got, err := run(t, "words_only: true\n", "stat", "-s", "1", "FILE")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.HasPrefix(got, "Num sentences 1, num tokens 3,") {
		t.Errorf("unexpected output %q", got)
	}

	if _, err := run(t, "format: text\n", "stat", "-s", "2", "FILE"); err == nil {
		t.Error("expected out of bounds error")
	}
}

func TestVersion(t *testing.T) {
	got, err := run(t, "format: text\n", "version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got != "tagfreq version dev (commit: none)\n" {
		t.Errorf("unexpected version output %q", got)
	}
}

func TestConfigNotFound(t *testing.T) {
	var out, errOut bytes.Buffer
	missing := filepath.Join(t.TempDir(), "missing.yaml")
	err := newApp(UI{Out: &out, Err: &errOut}).Run([]string{"tagfreq", "--config", missing, "version"})
	if !errors.Is(err, config.ErrConfigNotFound) {
		t.Fatalf("expected %v, got %v", config.ErrConfigNotFound, err)
	}
}

func TestBash(t *testing.T) {
	got, err := run(t, "format: text\n", "bash")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(got, "complete -o default -F _tagfreq_autocomplete tagfreq") {
		t.Errorf("unexpected completion script %q", got)
	}
}
