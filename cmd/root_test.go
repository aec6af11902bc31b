package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/notedeck/notedeck/internal/config"
	"github.com/notedeck/notedeck/internal/document"
	"github.com/notedeck/notedeck/internal/errors"
)

func TestDebugFlagDefaultFalse(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("debug")
	if flag == nil {
		t.Fatal("--debug flag not found")
	}
	if flag.DefValue != "false" {
		t.Errorf("--debug default = %q, want %q", flag.DefValue, "false")
	}
}

func TestQuietFlagExists(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("quiet")
	if flag == nil {
		t.Fatal("--quiet flag not found")
	}
	if flag.Shorthand != "q" {
		t.Errorf("--quiet shorthand = %q, want %q", flag.Shorthand, "q")
	}
}

func TestRootFlags(t *testing.T) {
	for _, name := range []string{"open", "theme", "pick"} {
		if rootCmd.Flags().Lookup(name) == nil {
			t.Errorf("--%s flag not found", name)
		}
	}
	if rootCmd.PersistentFlags().Lookup("config") == nil {
		t.Error("--config flag not found")
	}
}

func TestSubcommandsRegistered(t *testing.T) {
	want := map[string]bool{"list": false, "init": false, "themes": false}
	for _, c := range rootCmd.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestInitConfig_QuietOverridesDebug(t *testing.T) {
	origDebug, origQuiet := debugMode, quietMode
	defer func() { debugMode, quietMode = origDebug, origQuiet }()

	debugMode = true
	quietMode = true

	// Should not panic - quiet should take precedence
	initConfig()
}

func TestVersionTemplate(t *testing.T) {
	origV, origC, origD := version, commit, date
	defer SetVersionInfo(origV, origC, origD)

	SetVersionInfo("1.2.3", "none", "unknown")
	if got := versionTemplate(); got != "notedeck 1.2.3\n" {
		t.Errorf("versionTemplate() = %q", got)
	}

	SetVersionInfo("1.2.3", "abc123", "2026-01-01")
	got := versionTemplate()
	if !strings.Contains(got, "commit: abc123") || !strings.Contains(got, "built:  2026-01-01") {
		t.Errorf("versionTemplate() = %q, want commit and date", got)
	}
}

func TestBuildOptions(t *testing.T) {
	origOpen, origTheme := openID, themeName
	defer func() { openID, themeName = origOpen, origTheme }()

	cfg := config.DefaultConfig()
	cfg.Initial = "page2"

	openID, themeName = "", ""
	opts, err := buildOptions(cfg)
	if err != nil {
		t.Fatalf("buildOptions() error = %v", err)
	}
	if opts.InitialID != "page2" {
		t.Errorf("InitialID = %q, want page2", opts.InitialID)
	}
	if opts.Collection.Len() != 3 {
		t.Errorf("Collection.Len() = %d, want builtin 3", opts.Collection.Len())
	}
	if opts.Loader == nil {
		t.Error("Loader should be set")
	}
	if opts.Theme != "dark-purple" {
		t.Errorf("Theme = %q, want dark-purple", opts.Theme)
	}

	openID, themeName = "page3", "nord"
	opts, err = buildOptions(cfg)
	if err != nil {
		t.Fatalf("buildOptions() error = %v", err)
	}
	if opts.InitialID != "page3" {
		t.Errorf("--open should override initial, got %q", opts.InitialID)
	}
	if opts.Theme != "nord" {
		t.Errorf("--theme should override theme, got %q", opts.Theme)
	}
}

func TestBuildOptions_UnknownTheme(t *testing.T) {
	origTheme := themeName
	defer func() { themeName = origTheme }()

	themeName = "neon"
	_, err := buildOptions(config.DefaultConfig())
	if !errors.Is(err, errors.KindInvalid) {
		t.Errorf("buildOptions() error = %v, want invalid error", err)
	}
}

func TestWriteList(t *testing.T) {
	coll := document.MustCollection(
		document.Entry{ID: "a", Name: "Alpha", Content: document.Inline("<p>a</p>", document.FormatHTML)},
		document.Entry{ID: "b", Name: "Beta", Content: document.Locate("https://example.com/b.md", document.FormatMarkdown)},
	)

	var buf bytes.Buffer
	if err := writeList(&buf, coll); err != nil {
		t.Fatalf("writeList() error = %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want header + 2:\n%s", len(lines), buf.String())
	}
	if !strings.Contains(lines[1], "Alpha") || !strings.Contains(lines[1], "inline") {
		t.Errorf("row 1 = %q", lines[1])
	}
	if !strings.Contains(lines[2], "https://example.com/b.md") || !strings.Contains(lines[2], "markdown") {
		t.Errorf("row 2 = %q", lines[2])
	}
}

func TestWriteStarter(t *testing.T) {
	origForce := forceInit
	defer func() { forceInit = origForce }()
	forceInit = false

	path := filepath.Join(t.TempDir(), "notedeck", "config.yaml")
	cmd := &cobra.Command{}
	var out bytes.Buffer
	cmd.SetOut(&out)

	asked := false
	confirm := func(string) (bool, error) {
		asked = true
		return false, nil
	}

	if err := writeStarter(cmd, path, confirm); err != nil {
		t.Fatalf("writeStarter() error = %v", err)
	}
	if asked {
		t.Error("should not ask when the file does not exist")
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(cfg.Documents) != 3 {
		t.Errorf("starter has %d documents, want 3", len(cfg.Documents))
	}

	// existing file, declined
	if err := os.WriteFile(path, []byte("title: mine\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := writeStarter(cmd, path, confirm); err != nil {
		t.Fatalf("writeStarter() error = %v", err)
	}
	if !asked {
		t.Error("should ask before overwriting")
	}
	data, _ := os.ReadFile(path)
	if string(data) != "title: mine\n" {
		t.Error("declined overwrite changed the file")
	}

	// --force skips the prompt
	forceInit = true
	asked = false
	if err := writeStarter(cmd, path, confirm); err != nil {
		t.Fatalf("writeStarter() error = %v", err)
	}
	if asked {
		t.Error("--force should not ask")
	}
	data, _ = os.ReadFile(path)
	if string(data) == "title: mine\n" {
		t.Error("--force should overwrite")
	}
}

func TestPickOptions(t *testing.T) {
	opts := pickOptions(document.Builtin())
	if len(opts) != 3 {
		t.Fatalf("len = %d, want 3", len(opts))
	}
	if opts[0].Value != "page1" || opts[2].Value != "page3" {
		t.Errorf("options out of collection order: %+v", opts)
	}
	if opts[1].Key != "2. Document 2" {
		t.Errorf("opts[1].Key = %q", opts[1].Key)
	}
}

func TestGetScenario(t *testing.T) {
	origW, origH := demoWidth, demoHeight
	defer func() { demoWidth, demoHeight = origW, origH }()

	demoWidth, demoHeight = 0, 0
	if _, err := getScenario("nonexistent"); err == nil {
		t.Error("unknown scenario should fail")
	}
	s, err := getScenario("overview")
	if err != nil {
		t.Fatalf("getScenario() error = %v", err)
	}
	if s.Name != "overview" {
		t.Errorf("Name = %q", s.Name)
	}
}

func TestDemoCast(t *testing.T) {
	origOut := demoOutput
	defer func() { demoOutput = origOut }()

	demoOutput = filepath.Join(t.TempDir(), "overview.cast")
	cmd := &cobra.Command{}
	var out bytes.Buffer
	cmd.SetOut(&out)

	if err := runDemoCast(cmd, []string{"overview"}); err != nil {
		t.Fatalf("runDemoCast() error = %v", err)
	}
	data, err := os.ReadFile(demoOutput)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), `{"version":2`) {
		t.Errorf("cast should start with the header, got %.40q", data)
	}
	if !strings.Contains(out.String(), "Generated") {
		t.Errorf("output = %q", out.String())
	}
}
