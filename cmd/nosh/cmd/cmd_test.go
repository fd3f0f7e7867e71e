package cmd

import (
	"bytes"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/noshapp/nosh/internal/errors"
)

func TestRootHasSubcommands(t *testing.T) {
	want := []string{"swipe", "recommend", "geocode", "manifest", "profile", "review", "init", "version"}
	for _, name := range want {
		found := false
		for _, c := range rootCmd.Commands() {
			if c.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("root command missing subcommand %q", name)
		}
	}
}

func TestManifestCheck(t *testing.T) {
	path := filepath.Join(t.TempDir(), "requirements.txt")
	content := "streamlit>=1.28\nrequests[socks]>=2.31,<3\n# a comment\nfolium==0.15.*\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	manifestCheckCmd.SetOut(&out)
	manifestCheckCmd.SetErr(&out)

	if err := runManifestCheck(manifestCheckCmd, []string{path}); err != nil {
		t.Fatalf("manifest check error = %v", err)
	}
	if !strings.Contains(out.String(), "3 requirement(s), no problems") {
		t.Errorf("unexpected output: %s", out.String())
	}
}

func TestManifestCheckReportsFindings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "requirements.txt")
	content := "requests>=2\nRequests>=2\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	manifestCheckCmd.SetOut(&out)
	manifestCheckCmd.SetErr(&out)

	if err := runManifestCheck(manifestCheckCmd, []string{path}); err == nil {
		t.Fatal("duplicate requirement should fail the check")
	}
	if !strings.Contains(out.String(), "duplicate") {
		t.Errorf("output should mention the duplicate: %s", out.String())
	}
}

func TestManifestCheckSyntaxError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "requirements.txt")
	if err := os.WriteFile(path, []byte("streamlit===\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := runManifestCheck(manifestCheckCmd, []string{path}); err == nil {
		t.Fatal("invalid specifier should be a parse error")
	}
}

func TestInitScaffoldsFiles(t *testing.T) {
	t.Chdir(t.TempDir())

	var out bytes.Buffer
	initCmd.SetOut(&out)
	initCmd.SetErr(&out)

	if err := runInit(initCmd, nil); err != nil {
		t.Fatalf("init error = %v", err)
	}

	for _, path := range []string{
		".nosh/config.yaml",
		".nosh/dishes.json",
		".nosh/restaurants.json",
	} {
		if _, err := os.Stat(path); err != nil {
			t.Errorf("init did not create %s", path)
		}
	}

	cfg, err := os.ReadFile(".nosh/config.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(cfg), "# Your home coordinates") {
		t.Errorf("config.yaml should carry key comments:\n%s", cfg)
	}

	// Second run without --force leaves existing files alone.
	out.Reset()
	if err := runInit(initCmd, nil); err != nil {
		t.Fatalf("repeat init error = %v", err)
	}
	if !strings.Contains(out.String(), "Skipping") {
		t.Errorf("repeat init should skip existing files: %s", out.String())
	}
}

func TestExplicitConfigMustExist(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		_ = rootCmd.PersistentFlags().Set("config", "")
	})

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"profile", "--config", filepath.Join(t.TempDir(), "absent.yaml")})

	err := rootCmd.Execute()
	if err == nil {
		t.Fatal("profile with a missing --config should fail")
	}
	if !stderrors.Is(err, errors.ErrConfig) {
		t.Errorf("error = %v, want a configuration error", err)
	}
}

func TestRenderConfigRoundTrips(t *testing.T) {
	data, err := renderConfig()
	if err != nil {
		t.Fatalf("renderConfig() error = %v", err)
	}
	for _, want := range []string{"dishes:", "home:", "nominatim", "level: info"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("rendered config missing %q", want)
		}
	}
}
