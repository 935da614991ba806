package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func TestSelfUpdateCommandShape(t *testing.T) {
	c := newSelfUpdateCmd()

	if c.Use != "self-update" {
		t.Errorf("command name: got %q, want %q", c.Use, "self-update")
	}
	if c.Short == "" || c.Long == "" {
		t.Error("self-update needs both help descriptions")
	}
	if c.RunE == nil {
		t.Error("self-update must report errors through RunE")
	}
}

// Development builds carry no release version to compare against, so the
// update must refuse instead of "upgrading" to whatever is newest.
func TestSelfUpdateRefusesUnreleasedBuilds(t *testing.T) {
	originalVersion := rootCmd.Version
	defer func() { rootCmd.Version = originalVersion }()

	for _, version := range []string{"dev", ""} {
		rootCmd.Version = version

		err := runSelfUpdate(nil, nil)
		if err == nil {
			t.Errorf("version %q: want a refusal, got nil", version)
			continue
		}
		if !strings.Contains(err.Error(), "cannot self-update a development version") {
			t.Errorf("version %q: unexpected refusal message: %s", version, err)
		}
	}
}

func TestSelfUpdateHelpOutput(t *testing.T) {
	c := newSelfUpdateCmd()
	var buf bytes.Buffer
	c.SetOut(&buf)
	c.SetErr(&buf)
	c.SetArgs([]string{"--help"})

	if err := c.Execute(); err != nil {
		t.Fatalf("--help: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Checks for the latest release") {
		t.Errorf("help is missing the long description: %q", out)
	}
	if !strings.Contains(out, "self-update") {
		t.Errorf("help is missing the command name: %q", out)
	}
}

func TestSelfUpdateReleaseSource(t *testing.T) {
	if githubRepoSlug != "dockhand-tui/dockhand" {
		t.Errorf("releases must come from dockhand-tui/dockhand, got %q", githubRepoSlug)
	}
}

// The download-and-replace path needs the network and would swap out the
// running binary; it is exercised manually against a tagged release.
