package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func TestSetVersion(t *testing.T) {
	testVersion := "1.2.3-test"
	SetVersion(testVersion)

	if rootCmd.Version != testVersion {
		t.Errorf("Expected version to be %s, got %s", testVersion, rootCmd.Version)
	}
}

func TestRootCommand(t *testing.T) {
	if rootCmd.Use != "dockhand [host]" {
		t.Errorf("Expected Use to be 'dockhand [host]', got %s", rootCmd.Use)
	}

	if rootCmd.Short == "" {
		t.Error("Expected Short description to be set")
	}

	if rootCmd.Long == "" {
		t.Error("Expected Long description to be set")
	}

	if !rootCmd.SilenceUsage {
		t.Error("Expected SilenceUsage to be true")
	}

	if rootCmd.RunE == nil {
		t.Error("Expected RunE to be set so the bare command starts the dashboard")
	}
}

func TestRootCommandRejectsExtraArgs(t *testing.T) {
	err := rootCmd.Args(rootCmd, []string{"tcp://a:2375", "tcp://b:2375"})
	if err == nil {
		t.Error("Expected an error for more than one host argument")
	}
}

func TestVersionTemplate(t *testing.T) {
	testCmd := &cobra.Command{
		Use:     "test",
		Version: "1.0.0",
	}

	// Same template Execute() installs
	testCmd.SetVersionTemplate(`{{printf "dockhand version %s\n" .Version}}`)

	var buf bytes.Buffer
	testCmd.SetOut(&buf)

	testCmd.SetArgs([]string{"--version"})
	err := testCmd.Execute()
	if err != nil {
		t.Fatalf("Error executing version command: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "dockhand version 1.0.0") {
		t.Errorf("Expected version output to use the template. Got: %q", output)
	}
}
