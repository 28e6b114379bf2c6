package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfigCommand(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, ".throng.yaml")

	content := `
defaults:
  limit: 4
  shell: bash
profiles:
  careful:
    limit: 1
`
	if err := os.WriteFile(cfgPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	tests := []struct {
		name string
		args []string
	}{
		{
			name: "defaults only",
			args: []string{"config", "--config", cfgPath},
		},
		{
			name: "with profile",
			args: []string{"config", "--config", cfgPath, "-P", "careful"},
		},
		{
			name: "json output",
			args: []string{"config", "--config", cfgPath, "-o", "json"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() { cfgFile = "" }()

			cmd := newRootCmd()
			cmd.SetArgs(tt.args)

			if err := cmd.Execute(); err != nil {
				t.Fatalf("config command failed: %v", err)
			}
		})
	}
}

func TestConfigCommand_BadConfigFile(t *testing.T) {
	defer func() { cfgFile = "" }()

	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, ".throng.yaml")
	if err := os.WriteFile(cfgPath, []byte("defaults: [broken"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cmd := newRootCmd()
	cmd.SetArgs([]string{"config", "--config", cfgPath})

	if err := cmd.Execute(); err == nil {
		t.Error("expected an error for an unparseable config file")
	}
}
