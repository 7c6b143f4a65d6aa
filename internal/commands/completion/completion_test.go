// Copyright 2025 Tom Barlow
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package completion

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/tombee/awsclient/internal/commands/shared"
)

func TestCompletionCommand_Shells(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(shell, func(t *testing.T) {
			root := &cobra.Command{Use: "awsclient"}
			root.AddCommand(NewCommand())

			var buf bytes.Buffer
			root.SetOut(&buf)
			root.SetArgs([]string{"completion", shell})
			if err := root.Execute(); err != nil {
				t.Fatalf("completion %s failed: %v", shell, err)
			}
			if !strings.Contains(buf.String(), "awsclient") {
				t.Errorf("expected script to mention awsclient")
			}
		})
	}
}

func TestCompletionCommand_InvalidShell(t *testing.T) {
	root := &cobra.Command{Use: "awsclient", SilenceErrors: true, SilenceUsage: true}
	root.AddCommand(NewCommand())
	root.SetArgs([]string{"completion", "tcsh"})
	if err := root.Execute(); err == nil {
		t.Fatal("expected error for unsupported shell")
	}
}

func TestSafeCompletionWrapper(t *testing.T) {
	results, directive := SafeCompletionWrapper(func() ([]string, cobra.ShellCompDirective) {
		panic("boom")
	})
	if len(results) != 0 || directive != cobra.ShellCompDirectiveNoFileComp {
		t.Errorf("expected empty results after panic, got %v %v", results, directive)
	}

	results, _ = SafeCompletionWrapper(func() ([]string, cobra.ShellCompDirective) {
		return nil, cobra.ShellCompDirectiveDefault
	})
	if results == nil {
		t.Error("expected non-nil results")
	}
}

func TestCompleteStaticValues(t *testing.T) {
	formats, _ := CompleteOutputFormats(nil, nil, "")
	if len(formats) != 2 || !strings.HasPrefix(formats[0], "json\t") {
		t.Errorf("unexpected formats %v", formats)
	}

	sources, _ := CompleteCredentialsSources(nil, nil, "")
	if len(sources) != 4 {
		t.Errorf("expected 4 sources, got %v", sources)
	}
}

func TestCompleteConfiguredRegion(t *testing.T) {
	t.Setenv("AWS_REGION", "")
	t.Setenv("AWS_DEFAULT_REGION", "")
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("region: eu-north-1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	defer shared.ResetFlagsForTest()

	root := &cobra.Command{Use: "awsclient"}
	shared.RegisterFlags(root)
	if err := root.PersistentFlags().Set("config", path); err != nil {
		t.Fatal(err)
	}

	regions, _ := CompleteConfiguredRegion(root, nil, "")
	if len(regions) != 1 || regions[0] != "eu-north-1" {
		t.Errorf("expected configured region, got %v", regions)
	}

	if err := RegisterFlagCompletions(root); err != nil {
		t.Fatalf("registering completions: %v", err)
	}
}

func TestRegisterFlagCompletions_Errors(t *testing.T) {
	bare := &cobra.Command{Use: "awsclient"}
	if err := RegisterFlagCompletions(bare); err == nil {
		t.Error("expected an error when the global flags are not registered")
	}

	defer shared.ResetFlagsForTest()
	root := &cobra.Command{Use: "awsclient"}
	shared.RegisterFlags(root)
	if err := RegisterFlagCompletions(root); err != nil {
		t.Fatalf("registering completions: %v", err)
	}
	if err := RegisterFlagCompletions(root); err == nil {
		t.Error("expected an error when completions are registered twice")
	}
}
