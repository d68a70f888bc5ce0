// Package testutil provides a harness for running read2env scripts end to
// end against a temporary directory.
package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/specialistvlad/read2env/internal/app"
	"github.com/stretchr/testify/require"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	Dir       string
	Output    string
	LogOutput string
	Err       error
	Vars      map[string]string
}

// RunScriptTest writes files into a fresh directory, replacing "{{dir}}" in
// every file with that directory, then runs scripts/ as the script path.
// cfg may be nil; its ScriptPath is always overwritten.
func RunScriptTest(t *testing.T, files map[string]string, cfg *app.Config) *HarnessResult {
	t.Helper()

	dir := t.TempDir()
	scriptDir := filepath.Join(dir, "scripts")
	require.NoError(t, os.Mkdir(scriptDir, 0755))

	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		content = strings.ReplaceAll(content, "{{dir}}", filepath.ToSlash(dir))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}

	if cfg == nil {
		cfg = &app.Config{}
	}
	cfg.ScriptPath = scriptDir
	cfg.LogLevel = "debug"
	cfg.LogFormat = "text"

	out := &bytes.Buffer{}
	logs := &SafeBuffer{}
	testApp := app.New(out, logs, cfg)
	defer testApp.Close()

	runErr := testApp.Run(context.Background())

	if os.Getenv("READ2ENV_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logs.String())
	}

	return &HarnessResult{
		Dir:       dir,
		Output:    out.String(),
		LogOutput: logs.String(),
		Err:       runErr,
		Vars:      testApp.Vars().All(context.Background()),
	}
}
