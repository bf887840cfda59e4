package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/dialcount/internal/app"
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

// HarnessResult holds the outcomes of an end-to-end run.
type HarnessResult struct {
	Output    string // what the app printed to stdout
	LogOutput string // what the app logged to stderr
	Err       error
}

// RunSessionTest provides a standardized harness for end-to-end tests: it
// writes the given files (session .hcl files and rotation documents, keyed
// by relative path) into a temporary directory, points the app at it, runs
// it, and captures both output streams.
//
// cfg.SessionPath, when set, is taken relative to the temporary directory;
// when empty the whole directory is the session path. Log level and format
// default to debug/text so assertions can see everything.
func RunSessionTest(t *testing.T, files map[string]string, cfg app.Config) *HarnessResult {
	t.Helper()

	tmpDir := t.TempDir()
	for name, content := range files {
		filePath := filepath.Join(tmpDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0o755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0o644))
	}

	if cfg.SessionPath == "" {
		cfg.SessionPath = tmpDir
	} else {
		cfg.SessionPath = filepath.Join(tmpDir, cfg.SessionPath)
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "debug"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}

	appConfig, err := app.NewConfig(cfg)
	require.NoError(t, err)

	out := &bytes.Buffer{}
	logBuf := &SafeBuffer{}
	testApp := app.NewApp(out, logBuf, appConfig)
	runErr := testApp.Run(context.Background())

	if os.Getenv("DIALCOUNT_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuf.String())
	}

	return &HarnessResult{
		Output:    out.String(),
		LogOutput: logBuf.String(),
		Err:       runErr,
	}
}
