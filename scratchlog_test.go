package scratchlog

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scratchlog/scratchlog/internal/infrastructure/config"
)

// setupDefault points the shared Logger at a fresh temp directory and
// returns the debug directory it will resolve to.
func setupDefault(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	chdir(t, dir)
	resetDefault()
	t.Cleanup(resetDefault)

	return filepath.Join(dir, ".debug")
}

// TestWrite_DefaultPolicy_EndToEnd tests the two-write scenario from a
// cold process state.
func TestWrite_DefaultPolicy_EndToEnd(t *testing.T) {
	debugDir := setupDefault(t)

	require.NoError(t, Write("run.log", "started", "INFO", ""))
	require.NoError(t, Write("run.log", "finished", "INFO", ""))

	data, err := os.ReadFile(filepath.Join(debugDir, "run.log"))
	require.NoError(t, err)

	sep := strings.Repeat("-", 59)
	block := "\n" + sep + "\n> INFO\n" + sep + "\n"
	assert.Equal(t, block+"started\n"+block+"finished\n", string(data))
}

// TestDir_MatchesResolvedDirectory tests the directory accessor
func TestDir_MatchesResolvedDirectory(t *testing.T) {
	debugDir := setupDefault(t)

	assert.Equal(t, debugDir, Dir())
	assert.DirExists(t, Dir(), "Accessing the directory should create it")
}

// TestDefault_ReturnsSameLogger tests singleton behavior
func TestDefault_ReturnsSameLogger(t *testing.T) {
	setupDefault(t)

	first := Default()
	second := Default()

	assert.Same(t, first, second, "Default should hand out one shared Logger")
}

// TestDebugf_WritesToDefaultFileWithCallerContext tests the printf-style
// convenience entry point.
func TestDebugf_WritesToDefaultFileWithCallerContext(t *testing.T) {
	debugDir := setupDefault(t)

	Debugf("value is %d", 42)

	data, err := os.ReadFile(filepath.Join(debugDir, DefaultFile))
	require.NoError(t, err)

	assert.Contains(t, string(data), "value is 42")
	assert.Regexp(t, regexp.MustCompile(`> \[at scratchlog_test\.go:\d+\]`), string(data),
		"Debugf should attach the caller's file:line")
}

// TestMessage_BuilderRoutesAndFrames tests the fluent API
func TestMessage_BuilderRoutesAndFrames(t *testing.T) {
	debugDir := setupDefault(t)

	require.NoError(t, Message("cache miss").ToFile("cache.log").WithHeader("MISS").Write())

	data, err := os.ReadFile(filepath.Join(debugDir, "cache.log"))
	require.NoError(t, err)

	assert.Contains(t, string(data), "cache miss")
	assert.Regexp(t, regexp.MustCompile(`> MISS \(scratchlog_test\.go:\d+\)`), string(data),
		"Header and captured context should combine on the label line")
}

// TestMessage_NoContext_DropsCallerLocation tests context suppression
func TestMessage_NoContext_DropsCallerLocation(t *testing.T) {
	debugDir := setupDefault(t)

	require.NoError(t, Message("bare").NoContext().Write())

	data, err := os.ReadFile(filepath.Join(debugDir, DefaultFile))
	require.NoError(t, err)

	assert.Equal(t, "\nbare\n", string(data), "No header and no context means a bare block")
}

// TestMessagef_FormatsContent tests the formatted builder constructor
func TestMessagef_FormatsContent(t *testing.T) {
	debugDir := setupDefault(t)

	require.NoError(t, Messagef("attempt %d of %d", 2, 3).NoContext().Write())

	data, err := os.ReadFile(filepath.Join(debugDir, DefaultFile))
	require.NoError(t, err)
	assert.Equal(t, "\nattempt 2 of 3\n", string(data))
}

// TestLogger_Disabled_WritesNothing tests the enable switch
func TestLogger_Disabled_WritesNothing(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	policy := config.DefaultPolicy()
	policy.Enabled = false

	logger := NewLogger(policy)

	assert.False(t, logger.Enabled())
	require.NoError(t, logger.Write("run.log", "dropped", "", ""))

	_, err := os.Stat(filepath.Join(dir, ".debug", "run.log"))
	assert.True(t, os.IsNotExist(err), "Disabled logger must not create log files")
}

// TestLogger_EnvDisable_ViaDefaultPolicySources tests SCRATCHLOG_ENABLED=0
func TestLogger_EnvDisable_ViaDefaultPolicySources(t *testing.T) {
	debugDir := setupDefault(t)
	t.Setenv("SCRATCHLOG_ENABLED", "0")

	require.NoError(t, Write("run.log", "dropped", "", ""))

	_, err := os.Stat(filepath.Join(debugDir, "run.log"))
	assert.True(t, os.IsNotExist(err))
}

// TestWrite_ConcurrentCallers_NoEntryLost exercises the whole facade
// under concurrency: first-ever writes racing on one filename.
func TestWrite_ConcurrentCallers_NoEntryLost(t *testing.T) {
	const goroutines = 16

	debugDir := setupDefault(t)

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, Write("race.log", fmt.Sprintf("entry %d", i), "", ""))
		}()
	}
	wg.Wait()

	data, err := os.ReadFile(filepath.Join(debugDir, "race.log"))
	require.NoError(t, err)

	for i := 0; i < goroutines; i++ {
		assert.Contains(t, string(data), fmt.Sprintf("entry %d", i))
	}
	assert.Equal(t, goroutines, strings.Count(string(data), "entry "))
}
