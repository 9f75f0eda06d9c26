package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/showrank/internal/quiz"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "showrank.yaml")
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SHOWRANK_CONFIG", "")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 500*time.Millisecond, cfg.NoticeDelay)
	assert.Len(t, cfg.Quiz.Items, 8)

	q, err := cfg.BuildQuiz()
	require.NoError(t, err)
	assert.Equal(t, quiz.Default().Reference(), q.Reference())
}

func TestLoad_File(t *testing.T) {
	p := writeConfig(t, `
log_level: debug
notice_delay: 750ms
quiz:
  title: Sitcom Quiz
  items:
    - name: Frasier
      points: [5, 3, 1]
    - name: Cheers
      points: [3, 5, 2]
    - name: Taxi
      points: [1, 2, 4]
`)

	cfg, err := Load(p)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 750*time.Millisecond, cfg.NoticeDelay)

	q, err := cfg.BuildQuiz()
	require.NoError(t, err)
	assert.Equal(t, "Sitcom Quiz", q.Title())
	assert.Equal(t, quiz.Ordering{"Frasier", "Cheers", "Taxi"}, q.Reference())
	assert.Equal(t, 14, q.ReferenceScore())
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	p := writeConfig(t, "log_level: debug\n")
	t.Setenv("SHOWRANK_LOG_LEVEL", "warn")
	t.Setenv("SHOWRANK_NOTICE_DELAY", "1s")

	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, time.Second, cfg.NoticeDelay)
}

func TestLoad_ConfigPathFromEnv(t *testing.T) {
	p := writeConfig(t, "log_file: \"-\"\n")
	t.Setenv("SHOWRANK_CONFIG", p)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "-", cfg.LogFile)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, ErrLoadConfig)
}

func TestLoad_InvalidQuiz(t *testing.T) {
	p := writeConfig(t, `
quiz:
  items:
    - name: A
      points: [1]
    - name: B
      points: [1, 2]
`)

	_, err := Load(p)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.ErrorIs(t, err, quiz.ErrPointsLength)
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	t.Setenv("SHOWRANK_LOG_LEVEL", "loud")

	_, err := Load("")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
