package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artisanexperiences/vetter/internal/fs"
	"github.com/artisanexperiences/vetter/pkg/validation"
)

func isolateGlobalConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return filepath.Join(dir, "vetter")
}

func TestLoad_Defaults(t *testing.T) {
	isolateGlobalConfig(t)

	cfg, err := Load(t.TempDir(), "")

	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, FormatText, cfg.Format)
	assert.Empty(t, cfg.Messages)
	assert.Nil(t, cfg.RuleMessages())
}

func TestLoad_ProjectFile(t *testing.T) {
	isolateGlobalConfig(t)
	dir := t.TempDir()
	content := `log_level: debug
format: json
messages:
  required: This field cannot be blank.
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "vetter.yaml"), []byte(content), 0644))

	cfg, err := Load(dir, "")

	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, FormatJSON, cfg.Format)
	assert.Equal(t, map[string]string{"required": "This field cannot be blank."}, cfg.Messages)

	msgs := cfg.RuleMessages()
	require.Contains(t, msgs, "required")
	assert.Equal(t, "This field cannot be blank.", msgs["required"].Render(nil, nil))
}

func TestLoad_GlobalFile(t *testing.T) {
	globalDir := isolateGlobalConfig(t)
	require.NoError(t, os.MkdirAll(globalDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(globalDir, "vetter.yaml"), []byte("format: json\n"), 0644))

	cfg, err := Load(t.TempDir(), "")

	require.NoError(t, err)
	assert.Equal(t, FormatJSON, cfg.Format)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_ExplicitFile(t *testing.T) {
	isolateGlobalConfig(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: warn\n"), 0644))

	cfg, err := Load("", path)

	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoad_ExplicitFileMissing(t *testing.T) {
	isolateGlobalConfig(t)

	_, err := Load("", filepath.Join(t.TempDir(), "missing.yaml"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config")
}

func TestLoad_EnvOverride(t *testing.T) {
	isolateGlobalConfig(t)
	t.Setenv("VETTER_FORMAT", "json")

	cfg, err := Load(t.TempDir(), "")

	require.NoError(t, err)
	assert.Equal(t, FormatJSON, cfg.Format)
}

func TestLoad_Invalid(t *testing.T) {
	isolateGlobalConfig(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "vetter.yaml"), []byte("format: xml\nlog_level: loud\n"), 0644))

	_, err := Load(dir, "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
	assert.Contains(t, err.Error(), `got "xml"`)
	assert.Contains(t, err.Error(), `got "loud"`)
}

func TestSave(t *testing.T) {
	mock := fs.NewMockFS()

	err := Save(mock, "/project", &Config{LogLevel: "info", Format: FormatText})

	require.NoError(t, err)
	data, err := mock.ReadFile("/project/vetter.yaml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "log_level: info")
	assert.Contains(t, string(data), "format: text")
	assert.NotContains(t, string(data), "messages")
}

func TestGetGlobalConfigDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	dir, err := GetGlobalConfigDir()

	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/xdg", "vetter"), dir)
}

func TestConfig_RuleMessagesRegistry(t *testing.T) {
	cfg := &Config{Messages: map[string]string{"email": "Bad address."}}
	reg := validation.NewRegistry(map[string]validation.Definition{
		"email": validation.Rule(func(any, []string) bool { return false }),
	}, nil).WithMessages(cfg.RuleMessages())

	msg, ok := reg.Message("contact", "email", nil)

	require.True(t, ok)
	assert.Equal(t, "Bad address.", msg.Render(nil, nil))
}

func TestConfig_ValidateMessageTemplates(t *testing.T) {
	cfg := Default()
	cfg.Messages = map[string]string{"min": "{{ broken"}

	err := cfg.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "messages.min")

	cfg.Messages["min"] = "At least {{ index .Params 0 }}."
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "At least 3.", cfg.RuleMessages()["min"].Render(nil, []string{"3"}))
}
