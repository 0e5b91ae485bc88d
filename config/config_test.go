package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults_FillsOptionalSections(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, time.Hour, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, defaultTokenURL, cfg.Drive.TokenURL)
	assert.Equal(t, time.Minute, cfg.Drive.RefreshLeeway)
	assert.Equal(t, 30*time.Second, cfg.Search.CacheTTL)
	assert.Equal(t, 6, cfg.Search.IdleVisible)
	assert.Equal(t, 10, cfg.Search.SearchVisible)
	assert.Equal(t, "mem://", cfg.Storage.BucketURL)
	assert.EqualValues(t, 20<<20, cfg.Storage.MaxUploadBytes)
	assert.Equal(t, "M", cfg.Share.ErrorCorrectionLevel)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Search: &SearchConfig{CacheTTL: 5 * time.Second, IdleVisible: 3, SearchVisible: 12},
	}

	applyDefaults(cfg)

	assert.Equal(t, 5*time.Second, cfg.Search.CacheTTL)
	assert.Equal(t, 3, cfg.Search.IdleVisible)
	assert.Equal(t, 12, cfg.Search.SearchVisible)
	assert.Equal(t, defaultCacheSize, cfg.Search.CacheSize)
}

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	content := []byte(`
drive:
  refreshToken: from-file
  rootFolderId: root
search:
  cacheTTL: 45s
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), content, 0o600))

	wd, err := os.Getwd()
	require.NoError(t, err)
	rel, err := filepath.Rel(wd, dir)
	require.NoError(t, err)

	t.Setenv("DRIVE_REFRESHTOKEN", "from-env")

	cfg, err := LoadWithEnv[Config]("test", rel)
	require.NoError(t, err)
	require.NotNil(t, cfg.Drive)
	assert.Equal(t, "from-env", cfg.Drive.RefreshToken)
	assert.Equal(t, "root", cfg.Drive.RootFolderID)
	assert.Equal(t, 45*time.Second, cfg.Search.CacheTTL)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	_, err := LoadWithEnv[Config]("does-not-exist")
	assert.Error(t, err)
}

func TestCanonicalizeEnvKey(t *testing.T) {
	existing := map[string]any{
		"drive": map[string]any{
			"clientSecret": "",
			"rootFolderId": "",
		},
		"search": map[string]any{"cacheTtl": "30s"},
		"storage": map[string]any{
			"bucketUrl": "mem://",
		},
	}

	cases := map[string]string{
		"DRIVE_CLIENTSECRET":  "drive.clientSecret",
		"DRIVE_ROOTFOLDERID":  "drive.rootFolderId",
		"SEARCH_CACHETTL":     "search.cacheTtl",
		"STORAGE__BUCKETURL":  "storage.bucketUrl",
		"STORAGE_BUCKETURL_X": "storage.bucketUrl.x",
		"SHARE_BASEURL":       "share.baseurl",
	}

	for envKey, want := range cases {
		assert.Equal(t, want, canonicalizeEnvKey(envKey, existing), envKey)
	}
}
