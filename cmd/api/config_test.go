package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

const sampleConfig = `
server:
  dsn: "host=localhost user=postgres dbname=campsite"
  redisAddr: "localhost:6379"
  mongoDB: "campsite"
campsite:
  siteURL: "https://camp.example.com"
  admins:
    - "google-oauth2|1"
  sessionSecret: "from-file"
  uploadBucket: "campsite"
profile:
  name: "Summer Camp"
`

func TestConfigLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	assert.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0o600))

	t.Setenv("CAMPSITE_SESSION_SECRET", "from-env")

	var config Config
	err := config.Load(path)
	if assert.NoError(t, err) {
		assert.Equal(t, "localhost:6379", config.Server.RedisAddr)
		assert.Equal(t, []string{"google-oauth2|1"}, config.Campsite.Admins)
		assert.Equal(t, "from-env", config.Campsite.SessionSecret)
		assert.Equal(t, "Summer Camp", config.Profile.Name)
	}
}
