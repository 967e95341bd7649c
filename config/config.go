package config

import (
	"os"
	"strconv"
	"strings"
)

var (
	TLS_DOMAINS    = ""                  // e.g. "example.com,example2.com"
	MYSQL_DSN      = ""                  // MySQL will be used if this is set
	SQLITE_FILE    = "blog.db"           // SQLite will be used if MYSQL_DSN is not configured
	BIND_ADDRESS   = "0.0.0.0:8080"
	MEDIA_DIR      = "media"             // Post image attachments end up here
	SESSION_KEY    = "change me in prod" // Session cookie signing key
	DEBUG_MODE     = true
	FEED_CACHE_TTL = 1200 // Seconds a cached public feed page stays valid
)

func init() {
	readEnvString("TLS_DOMAINS", &TLS_DOMAINS)
	readEnvString("MYSQL_DSN", &MYSQL_DSN)
	readEnvString("SQLITE_FILE", &SQLITE_FILE)
	readEnvString("BIND_ADDRESS", &BIND_ADDRESS)
	readEnvString("MEDIA_DIR", &MEDIA_DIR)
	readEnvString("SESSION_KEY", &SESSION_KEY)
	readEnvBool("DEBUG_MODE", &DEBUG_MODE)
	readEnvInt("FEED_CACHE_TTL", &FEED_CACHE_TTL)
}

func readEnvString(name string, value *string) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	*value = v
}

func readEnvBool(name string, value *bool) {
	v := strings.ToLower(os.Getenv(name))
	if v == "true" || v == "1" || v == "yes" || v == "on" {
		*value = true
	} else if v == "false" || v == "0" || v == "no" || v == "off" {
		*value = false
	}
}

func readEnvInt(name string, value *int) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	f, err := strconv.Atoi(v)
	if err != nil {
		return
	}
	*value = f
}
