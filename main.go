package main

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"blog/config"
	"blog/db"
	"blog/handlers"
	"blog/models"

	"github.com/gin-gonic/autotls"
	"github.com/lmittmann/tint"
)

func main() {
	level := slog.LevelInfo
	if config.DEBUG_MODE {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	})))

	db.Init()
	models.Init()
	if err := os.MkdirAll(config.MEDIA_DIR, 0o755); err != nil {
		slog.Error("cannot create media dir", "dir", config.MEDIA_DIR, "error", err)
		os.Exit(1)
	}

	router := handlers.NewRouter()

	slog.Info("server starting", "bind", config.BIND_ADDRESS)
	var err error
	if config.TLS_DOMAINS != "" {
		err = autotls.Run(router, strings.Split(config.TLS_DOMAINS, ",")...)
	} else {
		err = router.Run(config.BIND_ADDRESS)
	}
	slog.Error("server stopped", "error", err)
	os.Exit(1)
}
