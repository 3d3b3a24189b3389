// Command navcheck runs the bottom navigation admin check for one
// username against a running admin API and prints the resulting entries.
//
//	navcheck -api http://localhost:8080 -super-admin root -u alice
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"miniadmin/internal/config"
	"miniadmin/internal/navigation"
)

func main() {
	cfg, err := config.NewClient(os.Args[1:])
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		lvl = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))

	nav := navigation.NewBottomNav(cfg.SuperAdmin, navigation.StaticIdentity(cfg.Username), navigation.NewClient(cfg.APIAddress), logger)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	select {
	case <-nav.Mount(ctx):
	case <-ctx.Done():
		logger.Error("admin check timed out")
	}
	nav.Unmount()

	state, isAdmin := nav.State()
	out := struct {
		State   string               `json:"state"`
		IsAdmin bool                 `json:"is_admin"`
		Items   []navigation.Item    `json:"items"`
		Debug   navigation.DebugInfo `json:"debug"`
	}{
		State:   state.String(),
		IsAdmin: isAdmin,
		Items:   nav.Items(),
		Debug:   nav.Debug(),
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
