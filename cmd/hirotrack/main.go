package main

import (
	"fmt"
	"os"

	"hirotrack/internal/cli"
	"hirotrack/internal/config"
	"hirotrack/internal/credentials"
	"hirotrack/internal/session"
)

func main() {
	cfg := config.NewConfig()
	if err := cfg.LoadFromEnvironment(); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.EnsureDataDir(); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating data directory: %v\n", err)
		os.Exit(1)
	}

	prefs := config.LoadPrefs(config.DefaultPrefsPath())

	// Backend selection happens once here; everything downstream only sees
	// the Store interface.
	store := credentials.NewStore(cfg.GetCredentialsPath())
	manager := session.NewManager(store)

	root := cli.NewRootCommand(manager, cfg, prefs)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
