package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/avoronin9/ironlog/internal/cli"
)

func main() {
	defaultDBPath := os.Getenv("DB_PATH")
	if defaultDBPath == "" {
		defaultDBPath = filepath.Join("data", "ironlog.db")
	}

	dbPath := flag.String("db", defaultDBPath, "path to the sqlite database")
	username := flag.String("user", "", "username of the account to restore")
	interactive := flag.Bool("interactive", false, "type the new password instead of generating one")
	flag.Parse()

	if *username == "" {
		fmt.Fprintln(os.Stderr, "usage: ironlog-admin -user <username> [-db path] [-interactive]")
		os.Exit(2)
	}

	if err := cli.RunRestoreAccessCommand(*dbPath, *username, *interactive); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
