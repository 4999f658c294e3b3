package db

import (
	"fmt"
	"io/fs"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/avoronin9/ironlog/migrations"
	"gorm.io/gorm"
)

var (
	migrationNamePattern = regexp.MustCompile(`^(\d+)_.*\.sql$`)
	addColumnPattern     = regexp.MustCompile(`(?i)^ALTER\s+TABLE\s+(\S+)\s+ADD\s+COLUMN\s+(\S+)\b`)
)

type migration struct {
	version int
	name    string
	sql     string
}

// runEmbeddedMigrations applies every unapplied *.sql file from the embedded
// migrations directory in version order, recording each in
// schema_migrations. Statements are applied one migration per transaction.
func runEmbeddedMigrations(database *gorm.DB) error {
	const migrationsTable = `
CREATE TABLE IF NOT EXISTS schema_migrations (
  version TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);`
	if err := database.Exec(migrationsTable).Error; err != nil {
		return fmt.Errorf("create schema_migrations table: %w", err)
	}

	pending, err := readEmbeddedMigrations()
	if err != nil {
		return err
	}

	applied, err := appliedVersions(database)
	if err != nil {
		return err
	}

	for _, entry := range pending {
		if _, done := applied[strconv.Itoa(entry.version)]; done {
			continue
		}
		if err := applyMigration(database, entry); err != nil {
			return err
		}
	}
	return nil
}

func readEmbeddedMigrations() ([]migration, error) {
	entries, err := fs.ReadDir(migrations.Files, ".")
	if err != nil {
		return nil, fmt.Errorf("read embedded migrations: %w", err)
	}

	found := make([]migration, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		matches := migrationNamePattern.FindStringSubmatch(entry.Name())
		if len(matches) != 2 {
			continue
		}
		version, err := strconv.Atoi(matches[1])
		if err != nil {
			return nil, fmt.Errorf("parse migration version from %s: %w", entry.Name(), err)
		}
		raw, err := fs.ReadFile(migrations.Files, entry.Name())
		if err != nil {
			return nil, fmt.Errorf("read migration %s: %w", entry.Name(), err)
		}
		found = append(found, migration{version: version, name: entry.Name(), sql: string(raw)})
	}

	sort.Slice(found, func(i, j int) bool { return found[i].version < found[j].version })
	for index := 1; index < len(found); index++ {
		if found[index].version == found[index-1].version {
			return nil, fmt.Errorf("duplicate migration version %d in %s and %s",
				found[index].version, found[index-1].name, found[index].name)
		}
	}
	return found, nil
}

type migrationVersionRow struct {
	Version string `gorm:"column:version"`
}

func appliedVersions(database *gorm.DB) (map[string]struct{}, error) {
	rows := make([]migrationVersionRow, 0)
	if err := database.Raw(`SELECT version FROM schema_migrations`).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("load applied migration versions: %w", err)
	}
	versions := make(map[string]struct{}, len(rows))
	for _, row := range rows {
		versions[row.Version] = struct{}{}
	}
	return versions, nil
}

func applyMigration(database *gorm.DB, entry migration) error {
	return database.Transaction(func(tx *gorm.DB) error {
		for _, statement := range splitStatements(entry.sql) {
			// ADD COLUMN statements are skipped when the column already
			// exists, so databases predating the migration table converge.
			if redundant, err := isRedundantAddColumn(tx, statement); err != nil {
				return fmt.Errorf("inspect migration %s: %w", entry.name, err)
			} else if redundant {
				continue
			}
			if err := tx.Exec(statement).Error; err != nil {
				return fmt.Errorf("execute migration %s: %w", entry.name, err)
			}
		}

		if err := tx.Exec(
			`INSERT INTO schema_migrations(version, name) VALUES (?, ?)`,
			strconv.Itoa(entry.version), entry.name,
		).Error; err != nil {
			return fmt.Errorf("record migration %s: %w", entry.name, err)
		}
		return nil
	})
}

func splitStatements(sqlText string) []string {
	parts := strings.Split(sqlText, ";")
	statements := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			statements = append(statements, trimmed)
		}
	}
	return statements
}

type tableColumnRow struct {
	Name string `gorm:"column:name"`
}

func isRedundantAddColumn(database *gorm.DB, statement string) (bool, error) {
	matches := addColumnPattern.FindStringSubmatch(statement)
	if len(matches) != 3 {
		return false, nil
	}
	table := strings.Trim(matches[1], "\"`[]")
	column := strings.Trim(matches[2], "\"`[]")

	rows := make([]tableColumnRow, 0)
	query := fmt.Sprintf(`PRAGMA table_info("%s")`, strings.ReplaceAll(table, `"`, `""`))
	if err := database.Raw(query).Scan(&rows).Error; err != nil {
		return false, fmt.Errorf("load table_info for %s: %w", table, err)
	}
	for _, row := range rows {
		if strings.EqualFold(strings.TrimSpace(row.Name), column) {
			return true, nil
		}
	}
	return false, nil
}
