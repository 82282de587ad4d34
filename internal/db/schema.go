package db

import (
	"errors"
	"fmt"
	"io/fs"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/terraincognita07/cyclesight/internal/logger"
	embeddedmigrations "github.com/terraincognita07/cyclesight/migrations"
	"gorm.io/gorm"
)

// ErrCycleSchema reports a database whose cycle tables no longer match what
// the repositories rely on.
var ErrCycleSchema = errors.New("cycle schema mismatch")

var (
	schemaStepName   = regexp.MustCompile(`^(\d+)_[^/]+\.sql$`)
	addColumnPattern = regexp.MustCompile("(?i)^ALTER\\s+TABLE\\s+[\"`\\[]?(\\w+)[\"`\\]]?\\s+ADD\\s+(?:COLUMN\\s+)?[\"`\\[]?(\\w+)")
)

var requiredCycleColumns = map[string][]string{
	"cycles":     {"user_id", "start_date", "cycle_length", "period_start_date", "period_end_date", "current_cycle_day", "status"},
	"daily_logs": {"user_id", "date", "cycle_day", "flow_intensity", "physical_pain_symptoms", "notes"},
	"tips":       {"title", "content", "cycle_day", "cycle_phase"},
}

// schemaStep is one numbered SQL file, already split into statements.
type schemaStep struct {
	version    int
	file       string
	statements []string
}

func migrateSchema(database *gorm.DB) error {
	if err := runSchemaSteps(database, embeddedmigrations.Files); err != nil {
		return err
	}
	return verifyCycleSchema(database)
}

func runSchemaSteps(database *gorm.DB, files fs.FS) error {
	const versionsTable = `
CREATE TABLE IF NOT EXISTS cyclesight_schema_versions (
  version INTEGER PRIMARY KEY,
  file TEXT NOT NULL,
  applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
)`
	if err := database.Exec(versionsTable).Error; err != nil {
		return fmt.Errorf("create schema versions table: %w", err)
	}

	steps, err := readSchemaSteps(files)
	if err != nil {
		return err
	}
	applied, err := appliedSchemaVersions(database)
	if err != nil {
		return err
	}

	for _, step := range steps {
		if applied[step.version] {
			continue
		}
		if err := database.Transaction(func(tx *gorm.DB) error {
			return runSchemaStep(tx, step)
		}); err != nil {
			return err
		}
		logger.Get().WithFields(logrus.Fields{
			"version": step.version,
			"file":    step.file,
		}).Info("schema step applied")
	}
	return nil
}

func readSchemaSteps(files fs.FS) ([]schemaStep, error) {
	names, err := fs.Glob(files, "*.sql")
	if err != nil {
		return nil, fmt.Errorf("list schema files: %w", err)
	}

	steps := make([]schemaStep, 0, len(names))
	owners := make(map[int]string, len(names))
	for _, name := range names {
		match := schemaStepName.FindStringSubmatch(name)
		if match == nil {
			continue
		}
		version, err := strconv.Atoi(match[1])
		if err != nil {
			return nil, fmt.Errorf("schema file %s: %w", name, err)
		}
		if owner, taken := owners[version]; taken {
			return nil, fmt.Errorf("schema version %d claimed by both %s and %s", version, owner, name)
		}
		owners[version] = name

		body, err := fs.ReadFile(files, name)
		if err != nil {
			return nil, fmt.Errorf("read schema file %s: %w", name, err)
		}
		statements := sqlStatements(string(body))
		if len(statements) == 0 {
			return nil, fmt.Errorf("schema file %s has no statements", name)
		}
		steps = append(steps, schemaStep{version: version, file: name, statements: statements})
	}

	sort.Slice(steps, func(i, j int) bool { return steps[i].version < steps[j].version })
	return steps, nil
}

func appliedSchemaVersions(database *gorm.DB) (map[int]bool, error) {
	var versions []int
	if err := database.Raw(`SELECT version FROM cyclesight_schema_versions`).Scan(&versions).Error; err != nil {
		return nil, fmt.Errorf("read applied schema versions: %w", err)
	}
	applied := make(map[int]bool, len(versions))
	for _, version := range versions {
		applied[version] = true
	}
	return applied, nil
}

func runSchemaStep(tx *gorm.DB, step schemaStep) error {
	for _, statement := range step.statements {
		// Databases patched by hand may already carry an added column.
		if match := addColumnPattern.FindStringSubmatch(statement); match != nil {
			present, err := hasColumn(tx, match[1], match[2])
			if err != nil {
				return fmt.Errorf("schema step %s: %w", step.file, err)
			}
			if present {
				continue
			}
		}
		if err := tx.Exec(statement).Error; err != nil {
			return fmt.Errorf("schema step %s: %q: %w", step.file, statement, err)
		}
	}
	if err := tx.Exec(
		`INSERT INTO cyclesight_schema_versions (version, file) VALUES (?, ?)`,
		step.version, step.file,
	).Error; err != nil {
		return fmt.Errorf("record schema step %s: %w", step.file, err)
	}
	return nil
}

// sqlStatements splits on semicolons after dropping "--" comment lines.
func sqlStatements(body string) []string {
	lines := strings.Split(body, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if !strings.HasPrefix(strings.TrimSpace(line), "--") {
			kept = append(kept, line)
		}
	}

	statements := make([]string, 0)
	for _, part := range strings.Split(strings.Join(kept, "\n"), ";") {
		if statement := strings.TrimSpace(part); statement != "" {
			statements = append(statements, statement)
		}
	}
	return statements
}

func hasColumn(database *gorm.DB, table string, column string) (bool, error) {
	var names []string
	if err := database.Raw(`SELECT name FROM pragma_table_info(?)`, table).Scan(&names).Error; err != nil {
		return false, fmt.Errorf("read columns of %s: %w", table, err)
	}
	for _, name := range names {
		if strings.EqualFold(name, column) {
			return true, nil
		}
	}
	return false, nil
}

// verifyCycleSchema checks the columns the repositories query and the
// positive cycle length guard on the cycles table.
func verifyCycleSchema(database *gorm.DB) error {
	for table, columns := range requiredCycleColumns {
		for _, column := range columns {
			present, err := hasColumn(database, table, column)
			if err != nil {
				return err
			}
			if !present {
				return fmt.Errorf("%w: %s.%s is missing", ErrCycleSchema, table, column)
			}
		}
	}

	var definition string
	if err := database.Raw(
		`SELECT sql FROM sqlite_master WHERE type = 'table' AND name = 'cycles'`,
	).Scan(&definition).Error; err != nil {
		return fmt.Errorf("read cycles definition: %w", err)
	}
	compact := strings.ToLower(strings.Join(strings.Fields(definition), ""))
	if !strings.Contains(compact, "check(cycle_length>0)") {
		return fmt.Errorf("%w: cycles.cycle_length lost its positive check", ErrCycleSchema)
	}
	return nil
}
