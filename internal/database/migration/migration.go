package migration

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"
)

type migrationStep struct {
	Name string
	SQL  string
}

// sentinelTable is the last table created by steps; its presence means the schema is in place.
const sentinelTable = "public.profiles"

var steps = []migrationStep{
	{
		Name: "create_extension_uuid_ossp",
		SQL:  `CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	},
	{
		Name: "create_table_assets",
		SQL: `CREATE TABLE IF NOT EXISTS assets (
  id           UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  filename     TEXT        NOT NULL,
  storage_path TEXT        NOT NULL UNIQUE,
  size         BIGINT      NOT NULL CHECK (size >= 0),
  content_type TEXT        NOT NULL,
  created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_contact_messages",
		SQL: `CREATE TABLE IF NOT EXISTS contact_messages (
  id           UUID          PRIMARY KEY DEFAULT uuid_generate_v4(),
  name         VARCHAR(250)  NOT NULL,
  email        VARCHAR(250)  NOT NULL,
  phone        VARCHAR(128),
  subject      VARCHAR(250),
  message      VARCHAR(2000) NOT NULL,
  submitted_at TIMESTAMPTZ   NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_educations",
		SQL: `CREATE TABLE IF NOT EXISTS educations (
  id          UUID         PRIMARY KEY DEFAULT uuid_generate_v4(),
  degree      VARCHAR(250),
  school      VARCHAR(250),
  major       VARCHAR(250),
  minor       VARCHAR(250),
  focus_area  VARCHAR(250),
  is_active   BOOLEAN      NOT NULL DEFAULT TRUE,
  date        DATE,
  year        VARCHAR(100),
  description VARCHAR(250)
);`,
	},
	{
		Name: "create_table_skills",
		SQL: `CREATE TABLE IF NOT EXISTS skills (
  id            UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  name          VARCHAR(25),
  image_key     TEXT,
  rating        INTEGER     DEFAULT 4,
  is_key_skill  BOOLEAN     NOT NULL DEFAULT FALSE,
  is_hard_skill BOOLEAN     NOT NULL DEFAULT FALSE,
  is_soft_skill BOOLEAN     NOT NULL DEFAULT FALSE,
  is_active     BOOLEAN     NOT NULL DEFAULT TRUE,
  category      VARCHAR(70)
);`,
	},
	{
		Name: "create_table_courses",
		SQL: `CREATE TABLE IF NOT EXISTS courses (
  id          UUID         PRIMARY KEY DEFAULT uuid_generate_v4(),
  name        VARCHAR(100),
  is_active   BOOLEAN      NOT NULL DEFAULT TRUE,
  date        DATE,
  description VARCHAR(250)
);`,
	},
	{
		Name: "create_table_leaderships",
		SQL: `CREATE TABLE IF NOT EXISTS leaderships (
  id          UUID         PRIMARY KEY DEFAULT uuid_generate_v4(),
  name        VARCHAR(500),
  is_active   BOOLEAN      NOT NULL DEFAULT TRUE,
  date        DATE,
  description TEXT         NOT NULL DEFAULT ''
);`,
	},
	{
		Name: "create_table_my_contacts",
		SQL: `CREATE TABLE IF NOT EXISTS my_contacts (
  id        UUID         PRIMARY KEY DEFAULT uuid_generate_v4(),
  name      VARCHAR(250),
  data      VARCHAR(250),
  icon_key  TEXT,
  category  VARCHAR(250),
  is_active BOOLEAN      NOT NULL DEFAULT TRUE,
  url       VARCHAR(200)
);`,
	},
	{
		Name: "create_table_portfolios",
		SQL: `CREATE TABLE IF NOT EXISTS portfolios (
  id              UUID         PRIMARY KEY DEFAULT uuid_generate_v4(),
  name            VARCHAR(250),
  image_key       TEXT,
  is_active       BOOLEAN      NOT NULL DEFAULT TRUE,
  slug            VARCHAR(300) NOT NULL DEFAULT '',
  description     VARCHAR(250),
  body            TEXT         NOT NULL DEFAULT '',
  date            DATE,
  is_side_project BOOLEAN,
  for_resume      BOOLEAN      NOT NULL DEFAULT FALSE,
  url             VARCHAR(200),
  year            VARCHAR(70),
  technology      JSONB
);`,
	},
	{
		Name: "create_index_portfolios_slug",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_portfolios_slug ON portfolios (slug);`,
	},
	{
		Name: "create_table_experiences",
		SQL: `CREATE TABLE IF NOT EXISTS experiences (
  id           UUID         PRIMARY KEY DEFAULT uuid_generate_v4(),
  job_title    VARCHAR(250) NOT NULL,
  company_name VARCHAR(250) NOT NULL,
  location     VARCHAR(250),
  start_date   DATE         NOT NULL,
  end_date     DATE,
  is_current   BOOLEAN      NOT NULL DEFAULT FALSE,
  active       BOOLEAN      NOT NULL DEFAULT FALSE,
  description  TEXT         NOT NULL DEFAULT ''
);`,
	},
	{
		Name: "create_table_feedbacks",
		SQL: `CREATE TABLE IF NOT EXISTS feedbacks (
  id            UUID         PRIMARY KEY DEFAULT uuid_generate_v4(),
  name          VARCHAR(250),
  role          VARCHAR(250),
  quote         VARCHAR(250),
  thumbnail_key TEXT,
  is_active     BOOLEAN      NOT NULL DEFAULT TRUE
);`,
	},
	{
		Name: "create_table_project_images",
		SQL: `CREATE TABLE IF NOT EXISTS project_images (
  id           UUID         PRIMARY KEY DEFAULT uuid_generate_v4(),
  portfolio_id UUID         NOT NULL REFERENCES portfolios (id) ON DELETE CASCADE,
  name         VARCHAR(250),
  url          VARCHAR(200),
  image_key    TEXT,
  is_image     BOOLEAN      NOT NULL DEFAULT TRUE
);`,
	},
	{
		Name: "create_table_videos",
		SQL: `CREATE TABLE IF NOT EXISTS videos (
  id          UUID         PRIMARY KEY DEFAULT uuid_generate_v4(),
  name        VARCHAR(100) NOT NULL,
  url         VARCHAR(200),
  video_key   TEXT,
  uploaded_at TIMESTAMPTZ  NOT NULL DEFAULT now(),
  is_video    BOOLEAN      NOT NULL DEFAULT TRUE
);`,
	},
	{
		Name: "create_table_profiles",
		SQL: `CREATE TABLE IF NOT EXISTS profiles (
  id                        UUID         PRIMARY KEY DEFAULT uuid_generate_v4(),
  first_name                VARCHAR(150) NOT NULL DEFAULT '',
  last_name                 VARCHAR(150) NOT NULL DEFAULT '',
  email                     VARCHAR(254) NOT NULL DEFAULT '',
  title                     VARCHAR(250),
  biography                 TEXT         NOT NULL DEFAULT '',
  avatar_key                TEXT,
  resume_key                TEXT,
  resume_password_hash      VARCHAR(128) NOT NULL DEFAULT '',
  work_key                  TEXT,
  welcome_summary           TEXT         NOT NULL DEFAULT '',
  intro_summary             TEXT         NOT NULL DEFAULT '',
  resume_summary            TEXT         NOT NULL DEFAULT '',
  academic_projects_summary TEXT         NOT NULL DEFAULT '',
  side_projects_summary     TEXT         NOT NULL DEFAULT '',
  contact_summary           TEXT         NOT NULL DEFAULT '',
  created_at                TIMESTAMPTZ  NOT NULL DEFAULT now(),
  updated_at                TIMESTAMPTZ  NOT NULL DEFAULT now()
);`,
	},
}

// EnsureMigrated checks whether the sentinel table exists and runs every step if it doesn't.
func EnsureMigrated(ctx context.Context, db *sql.DB, dbHost string) error {
	start := time.Now()
	log := slog.Default().With("component", "database", "db_host", dbHost)

	log.Info("checking schema", "event", "db_migration_check", "status", "starting")

	var exists bool
	query := fmt.Sprintf("SELECT to_regclass('%s') IS NOT NULL", sentinelTable)
	if err := db.QueryRowContext(ctx, query).Scan(&exists); err != nil {
		log.Error("failed to check sentinel table",
			"event", "db_migration_failed",
			"status", "error",
			"error_message", err.Error(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		log.Info("schema already exists, skipping migration",
			"event", "db_migration_skip",
			"status", "success",
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return nil
	}

	log.Info("running migration", "event", "db_migration_start", "status", "in_progress")

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			log.Error("migration step failed",
				"event", "db_migration_failed",
				"status", "error",
				"migration_step", step.Name,
				"error_message", err.Error(),
				"duration_ms", time.Since(start).Milliseconds(),
				"step_duration_ms", time.Since(stepStart).Milliseconds(),
			)
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		log.Debug("migration step applied",
			"event", "db_migration_step",
			"status", "success",
			"migration_step", step.Name,
			"step_duration_ms", time.Since(stepStart).Milliseconds(),
		)
	}

	log.Info("migration complete",
		"event", "db_migration_success",
		"status", "success",
		"steps", len(steps),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}
