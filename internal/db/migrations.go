package db

import (
	"database/sql"
	"fmt"
)

// Base schema - uses Snowflake IDs (no AUTOINCREMENT)
const baseSchema = `
CREATE TABLE IF NOT EXISTS settings (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL,
  updated_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS users (
  id INTEGER PRIMARY KEY,
  email TEXT NOT NULL UNIQUE,
  full_name TEXT NOT NULL DEFAULT '',
  password_hash TEXT NOT NULL,
  role TEXT NOT NULL DEFAULT 'user' CHECK (role IN ('user', 'admin')),
  last_login_at TEXT,
  created_at TEXT NOT NULL,
  updated_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS blog_posts (
  id INTEGER PRIMARY KEY,
  user_id INTEGER NOT NULL,
  title TEXT NOT NULL,
  slug TEXT NOT NULL,
  description TEXT NOT NULL DEFAULT '',
  content TEXT NOT NULL DEFAULT '',
  keywords TEXT NOT NULL DEFAULT '[]',
  language TEXT NOT NULL DEFAULT '',
  status TEXT NOT NULL DEFAULT 'draft' CHECK (status IN ('draft', 'published', 'archived')),
  published_at TEXT,
  created_at TEXT NOT NULL,
  updated_at TEXT NOT NULL,
  FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_blog_posts_user_slug ON blog_posts(user_id, slug);
CREATE INDEX IF NOT EXISTS idx_blog_posts_user_status ON blog_posts(user_id, status);

CREATE TABLE IF NOT EXISTS blog_post_translations (
  id INTEGER PRIMARY KEY,
  post_id INTEGER NOT NULL,
  language TEXT NOT NULL,
  title TEXT NOT NULL,
  description TEXT NOT NULL DEFAULT '',
  content TEXT NOT NULL DEFAULT '',
  created_at TEXT NOT NULL,
  updated_at TEXT NOT NULL,
  FOREIGN KEY (post_id) REFERENCES blog_posts(id) ON DELETE CASCADE
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_translations_post_language ON blog_post_translations(post_id, language);

CREATE TABLE IF NOT EXISTS translation_workflows (
  id INTEGER PRIMARY KEY,
  post_id INTEGER NOT NULL,
  target_language TEXT NOT NULL,
  status TEXT NOT NULL DEFAULT 'pending' CHECK (status IN ('pending', 'processing', 'completed', 'failed')),
  attempts INTEGER NOT NULL DEFAULT 0,
  error_message TEXT,
  completed_at TEXT,
  created_at TEXT NOT NULL,
  updated_at TEXT NOT NULL,
  FOREIGN KEY (post_id) REFERENCES blog_posts(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_workflows_status ON translation_workflows(status);
CREATE INDEX IF NOT EXISTS idx_workflows_post ON translation_workflows(post_id);

CREATE TABLE IF NOT EXISTS subscriptions (
  id INTEGER PRIMARY KEY,
  user_id INTEGER NOT NULL UNIQUE,
  plan_id TEXT NOT NULL,
  status TEXT NOT NULL CHECK (status IN ('trialing', 'active', 'past_due', 'canceled', 'incomplete')),
  billing_interval TEXT NOT NULL DEFAULT 'month' CHECK (billing_interval IN ('month', 'year')),
  customer_id TEXT,
  external_id TEXT,
  current_period_end TEXT,
  cancel_at_period_end INTEGER NOT NULL DEFAULT 0,
  created_at TEXT NOT NULL,
  updated_at TEXT NOT NULL,
  FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_subscriptions_customer ON subscriptions(customer_id);

CREATE TABLE IF NOT EXISTS usage_events (
  id INTEGER PRIMARY KEY,
  user_id INTEGER NOT NULL,
  kind TEXT NOT NULL,
  created_at TEXT NOT NULL,
  FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_usage_user_kind ON usage_events(user_id, kind, created_at);

CREATE TABLE IF NOT EXISTS contact_messages (
  id INTEGER PRIMARY KEY,
  name TEXT NOT NULL,
  email TEXT NOT NULL,
  subject TEXT NOT NULL DEFAULT '',
  message TEXT NOT NULL,
  handled INTEGER NOT NULL DEFAULT 0,
  remote_ip TEXT,
  created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS content_projects (
  id INTEGER PRIMARY KEY,
  user_id INTEGER NOT NULL,
  name TEXT NOT NULL,
  seed_keyword TEXT NOT NULL,
  language TEXT NOT NULL DEFAULT 'en',
  country TEXT NOT NULL DEFAULT '',
  step TEXT NOT NULL DEFAULT 'keywords',
  keywords TEXT NOT NULL DEFAULT '[]',
  clusters TEXT NOT NULL DEFAULT '[]',
  selected_clusters TEXT NOT NULL DEFAULT '[]',
  priorities TEXT NOT NULL DEFAULT '{}',
  titles TEXT NOT NULL DEFAULT '[]',
  selected_title TEXT NOT NULL DEFAULT '',
  selected_description TEXT NOT NULL DEFAULT '',
  outline TEXT NOT NULL DEFAULT '[]',
  blog_post_id INTEGER,
  created_at TEXT NOT NULL,
  updated_at TEXT NOT NULL,
  FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE,
  FOREIGN KEY (blog_post_id) REFERENCES blog_posts(id) ON DELETE SET NULL
);

CREATE INDEX IF NOT EXISTS idx_projects_user ON content_projects(user_id);
`

func Migrate(db *sql.DB) error {
	if _, err := db.Exec(baseSchema); err != nil {
		return fmt.Errorf("migrate base schema: %w", err)
	}

	if err := runMigrations(db); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	return nil
}

// columnMigration adds a column to an existing table when it is missing.
type columnMigration struct {
	table  string
	column string
	ddl    string
}

var columnMigrations = []columnMigration{
	// Migration 1: reference URLs used for article generation
	{table: "content_projects", column: "reference_urls", ddl: `ALTER TABLE content_projects ADD COLUMN reference_urls TEXT NOT NULL DEFAULT '[]'`},
	// Migration 2: source URL of posts imported from feeds
	{table: "blog_posts", column: "source_url", ddl: `ALTER TABLE blog_posts ADD COLUMN source_url TEXT`},
}

func runMigrations(db *sql.DB) error {
	for _, m := range columnMigrations {
		var count int
		err := db.QueryRow(
			`SELECT COUNT(*) FROM pragma_table_info(?) WHERE name = ?`,
			m.table, m.column,
		).Scan(&count)
		if err != nil {
			return fmt.Errorf("check %s.%s column: %w", m.table, m.column, err)
		}
		if count == 0 {
			if _, err := db.Exec(m.ddl); err != nil {
				return fmt.Errorf("add %s.%s column: %w", m.table, m.column, err)
			}
		}
	}

	// Imported posts are deduplicated per user by source URL.
	if _, err := db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_blog_posts_user_source ON blog_posts(user_id, source_url) WHERE source_url IS NOT NULL`); err != nil {
		return fmt.Errorf("create idx_blog_posts_user_source: %w", err)
	}

	return nil
}
