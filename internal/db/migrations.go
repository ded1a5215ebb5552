package db

import (
	"fmt"

	"gorm.io/gorm"
)

var migrationStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	`CREATE EXTENSION IF NOT EXISTS "pgcrypto";`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'job_status') THEN
			CREATE TYPE job_status AS ENUM ('Upcoming', 'Completed', 'Redo', 'Cancelled');
		END IF;
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'task_status') THEN
			CREATE TYPE task_status AS ENUM ('Pending', 'Completed', 'Redo', 'Cancelled');
		END IF;
	END
	$$;`,
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		email VARCHAR(255) NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		full_name VARCHAR(255) NOT NULL,
		role VARCHAR(32) NOT NULL DEFAULT 'ADMIN',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_users_email ON users (LOWER(email));`,
	`CREATE TABLE IF NOT EXISTS customers (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		name VARCHAR(255) NOT NULL,
		phone VARCHAR(64) NOT NULL DEFAULT '',
		email VARCHAR(255) NOT NULL DEFAULT '',
		address TEXT NOT NULL DEFAULT '',
		region VARCHAR(64) NOT NULL,
		notes TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS employees (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		full_name VARCHAR(255) NOT NULL,
		phone VARCHAR(64) NOT NULL DEFAULT '',
		email VARCHAR(255) NOT NULL DEFAULT '',
		region VARCHAR(64) NOT NULL,
		active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS jobs (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		customer_name VARCHAR(255) NOT NULL,
		phone VARCHAR(64) NOT NULL DEFAULT '',
		address TEXT NOT NULL DEFAULT '',
		region VARCHAR(64) NOT NULL,
		scheduled_date DATE NOT NULL,
		scheduled_time VARCHAR(32) NOT NULL DEFAULT '',
		price NUMERIC(12,2) NOT NULL CHECK (price >= 0),
		cleaner_id UUID REFERENCES employees(id),
		status job_status NOT NULL DEFAULT 'Upcoming',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_jobs_status ON jobs (status);`,
	`CREATE INDEX IF NOT EXISTS idx_jobs_region ON jobs (region);`,
	`CREATE INDEX IF NOT EXISTS idx_jobs_scheduled_date ON jobs (scheduled_date);`,
	`CREATE INDEX IF NOT EXISTS idx_jobs_cleaner_id ON jobs (cleaner_id) WHERE cleaner_id IS NOT NULL;`,
	`CREATE TABLE IF NOT EXISTS tasks (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		job_id UUID NOT NULL REFERENCES jobs(id),
		assigned_to UUID NOT NULL REFERENCES employees(id),
		title VARCHAR(255) NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		due_date DATE NOT NULL,
		priority VARCHAR(16) NOT NULL DEFAULT 'Medium',
		status task_status NOT NULL DEFAULT 'Pending',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_tasks_job_id ON tasks (job_id);`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_assigned_to ON tasks (assigned_to);`,
	`CREATE TABLE IF NOT EXISTS expenses (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		description TEXT NOT NULL,
		category VARCHAR(64) NOT NULL DEFAULT '',
		amount NUMERIC(12,2) NOT NULL CHECK (amount >= 0),
		spent_at DATE NOT NULL,
		created_by_id UUID NOT NULL REFERENCES users(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_expenses_spent_at ON expenses (spent_at);`,
}

func runMigrations(db *gorm.DB) error {
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
