package store

// schema is applied on every open; all statements are idempotent.
const schema = `
CREATE TABLE IF NOT EXISTS projects (
	id               TEXT PRIMARY KEY,
	name             TEXT NOT NULL,
	client           TEXT NOT NULL,
	developer        TEXT NOT NULL,
	manager          TEXT NOT NULL DEFAULT '',
	start_date       TEXT NOT NULL,
	end_date         TEXT NOT NULL,
	status           TEXT NOT NULL DEFAULT 'active',
	description      TEXT NOT NULL DEFAULT '',
	completed_stages TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS tasks (
	id             TEXT PRIMARY KEY,
	project_id     TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
	title          TEXT NOT NULL,
	description    TEXT NOT NULL DEFAULT '',
	stage          TEXT NOT NULL,
	status         TEXT NOT NULL,
	priority       TEXT NOT NULL,
	assignee       TEXT NOT NULL DEFAULT 'unassigned',
	client_visible INTEGER NOT NULL DEFAULT 0,
	created_at     TEXT NOT NULL,
	updated_at     TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS comments (
	id         TEXT PRIMARY KEY,
	task_id    TEXT NOT NULL REFERENCES tasks(id) ON DELETE CASCADE,
	author     TEXT NOT NULL,
	content    TEXT NOT NULL,
	created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_tasks_project ON tasks(project_id);
CREATE INDEX IF NOT EXISTS idx_comments_task ON comments(task_id);
`
