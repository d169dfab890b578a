package store

const SQLiteSchema = `
CREATE TABLE IF NOT EXISTS ideas (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	description TEXT NOT NULL,
	type TEXT NOT NULL,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS prompts (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	language TEXT NOT NULL,
	type TEXT NOT NULL,
	content TEXT NOT NULL,
	likes INTEGER NOT NULL DEFAULT 0,
	dislikes INTEGER NOT NULL DEFAULT 0,
	idea_id INTEGER,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS wizards (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	idea_id INTEGER NOT NULL,
	prompt_id INTEGER NOT NULL,
	status TEXT NOT NULL DEFAULT 'pending',
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS weather_queries (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	wizard_id INTEGER NOT NULL,
	status TEXT NOT NULL,
	request TEXT,  -- JSON
	response TEXT, -- JSON
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_weather_queries_wizard ON weather_queries(wizard_id, created_at);

CREATE TABLE IF NOT EXISTS scenes (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	wizard_id INTEGER NOT NULL,
	type TEXT NOT NULL,
	data TEXT NOT NULL, -- JSON
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_scenes_wizard ON scenes(wizard_id, created_at);

CREATE TABLE IF NOT EXISTS render_queue (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	wizard_id INTEGER NOT NULL,
	type TEXT NOT NULL,
	status TEXT NOT NULL DEFAULT 'pending',
	error TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_render_queue_status ON render_queue(status, created_at);

CREATE TABLE IF NOT EXISTS videos (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	wizard_id INTEGER,
	title TEXT NOT NULL,
	status TEXT NOT NULL,
	file_path TEXT,
	duration REAL,
	format TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_videos_wizard ON videos(wizard_id, created_at);
`

// MySQLSchema mirrors SQLiteSchema. MySQL has no CREATE INDEX IF NOT EXISTS,
// so indexes are declared inline.
const MySQLSchema = `
CREATE TABLE IF NOT EXISTS ideas (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	description TEXT NOT NULL,
	type VARCHAR(64) NOT NULL,
	created_at DATETIME(6) DEFAULT CURRENT_TIMESTAMP(6)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;

CREATE TABLE IF NOT EXISTS prompts (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	language VARCHAR(32) NOT NULL,
	type VARCHAR(64) NOT NULL,
	content TEXT NOT NULL,
	likes INT NOT NULL DEFAULT 0,
	dislikes INT NOT NULL DEFAULT 0,
	idea_id BIGINT NULL,
	created_at DATETIME(6) DEFAULT CURRENT_TIMESTAMP(6)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;

CREATE TABLE IF NOT EXISTS wizards (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	idea_id BIGINT NOT NULL,
	prompt_id BIGINT NOT NULL,
	status VARCHAR(32) NOT NULL DEFAULT 'pending',
	created_at DATETIME(6) DEFAULT CURRENT_TIMESTAMP(6)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;

CREATE TABLE IF NOT EXISTS weather_queries (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	wizard_id BIGINT NOT NULL,
	status VARCHAR(32) NOT NULL,
	request JSON NULL,
	response JSON NULL,
	created_at DATETIME(6) DEFAULT CURRENT_TIMESTAMP(6),
	INDEX idx_weather_queries_wizard (wizard_id, created_at)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;

CREATE TABLE IF NOT EXISTS scenes (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	wizard_id BIGINT NOT NULL,
	type VARCHAR(32) NOT NULL,
	data JSON NOT NULL,
	created_at DATETIME(6) DEFAULT CURRENT_TIMESTAMP(6),
	INDEX idx_scenes_wizard (wizard_id, created_at)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;

CREATE TABLE IF NOT EXISTS render_queue (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	wizard_id BIGINT NOT NULL,
	type VARCHAR(64) NOT NULL,
	status VARCHAR(32) NOT NULL DEFAULT 'pending',
	error TEXT NULL,
	created_at DATETIME(6) DEFAULT CURRENT_TIMESTAMP(6),
	updated_at DATETIME(6) DEFAULT CURRENT_TIMESTAMP(6),
	INDEX idx_render_queue_status (status, created_at)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;

CREATE TABLE IF NOT EXISTS videos (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	wizard_id BIGINT NULL,
	title VARCHAR(255) NOT NULL,
	status VARCHAR(32) NOT NULL,
	file_path VARCHAR(1024) NULL,
	duration DOUBLE NULL,
	format VARCHAR(16) NULL,
	created_at DATETIME(6) DEFAULT CURRENT_TIMESTAMP(6),
	updated_at DATETIME(6) DEFAULT CURRENT_TIMESTAMP(6),
	INDEX idx_videos_wizard (wizard_id, created_at)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;
`
