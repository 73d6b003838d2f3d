package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createSkillTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE skills (
		id TEXT PRIMARY KEY,
		category TEXT NOT NULL,
		skills TEXT,
		display_order INTEGER NOT NULL DEFAULT 0,
		is_visible BOOLEAN NOT NULL,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createProjectTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE projects (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT NOT NULL,
		tech_stack TEXT,
		github_link TEXT,
		live_link TEXT,
		image_urls TEXT,
		is_published BOOLEAN NOT NULL,
		display_order INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createEducationTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE education (
		id TEXT PRIMARY KEY,
		degree TEXT NOT NULL,
		institution TEXT NOT NULL,
		department TEXT,
		year TEXT NOT NULL,
		grade TEXT,
		description TEXT,
		display_order INTEGER NOT NULL DEFAULT 0,
		is_visible BOOLEAN NOT NULL,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createExperienceTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE experience (
		id TEXT PRIMARY KEY,
		role TEXT NOT NULL,
		company TEXT NOT NULL,
		duration TEXT NOT NULL,
		description TEXT,
		display_order INTEGER NOT NULL DEFAULT 0,
		is_visible BOOLEAN NOT NULL,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createCertificateTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE certificates (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		provider TEXT NOT NULL,
		year TEXT NOT NULL,
		certificate_url TEXT,
		is_visible BOOLEAN NOT NULL,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createMessageTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE messages (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		message TEXT NOT NULL,
		is_read BOOLEAN NOT NULL,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createProfileTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE profiles (
		id TEXT PRIMARY KEY,
		slot INTEGER NOT NULL UNIQUE,
		name TEXT NOT NULL,
		title TEXT NOT NULL,
		location TEXT NOT NULL,
		about TEXT NOT NULL,
		email TEXT NOT NULL,
		phone TEXT,
		github TEXT,
		linkedin TEXT,
		resume_url TEXT,
		image_url TEXT,
		favicon TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createAdminTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE admins (
		id TEXT PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}
