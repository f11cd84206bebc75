package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrDuplicateUsername = errors.New("username already taken")
	ErrDuplicateEmail    = errors.New("email already registered")
	ErrSessionExpired    = errors.New("session expired")
)

type User struct {
	ID            string `db:"id" json:"id"`
	Username      string `db:"username" json:"username"`
	Email         string `db:"email" json:"email"`
	PasswordHash  string `db:"password_hash" json:"-"`
	DateOfBirth   string `db:"date_of_birth" json:"date_of_birth,omitempty"`
	Gender        string `db:"gender" json:"gender,omitempty"`
	ProfilePicURL string `db:"profile_pic_url" json:"profile_pic_url,omitempty"`
	Theme         string `db:"theme" json:"theme,omitempty"`
}

// ProfileUpdate carries the only user fields that may change after
// registration. Username and password have their own paths.
type ProfileUpdate struct {
	Email         string `json:"email"`
	DateOfBirth   string `json:"date_of_birth"`
	Gender        string `json:"gender"`
	ProfilePicURL string `json:"profile_pic_url"`
	Theme         string `json:"theme"`
}

type Session struct {
	Token     string    `db:"token" json:"token"`
	UserID    string    `db:"user_id" json:"user_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	ExpiresAt time.Time `db:"expires_at" json:"expires_at"`
}

type Search struct {
	ID               string    `db:"id" json:"id"`
	UserID           string    `db:"user_id" json:"user_id"`
	ProblemStatement string    `db:"problem_statement" json:"problem_statement"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
}

// SearchSummary is one history row with its saved-solution count.
type SearchSummary struct {
	Search
	SolutionCount int `db:"solution_count" json:"solution_count"`
}

type SavedSolution struct {
	ID           string          `db:"id" json:"id"`
	UserID       string          `db:"user_id" json:"user_id"`
	SearchID     string          `db:"search_id" json:"search_id"`
	SolutionData json.RawMessage `db:"solution_data" json:"solution_data"`
	CreatedAt    time.Time       `db:"created_at" json:"created_at"`
}

// API is the persistence surface the HTTP layer depends on.
type API interface {
	CreateUser(ctx context.Context, username, email, passwordHash string) (User, error)
	UserByID(ctx context.Context, id string) (User, error)
	UserByUsername(ctx context.Context, username string) (User, error)
	UpdateProfile(ctx context.Context, userID string, upd ProfileUpdate) (User, error)
	UpdatePasswordHash(ctx context.Context, userID, passwordHash string) error
	DeleteUser(ctx context.Context, userID string) error

	CreateSession(ctx context.Context, userID string, ttl time.Duration) (Session, error)
	SessionUser(ctx context.Context, token string) (User, error)
	DeleteSession(ctx context.Context, token string) error

	SaveSearch(ctx context.Context, userID, problemStatement string) (Search, error)
	SearchByID(ctx context.Context, userID, searchID string) (Search, error)
	SearchHistory(ctx context.Context, userID string) ([]SearchSummary, error)
	SaveSolution(ctx context.Context, userID, searchID string, data json.RawMessage) (SavedSolution, error)
	SolutionsByUser(ctx context.Context, userID string) ([]SavedSolution, error)

	Close() error
}

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id              TEXT PRIMARY KEY,
	username        TEXT NOT NULL UNIQUE,
	email           TEXT NOT NULL UNIQUE,
	password_hash   TEXT NOT NULL,
	date_of_birth   TEXT NOT NULL DEFAULT '',
	gender          TEXT NOT NULL DEFAULT '',
	profile_pic_url TEXT NOT NULL DEFAULT '',
	theme           TEXT NOT NULL DEFAULT 'light'
);

CREATE TABLE IF NOT EXISTS sessions (
	token      TEXT PRIMARY KEY,
	user_id    TEXT NOT NULL,
	created_at TEXT NOT NULL,
	expires_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS searches (
	id                TEXT PRIMARY KEY,
	user_id           TEXT NOT NULL,
	problem_statement TEXT NOT NULL,
	created_at        TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS saved_solutions (
	id            TEXT PRIMARY KEY,
	user_id       TEXT NOT NULL,
	search_id     TEXT NOT NULL,
	solution_data TEXT NOT NULL,
	created_at    TEXT NOT NULL
);
`

// SQLiteStore implements API on a single-connection SQLite database.
type SQLiteStore struct {
	db *sqlx.DB
}

var _ API = (*SQLiteStore)(nil)

func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sqlx.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error { return s.db.Close() }

func (s *SQLiteStore) CreateUser(ctx context.Context, username, email, passwordHash string) (User, error) {
	var n int
	if err := s.db.GetContext(ctx, &n, "SELECT COUNT(*) FROM users WHERE username = ?", username); err != nil {
		return User{}, fmt.Errorf("check username: %w", err)
	}
	if n > 0 {
		return User{}, ErrDuplicateUsername
	}
	if err := s.db.GetContext(ctx, &n, "SELECT COUNT(*) FROM users WHERE email = ?", email); err != nil {
		return User{}, fmt.Errorf("check email: %w", err)
	}
	if n > 0 {
		return User{}, ErrDuplicateEmail
	}
	u := User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		Theme:        "light",
	}
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO users (id, username, email, password_hash, theme) VALUES (?, ?, ?, ?, ?)",
		u.ID, u.Username, u.Email, u.PasswordHash, u.Theme)
	if err != nil {
		return User{}, fmt.Errorf("insert user: %w", err)
	}
	return u, nil
}

func (s *SQLiteStore) UserByID(ctx context.Context, id string) (User, error) {
	var u User
	err := s.db.GetContext(ctx, &u, "SELECT * FROM users WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, ErrNotFound
	}
	if err != nil {
		return User{}, fmt.Errorf("select user: %w", err)
	}
	return u, nil
}

func (s *SQLiteStore) UserByUsername(ctx context.Context, username string) (User, error) {
	var u User
	err := s.db.GetContext(ctx, &u, "SELECT * FROM users WHERE username = ?", username)
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, ErrNotFound
	}
	if err != nil {
		return User{}, fmt.Errorf("select user: %w", err)
	}
	return u, nil
}

func (s *SQLiteStore) UpdateProfile(ctx context.Context, userID string, upd ProfileUpdate) (User, error) {
	if upd.Email != "" {
		var n int
		if err := s.db.GetContext(ctx, &n, "SELECT COUNT(*) FROM users WHERE email = ? AND id != ?", upd.Email, userID); err != nil {
			return User{}, fmt.Errorf("check email: %w", err)
		}
		if n > 0 {
			return User{}, ErrDuplicateEmail
		}
	}
	res, err := s.db.ExecContext(ctx, `
		UPDATE users SET
			email           = COALESCE(NULLIF(?, ''), email),
			date_of_birth   = COALESCE(NULLIF(?, ''), date_of_birth),
			gender          = COALESCE(NULLIF(?, ''), gender),
			profile_pic_url = COALESCE(NULLIF(?, ''), profile_pic_url),
			theme           = COALESCE(NULLIF(?, ''), theme)
		WHERE id = ?`,
		upd.Email, upd.DateOfBirth, upd.Gender, upd.ProfilePicURL, upd.Theme, userID)
	if err != nil {
		return User{}, fmt.Errorf("update profile: %w", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return User{}, ErrNotFound
	}
	return s.UserByID(ctx, userID)
}

func (s *SQLiteStore) UpdatePasswordHash(ctx context.Context, userID, passwordHash string) error {
	res, err := s.db.ExecContext(ctx, "UPDATE users SET password_hash = ? WHERE id = ?", passwordHash, userID)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteUser removes the user and everything hanging off it. Solutions go
// first, then searches, then sessions, then the user row itself.
func (s *SQLiteStore) DeleteUser(ctx context.Context, userID string) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin delete: %w", err)
	}
	defer tx.Rollback()
	for _, stmt := range []string{
		"DELETE FROM saved_solutions WHERE user_id = ?",
		"DELETE FROM searches WHERE user_id = ?",
		"DELETE FROM sessions WHERE user_id = ?",
	} {
		if _, err := tx.ExecContext(ctx, stmt, userID); err != nil {
			return fmt.Errorf("delete user data: %w", err)
		}
	}
	res, err := tx.ExecContext(ctx, "DELETE FROM users WHERE id = ?", userID)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrNotFound
	}
	return tx.Commit()
}

func (s *SQLiteStore) CreateSession(ctx context.Context, userID string, ttl time.Duration) (Session, error) {
	now := time.Now().UTC()
	sess := Session{
		Token:     uuid.NewString(),
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO sessions (token, user_id, created_at, expires_at) VALUES (?, ?, ?, ?)",
		sess.Token, sess.UserID, sess.CreatedAt.Format(time.RFC3339), sess.ExpiresAt.Format(time.RFC3339))
	if err != nil {
		return Session{}, fmt.Errorf("insert session: %w", err)
	}
	return sess, nil
}

func (s *SQLiteStore) SessionUser(ctx context.Context, token string) (User, error) {
	var row struct {
		UserID    string `db:"user_id"`
		ExpiresAt string `db:"expires_at"`
	}
	err := s.db.GetContext(ctx, &row, "SELECT user_id, expires_at FROM sessions WHERE token = ?", token)
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, ErrNotFound
	}
	if err != nil {
		return User{}, fmt.Errorf("select session: %w", err)
	}
	expires, err := time.Parse(time.RFC3339, row.ExpiresAt)
	if err != nil {
		return User{}, fmt.Errorf("parse session expiry: %w", err)
	}
	if time.Now().UTC().After(expires) {
		_, _ = s.db.ExecContext(ctx, "DELETE FROM sessions WHERE token = ?", token)
		return User{}, ErrSessionExpired
	}
	return s.UserByID(ctx, row.UserID)
}

func (s *SQLiteStore) DeleteSession(ctx context.Context, token string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM sessions WHERE token = ?", token)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (s *SQLiteStore) SaveSearch(ctx context.Context, userID, problemStatement string) (Search, error) {
	rec := Search{
		ID:               uuid.NewString(),
		UserID:           userID,
		ProblemStatement: problemStatement,
		CreatedAt:        time.Now().UTC(),
	}
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO searches (id, user_id, problem_statement, created_at) VALUES (?, ?, ?, ?)",
		rec.ID, rec.UserID, rec.ProblemStatement, rec.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return Search{}, fmt.Errorf("insert search: %w", err)
	}
	return rec, nil
}

func (s *SQLiteStore) SearchByID(ctx context.Context, userID, searchID string) (Search, error) {
	var row struct {
		ID               string `db:"id"`
		UserID           string `db:"user_id"`
		ProblemStatement string `db:"problem_statement"`
		CreatedAt        string `db:"created_at"`
	}
	err := s.db.GetContext(ctx, &row, "SELECT * FROM searches WHERE id = ? AND user_id = ?", searchID, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return Search{}, ErrNotFound
	}
	if err != nil {
		return Search{}, fmt.Errorf("select search: %w", err)
	}
	created, _ := time.Parse(time.RFC3339, row.CreatedAt)
	return Search{ID: row.ID, UserID: row.UserID, ProblemStatement: row.ProblemStatement, CreatedAt: created}, nil
}

func (s *SQLiteStore) SearchHistory(ctx context.Context, userID string) ([]SearchSummary, error) {
	rows, err := s.db.QueryxContext(ctx, `
		SELECT s.id, s.user_id, s.problem_statement, s.created_at,
		       COUNT(sol.id) AS solution_count
		FROM searches s
		LEFT JOIN saved_solutions sol ON sol.search_id = s.id
		WHERE s.user_id = ?
		GROUP BY s.id
		ORDER BY s.created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("select history: %w", err)
	}
	defer rows.Close()
	var out []SearchSummary
	for rows.Next() {
		var id, uid, problem, created string
		var count int
		if err := rows.Scan(&id, &uid, &problem, &created, &count); err != nil {
			return nil, fmt.Errorf("scan history: %w", err)
		}
		ts, _ := time.Parse(time.RFC3339, created)
		out = append(out, SearchSummary{
			Search:        Search{ID: id, UserID: uid, ProblemStatement: problem, CreatedAt: ts},
			SolutionCount: count,
		})
	}
	return out, rows.Err()
}

func (s *SQLiteStore) SaveSolution(ctx context.Context, userID, searchID string, data json.RawMessage) (SavedSolution, error) {
	if _, err := s.SearchByID(ctx, userID, searchID); err != nil {
		return SavedSolution{}, err
	}
	rec := SavedSolution{
		ID:           uuid.NewString(),
		UserID:       userID,
		SearchID:     searchID,
		SolutionData: data,
		CreatedAt:    time.Now().UTC(),
	}
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO saved_solutions (id, user_id, search_id, solution_data, created_at) VALUES (?, ?, ?, ?, ?)",
		rec.ID, rec.UserID, rec.SearchID, string(rec.SolutionData), rec.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return SavedSolution{}, fmt.Errorf("insert solution: %w", err)
	}
	return rec, nil
}

func (s *SQLiteStore) SolutionsByUser(ctx context.Context, userID string) ([]SavedSolution, error) {
	rows, err := s.db.QueryxContext(ctx,
		"SELECT id, user_id, search_id, solution_data, created_at FROM saved_solutions WHERE user_id = ? ORDER BY created_at DESC", userID)
	if err != nil {
		return nil, fmt.Errorf("select solutions: %w", err)
	}
	defer rows.Close()
	var out []SavedSolution
	for rows.Next() {
		var id, uid, sid, data, created string
		if err := rows.Scan(&id, &uid, &sid, &data, &created); err != nil {
			return nil, fmt.Errorf("scan solution: %w", err)
		}
		ts, _ := time.Parse(time.RFC3339, created)
		out = append(out, SavedSolution{
			ID: id, UserID: uid, SearchID: sid,
			SolutionData: json.RawMessage(data),
			CreatedAt:    ts,
		})
	}
	return out, rows.Err()
}
