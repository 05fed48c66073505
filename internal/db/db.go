// Package db provides PostgreSQL storage for parsed resume records.
//
// The store is a thin collaborator around the parsing pipeline: it persists
// what ParseDocument returns and hands resumes back for scoring. It owns no
// scores; relevance is recomputed per request and never written back.
package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/resume-screener/internal/types"
)

// DB wraps a PostgreSQL connection pool.
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database.
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool.
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// SaveResume stores one parsed resume and returns its ID.
func (db *DB) SaveResume(ctx context.Context, filename string, record *types.ExtractedRecord) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO resumes (filename, name, email, phone, skills)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		filename, record.Name, record.Email, record.Phone, record.SkillsText(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save resume: %w", err)
	}
	return id, nil
}

// GetResume retrieves one resume by ID. Returns nil when not found.
func (db *DB) GetResume(ctx context.Context, id uuid.UUID) (*types.StoredResume, error) {
	var r types.StoredResume
	err := db.pool.QueryRow(ctx,
		`SELECT id, filename, name, email, phone, skills, created_at
		 FROM resumes WHERE id = $1`,
		id,
	).Scan(&r.ID, &r.Filename, &r.Name, &r.Email, &r.Phone, &r.Skills, &r.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get resume: %w", err)
	}
	return &r, nil
}

// ListResumes retrieves stored resumes, optionally filtered by a search query
// matched case-insensitively against name and skills.
func (db *DB) ListResumes(ctx context.Context, query string) ([]types.StoredResume, error) {
	sql := `SELECT id, filename, name, email, phone, skills, created_at
		FROM resumes`
	args := []any{}
	if query != "" {
		sql += ` WHERE name ILIKE $1 OR skills ILIKE $1`
		args = append(args, "%"+query+"%")
	}
	sql += ` ORDER BY created_at ASC`

	rows, err := db.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	defer rows.Close()

	var resumes []types.StoredResume
	for rows.Next() {
		var r types.StoredResume
		if err := rows.Scan(&r.ID, &r.Filename, &r.Name, &r.Email, &r.Phone, &r.Skills, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan resume: %w", err)
		}
		resumes = append(resumes, r)
	}
	return resumes, nil
}

// DeleteResume deletes one resume row and returns its stored filename so the
// caller can remove the uploaded file as well.
func (db *DB) DeleteResume(ctx context.Context, id uuid.UUID) (string, error) {
	var filename string
	err := db.pool.QueryRow(ctx,
		`DELETE FROM resumes WHERE id = $1 RETURNING filename`,
		id,
	).Scan(&filename)
	if err != nil {
		if err == pgx.ErrNoRows {
			return "", fmt.Errorf("resume not found: %s", id)
		}
		return "", fmt.Errorf("failed to delete resume: %w", err)
	}
	return filename, nil
}
