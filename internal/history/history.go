// Package history stores the assessments a user has run.
package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spigell/career-mentor/internal/careers"
	"github.com/spigell/career-mentor/internal/logger"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when a record does not exist for the user.
var ErrNotFound = errors.New("assessment not found")

const schema = `
CREATE TABLE IF NOT EXISTS assessments (
	id            TEXT PRIMARY KEY,
	user_name     TEXT NOT NULL,
	math          REAL NOT NULL,
	science       REAL NOT NULL,
	english       REAL NOT NULL,
	arts          REAL NOT NULL,
	coding        REAL NOT NULL,
	design        REAL NOT NULL,
	leadership    REAL NOT NULL,
	communication REAL NOT NULL,
	interests     TEXT NOT NULL DEFAULT '',
	top3          TEXT NOT NULL,
	created_at    INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_assessments_user_created ON assessments (user_name, created_at);
`

// Entry is one ranked career as stored with an assessment.
type Entry struct {
	Career      string  `json:"career"`
	Probability float64 `json:"prob"`
}

// Assessment is a saved prediction: the inputs and the resulting ranking.
type Assessment struct {
	ID        string         `json:"id"`
	User      string         `json:"user"`
	Scores    careers.Scores `json:"scores"`
	Interests string         `json:"interests"`
	Top       []Entry        `json:"top3"`
	CreatedAt time.Time      `json:"created_at"`
}

// Store persists assessments in a sqlite database.
type Store struct {
	db     *sql.DB
	logger *zap.Logger
	now    func() time.Time
}

// Open opens or creates the database at path.
func Open(ctx context.Context, path string, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if path == "" {
		return nil, errors.New("history database path is required")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create history directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history database: %w", err)
	}
	// sqlite allows a single writer.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate history database: %w", err)
	}

	logger.Debug("history database ready", zap.String("path", path))

	return &Store{db: db, logger: logger, now: time.Now}, nil
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save stores a new assessment and returns it with its ID and timestamp set.
func (s *Store) Save(ctx context.Context, user string, scores careers.Scores, interests string, top []Entry) (*Assessment, error) {
	user = strings.TrimSpace(user)
	if user == "" {
		return nil, errors.New("user is required")
	}
	if top == nil {
		top = []Entry{}
	}

	payload, err := json.Marshal(top)
	if err != nil {
		return nil, fmt.Errorf("encode ranking: %w", err)
	}

	a := &Assessment{
		ID:        uuid.NewString(),
		User:      user,
		Scores:    scores,
		Interests: interests,
		Top:       top,
		CreatedAt: s.now().UTC(),
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO assessments (id, user_name, math, science, english, arts, coding, design, leadership, communication, interests, top3, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.User,
		scores.Math, scores.Science, scores.English, scores.Arts,
		scores.Coding, scores.Design, scores.Leadership, scores.Communication,
		a.Interests, string(payload), a.CreatedAt.UnixNano(),
	)
	if err != nil {
		return nil, fmt.Errorf("save assessment: %w", err)
	}

	s.logger.Debug("assessment saved", logger.AssessmentFields(user, a.ID)...)
	return a, nil
}

const selectColumns = `id, user_name, math, science, english, arts, coding, design, leadership, communication, interests, top3, created_at`

// List returns the user's assessments, newest first.
func (s *Store) List(ctx context.Context, user string) ([]Assessment, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+selectColumns+`
		FROM assessments
		WHERE user_name = ?
		ORDER BY created_at DESC, rowid DESC`, user)
	if err != nil {
		return nil, fmt.Errorf("list assessments: %w", err)
	}
	defer rows.Close()

	var out []Assessment
	for rows.Next() {
		a, err := s.scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list assessments: %w", err)
	}
	return out, nil
}

// Latest returns the user's most recent assessment or ErrNotFound.
func (s *Store) Latest(ctx context.Context, user string) (*Assessment, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+selectColumns+`
		FROM assessments
		WHERE user_name = ?
		ORDER BY created_at DESC, rowid DESC
		LIMIT 1`, user)
	return s.scan(row)
}

// Get returns one assessment of the user.
func (s *Store) Get(ctx context.Context, user, id string) (*Assessment, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+selectColumns+`
		FROM assessments
		WHERE user_name = ? AND id = ?`, user, id)
	return s.scan(row)
}

// Delete removes one assessment of the user.
func (s *Store) Delete(ctx context.Context, user, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM assessments WHERE user_name = ? AND id = ?`, user, id)
	if err != nil {
		return fmt.Errorf("delete assessment: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete assessment: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}

// DeleteAll removes every assessment of the user and returns how many were removed.
func (s *Store) DeleteAll(ctx context.Context, user string) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM assessments WHERE user_name = ?`, user)
	if err != nil {
		return 0, fmt.Errorf("delete assessments: %w", err)
	}
	return res.RowsAffected()
}

// Export writes the user's history as JSON to a new temporary file on fs and
// returns its path.
func (s *Store) Export(ctx context.Context, fs afero.Fs, user string) (string, error) {
	items, err := s.List(ctx, user)
	if err != nil {
		return "", err
	}
	if items == nil {
		items = []Assessment{}
	}

	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode history: %w", err)
	}

	f, err := afero.TempFile(fs, "", "career-history-*.json")
	if err != nil {
		return "", fmt.Errorf("create export file: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return "", fmt.Errorf("write export file: %w", err)
	}

	s.logger.Info("history exported", zap.String("path", f.Name()), zap.Int("assessments", len(items)))
	return f.Name(), nil
}

type scanner interface {
	Scan(dest ...any) error
}

func (s *Store) scan(row scanner) (*Assessment, error) {
	var (
		a       Assessment
		top3    string
		created int64
	)
	err := row.Scan(
		&a.ID, &a.User,
		&a.Scores.Math, &a.Scores.Science, &a.Scores.English, &a.Scores.Arts,
		&a.Scores.Coding, &a.Scores.Design, &a.Scores.Leadership, &a.Scores.Communication,
		&a.Interests, &top3, &created,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read assessment: %w", err)
	}

	// A damaged ranking still shows the rest of the record.
	if err := json.Unmarshal([]byte(top3), &a.Top); err != nil {
		s.logger.Warn("stored ranking is not valid JSON", zap.String("id", a.ID), zap.Error(err))
		a.Top = []Entry{}
	}
	a.CreatedAt = time.Unix(0, created).UTC()

	return &a, nil
}
