package store

import (
	"context"
	"fmt"

	"github.com/bookshelf-app/bookshelf/internal/logger"
)

const (
	createBookmarksTable = `CREATE TABLE IF NOT EXISTS saved_book_ids (
		book_id  TEXT PRIMARY KEY,
		saved_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);`

	insertBookmark = `INSERT OR IGNORE INTO saved_book_ids (book_id) VALUES (?);`
	deleteBookmark = `DELETE FROM saved_book_ids WHERE book_id = ?;`
	selectAllIDs   = `SELECT book_id FROM saved_book_ids ORDER BY saved_at ASC;`
)

// bookmarkMirror persists saved book IDs in a local sqlite file so the
// client remembers which catalog entries are already on the shelf across
// restarts. It mirrors server state only; it is never consulted for
// authorization or treated as a source of truth.
type bookmarkMirror struct {
	db     *DB
	logger *logger.Logger
}

// NewBookmarkMirror constructs a [BookmarkMirror] on top of the given local
// database, creating the backing table if it does not exist yet.
func NewBookmarkMirror(ctx context.Context, db *DB, logger *logger.Logger) (BookmarkMirror, error) {
	if _, err := db.ExecContext(ctx, createBookmarksTable); err != nil {
		logger.Err(err).Str("func", "NewBookmarkMirror").Msg("failed to create mirror table")
		return nil, fmt.Errorf("failed to create mirror table: %w", err)
	}

	return &bookmarkMirror{
		db:     db,
		logger: logger,
	}, nil
}

func (m *bookmarkMirror) Add(ctx context.Context, bookID string) error {
	if _, err := m.db.ExecContext(ctx, insertBookmark, bookID); err != nil {
		m.logger.Err(err).Str("book_id", bookID).Msg("failed to record saved book id")
		return fmt.Errorf("failed to record saved book id: %w", err)
	}
	return nil
}

func (m *bookmarkMirror) Remove(ctx context.Context, bookID string) error {
	if _, err := m.db.ExecContext(ctx, deleteBookmark, bookID); err != nil {
		m.logger.Err(err).Str("book_id", bookID).Msg("failed to remove saved book id")
		return fmt.Errorf("failed to remove saved book id: %w", err)
	}
	return nil
}

func (m *bookmarkMirror) All(ctx context.Context) ([]string, error) {
	rows, err := m.db.QueryContext(ctx, selectAllIDs)
	if err != nil {
		m.logger.Err(err).Msg("failed to load saved book ids")
		return nil, fmt.Errorf("failed to load saved book ids: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		ids = append(ids, id)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return ids, nil
}

func (m *bookmarkMirror) Close() error {
	return m.db.Close()
}
