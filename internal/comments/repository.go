package comments

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository persists comments.
type Repository interface {
	Create(ctx context.Context, comment Comment) error
	ListByVolcano(ctx context.Context, volcanoID int) ([]Comment, error)
}

// PostgresRepository stores comments in PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a repository backed by PostgreSQL.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a comment.
func (r *PostgresRepository) Create(ctx context.Context, comment Comment) error {
	id, err := uuid.Parse(comment.ID)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, `INSERT INTO comments (id, volcano_id, author_email, body, created_at)
        VALUES ($1, $2, $3, $4, $5)`, id, comment.VolcanoID, comment.AuthorEmail, comment.Body, comment.CreatedAt.UTC())
	return err
}

// ListByVolcano returns the comments on a volcano, oldest first.
func (r *PostgresRepository) ListByVolcano(ctx context.Context, volcanoID int) ([]Comment, error) {
	rows, err := r.db.Query(ctx, `SELECT id, volcano_id, author_email, body, created_at
        FROM comments WHERE volcano_id = $1 ORDER BY created_at, id`, volcanoID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Comment{}
	for rows.Next() {
		var (
			c         Comment
			id        uuid.UUID
			createdAt time.Time
		)
		if err := rows.Scan(&id, &c.VolcanoID, &c.AuthorEmail, &c.Body, &createdAt); err != nil {
			return nil, err
		}
		c.ID = id.String()
		c.CreatedAt = createdAt.UTC()
		out = append(out, c)
	}
	return out, rows.Err()
}
