package photos

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository persists photo links.
type Repository interface {
	Create(ctx context.Context, photo Photo) error
	ListByVolcano(ctx context.Context, volcanoID int) ([]Photo, error)
}

// PostgresRepository stores photo links in PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a repository backed by PostgreSQL.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a photo link.
func (r *PostgresRepository) Create(ctx context.Context, photo Photo) error {
	id, err := uuid.Parse(photo.ID)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, `INSERT INTO photos (id, volcano_id, uploader_email, url, caption, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)`,
		id, photo.VolcanoID, photo.UploaderEmail, photo.URL, photo.Caption, photo.CreatedAt.UTC())
	return err
}

// ListByVolcano returns photos newest first.
func (r *PostgresRepository) ListByVolcano(ctx context.Context, volcanoID int) ([]Photo, error) {
	rows, err := r.db.Query(ctx, `SELECT id, volcano_id, uploader_email, url, caption, created_at
        FROM photos WHERE volcano_id = $1 ORDER BY created_at DESC, id DESC`, volcanoID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (Photo, error) {
		var (
			p  Photo
			id uuid.UUID
		)
		if err := row.Scan(&id, &p.VolcanoID, &p.UploaderEmail, &p.URL, &p.Caption, &p.CreatedAt); err != nil {
			return Photo{}, err
		}
		p.ID = id.String()
		p.CreatedAt = p.CreatedAt.UTC()
		return p, nil
	})
}
