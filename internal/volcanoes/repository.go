package volcanoes

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const publicColumns = `id, name, country, region, subregion, last_eruption, summit, elevation, latitude, longitude`

// Repository reads the volcano dataset.
type Repository interface {
	Countries(ctx context.Context) ([]string, error)
	List(ctx context.Context, filter ListFilter) ([]Volcano, error)
	Get(ctx context.Context, id int, projection Projection) (Volcano, error)
}

// PostgresRepository reads volcanoes from the data table.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a Postgres-backed volcano repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Countries returns the distinct countries in alphabetical order.
func (r *PostgresRepository) Countries(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT DISTINCT country FROM data ORDER BY country`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[string])
}

// List returns the public columns of every volcano matching filter.
func (r *PostgresRepository) List(ctx context.Context, filter ListFilter) ([]Volcano, error) {
	query := `SELECT ` + publicColumns + ` FROM data WHERE country = $1`
	if filter.PopulatedWithin != "" {
		column, ok := populationColumns[filter.PopulatedWithin]
		if !ok {
			return nil, fmt.Errorf("unsupported distance %q", filter.PopulatedWithin)
		}
		query += ` AND ` + column + ` > 0`
	}
	query += ` ORDER BY id`

	rows, err := r.db.Query(ctx, query, filter.Country)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Volcano{}
	for rows.Next() {
		var v Volcano
		if err := rows.Scan(&v.ID, &v.Name, &v.Country, &v.Region, &v.Subregion, &v.LastEruption,
			&v.Summit, &v.Elevation, &v.Latitude, &v.Longitude); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// Get loads one volcano, including population columns when projection asks for them.
func (r *PostgresRepository) Get(ctx context.Context, id int, projection Projection) (Volcano, error) {
	var (
		v   Volcano
		p   Population
		err error
	)
	if projection == ProjectionWithPopulation {
		err = r.db.QueryRow(ctx, `SELECT `+publicColumns+`,
            population_5km, population_10km, population_30km, population_100km
            FROM data WHERE id = $1`, id).Scan(&v.ID, &v.Name, &v.Country, &v.Region, &v.Subregion,
			&v.LastEruption, &v.Summit, &v.Elevation, &v.Latitude, &v.Longitude,
			&p.Within5km, &p.Within10km, &p.Within30km, &p.Within100km)
		v.Population = &p
	} else {
		err = r.db.QueryRow(ctx, `SELECT `+publicColumns+` FROM data WHERE id = $1`, id).Scan(
			&v.ID, &v.Name, &v.Country, &v.Region, &v.Subregion,
			&v.LastEruption, &v.Summit, &v.Elevation, &v.Latitude, &v.Longitude)
	}
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Volcano{}, ErrNotFound
		}
		return Volcano{}, err
	}
	return v, nil
}
