package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/raghulkannan/portfolio-api/internal/projects/domain"
)

// Repository is the persistence contract for projects. PostgresRepo
// is the production implementation; MemoryRepo backs tests.
type Repository interface {
	List(ctx context.Context) ([]domain.Project, error)
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	Create(ctx context.Context, p *domain.Project) (*domain.Project, error)
	Update(ctx context.Context, id string, upd domain.Update) (*domain.Project, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type PostgresRepo struct {
	db *pgxpool.Pool
}

func NewPostgresRepo(db *pgxpool.Pool) *PostgresRepo {
	return &PostgresRepo{db: db}
}

const projectColumns = `id, title, description, technologies, github_url, live_url, image, featured, created_at, updated_at`

func scanProject(row pgx.Row) (*domain.Project, error) {
	var p domain.Project
	err := row.Scan(&p.ID, &p.Title, &p.Description, &p.Technologies,
		&p.GithubURL, &p.LiveURL, &p.Image, &p.Featured, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// List returns all projects, newest first.
func (r *PostgresRepo) List(ctx context.Context) ([]domain.Project, error) {
	const q = `
select ` + projectColumns + `
from projects
order by created_at desc;
`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Project, 0, 16)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	const q = `select ` + projectColumns + ` from projects where id = $1;`

	p, err := scanProject(r.db.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *PostgresRepo) Create(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	const q = `
insert into projects (id, title, description, technologies, github_url, live_url, image, featured, created_at, updated_at)
values ($1, $2, $3, $4, $5, $6, $7, $8, now(), now())
returning ` + projectColumns + `;
`
	return scanProject(r.db.QueryRow(ctx, q,
		uuid.NewString(), p.Title, p.Description, p.Technologies,
		p.GithubURL, p.LiveURL, p.Image, p.Featured))
}

// Update merges non-nil fields onto the stored row. Concurrent
// updates resolve last-write-wins; there is no version column.
func (r *PostgresRepo) Update(ctx context.Context, id string, upd domain.Update) (*domain.Project, error) {
	const q = `
update projects set
  title        = coalesce($2, title),
  description  = coalesce($3, description),
  technologies = coalesce($4, technologies),
  github_url   = coalesce($5, github_url),
  live_url     = coalesce($6, live_url),
  image        = coalesce($7, image),
  featured     = coalesce($8, featured),
  updated_at   = now()
where id = $1
returning ` + projectColumns + `;
`
	p, err := scanProject(r.db.QueryRow(ctx, q, id,
		upd.Title, upd.Description, techsOrNil(upd.Technologies),
		upd.GithubURL, upd.LiveURL, upd.Image, upd.Featured))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

// techsOrNil keeps the coalesce semantics: an absent field must reach
// the driver as SQL NULL, not as an empty array.
func techsOrNil(techs *[]string) interface{} {
	if techs == nil {
		return nil
	}
	return *techs
}

func (r *PostgresRepo) Delete(ctx context.Context, id string) (bool, error) {
	ct, err := r.db.Exec(ctx, `delete from projects where id = $1;`, id)
	if err != nil {
		return false, err
	}
	return ct.RowsAffected() > 0, nil
}
