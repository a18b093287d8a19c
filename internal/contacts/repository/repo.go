package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/raghulkannan/portfolio-api/internal/contacts/domain"
)

// Repository is the persistence contract for contact messages.
// Delete exists only for the compensating path when a notification
// send fails; no API operation deletes contacts.
type Repository interface {
	Create(ctx context.Context, c *domain.Contact) (*domain.Contact, error)
	List(ctx context.Context) ([]domain.Contact, error)
	SetRead(ctx context.Context, id string, read bool) (*domain.Contact, error)
	Delete(ctx context.Context, id string) error
}

type PostgresRepo struct {
	db *pgxpool.Pool
}

func NewPostgresRepo(db *pgxpool.Pool) *PostgresRepo {
	return &PostgresRepo{db: db}
}

const contactColumns = `id, name, email, subject, message, read, created_at`

func scanContact(row pgx.Row) (*domain.Contact, error) {
	var c domain.Contact
	err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Subject, &c.Message, &c.Read, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *PostgresRepo) Create(ctx context.Context, c *domain.Contact) (*domain.Contact, error) {
	const q = `
insert into contacts (id, name, email, subject, message, read, created_at)
values ($1, $2, $3, $4, $5, false, now())
returning ` + contactColumns + `;
`
	return scanContact(r.db.QueryRow(ctx, q,
		uuid.NewString(), c.Name, c.Email, c.Subject, c.Message))
}

// List returns all contact messages, newest first.
func (r *PostgresRepo) List(ctx context.Context) ([]domain.Contact, error) {
	const q = `select ` + contactColumns + ` from contacts order by created_at desc;`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Contact, 0, 16)
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}

// SetRead toggles the read flag. Idempotent: setting an already-set
// flag succeeds and returns the unchanged row.
func (r *PostgresRepo) SetRead(ctx context.Context, id string, read bool) (*domain.Contact, error) {
	const q = `update contacts set read = $2 where id = $1 returning ` + contactColumns + `;`

	c, err := scanContact(r.db.QueryRow(ctx, q, id, read))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *PostgresRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `delete from contacts where id = $1;`, id)
	return err
}
