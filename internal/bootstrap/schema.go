package bootstrap

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Schema is small enough that migrations tooling would be overhead;
// both tables are created idempotently at startup.
const schema = `
create table if not exists projects (
    id           text primary key,
    title        text not null,
    description  text not null,
    technologies text[] not null default '{}',
    github_url   text not null,
    live_url     text not null default '',
    image        text not null default '',
    featured     boolean not null default false,
    created_at   timestamptz not null default now(),
    updated_at   timestamptz not null default now()
);

create table if not exists contacts (
    id         text primary key,
    name       text not null,
    email      text not null,
    subject    text not null default '',
    message    text not null,
    read       boolean not null default false,
    created_at timestamptz not null default now()
);

create index if not exists projects_created_at_idx on projects (created_at desc);
create index if not exists contacts_created_at_idx on contacts (created_at desc);
`

func EnsureSchema(ctx context.Context, db *pgxpool.Pool) error {
	if _, err := db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}
