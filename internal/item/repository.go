package item

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, it *Item) error
	GetByID(ctx context.Context, id string) (*Item, error)
	Update(ctx context.Context, it *Item) error
	ListByOwner(ctx context.Context, ownerID string, limit, offset uint64) ([]*Item, error)
	CountByOwner(ctx context.Context, ownerID string) (int, error)
	Search(ctx context.Context, text string, limit, offset uint64) ([]*Item, error)
	ListByRequestIDs(ctx context.Context, requestIDs []string) ([]*Item, error)

	CreateComment(ctx context.Context, c *Comment) error
	// ListCommentsByItems returns comments for the given items keyed by item id.
	ListCommentsByItems(ctx context.Context, itemIDs []string) (map[string][]Comment, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

var itemColumns = []string{
	"i.id", "i.name", "i.description", "i.available",
	"i.owner_id", "u.name", "i.request_id", "i.created_at",
}

func scanItem(row pgx.Row) (*Item, error) {
	var it Item
	if err := row.Scan(
		&it.ID, &it.Name, &it.Description, &it.Available,
		&it.OwnerID, &it.OwnerName, &it.RequestID, &it.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *pgxRepository) Create(ctx context.Context, it *Item) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.items").
		Columns("name", "description", "available", "owner_id", "request_id").
		Values(it.Name, it.Description, it.Available, it.OwnerID, it.RequestID).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create item query failed: %w", err)
	}

	return r.pool.QueryRow(ctx, query, args...).Scan(&it.ID, &it.CreatedAt)
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Item, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(itemColumns...).
		From("public.items i").
		Join("public.users u ON i.owner_id = u.id").
		Where(squirrel.Eq{"i.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get item query failed: %w", err)
	}

	it, err := scanItem(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get item failed: %w", err)
	}
	return it, nil
}

func (r *pgxRepository) Update(ctx context.Context, it *Item) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.items").
		Set("name", it.Name).
		Set("description", it.Description).
		Set("available", it.Available).
		Where(squirrel.Eq{"id": it.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update item query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update item failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) ListByOwner(ctx context.Context, ownerID string, limit, offset uint64) ([]*Item, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(itemColumns...).
		From("public.items i").
		Join("public.users u ON i.owner_id = u.id").
		Where(squirrel.Eq{"i.owner_id": ownerID}).
		OrderBy("i.created_at DESC").
		Limit(limit).Offset(offset).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list items query failed: %w", err)
	}

	return r.queryItems(ctx, query, args)
}

func (r *pgxRepository) CountByOwner(ctx context.Context, ownerID string) (int, error) {
	const query = `SELECT count(*) FROM public.items WHERE owner_id = $1`

	var count int
	if err := r.pool.QueryRow(ctx, query, ownerID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count items failed: %w", err)
	}
	return count, nil
}

func (r *pgxRepository) Search(ctx context.Context, text string, limit, offset uint64) ([]*Item, error) {
	pattern := "%" + text + "%"

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(itemColumns...).
		From("public.items i").
		Join("public.users u ON i.owner_id = u.id").
		Where(squirrel.Eq{"i.available": true}).
		Where(squirrel.Or{
			squirrel.ILike{"i.name": pattern},
			squirrel.ILike{"i.description": pattern},
		}).
		OrderBy("i.id").
		Limit(limit).Offset(offset).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build search items query failed: %w", err)
	}

	return r.queryItems(ctx, query, args)
}

func (r *pgxRepository) ListByRequestIDs(ctx context.Context, requestIDs []string) ([]*Item, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(itemColumns...).
		From("public.items i").
		Join("public.users u ON i.owner_id = u.id").
		Where(squirrel.Eq{"i.request_id": requestIDs}).
		OrderBy("i.id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list items by request query failed: %w", err)
	}

	return r.queryItems(ctx, query, args)
}

func (r *pgxRepository) queryItems(ctx context.Context, query string, args []any) ([]*Item, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list items failed: %w", err)
	}
	defer rows.Close()

	var items []*Item
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item failed: %w", err)
		}
		items = append(items, it)
	}

	return items, nil
}

func (r *pgxRepository) CreateComment(ctx context.Context, c *Comment) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.comments").
		Columns("text", "item_id", "author_id").
		Values(c.Text, c.ItemID, c.AuthorID).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create comment query failed: %w", err)
	}

	return r.pool.QueryRow(ctx, query, args...).Scan(&c.ID, &c.CreatedAt)
}

func (r *pgxRepository) ListCommentsByItems(ctx context.Context, itemIDs []string) (map[string][]Comment, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"c.id", "c.text", "c.item_id", "c.author_id", "u.name", "c.created_at",
	).
		From("public.comments c").
		Join("public.users u ON c.author_id = u.id").
		Where(squirrel.Eq{"c.item_id": itemIDs}).
		OrderBy("c.created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list comments query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list comments failed: %w", err)
	}
	defer rows.Close()

	comments := make(map[string][]Comment)
	for rows.Next() {
		var c Comment
		if err := rows.Scan(&c.ID, &c.Text, &c.ItemID, &c.AuthorID, &c.AuthorName, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan comment failed: %w", err)
		}
		comments[c.ItemID] = append(comments[c.ItemID], c)
	}

	return comments, nil
}
