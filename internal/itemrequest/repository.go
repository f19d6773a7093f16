package itemrequest

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lendit/lendit-backend/internal/pkg/request"
)

type Repository interface {
	Create(ctx context.Context, req *Request) error
	GetByID(ctx context.Context, id string) (*Request, error)
	ListByRequestor(ctx context.Context, requestorID string) ([]*Request, error)
	ListExcludingRequestor(ctx context.Context, requestorID string, from, size int) ([]*Request, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

var requestColumns = []string{
	"r.id", "r.description", "r.requestor_id", "u.name", "r.created_at",
}

func (r *pgxRepository) Create(ctx context.Context, req *Request) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.item_requests").
		Columns("description", "requestor_id").
		Values(req.Description, req.RequestorID).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create request query failed: %w", err)
	}

	return r.pool.QueryRow(ctx, query, args...).Scan(&req.ID, &req.CreatedAt)
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Request, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(requestColumns...).
		From("public.item_requests r").
		Join("public.users u ON r.requestor_id = u.id").
		Where(squirrel.Eq{"r.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get request query failed: %w", err)
	}

	var req Request
	if err := r.pool.QueryRow(ctx, query, args...).Scan(
		&req.ID, &req.Description, &req.RequestorID, &req.RequestorName, &req.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get request failed: %w", err)
	}

	return &req, nil
}

func (r *pgxRepository) ListByRequestor(ctx context.Context, requestorID string) ([]*Request, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(requestColumns...).
		From("public.item_requests r").
		Join("public.users u ON r.requestor_id = u.id").
		Where(squirrel.Eq{"r.requestor_id": requestorID}).
		OrderBy("r.created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list requests query failed: %w", err)
	}

	return r.queryRequests(ctx, query, args)
}

func (r *pgxRepository) ListExcludingRequestor(ctx context.Context, requestorID string, from, size int) ([]*Request, error) {
	limit, offset := request.PageParams{From: from, Size: size}.LimitOffset()

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(requestColumns...).
		From("public.item_requests r").
		Join("public.users u ON r.requestor_id = u.id").
		Where(squirrel.NotEq{"r.requestor_id": requestorID}).
		OrderBy("r.created_at DESC").
		Limit(limit).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list requests query failed: %w", err)
	}

	return r.queryRequests(ctx, query, args)
}

func (r *pgxRepository) queryRequests(ctx context.Context, query string, args []any) ([]*Request, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list requests failed: %w", err)
	}
	defer rows.Close()

	var requests []*Request
	for rows.Next() {
		var req Request
		if err := rows.Scan(
			&req.ID, &req.Description, &req.RequestorID, &req.RequestorName, &req.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan request failed: %w", err)
		}
		requests = append(requests, &req)
	}

	return requests, nil
}
