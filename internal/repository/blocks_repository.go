package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	errorvalues "github.com/limbo/agencydesk/internal/error_values"
	"github.com/limbo/agencydesk/pkg/entity"
)

type BlocksRepository struct {
	conn PgConnection
}

func NewBlocksRepo(conn PgConnection) *BlocksRepository {
	return &BlocksRepository{
		conn: conn,
	}
}

func (br *BlocksRepository) Create(ctx context.Context, block *entity.CapacityBlock) (uuid.UUID, error) {
	var id uuid.UUID
	row := br.conn.QueryRow(ctx, `INSERT INTO capacity_blocks (user_id, block_date, title, hours, is_shadow) VALUES ($1, $2, $3, $4, $5) RETURNING id;`,
		block.UserID, block.Date, block.Title, block.Hours, block.IsShadow)
	if err := row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return uuid.UUID{}, errorvalues.ErrOwnerNotFound
			}
		}
		return uuid.UUID{}, errors.New("creating block db error: " + err.Error())
	}
	return id, nil
}

func (br *BlocksRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.CapacityBlock, error) {
	block := entity.CapacityBlock{ID: id}
	row := br.conn.QueryRow(ctx, `SELECT user_id, block_date, title, hours, completed, is_shadow, created_at, updated_at FROM capacity_blocks WHERE id = $1;`, id)
	err := row.Scan(&block.UserID, &block.Date, &block.Title, &block.Hours, &block.Completed, &block.IsShadow, &block.CreatedAt, &block.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrBlockNotFound
		}
		return nil, errors.New("getting block by id error: " + err.Error())
	}
	return &block, nil
}

func (br *BlocksRepository) ListByUserAndDate(ctx context.Context, uid uuid.UUID, date time.Time) ([]*entity.CapacityBlock, error) {
	rows, err := br.conn.Query(ctx, `SELECT id, title, hours, completed, is_shadow, created_at, updated_at FROM capacity_blocks
		WHERE user_id = $1 AND block_date = $2 ORDER BY created_at;`, uid, date)
	if err != nil {
		return nil, errors.New("getting blocks for day error: " + err.Error())
	}
	defer rows.Close()
	blocks := make([]*entity.CapacityBlock, 0)
	for rows.Next() {
		b := entity.CapacityBlock{UserID: uid, Date: date}
		if err = rows.Scan(&b.ID, &b.Title, &b.Hours, &b.Completed, &b.IsShadow, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, errors.New("block row parsing error: " + err.Error())
		}
		blocks = append(blocks, &b)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected block rows error: " + err.Error())
	}
	return blocks, nil
}

func (br *BlocksRepository) SetCompleted(ctx context.Context, id uuid.UUID, completed bool) (bool, error) {
	ct, err := br.conn.Exec(ctx, `UPDATE capacity_blocks SET completed = $1, updated_at = NOW() WHERE id = $2 AND completed <> $1;`, completed, id)
	if err != nil {
		return false, errors.New("updating block completion error: " + err.Error())
	}
	return ct.RowsAffected() > 0, nil
}

func (br *BlocksRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := br.conn.Exec(ctx, `DELETE FROM capacity_blocks WHERE id = $1;`, id)
	if err != nil {
		return errors.New("deleting block error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrBlockNotFound
	}
	return nil
}
