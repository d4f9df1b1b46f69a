package repository

import (
	"context"
	"errors"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	errorvalues "github.com/limbo/agencydesk/internal/error_values"
	"github.com/limbo/agencydesk/pkg/entity"
)

const projectColumns = `id, owner_id, name, client_name, status, portal_token, base_price, custom_price, add_ons,
	discount, discount_type, is_hourly_quote, custom_hours, hourly_rate, created_at, updated_at`

type ProjectsRepository struct {
	conn PgConnection
}

func NewProjectsRepo(conn PgConnection) *ProjectsRepository {
	return &ProjectsRepository{
		conn: conn,
	}
}

func (pr *ProjectsRepository) Create(ctx context.Context, p *entity.Project) (uuid.UUID, error) {
	addOns, err := sonic.Marshal(p.AddOns)
	if err != nil {
		return uuid.UUID{}, errors.New("marshalling add-ons error: " + err.Error())
	}
	var id uuid.UUID
	row := pr.conn.QueryRow(ctx, `INSERT INTO projects (owner_id, name, client_name, status, base_price, custom_price, add_ons,
		discount, discount_type, is_hourly_quote, custom_hours, hourly_rate)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12) RETURNING id;`,
		p.OwnerID, p.Name, p.ClientName, p.Status, p.BasePrice, p.CustomPrice, addOns,
		p.Discount, string(p.DiscountType), p.IsHourlyQuote, p.CustomHours, p.HourlyRate)
	if err = row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation
			case "23505":
				return uuid.UUID{}, errorvalues.ErrProjectExists
			// FK violation
			case "23503":
				return uuid.UUID{}, errorvalues.ErrOwnerNotFound
			}
		}
		return uuid.UUID{}, errors.New("creating project db error: " + err.Error())
	}
	return id, nil
}

func (pr *ProjectsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Project, error) {
	row := pr.conn.QueryRow(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = $1;`, id)
	p, err := scanProject(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrProjectNotFound
		}
		return nil, errors.New("getting project by id error: " + err.Error())
	}
	return p, nil
}

func (pr *ProjectsRepository) GetByPortalToken(ctx context.Context, token uuid.UUID) (*entity.Project, error) {
	row := pr.conn.QueryRow(ctx, `SELECT `+projectColumns+` FROM projects WHERE portal_token = $1;`, token)
	p, err := scanProject(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrProjectNotFound
		}
		return nil, errors.New("getting project by portal token error: " + err.Error())
	}
	return p, nil
}

func (pr *ProjectsRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]*entity.Project, error) {
	rows, err := pr.conn.Query(ctx, `SELECT `+projectColumns+` FROM projects WHERE owner_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3;`,
		ownerID, limit, offset)
	if err != nil {
		return nil, errors.New("listing projects error: " + err.Error())
	}
	defer rows.Close()
	projects := make([]*entity.Project, 0)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, errors.New("project row parsing error: " + err.Error())
		}
		projects = append(projects, p)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected project rows error: " + err.Error())
	}
	return projects, nil
}

func scanProject(row pgx.Row) (*entity.Project, error) {
	var (
		p            entity.Project
		addOns       []byte
		discountType string
	)
	err := row.Scan(&p.ID, &p.OwnerID, &p.Name, &p.ClientName, &p.Status, &p.PortalToken,
		&p.BasePrice, &p.CustomPrice, &addOns, &p.Discount, &discountType,
		&p.IsHourlyQuote, &p.CustomHours, &p.HourlyRate, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	p.DiscountType = entity.DiscountType(discountType)
	p.AddOns = []entity.AddOn{}
	if len(addOns) > 0 {
		if err = sonic.Unmarshal(addOns, &p.AddOns); err != nil {
			return nil, err
		}
	}
	return &p, nil
}
