package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/agencydesk/internal/error_values"
	"github.com/limbo/agencydesk/internal/repository"
	"github.com/limbo/agencydesk/pkg/entity"
	log "github.com/sirupsen/logrus"
)

const defaultProjectStatus = "draft"

type ProjectsService struct {
	repo repository.ProjectsRepositoryI
}

func NewProjectsService(projectsRepo repository.ProjectsRepositoryI) *ProjectsService {
	if projectsRepo == nil {
		log.Fatal("provided nil projectsRepo")
	}
	return &ProjectsService{
		repo: projectsRepo,
	}
}

func (ps *ProjectsService) CreateProject(ctx context.Context, uid uuid.UUID, req *CreateProjectRequest) (*ProjectView, error) {
	if req == nil {
		return nil, errorvalues.ErrInvalidRequest
	}
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	status := req.Status
	if status == "" {
		status = defaultProjectStatus
	}
	p := entity.Project{
		OwnerID:         uid,
		Name:            req.Name,
		ClientName:      req.ClientName,
		Status:          status,
		PricingSnapshot: req.Pricing.snapshot(),
	}
	id, err := ps.repo.Create(ctx, &p)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrOwnerNotFound):
			return nil, errorvalues.ErrUserNotFound
		case errors.Is(err, errorvalues.ErrProjectExists):
			return nil, errorvalues.ErrProjectExists
		}
		return nil, errors.New("projects repository error: " + err.Error())
	}
	return ps.GetProject(ctx, uid, id)
}

func (ps *ProjectsService) GetProject(ctx context.Context, uid, projectID uuid.UUID) (*ProjectView, error) {
	p, err := ps.repo.GetByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrProjectNotFound) {
			return nil, err
		}
		return nil, errors.New("projects repository error: " + err.Error())
	}
	if p.OwnerID != uid {
		return nil, errorvalues.ErrWrongOwner
	}
	return viewOf(p), nil
}

func (ps *ProjectsService) ListProjects(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) ([]*ProjectView, error) {
	projects, err := ps.repo.ListByOwner(ctx, uid, pagination.Limit, pagination.Offset)
	if err != nil {
		return nil, errors.New("projects repository error: " + err.Error())
	}
	views := make([]*ProjectView, 0, len(projects))
	for _, p := range projects {
		views = append(views, viewOf(p))
	}
	return views, nil
}

func (ps *ProjectsService) GetPortalView(ctx context.Context, token uuid.UUID) (*entity.PortalView, error) {
	p, err := ps.repo.GetByPortalToken(ctx, token)
	if err != nil {
		if errors.Is(err, errorvalues.ErrProjectNotFound) {
			return nil, err
		}
		return nil, errors.New("projects repository error: " + err.Error())
	}
	return &entity.PortalView{
		Name:       p.Name,
		ClientName: p.ClientName,
		Status:     p.Status,
		AddOns:     p.AddOns,
		FinalPrice: ComputeFinalPrice(p.PricingSnapshot),
	}, nil
}

func (ps *ProjectsService) Quote(req *PricingRequest) (float64, error) {
	if req == nil {
		return 0, errorvalues.ErrInvalidRequest
	}
	if err := validateStruct(req); err != nil {
		return 0, err
	}
	return ComputeFinalPrice(req.snapshot()), nil
}

func viewOf(p *entity.Project) *ProjectView {
	return &ProjectView{
		Project:    p,
		FinalPrice: ComputeFinalPrice(p.PricingSnapshot),
	}
}
