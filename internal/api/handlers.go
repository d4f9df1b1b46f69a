package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	errorvalues "github.com/limbo/agencydesk/internal/error_values"
	"github.com/limbo/agencydesk/internal/service"
	"github.com/limbo/agencydesk/pkg/entity"
	"github.com/limbo/agencydesk/pkg/httputil"
)

type RegisterRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type LinkTelegramRequest struct {
	ChatID *int64 `json:"chatId"`
}

type CheckAchievementsRequest struct {
	Date string `json:"date"`
}

type CreateBlockRequest struct {
	Date     string  `json:"date"`
	Title    string  `json:"title"`
	Hours    float64 `json:"hours"`
	IsShadow bool    `json:"isShadow"`
}

type SetBlockCompletedRequest struct {
	Completed *bool `json:"completed"`
}

type PricingRequest struct {
	BasePrice     float64        `json:"basePrice"`
	CustomPrice   *float64       `json:"customPrice"`
	AddOns        []entity.AddOn `json:"addOns"`
	Discount      float64        `json:"discount"`
	DiscountType  string         `json:"discountType"`
	IsHourlyQuote bool           `json:"isHourlyQuote"`
	CustomHours   float64        `json:"customHours"`
	HourlyRate    float64        `json:"hourlyRate"`
}

type CreateProjectRequest struct {
	Name       string `json:"name"`
	ClientName string `json:"clientName"`
	Status     string `json:"status"`
	PricingRequest
}

type AchievementsResponse struct {
	UserID       string                `json:"uid"`
	Page         int                   `json:"page"`
	Limit        int                   `json:"limit"`
	Achievements []*entity.Achievement `json:"achievements"`
}

type BlocksResponse struct {
	Date   string                  `json:"date"`
	Blocks []*entity.CapacityBlock `json:"blocks"`
}

type ProjectsResponse struct {
	Page     int                    `json:"page"`
	Limit    int                    `json:"limit"`
	Projects []*service.ProjectView `json:"projects"`
}

type QuoteResponse struct {
	FinalPrice float64 `json:"finalPrice"`
}

func (p *PricingRequest) toService() service.PricingRequest {
	addOns := make([]service.AddOnRequest, 0, len(p.AddOns))
	for _, a := range p.AddOns {
		addOns = append(addOns, service.AddOnRequest{Name: a.Name, Price: a.Price})
	}
	return service.PricingRequest{
		BasePrice:     p.BasePrice,
		CustomPrice:   p.CustomPrice,
		AddOns:        addOns,
		Discount:      p.Discount,
		DiscountType:  p.DiscountType,
		IsHourlyQuote: p.IsHourlyQuote,
		CustomHours:   p.CustomHours,
		HourlyRate:    p.HourlyRate,
	}
}

func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"status": "ok"})
}

func (s *Server) Register(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req RegisterRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("registering error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	user, err := s.userService.Register(ctx, &service.RegisterRequest{
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrUserExists):
			logger.Error("registering error: existed user")
			httputil.WriteErrorResponse(w, http.StatusConflict, "user with such name already exists", nil)
		case errors.Is(err, errorvalues.ErrInvalidRequest):
			logger.Error("registering error: invalid credentials format")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid name or password", err)
		default:
			logger.WithError(err).Error("registering error: service error")
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during registration", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, map[string]any{
		"uid": user.ID.String(),
	})
	logger.Info("successful registration")
}

func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req LoginRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("login error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	user, err := s.userService.Login(ctx, req.Name, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("login error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user with such name doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrWrongCredentials):
			logger.Error("login error: wrong password")
			httputil.WriteErrorResponse(w, http.StatusForbidden, "invalid username or password", nil)
		default:
			logger.WithError(err).Error("login error: service error")
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during login", nil)
		}
		return
	}
	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		logger.WithError(err).Error("login error: generating token error")
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error creating token", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"uid":   user.ID.String(),
		"token": token,
	})
	logger.Info("successful login")
}

func (s *Server) LinkTelegram(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := s.requireUID(w, r, logger)
	if !ok {
		return
	}
	var req LinkTelegramRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("link telegram error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	if err := s.userService.LinkTelegram(ctx, uid, req.ChatID); err != nil {
		writeServiceError(w, logger, "link telegram", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("telegram chat linked")
}

func (s *Server) GetStats(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := s.requireUID(w, r, logger)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	stats, err := s.statsService.GetStats(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "get stats", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, stats)
}

func (s *Server) ListAchievements(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := s.requireUID(w, r, logger)
	if !ok {
		return
	}
	page, limit, pagination := paginationFromQuery(r)
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*15)
	defer cancel()
	achievements, err := s.achievementService.ListAchievements(ctx, uid, pagination)
	if err != nil {
		writeServiceError(w, logger, "list achievements", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, AchievementsResponse{
		UserID:       uid.String(),
		Page:         page,
		Limit:        limit,
		Achievements: achievements,
	})
	logger.Info("achievements provided")
}

func (s *Server) CheckAchievements(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := s.requireUID(w, r, logger)
	if !ok {
		return
	}
	var req CheckAchievementsRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("check achievements error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*15)
	defer cancel()
	res, err := s.achievementService.CheckDayAchievements(ctx, uid, req.Date)
	if err != nil {
		writeServiceError(w, logger, "check achievements", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, res)
	logger.WithField("new_badges", len(res.NewBadges)).Info("day checked")
}

func (s *Server) CreateBlock(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := s.requireUID(w, r, logger)
	if !ok {
		return
	}
	var req CreateBlockRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("create block error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	block, err := s.blocksService.CreateBlock(ctx, uid, &service.CreateBlockRequest{
		Date:     req.Date,
		Title:    req.Title,
		Hours:    req.Hours,
		IsShadow: req.IsShadow,
	})
	if err != nil {
		writeServiceError(w, logger, "create block", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, block)
	logger.WithField("block_id", block.ID.String()).Info("block created")
}

func (s *Server) ListBlocks(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := s.requireUID(w, r, logger)
	if !ok {
		return
	}
	date := r.URL.Query().Get("date")
	if date == "" {
		date = service.Day(time.Now()).Format(service.DayLayout)
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	blocks, err := s.blocksService.ListDay(ctx, uid, date)
	if err != nil {
		writeServiceError(w, logger, "list blocks", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, BlocksResponse{Date: date, Blocks: blocks})
}

func (s *Server) SetBlockCompleted(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := s.requireUID(w, r, logger)
	if !ok {
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("set block completed error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid block id in path value", nil)
		return
	}
	var req SetBlockCompletedRequest
	if err = httputil.DecodeJSON(r, &req); err != nil || req.Completed == nil {
		logger.Error("set block completed error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*15)
	defer cancel()
	res, err := s.blocksService.SetCompleted(ctx, uid, id, *req.Completed)
	if err != nil {
		writeServiceError(w, logger, "set block completed", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, res)
	logger.WithFields(log.Fields{
		"block_id":   id.String(),
		"changed":    res.Changed,
		"new_badges": len(res.NewBadges),
	}).Info("block completion set")
}

func (s *Server) DeleteBlock(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := s.requireUID(w, r, logger)
	if !ok {
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("block deletion error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid block id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	if err = s.blocksService.DeleteBlock(ctx, uid, id); err != nil {
		writeServiceError(w, logger, "block deletion", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.WithField("block_id", id.String()).Info("block deleted")
}

func (s *Server) CreateProject(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := s.requireUID(w, r, logger)
	if !ok {
		return
	}
	var req CreateProjectRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("create project error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	project, err := s.projectsService.CreateProject(ctx, uid, &service.CreateProjectRequest{
		Name:       req.Name,
		ClientName: req.ClientName,
		Status:     req.Status,
		Pricing:    req.PricingRequest.toService(),
	})
	if err != nil {
		writeServiceError(w, logger, "create project", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, project)
	logger.WithField("project_id", project.ID.String()).Info("project created")
}

func (s *Server) ListProjects(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := s.requireUID(w, r, logger)
	if !ok {
		return
	}
	page, limit, pagination := paginationFromQuery(r)
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*15)
	defer cancel()
	projects, err := s.projectsService.ListProjects(ctx, uid, pagination)
	if err != nil {
		writeServiceError(w, logger, "list projects", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, ProjectsResponse{
		Page:     page,
		Limit:    limit,
		Projects: projects,
	})
}

func (s *Server) GetProject(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := s.requireUID(w, r, logger)
	if !ok {
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("get project error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid project id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	project, err := s.projectsService.GetProject(ctx, uid, id)
	if err != nil {
		writeServiceError(w, logger, "get project", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, project)
}

func (s *Server) GetPortal(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	token, err := uuid.Parse(r.PathValue("token"))
	if err != nil {
		logger.Error("portal error: invalid token in path value")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "project not found", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	view, err := s.projectsService.GetPortalView(ctx, token)
	if err != nil {
		writeServiceError(w, logger, "portal", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, view)
}

func (s *Server) Quote(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	if _, ok := s.requireUID(w, r, logger); !ok {
		return
	}
	var req PricingRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("quote error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	pricing := req.toService()
	price, err := s.projectsService.Quote(&pricing)
	if err != nil {
		writeServiceError(w, logger, "quote", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, QuoteResponse{FinalPrice: price})
}

func (s *Server) requireUID(w http.ResponseWriter, r *http.Request, logger *log.Entry) (uuid.UUID, bool) {
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("unauthorized request")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return uuid.UUID{}, false
	}
	return uid, true
}

// paginationFromQuery reads page (from 1) and limit (1..50, default 10).
func paginationFromQuery(r *http.Request) (int, int, service.PaginationOpts) {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 1 || limit > 50 {
		limit = 10
	}
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}
	return page, limit, service.PaginationOpts{
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
}

func writeServiceError(w http.ResponseWriter, logger *log.Entry, op string, err error) {
	switch {
	case errors.Is(err, errorvalues.ErrInvalidRequest), errors.Is(err, errorvalues.ErrInvalidDate):
		logger.WithError(err).Error(op + " error: invalid request")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request", err)
	case errors.Is(err, errorvalues.ErrUserNotFound):
		logger.Error(op + " error: unexist user")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
	case errors.Is(err, errorvalues.ErrBlockNotFound):
		logger.Error(op + " error: unexist block")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "block doesn't exist", nil)
	case errors.Is(err, errorvalues.ErrProjectNotFound):
		logger.Error(op + " error: unexist project")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "project doesn't exist", nil)
	case errors.Is(err, errorvalues.ErrWrongOwner):
		logger.Error(op + " error: resource has different owner")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "resource doesn't exist", nil)
	case errors.Is(err, errorvalues.ErrProjectExists):
		logger.Error(op + " error: existed project")
		httputil.WriteErrorResponse(w, http.StatusConflict, "project with such name already exists", nil)
	default:
		logger.WithError(err).Error(op + " error: service error")
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error", nil)
	}
}
