package api_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/limbo/agencydesk/internal/api"
	errorvalues "github.com/limbo/agencydesk/internal/error_values"
	"github.com/limbo/agencydesk/internal/service"
	"github.com/limbo/agencydesk/internal/service/mocks"
	"github.com/limbo/agencydesk/pkg/entity"
	jwtservice "github.com/limbo/agencydesk/pkg/jwt_service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var (
	username        = "test_name"
	password        = "test_password"
	passwordHash, _ = bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	userID          = uuid.New()
)

func testUser() *entity.User {
	return &entity.User{
		ID:           userID,
		Name:         username,
		PasswordHash: string(passwordHash),
	}
}

func marshal(t *testing.T, v any) []byte {
	body, err := sonic.ConfigDefault.Marshal(v)
	require.NoError(t, err)
	return body
}

func authorized(r *http.Request) *http.Request {
	return r.WithContext(api.ContextWithUID(r.Context(), userID))
}

func TestRegister(t *testing.T) {
	ctrl := gomock.NewController(t)
	uService := mocks.NewMockUserServiceI(ctrl)
	serv := api.New(&api.ServicesList{UserService: uService})
	body := marshal(t, api.RegisterRequest{Name: username, Password: password})
	expectedReq := &service.RegisterRequest{Name: username, Password: password}

	testCases := []struct {
		Desc         string
		ExpectedCode int
		MockPrepFunc func()
		Body         io.Reader
	}{
		{
			Desc:         "registered",
			ExpectedCode: http.StatusCreated,
			MockPrepFunc: func() {
				uService.EXPECT().Register(gomock.Any(), expectedReq).Return(testUser(), nil)
			},
			Body: bytes.NewReader(body),
		},
		{
			Desc:         "existed user",
			ExpectedCode: http.StatusConflict,
			MockPrepFunc: func() {
				uService.EXPECT().Register(gomock.Any(), expectedReq).Return(nil, errorvalues.ErrUserExists)
			},
			Body: bytes.NewReader(body),
		},
		{
			Desc:         "invalid credentials format",
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {
				uService.EXPECT().Register(gomock.Any(), expectedReq).Return(nil, errorvalues.ErrInvalidRequest)
			},
			Body: bytes.NewReader(body),
		},
		{
			Desc:         "service error",
			ExpectedCode: http.StatusInternalServerError,
			MockPrepFunc: func() {
				uService.EXPECT().Register(gomock.Any(), expectedReq).Return(nil, errors.New("mocked error"))
			},
			Body: bytes.NewReader(body),
		},
		{
			Desc:         "invalid body",
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
			Body:         bytes.NewReader([]byte("corrupted")),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			rr := httptest.NewRecorder()
			serv.Register(rr, httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", tc.Body))
			assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
		})
	}
}

func TestLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	uService := mocks.NewMockUserServiceI(ctrl)
	jwt := jwtservice.New("secret", time.Hour)
	serv := api.New(&api.ServicesList{UserService: uService, JwtService: jwt})
	body := marshal(t, api.LoginRequest{Name: username, Password: password})

	t.Run("logged in", func(t *testing.T) {
		uService.EXPECT().Login(gomock.Any(), username, password).Return(testUser(), nil)
		rr := httptest.NewRecorder()
		serv.Login(rr, httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body)))
		require.Equal(t, http.StatusOK, rr.Result().StatusCode)
		result := make(map[string]any)
		require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Result().Body).Decode(&result))
		token, ok := result["token"].(string)
		require.True(t, ok)
		claims, err := jwt.ParseToken(token)
		require.NoError(t, err)
		assert.Equal(t, userID.String(), claims.UserID)
	})
	t.Run("wrong password", func(t *testing.T) {
		uService.EXPECT().Login(gomock.Any(), username, password).Return(nil, errorvalues.ErrWrongCredentials)
		rr := httptest.NewRecorder()
		serv.Login(rr, httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body)))
		assert.Equal(t, http.StatusForbidden, rr.Result().StatusCode)
	})
	t.Run("unexist user", func(t *testing.T) {
		uService.EXPECT().Login(gomock.Any(), username, password).Return(nil, errorvalues.ErrUserNotFound)
		rr := httptest.NewRecorder()
		serv.Login(rr, httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body)))
		assert.Equal(t, http.StatusNotFound, rr.Result().StatusCode)
	})
	t.Run("invalid body", func(t *testing.T) {
		rr := httptest.NewRecorder()
		serv.Login(rr, httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil))
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
}

func testHandler(w http.ResponseWriter, r *http.Request) {
	uid, err := api.GetUIDFromContext(r)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"uid": "` + uid.String() + `"}`))
}

func TestAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	uService := mocks.NewMockUserServiceI(ctrl)
	jwt := jwtservice.New("secret", time.Hour)
	serv := api.New(&api.ServicesList{UserService: uService, JwtService: jwt})
	handler := serv.AuthMiddleware(http.HandlerFunc(testHandler))
	token, err := jwt.GenerateToken(testUser())
	require.NoError(t, err)

	testCases := []struct {
		Desc         string
		Header       string
		ExpectedCode int
		MockPrepFunc func()
	}{
		{
			Desc:         "successful auth",
			Header:       "Bearer " + token,
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				uService.EXPECT().GetByID(gomock.Any(), userID).Return(testUser(), nil)
			},
		},
		{
			Desc:         "deleted user",
			Header:       "Bearer " + token,
			ExpectedCode: http.StatusUnauthorized,
			MockPrepFunc: func() {
				uService.EXPECT().GetByID(gomock.Any(), userID).Return(nil, errorvalues.ErrUserNotFound)
			},
		},
		{
			Desc:         "no header",
			ExpectedCode: http.StatusUnauthorized,
			MockPrepFunc: func() {},
		},
		{
			Desc:         "wrong scheme",
			Header:       "Basic " + token,
			ExpectedCode: http.StatusUnauthorized,
			MockPrepFunc: func() {},
		},
		{
			Desc:         "forged token",
			Header:       "Bearer " + token + "x",
			ExpectedCode: http.StatusUnauthorized,
			MockPrepFunc: func() {},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			rr := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/endpoint", nil)
			if tc.Header != "" {
				req.Header.Set("Authorization", tc.Header)
			}
			handler.ServeHTTP(rr, req)
			assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
		})
	}
}

func TestGetStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	sService := mocks.NewMockStatsServiceI(ctrl)
	serv := api.New(&api.ServicesList{StatsService: sService})

	t.Run("provided", func(t *testing.T) {
		sService.EXPECT().GetStats(gomock.Any(), userID).Return(&entity.UserStats{UserID: userID, CurrentStreak: 3, LongestStreak: 5}, nil)
		rr := httptest.NewRecorder()
		serv.GetStats(rr, authorized(httptest.NewRequest(http.MethodGet, "/api/v1/stats", nil)))
		require.Equal(t, http.StatusOK, rr.Result().StatusCode)
		var stats entity.UserStats
		require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Result().Body).Decode(&stats))
		assert.Equal(t, 3, stats.CurrentStreak)
		assert.Equal(t, 5, stats.LongestStreak)
	})
	t.Run("unauthorized", func(t *testing.T) {
		rr := httptest.NewRecorder()
		serv.GetStats(rr, httptest.NewRequest(http.MethodGet, "/api/v1/stats", nil))
		assert.Equal(t, http.StatusUnauthorized, rr.Result().StatusCode)
	})
	t.Run("service error", func(t *testing.T) {
		sService.EXPECT().GetStats(gomock.Any(), userID).Return(nil, errors.New("db is down"))
		rr := httptest.NewRecorder()
		serv.GetStats(rr, authorized(httptest.NewRequest(http.MethodGet, "/api/v1/stats", nil)))
		assert.Equal(t, http.StatusInternalServerError, rr.Result().StatusCode)
	})
}

func TestCheckAchievements(t *testing.T) {
	ctrl := gomock.NewController(t)
	aService := mocks.NewMockAchievementServiceI(ctrl)
	serv := api.New(&api.ServicesList{AchievementService: aService})
	body := marshal(t, api.CheckAchievementsRequest{Date: "2025-03-03"})

	testCases := []struct {
		Desc         string
		ExpectedCode int
		MockPrepFunc func()
		Body         io.Reader
	}{
		{
			Desc:         "checked",
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				aService.EXPECT().CheckDayAchievements(gomock.Any(), userID, "2025-03-03").Return(&service.DayAchievements{
					NewBadges: []*entity.Achievement{{Type: entity.AchievementProductiveDay}},
					Stats:     &entity.UserStats{CurrentStreak: 1},
				}, nil)
			},
			Body: bytes.NewReader(body),
		},
		{
			Desc:         "invalid date",
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {
				aService.EXPECT().CheckDayAchievements(gomock.Any(), userID, "2025-03-03").Return(nil, errorvalues.ErrInvalidDate)
			},
			Body: bytes.NewReader(body),
		},
		{
			Desc:         "corrupted body",
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
			Body:         bytes.NewReader([]byte("{")),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			rr := httptest.NewRecorder()
			serv.CheckAchievements(rr, authorized(httptest.NewRequest(http.MethodPost, "/api/v1/achievements/check", tc.Body)))
			assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
		})
	}
}

func TestListAchievements(t *testing.T) {
	ctrl := gomock.NewController(t)
	aService := mocks.NewMockAchievementServiceI(ctrl)
	serv := api.New(&api.ServicesList{AchievementService: aService})
	testCases := []struct {
		Desc       string
		Query      string
		Pagination service.PaginationOpts
	}{
		{Desc: "defaults", Query: "", Pagination: service.PaginationOpts{Limit: 10, Offset: 0}},
		{Desc: "second page", Query: "?page=2&limit=4", Pagination: service.PaginationOpts{Limit: 4, Offset: 4}},
		{Desc: "limit out of range", Query: "?limit=500", Pagination: service.PaginationOpts{Limit: 10, Offset: 0}},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			aService.EXPECT().ListAchievements(gomock.Any(), userID, tc.Pagination).Return([]*entity.Achievement{}, nil)
			rr := httptest.NewRecorder()
			serv.ListAchievements(rr, authorized(httptest.NewRequest(http.MethodGet, "/api/v1/achievements"+tc.Query, nil)))
			assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
		})
	}
}

func TestCreateBlock(t *testing.T) {
	ctrl := gomock.NewController(t)
	bService := mocks.NewMockBlocksServiceI(ctrl)
	serv := api.New(&api.ServicesList{BlocksService: bService})
	body := marshal(t, api.CreateBlockRequest{Date: "2025-03-03", Title: "mockups", Hours: 2})
	expectedReq := &service.CreateBlockRequest{Date: "2025-03-03", Title: "mockups", Hours: 2}

	testCases := []struct {
		Desc         string
		ExpectedCode int
		MockPrepFunc func()
		Body         io.Reader
	}{
		{
			Desc:         "created",
			ExpectedCode: http.StatusCreated,
			MockPrepFunc: func() {
				bService.EXPECT().CreateBlock(gomock.Any(), userID, expectedReq).Return(&entity.CapacityBlock{ID: uuid.New(), UserID: userID}, nil)
			},
			Body: bytes.NewReader(body),
		},
		{
			Desc:         "validation failed",
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {
				bService.EXPECT().CreateBlock(gomock.Any(), userID, expectedReq).Return(nil, errorvalues.ErrInvalidRequest)
			},
			Body: bytes.NewReader(body),
		},
		{
			Desc:         "service error",
			ExpectedCode: http.StatusInternalServerError,
			MockPrepFunc: func() {
				bService.EXPECT().CreateBlock(gomock.Any(), userID, expectedReq).Return(nil, errors.New("service error"))
			},
			Body: bytes.NewReader(body),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			rr := httptest.NewRecorder()
			serv.CreateBlock(rr, authorized(httptest.NewRequest(http.MethodPost, "/api/v1/blocks", tc.Body)))
			assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
		})
	}
}

func TestSetBlockCompleted(t *testing.T) {
	ctrl := gomock.NewController(t)
	bService := mocks.NewMockBlocksServiceI(ctrl)
	serv := api.New(&api.ServicesList{BlocksService: bService})
	blockID := uuid.New()
	completed := true
	body := marshal(t, api.SetBlockCompletedRequest{Completed: &completed})

	testCases := []struct {
		Desc         string
		ExpectedCode int
		MockPrepFunc func()
		PathValue    string
		Body         []byte
	}{
		{
			Desc:         "completed with badges",
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				bService.EXPECT().SetCompleted(gomock.Any(), userID, blockID, true).Return(&service.BlockCompletion{
					Block:                &entity.CapacityBlock{ID: blockID, Completed: true},
					Changed:              true,
					TotalBlocksCompleted: 10,
					NewBadges:            []*entity.Achievement{{Type: entity.AchievementBlocks10}},
				}, nil)
			},
			PathValue: blockID.String(),
			Body:      body,
		},
		{
			Desc:         "other owner",
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() {
				bService.EXPECT().SetCompleted(gomock.Any(), userID, blockID, true).Return(nil, errorvalues.ErrWrongOwner)
			},
			PathValue: blockID.String(),
			Body:      body,
		},
		{
			Desc:         "unexist block",
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() {
				bService.EXPECT().SetCompleted(gomock.Any(), userID, blockID, true).Return(nil, errorvalues.ErrBlockNotFound)
			},
			PathValue: blockID.String(),
			Body:      body,
		},
		{
			Desc:         "missing completed flag",
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
			PathValue:    blockID.String(),
			Body:         []byte(`{}`),
		},
		{
			Desc:         "invalid id",
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
			PathValue:    "not-a-uuid",
			Body:         body,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			rr := httptest.NewRecorder()
			req := authorized(httptest.NewRequest(http.MethodPatch, "/api/v1/blocks/"+tc.PathValue, bytes.NewReader(tc.Body)))
			req.SetPathValue("id", tc.PathValue)
			serv.SetBlockCompleted(rr, req)
			assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
		})
	}
}

func TestDeleteBlock(t *testing.T) {
	ctrl := gomock.NewController(t)
	bService := mocks.NewMockBlocksServiceI(ctrl)
	serv := api.New(&api.ServicesList{BlocksService: bService})
	blockID := uuid.New()

	bService.EXPECT().DeleteBlock(gomock.Any(), userID, blockID).Return(nil)
	rr := httptest.NewRecorder()
	req := authorized(httptest.NewRequest(http.MethodDelete, "/api/v1/blocks/"+blockID.String(), nil))
	req.SetPathValue("id", blockID.String())
	serv.DeleteBlock(rr, req)
	assert.Equal(t, http.StatusNoContent, rr.Result().StatusCode)
}

func TestProjectsHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	pService := mocks.NewMockProjectsServiceI(ctrl)
	serv := api.New(&api.ServicesList{ProjectsService: pService})
	projectID := uuid.New()
	view := &service.ProjectView{
		Project:    &entity.Project{ID: projectID, OwnerID: userID, Name: "Website", Status: "draft"},
		FinalPrice: 378,
	}

	t.Run("created", func(t *testing.T) {
		body := marshal(t, api.CreateProjectRequest{
			Name: "Website",
			PricingRequest: api.PricingRequest{
				BasePrice: 300,
				AddOns:    []entity.AddOn{{Name: "Copy", Price: 40}, {Name: "SEO", Price: 80}},
				Discount:  10,
			},
		})
		pService.EXPECT().CreateProject(gomock.Any(), userID, &service.CreateProjectRequest{
			Name: "Website",
			Pricing: service.PricingRequest{
				BasePrice: 300,
				AddOns:    []service.AddOnRequest{{Name: "Copy", Price: 40}, {Name: "SEO", Price: 80}},
				Discount:  10,
			},
		}).Return(view, nil)
		rr := httptest.NewRecorder()
		serv.CreateProject(rr, authorized(httptest.NewRequest(http.MethodPost, "/api/v1/projects", bytes.NewReader(body))))
		require.Equal(t, http.StatusCreated, rr.Result().StatusCode)
		result := make(map[string]any)
		require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Result().Body).Decode(&result))
		assert.Equal(t, 378.0, result["finalPrice"])
		assert.Equal(t, "Website", result["name"])
	})
	t.Run("duplicate", func(t *testing.T) {
		body := marshal(t, api.CreateProjectRequest{Name: "Website"})
		pService.EXPECT().CreateProject(gomock.Any(), userID, gomock.Any()).Return(nil, errorvalues.ErrProjectExists)
		rr := httptest.NewRecorder()
		serv.CreateProject(rr, authorized(httptest.NewRequest(http.MethodPost, "/api/v1/projects", bytes.NewReader(body))))
		assert.Equal(t, http.StatusConflict, rr.Result().StatusCode)
	})
	t.Run("get by id", func(t *testing.T) {
		pService.EXPECT().GetProject(gomock.Any(), userID, projectID).Return(view, nil)
		rr := httptest.NewRecorder()
		req := authorized(httptest.NewRequest(http.MethodGet, "/api/v1/projects/"+projectID.String(), nil))
		req.SetPathValue("id", projectID.String())
		serv.GetProject(rr, req)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("portal", func(t *testing.T) {
		token := uuid.New()
		pService.EXPECT().GetPortalView(gomock.Any(), token).Return(&entity.PortalView{Name: "Website", FinalPrice: 378}, nil)
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/portal/"+token.String(), nil)
		req.SetPathValue("token", token.String())
		serv.GetPortal(rr, req)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("portal with unknown token", func(t *testing.T) {
		token := uuid.New()
		pService.EXPECT().GetPortalView(gomock.Any(), token).Return(nil, errorvalues.ErrProjectNotFound)
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/portal/"+token.String(), nil)
		req.SetPathValue("token", token.String())
		serv.GetPortal(rr, req)
		assert.Equal(t, http.StatusNotFound, rr.Result().StatusCode)
	})
	t.Run("quote", func(t *testing.T) {
		body := marshal(t, api.PricingRequest{IsHourlyQuote: true, CustomHours: 10, HourlyRate: 25})
		pService.EXPECT().Quote(&service.PricingRequest{
			AddOns:        []service.AddOnRequest{},
			IsHourlyQuote: true,
			CustomHours:   10,
			HourlyRate:    25,
		}).Return(250.0, nil)
		rr := httptest.NewRecorder()
		serv.Quote(rr, authorized(httptest.NewRequest(http.MethodPost, "/api/v1/pricing/quote", bytes.NewReader(body))))
		require.Equal(t, http.StatusOK, rr.Result().StatusCode)
		var res api.QuoteResponse
		require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Result().Body).Decode(&res))
		assert.Equal(t, 250.0, res.FinalPrice)
	})
}

func TestLinkTelegram(t *testing.T) {
	ctrl := gomock.NewController(t)
	uService := mocks.NewMockUserServiceI(ctrl)
	serv := api.New(&api.ServicesList{UserService: uService})
	chatID := int64(5150)

	uService.EXPECT().LinkTelegram(gomock.Any(), userID, &chatID).Return(nil)
	rr := httptest.NewRecorder()
	body := marshal(t, api.LinkTelegramRequest{ChatID: &chatID})
	serv.LinkTelegram(rr, authorized(httptest.NewRequest(http.MethodPut, "/api/v1/me/telegram", bytes.NewReader(body))))
	assert.Equal(t, http.StatusNoContent, rr.Result().StatusCode)
}

func TestRouter(t *testing.T) {
	ctrl := gomock.NewController(t)
	pService := mocks.NewMockProjectsServiceI(ctrl)
	serv := api.New(&api.ServicesList{ProjectsService: pService}, api.WithRateLimit(1, 2))
	handler := serv.Handler()

	t.Run("health", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
		assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
	})
	t.Run("protected route without token", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/stats", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		handler.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Result().StatusCode)
	})
	t.Run("portal path value reaches the handler", func(t *testing.T) {
		token := uuid.New()
		pService.EXPECT().GetPortalView(gomock.Any(), token).Return(&entity.PortalView{Name: "Website"}, nil)
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/portal/"+token.String(), nil)
		req.RemoteAddr = "10.0.0.2:1234"
		handler.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("rate limited", func(t *testing.T) {
		codes := make([]int, 0, 3)
		for range 3 {
			rr := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil)
			req.RemoteAddr = "10.0.0.3:1234"
			handler.ServeHTTP(rr, req)
			codes = append(codes, rr.Result().StatusCode)
		}
		assert.Equal(t, []int{http.StatusBadRequest, http.StatusBadRequest, http.StatusTooManyRequests}, codes)
	})
}

func TestRateLimiter(t *testing.T) {
	rl := api.NewRateLimiter(1, 1)
	assert.True(t, rl.Allow("a"))
	assert.False(t, rl.Allow("a"))
	assert.True(t, rl.Allow("b"))
	rl.Forget(0)
	assert.True(t, rl.Allow("a"))
}

func TestRunShutsDownOnCancel(t *testing.T) {
	serv := api.New(&api.ServicesList{})
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- serv.Run(ctx, "127.0.0.1:0")
	}()
	time.Sleep(100 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
