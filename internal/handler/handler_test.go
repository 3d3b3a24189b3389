package handler_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"miniadmin/internal/handler"
	"miniadmin/internal/model"
	"miniadmin/internal/service"
)

type want struct {
	code        int
	response    string
	contentType string
}

type adminServiceMock struct{ mock.Mock }

func (m *adminServiceMock) IsAdmin(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *adminServiceMock) List(ctx context.Context) ([]model.Admin, error) {
	args := m.Called(ctx)
	admins, _ := args.Get(0).([]model.Admin)
	return admins, args.Error(1)
}

func (m *adminServiceMock) Add(ctx context.Context, username string) error {
	return m.Called(ctx, username).Error(0)
}

func (m *adminServiceMock) Delete(ctx context.Context, username string) error {
	return m.Called(ctx, username).Error(0)
}

type userServiceMock struct{ mock.Mock }

func (m *userServiceMock) List(ctx context.Context, p service.Page) (*service.UserPage, error) {
	args := m.Called(ctx, p)
	page, _ := args.Get(0).(*service.UserPage)
	return page, args.Error(1)
}

type withdrawalServiceMock struct{ mock.Mock }

func (m *withdrawalServiceMock) ListAll(ctx context.Context) ([]model.WithdrawalRequest, error) {
	args := m.Called(ctx)
	requests, _ := args.Get(0).([]model.WithdrawalRequest)
	return requests, args.Error(1)
}

type healthMock struct{ mock.Mock }

func (m *healthMock) Check(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type testAPI struct {
	server      *httptest.Server
	admins      *adminServiceMock
	users       *userServiceMock
	withdrawals *withdrawalServiceMock
	health      *healthMock
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	api := &testAPI{
		admins:      new(adminServiceMock),
		users:       new(userServiceMock),
		withdrawals: new(withdrawalServiceMock),
		health:      new(healthMock),
	}

	router := chi.NewRouter()
	handler.Register(router, handler.Services{
		Admins:       api.admins,
		Users:        api.users,
		Withdrawals:  api.withdrawals,
		Health:       api.health,
		UsersPerPage: service.DefaultLimit,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	api.server = httptest.NewServer(router)
	t.Cleanup(api.server.Close)

	return api
}

func (api *testAPI) do(t *testing.T, method, path string) (int, string, string) {
	t.Helper()

	request, err := http.NewRequest(method, api.server.URL+path, nil)
	require.NoError(t, err)

	response, err := api.server.Client().Do(request)
	require.NoError(t, err)
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	require.NoError(t, err)

	return response.StatusCode, string(body), response.Header.Get("Content-Type")
}
