package service_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/samber/oops"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"miniadmin/internal/model"
	"miniadmin/internal/service"
	"miniadmin/internal/service/mocks"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestAdminServiceIsAdmin(t *testing.T) {
	ctx := context.TODO()

	t.Run("it returns true for a stored admin", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		storeMock := mocks.NewMockStore(ctrl)
		storeMock.EXPECT().AdminExists(gomock.Any(), "alice").Times(1).Return(true, nil)

		ok, err := service.NewAdminService(storeMock, discardLogger).IsAdmin(ctx, "alice")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("it returns false for an unknown username", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		storeMock := mocks.NewMockStore(ctrl)
		storeMock.EXPECT().AdminExists(gomock.Any(), "Alice").Times(1).Return(false, nil)

		ok, err := service.NewAdminService(storeMock, discardLogger).IsAdmin(ctx, "Alice")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("it skips the store for an empty username", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		storeMock := mocks.NewMockStore(ctrl)

		ok, err := service.NewAdminService(storeMock, discardLogger).IsAdmin(ctx, "")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("it wraps store failures", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		storeMock := mocks.NewMockStore(ctrl)
		storeFailure := errors.New("connection refused")
		storeMock.EXPECT().AdminExists(gomock.Any(), "alice").Return(false, storeFailure)

		ok, err := service.NewAdminService(storeMock, discardLogger).IsAdmin(ctx, "alice")
		require.Error(t, err)
		assert.False(t, ok)
		assert.ErrorIs(t, err, storeFailure)

		oopsErr, isOops := oops.AsOops(err)
		require.True(t, isOops)
		assert.Equal(t, service.CodeStore, oopsErr.Code())
	})
}

func TestAdminServiceList(t *testing.T) {
	ctx := context.TODO()

	t.Run("it returns stored admins", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		storeMock := mocks.NewMockStore(ctrl)
		admins := []model.Admin{{Username: "alice"}, {Username: "bob"}}
		storeMock.EXPECT().ListAdmins(gomock.Any()).Return(admins, nil)

		got, err := service.NewAdminService(storeMock, discardLogger).List(ctx)
		require.NoError(t, err)
		assert.Equal(t, admins, got)
	})

	t.Run("it returns an empty list instead of nil", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		storeMock := mocks.NewMockStore(ctrl)
		storeMock.EXPECT().ListAdmins(gomock.Any()).Return(nil, nil)

		got, err := service.NewAdminService(storeMock, discardLogger).List(ctx)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("it wraps store failures", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		storeMock := mocks.NewMockStore(ctrl)
		storeMock.EXPECT().ListAdmins(gomock.Any()).Return(nil, errors.New("boom"))

		_, err := service.NewAdminService(storeMock, discardLogger).List(ctx)
		assert.Error(t, err)
	})
}

func TestAdminServiceAddDelete(t *testing.T) {
	ctx := context.TODO()

	t.Run("add then check then delete then check", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		storeMock := mocks.NewMockStore(ctrl)
		gomock.InOrder(
			storeMock.EXPECT().CreateAdmin(gomock.Any(), "carol").Return(nil),
			storeMock.EXPECT().AdminExists(gomock.Any(), "carol").Return(true, nil),
			storeMock.EXPECT().DeleteAdmin(gomock.Any(), "carol").Return(int64(1), nil),
			storeMock.EXPECT().AdminExists(gomock.Any(), "carol").Return(false, nil),
		)
		admins := service.NewAdminService(storeMock, discardLogger)

		require.NoError(t, admins.Add(ctx, "carol"))
		ok, err := admins.IsAdmin(ctx, "carol")
		require.NoError(t, err)
		assert.True(t, ok)

		require.NoError(t, admins.Delete(ctx, "carol"))
		ok, err = admins.IsAdmin(ctx, "carol")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("deleting a missing admin succeeds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		storeMock := mocks.NewMockStore(ctrl)
		storeMock.EXPECT().DeleteAdmin(gomock.Any(), "nobody").Return(int64(0), nil)

		assert.NoError(t, service.NewAdminService(storeMock, discardLogger).Delete(ctx, "nobody"))
	})

	t.Run("adding a duplicate reports ErrAdminExists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		storeMock := mocks.NewMockStore(ctrl)
		storeMock.EXPECT().CreateAdmin(gomock.Any(), "alice").Return(service.ErrAdminExists)

		err := service.NewAdminService(storeMock, discardLogger).Add(ctx, "alice")
		assert.ErrorIs(t, err, service.ErrAdminExists)
	})

	t.Run("changes are logged through the given logger", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		storeMock := mocks.NewMockStore(ctrl)
		storeMock.EXPECT().CreateAdmin(gomock.Any(), "dave").Return(nil)
		storeMock.EXPECT().DeleteAdmin(gomock.Any(), "dave").Return(int64(1), nil)

		var buf bytes.Buffer
		admins := service.NewAdminService(storeMock, slog.New(slog.NewTextHandler(&buf, nil)))

		require.NoError(t, admins.Add(ctx, "dave"))
		require.NoError(t, admins.Delete(ctx, "dave"))
		assert.Contains(t, buf.String(), `msg="admin added" username=dave`)
		assert.Contains(t, buf.String(), `msg="admin deleted" username=dave rows=1`)
	})

	t.Run("store failures are wrapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		storeMock := mocks.NewMockStore(ctrl)
		storeFailure := errors.New("boom")
		storeMock.EXPECT().CreateAdmin(gomock.Any(), "alice").Return(storeFailure)
		storeMock.EXPECT().DeleteAdmin(gomock.Any(), "alice").Return(int64(0), storeFailure)
		admins := service.NewAdminService(storeMock, discardLogger)

		err := admins.Add(ctx, "alice")
		assert.ErrorIs(t, err, storeFailure)
		assert.NotErrorIs(t, err, service.ErrAdminExists)
		assert.ErrorIs(t, admins.Delete(ctx, "alice"), storeFailure)
	})
}
