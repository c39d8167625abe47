package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"business-portal/internal/backend"
	"business-portal/internal/dto"
	"business-portal/internal/entities"
	"business-portal/internal/session"
	apperrors "business-portal/pkg/errors"
)

const customerJSON = `{
	"id": 1,
	"name": "Иван",
	"last_name": "Петров",
	"middle_name": "Иванович",
	"email": "ivan@example.com",
	"phone": "+7 (999) 123-45-67",
	"inn": "123456789012",
	"snils": "12345678901",
	"tariff_id": 1,
	"created_at": "2025-01-01T00:00:00Z"
}`

const employeeJSON = `{
	"id": 5,
	"name": "Анна",
	"last_name": "Смирнова",
	"email": "anna@example.com",
	"active": true,
	"role_id": 2,
	"created_at": "2025-01-01T00:00:00Z"
}`

// loginBackend — подменный бэкенд логина: одна валидная пара
// учётных данных и настраиваемая форма записи user.
func loginBackend(t *testing.T, userJSON string) *backend.Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		if r.URL.Path == "/prot/roles" {
			fmt.Fprint(w, `[{"id":1,"name":"Специалист","created_at":"2025-01-01T00:00:00Z"},
				{"id":2,"name":"Менеджер","created_at":"2025-01-01T00:00:00Z"}]`)
			return
		}

		var payload dto.LoginDTO
		_ = json.NewDecoder(r.Body).Decode(&payload)
		if payload.Email != "ok@example.com" || payload.Password != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			fmt.Fprint(w, `{"error":"invalid credentials"}`)
			return
		}
		fmt.Fprintf(w, `{"token":"test-token","user":%s}`, userJSON)
	}))
	t.Cleanup(srv.Close)
	return backend.NewClient(srv.URL, 5*time.Second, zap.NewNop())
}

func newTestGateway(t *testing.T, userJSON string) (GatewayInterface, session.Store) {
	t.Helper()
	store := session.NewFileStore(filepath.Join(t.TempDir(), "snap.json"))
	return NewGateway(loginBackend(t, userJSON), store, zap.NewNop()), store
}

func TestLogin_CustomerShape(t *testing.T) {
	gw, store := newTestGateway(t, customerJSON)

	identity, err := gw.Login(context.Background(), "sid", dto.LoginDTO{Email: "ok@example.com", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, entities.TypeCustomer, identity.Type)
	assert.Equal(t, "Петров Иван Иванович", identity.FullName())
	assert.Equal(t, "123456789012", identity.Inn.String)

	snap, err := store.Get(context.Background(), "sid")
	require.NoError(t, err)
	assert.Equal(t, "test-token", snap.Token)
	require.NotNil(t, snap.Identity)
	assert.Equal(t, identity.ID, snap.Identity.ID)
}

func TestLogin_StaffShapeResolvedToManager(t *testing.T) {
	gw, _ := newTestGateway(t, employeeJSON)

	identity, err := gw.Login(context.Background(), "sid", dto.LoginDTO{Email: "ok@example.com", Password: "secret"})

	require.NoError(t, err)
	// role_id=2 в справочнике — "Менеджер"
	assert.Equal(t, entities.TypeManager, identity.Type)
	assert.True(t, identity.RoleID.Valid)
	assert.EqualValues(t, 2, identity.RoleID.Int64)
}

func TestLogin_InvalidCredentialsLeaveSessionUntouched(t *testing.T) {
	gw, store := newTestGateway(t, customerJSON)

	_, err := gw.Login(context.Background(), "sid", dto.LoginDTO{Email: "ok@example.com", Password: "wrong"})

	require.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	_, err = store.Get(context.Background(), "sid")
	assert.ErrorIs(t, err, apperrors.ErrSessionNotFound)
}

func TestLogin_AmbiguousShapeIsDecodeError(t *testing.T) {
	// запись с обоими наборами полей одновременно
	mixed := `{"id":1,"name":"X","last_name":"Y","email":"x@y.z","phone":"1","role_id":2,"active":true,"created_at":"2025-01-01T00:00:00Z"}`
	gw, store := newTestGateway(t, mixed)

	_, err := gw.Login(context.Background(), "sid", dto.LoginDTO{Email: "ok@example.com", Password: "secret"})

	require.ErrorIs(t, err, apperrors.ErrAmbiguousAccount)
	_, err = store.Get(context.Background(), "sid")
	assert.ErrorIs(t, err, apperrors.ErrSessionNotFound)
}

func TestLogin_ShapeWithoutDiscriminatorRejected(t *testing.T) {
	bare := `{"id":1,"name":"X","last_name":"Y","email":"x@y.z","created_at":"2025-01-01T00:00:00Z"}`
	gw, _ := newTestGateway(t, bare)

	_, err := gw.Login(context.Background(), "sid", dto.LoginDTO{Email: "ok@example.com", Password: "secret"})

	require.ErrorIs(t, err, apperrors.ErrAmbiguousAccount)
}

func TestLogout_Idempotent(t *testing.T) {
	gw, _ := newTestGateway(t, customerJSON)

	require.NoError(t, gw.Logout(context.Background(), "sid"))
	require.NoError(t, gw.Logout(context.Background(), "sid"))
}

func TestResolve_MissingSessionIsNotError(t *testing.T) {
	gw, _ := newTestGateway(t, customerJSON)

	snap, err := gw.Resolve(context.Background(), "no-such-session")

	require.NoError(t, err)
	assert.Nil(t, snap)
}

func TestResolve_RestoresCachedIdentity(t *testing.T) {
	gw, _ := newTestGateway(t, customerJSON)

	_, err := gw.Login(context.Background(), "sid", dto.LoginDTO{Email: "ok@example.com", Password: "secret"})
	require.NoError(t, err)

	snap, err := gw.Resolve(context.Background(), "sid")
	require.NoError(t, err)
	require.NotNil(t, snap)
	assert.Equal(t, "test-token", snap.Token)
	assert.Equal(t, entities.TypeCustomer, snap.Identity.Type)
}

func TestStaffTypeByRole(t *testing.T) {
	roles := []entities.Role{
		{ID: 1, Name: "Специалист"},
		{ID: 2, Name: "  менеджер "},
		{ID: 3, Name: "Manager"},
	}

	assert.Equal(t, entities.TypeEmployee, StaffTypeByRole(1, roles))
	assert.Equal(t, entities.TypeManager, StaffTypeByRole(2, roles))
	assert.Equal(t, entities.TypeManager, StaffTypeByRole(3, roles))
	assert.Equal(t, entities.TypeEmployee, StaffTypeByRole(99, roles))
}
