package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"business-portal/internal/entities"
	apperrors "business-portal/pkg/errors"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 5*time.Second, zap.NewNop())
}

func TestClient_AttachesBearerToken(t *testing.T) {
	var gotAuth string
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		fmt.Fprint(w, `[]`)
	})

	_, err := c.WithToken("abc").Requests(context.Background(), RequestFilter{})

	require.NoError(t, err)
	assert.Equal(t, "Bearer abc", gotAuth)
}

func TestClient_OmitsHeaderWithoutToken(t *testing.T) {
	var gotAuth string
	var present bool
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, present = r.Header["Authorization"]
		fmt.Fprint(w, `[]`)
	})

	_, err := c.Requests(context.Background(), RequestFilter{})

	require.NoError(t, err)
	assert.False(t, present, "без токена заголовок не отправляется")
	assert.Empty(t, gotAuth)
}

func TestClient_ErrorMapping(t *testing.T) {
	cases := []struct {
		name     string
		code     int
		sentinel error
	}{
		{"401 — неавторизован", http.StatusUnauthorized, apperrors.ErrUnauthorized},
		{"403 — запрещено", http.StatusForbidden, apperrors.ErrForbidden},
		{"404 — не найдено", http.StatusNotFound, apperrors.ErrNotFound},
		{"422 — валидация", http.StatusUnprocessableEntity, apperrors.ErrValidation},
		{"500 — сервер", http.StatusInternalServerError, apperrors.ErrServer},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.code)
				fmt.Fprint(w, `{"error":"boom"}`)
			})

			_, err := c.Request(context.Background(), 1)

			assert.ErrorIs(t, err, tc.sentinel)
		})
	}
}

func TestClient_TransportFailureIsNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // адрес есть, сервера нет

	c := NewClient(srv.URL, time.Second, zap.NewNop())
	_, err := c.Requests(context.Background(), RequestFilter{})

	assert.ErrorIs(t, err, apperrors.ErrNetwork)
}

func TestClient_LoginMaps401ToInvalidCredentials(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"error":"bad pair"}`)
	})

	_, err := c.Login(context.Background(), "a@b.c", "nope")

	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestClient_UnknownStatusOrdinalIsDecodeError(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"id":1,"owner_id":2,"service_id":3,"status":7,"created_at":"2025-03-01T12:00:00Z"}`)
	})

	_, err := c.Request(context.Background(), 1)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "неизвестный код статуса")
}

func TestClient_RequestFilterQuery(t *testing.T) {
	var gotQuery string
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		fmt.Fprint(w, `[]`)
	})

	st := entities.StatusInProgress
	_, err := c.Requests(context.Background(), RequestFilter{OwnerID: 2, Status: &st})

	require.NoError(t, err)
	assert.Contains(t, gotQuery, "owner_id=2")
	assert.Contains(t, gotQuery, "status=1")
}
