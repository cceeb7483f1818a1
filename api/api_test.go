package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"hash/fnv"
	"io"
	"net/http/httptest"
	"testing"

	"nutristore/catalog-api/model"
	"nutristore/catalog-api/pagination"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type mailerStub struct {
	to   string
	code string
	fail bool
	sent int
}

func (m *mailerStub) SendLoginOTP(to, code string) error {
	if m.fail {
		return errors.New("smtp unreachable")
	}

	m.sent++
	m.to = to
	m.code = code
	return nil
}

// envelope mirrors the response body shape for assertions
type envelope struct {
	Success    bool                   `json:"success"`
	Message    string                 `json:"message"`
	Status     int                    `json:"status"`
	Data       json.RawMessage        `json:"data"`
	Pagination *pagination.Pagination `json:"pagination"`
}

func newTestAPI(t *testing.T) (*API, *mailerStub) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	viper.Set("jwt.secret", "test-secret")
	viper.Set("pagination.per_page", 10)
	viper.Set("pagination.max_per_page", 250)

	conn, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())))
	require.NoError(t, err)

	err = conn.AutoMigrate(
		model.User{},
		model.ProductCategory{},
		model.Product{},
		model.Review{},
		model.Order{},
		model.OrderItem{},
	)
	require.NoError(t, err)

	m := &mailerStub{}
	return New(conn, m), m
}

// testIP derives a stable per-test client address so the login rate
// limiter's per-IP buckets don't bleed between tests.
func testIP(t *testing.T) string {
	h := fnv.New32a()
	h.Write([]byte(t.Name()))
	v := h.Sum32()

	return fmt.Sprintf("10.%d.%d.%d:1234", byte(v>>16), byte(v>>8), byte(v))
}

func doJSON(t *testing.T, a *API, method, path string, body any, token string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, rd)
	req.RemoteAddr = testIP(t)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, req)

	var e envelope
	if w.Body.Len() > 0 {
		json.Unmarshal(w.Body.Bytes(), &e)
	}

	return w, e
}

func seedCustomer(t *testing.T, a *API, email string, status int) model.User {
	t.Helper()

	u := model.User{
		Name:         "Jane Doe",
		Email:        email,
		PasswordHash: "not-used-by-otp-login",
		Status:       status,
	}
	require.NoError(t, a.DB.Create(&u).Error)

	return u
}
