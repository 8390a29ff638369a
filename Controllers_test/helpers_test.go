package Controllers_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"

	"github.com/reservetable/webapp/gateway"
	"github.com/reservetable/webapp/models"
)

// MockTableGateway is a mock implementation of controllers.TableGateway
type MockTableGateway struct {
	mock.Mock
}

func (m *MockTableGateway) ListTables(ctx context.Context, filters map[string]string) ([]models.Table, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Table), args.Error(1)
}

func (m *MockTableGateway) GetTable(ctx context.Context, id int64) (*models.Table, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Table), args.Error(1)
}

func (m *MockTableGateway) CreateTable(ctx context.Context, input gateway.CreateTableInput) (*models.Table, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Table), args.Error(1)
}

func (m *MockTableGateway) DeactivateTable(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockReservationGateway is a mock implementation of controllers.ReservationGateway
type MockReservationGateway struct {
	mock.Mock
}

func (m *MockReservationGateway) ListReservations(ctx context.Context, filters map[string]string) ([]models.Reservation, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Reservation), args.Error(1)
}

func (m *MockReservationGateway) GetReservation(ctx context.Context, id int64) (*models.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Reservation), args.Error(1)
}

func (m *MockReservationGateway) CreateReservation(ctx context.Context, input gateway.CreateReservationInput) (*models.Reservation, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Reservation), args.Error(1)
}

func (m *MockReservationGateway) CancelReservation(ctx context.Context, id int64) (*models.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Reservation), args.Error(1)
}

func (m *MockReservationGateway) Availability(ctx context.Context, tableID int64, date string) ([]models.TimeSlot, error) {
	args := m.Called(ctx, tableID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.TimeSlot), args.Error(1)
}

func newTestEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.LoadHTMLGlob("../templates/*.html")
	return r
}

// browser replays a cookie jar across requests so multi-step flows (the
// wizard) keep their session.
type browser struct {
	router  *gin.Engine
	cookies []*http.Cookie
}

func (b *browser) do(method, target string, form url.Values) *httptest.ResponseRecorder {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	for _, cookie := range b.cookies {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	b.router.ServeHTTP(w, req)

	if cookies := w.Result().Cookies(); len(cookies) > 0 {
		b.cookies = append(b.cookies, cookies...)
	}
	return w
}

func sampleTable() models.Table {
	return models.Table{ID: 1, TableNumber: 5, SeatingCapacity: 4, Location: "indoor", IsActive: true}
}
