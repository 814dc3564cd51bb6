//go:build e2e

package booking_test

import (
	"net/http"
	"testing"

	"bookmyvenue/internal/domain/user"
	"bookmyvenue/internal/handler/dto/request"
	resdto "bookmyvenue/internal/handler/dto/response"
	"bookmyvenue/tests/common/authtest"
	"bookmyvenue/tests/common/dbtest"
	"bookmyvenue/tests/common/httptest"
	"bookmyvenue/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"golang.org/x/sync/errgroup"
)

const bookingsURL = "/api/bookings"

type bookingSuite struct {
	e2e.SharedSuite

	businessID    uuid.UUID
	businessToken string
	customerID    uuid.UUID
	customerToken string
	venueID       uuid.UUID
	decorID       uuid.UUID
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(bookingSuite))
}

func (s *bookingSuite) SetupTest() {
	s.SharedSuite.SetupTest()
	s.seed()
}

func (s *bookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
	s.seed()
}

func (s *bookingSuite) seed() {
	t := s.T()
	s.businessID, s.businessToken = authtest.CreateAndLogin(t, s.DB, s.Router, "hall@example.com", string(user.RoleBusiness))
	s.customerID, s.customerToken = authtest.CreateAndLogin(t, s.DB, s.Router, "asha@example.com", string(user.RoleCustomer))
	s.venueID = dbtest.CreateTestVenue(t, s.DB, s.businessID, "Grand Hall")
	s.decorID = dbtest.CreateTestItem(t, s.DB, s.businessID, s.venueID, "decor", 1500)
}

func (s *bookingSuite) request(date, start, end string) request.CreateBookingRequest {
	return request.CreateBookingRequest{
		VenueID:    s.venueID.String(),
		BusinessID: s.businessID.String(),
		EventDate:  date,
		StartTime:  start,
		EndTime:    end,
		DecorIDs:   []string{s.decorID.String()},
	}
}

func (s *bookingSuite) create(t *testing.T, req request.CreateBookingRequest) resdto.BookingResponse {
	t.Helper()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, req, s.customerToken)
	var res resdto.BookingResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &res)
	return res
}

func (s *bookingSuite) TestCreate() {
	s.Run("priced and pending", func() {
		t := s.T()
		res := s.create(t, s.request("2030-06-01", "10:00", "14:00"))

		require.Equal(t, "Pending", res.Status)
		require.Equal(t, "Unpaid", res.PaymentStatus)
		require.Equal(t, "51500.00", res.TotalPrice)
		require.Equal(t, s.customerID.String(), res.CustomerID)
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "notification_jobs", "topic = $1", "booking.created"))
	})

	s.Run("overlap is rejected and touching slots are not", func() {
		t := s.T()
		s.create(t, s.request("2030-06-01", "10:00", "14:00"))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, s.request("2030-06-01", "13:00", "15:00"), s.customerToken)
		httptest.AssertErrorKind(t, w, http.StatusConflict, "SlotConflict")

		s.create(t, s.request("2030-06-01", "14:00", "16:00"))
		require.Equal(t, 2, dbtest.CountRows(t, s.DB, "bookings", "venue_id = $1", s.venueID))
	})

	s.Run("validation", func() {
		tests := []struct {
			name string
			req  request.CreateBookingRequest
			kind string
		}{
			{"missing date", s.request("", "10:00", "14:00"), "MissingField"},
			{"bad time", s.request("2030-06-01", "25:00", "26:00"), "MalformedField"},
			{"inverted range", s.request("2030-06-01", "14:00", "10:00"), "InvalidRange"},
		}
		for _, tc := range tests {
			w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL, tc.req, s.customerToken)
			httptest.AssertErrorKind(s.T(), w, http.StatusBadRequest, tc.kind)
		}
	})

	s.Run("unknown venue", func() {
		req := s.request("2030-06-01", "10:00", "14:00")
		req.VenueID = uuid.NewString()
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL, req, s.customerToken)
		httptest.AssertErrorKind(s.T(), w, http.StatusNotFound, "VenueNotFound")
	})

	s.Run("decor of another business", func() {
		t := s.T()
		otherID := dbtest.CreateTestUser(t, s.DB, "other@example.com", string(user.RoleBusiness))
		otherVenue := dbtest.CreateTestVenue(t, s.DB, otherID, "Other Hall")
		foreign := dbtest.CreateTestItem(t, s.DB, otherID, otherVenue, "decor", 100)

		req := s.request("2030-06-01", "10:00", "14:00")
		req.DecorIDs = []string{foreign.String()}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, req, s.customerToken)
		httptest.AssertErrorKind(t, w, http.StatusUnprocessableEntity, "InvalidSelection")
	})
}

func (s *bookingSuite) TestConcurrentOverlappingRequests() {
	t := s.T()
	const n = 8

	codes := make([]int, n)
	var g errgroup.Group
	for i := range n {
		g.Go(func() error {
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, s.request("2030-07-01", "18:00", "22:00"), s.customerToken)
			codes[i] = w.Code
			return nil
		})
	}
	require.NoError(t, g.Wait())

	created := 0
	for _, code := range codes {
		switch code {
		case http.StatusCreated:
			created++
		case http.StatusConflict:
		default:
			t.Fatalf("unexpected status %d", code)
		}
	}
	require.Equal(t, 1, created)
	require.Equal(t, 1, dbtest.CountRows(t, s.DB, "bookings", "event_date = $1", "2030-07-01"))
}

func (s *bookingSuite) TestLifecycle() {
	t := s.T()
	b := s.create(t, s.request("2030-08-01", "10:00", "12:00"))
	url := bookingsURL + "/" + b.ID

	w := httptest.PerformRequest(t, s.Router, http.MethodPatch, url+"/status", request.UpdateStatusRequest{Status: "Confirmed"}, s.customerToken)
	httptest.AssertErrorKind(t, w, http.StatusForbidden, "NotAuthorized")

	w = httptest.PerformRequest(t, s.Router, http.MethodPatch, url+"/status", request.UpdateStatusRequest{Status: "Confirmed"}, s.businessToken)
	var res resdto.BookingResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
	require.Equal(t, "Confirmed", res.Status)

	w = httptest.PerformRequest(t, s.Router, http.MethodPatch, url+"/payment", request.UpdatePaymentRequest{PaymentStatus: "Paid"}, s.customerToken)
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
	require.Equal(t, "Paid", res.PaymentStatus)

	w = httptest.PerformRequest(t, s.Router, http.MethodPut, url+"/selections", request.ReplaceSelectionsRequest{}, s.customerToken)
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
	require.Equal(t, "50000.00", res.TotalPrice)
	require.Empty(t, res.DecorIDs)

	w = httptest.PerformRequest(t, s.Router, http.MethodPost, url+"/cancel", nil, s.customerToken)
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
	require.Equal(t, "Cancelled", res.Status)

	w = httptest.PerformRequest(t, s.Router, http.MethodPatch, url+"/status", request.UpdateStatusRequest{Status: "Confirmed"}, s.businessToken)
	httptest.AssertErrorKind(t, w, http.StatusConflict, "InvalidTransition")

	// the cancelled booking no longer holds the slot
	s.create(t, s.request("2030-08-01", "10:00", "12:00"))

	w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/venues/"+s.venueID.String()+"/bookings?date=2030-08-01", nil, "")
	var slots []resdto.SlotResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &slots)
	require.Len(t, slots, 1)
	require.Equal(t, "Pending", slots[0].Status)
}

func (s *bookingSuite) TestVisibilityAndDeletion() {
	t := s.T()
	b := s.create(t, s.request("2030-09-01", "09:00", "11:00"))
	url := bookingsURL + "/" + b.ID

	_, strangerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "stranger@example.com", string(user.RoleCustomer))
	w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, strangerToken)
	httptest.AssertErrorKind(t, w, http.StatusForbidden, "NotAuthorized")

	adminToken := authtest.LoginUser(t, s.Router, dbtest.AdminEmail, dbtest.AdminPassword)
	w = httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, adminToken)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/business/bookings/pending", nil, s.businessToken)
	var pending []resdto.BookingResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &pending)
	require.Len(t, pending, 1)

	w = httptest.PerformRequest(t, s.Router, http.MethodDelete, url, nil, s.customerToken)
	require.Equal(t, http.StatusForbidden, w.Code)

	w = httptest.PerformRequest(t, s.Router, http.MethodDelete, url, nil, s.businessToken)
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

	w = httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, s.customerToken)
	httptest.AssertErrorKind(t, w, http.StatusNotFound, "NotFound")
}

func (s *bookingSuite) TestAdminPagination() {
	t := s.T()
	for _, slot := range [][2]string{{"08:00", "09:00"}, {"10:00", "11:00"}, {"12:00", "13:00"}} {
		s.create(t, s.request("2030-10-01", slot[0], slot[1]))
	}
	adminToken := authtest.LoginUser(t, s.Router, dbtest.AdminEmail, dbtest.AdminPassword)

	seen := map[string]bool{}
	after := ""
	for range 3 {
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/admin/bookings?limit=2&after="+after, nil, adminToken)
		var page resdto.BookingPageResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &page)
		for _, b := range page.Bookings {
			require.False(t, seen[b.ID], "booking %s returned twice", b.ID)
			seen[b.ID] = true
		}
		if page.NextCursor == "" {
			break
		}
		after = page.NextCursor
	}
	require.Len(t, seen, 3)

	w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/admin/bookings", nil, s.customerToken)
	require.Equal(t, http.StatusForbidden, w.Code)
}
