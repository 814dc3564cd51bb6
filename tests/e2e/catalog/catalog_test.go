//go:build e2e

package catalog_test

import (
	"net/http"
	"net/url"
	"testing"

	"bookmyvenue/internal/domain/user"
	"bookmyvenue/internal/handler/dto/request"
	resdto "bookmyvenue/internal/handler/dto/response"
	"bookmyvenue/tests/common/authtest"
	"bookmyvenue/tests/common/builder"
	"bookmyvenue/tests/common/dbtest"
	"bookmyvenue/tests/common/httptest"
	"bookmyvenue/tests/common/testutil"
	"bookmyvenue/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const servicesURL = "/api/business/services"

type catalogSuite struct {
	e2e.SharedSuite

	ownerID uuid.UUID
	token   string
}

func TestCatalogSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(catalogSuite))
}

func (s *catalogSuite) SetupTest() {
	s.SharedSuite.SetupTest()
	s.ownerID, s.token = authtest.CreateAndLogin(s.T(), s.DB, s.Router, "hall@example.com", string(user.RoleBusiness))
}

func (s *catalogSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
	s.ownerID, s.token = authtest.CreateAndLogin(s.T(), s.DB, s.Router, "hall@example.com", string(user.RoleBusiness))
}

func (s *catalogSuite) createVenue(t *testing.T) resdto.ServiceResponse {
	t.Helper()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, servicesURL, builder.NewVenueBuilder().BuildDTO(), s.token)
	var res resdto.ServiceResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &res)
	return res
}

func (s *catalogSuite) TestCreate() {
	s.Run("venue", func() {
		t := s.T()
		res := s.createVenue(t)
		require.Equal(t, s.ownerID.String(), res.OwnerID)
		require.Equal(t, "venue", res.Type)
		require.Equal(t, "50000.00", res.Price)
	})

	s.Run("field validation", func() {
		tests := []struct {
			name string
			body map[string]any
			kind string
		}{
			{"blank title", testutil.DtoMap(s.T(), builder.NewVenueBuilder().BuildDTO(), testutil.Field("title", "  ")), "ValidationFailed"},
			{"negative price", testutil.DtoMap(s.T(), builder.NewVenueBuilder().BuildDTO(), testutil.Field("price", "-1")), "ValidationFailed"},
			{"unknown type", testutil.DtoMap(s.T(), builder.NewVenueBuilder().BuildDTO(), testutil.Field("type", "boat")), "ValidationFailed"},
			{"missing type", testutil.DtoMap(s.T(), builder.NewVenueBuilder().BuildDTO(), testutil.Field("type", nil)), "MalformedField"},
		}
		for _, tc := range tests {
			w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, servicesURL, tc.body, s.token)
			httptest.AssertErrorKind(s.T(), w, http.StatusBadRequest, tc.kind)
		}
	})

	s.Run("item anchored to someone else's venue", func() {
		t := s.T()
		otherID := dbtest.CreateTestUser(t, s.DB, "other@example.com", string(user.RoleBusiness))
		foreign := dbtest.CreateTestVenue(t, s.DB, otherID, "Other Hall")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, servicesURL, builder.NewItemBuilder("decor", foreign).BuildDTO(), s.token)
		require.GreaterOrEqual(t, w.Code, http.StatusBadRequest, w.Body.String())
		require.Equal(t, 0, dbtest.CountRows(t, s.DB, "services", "owner_id = $1 AND kind = 'decor'", s.ownerID))
	})

	s.Run("customers cannot manage services", func() {
		_, customer := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "asha@example.com", string(user.RoleCustomer))
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, servicesURL, builder.NewVenueBuilder().BuildDTO(), customer)
		require.Equal(s.T(), http.StatusForbidden, w.Code)
	})
}

func (s *catalogSuite) TestBulkCreateIsAtomic() {
	t := s.T()
	venue := s.createVenue(t)
	venueID := uuid.MustParse(venue.ID)

	good := builder.NewItemBuilder("decor", venueID).BuildDTO().ServiceAttributes
	bad := builder.NewItemBuilder("catering", venueID).BuildDTO().ServiceAttributes
	bad.Description = ""

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, servicesURL+"/bulk",
		request.BulkCreateServicesRequest{DecorItems: []request.ServiceAttributes{good}, CateringItems: []request.ServiceAttributes{bad}}, s.token)
	httptest.AssertErrorKind(t, w, http.StatusBadRequest, "ValidationFailed")
	require.Equal(t, 1, dbtest.CountRows(t, s.DB, "services", "owner_id = $1", s.ownerID))

	menu := builder.NewItemBuilder("menu", venueID).BuildDTO().ServiceAttributes
	w = httptest.PerformRequest(t, s.Router, http.MethodPost, servicesURL+"/bulk",
		request.BulkCreateServicesRequest{DecorItems: []request.ServiceAttributes{good}, MenuItems: []request.ServiceAttributes{menu}}, s.token)
	var created resdto.CreatedListResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
	require.Len(t, created.IDs, 2)

	w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/catalog/venues/"+venue.ID, nil, "")
	var detail resdto.VenueDetailResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &detail)
	require.Len(t, detail.DecorItems, 1)
	require.Len(t, detail.MenuItems, 1)
	require.Empty(t, detail.CateringItems)
}

func (s *catalogSuite) TestUpdateAndSearch() {
	t := s.T()
	venue := s.createVenue(t)

	title := "Lotus Lawn 100% outdoor"
	w := httptest.PerformRequest(t, s.Router, http.MethodPatch, servicesURL+"/"+venue.ID,
		request.UpdateServiceRequest{Title: &title}, s.token)
	var updated resdto.ServiceResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &updated)
	require.Equal(t, title, updated.Title)
	require.Equal(t, venue.Description, updated.Description)

	for _, tc := range []struct {
		q    string
		hits int
	}{
		{"lotus", 1},
		{"RECEPTION", 1},
		{"100%", 1},
		{"_", 0},
		{"ballroom", 0},
	} {
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/catalog/venues/search?q="+url.QueryEscape(tc.q), nil, "")
		var hits []resdto.ServiceResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &hits)
		require.Len(t, hits, tc.hits, "query %q", tc.q)
	}

	_, other := authtest.CreateAndLogin(t, s.DB, s.Router, "rival@example.com", string(user.RoleBusiness))
	w = httptest.PerformRequest(t, s.Router, http.MethodPatch, servicesURL+"/"+venue.ID,
		request.UpdateServiceRequest{Title: &title}, other)
	httptest.AssertErrorKind(t, w, http.StatusForbidden, "NotAuthorized")
}

func (s *catalogSuite) TestDeleteReferencedVenue() {
	t := s.T()
	venue := s.createVenue(t)
	venueID := uuid.MustParse(venue.ID)

	customerID := dbtest.CreateTestUser(t, s.DB, "asha@example.com", string(user.RoleCustomer))
	_, err := s.DB.Exec(t.Context(), `INSERT INTO bookings (customer_id, business_id, venue_id, event_date, start_time, end_time)
		VALUES ($1, $2, $3, '2030-01-01', '10:00', '12:00')`, customerID, s.ownerID, venueID)
	require.NoError(t, err)

	w := httptest.PerformRequest(t, s.Router, http.MethodDelete, servicesURL+"/"+venue.ID, nil, s.token)
	httptest.AssertErrorKind(t, w, http.StatusConflict, "ServiceInUse")

	_, err = s.DB.Exec(t.Context(), "DELETE FROM bookings WHERE venue_id = $1", venueID)
	require.NoError(t, err)

	w = httptest.PerformRequest(t, s.Router, http.MethodDelete, servicesURL+"/"+venue.ID, nil, s.token)
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

	w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/catalog/services/"+venue.ID, nil, "")
	httptest.AssertErrorKind(t, w, http.StatusNotFound, "ServiceNotFound")
}
