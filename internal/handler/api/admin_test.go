//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"bookmyvenue/internal/handler/api"
	resdto "bookmyvenue/internal/handler/dto/response"
	"bookmyvenue/internal/handler/middleware"
	"bookmyvenue/internal/usecase/queries"
	"bookmyvenue/tests/common/builder"
	"bookmyvenue/tests/common/httptest"
	queriesmock "bookmyvenue/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AdminHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockCtrl *gomock.Controller
	bookings *queriesmock.MockBookingQueries
	users    *queriesmock.MockUserQueries
}

func (s *AdminHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())

	s.mockCtrl = gomock.NewController(s.T())
	s.bookings = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.users = queriesmock.NewMockUserQueries(s.mockCtrl)
	h := api.NewAdminHandler(s.bookings, s.users)

	s.router.GET("/admin/bookings", h.ListBookings)
	s.router.GET("/admin/users", h.ListUsers)
}

func (s *AdminHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdminHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}

func (s *AdminHandlerTestSuite) TestListBookings() {
	s.Run("first page", func() {
		views := []*queries.BookingView{builder.NewBookingBuilder().BuildView()}
		s.bookings.EXPECT().ListAll(gomock.Any(), (*queries.Cursor)(nil), 1).Return(views, &queries.Cursor{After: "next"}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/bookings?limit=1", nil, "")

		var response resdto.BookingPageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Bookings, 1)
		s.Equal("next", response.NextCursor)
	})

	s.Run("following page", func() {
		s.bookings.EXPECT().ListAll(gomock.Any(), &queries.Cursor{After: "abc"}, 0).Return(nil, nil, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/bookings?after=abc", nil, "")

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"bookings":[]}`, rec.Body.String())
	})

	s.Run("non-numeric limit", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/bookings?limit=ten", nil, "")
		httptest.AssertErrorKind(s.T(), rec, http.StatusBadRequest, "MalformedField")
	})

	s.Run("bad cursor", func() {
		s.bookings.EXPECT().ListAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil, queries.ErrInvalidCursor)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/bookings?after=zzz", nil, "")
		httptest.AssertErrorKind(s.T(), rec, http.StatusBadRequest, "InvalidCursor")
	})
}

func (s *AdminHandlerTestSuite) TestListUsers() {
	u := builder.NewUserBuilder().BuildReadModel()
	s.users.EXPECT().ListUsers(gomock.Any()).Return([]*queries.UserView{u}, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/users", nil, "")

	var response []queries.UserView
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Require().Len(response, 1)
	s.Equal(u.Email, response[0].Email)
}
