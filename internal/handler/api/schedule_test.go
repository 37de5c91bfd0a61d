//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"priceflow/internal/domain/schedule"
	"priceflow/internal/handler/api"
	reqdto "priceflow/internal/handler/dto/request"
	resdto "priceflow/internal/handler/dto/response"
	"priceflow/internal/usecase/commands"
	"priceflow/internal/usecase/queries"
	"priceflow/tests/common/httptest"
	"priceflow/tests/common/testutil"
	commandsmock "priceflow/tests/mock/commands"
	queriesmock "priceflow/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const testShop = "demo.myshopify.com"

// withShop mimics the session-token middleware for handler tests.
func withShop(handler gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("shop", testShop)
		handler(c)
	}
}

type ScheduleHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockScheduleCommands
	mockRunner   *commandsmock.MockScheduleRunner
	mockQueries  *queriesmock.MockScheduleQueries
	handler      *api.ScheduleHandler
}

func (s *ScheduleHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockScheduleCommands(s.mockCtrl)
	s.mockRunner = commandsmock.NewMockScheduleRunner(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockScheduleQueries(s.mockCtrl)
	s.handler = api.NewScheduleHandler(s.mockCommands, s.mockRunner, s.mockQueries)

	s.router.POST("/api/schedules", withShop(s.handler.Create))
	s.router.GET("/api/schedules", withShop(s.handler.List))
	s.router.POST("/api/schedules/run", withShop(s.handler.Run))
}

func (s *ScheduleHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestScheduleHandlerSuite(t *testing.T) {
	suite.Run(t, new(ScheduleHandlerTestSuite))
}

func validCreateBody(t *testing.T) map[string]any {
	return testutil.DtoMap(t, reqdto.CreateScheduleRequest{
		Schedule: schedule.Spec{
			ChangeMode: schedule.ChangeModeLater,
			RunAtIso:   "2026-09-02T09:00:00Z",
		},
		ProductIDs: []string{"gid://shopify/Product/1"},
		Items: []schedule.Item{
			{ProductID: "1", VariantID: "11", NewPrice: "20", OldPrice: "15"},
		},
	})
}

func (s *ScheduleHandlerTestSuite) TestCreate() {
	url := "/api/schedules"

	s.Run("success: returns 201 with the new schedule id", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().Create(gomock.Any(), testShop, gomock.Any()).
			Return(id, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validCreateBody(s.T()), "")

		var response resdto.CreateScheduleResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.True(response.OK)
		s.Equal(id, response.ID)
	})

	s.Run("error: 400 on malformed JSON body", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, "not-an-object", "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 400 when the schedule block is missing", func() {
		body := validCreateBody(s.T())
		testutil.Field("schedule", nil)(body)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: command sentinels map to status codes", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
			expectMsg  string
		}{
			{"missing details", commands.ErrScheduleDetailsMissing, http.StatusBadRequest, "Schedule details missing"},
			{"no items", commands.ErrItemsRequired, http.StatusBadRequest, "Items required"},
			{"bad runAt", commands.ErrInvalidRunAt, http.StatusBadRequest, "Invalid runAtIso"},
			{"bad revertAt", commands.ErrInvalidRevertAt, http.StatusBadRequest, "Invalid revertAtIso"},
			{"revert before run", commands.ErrRevertBeforeRunAt, http.StatusBadRequest, "must be after"},
			{"unresolved variant", commands.ErrVariantNotResolved, http.StatusUnprocessableEntity, "Could not resolve product"},
			{"storage failure", commands.ErrDatabaseOperationFailed, http.StatusInternalServerError, "Internal server error"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), testShop, gomock.Any()).
					Return(uuid.Nil, tc.err).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validCreateBody(s.T()), "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectMsg)
			})
		}
	})
}

func (s *ScheduleHandlerTestSuite) TestList() {
	url := "/api/schedules"

	s.Run("success: returns summaries for the shop", func() {
		summaries := []*queries.ScheduleSummary{
			{
				ID:        uuid.New(),
				CreatedAt: time.Now().UTC(),
				RunAt:     time.Now().UTC().Add(time.Hour),
				Status:    "PENDING",
				ItemCount: 2,
			},
		}
		s.mockQueries.EXPECT().List(gomock.Any(), testShop, 0, nil).
			Return(summaries, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.ListSchedulesResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.OK)
		s.Require().Len(response.Schedules, 1)
		s.Equal("PENDING", response.Schedules[0].Status)
		s.Equal(2, response.Schedules[0].ItemCount)
	})

	s.Run("success: forwards limit and status query params", func() {
		status := "DONE"
		s.mockQueries.EXPECT().List(gomock.Any(), testShop, 5, &status).
			Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?limit=5&status=DONE", nil, "")

		var response resdto.ListSchedulesResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.OK)
	})

	s.Run("success: explicit zero limit clamps to 1 instead of the default", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), testShop, 1, nil).
			Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?limit=0", nil, "")

		var response resdto.ListSchedulesResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.OK)
	})

	s.Run("success: negative limit clamps to 1", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), testShop, 1, nil).
			Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?limit=-3", nil, "")

		var response resdto.ListSchedulesResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.OK)
	})

	s.Run("error: 400 on non-numeric limit", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?limit=abc", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid limit")
	})

	s.Run("error: 500 when the read store fails", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), testShop, 0, nil).
			Return(nil, commands.ErrDatabaseOperationFailed).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *ScheduleHandlerTestSuite) TestRun() {
	url := "/api/schedules/run"

	s.Run("success: returns per-schedule outcomes", func() {
		doneID := uuid.New()
		failedID := uuid.New()
		report := &commands.RunReport{
			Now: time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
			Processed: []commands.ProcessedSchedule{
				{ID: doneID, OK: true},
				{ID: failedID, OK: false, Error: "Price too low"},
			},
		}
		s.mockRunner.EXPECT().RunDue(gomock.Any(), testShop).Return(report, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

		var response resdto.RunSchedulesResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.OK)
		s.Require().Len(response.Processed, 2)
		s.Equal(doneID, response.Processed[0].ID)
		s.True(response.Processed[0].OK)
		s.Equal("Price too low", response.Processed[1].Error)
	})

	s.Run("error: 500 when the runner fails outright", func() {
		s.mockRunner.EXPECT().RunDue(gomock.Any(), testShop).
			Return(nil, commands.ErrDatabaseOperationFailed).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
