package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/atcprep/internal/controller"
	"github.com/lshigami/atcprep/internal/service"
	"github.com/rs/zerolog/log"
)

type UserTestController struct {
	userTestService service.UserTestService
	sessionService  service.SessionService
}

func NewUserTestController(uts service.UserTestService, ss service.SessionService) *UserTestController {
	return &UserTestController{userTestService: uts, sessionService: ss}
}

// GetAllTests godoc
// @Summary (User) List all available tests
// @Tags User - Tests
// @Produce json
// @Success 200 {array} dto.TestSummaryDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /tests [get]
func (c *UserTestController) GetAllTests(ctx *gin.Context) {
	tests, err := c.userTestService.GetAllTests()
	if err != nil {
		controller.RespondError(ctx, "Failed to retrieve tests", err)
		return
	}
	ctx.JSON(http.StatusOK, tests)
}

// GetTestDetails godoc
// @Summary (User) Get a test without its answer keys
// @Tags User - Tests
// @Produce json
// @Param test_id path string true "Test ID"
// @Success 200 {object} dto.TestDetailDTO
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Router /tests/{test_id} [get]
func (c *UserTestController) GetTestDetails(ctx *gin.Context) {
	testDetails, err := c.userTestService.GetTestDetails(ctx.Param("test_id"))
	if err != nil {
		controller.RespondError(ctx, "Failed to get test", err)
		return
	}
	ctx.JSON(http.StatusOK, testDetails)
}

// StartTest godoc
// @Summary (User) Start a timed test session
// @Description The countdown starts immediately and the session is submitted automatically when it reaches zero.
// @Tags User - Tests
// @Produce json
// @Security BearerAuth
// @Param test_id path string true "Test ID"
// @Success 201 {object} dto.SessionDTO
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Router /tests/{test_id}/sessions [post]
func (c *UserTestController) StartTest(ctx *gin.Context) {
	view, err := c.sessionService.StartTest(ctx.Param("test_id"), controller.CurrentIdentity(ctx))
	if err != nil {
		controller.RespondError(ctx, "Failed to start test", err)
		return
	}
	log.Info().Str("sessionID", view.ID).Str("testID", view.SourceID).Msg("User StartTest: session started")
	ctx.JSON(http.StatusCreated, view)
}
