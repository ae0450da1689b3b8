package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/atcprep/internal/controller"
	"github.com/lshigami/atcprep/internal/model"
	"github.com/lshigami/atcprep/internal/service"
)

type ExerciseController struct {
	exerciseService service.ExerciseService
	sessionService  service.SessionService
}

func NewExerciseController(es service.ExerciseService, ss service.SessionService) *ExerciseController {
	return &ExerciseController{exerciseService: es, sessionService: ss}
}

// ListExercises godoc
// @Summary (User) List exercises
// @Tags User - Exercises
// @Produce json
// @Param category query string false "Content category" Enums(aerodrome, approach, ccr)
// @Success 200 {array} dto.ExerciseSummaryDTO
// @Failure 400 {object} dto.ErrorResponse "Unknown category"
// @Router /exercises [get]
func (c *ExerciseController) ListExercises(ctx *gin.Context) {
	exercises, err := c.exerciseService.ListExercises(categoryQuery(ctx))
	if err != nil {
		controller.RespondError(ctx, "Failed to list exercises", err)
		return
	}
	ctx.JSON(http.StatusOK, exercises)
}

// GetExercise godoc
// @Summary (User) Get an exercise without its answer keys
// @Tags User - Exercises
// @Produce json
// @Param exercise_id path string true "Exercise ID"
// @Success 200 {object} dto.ExerciseDetailDTO
// @Failure 404 {object} dto.ErrorResponse "Exercise not found"
// @Router /exercises/{exercise_id} [get]
func (c *ExerciseController) GetExercise(ctx *gin.Context) {
	exercise, err := c.exerciseService.GetExercise(ctx.Param("exercise_id"))
	if err != nil {
		controller.RespondError(ctx, "Failed to get exercise", err)
		return
	}
	ctx.JSON(http.StatusOK, exercise)
}

// StartExercise godoc
// @Summary (User) Start an exercise session
// @Tags User - Exercises
// @Produce json
// @Security BearerAuth
// @Param exercise_id path string true "Exercise ID"
// @Success 201 {object} dto.SessionDTO
// @Failure 404 {object} dto.ErrorResponse "Exercise not found"
// @Router /exercises/{exercise_id}/sessions [post]
func (c *ExerciseController) StartExercise(ctx *gin.Context) {
	view, err := c.sessionService.StartExercise(ctx.Param("exercise_id"), controller.CurrentIdentity(ctx))
	if err != nil {
		controller.RespondError(ctx, "Failed to start exercise", err)
		return
	}
	ctx.JSON(http.StatusCreated, view)
}

func categoryQuery(ctx *gin.Context) *model.ContentCategory {
	raw := ctx.Query("category")
	if raw == "" {
		return nil
	}
	category := model.ContentCategory(raw)
	return &category
}
