package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/atcprep/internal/controller"
	"github.com/lshigami/atcprep/internal/dto"
	"github.com/lshigami/atcprep/internal/service"
)

type AdminExerciseController struct {
	exerciseService service.ExerciseService
}

func NewAdminExerciseController(exerciseService service.ExerciseService) *AdminExerciseController {
	return &AdminExerciseController{exerciseService: exerciseService}
}

// GenerateExercise godoc
// @Summary (Admin) Generate an exercise
// @Description Builds a 10 question exercise from the question bank of the given category.
// @Tags Admin - Exercises
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param exercise_data body dto.ExerciseGenerateDTO true "Exercise metadata"
// @Success 201 {object} model.Exercise
// @Failure 400 {object} dto.ErrorResponse "Invalid input data"
// @Failure 507 {object} dto.ErrorResponse "Storage limit reached"
// @Router /admin/exercises [post]
func (c *AdminExerciseController) GenerateExercise(ctx *gin.Context) {
	var req dto.ExerciseGenerateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, err)
		return
	}
	exercise, err := c.exerciseService.GenerateExercise(req)
	if err != nil {
		controller.RespondError(ctx, "Failed to generate exercise", err)
		return
	}
	ctx.JSON(http.StatusCreated, exercise)
}

// DeleteExercise godoc
// @Summary (Admin) Delete an exercise
// @Tags Admin - Exercises
// @Security BearerAuth
// @Param exercise_id path string true "Exercise ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse "Exercise not found"
// @Router /admin/exercises/{exercise_id} [delete]
func (c *AdminExerciseController) DeleteExercise(ctx *gin.Context) {
	if err := c.exerciseService.DeleteExercise(ctx.Param("exercise_id")); err != nil {
		controller.RespondError(ctx, "Failed to delete exercise", err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
