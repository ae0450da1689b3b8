package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/atcprep/internal/controller"
	"github.com/lshigami/atcprep/internal/document"
	"github.com/lshigami/atcprep/internal/dto"
	"github.com/lshigami/atcprep/internal/service"
	"github.com/rs/zerolog/log"
)

type AdminTestController struct {
	adminTestService  service.AdminTestService
	submissionService service.SubmissionService
	pipeline          *document.Pipeline
}

func NewAdminTestController(
	adminTestService service.AdminTestService,
	submissionService service.SubmissionService,
	pipeline *document.Pipeline,
) *AdminTestController {
	return &AdminTestController{
		adminTestService:  adminTestService,
		submissionService: submissionService,
		pipeline:          pipeline,
	}
}

// CreateTest godoc
// @Summary (Admin) Create a test by hand
// @Description Admin authors a test question by question. At least one question is required and every correct index must point at one of its options.
// @Tags Admin - Tests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param test_data body dto.TestCreateDTO true "Test metadata and questions"
// @Success 201 {object} model.Test "Test created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid input data"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Administrator role required"
// @Failure 507 {object} dto.ErrorResponse "Storage limit reached"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/tests [post]
func (c *AdminTestController) CreateTest(ctx *gin.Context) {
	var req dto.TestCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, err)
		return
	}

	test, err := c.adminTestService.CreateTest(req)
	if err != nil {
		controller.RespondError(ctx, "Failed to create test", err)
		return
	}
	ctx.JSON(http.StatusCreated, test)
}

// GenerateTest godoc
// @Summary (Admin) Generate a test from a document
// @Description Admin uploads a .docx, .pdf or .pptx document. The test is filled with 50 questions from the chosen question bank and keeps the document.
// @Tags Admin - Tests
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param title formData string true "Test title"
// @Param description formData string false "Test description"
// @Param duration formData int true "Duration in minutes"
// @Param category formData string true "Test classification" Enums(fundamentals, advanced, airspace, emergency)
// @Param bank formData string true "Question bank" Enums(aerodrome, approach, ccr)
// @Param courseId formData string false "Related course ID"
// @Param file formData file true "Source document"
// @Success 201 {object} model.Test "Test generated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid input or unsupported file type"
// @Failure 413 {object} dto.ErrorResponse "File exceeds the upload size limit"
// @Failure 507 {object} dto.ErrorResponse "Storage limit reached"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/tests/generate [post]
func (c *AdminTestController) GenerateTest(ctx *gin.Context) {
	var form dto.TestGenerateForm
	if err := ctx.ShouldBind(&form); err != nil {
		controller.BindError(ctx, err)
		return
	}
	upload, err := controller.ReadUpload(ctx, "file", c.pipeline)
	if err != nil {
		controller.RespondError(ctx, "Failed to read uploaded document", err)
		return
	}
	if upload == nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "A source document is required"})
		return
	}

	test, err := c.adminTestService.GenerateTest(form, *upload)
	if err != nil {
		controller.RespondError(ctx, "Failed to generate test", err)
		return
	}
	ctx.JSON(http.StatusCreated, test)
}

// GetTest godoc
// @Summary (Admin) Get a test with its answer keys
// @Tags Admin - Tests
// @Produce json
// @Security BearerAuth
// @Param test_id path string true "Test ID"
// @Success 200 {object} model.Test
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Router /admin/tests/{test_id} [get]
func (c *AdminTestController) GetTest(ctx *gin.Context) {
	test, err := c.adminTestService.GetTest(ctx.Param("test_id"))
	if err != nil {
		controller.RespondError(ctx, "Failed to get test", err)
		return
	}
	ctx.JSON(http.StatusOK, test)
}

// UpdateTest godoc
// @Summary (Admin) Update test metadata
// @Description Questions cannot be changed once a test exists.
// @Tags Admin - Tests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param test_id path string true "Test ID"
// @Param test_data body dto.TestUpdateDTO true "New metadata"
// @Success 200 {object} model.Test
// @Failure 400 {object} dto.ErrorResponse "Invalid input data"
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Router /admin/tests/{test_id} [put]
func (c *AdminTestController) UpdateTest(ctx *gin.Context) {
	var req dto.TestUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, err)
		return
	}
	test, err := c.adminTestService.UpdateTest(ctx.Param("test_id"), req)
	if err != nil {
		controller.RespondError(ctx, "Failed to update test", err)
		return
	}
	ctx.JSON(http.StatusOK, test)
}

// DeleteTest godoc
// @Summary (Admin) Delete a test
// @Tags Admin - Tests
// @Security BearerAuth
// @Param test_id path string true "Test ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Router /admin/tests/{test_id} [delete]
func (c *AdminTestController) DeleteTest(ctx *gin.Context) {
	testID := ctx.Param("test_id")
	if err := c.adminTestService.DeleteTest(testID); err != nil {
		controller.RespondError(ctx, "Failed to delete test", err)
		return
	}
	log.Info().Str("testID", testID).Msg("Admin DeleteTest: test deleted")
	ctx.Status(http.StatusNoContent)
}

// GetTestSubmissions godoc
// @Summary (Admin) List every submission of a test
// @Tags Admin - Tests
// @Produce json
// @Security BearerAuth
// @Param test_id path string true "Test ID"
// @Success 200 {array} model.TestSubmission
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Router /admin/tests/{test_id}/submissions [get]
func (c *AdminTestController) GetTestSubmissions(ctx *gin.Context) {
	submissions, err := c.submissionService.GetTestSubmissions(ctx.Param("test_id"))
	if err != nil {
		controller.RespondError(ctx, "Failed to list test submissions", err)
		return
	}
	ctx.JSON(http.StatusOK, submissions)
}
