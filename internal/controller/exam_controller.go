package controller

import (
	"errors"
	"exam_ingest_backend/internal/service"
	"exam_ingest_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ExamController struct {
	ExamService *service.ExamService
}

func NewExamController(examService *service.ExamService) *ExamController {
	return &ExamController{ExamService: examService}
}

// @Summary List exams
// @Description List active exams with pagination
// @Tags exams
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} util.Response
// @Router /api/exams [get]
func (c *ExamController) ListExams(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))

	exams, total, err := c.ExamService.ListExams(ctx.Request.Context(), page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{
		List:  exams,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

// @Summary Get exam
// @Description Get a single exam with its questions and answers
// @Tags exams
// @Produce json
// @Param id path int true "Exam ID"
// @Success 200 {object} util.Response
// @Router /api/exams/{id} [get]
func (c *ExamController) GetExam(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		util.BadRequest(ctx, util.ErrInvalidExamID.Error())
		return
	}

	exam, err := c.ExamService.GetExam(ctx.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, exam)
}

// @Summary List exam questions
// @Description List questions of an exam in display order
// @Tags exams
// @Produce json
// @Param id path int true "Exam ID"
// @Success 200 {object} util.Response
// @Router /api/exams/{id}/questions [get]
func (c *ExamController) ListQuestions(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		util.BadRequest(ctx, util.ErrInvalidExamID.Error())
		return
	}

	questions, err := c.ExamService.ListQuestions(ctx.Request.Context(), uint(id))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, questions)
}
