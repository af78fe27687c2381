package controller

import (
	"exam_ingest_backend/internal/config"
	"exam_ingest_backend/internal/converter"
	"exam_ingest_backend/internal/service"
	"exam_ingest_backend/internal/util"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

type ImportController struct {
	ImportService *service.ImportService
	ExamService   *service.ExamService
	Ingest        config.IngestConfig
}

func NewImportController(importService *service.ImportService, examService *service.ExamService, ingest config.IngestConfig) *ImportController {
	return &ImportController{
		ImportService: importService,
		ExamService:   examService,
		Ingest:        ingest,
	}
}

type importFileRequest struct {
	Path string `json:"path" binding:"required"`
}

// @Summary Import a single file
// @Description Ingest one exam file from the configured ingest directories
// @Tags import
// @Accept json
// @Produce json
// @Param request body importFileRequest true "File path"
// @Success 200 {object} util.Response
// @Router /api/import/file [post]
func (c *ImportController) ImportFile(ctx *gin.Context) {
	var req importFileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, util.ErrMissingPath.Error())
		return
	}

	path, err := c.resolvePath(req.Path)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result := c.ImportService.ImportFile(ctx.Request.Context(), path)
	if result.Status == converter.StatusImported {
		c.ExamService.InvalidateListCache(ctx.Request.Context())
	}

	util.Success(ctx, result)
}

// @Summary Import the ingest directories
// @Description Ingest every exam file found in the configured directories
// @Tags import
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/import/directory [post]
func (c *ImportController) ImportDirectory(ctx *gin.Context) {
	results, summary, report, err := c.ImportService.ImportDirectories(ctx.Request.Context(), c.Ingest.HTMLDir, c.Ingest.JSONDir)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	c.ExamService.InvalidateListCache(ctx.Request.Context())

	util.Success(ctx, gin.H{
		"results": results,
		"summary": summary,
		"report":  report,
	})
}

// @Summary List import runs
// @Description List past ingestion runs, newest first
// @Tags import
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} util.Response
// @Router /api/import/runs [get]
func (c *ImportController) ListRuns(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))

	runs, total, err := c.ImportService.ListRuns(page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{
		List:  runs,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

// resolvePath confines requested files to the configured ingest directories.
func (c *ImportController) resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", util.ErrMissingPath
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", util.ErrPathNotAllowed
	}

	for _, dir := range []string{c.Ingest.HTMLDir, c.Ingest.JSONDir} {
		if dir == "" {
			continue
		}
		absDir, err := filepath.Abs(dir)
		if err != nil {
			continue
		}
		if strings.HasPrefix(abs, absDir+string(filepath.Separator)) {
			return abs, nil
		}
	}

	return "", util.ErrPathNotAllowed
}
