package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"time"

	"exam_ingest_backend/internal/converter"
	"exam_ingest_backend/internal/model"
	"exam_ingest_backend/internal/repository"
	"exam_ingest_backend/pkg/logger"
	"exam_ingest_backend/pkg/monitoring"
	"exam_ingest_backend/pkg/tracing"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	defaultModuleName = "Python Fundamentals"
	defaultModuleDesc = "PCEP certification exam content"
	defaultTopicDesc  = "Core Python programming concepts"
)

// ImportService runs the full ingestion pipeline for a file: sniff, extract,
// validate, classify, persist. Database work is one transaction per file;
// failures never escape a batch, they become ImportResults.
type ImportService struct {
	DB               *gorm.DB
	RunRepo          *repository.ImportRunRepository
	DefaultTimeLimit int // minutes, applied when the source declares none
}

func NewImportService(db *gorm.DB, runRepo *repository.ImportRunRepository, defaultTimeLimit int) *ImportService {
	if defaultTimeLimit <= 0 {
		defaultTimeLimit = 30
	}
	return &ImportService{DB: db, RunRepo: runRepo, DefaultTimeLimit: defaultTimeLimit}
}

// ImportFile processes a single exam file through the complete pipeline.
// All failure modes are folded into the returned result.
func (s *ImportService) ImportFile(ctx context.Context, path string) converter.ImportResult {
	ctx, span := tracing.Tracer.Start(ctx, "ingest.file")
	span.SetAttributes(attribute.String("ingest.path", path))
	defer span.End()

	base := filepath.Base(path)
	result := converter.ImportResult{
		SourceFile: base,
		FileType:   converter.DetectFileType(base),
	}

	format := converter.DetectFormat(path)
	result.Format = format

	raw, err := converter.ExtractFile(path, format)
	if err != nil {
		logger.Log.Error("extraction failed", zap.String("file", base), zap.Error(err))
		result.Status = converter.StatusFailed
		result.Errors = append(result.Errors, err.Error())
		monitoring.IngestFilesProcessed.WithLabelValues(string(converter.StatusFailed)).Inc()
		return result
	}

	ok, issues := converter.Validate(raw, base)
	result.Issues = issues
	if !ok {
		logger.Log.Error("validation failed", zap.String("file", base), zap.Strings("issues", issues))
		result.Status = converter.StatusFailed
		result.Errors = append(result.Errors, "validation failed: "+joinFirst(issues, 3))
		monitoring.IngestFilesProcessed.WithLabelValues(string(converter.StatusFailed)).Inc()
		return result
	}
	if len(issues) > 0 {
		logger.Log.Warn("validation issues", zap.String("file", base), zap.Int("count", len(issues)))
	}

	if err := s.importRaw(ctx, raw, &result); err != nil {
		logger.Log.Error("import failed", zap.String("file", base), zap.Error(err))
		result.Status = converter.StatusFailed
		result.Errors = append(result.Errors, err.Error())
		result.ExamID = nil
		result.QuestionsImported = 0
		result.AnswersImported = 0
		monitoring.IngestFilesProcessed.WithLabelValues(string(converter.StatusFailed)).Inc()
		return result
	}

	monitoring.IngestFilesProcessed.WithLabelValues(string(result.Status)).Inc()
	monitoring.IngestQuestionsImported.Add(float64(result.QuestionsImported))
	monitoring.IngestAnswersImported.Add(float64(result.AnswersImported))
	monitoring.IngestDuplicatesSkipped.Add(float64(result.DuplicatesSkipped))

	logger.Log.Info("file processed",
		zap.String("file", base),
		zap.String("status", string(result.Status)),
		zap.Int("questions", result.QuestionsImported),
		zap.Int("answers", result.AnswersImported))
	return result
}

// importRaw maps a validated RawExam into persisted entities inside one
// transaction. Any error rolls back the whole file.
func (s *ImportService) importRaw(ctx context.Context, raw *converter.RawExam, result *converter.ImportResult) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		examRepo := repository.NewExamRepository(tx)
		moduleRepo := repository.NewModuleRepository(tx)

		title := converter.DeriveExamTitle(raw)
		result.ExamTitle = title

		// Duplicate exams are a no-op success, not an error.
		if _, err := examRepo.FindExamByTitle(title); err == nil {
			logger.Log.Warn("exam already exists, skipping file", zap.String("title", title))
			result.Status = converter.StatusSkippedDuplicate
			result.DuplicatesSkipped++
			return nil
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		mod, err := moduleRepo.GetOrCreateModule(defaultModuleName, defaultModuleDesc, 1)
		if err != nil {
			return err
		}
		topic, err := moduleRepo.GetOrCreateTopic(mod.ID, defaultModuleName, defaultTopicDesc, 1)
		if err != nil {
			return err
		}

		timeLimit := s.DefaultTimeLimit
		if raw.TimeLimitMinutes != nil {
			timeLimit = *raw.TimeLimitMinutes
		}

		metadata, err := examMetadata(raw, result.FileType)
		if err != nil {
			return err
		}

		exam := &model.Exam{
			Title:          title,
			Description:    fmt.Sprintf("Imported from %s", result.SourceFile),
			TimeLimit:      timeLimit,
			TotalQuestions: len(raw.Questions),
			SourceFile:     result.SourceFile,
			Version:        "1.0",
			IsActive:       true,
			Metadata:       metadata,
		}
		if err := examRepo.CreateExam(exam); err != nil {
			return err
		}

		for i, rq := range raw.Questions {
			if rq.ExternalID != "" {
				if _, err := examRepo.FindQuestionByOriginalID(rq.ExternalID); err == nil {
					logger.Log.Warn("question already exists, skipping",
						zap.String("originalId", rq.ExternalID))
					result.DuplicatesSkipped++
					continue
				} else if !errors.Is(err, gorm.ErrRecordNotFound) {
					return err
				}
			}

			if err := s.importQuestion(examRepo, exam, topic, rq, i, raw.ExternalID, result); err != nil {
				return err
			}
		}

		result.Status = converter.StatusImported
		result.ExamID = &exam.ID
		return nil
	})
}

func (s *ImportService) importQuestion(examRepo *repository.ExamRepository, exam *model.Exam, topic *model.Topic, rq converter.RawQuestion, index int, examExternalID *int, result *converter.ImportResult) error {
	optionTexts := make([]string, len(rq.Options))
	for i, o := range rq.Options {
		optionTexts[i] = o.Text
	}

	cardinality := converter.Classify(rq.Text, optionTexts)
	cardinalityJSON, err := json.Marshal(cardinality)
	if err != nil {
		return err
	}

	originalID := rq.ExternalID
	if originalID == "" {
		originalID = fmt.Sprintf("imported_%d", index)
	}

	question := &model.Question{
		ExamID:                 exam.ID,
		TopicID:                &topic.ID,
		OriginalID:             originalID,
		Text:                   rq.Text,
		HTMLContent:            rq.Text,
		Difficulty:             rq.Difficulty,
		Explanation:            rq.Explanation,
		Order:                  index + 1,
		Metadata:               datatypes.JSON(cardinalityJSON),
		SourceExamExternalID:   examExternalID,
		OriginalQuestionNumber: index + 1,
	}
	if err := examRepo.CreateQuestion(question); err != nil {
		return err
	}
	result.QuestionsImported++

	correct := make(map[int]bool, len(rq.Correct))
	for _, idx := range rq.Correct {
		correct[idx] = true
	}

	for j, opt := range rq.Options {
		answer := &model.Answer{
			QuestionID:  question.ID,
			OriginalID:  fmt.Sprintf("%s_%d", originalID, j),
			Text:        opt.Text,
			HTMLContent: opt.Text,
			IsCorrect:   correct[j],
			Order:       j + 1,
		}
		if err := examRepo.CreateAnswer(answer); err != nil {
			return err
		}
		result.AnswersImported++
	}

	return nil
}

// ImportFiles processes files strictly one at a time, in the given order.
// A failing file never aborts the batch.
func (s *ImportService) ImportFiles(ctx context.Context, paths []string) []converter.ImportResult {
	results := make([]converter.ImportResult, 0, len(paths))
	for _, path := range paths {
		results = append(results, s.ImportFile(ctx, path))
	}
	return results
}

// ImportDirectories discovers *.html and *.json files under the given
// directories, ingests them sequentially, and persists an ImportRun with the
// aggregated summary and rendered report.
func (s *ImportService) ImportDirectories(ctx context.Context, htmlDir, jsonDir string) ([]converter.ImportResult, converter.Summary, string, error) {
	ctx, span := tracing.Tracer.Start(ctx, "ingest.batch")
	defer span.End()

	started := time.Now()
	var paths []string

	for dir, patterns := range map[string][]string{
		htmlDir: {"*.html", "*.htm"},
		jsonDir: {"*.json"},
	} {
		if dir == "" {
			continue
		}
		for _, pattern := range patterns {
			matches, err := filepath.Glob(filepath.Join(dir, pattern))
			if err != nil {
				return nil, converter.Summary{}, "", err
			}
			paths = append(paths, matches...)
		}
	}
	sort.Strings(paths)

	logger.Log.Info("starting batch ingest",
		zap.String("htmlDir", htmlDir),
		zap.String("jsonDir", jsonDir),
		zap.Int("files", len(paths)))

	results := s.ImportFiles(ctx, paths)
	summary := converter.Summarize(results)
	report := converter.RenderReport(summary, results)

	if err := s.recordRun(htmlDir, jsonDir, summary, report); err != nil {
		// The import itself succeeded; a failed audit record is only logged.
		logger.Log.Error("failed to persist import run", zap.Error(err))
	}

	logger.Log.Info("batch ingest finished",
		zap.Int("files", summary.TotalFiles),
		zap.Int("failed", summary.Failed),
		zap.Duration("elapsed", time.Since(started)))

	return results, summary, report, nil
}

func (s *ImportService) recordRun(htmlDir, jsonDir string, summary converter.Summary, report string) error {
	if s.RunRepo == nil {
		return nil
	}

	summaryJSON, err := json.Marshal(summary)
	if err != nil {
		return err
	}

	return s.RunRepo.Create(&model.ImportRun{
		Source:            fmt.Sprintf("html=%s json=%s", htmlDir, jsonDir),
		FilesProcessed:    summary.TotalFiles,
		ExamsCreated:      summary.ExamsCreated,
		QuestionsImported: summary.QuestionsImported,
		AnswersImported:   summary.AnswersImported,
		DuplicatesSkipped: summary.DuplicatesSkipped,
		Failures:          summary.Failed,
		SuccessRate:       summary.SuccessRate,
		Summary:           datatypes.JSON(summaryJSON),
		Report:            report,
	})
}

func (s *ImportService) ListRuns(page, limit int) ([]model.ImportRun, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return s.RunRepo.List(page, limit)
}

func examMetadata(raw *converter.RawExam, fileType string) (datatypes.JSON, error) {
	meta := map[string]interface{}{
		"exam_external_id":   raw.ExternalID,
		"source_filename":    filepath.Base(raw.SourceFile),
		"file_type":          fileType,
		"time_limit_minutes": raw.TimeLimitMinutes,
		"question_count":     len(raw.Questions),
		"original_json_keys": raw.TopLevelKeys,
		"extracted_at":       time.Now().Format(time.RFC3339),
	}

	b, err := json.Marshal(meta)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b), nil
}

func joinFirst(issues []string, n int) string {
	if len(issues) == 0 {
		return ""
	}
	if len(issues) < n {
		n = len(issues)
	}
	out := issues[0]
	for _, issue := range issues[1:n] {
		out += "; " + issue
	}
	return out
}
