package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"exam_ingest_backend/internal/model"
	"exam_ingest_backend/internal/repository"
	"exam_ingest_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const examListCachePrefix = "exams:list:"
const examListCacheTTL = 5 * time.Minute

// ExamService is the read side the web app consumes: exams with their ordered
// questions and answers. Listing is redis-cached when a client is configured.
type ExamService struct {
	Repo  *repository.ExamRepository
	Redis *redis.Client // nil disables caching
}

func NewExamService(repo *repository.ExamRepository, rdb *redis.Client) *ExamService {
	return &ExamService{Repo: repo, Redis: rdb}
}

type examPage struct {
	List  []model.Exam `json:"list"`
	Total int64        `json:"total"`
}

func (s *ExamService) ListExams(ctx context.Context, page, limit int) ([]model.Exam, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	cacheKey := fmt.Sprintf("%s%d:%d", examListCachePrefix, page, limit)
	if s.Redis != nil {
		val, err := s.Redis.Get(ctx, cacheKey).Result()
		if err == nil {
			var cached examPage
			if json.Unmarshal([]byte(val), &cached) == nil {
				return cached.List, cached.Total, nil
			}
		} else if err != redis.Nil {
			logger.Log.Warn("exam list cache read failed", zap.Error(err))
		}
	}

	exams, total, err := s.Repo.ListExams(page, limit, true)
	if err != nil {
		return nil, 0, err
	}

	if s.Redis != nil {
		if payload, err := json.Marshal(examPage{List: exams, Total: total}); err == nil {
			if err := s.Redis.Set(ctx, cacheKey, payload, examListCacheTTL).Err(); err != nil {
				logger.Log.Warn("exam list cache write failed", zap.Error(err))
			}
		}
	}

	return exams, total, nil
}

func (s *ExamService) GetExam(ctx context.Context, id uint) (*model.Exam, error) {
	return s.Repo.FindExamByID(id)
}

func (s *ExamService) ListQuestions(ctx context.Context, examID uint) ([]model.Question, error) {
	return s.Repo.ListQuestions(examID)
}

// InvalidateListCache drops cached exam pages after an import run.
func (s *ExamService) InvalidateListCache(ctx context.Context) {
	if s.Redis == nil {
		return
	}

	iter := s.Redis.Scan(ctx, 0, examListCachePrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		s.Redis.Del(ctx, iter.Val())
	}
	if err := iter.Err(); err != nil {
		logger.Log.Warn("exam list cache invalidation failed", zap.Error(err))
	}
}
