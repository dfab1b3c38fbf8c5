package session

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/saulo-duarte/dailyquiz-lambda/internal/question"
	util "github.com/saulo-duarte/dailyquiz-lambda/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&question.QuizQuestion{}, &QuizSession{}))
	return db
}

func seedQuestions(t *testing.T, db *gorm.DB, difficulty question.Difficulty, count, points int) {
	t.Helper()

	options, err := json.Marshal([]string{"a", "b", "c", "d"})
	require.NoError(t, err)

	for i := 0; i < count; i++ {
		q := &question.QuizQuestion{
			ID:            uuid.New(),
			Content:       fmt.Sprintf("%s question %d", difficulty, i),
			Options:       options,
			CorrectAnswer: i % 4,
			Subject:       "math",
			Difficulty:    difficulty,
			Points:        points,
			Active:        true,
		}
		require.NoError(t, db.Create(q).Error)
	}
}

func newTestService(db *gorm.DB) SessionService {
	return NewService(NewRepository(db), question.NewRepository(db))
}

func TestGetOrCreateSession(t *testing.T) {
	ctx := context.Background()
	date, _ := util.ParseDate("2025-07-01")

	t.Run("CreatesOnFirstRequest", func(t *testing.T) {
		db := newTestDB(t)
		seedQuestions(t, db, question.DifficultyEasy, 10, 5)
		seedQuestions(t, db, question.DifficultyMedium, 10, 10)
		seedQuestions(t, db, question.DifficultyHard, 6, 20)

		svc := newTestService(db)

		sess, err := svc.GetOrCreateSession(ctx, date)
		require.NoError(t, err)

		assert.Equal(t, 20, sess.TotalQuestions)
		assert.Equal(t, 8*5+8*10+4*20, sess.TotalPoints)

		var distribution map[question.Difficulty]int
		require.NoError(t, json.Unmarshal(sess.DifficultyDistribution, &distribution))
		assert.Equal(t, 8, distribution[question.DifficultyEasy])
		assert.Equal(t, 8, distribution[question.DifficultyMedium])
		assert.Equal(t, 4, distribution[question.DifficultyHard])
	})

	t.Run("SecondCallReturnsSameSession", func(t *testing.T) {
		db := newTestDB(t)
		seedQuestions(t, db, question.DifficultyEasy, 10, 5)
		seedQuestions(t, db, question.DifficultyMedium, 10, 10)
		seedQuestions(t, db, question.DifficultyHard, 6, 20)

		svc := newTestService(db)

		first, err := svc.GetOrCreateSession(ctx, date)
		require.NoError(t, err)
		second, err := svc.GetOrCreateSession(ctx, date)
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)

		var count int64
		require.NoError(t, db.Model(&QuizSession{}).Count(&count).Error)
		assert.EqualValues(t, 1, count)
	})

	t.Run("BucketShortfallIsTolerated", func(t *testing.T) {
		db := newTestDB(t)
		seedQuestions(t, db, question.DifficultyEasy, 10, 5)
		seedQuestions(t, db, question.DifficultyMedium, 10, 10)
		seedQuestions(t, db, question.DifficultyHard, 2, 20)

		svc := newTestService(db)

		sess, err := svc.GetOrCreateSession(ctx, date)
		require.NoError(t, err)

		assert.Equal(t, 18, sess.TotalQuestions)
		assert.Equal(t, 8*5+8*10+2*20, sess.TotalPoints)

		var distribution map[question.Difficulty]int
		require.NoError(t, json.Unmarshal(sess.DifficultyDistribution, &distribution))
		assert.Equal(t, 2, distribution[question.DifficultyHard])
	})

	t.Run("EmptyBankYieldsEmptySession", func(t *testing.T) {
		db := newTestDB(t)
		svc := newTestService(db)

		sess, err := svc.GetOrCreateSession(ctx, date)
		require.NoError(t, err)

		assert.Equal(t, 0, sess.TotalQuestions)
		assert.Equal(t, 0, sess.TotalPoints)
	})

	t.Run("ConcurrentRequestsCreateExactlyOneSession", func(t *testing.T) {
		db := newTestDB(t)
		seedQuestions(t, db, question.DifficultyEasy, 10, 5)
		seedQuestions(t, db, question.DifficultyMedium, 10, 10)
		seedQuestions(t, db, question.DifficultyHard, 6, 20)

		svc := newTestService(db)

		const callers = 8
		ids := make([]uuid.UUID, callers)
		errs := make([]error, callers)

		var wg sync.WaitGroup
		for i := 0; i < callers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				sess, err := svc.GetOrCreateSession(ctx, date)
				errs[i] = err
				if sess != nil {
					ids[i] = sess.ID
				}
			}(i)
		}
		wg.Wait()

		for i := 0; i < callers; i++ {
			require.NoError(t, errs[i])
			assert.Equal(t, ids[0], ids[i])
		}

		var count int64
		require.NoError(t, db.Model(&QuizSession{}).Count(&count).Error)
		assert.EqualValues(t, 1, count)
	})
}

func TestGetSessionQuestions(t *testing.T) {
	ctx := context.Background()
	date, _ := util.ParseDate("2025-07-01")

	db := newTestDB(t)
	seedQuestions(t, db, question.DifficultyEasy, 10, 5)
	seedQuestions(t, db, question.DifficultyMedium, 10, 10)
	seedQuestions(t, db, question.DifficultyHard, 6, 20)

	svc := newTestService(db)

	sess, err := svc.GetOrCreateSession(ctx, date)
	require.NoError(t, err)

	questions, err := svc.GetSessionQuestions(ctx, sess)
	require.NoError(t, err)
	require.Len(t, questions, sess.TotalQuestions)

	var ids []uuid.UUID
	require.NoError(t, json.Unmarshal(sess.SelectedQuestions, &ids))
	for i, q := range questions {
		assert.Equal(t, ids[i], q.ID)
	}

	// Fixed concatenation order: easy block, then medium, then hard.
	for i, q := range questions {
		switch {
		case i < 8:
			assert.Equal(t, question.DifficultyEasy, q.Difficulty)
		case i < 16:
			assert.Equal(t, question.DifficultyMedium, q.Difficulty)
		default:
			assert.Equal(t, question.DifficultyHard, q.Difficulty)
		}
	}
}

func TestGetSessionQuestionsMissingBankRow(t *testing.T) {
	ctx := context.Background()
	date, _ := util.ParseDate("2025-07-01")

	db := newTestDB(t)
	seedQuestions(t, db, question.DifficultyEasy, 10, 5)

	svc := newTestService(db)

	sess, err := svc.GetOrCreateSession(ctx, date)
	require.NoError(t, err)

	var ids []uuid.UUID
	require.NoError(t, json.Unmarshal(sess.SelectedQuestions, &ids))
	require.NoError(t, db.Delete(&question.QuizQuestion{}, "id = ?", ids[0]).Error)

	questions, err := svc.GetSessionQuestions(ctx, sess)
	require.NoError(t, err)
	assert.Len(t, questions, len(ids)-1)
	for _, q := range questions {
		assert.NotEqual(t, ids[0], q.ID)
	}
}

func TestDeactivateSession(t *testing.T) {
	ctx := context.Background()
	date, _ := util.ParseDate("2025-07-01")

	db := newTestDB(t)
	seedQuestions(t, db, question.DifficultyEasy, 10, 5)

	svc := newTestService(db)

	_, err := svc.GetOrCreateSession(ctx, date)
	require.NoError(t, err)

	require.NoError(t, svc.DeactivateSession(ctx, date))

	found, err := svc.FindSession(ctx, date)
	require.NoError(t, err)
	assert.Nil(t, found)

	assert.ErrorIs(t, svc.DeactivateSession(ctx, date), ErrSessionNotFound)
}
