package quizlimit

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
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

	require.NoError(t, db.AutoMigrate(&UserQuizLimit{}))
	return db
}

func newTestService(db *gorm.DB) LimitService {
	return NewService(db, NewRepository(db))
}

func TestCheckAndMaybeReset(t *testing.T) {
	ctx := context.Background()

	t.Run("LazyCreatesDefaultRow", func(t *testing.T) {
		db := newTestDB(t)
		svc := newTestService(db)
		userID := uuid.New()

		status, err := svc.CheckAndMaybeReset(ctx, userID)
		require.NoError(t, err)

		assert.True(t, status.CanAttempt)
		assert.Equal(t, DefaultDailyLimit, status.DailyLimit)
		assert.Equal(t, 0, status.AttemptsToday)
		assert.Equal(t, 1, status.Remaining)
		assert.False(t, status.IsPremium)
	})

	t.Run("ExhaustedQuotaBlocks", func(t *testing.T) {
		db := newTestDB(t)
		svc := newTestService(db)
		userID := uuid.New()

		require.NoError(t, db.Create(&UserQuizLimit{
			UserID:          userID,
			DailyLimit:      1,
			AttemptsToday:   1,
			LastAttemptDate: util.Today(),
		}).Error)

		status, err := svc.CheckAndMaybeReset(ctx, userID)
		require.NoError(t, err)

		assert.False(t, status.CanAttempt)
		assert.Equal(t, 0, status.Remaining)
		assert.Equal(t, 1, status.AttemptsToday)
	})

	t.Run("ResetsCounterOnNewDay", func(t *testing.T) {
		db := newTestDB(t)
		svc := newTestService(db)
		userID := uuid.New()

		yesterday := util.DateOf(time.Now().AddDate(0, 0, -1))
		require.NoError(t, db.Create(&UserQuizLimit{
			UserID:          userID,
			DailyLimit:      1,
			AttemptsToday:   5,
			LastAttemptDate: yesterday,
		}).Error)

		status, err := svc.CheckAndMaybeReset(ctx, userID)
		require.NoError(t, err)

		assert.True(t, status.CanAttempt)
		assert.Equal(t, 0, status.AttemptsToday)
		assert.Equal(t, 1, status.Remaining)

		var stored UserQuizLimit
		require.NoError(t, db.First(&stored, "user_id = ?", userID).Error)
		assert.Equal(t, 0, stored.AttemptsToday)
		assert.True(t, stored.LastAttemptDate.Equal(util.Today()))
	})

	t.Run("SameDayDoesNotReset", func(t *testing.T) {
		db := newTestDB(t)
		svc := newTestService(db)
		userID := uuid.New()

		require.NoError(t, db.Create(&UserQuizLimit{
			UserID:          userID,
			DailyLimit:      3,
			AttemptsToday:   2,
			LastAttemptDate: util.Today(),
		}).Error)

		status, err := svc.CheckAndMaybeReset(ctx, userID)
		require.NoError(t, err)

		assert.True(t, status.CanAttempt)
		assert.Equal(t, 2, status.AttemptsToday)
		assert.Equal(t, 1, status.Remaining)
	})

	t.Run("PremiumIgnoresQuota", func(t *testing.T) {
		db := newTestDB(t)
		svc := newTestService(db)
		userID := uuid.New()

		require.NoError(t, db.Create(&UserQuizLimit{
			UserID:          userID,
			DailyLimit:      1,
			AttemptsToday:   50,
			LastAttemptDate: util.Today(),
			IsPremium:       true,
		}).Error)

		status, err := svc.CheckAndMaybeReset(ctx, userID)
		require.NoError(t, err)

		assert.True(t, status.CanAttempt)
		assert.True(t, status.IsPremium)
		assert.Equal(t, UnlimitedRemaining, status.Remaining)
	})

	t.Run("ExpiredPremiumIsTreatedAsFree", func(t *testing.T) {
		db := newTestDB(t)
		svc := newTestService(db)
		userID := uuid.New()

		expired := time.Now().Add(-time.Hour)
		require.NoError(t, db.Create(&UserQuizLimit{
			UserID:          userID,
			DailyLimit:      1,
			AttemptsToday:   1,
			LastAttemptDate: util.Today(),
			IsPremium:       true,
			PremiumExpiry:   &expired,
		}).Error)

		status, err := svc.CheckAndMaybeReset(ctx, userID)
		require.NoError(t, err)

		assert.False(t, status.CanAttempt)
		assert.False(t, status.IsPremium)
		assert.Equal(t, 0, status.Remaining)
	})

	t.Run("UnlimitedSentinelLimit", func(t *testing.T) {
		db := newTestDB(t)
		svc := newTestService(db)
		userID := uuid.New()

		require.NoError(t, db.Create(&UserQuizLimit{
			UserID:          userID,
			DailyLimit:      UnlimitedDailyLimit,
			AttemptsToday:   10,
			LastAttemptDate: util.Today(),
		}).Error)

		status, err := svc.CheckAndMaybeReset(ctx, userID)
		require.NoError(t, err)

		assert.True(t, status.CanAttempt)
		assert.Equal(t, UnlimitedRemaining, status.Remaining)
	})
}

func TestSetPremium(t *testing.T) {
	ctx := context.Background()

	t.Run("UpgradeLiftsQuotaAndKeepsCounter", func(t *testing.T) {
		db := newTestDB(t)
		svc := newTestService(db)
		userID := uuid.New()

		_, err := svc.CheckAndMaybeReset(ctx, userID)
		require.NoError(t, err)
		require.NoError(t, svc.ConsumeAttempt(ctx, userID))

		status, err := svc.SetPremium(ctx, userID, &SetPremiumDTO{IsPremium: true})
		require.NoError(t, err)

		assert.True(t, status.IsPremium)
		assert.True(t, status.CanAttempt)
		assert.Equal(t, UnlimitedRemaining, status.Remaining)
		assert.Equal(t, 1, status.AttemptsToday)

		var stored UserQuizLimit
		require.NoError(t, db.First(&stored, "user_id = ?", userID).Error)
		assert.Equal(t, UnlimitedDailyLimit, stored.DailyLimit)
		assert.Equal(t, 1, stored.AttemptsToday)
	})

	t.Run("DowngradeRestoresFreeLimit", func(t *testing.T) {
		db := newTestDB(t)
		svc := newTestService(db)
		userID := uuid.New()

		_, err := svc.SetPremium(ctx, userID, &SetPremiumDTO{IsPremium: true})
		require.NoError(t, err)

		status, err := svc.SetPremium(ctx, userID, &SetPremiumDTO{IsPremium: false})
		require.NoError(t, err)

		assert.False(t, status.IsPremium)
		assert.Equal(t, DefaultDailyLimit, status.DailyLimit)
	})

	t.Run("ExplicitDailyLimitOverridesPlanDefault", func(t *testing.T) {
		db := newTestDB(t)
		svc := newTestService(db)
		userID := uuid.New()

		customLimit := 3
		status, err := svc.SetPremium(ctx, userID, &SetPremiumDTO{
			IsPremium:  false,
			DailyLimit: &customLimit,
		})
		require.NoError(t, err)

		assert.Equal(t, 3, status.DailyLimit)
		assert.Equal(t, 3, status.Remaining)
		assert.True(t, status.CanAttempt)
	})
}

func TestConsumeAttempt(t *testing.T) {
	ctx := context.Background()

	db := newTestDB(t)
	svc := newTestService(db)
	userID := uuid.New()

	_, err := svc.CheckAndMaybeReset(ctx, userID)
	require.NoError(t, err)

	require.NoError(t, svc.ConsumeAttempt(ctx, userID))

	status, err := svc.CheckAndMaybeReset(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 1, status.AttemptsToday)
	assert.False(t, status.CanAttempt)
	assert.Equal(t, 0, status.Remaining)

	require.NoError(t, svc.ConsumeAttempt(ctx, userID))

	var stored UserQuizLimit
	require.NoError(t, db.First(&stored, "user_id = ?", userID).Error)
	assert.Equal(t, 2, stored.AttemptsToday)
}
