package userstats

import (
	"fmt"
	"strings"
	"testing"

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

	require.NoError(t, db.AutoMigrate(&UserStats{}))
	return db
}

func TestAddDeltas(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository(db)
	userID := uuid.New()
	today := util.Today()

	t.Run("CreatesRowOnFirstWrite", func(t *testing.T) {
		require.NoError(t, repo.AddDeltas(userID, 60, 2, today))

		stats, err := repo.Get(userID)
		require.NoError(t, err)
		require.NotNil(t, stats)
		assert.Equal(t, 60, stats.TotalXP)
		assert.Equal(t, 1, stats.QuizzesCompleted)
		assert.Equal(t, 2, stats.TotalCorrect)
		assert.True(t, stats.LastActivityDate.Equal(today))
	})

	t.Run("IncrementsInPlace", func(t *testing.T) {
		require.NoError(t, repo.AddDeltas(userID, 55, 1, today))

		stats, err := repo.Get(userID)
		require.NoError(t, err)
		require.NotNil(t, stats)
		assert.Equal(t, 115, stats.TotalXP)
		assert.Equal(t, 2, stats.QuizzesCompleted)
		assert.Equal(t, 3, stats.TotalCorrect)
	})
}

func TestGetUnknownUser(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository(db)

	stats, err := repo.Get(uuid.New())
	require.NoError(t, err)
	assert.Nil(t, stats)
}
