package db

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/car-service-agent/internal/config"
	"github.com/BruksfildServices01/car-service-agent/internal/models"
)

func TestWithForeignKeys(t *testing.T) {
	tests := []struct {
		dsn  string
		want string
	}{
		{"car.sqlite", "file:car.sqlite?_foreign_keys=on"},
		{"file:car.sqlite", "file:car.sqlite?_foreign_keys=on"},
		{"file:x?mode=memory", "file:x?mode=memory&_foreign_keys=on"},
		{"file:x?_foreign_keys=off", "file:x?_foreign_keys=off"},
		{"file:x?_fk=1", "file:x?_fk=1"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, withForeignKeys(tt.dsn), tt.dsn)
	}
}

func TestNewDB_UnsupportedDriver(t *testing.T) {
	_, err := NewDB(&config.Config{DBDriver: "mysql"})
	assert.ErrorContains(t, err, `unsupported DB_DRIVER "mysql"`)
}

func TestNewDB_SQLiteMigrates(t *testing.T) {
	db, err := NewDB(&config.Config{
		DBDriver:       DriverSQLite,
		DBUrl:          "file:" + uuid.NewString() + "?mode=memory&cache=shared",
		DBMaxOpenConns: 10,
		DBMaxIdleConns: 1,
		DBConnLifetime: 5,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)
	for _, m := range []any{&models.User{}, &models.Car{}, &models.Appointment{}, &models.AuditLog{}} {
		assert.True(t, db.Migrator().HasTable(m))
	}

	var fk int
	require.NoError(t, db.Raw("PRAGMA foreign_keys").Scan(&fk).Error)
	assert.Equal(t, 1, fk)
}

func TestGormLogger_SkipsRecordNotFound(t *testing.T) {
	var buf bytes.Buffer
	db, err := gorm.Open(sqlite.Open("file:"+uuid.NewString()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: newGormLogger(&buf),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, models.AutoMigrate(db))
	buf.Reset()

	var u models.User
	err = db.First(&u, "id = ?", "nobody").Error
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.Empty(t, buf.String())

	require.Error(t, db.Exec("SELECT * FROM no_such_table").Error)
	assert.Contains(t, buf.String(), "no such table")
}
