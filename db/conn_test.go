package db

import (
	"path/filepath"
	"recipe-api/model"
	"recipe-api/pkg/security"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	viper.Set("db.driver", "sqlite")
	viper.Set("db.dsn", filepath.Join(t.TempDir(), "test.db"))

	d, err := New()
	require.NoError(t, err)
	return d
}

func TestUserDeleteCascades(t *testing.T) {
	d := newTestDB(t)

	user := model.User{ID: "cascade-user-0001", Email: "gone@example.com", PasswordHash: "x", Active: true}
	require.NoError(t, d.Create(&user).Error)
	require.NoError(t, d.Create(&model.AuthToken{Key: "somekey", UserID: user.ID}).Error)

	recipe := model.Recipe{
		UserID: user.ID,
		Title:  "Doomed",
		Price:  1.50,
		Tags:   []model.Tag{{UserID: user.ID, Name: "Doomed tag"}},
	}
	require.NoError(t, d.Create(&recipe).Error)
	require.NoError(t, d.Create(&model.Ingredient{UserID: user.ID, Name: "Doomed ingredient"}).Error)

	require.NoError(t, d.Select(clause.Associations).Delete(&user).Error)

	for _, m := range []any{&model.Recipe{}, &model.Tag{}, &model.Ingredient{}, &model.AuthToken{}} {
		var count int64
		require.NoError(t, d.Model(m).Count(&count).Error)
		assert.Zero(t, count)
	}
}

func TestCreateSuperuser(t *testing.T) {
	d := newTestDB(t)

	user, err := CreateSuperuser(d, security.NewHasher(), "Admin@EXAMPLE.com:adminpass")
	require.NoError(t, err)

	assert.Equal(t, "Admin@example.com", user.Email)
	assert.True(t, user.Staff)
	assert.True(t, user.Superuser)
	assert.NotEqual(t, "adminpass", user.PasswordHash)
}

func TestCreateSuperuserBadSpec(t *testing.T) {
	d := newTestDB(t)

	_, err := CreateSuperuser(d, security.NewHasher(), "no-colon-here")
	assert.Error(t, err)

	_, err = CreateSuperuser(d, security.NewHasher(), "a@example.com:pw")
	assert.Error(t, err)
}
