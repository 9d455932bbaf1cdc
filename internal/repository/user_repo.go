package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Lucien-Luc/Programs/internal/model"
)

type UserRepository struct {
	BaseRepository[model.User]
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{BaseRepository: BaseRepository[model.User]{DB: db}}
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	err := r.DB.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, translateErr(err)
	}
	return &user, nil
}

func (r *UserRepository) AdminExists(ctx context.Context) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.User{}).Where("role = ?", model.RoleAdmin).Count(&count).Error
	return count > 0, err
}
