package db

import (
	"github.com/avoronin9/ironlog/internal/models"
	"gorm.io/gorm"
)

type UserRepository struct {
	database *gorm.DB
}

func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{database: database}
}

func (repo *UserRepository) FindByID(userID uint) (models.User, bool, error) {
	user := models.User{}
	result := repo.database.Limit(1).Find(&user, userID)
	if result.Error != nil {
		return models.User{}, false, result.Error
	}
	return user, result.RowsAffected > 0, nil
}

func (repo *UserRepository) FindByUsername(username string) (models.User, bool, error) {
	user := models.User{}
	result := repo.database.Where("username = ?", username).Limit(1).Find(&user)
	if result.Error != nil {
		return models.User{}, false, result.Error
	}
	return user, result.RowsAffected > 0, nil
}

func (repo *UserRepository) ExistsByUsername(username string) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.User{}).
		Where("username = ?", username).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *UserRepository) FindByRecoveryUUID(recoveryUUID string) (models.User, bool, error) {
	user := models.User{}
	result := repo.database.Where("recovery_uuid = ?", recoveryUUID).Limit(1).Find(&user)
	if result.Error != nil {
		return models.User{}, false, result.Error
	}
	return user, result.RowsAffected > 0, nil
}

func (repo *UserRepository) Create(user *models.User) error {
	return repo.database.Create(user).Error
}

func (repo *UserRepository) UpdateByID(userID uint, updates map[string]any) error {
	return repo.database.Model(&models.User{}).Where("id = ?", userID).Updates(updates).Error
}

// ListWeeklyReportRecipients returns users who opted into weekly reports and
// have an email address on file.
func (repo *UserRepository) ListWeeklyReportRecipients() ([]models.User, error) {
	users := make([]models.User, 0)
	if err := repo.database.
		Where("weekly_report_enabled = ? AND email IS NOT NULL AND email <> ''", true).
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
