package db

import (
	"time"

	"github.com/terraincognita07/cyclesight/internal/models"
	"gorm.io/gorm"
)

type DailyLogRepository struct {
	database *gorm.DB
}

func NewDailyLogRepository(database *gorm.DB) *DailyLogRepository {
	return &DailyLogRepository{database: database}
}

func (repo *DailyLogRepository) ListByUser(userID string) ([]models.DailyLog, error) {
	logs := make([]models.DailyLog, 0)
	if err := repo.database.Where("user_id = ?", userID).Order("date DESC, created_at DESC").Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (repo *DailyLogRepository) ListAll() ([]models.DailyLog, error) {
	logs := make([]models.DailyLog, 0)
	if err := repo.database.Order("date DESC, created_at DESC").Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

// ListByUserRange returns logs dated from start through end inclusive, in
// date order. Both bounds are calendar days at UTC midnight.
func (repo *DailyLogRepository) ListByUserRange(userID string, start time.Time, end time.Time) ([]models.DailyLog, error) {
	logs := make([]models.DailyLog, 0)
	if end.Before(start) {
		return logs, nil
	}
	if err := repo.database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, start, end.AddDate(0, 0, 1)).
		Order("date ASC, created_at ASC").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (repo *DailyLogRepository) FindByID(logID string) (models.DailyLog, bool, error) {
	entry := models.DailyLog{}
	result := repo.database.Where("id = ?", logID).Limit(1).Find(&entry)
	if result.Error != nil {
		return models.DailyLog{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.DailyLog{}, false, nil
	}
	return entry, true, nil
}

func (repo *DailyLogRepository) Create(entry *models.DailyLog) error {
	return repo.database.Create(entry).Error
}

func (repo *DailyLogRepository) Delete(logID string) (bool, error) {
	result := repo.database.Where("id = ?", logID).Delete(&models.DailyLog{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (repo *DailyLogRepository) Save(entry *models.DailyLog) error {
	return repo.database.Save(entry).Error
}
