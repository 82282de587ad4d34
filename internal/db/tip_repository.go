package db

import (
	"github.com/terraincognita07/cyclesight/internal/models"
	"gorm.io/gorm"
)

type TipRepository struct {
	database *gorm.DB
}

func NewTipRepository(database *gorm.DB) *TipRepository {
	return &TipRepository{database: database}
}

func (repo *TipRepository) List() ([]models.Tip, error) {
	return repo.find(repo.database)
}

func (repo *TipRepository) ListByCycleDay(cycleDay int) ([]models.Tip, error) {
	return repo.find(repo.database.Where("cycle_day = ?", cycleDay))
}

func (repo *TipRepository) ListByPhase(phase models.CyclePhase) ([]models.Tip, error) {
	return repo.find(repo.database.Where("cycle_phase = ?", phase))
}

func (repo *TipRepository) FindByID(tipID string) (models.Tip, bool, error) {
	tip := models.Tip{}
	result := repo.database.Where("id = ?", tipID).Limit(1).Find(&tip)
	if result.Error != nil {
		return models.Tip{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Tip{}, false, nil
	}
	return tip, true, nil
}

func (repo *TipRepository) Create(tip *models.Tip) error {
	return repo.database.Create(tip).Error
}

func (repo *TipRepository) Save(tip *models.Tip) error {
	return repo.database.Save(tip).Error
}

func (repo *TipRepository) Delete(tipID string) (bool, error) {
	result := repo.database.Where("id = ?", tipID).Delete(&models.Tip{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (repo *TipRepository) find(query *gorm.DB) ([]models.Tip, error) {
	tips := make([]models.Tip, 0)
	if err := query.Order("created_at ASC, id ASC").Find(&tips).Error; err != nil {
		return nil, err
	}
	return tips, nil
}
