package repository

import (
	"airmen-backend/internal/model"

	"gorm.io/gorm"
)

type AirmanRepository interface {
	GetByStatus(status string) ([]model.Airman, error)
	FindByID(id uint) (*model.Airman, error)
	Create(a *model.Airman) error
	Update(a *model.Airman) error
	Delete(id uint) error
	CountByStatus(status string) (int64, error)
}

type airmanRepository struct {
	db *gorm.DB
}

func NewAirmanRepository(db *gorm.DB) AirmanRepository {
	return &airmanRepository{db}
}

// GetByStatus returns a snapshot of one status partition, newest first.
// The id tiebreaker keeps the order deterministic when creation timestamps
// collide, so filter results and exports are stable.
func (r *airmanRepository) GetByStatus(status string) ([]model.Airman, error) {
	var list []model.Airman
	err := r.db.Where("status = ?", status).Order("created_at desc, id desc").Find(&list).Error
	return list, err
}

func (r *airmanRepository) FindByID(id uint) (*model.Airman, error) {
	var a model.Airman
	err := r.db.First(&a, id).Error
	return &a, err
}

func (r *airmanRepository) Create(a *model.Airman) error {
	return r.db.Create(a).Error
}

func (r *airmanRepository) Update(a *model.Airman) error {
	return r.db.Save(a).Error
}

// Delete is a hard delete. There is no soft-delete or history for airmen
// records; rejection and removal leave no trace.
func (r *airmanRepository) Delete(id uint) error {
	return r.db.Unscoped().Delete(&model.Airman{}, id).Error
}

func (r *airmanRepository) CountByStatus(status string) (int64, error) {
	var count int64
	err := r.db.Model(&model.Airman{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
