package repository

import (
	"github.com/Taian-an/gym-management/models"
	"gorm.io/gorm"
)

type CoachRepository interface {
	Create(coach *models.Coach) error
	FindByID(id string) (*models.Coach, error)
	FindAll() ([]models.Coach, error)
	Update(coach *models.Coach) error
	Delete(id string) error
	Count() (int64, error)
}

type coachRepo struct {
	db *gorm.DB
}

func NewCoachRepo(db *gorm.DB) CoachRepository {
	return &coachRepo{db: db}
}

func (r *coachRepo) Create(coach *models.Coach) error {
	return r.db.Create(coach).Error
}

func (r *coachRepo) FindByID(id string) (*models.Coach, error) {
	var coach models.Coach
	if err := r.db.First(&coach, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &coach, nil
}

func (r *coachRepo) FindAll() ([]models.Coach, error) {
	var coaches []models.Coach
	err := r.db.Order("created_at DESC").Find(&coaches).Error
	return coaches, err
}

func (r *coachRepo) Update(coach *models.Coach) error {
	return r.db.Save(coach).Error
}

func (r *coachRepo) Delete(id string) error {
	// ไม่ cascade — คอร์สที่อ้างโค้ชนี้จะกลายเป็น dangling reference
	return r.db.Delete(&models.Coach{}, "id = ?", id).Error
}

func (r *coachRepo) Count() (int64, error) {
	var n int64
	err := r.db.Model(&models.Coach{}).Count(&n).Error
	return n, err
}
