package repository

import (
	"github.com/Taian-an/gym-management/models"
	"gorm.io/gorm"
)

type CourseRepository interface {
	Create(course *models.Course) error
	FindByID(id string) (*models.Course, error)
	FindAll() ([]models.Course, error)
	FindRecent(limit int) ([]models.Course, error)
	Update(course *models.Course) error
	Delete(id string) error
	Count() (int64, error)
}

type courseRepo struct {
	db *gorm.DB
}

func NewCourseRepo(db *gorm.DB) CourseRepository {
	return &courseRepo{db: db}
}

func (r *courseRepo) Create(course *models.Course) error {
	return r.db.Create(course).Error
}

func (r *courseRepo) FindByID(id string) (*models.Course, error) {
	var course models.Course
	if err := r.db.First(&course, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *courseRepo) FindAll() ([]models.Course, error) {
	var courses []models.Course
	err := r.db.Order("created_at DESC").Find(&courses).Error
	return courses, err
}

func (r *courseRepo) FindRecent(limit int) ([]models.Course, error) {
	var courses []models.Course
	err := r.db.Order("created_at DESC").Limit(limit).Find(&courses).Error
	return courses, err
}

func (r *courseRepo) Update(course *models.Course) error {
	return r.db.Save(course).Error
}

func (r *courseRepo) Delete(id string) error {
	return r.db.Delete(&models.Course{}, "id = ?", id).Error
}

func (r *courseRepo) Count() (int64, error) {
	var n int64
	err := r.db.Model(&models.Course{}).Count(&n).Error
	return n, err
}
