package repository

import (
	"github.com/Taian-an/gym-management/models"
	"gorm.io/gorm"
)

type MemberRepository interface {
	Create(member *models.Member) error
	FindByID(id string) (*models.Member, error)
	FindAll() ([]models.Member, error)
	Update(member *models.Member) error
	Delete(id string) error
	Count() (int64, error)
}

type memberRepo struct {
	db *gorm.DB
}

func NewMemberRepo(db *gorm.DB) MemberRepository {
	return &memberRepo{db: db}
}

func (r *memberRepo) Create(member *models.Member) error {
	return r.db.Create(member).Error
}

func (r *memberRepo) FindByID(id string) (*models.Member, error) {
	var member models.Member
	if err := r.db.First(&member, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *memberRepo) FindAll() ([]models.Member, error) {
	var members []models.Member
	err := r.db.Order("created_at DESC").Find(&members).Error
	return members, err
}

func (r *memberRepo) Update(member *models.Member) error {
	return r.db.Save(member).Error
}

func (r *memberRepo) Delete(id string) error {
	// ไม่ cascade — enrollment ของสมาชิกนี้จะยังอยู่ (read path ต้องทนได้)
	return r.db.Delete(&models.Member{}, "id = ?", id).Error
}

func (r *memberRepo) Count() (int64, error) {
	var n int64
	err := r.db.Model(&models.Member{}).Count(&n).Error
	return n, err
}
