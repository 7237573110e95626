package service

import (
	"strings"

	"github.com/Taian-an/gym-management/models"
	"github.com/Taian-an/gym-management/repository"
	"gorm.io/datatypes"
)

type CoachService struct {
	coaches repository.CoachRepository
}

func NewCoachService(coaches repository.CoachRepository) *CoachService {
	return &CoachService{coaches: coaches}
}

func (s *CoachService) CreateCoach(dto CreateCoachDTO) (*models.Coach, error) {
	verr := newValidationError()
	if strings.TrimSpace(dto.Name) == "" {
		verr.Fields["name"] = "กรุณากรอกชื่อโค้ช"
	}
	expertise := make([]string, 0, len(dto.Expertise))
	for _, tag := range dto.Expertise {
		if t := strings.TrimSpace(tag); t != "" {
			expertise = append(expertise, t)
		}
	}
	if len(expertise) == 0 {
		verr.Fields["expertise"] = "กรุณาระบุความเชี่ยวชาญอย่างน้อย 1 รายการ"
	}
	if len(verr.Fields) > 0 {
		return nil, verr
	}

	coach := &models.Coach{
		Name:      strings.TrimSpace(dto.Name),
		Expertise: datatypes.NewJSONSlice(expertise),
		Phone:     strings.TrimSpace(dto.Phone),
		Email:     optionalString(dto.Email),
	}
	if err := s.coaches.Create(coach); err != nil {
		return nil, err
	}
	return coach, nil
}

func (s *CoachService) ListCoaches() ([]models.Coach, error) {
	return s.coaches.FindAll()
}

func (s *CoachService) DeleteCoach(id string) error {
	if strings.TrimSpace(id) == "" {
		return &ValidationError{Fields: map[string]string{"id": "Missing ID"}}
	}
	// ลบแล้วไม่ตามไปแก้คอร์ส — read path ฝั่งคอร์สแสดง "Unassigned" เอง
	return s.coaches.Delete(id)
}

// "" → nil เพื่อให้ unique index ฝั่ง DB ไม่ชนกันเองตอนไม่กรอกอีเมล
func optionalString(v string) *string {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return &v
}
