package service

import (
	"errors"
	"strings"

	"github.com/Taian-an/gym-management/models"
	"github.com/Taian-an/gym-management/repository"
	"gorm.io/gorm"
)

type MemberService struct {
	members repository.MemberRepository
}

func NewMemberService(members repository.MemberRepository) *MemberService {
	return &MemberService{members: members}
}

func validateMemberFields(name, phone string) *ValidationError {
	verr := newValidationError()
	if strings.TrimSpace(name) == "" {
		verr.Fields["name"] = "กรุณากรอกชื่อสมาชิก"
	}
	if strings.TrimSpace(phone) == "" {
		verr.Fields["phone"] = "กรุณากรอกเบอร์โทร"
	}
	if len(verr.Fields) > 0 {
		return verr
	}
	return nil
}

func (s *MemberService) CreateMember(dto CreateMemberDTO) (*models.Member, error) {
	if verr := validateMemberFields(dto.Name, dto.Phone); verr != nil {
		return nil, verr
	}

	member := &models.Member{
		Name:  strings.TrimSpace(dto.Name),
		Phone: strings.TrimSpace(dto.Phone),
		Email: optionalString(dto.Email),
	}
	if err := s.members.Create(member); err != nil {
		return nil, err
	}
	return member, nil
}

func (s *MemberService) ListMembers() ([]models.Member, error) {
	return s.members.FindAll()
}

func (s *MemberService) UpdateMember(id string, dto UpdateMemberDTO) (*models.Member, error) {
	member, err := s.members.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if verr := validateMemberFields(dto.Name, dto.Phone); verr != nil {
		return nil, verr
	}

	member.Name = strings.TrimSpace(dto.Name)
	member.Phone = strings.TrimSpace(dto.Phone)
	member.Email = optionalString(dto.Email)
	if err := s.members.Update(member); err != nil {
		return nil, err
	}
	return member, nil
}

func (s *MemberService) DeleteMember(id string) error {
	if strings.TrimSpace(id) == "" {
		return &ValidationError{Fields: map[string]string{"id": "Missing ID"}}
	}
	// enrollment ของสมาชิกจะค้างเป็น orphan — ฝั่งอ่านแสดง "Unknown"
	return s.members.Delete(id)
}
