package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCoachRejectsEmptyName(t *testing.T) {
	f := newFixture()

	_, err := f.coachSvc.CreateCoach(CreateCoachDTO{Name: "  ", Expertise: []string{"โยคะ"}})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "name")

	// ต้องไม่มี record หลงเข้า store
	count, _ := f.coaches.Count()
	assert.Equal(t, int64(0), count)
}

func TestCreateCoachRejectsEmptyExpertise(t *testing.T) {
	f := newFixture()

	_, err := f.coachSvc.CreateCoach(CreateCoachDTO{Name: "โค้ชเก่ง", Expertise: []string{" ", ""}})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "expertise")
}

func TestCreateCoachTrimsAndNormalizes(t *testing.T) {
	f := newFixture()

	coach, err := f.coachSvc.CreateCoach(CreateCoachDTO{
		Name:      "  โค้ชเก่ง  ",
		Expertise: []string{" โยคะ ", "มวยไทย", ""},
		Phone:     "0812345678",
		Email:     "   ",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, coach.ID)
	assert.Equal(t, "โค้ชเก่ง", coach.Name)
	assert.Equal(t, []string{"โยคะ", "มวยไทย"}, []string(coach.Expertise))
	assert.Nil(t, coach.Email)
}

func TestDeleteCoachMissingID(t *testing.T) {
	f := newFixture()
	var verr *ValidationError
	assert.ErrorAs(t, f.coachSvc.DeleteCoach(" "), &verr)
}
