package match

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimateProficiencyMentions(t *testing.T) {
	resume := "Python developer. Built Python tooling and taught python workshops."
	rows := EstimateProficiency("Software Engineer", resume, []string{"python", "react"}, RoleFullTime)
	require.Len(t, rows, 2)

	assert.Equal(t, "Python", rows[0].Skill)
	assert.Equal(t, 40+3*15, rows[0].UserProficiency)
	assert.Equal(t, 70, rows[0].RequiredProficiency)

	assert.Equal(t, "React", rows[1].Skill)
	assert.Equal(t, 40, rows[1].UserProficiency, "unmentioned skill stays at base")
}

func TestEstimateProficiencyCap(t *testing.T) {
	resume := strings.Repeat("sql ", 20)
	rows := EstimateProficiency("Data Engineer", resume, []string{"sql"}, RoleFullTime)
	require.Len(t, rows, 1)
	assert.Equal(t, 90, rows[0].UserProficiency)
}

func TestEstimateProficiencyRequiredLevels(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		roleType RoleType
		want     int
	}{
		{"internship outranks title", "Senior ML Intern", RoleInternship, 60},
		{"senior title", "Senior Software Engineer", RoleFullTime, 85},
		{"lead title", "Tech Lead", RoleFullTime, 85},
		{"manager title", "Engineering Manager", RoleFullTime, 85},
		{"plain title", "Software Engineer", RoleFullTime, 70},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := EstimateProficiency(tt.title, "", []string{"git"}, tt.roleType)
			require.Len(t, rows, 1)
			assert.Equal(t, tt.want, rows[0].RequiredProficiency)
		})
	}
}

func TestTitleCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"python", "Python"},
		{"machine learning", "Machine Learning"},
		{"ci/cd", "Ci/Cd"},
		{"c++", "C++"},
		{"vue.js", "Vue.Js"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, titleCase(tt.in), "titleCase(%q)", tt.in)
	}
}
