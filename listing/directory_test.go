package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blightwatch-be/models"
)

func TestSearchStaff(t *testing.T) {
	staff := models.SampleStaff()

	tests := []struct {
		query string
		want  []string
	}{
		{"", []string{"user-001", "user-002", "user-003", "user-004", "user-005", "user-006"}},
		{"  REVIEWER ", []string{"user-002", "user-003", "user-004"}},
		{"elena.rodriguez@", []string{"user-006"}},
		{"road maint", []string{"user-005"}},
		{"nobody", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got := []string{}
			for _, m := range SearchStaff(staff, tt.query) {
				got = append(got, m.ID)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStaffCounts(t *testing.T) {
	staff := models.SampleStaff()

	depts := CountByDepartment(staff, append(models.Departments, "Parks"))
	require.Len(t, depts, 7)
	assert.Equal(t, DepartmentCount{Name: "IT Department", Count: 1}, depts[0])
	assert.Equal(t, DepartmentCount{Name: "Parks", Count: 0}, depts[6])

	statuses := CountByAccountStatus(staff)
	assert.Equal(t, 5, statuses[models.Active])
	assert.Equal(t, 1, statuses[models.Inactive])
}

func TestSearchOrganizations(t *testing.T) {
	orgs := models.SampleOrganizations()

	assert.Len(t, SearchOrganizations(orgs, ""), 6)
	assert.Len(t, SearchOrganizations(orgs, "non-profit"), 2)

	got := SearchOrganizations(orgs, "james thompson")
	require.Len(t, got, 1)
	assert.Equal(t, "Community Cleanup Coalition", got[0].Name)

	got = SearchOrganizations(orgs, "beautify.org")
	require.Len(t, got, 1)
	assert.Equal(t, "org-004", got[0].ID)
}

func TestFilterSubmissions(t *testing.T) {
	subs := models.SampleSubmissions()

	assert.Len(t, FilterSubmissions(subs, All), 9)
	assert.Len(t, FilterSubmissions(subs, ""), 9)
	assert.Len(t, FilterSubmissions(subs, "Revision"), 2)
	assert.Len(t, FilterSubmissions(subs, "added"), 2)
	assert.Empty(t, FilterSubmissions(subs, "closed"))
}
