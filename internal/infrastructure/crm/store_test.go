package crm

import (
	"testing"
	"time"

	"kai-assistant/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func testStore(now time.Time) *Store {
	s := NewStore()
	s.AddStudent(entity.Student{ID: 1, FirstName: "Michael", LastName: "Chen", Email: "michael.chen@example.com", Status: entity.StudentActive, LastVisit: now.AddDate(0, 0, -2)})
	s.AddStudent(entity.Student{ID: 2, FirstName: "Sarah", LastName: "Kim", Email: "sarah.kim@example.com", Status: entity.StudentActive, LastVisit: now.AddDate(0, 0, -45)})
	s.AddStudent(entity.Student{ID: 3, FirstName: "Lena", LastName: "Chenoweth", Email: "lena@example.com", Status: entity.StudentInactive, LastVisit: now.AddDate(0, 0, -90)})
	s.AddLead(entity.Lead{ID: 11, FirstName: "Priya", LastName: "Patel", Email: "priya@example.com", Status: entity.LeadNew})
	s.AddLead(entity.Lead{ID: 12, FirstName: "Jordan", LastName: "Lee", Email: "jordan@example.com", Status: entity.LeadConverted})
	s.RecordRevenue("2026-08", 1000)
	s.RecordRevenue("2026-08", 250.50)
	return s
}

func TestStore_StudentCountCountsOnlyActive(t *testing.T) {
	s := testStore(time.Now())
	assert.Equal(t, 2, s.StudentCount())
}

func TestStore_SearchStudentsMatchesNameAndEmail(t *testing.T) {
	s := testStore(time.Now())

	byName := s.SearchStudents("chen")
	assert.Len(t, byName, 2) // Chen and Chenoweth
	assert.Equal(t, int64(1), byName[0].ID)

	byEmail := s.SearchStudents("sarah.kim@")
	assert.Len(t, byEmail, 1)
	assert.Equal(t, int64(2), byEmail[0].ID)

	assert.Empty(t, s.SearchStudents("nobody"))
}

func TestStore_FindStudentPrefersExactFullName(t *testing.T) {
	s := testStore(time.Now())

	st, ok := s.FindStudent("Michael Chen")
	assert.True(t, ok)
	assert.Equal(t, int64(1), st.ID)

	_, ok = s.FindStudent("nobody")
	assert.False(t, ok)
}

func TestStore_AtRiskStudents(t *testing.T) {
	now := time.Now()
	s := testStore(now)

	atRisk := s.AtRiskStudents(30, now)
	// inactive student is excluded even though her last visit is older
	assert.Len(t, atRisk, 1)
	assert.Equal(t, int64(2), atRisk[0].ID)

	assert.Empty(t, s.AtRiskStudents(60, now))
}

func TestStore_LeadsExcludesClosedByDefault(t *testing.T) {
	s := testStore(time.Now())

	open := s.Leads("")
	assert.Len(t, open, 1)
	assert.Equal(t, int64(11), open[0].ID)

	converted := s.Leads(entity.LeadConverted)
	assert.Len(t, converted, 1)
	assert.Equal(t, int64(12), converted[0].ID)
}

func TestStore_RevenueAccumulatesAndDefaultsToCurrentMonth(t *testing.T) {
	now := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	s := testStore(now)

	total, period := s.Revenue("2026-08", now)
	assert.Equal(t, 1250.50, total)
	assert.Equal(t, "2026-08", period)

	total, period = s.Revenue("", now)
	assert.Equal(t, 1250.50, total)
	assert.Equal(t, "2026-08", period)

	total, _ = s.Revenue("2026-07", now)
	assert.Zero(t, total)
}
