package crm

import (
	"sort"
	"strings"
	"sync"
	"time"

	"kai-assistant/internal/domain/entity"
)

// Store is an in-memory stand-in for the CRM data layer. The assistant's tool
// contract only assumes something that can answer these queries; production
// wires the same tools to the real database.
type Store struct {
	mu       sync.RWMutex
	students map[int64]entity.Student
	leads    map[int64]entity.Lead
	revenue  map[string]float64 // period "YYYY-MM" -> collected amount
}

func NewStore() *Store {
	return &Store{
		students: make(map[int64]entity.Student),
		leads:    make(map[int64]entity.Lead),
		revenue:  make(map[string]float64),
	}
}

func (s *Store) AddStudent(st entity.Student) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.students[st.ID] = st
}

func (s *Store) AddLead(l entity.Lead) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.leads[l.ID] = l
}

func (s *Store) RecordRevenue(period string, amount float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.revenue[period] += amount
}

func (s *Store) StudentCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count := 0
	for _, st := range s.students {
		if st.Status == entity.StudentActive {
			count++
		}
	}
	return count
}

func (s *Store) GetStudent(id int64) (entity.Student, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.students[id]
	return st, ok
}

// SearchStudents matches the query against first name, last name, and email,
// case-insensitively. Results come back in id order.
func (s *Store) SearchStudents(query string) []entity.Student {
	s.mu.RLock()
	defer s.mu.RUnlock()
	q := strings.ToLower(strings.TrimSpace(query))
	var result []entity.Student
	for _, st := range s.students {
		if q == "" || matchesStudent(st, q) {
			result = append(result, st)
		}
	}
	sortStudents(result)
	return result
}

// FindStudent returns the single best match for a query, preferring exact
// full-name matches over partial ones.
func (s *Store) FindStudent(query string) (entity.Student, bool) {
	matches := s.SearchStudents(query)
	if len(matches) == 0 {
		return entity.Student{}, false
	}
	q := strings.ToLower(strings.TrimSpace(query))
	for _, st := range matches {
		full := strings.ToLower(st.FirstName + " " + st.LastName)
		if full == q {
			return st, true
		}
	}
	return matches[0], true
}

// AtRiskStudents returns active students whose last visit is older than the
// given number of days.
func (s *Store) AtRiskStudents(days int, now time.Time) []entity.Student {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cutoff := now.AddDate(0, 0, -days)
	var result []entity.Student
	for _, st := range s.students {
		if st.Status == entity.StudentActive && st.LastVisit.Before(cutoff) {
			result = append(result, st)
		}
	}
	sortStudents(result)
	return result
}

// Leads returns leads, optionally filtered by status. Empty status means all
// leads that have not converted or been lost.
func (s *Store) Leads(status entity.LeadStatus) []entity.Lead {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var result []entity.Lead
	for _, l := range s.leads {
		if status != "" {
			if l.Status == status {
				result = append(result, l)
			}
		} else if l.Status != entity.LeadConverted && l.Status != entity.LeadLost {
			result = append(result, l)
		}
	}
	sortLeads(result)
	return result
}

func (s *Store) SearchLeads(query string) []entity.Lead {
	s.mu.RLock()
	defer s.mu.RUnlock()
	q := strings.ToLower(strings.TrimSpace(query))
	var result []entity.Lead
	for _, l := range s.leads {
		if q == "" || matchesLead(l, q) {
			result = append(result, l)
		}
	}
	sortLeads(result)
	return result
}

// Revenue returns the collected amount for a "YYYY-MM" period. An empty
// period means the current month.
func (s *Store) Revenue(period string, now time.Time) (float64, string) {
	if period == "" {
		period = now.Format("2006-01")
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.revenue[period], period
}

func matchesStudent(st entity.Student, q string) bool {
	return strings.Contains(strings.ToLower(st.FirstName), q) ||
		strings.Contains(strings.ToLower(st.LastName), q) ||
		strings.Contains(strings.ToLower(st.FirstName+" "+st.LastName), q) ||
		strings.Contains(strings.ToLower(st.Email), q)
}

func matchesLead(l entity.Lead, q string) bool {
	return strings.Contains(strings.ToLower(l.FirstName), q) ||
		strings.Contains(strings.ToLower(l.LastName), q) ||
		strings.Contains(strings.ToLower(l.FirstName+" "+l.LastName), q) ||
		strings.Contains(strings.ToLower(l.Email), q)
}

func sortStudents(students []entity.Student) {
	sort.Slice(students, func(i, j int) bool { return students[i].ID < students[j].ID })
}

func sortLeads(leads []entity.Lead) {
	sort.Slice(leads, func(i, j int) bool { return leads[i].ID < leads[j].ID })
}
