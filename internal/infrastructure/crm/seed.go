package crm

import (
	"time"

	"kai-assistant/internal/domain/entity"
)

// NewDemoStore returns a store with a small seeded school, for the demo CLI
// and local development.
func NewDemoStore() *Store {
	s := NewStore()
	now := time.Now()

	s.AddStudent(entity.Student{ID: 1, FirstName: "Michael", LastName: "Chen", Email: "michael.chen@example.com", Program: "Adult BJJ", Belt: "Blue", Status: entity.StudentActive, LastVisit: now.AddDate(0, 0, -2)})
	s.AddStudent(entity.Student{ID: 2, FirstName: "Sarah", LastName: "Kim", Email: "sarah.kim@example.com", Program: "Muay Thai", Belt: "", Status: entity.StudentActive, LastVisit: now.AddDate(0, 0, -1)})
	s.AddStudent(entity.Student{ID: 3, FirstName: "Diego", LastName: "Alvarez", Email: "diego.alvarez@example.com", Program: "Adult BJJ", Belt: "Purple", Status: entity.StudentActive, LastVisit: now.AddDate(0, 0, -45)})
	s.AddStudent(entity.Student{ID: 4, FirstName: "Emma", LastName: "Walsh", Email: "emma.walsh@example.com", Program: "Little Tigers", Belt: "Yellow", Status: entity.StudentActive, LastVisit: now.AddDate(0, 0, -3)})
	s.AddStudent(entity.Student{ID: 5, FirstName: "Tomas", LastName: "Novak", Email: "tomas.novak@example.com", Program: "Adult BJJ", Belt: "White", Status: entity.StudentFrozen, LastVisit: now.AddDate(0, 0, -90)})

	s.AddLead(entity.Lead{ID: 101, FirstName: "Priya", LastName: "Patel", Email: "priya.patel@example.com", Phone: "555-0101", Source: "website", Status: entity.LeadNew, CreatedAt: now.AddDate(0, 0, -1)})
	s.AddLead(entity.Lead{ID: 102, FirstName: "Jordan", LastName: "Lee", Email: "jordan.lee@example.com", Phone: "555-0102", Source: "referral", Status: entity.LeadTrial, CreatedAt: now.AddDate(0, 0, -7)})
	s.AddLead(entity.Lead{ID: 103, FirstName: "Anna", LastName: "Berg", Email: "anna.berg@example.com", Phone: "555-0103", Source: "walk-in", Status: entity.LeadLost, CreatedAt: now.AddDate(0, 0, -30)})

	s.RecordRevenue(now.Format("2006-01"), 12450.00)
	s.RecordRevenue(now.AddDate(0, -1, 0).Format("2006-01"), 11890.00)

	return s
}
