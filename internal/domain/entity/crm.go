package entity

import "time"

type StudentStatus string

const (
	StudentActive   StudentStatus = "active"
	StudentFrozen   StudentStatus = "frozen"
	StudentInactive StudentStatus = "inactive"
)

type Student struct {
	ID        int64
	FirstName string
	LastName  string
	Email     string
	Program   string
	Belt      string
	Status    StudentStatus
	LastVisit time.Time
}

type LeadStatus string

const (
	LeadNew       LeadStatus = "new"
	LeadContacted LeadStatus = "contacted"
	LeadTrial     LeadStatus = "trial"
	LeadConverted LeadStatus = "converted"
	LeadLost      LeadStatus = "lost"
)

type Lead struct {
	ID        int64
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Source    string
	Status    LeadStatus
	CreatedAt time.Time
}
