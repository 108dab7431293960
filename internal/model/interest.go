package model

import "context"

// InterestStore defines read operations for interests.
type InterestStore interface {
	List(ctx context.Context) ([]Interest, error)
	ListByVolunteer(ctx context.Context, volunteerID int64) ([]Interest, error)
	ListByEvent(ctx context.Context, eventID int64) ([]Interest, error)
}

// Interest is a topic volunteers and events can be tagged with.
type Interest struct {
	ID   int64  `json:"interest_id"`
	Name string `json:"interest_name"`
}
