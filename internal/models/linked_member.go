package models

import "time"

// LinkedMember is the persisted form of a sub-account registered under a parent user.
type LinkedMember struct {
	MemberID     string     `db:"member_id" json:"memberID"`
	ParentID     string     `db:"parent_id" json:"parentID"`
	Name         string     `db:"name" json:"name"`
	Relationship string     `db:"relationship" json:"relationship"`
	Status       string     `db:"status" json:"status"`
	ReviewedBy   *string    `db:"reviewed_by" json:"reviewedBy,omitempty"`
	ReviewedAt   *time.Time `db:"reviewed_at" json:"reviewedAt,omitempty"`
	CreatedAt    time.Time  `db:"created_at" json:"createdAt"`
}
