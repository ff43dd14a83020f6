package models

import "time"

// UserAccount is the persisted credential record. The username doubles as
// the document key, so uniqueness comes from the collection's _id index
// rather than an application-level existence check.
type UserAccount struct {
	Username     string        `bson:"_id" json:"username"`
	PasswordHash string        `bson:"password" json:"-"`
	Portfolio    ProfileRecord `bson:"portfolio_data" json:"portfolio_data"`
	CreatedAt    time.Time     `bson:"created_at" json:"created_at"`
}
