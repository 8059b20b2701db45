package domain

import (
	"time"
)

type (
	Board    = string
	ThreadId = int64
	ReplyId  = int64
)

// Thread is the stored record, including the fields that public
// projections must never expose.
type Thread struct {
	Id             ThreadId  `json:"id"`
	Board          Board     `json:"board"`
	Text           string    `json:"text"`
	DeletePassword string    `json:"delete_password"`
	Reported       bool      `json:"reported"`
	CreatedOn      time.Time `json:"created_on"`
	BumpedOn       time.Time `json:"bumped_on"`
	Replies        []Reply   `json:"replies"` // newest first
}

type Reply struct {
	Id             ReplyId   `json:"id"`
	ThreadId       ThreadId  `json:"thread_id"`
	Text           string    `json:"text"`
	DeletePassword string    `json:"delete_password"`
	Reported       bool      `json:"reported"`
	CreatedOn      time.Time `json:"created_on"`
}
