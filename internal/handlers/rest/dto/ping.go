package dto

import "time"

type Ping struct {
	Message string    `json:"message"`
	Time    time.Time `json:"time"`
}
