package events

import "time"

// Event is a scheduled company event. JSON names match the public API;
// "happend" is the legacy wire spelling and is kept for compatibility.
type Event struct {
	ID        string    `bson:"_id" json:"_id"`
	Name      string    `bson:"name" json:"name"`
	Address   string    `bson:"address" json:"address"`
	Date      time.Time `bson:"date" json:"date"`
	StartTime string    `bson:"stime" json:"stime"`
	EndTime   string    `bson:"etime" json:"etime"`
	Type      string    `bson:"type" json:"type"`
	Happened  string    `bson:"happend" json:"happend"`
}
