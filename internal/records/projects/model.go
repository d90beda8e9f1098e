package projects

import "time"

type Project struct {
	ID          string    `bson:"_id" json:"_id"`
	Name        string    `bson:"pname" json:"pname"`
	Client      string    `bson:"cname" json:"cname"`
	Manager     string    `bson:"pmanager" json:"pmanager"`
	StartDate   time.Time `bson:"sdate" json:"sdate"`
	EndDate     time.Time `bson:"edate" json:"edate"`
	Status      string    `bson:"status" json:"status"`
	Description string    `bson:"pdescription" json:"pdescription"`
}
