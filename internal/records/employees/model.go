package employees

import "time"

// Employee is a staff record. Salary stays a string on the wire.
type Employee struct {
	ID          string    `bson:"_id" json:"_id"`
	Name        string    `bson:"ename" json:"ename"`
	DateOfBirth time.Time `bson:"dob" json:"dob"`
	Gender      string    `bson:"gender" json:"gender"`
	Email       string    `bson:"email" json:"email"`
	Phone       string    `bson:"pnumber" json:"pnumber"`
	Address     string    `bson:"address" json:"address"`
	Designation string    `bson:"designation" json:"designation"`
	Salary      string    `bson:"salary" json:"salary"`
	JoiningDate time.Time `bson:"joining_date" json:"joining_date"`
	Aadhar      string    `bson:"aadhar" json:"aadhar"`
}
