package departments

// Department is an organizational unit record. Numeric-looking fields
// (number, nemployees, budget) are strings on the wire and stay strings here.
type Department struct {
	ID          string `bson:"_id" json:"_id"`
	Name        string `bson:"dname" json:"dname"`
	Email       string `bson:"email" json:"email"`
	Number      string `bson:"number" json:"number"`
	Employees   string `bson:"nemployees" json:"nemployees"`
	Responsible string `bson:"resp" json:"resp"`
	Budget      string `bson:"budget" json:"budget"`
	Status      string `bson:"status" json:"status"`
	Description string `bson:"description" json:"description"`
}
