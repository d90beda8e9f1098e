package auth

import "time"

// SecurityQuestion selects one entry from the fixed, closed question set.
type SecurityQuestion string

const (
	QuestionPet    SecurityQuestion = "pet"
	QuestionCity   SecurityQuestion = "city"
	QuestionSchool SecurityQuestion = "school"
	QuestionColor  SecurityQuestion = "color"
)

var questionPrompts = map[SecurityQuestion]string{
	QuestionPet:    "What was your first pet's name?",
	QuestionCity:   "In which city were you born?",
	QuestionSchool: "What was the name of your first school?",
	QuestionColor:  "What is your favorite color?",
}

// Valid reports whether q belongs to the closed set.
func (q SecurityQuestion) Valid() bool {
	_, ok := questionPrompts[q]
	return ok
}

// Prompt returns the question text shown to the user.
func (q SecurityQuestion) Prompt() string {
	return questionPrompts[q]
}

// User is an identity record. Email is stored lowercased and unique; the
// security answer is stored pre-normalized so comparison is case- and
// whitespace-insensitive. Question and answer are immutable after creation.
type User struct {
	ID               string           `bson:"_id"`
	Name             string           `bson:"name"`
	Email            string           `bson:"email"`
	PasswordHash     string           `bson:"password"`
	SecurityQuestion SecurityQuestion `bson:"security_question"`
	SecurityAnswer   string           `bson:"security_answer"`
	CreatedAt        time.Time        `bson:"created_at"`
}
