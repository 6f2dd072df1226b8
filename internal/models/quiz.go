package models

// QuizAnswers holds the questionnaire answers collected before a plan is
// generated. They live only for the duration of one generation request.
type QuizAnswers struct {
	Experience    string `json:"experience"`
	TimeAvailable string `json:"timeAvailable"`
	Goal          string `json:"goal"`
}
