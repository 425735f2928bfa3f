package models

// Rating is one user's score for an entry, appended to the entry's ratings
// list and never edited afterwards.
type Rating struct {
	UserID string `bson:"user_id" json:"user_id"`
	Score  int    `bson:"score" json:"score"`
}

// RatingInput binds the rate request body. Range validation happens in the
// service so an out-of-range score maps to a 400, not a binding error message.
type RatingInput struct {
	Score int `json:"score"`
}
