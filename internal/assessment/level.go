package assessment

// Level is a 1-4 proficiency band.
type Level struct {
	Level       int    `json:"level"`
	Description string `json:"description"`
}

// Classify maps a 0-20 score to a level. Band upper bounds are inclusive:
// 7, 12 and 16.
func Classify(scoreOutOf20 int) Level {
	switch {
	case scoreOutOf20 <= 7:
		return Level{Level: 1, Description: "Basic knowledge"}
	case scoreOutOf20 <= 12:
		return Level{Level: 2, Description: "Intermediate knowledge"}
	case scoreOutOf20 <= 16:
		return Level{Level: 3, Description: "Advanced knowledge"}
	default:
		return Level{Level: 4, Description: "Expert knowledge"}
	}
}
