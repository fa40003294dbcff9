package dto

// PlacementQuestionView is one placement question as presented to the
// student, without the correct option.
type PlacementQuestionView struct {
	Position int      `json:"position"`
	Prompt   string   `json:"prompt"`
	Options  []string `json:"options"`
}

// SubmitPlacementRequest carries the ordered selected option indexes, one
// per question of the bank.
type SubmitPlacementRequest struct {
	Answers []int `json:"answers" binding:"required,min=1"`
}

// PlacementResult is the outcome of a placement test
type PlacementResult struct {
	Level             string `json:"level" example:"intermediate"`
	BeginnerCorrect   int    `json:"beginnerCorrect"`
	IntermediateCorrect int  `json:"intermediateCorrect"`
	AdvancedCorrect   int    `json:"advancedCorrect"`
	Saved             bool   `json:"saved"`
}
