package question

type UpdateQuestionDTO struct {
	Content     *string `json:"content"`
	Explanation *string `json:"explanation"`
	Subject     *string `json:"subject"`
	Points      *int    `json:"points"`
	Active      *bool   `json:"active"`
}
