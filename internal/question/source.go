package question

import "context"

// Source is the external question-generation collaborator (AI pipeline,
// OCR/video ingestion). This service only consumes its output; the pipeline
// itself lives outside this backend.
type Source interface {
	GenerateQuestions(ctx context.Context, subject string, difficulty Difficulty, count int) ([]*QuizQuestion, error)
}
