package entity

import "time"

// AnswerCount is the number of options of every exam question.
const AnswerCount = 5

// NoAnswer marks a correct-answer index that has not been chosen.
const NoAnswer = -1

// Information is a short context passage the generator can be asked about.
type Information struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"createdAt"`
}

// Question is a stored multiple-choice question together with the reviewer's
// preferred overrides.
type Question struct {
	ID                     string    `json:"id"`
	Context                string    `json:"context"`
	Information            string    `json:"information"`
	Question               string    `json:"question"`
	Answers                []string  `json:"answers"`
	CorrectAnswer          int       `json:"correctAnswer"`
	PreferredQuestion      string    `json:"preferredQuestion"`
	PreferredAnswers       []string  `json:"preferredAnswers"`
	PreferredCorrectAnswer int       `json:"preferredCorrectAnswer"`
	Score                  int       `json:"score"`
	IsWrong                bool      `json:"isWrong"`
	Checked                bool      `json:"checked"`
	Category               string    `json:"category"`
	CreatedAt              time.Time `json:"createdAt"`
}

// EffectiveQuestion returns the preferred text when the reviewer set one.
func (q *Question) EffectiveQuestion() string {
	if q.PreferredQuestion != "" {
		return q.PreferredQuestion
	}
	return q.Question
}

// EffectiveAnswers returns the preferred options when the reviewer set them.
func (q *Question) EffectiveAnswers() []string {
	if len(q.PreferredAnswers) > 0 {
		return q.PreferredAnswers
	}
	return q.Answers
}

// EffectiveCorrectAnswer returns the preferred index unless it is unset.
func (q *Question) EffectiveCorrectAnswer() int {
	if q.PreferredCorrectAnswer != NoAnswer {
		return q.PreferredCorrectAnswer
	}
	return q.CorrectAnswer
}

// QuestionPatch carries the reviewer-editable fields. Nil fields are left untouched.
type QuestionPatch struct {
	PreferredQuestion      *string   `json:"preferredQuestion,omitempty"`
	PreferredAnswers       *[]string `json:"preferredAnswers,omitempty"`
	PreferredCorrectAnswer *int      `json:"preferredCorrectAnswer,omitempty"`
	Score                  *int      `json:"score,omitempty"`
	IsWrong                *bool     `json:"isWrong,omitempty"`
	Checked                *bool     `json:"checked,omitempty"`
}

// IsEmpty reports whether the patch changes nothing.
func (p *QuestionPatch) IsEmpty() bool {
	return p.PreferredQuestion == nil &&
		p.PreferredAnswers == nil &&
		p.PreferredCorrectAnswer == nil &&
		p.Score == nil &&
		p.IsWrong == nil &&
		p.Checked == nil
}

// KnowledgePassage is a knowledge base entry stored in the vector index.
type KnowledgePassage struct {
	ID     string
	Text   string
	Vector []float32
}
