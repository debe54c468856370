package question

import (
	"regexp"
	"strings"

	"github.com/umstad/quizgen/internal/entity"
)

var (
	optionPattern    = regexp.MustCompile(`^\s*([A-Ea-e])\s*[\).]\s*(.*)$`)
	answerKeyPattern = regexp.MustCompile(`(?i)^\s*cevap\s*[:\-]?\s*([A-E])\b`)
	bareLetter       = regexp.MustCompile(`^\s*([A-Ea-e])\s*[\).]?\s*$`)
)

type parsedQuestion struct {
	Stem    string
	Answers []string
	Correct int
}

// parseGenerated splits the generated text into stem and the "A) ... E)"
// options and resolves the correct option index. Missing options are left
// empty for the reviewer; an unresolvable answer yields entity.NoAnswer.
func parseGenerated(q entity.GeneratedQuestion) parsedQuestion {
	var (
		stem    []string
		answers []string
		keyIdx  = entity.NoAnswer
	)

	for _, line := range strings.Split(q.Question, "\n") {
		if m := answerKeyPattern.FindStringSubmatch(line); m != nil {
			keyIdx = letterIndex(m[1])
			continue
		}

		if m := optionPattern.FindStringSubmatch(line); m != nil && len(answers) < entity.AnswerCount &&
			letterIndex(m[1]) == len(answers) {
			answers = append(answers, strings.TrimSpace(m[2]))
			continue
		}

		if len(answers) > 0 {
			if extra := strings.TrimSpace(line); extra != "" {
				answers[len(answers)-1] = strings.TrimSpace(answers[len(answers)-1] + " " + extra)
			}
			continue
		}

		stem = append(stem, line)
	}

	for len(answers) < entity.AnswerCount {
		answers = append(answers, "")
	}

	correct := resolveCorrect(q.CorrectAnswer, answers)
	if correct == entity.NoAnswer {
		correct = keyIdx
	}

	return parsedQuestion{
		Stem:    strings.TrimSpace(strings.Join(stem, "\n")),
		Answers: answers,
		Correct: correct,
	}
}

// resolveCorrect accepts "Cevap D", "D", "D)" or the text of an option.
func resolveCorrect(raw string, answers []string) int {
	raw = strings.TrimSpace(raw)

	if m := answerKeyPattern.FindStringSubmatch(raw); m != nil {
		return letterIndex(m[1])
	}
	if m := bareLetter.FindStringSubmatch(raw); m != nil {
		return letterIndex(m[1])
	}

	text := raw
	if m := optionPattern.FindStringSubmatch(raw); m != nil {
		text = m[2]
	}
	for i, a := range answers {
		if a != "" && strings.EqualFold(strings.TrimSpace(text), a) {
			return i
		}
	}

	return entity.NoAnswer
}

func letterIndex(letter string) int {
	if letter == "" {
		return entity.NoAnswer
	}
	c := strings.ToUpper(letter)[0]
	if c < 'A' || c > 'E' {
		return entity.NoAnswer
	}
	return int(c - 'A')
}

// toRecord builds a new unchecked question with the preferred fields
// initialised to the generated ones.
func toRecord(outcome *entity.GenerationOutcome, category string) entity.Question {
	parsed := parseGenerated(outcome.Question)

	preferred := make([]string, len(parsed.Answers))
	copy(preferred, parsed.Answers)

	return entity.Question{
		Context:                outcome.AdditionalContext,
		Information:            outcome.Information,
		Question:               parsed.Stem,
		Answers:                parsed.Answers,
		CorrectAnswer:          parsed.Correct,
		PreferredQuestion:      parsed.Stem,
		PreferredAnswers:       preferred,
		PreferredCorrectAnswer: parsed.Correct,
		Category:               category,
		Checked:                false,
	}
}
