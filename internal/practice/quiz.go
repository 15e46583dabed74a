package practice

import (
	"math/rand/v2"
	"strings"

	"github.com/vytor/lexiflash/internal/models"
)

// DefaultQuizOptions is the number of answers offered when none is asked for.
const DefaultQuizOptions = 4

// BuildQuiz asks for the translation of target. Distractors are translations
// of other words in pool, distinct from each other and from the answer,
// picked at random. Fewer than options answers are offered when the pool runs
// short.
func BuildQuiz(target models.Word, pool []models.Word, options int, rng *rand.Rand) models.QuizQuestion {
	if options < 1 {
		options = DefaultQuizOptions
	}

	seen := map[string]struct{}{normalize(target.Translation): {}}
	var candidates []string
	for _, w := range Shuffle(pool, rng) {
		key := normalize(w.Translation)
		if w.ID == target.ID || key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		candidates = append(candidates, w.Translation)
		if len(candidates) == options-1 {
			break
		}
	}

	answers := Shuffle(append([]string{target.Translation}, candidates...), rng)
	correct := 0
	for i, a := range answers {
		if a == target.Translation {
			correct = i
			break
		}
	}
	return models.QuizQuestion{
		WordID:       target.ID,
		Prompt:       target.Text,
		Options:      answers,
		CorrectIndex: correct,
	}
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
