package catalog

// Difficulty is the ordinal difficulty level of a question.
type Difficulty int

const (
	DifficultyBeginner     Difficulty = 1
	DifficultyIntermediate Difficulty = 2
	DifficultyAdvanced     Difficulty = 3
)

// Valid reports whether d is one of the three defined levels.
func (d Difficulty) Valid() bool {
	return d >= DifficultyBeginner && d <= DifficultyAdvanced
}

// Label returns the display name for the difficulty.
func (d Difficulty) Label() string {
	switch d {
	case DifficultyBeginner:
		return "Beginner"
	case DifficultyIntermediate:
		return "Intermediate"
	case DifficultyAdvanced:
		return "Advanced"
	default:
		return "Unknown"
	}
}

// Question is a single interview question. Its identity is the pair
// (category ID, question ID).
type Question struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Difficulty Difficulty `json:"difficulty"`
	Tags       []string   `json:"tags"`
	Answer     string     `json:"answer"`
	Code       string     `json:"code,omitempty"` // empty when there is no sample
}

// HasCode reports whether the question carries a code sample.
func (q *Question) HasCode() bool {
	return q.Code != ""
}

// Category is a named, ordered group of questions.
type Category struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Icon        string     `json:"icon"`
	Description string     `json:"description"`
	Questions   []Question `json:"questions"`
}

// Lookup is the result of resolving a question by ID. Question and Category
// are nil and Index is -1 when not found.
type Lookup struct {
	Question *Question
	Category *Category
	Index    int
}

// Found reports whether the question was resolved.
func (l Lookup) Found() bool {
	return l.Question != nil
}

// Match pairs a question with its owning category.
type Match struct {
	Question *Question
	Category *Category
}
