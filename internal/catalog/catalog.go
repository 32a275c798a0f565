package catalog

import "strings"

// Catalog is a read-only view over an ordered list of categories. All
// lookups are synchronous and signal absence with nil or -1, never errors.
// Returned pointers alias the catalog and must not be modified.
type Catalog struct {
	categories []Category
	byID       map[string]int
}

// New builds a Catalog over categories. The slice is owned by the catalog
// afterwards.
func New(categories []Category) *Catalog {
	c := &Catalog{
		categories: categories,
		byID:       make(map[string]int, len(categories)),
	}
	for i := range c.categories {
		if _, dup := c.byID[c.categories[i].ID]; !dup {
			c.byID[c.categories[i].ID] = i
		}
	}
	return c
}

// Categories returns the categories in catalog order.
func (c *Catalog) Categories() []Category {
	return c.categories
}

// CategoryByID returns the category with id, or nil.
func (c *Catalog) CategoryByID(id string) *Category {
	i, ok := c.byID[id]
	if !ok {
		return nil
	}
	return &c.categories[i]
}

// QuestionByID resolves a question within a category. The index is the
// question's position in the category's declared order. An unknown category
// yields a zero Lookup with index -1; a known category with an unknown
// question keeps the category and reports index -1.
func (c *Catalog) QuestionByID(categoryID, questionID string) Lookup {
	cat := c.CategoryByID(categoryID)
	if cat == nil {
		return Lookup{Index: -1}
	}
	for i := range cat.Questions {
		if cat.Questions[i].ID == questionID {
			return Lookup{Question: &cat.Questions[i], Category: cat, Index: i}
		}
	}
	return Lookup{Category: cat, Index: -1}
}

// Neighbors returns the IDs of the questions before and after questionID in
// its category. Either is empty at the ends of the list or when the question
// is not found.
func (c *Catalog) Neighbors(categoryID, questionID string) (prev, next string) {
	l := c.QuestionByID(categoryID, questionID)
	if l.Index < 0 {
		return "", ""
	}
	qs := l.Category.Questions
	if l.Index > 0 {
		prev = qs[l.Index-1].ID
	}
	if l.Index < len(qs)-1 {
		next = qs[l.Index+1].ID
	}
	return prev, next
}

// QuestionIDs returns the question IDs of a category in order, or nil for
// an unknown category.
func (c *Catalog) QuestionIDs(categoryID string) []string {
	cat := c.CategoryByID(categoryID)
	if cat == nil {
		return nil
	}
	ids := make([]string, len(cat.Questions))
	for i := range cat.Questions {
		ids[i] = cat.Questions[i].ID
	}
	return ids
}

// Search returns questions whose title or any tag contains keyword,
// ignoring case, in catalog order. A blank keyword matches nothing.
func (c *Catalog) Search(keyword string) []Match {
	if strings.TrimSpace(keyword) == "" {
		return nil
	}
	kw := strings.ToLower(keyword)

	var results []Match
	for i := range c.categories {
		cat := &c.categories[i]
		for j := range cat.Questions {
			q := &cat.Questions[j]
			if matches(q, kw) {
				results = append(results, Match{Question: q, Category: cat})
			}
		}
	}
	return results
}

func matches(q *Question, kw string) bool {
	if strings.Contains(strings.ToLower(q.Title), kw) {
		return true
	}
	for _, t := range q.Tags {
		if strings.Contains(strings.ToLower(t), kw) {
			return true
		}
	}
	return false
}

// AllQuestions returns every question flattened in catalog order.
func (c *Catalog) AllQuestions() []Question {
	var all []Question
	for i := range c.categories {
		all = append(all, c.categories[i].Questions...)
	}
	return all
}

// AllMatches is AllQuestions with each question paired to its category.
func (c *Catalog) AllMatches() []Match {
	var all []Match
	for i := range c.categories {
		cat := &c.categories[i]
		for j := range cat.Questions {
			all = append(all, Match{Question: &cat.Questions[j], Category: cat})
		}
	}
	return all
}

// TotalCount returns the number of questions across all categories.
func (c *Catalog) TotalCount() int {
	n := 0
	for i := range c.categories {
		n += len(c.categories[i].Questions)
	}
	return n
}
