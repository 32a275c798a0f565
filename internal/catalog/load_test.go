package catalog

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogLoads(t *testing.T) {
	c := Default()
	require.NotNil(t, c)
	assert.Greater(t, c.TotalCount(), 0)

	for _, cat := range c.Categories() {
		assert.NotEmpty(t, cat.Questions, "category %s has no questions", cat.ID)
		for _, q := range cat.Questions {
			assert.True(t, q.Difficulty.Valid(), "%s/%s difficulty", cat.ID, q.ID)
		}
	}
}

func TestDefaultCatalogShape(t *testing.T) {
	c := Default()
	assert.Len(t, c.Categories(), 13)
	assert.Equal(t, 157, c.TotalCount())
	assert.Equal(t, "vue3-core", c.Categories()[0].ID)

	l := c.QuestionByID("algorithm", "al003")
	require.NotNil(t, l.Question)
	assert.Equal(t, "手写 Promise.all 和 Promise.race", l.Question.Title)
	assert.Equal(t, 2, l.Index)
}

func TestDefaultCatalogSearchPromise(t *testing.T) {
	var ids []string
	for _, r := range Default().Search("promise") {
		ids = append(ids, r.Category.ID+"/"+r.Question.ID)
	}
	assert.Equal(t, []string{"javascript/js007", "javascript/js017", "es6/es002", "algorithm/al003", "algorithm/al009"}, ids)
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr string
	}{
		{
			name: "valid",
			doc: `{"version":"v1.0.3","categories":[{"id":"css","name":"CSS","icon":"","description":"",
				"questions":[{"id":"css001","title":"盒模型","difficulty":1,"tags":["盒模型"],"answer":"..."}]}]}`,
		},
		{
			name:    "not json",
			doc:     `{"version":`,
			wantErr: "invalid JSON",
		},
		{
			name:    "bad difficulty",
			doc:     `{"version":"v1.0.0","categories":[{"id":"css","name":"CSS","questions":[{"id":"q","title":"t","difficulty":4,"tags":[],"answer":""}]}]}`,
			wantErr: "schema validation failed",
		},
		{
			name:    "missing questions",
			doc:     `{"version":"v1.0.0","categories":[{"id":"css","name":"CSS"}]}`,
			wantErr: "schema validation failed",
		},
		{
			name:    "not semver",
			doc:     `{"version":"1.0","categories":[]}`,
			wantErr: "not a semantic version",
		},
		{
			name:    "future major",
			doc:     `{"version":"v2.0.0","categories":[]}`,
			wantErr: "unsupported catalog version",
		},
		{
			name:    "duplicate category",
			doc:     `{"version":"v1.0.0","categories":[{"id":"a","name":"A","questions":[]},{"id":"a","name":"B","questions":[]}]}`,
			wantErr: `duplicate category id "a"`,
		},
		{
			name: "duplicate question",
			doc: `{"version":"v1.0.0","categories":[{"id":"a","name":"A","questions":[
				{"id":"q","title":"t","difficulty":1,"tags":[],"answer":""},
				{"id":"q","title":"u","difficulty":2,"tags":[],"answer":""}]}]}`,
			wantErr: `duplicate question id "q"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Load(strings.NewReader(tt.doc))
			if tt.wantErr == "" {
				require.NoError(t, err)
				assert.Equal(t, 1, c.TotalCount())
				return
			}
			require.Error(t, err)
			var invErr *ErrInvalidCatalog
			assert.True(t, errors.As(err, &invErr))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
