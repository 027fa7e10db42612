package bank

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_JSONFile(t *testing.T) {
	qs, err := Load(context.Background(), filepath.Join("testdata", "sample.json"))
	require.NoError(t, err)
	require.Len(t, qs, 2)

	assert.Equal(t, ID("1"), qs[0].ID)
	assert.Equal(t, "Storage", qs[0].Domain)
	assert.Equal(t, 1, qs[0].Required())
	assert.Equal(t, []string{"B"}, qs[0].Answer)

	assert.Equal(t, ID("net-2"), qs[1].ID)
	assert.Equal(t, 2, qs[1].Required())
	assert.Equal(t, []string{"A", "B", "C", "D"}, qs[1].Letters())
}

func TestLoad_YAMLMatchesJSON(t *testing.T) {
	fromJSON, err := Load(context.Background(), filepath.Join("testdata", "sample.json"))
	require.NoError(t, err)
	fromYAML, err := Load(context.Background(), filepath.Join("testdata", "sample.yaml"))
	require.NoError(t, err)

	assert.Equal(t, fromJSON, fromYAML)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)

	var le *LoadError
	require.True(t, errors.As(err, &le))
	assert.Contains(t, le.Source, "nope.json")
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoad_URL(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "sample.json"))
	require.NoError(t, err)

	var cacheControl string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cacheControl = r.Header.Get("Cache-Control")
		w.Header().Set("Content-Type", "application/json")
		w.Write(data)
	}))
	defer srv.Close()

	l := &Loader{Client: srv.Client()}
	qs, err := l.Load(context.Background(), srv.URL+"/questions.json")
	require.NoError(t, err)
	assert.Len(t, qs, 2)
	assert.Equal(t, "no-store", cacheControl)
}

func TestLoad_URLBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	l := &Loader{Client: srv.Client()}
	_, err := l.Load(context.Background(), srv.URL+"/questions.json")
	require.Error(t, err)

	var le *LoadError
	require.True(t, errors.As(err, &le))
	assert.Contains(t, err.Error(), "unexpected status 404")
}

func TestLoad_URLCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("[]"))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	l := &Loader{Client: srv.Client()}
	_, err := l.Load(ctx, srv.URL+"/questions.json")
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		format  Format
		wantLen int
		wantErr string
	}{
		{
			name:    "minimal json",
			data:    `[{"id":1,"question":"q","options":{"A":"a","B":"b"},"answer":["A"]}]`,
			format:  FormatJSON,
			wantLen: 1,
		},
		{
			name:    "empty array",
			data:    `[]`,
			format:  FormatJSON,
			wantErr: "empty",
		},
		{
			name:    "not an array",
			data:    `{"id":1}`,
			format:  FormatJSON,
			wantErr: "schema validation failed",
		},
		{
			name:    "missing answer",
			data:    `[{"id":1,"question":"q","options":{"A":"a"}}]`,
			format:  FormatJSON,
			wantErr: "schema validation failed",
		},
		{
			name:    "choose is a string",
			data:    `[{"id":1,"question":"q","options":{"A":"a"},"answer":["A"],"choose":"2"}]`,
			format:  FormatJSON,
			wantErr: "schema validation failed",
		},
		{
			name:    "option text not a string",
			data:    `[{"id":1,"question":"q","options":{"A":3},"answer":["A"]}]`,
			format:  FormatJSON,
			wantErr: "schema validation failed",
		},
		{
			name:    "bad json",
			data:    `[{"id":`,
			format:  FormatJSON,
			wantErr: "parse json",
		},
		{
			name:    "minimal yaml",
			data:    "- id: 7\n  question: q\n  options: {A: a}\n  answer: [A]\n",
			format:  FormatYAML,
			wantLen: 1,
		},
		{
			name:    "bad yaml",
			data:    "- id: [\n",
			format:  FormatYAML,
			wantErr: "parse yaml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			qs, err := Parse([]byte(tt.data), tt.format)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Len(t, qs, tt.wantLen)
		})
	}
}

func TestParse_LargeNumericIDsKeepTheirText(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format Format
	}{
		{
			name:   "json",
			data:   `[{"id":9007199254740993,"question":"q","options":{"A":"a"},"answer":["A"]},{"id":9007199254740992,"question":"q","options":{"A":"a"},"answer":["A"]},{"id":100000000000000000000000,"question":"q","options":{"A":"a"},"answer":["A"]}]`,
			format: FormatJSON,
		},
		{
			name: "yaml",
			data: "- {id: 9007199254740993, question: q, options: {A: a}, answer: [A]}\n" +
				"- {id: 9007199254740992, question: q, options: {A: a}, answer: [A]}\n" +
				"- {id: 100000000000000000000000, question: q, options: {A: a}, answer: [A]}\n",
			format: FormatYAML,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			qs, err := Parse([]byte(tt.data), tt.format)
			require.NoError(t, err)
			require.Len(t, qs, 3)

			assert.Equal(t, ID("9007199254740993"), qs[0].ID)
			assert.Equal(t, ID("9007199254740992"), qs[1].ID)
			assert.Equal(t, ID("100000000000000000000000"), qs[2].ID)
			assert.Empty(t, Lint(qs), "distinct ids must not be reported as duplicates")
		})
	}
}

func TestParse_YAMLNumericOptionKeys(t *testing.T) {
	qs, err := Parse([]byte("- id: x1\n  question: q\n  options: {1: one, 2: two}\n  answer: ['2']\n"), FormatYAML)
	require.NoError(t, err)
	require.Len(t, qs, 1)
	assert.Equal(t, map[string]string{"1": "one", "2": "two"}, qs[0].Options)
}

func TestParse_EmptyIsSentinel(t *testing.T) {
	_, err := Parse([]byte(`[]`), FormatJSON)
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestFormatOf(t *testing.T) {
	tests := []struct {
		source string
		want   Format
	}{
		{"questions.json", FormatJSON},
		{"questions.yaml", FormatYAML},
		{"Questions.YML", FormatYAML},
		{"questions", FormatJSON},
		{"https://example.com/bank/questions.yaml", FormatYAML},
		{"https://example.com/questions.yaml?v=2", FormatYAML},
		{"https://example.com/questions.json", FormatJSON},
	}

	for _, tt := range tests {
		if got := FormatOf(tt.source); got != tt.want {
			t.Errorf("FormatOf(%q) = %q, want %q", tt.source, got, tt.want)
		}
	}
}

func TestQuestion_OptionKey(t *testing.T) {
	q := Question{Options: map[string]string{"A": "x", "b": "y"}}

	tests := []struct {
		letter string
		want   string
		ok     bool
	}{
		{"A", "A", true},
		{"a", "A", true},
		{" a ", "A", true},
		{"B", "b", true},
		{"C", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := q.OptionKey(tt.letter)
		if got != tt.want || ok != tt.ok {
			t.Errorf("OptionKey(%q) = %q, %v; want %q, %v", tt.letter, got, ok, tt.want, tt.ok)
		}
	}
}

func TestQuestion_Required(t *testing.T) {
	assert.Equal(t, 1, Question{}.Required())
	assert.Equal(t, 3, Question{Choose: 3}.Required())
	assert.Equal(t, -1, Question{Choose: -1}.Required())
}
