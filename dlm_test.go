package dlm

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jamesainslie/go-dlm/phrasetable"
)

func loadTable(t *testing.T, entries string) *phrasetable.Table {
	t.Helper()
	table, err := phrasetable.Load(strings.NewReader(entries))
	require.NoError(t, err)
	return table
}

// costZeroLines counts candidate lines carrying cost 0 in an output block.
func costZeroLines(t *testing.T, output string) int {
	t.Helper()
	n := 0
	for _, line := range strings.Split(output, "\n") {
		if strings.Contains(line, ":0 |t ") {
			n++
		}
	}
	return n
}

func TestEmitGroup(t *testing.T) {
	tests := []struct {
		name       string
		includeOOV bool
		candidates []string
		observed   string
		want       string
		wantN      int
	}{
		{
			name:       "observed word present, OOV appended",
			includeOOV: true,
			candidates: []string{"w1", "w2"},
			observed:   "w1",
			want: "shared |s p^c1\n" +
				"1:0 |t p^w1\n" +
				"2:1 |t p^w2\n" +
				"3:1 |t p^__OOV__///__OOV__///-------------\n" +
				"\n",
			wantN: 3,
		},
		{
			name:       "observed word present, no OOV",
			includeOOV: false,
			candidates: []string{"w1", "w2"},
			observed:   "w2",
			want: "shared |s p^c1\n" +
				"1:1 |t p^w1\n" +
				"2:0 |t p^w2\n" +
				"\n",
			wantN: 2,
		},
		{
			name:       "observed word unseen, OOV line gets cost 0",
			includeOOV: true,
			candidates: []string{"w1", "w2"},
			observed:   "w9",
			want: "shared |s p^c1\n" +
				"1:1 |t p^w1\n" +
				"2:1 |t p^w2\n" +
				"3:0 |t p^__OOV__///__OOV__///-------------\n" +
				"\n",
			wantN: 3,
		},
		{
			name:       "observed word unseen, no OOV suppresses the group",
			includeOOV: false,
			candidates: []string{"w1", "w2"},
			observed:   "w9",
			want:       "",
			wantN:      0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			table := loadTable(t, "c1 ||| w1 ||| 1")
			ex := New(table, WithOOV(tc.includeOOV))

			var sb strings.Builder
			n, err := ex.EmitGroup(&sb, "c1", tc.candidates, tc.observed)
			require.NoError(t, err)

			assert.Equal(t, tc.wantN, n)
			assert.Equal(t, tc.want, sb.String())
			if tc.wantN > 0 {
				assert.Equal(t, 1, costZeroLines(t, sb.String()),
					"exactly one line per group must carry cost 0")
			}
		})
	}
}

func TestEmitGroup_Escaping(t *testing.T) {
	table := loadTable(t, "c1 ||| w1 ||| 1")
	ex := New(table)

	var sb strings.Builder
	_, err := ex.EmitGroup(&sb, "take action|VB NN", []string{"a:b", "x y|z"}, "a:b")
	require.NoError(t, err)

	want := "shared |s p^take___action///VB___NN\n" +
		"1:0 |t p^a;;;b\n" +
		"2:1 |t p^x___y///z\n" +
		"3:1 |t p^__OOV__///__OOV__///-------------\n" +
		"\n"
	assert.Equal(t, want, sb.String())
}

func TestExtract(t *testing.T) {
	table := loadTable(t, strings.Join([]string{
		"c1 ||| w1 ||| 10",
		"c1 ||| w2 ||| 3",
		"c2 ||| w3 ||| 5",
	}, "\n"))

	wordsIn := "ignored\tc1\tw1\nignored\tc2\tw3\n"

	var sb strings.Builder
	stats, err := New(table).Extract(context.Background(), strings.NewReader(wordsIn), &sb)
	require.NoError(t, err)

	want := "shared |s p^c1\n" +
		"1:0 |t p^w1\n" +
		"2:1 |t p^w2\n" +
		"3:1 |t p^__OOV__///__OOV__///-------------\n" +
		"\n" +
		"shared |s p^c2\n" +
		"1:0 |t p^w3\n" +
		"2:1 |t p^__OOV__///__OOV__///-------------\n" +
		"\n"
	assert.Equal(t, want, sb.String())

	assert.Equal(t, Stats{Records: 2, Groups: 2, Candidates: 5}, stats)
}

func TestExtract_OOVObserved(t *testing.T) {
	table := loadTable(t, "c1 ||| w1 ||| 10\nc1 ||| w2 ||| 3")

	var sb strings.Builder
	stats, err := New(table).Extract(context.Background(),
		strings.NewReader("ignored\tc1\tw9\n"), &sb)
	require.NoError(t, err)

	want := "shared |s p^c1\n" +
		"1:1 |t p^w1\n" +
		"2:1 |t p^w2\n" +
		"3:0 |t p^__OOV__///__OOV__///-------------\n" +
		"\n"
	assert.Equal(t, want, sb.String())
	assert.Equal(t, Stats{Records: 1, Groups: 1, OOV: 1, Candidates: 3}, stats)
}

func TestExtract_NoOOVSuppresses(t *testing.T) {
	table := loadTable(t, "c1 ||| w1 ||| 10\nc1 ||| w2 ||| 3")

	var sb strings.Builder
	stats, err := New(table, WithOOV(false)).Extract(context.Background(),
		strings.NewReader("ignored\tc1\tw9\nignored\tc1\tw2\n"), &sb)
	require.NoError(t, err)

	// First record is unrepresentable and dropped; second survives.
	want := "shared |s p^c1\n" +
		"1:1 |t p^w1\n" +
		"2:0 |t p^w2\n" +
		"\n"
	assert.Equal(t, want, sb.String())
	assert.NotContains(t, sb.String(), "__OOV__")
	assert.Equal(t, Stats{Records: 2, Groups: 1, Skipped: 1, OOV: 1, Candidates: 2}, stats)
}

func TestExtract_UnknownCept(t *testing.T) {
	table := loadTable(t, "c1 ||| w1 ||| 10")

	var sb strings.Builder
	_, err := New(table).Extract(context.Background(),
		strings.NewReader("ignored\tc9\tw1\n"), &sb)

	require.ErrorIs(t, err, ErrUnknownCept)
	assert.Contains(t, err.Error(), `"c9"`)
	assert.Contains(t, err.Error(), "same parallel corpus")
	assert.Empty(t, sb.String(), "no output for the failing record")
}

func TestExtract_MalformedWordsLine(t *testing.T) {
	table := loadTable(t, "c1 ||| w1 ||| 10")

	var sb strings.Builder
	_, err := New(table).Extract(context.Background(),
		strings.NewReader("no tabs at all\n"), &sb)
	require.Error(t, err)
	assert.Empty(t, sb.String())
}

func TestExtract_Normalizer(t *testing.T) {
	table := loadTable(t, "c1 ||| w1 ||| 10")

	// The words file carries a form the table does not have; without a
	// normalizer the run would abort on an unknown cept.
	lower := func(s string) string { return strings.ToLower(s) }

	var sb strings.Builder
	stats, err := New(table, WithNormalizer(lower)).Extract(context.Background(),
		strings.NewReader("ignored\tC1\tW1\n"), &sb)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Groups)
	assert.Contains(t, sb.String(), "1:0 |t p^w1")
}

func TestExtract_ContextCanceled(t *testing.T) {
	table := loadTable(t, "c1 ||| w1 ||| 10")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var sb strings.Builder
	_, err := New(table).Extract(ctx, strings.NewReader("ignored\tc1\tw1\n"), &sb)
	require.ErrorIs(t, err, context.Canceled)
}

func TestExtract_Testdata(t *testing.T) {
	table, err := phrasetable.LoadFile("testdata/cept_table.txt")
	require.NoError(t, err)
	require.Equal(t, 2, table.Len())

	f, err := os.Open("testdata/words.tsv")
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	var sb strings.Builder
	stats, err := New(table).Extract(context.Background(), f, &sb)
	require.NoError(t, err)

	want := "shared |s p^action___NN\n" +
		"1:0 |t p^akce\n" +
		"2:1 |t p^akcí\n" +
		"3:1 |t p^opatření\n" +
		"4:1 |t p^__OOV__///__OOV__///-------------\n" +
		"\n" +
		"shared |s p^measure___NN\n" +
		"1:1 |t p^opatření\n" +
		"2:0 |t p^opatřením\n" +
		"3:1 |t p^__OOV__///__OOV__///-------------\n" +
		"\n" +
		"shared |s p^action___NN\n" +
		"1:1 |t p^akce\n" +
		"2:1 |t p^akcí\n" +
		"3:1 |t p^opatření\n" +
		"4:0 |t p^__OOV__///__OOV__///-------------\n" +
		"\n"
	assert.Equal(t, want, sb.String())
	assert.Equal(t, Stats{Records: 3, Groups: 3, OOV: 1, Candidates: 11}, stats)
}
