package tally

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"testing"
)

func TestRenderTablePreviewLimit(t *testing.T) {
	t.Parallel()

	schema := Schema{
		{Name: "Item", Kind: StringType},
		{Name: "Units", Kind: IntType},
	}
	table := NewTable(schema)
	for i := 0; i < 20; i++ {
		table.Append(Row{StringValue("Item" + strconv.Itoa(i)), IntValue(int64(i))})
	}

	rendered := RenderTable(table, PreviewSmall)
	lines := strings.Split(strings.TrimRight(rendered, "\n"), "\n")

	// Header + rule + 3 data rows.
	if len(lines) != 5 {
		t.Fatalf("Got %d lines, want 5:\n%s", len(lines), rendered)
	}
	// Preview keeps original order.
	for i := 0; i < 3; i++ {
		if !strings.HasPrefix(lines[2+i], "Item"+strconv.Itoa(i)) {
			t.Errorf("Preview row %d = %q, want prefix %q", i, lines[2+i], "Item"+strconv.Itoa(i))
		}
	}
}

func TestRenderTableNoLimitShowsAll(t *testing.T) {
	t.Parallel()

	table := NewTable(Schema{{Name: "N", Kind: IntType}})
	for i := 0; i < 7; i++ {
		table.Append(Row{IntValue(int64(i))})
	}

	rendered := RenderTable(table, 0)
	lines := strings.Split(strings.TrimRight(rendered, "\n"), "\n")
	if len(lines) != 9 {
		t.Errorf("Got %d lines, want 9 (header + rule + 7 rows)", len(lines))
	}
}

func TestRenderTableNoTrailingWhitespace(t *testing.T) {
	t.Parallel()

	table := NewTable(Schema{
		{Name: "A", Kind: StringType},
		{Name: "B", Kind: StringType},
	})
	table.Append(Row{StringValue("x"), StringValue("y")})

	for i, line := range strings.Split(RenderTable(table, 0), "\n") {
		if line != strings.TrimRight(line, " ") {
			t.Errorf("Line %d has trailing whitespace: %q", i, line)
		}
	}
}

func TestRenderResultRoundTrip(t *testing.T) {
	t.Parallel()

	result := AggregationResult{
		{Key: "Jones", Total: FloatValue(396.70)},
		{Key: "Kivell", Total: FloatValue(999.50)},
		{Key: "Jardine", Total: FloatValue(179.64)},
	}

	rendered := RenderResult(result, 0)
	lines := strings.Split(strings.TrimRight(rendered, "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("Got %d lines, want 5:\n%s", len(lines), rendered)
	}

	// Re-parse the grid body: columns are separated by 2+ spaces.
	sep := regexp.MustCompile(`\s{2,}`)
	parsed := make(map[string]float64)
	for _, line := range lines[2:] {
		parts := sep.Split(line, -1)
		if len(parts) != 2 {
			t.Fatalf("Cannot split rendered line %q", line)
		}
		v, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			t.Fatalf("Cannot parse rendered total %q: %v", parts[1], err)
		}
		parsed[parts[0]] = v
	}

	for _, g := range result {
		want, _ := g.Total.Num()
		got, ok := parsed[g.Key]
		if !ok {
			t.Errorf("Key %q missing after round trip", g.Key)
			continue
		}
		if math.Abs(got-want) > 1e-6 {
			t.Errorf("Key %q = %v after round trip, want %v", g.Key, got, want)
		}
	}
}

func TestRenderResultLimit(t *testing.T) {
	t.Parallel()

	var result AggregationResult
	for i := 0; i < 10; i++ {
		result = append(result, GroupTotal{Key: "K" + strconv.Itoa(i), Total: IntValue(int64(i))})
	}

	rendered := RenderResult(result, PreviewMedium)
	lines := strings.Split(strings.TrimRight(rendered, "\n"), "\n")
	if len(lines) != 7 {
		t.Errorf("Got %d lines, want 7 (header + rule + 5 groups)", len(lines))
	}
}
