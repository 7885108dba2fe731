package markit

import (
	"errors"
	"strings"
	"testing"
)

func TestTableInDocument(t *testing.T) {
	got := NewDocument().Table("key", "value").
		Row(NewTextRun().Bold("APA"), NewTextRun().Strikethrough("Kanin")).
		Row("göran", "gudrun").
		Row(12312, 3332).
		Done().Text("Nu är tabellen slut!").Render()
	want := "\n\n|key     |value     |\n|--------|----------|\n| **APA**| ~~Kanin~~|\n" +
		"|göran   |gudrun    |\n|12312   |3332      |\n\nNu är tabellen slut!"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestTableRowSizeMismatch(t *testing.T) {
	table := NewTable("a", "b").Row("1", "2")
	table.Row("only one")
	if !errors.Is(table.Err(), ErrRowSize) {
		t.Fatalf("expected ErrRowSize, got %v", table.Err())
	}
	if table.Len() != 1 {
		t.Fatalf("mismatched row was stored, len=%d", table.Len())
	}
	if !strings.Contains(table.Err().Error(), "1 cells, want 2") {
		t.Fatalf("error should name the counts: %v", table.Err())
	}
	table.Row("3", "4")
	if table.Len() != 1 {
		t.Fatalf("rows added after error, len=%d", table.Len())
	}
}

func TestTableInsertRow(t *testing.T) {
	table := NewTable("n").Row("second").InsertRow(0, "first").InsertRow(99, "last").InsertRow(-3, "zeroth")
	want := "\n\n|n     |\n|------|\n|zeroth|\n|first |\n|second|\n|last  |\n\n"
	if got := table.Render(); got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestTableWideCharacters(t *testing.T) {
	got := NewTable("日本", "x").Row("a", "b").Render()
	if want := "\n\n|日本|x|\n|----|-|\n|a   |b|\n\n"; got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestTableEmptyCell(t *testing.T) {
	got := NewTable("k", "v").Row("", "x").Render()
	if want := "\n\n|k|v|\n|-|-|\n| |x|\n\n"; got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestTableCellsDoNotWrap(t *testing.T) {
	long := strings.Repeat("word ", 20)
	got := NewTable("text").Row(long).Render()
	if strings.Count(got, "\n") != 6 {
		t.Fatalf("long cell was wrapped: %q", got)
	}
}

func TestTableEscapesPipes(t *testing.T) {
	got := NewTable("a|b").Render()
	if want := "\n\n|a&#124;b|\n|--------|\n\n"; got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestTableRenderIsRepeatable(t *testing.T) {
	table := NewTable("k", "v").Row("a", NewTextRun().Italic("b"))
	first := table.Render()
	if second := table.Render(); second != first {
		t.Fatalf("render changed: %q then %q", first, second)
	}
	if table.Len() != 1 || table.Columns() != 2 {
		t.Fatalf("render mutated table: len=%d columns=%d", table.Len(), table.Columns())
	}
}

func TestTableWithoutHeaders(t *testing.T) {
	if got := NewTable().Render(); got != "" {
		t.Fatalf("expected empty render, got %q", got)
	}
	if NewTable().Done() != nil {
		t.Fatalf("standalone table should have no document")
	}
}

func TestTableEscapesPipesInCode(t *testing.T) {
	got := NewTable("a").Row(NewTextRun().InlineCode("x|y")).Render()
	if want := "\n\n|a      |\n|-------|\n| `x\\|y`|\n\n"; got != want {
		t.Fatalf("got %q want %q", got, want)
	}
	if got := NewTextRun().InlineCode("x|y").Render(); got != " `x|y`" {
		t.Fatalf("inline code outside a table changed: %q", got)
	}
	if got := NewDocument().CodeBlock("a | b").Render(); got != "\n\n```\na | b\n```\n" {
		t.Fatalf("code block changed: %q", got)
	}
}
