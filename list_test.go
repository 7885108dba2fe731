package markit

import (
	"errors"
	"testing"
)

func TestOrderedList(t *testing.T) {
	got := NewDocument().OrderedList().Item("I").Item("hate").Item("you").Done().Render()
	if want := "\n\n1. I\n2. hate\n3. you\n"; got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestUnorderedList(t *testing.T) {
	got := NewDocument().UnorderedList().Item("I").Item("hate").Item("you").Done().Render()
	if want := "\n\n- I\n- hate\n- you\n"; got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestOrderedListWithUnorderedSublist(t *testing.T) {
	doc := NewDocument()
	doc.OrderedList().Item("I").Item("Hate:").Unordered().Item("Banana").Item("Chocklate")
	if want := "\n\n1. I\n2. Hate:\n\t- Banana\n\t- Chocklate\n"; doc.Render() != want {
		t.Fatalf("got %q want %q", doc.Render(), want)
	}
}

func TestListSealedAfterDone(t *testing.T) {
	doc := NewDocument()
	list := doc.OrderedList()
	list.Item("grönsak").Done().Text("Jag vill inte ha korv!")
	list.Item("kaffe")
	if !errors.Is(list.Err(), ErrListSealed) {
		t.Fatalf("expected ErrListSealed, got %v", list.Err())
	}
	if !errors.Is(doc.Err(), ErrListSealed) {
		t.Fatalf("document should report the list error, got %v", doc.Err())
	}
	if got := list.Render(); got != "\n\n1. grönsak\n" {
		t.Fatalf("sealed list gained items: %q", got)
	}
}

func TestListSealCoversNestedLists(t *testing.T) {
	doc := NewDocument()
	nested := doc.UnorderedList().Item("a").Ordered().Item("b")
	nested.Done()
	if !nested.Sealed() {
		t.Fatalf("expected nested list to report sealed")
	}
	nested.Item("c")
	if !errors.Is(doc.Err(), ErrListSealed) {
		t.Fatalf("expected ErrListSealed from nested list, got %v", doc.Err())
	}
}

func TestListNumberingContinuesAfterSublist(t *testing.T) {
	got := NewDocument().OrderedList().Item("First").Item("Second").
		Ordered().Item("Sublist first").Item("Sublist Second").End().
		Item("Third").Done().Render()
	want := "\n\n1. First\n2. Second\n\t1. Sublist first\n\t2. Sublist Second\n3. Third\n"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestListNestedFiveLevels(t *testing.T) {
	root := NewDocument().OrderedList()
	root.Item("item1").
		Ordered().Item("item2").
		Unordered().Item("item3").
		Unordered().Item("item4").
		Ordered().Item("item5").End().
		Item("item4.2").End().
		Item("item3.2").End().
		Item("item2.2").End().
		Item("item2.1")
	want := "\n\n1. item1\n\t1. item2\n\t\t- item3\n\t\t\t- item4\n\t\t\t\t1." +
		" item5\n\t\t\t- item4.2\n\t\t- item3.2\n\t2. item2.2\n2. item2.1\n"
	if got := root.Render(); got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestListWithFormattedItems(t *testing.T) {
	got := NewDocument().OrderedList().
		ItemRun(NewTextRun().Text("jag har gröna byxor").Bold().Italic()).
		Item("item2").
		Unordered().ItemRun(NewTextRun().InlineCode("jag finns!")).
		Done().Render()
	if want := "\n\n1. ***jag har gröna byxor***\n2. item2\n\t- `jag finns!`\n"; got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestListRenderIsRepeatable(t *testing.T) {
	list := NewDocument().OrderedList().Item("a").Ordered().Item("b").End().Item("c")
	first := list.Render()
	if second := list.Render(); second != first {
		t.Fatalf("render changed: %q then %q", first, second)
	}
	if first != "\n\n1. a\n\t1. b\n2. c\n" {
		t.Fatalf("unexpected render %q", first)
	}
}

func TestListNavigation(t *testing.T) {
	root := NewDocument().UnorderedList()
	if root.End() != root {
		t.Fatalf("End on root should return the root")
	}
	if root.Parent() != nil || root.Depth() != 0 {
		t.Fatalf("root parent=%v depth=%d", root.Parent(), root.Depth())
	}
	child := root.Ordered()
	grandchild := child.Unordered()
	if child.Parent() != root || grandchild.End() != child {
		t.Fatalf("parent links broken")
	}
	if grandchild.Depth() != 2 || grandchild.Kind() != Unordered || child.Kind() != Ordered {
		t.Fatalf("depth=%d kinds=%s,%s", grandchild.Depth(), child.Kind(), grandchild.Kind())
	}
}

func TestListIndentOption(t *testing.T) {
	doc := NewDocument(WithIndent("  "))
	doc.UnorderedList().Item("a").Unordered().Item("b").Unordered().Item("c")
	if want := "\n\n- a\n  - b\n    - c\n"; doc.Render() != want {
		t.Fatalf("got %q want %q", doc.Render(), want)
	}
}
