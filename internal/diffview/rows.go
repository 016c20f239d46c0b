package diffview

type Kind int

const (
	KindContext Kind = iota
	KindRemove
	KindAdd
	KindEmpty
	KindSeparator
)

// Row is one visual line on one side of the split view. Separator rows
// never carry a number; Empty rows carry neither a number nor text.
type Row struct {
	Kind   Kind
	Number *int
	Text   string
}

type Hunk struct {
	Rows []Row
}

type File struct {
	Label string
	Hunks []Hunk
}

// Document holds the two sides of an aligned diff. Before[i] and After[i]
// describe the same file, and their hunks have the same number of rows.
type Document struct {
	Before []File
	After  []File
}

func emptyRow() Row {
	return Row{Kind: KindEmpty}
}

func separatorRow(text string) Row {
	return Row{Kind: KindSeparator, Text: text}
}

func linePtr(n int) *int {
	v := n
	return &v
}
