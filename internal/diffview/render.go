package diffview

import (
	"strconv"
	"strings"
)

var htmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// escapeText escapes only &, < and >. Quotes are left alone since text
// never ends up inside an attribute.
func escapeText(s string) string {
	return htmlEscaper.Replace(s)
}

// Render serializes doc as a complete HTML document. Rows are read in
// parallel from doc.Before and doc.After, so both must come from Align.
func Render(doc Document) string {
	var b strings.Builder
	b.WriteString(`<html><head><meta charset="UTF-8"><style>`)
	b.WriteString(stylesheet)
	b.WriteString(`</style></head><body><div>`)

	for i := range doc.Before {
		before, after := doc.Before[i], doc.After[i]
		b.WriteString(`<div class="container"><div class="row"><div class="column header">`)
		b.WriteString(escapeText(before.Label))
		b.WriteString(`</div><div class="column header">`)
		b.WriteString(escapeText(after.Label))
		b.WriteString(`</div></div>`)

		for h := range before.Hunks {
			afterRows := after.Hunks[h].Rows
			for r, row := range before.Hunks[h].Rows {
				renderRow(&b, row, afterRows[r])
			}
		}
		b.WriteString(`</div>`)
	}

	b.WriteString(`</div></body></html>`)
	return b.String()
}

func renderRow(b *strings.Builder, before, after Row) {
	b.WriteString(`<div class="row">`)
	if before.Kind == KindSeparator {
		b.WriteString(`<div class="special">`)
		b.WriteString(escapeText(before.Text))
		b.WriteString(`</div></div>`)
		return
	}
	renderColumn(b, "before", before, KindRemove, "removed")
	renderColumn(b, "after", after, KindAdd, "added")
	b.WriteString(`</div>`)
}

func renderColumn(b *strings.Builder, side string, row Row, changed Kind, changedClass string) {
	modifier := ""
	switch row.Kind {
	case changed:
		modifier = " " + changedClass
	case KindEmpty:
		modifier = " empty"
	}

	b.WriteString(`<div class="column `)
	b.WriteString(side)
	b.WriteString(`"><div><div class="line-number`)
	b.WriteString(modifier)
	b.WriteString(`">`)
	if row.Kind != KindEmpty && row.Number != nil {
		b.WriteString(strconv.Itoa(*row.Number))
	}
	b.WriteString(`</div><div class="content`)
	b.WriteString(modifier)
	b.WriteString(`"><pre>`)
	b.WriteString(escapeText(row.Text))
	b.WriteString(`</pre></div></div></div>`)
}
