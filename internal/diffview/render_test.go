package diffview

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	documentOpen  = `<html><head><meta charset="UTF-8"><style>`
	documentClose = `</div></body></html>`
)

func TestRenderEmptyDocumentIsWellFormed(t *testing.T) {
	out := Render(Document{})

	assert.True(t, strings.HasPrefix(out, documentOpen), "prefix: %q", out[:40])
	assert.True(t, strings.HasSuffix(out, documentClose))
	assert.Contains(t, out, stylesheet)
	assert.Contains(t, out, `</style></head><body><div></div></body></html>`)
	assert.NotContains(t, out, `class="container"`)
}

func TestRenderEscapesContent(t *testing.T) {
	doc := singleRowDocument(
		Row{Kind: KindContext, Number: linePtr(1), Text: `a<b>&c`},
		Row{Kind: KindContext, Number: linePtr(1), Text: `a<b>&c`},
	)

	out := Render(doc)
	assert.Contains(t, out, `<pre>a&lt;b&gt;&amp;c</pre>`)
	assert.NotContains(t, out, `a<b>`)
}

func TestEscapeTextLeavesQuotesAlone(t *testing.T) {
	assert.Equal(t, `"x" &amp; 'y'`, escapeText(`"x" & 'y'`))
	assert.Equal(t, `&lt;a href="x"&gt;`, escapeText(`<a href="x">`))
}

func TestRenderChangedRowsGetHighlightClasses(t *testing.T) {
	doc := singleRowDocument(
		Row{Kind: KindRemove, Number: linePtr(5), Text: "foo"},
		Row{Kind: KindAdd, Number: linePtr(7), Text: "bar"},
	)

	out := Render(doc)
	assert.Contains(t, out,
		`<div class="row"><div class="column before"><div><div class="line-number removed">5</div><div class="content removed"><pre>foo</pre></div></div></div>`+
			`<div class="column after"><div><div class="line-number added">7</div><div class="content added"><pre>bar</pre></div></div></div></div>`)
}

func TestRenderEmptyRowsHaveNoNumber(t *testing.T) {
	doc := singleRowDocument(
		emptyRow(),
		Row{Kind: KindAdd, Number: linePtr(3), Text: "new"},
	)

	out := Render(doc)
	assert.Contains(t, out, `<div class="column before"><div><div class="line-number empty"></div><div class="content empty"><pre></pre></div></div></div>`)
}

func TestRenderContextRowsAreNeutral(t *testing.T) {
	doc := singleRowDocument(
		Row{Kind: KindContext, Number: linePtr(2), Text: "same"},
		Row{Kind: KindContext, Number: linePtr(4), Text: "same"},
	)

	out := Render(doc)
	assert.Contains(t, out, `<div class="line-number">2</div><div class="content"><pre>same</pre></div>`)
	assert.Contains(t, out, `<div class="line-number">4</div><div class="content"><pre>same</pre></div>`)
}

func TestRenderSeparatorIsSingleFullWidthBlock(t *testing.T) {
	doc := Document{
		Before: []File{{Label: "a/f", Hunks: []Hunk{{Rows: []Row{
			{Kind: KindContext, Number: linePtr(1), Text: "x"},
			separatorRow(HunkSeparator),
		}}}}},
		After: []File{{Label: "b/f", Hunks: []Hunk{{Rows: []Row{
			{Kind: KindContext, Number: linePtr(1), Text: "x"},
			separatorRow(HunkSeparator),
		}}}}},
	}

	out := Render(doc)
	assert.Equal(t, 1, strings.Count(out, `class="special"`))
	assert.Contains(t, out, `<div class="row"><div class="special">`+HunkSeparator+`</div></div>`)
}

func TestRenderWritesFileHeaders(t *testing.T) {
	doc := Document{
		Before: []File{{Label: "a/x<y>.go"}, {Label: "a/two.go"}},
		After:  []File{{Label: "b/x<y>.go"}, {Label: "b/two.go"}},
	}

	out := Render(doc)
	assert.Equal(t, 2, strings.Count(out, `<div class="container">`))
	assert.Contains(t, out, `<div class="column header">a/x&lt;y&gt;.go</div><div class="column header">b/x&lt;y&gt;.go</div>`)
	assert.Less(t, strings.Index(out, "a/x&lt;y&gt;.go"), strings.Index(out, "a/two.go"))
}

func TestRenderAlignedDiff(t *testing.T) {
	raw := []byte(`diff --git a/main.go b/main.go
index 1111111..2222222 100644
--- a/main.go
+++ b/main.go
@@ -1,3 +1,3 @@
 package main
-var x = 1
+var x = 2
 // end
@@ -20,2 +20,3 @@
 func f() {
+	if a < b && c > d {}
 }
`)

	files, err := ParseUnifiedDiff(raw)
	require.NoError(t, err)
	out := Render(NewAligner(nil).Align(files))

	assert.True(t, strings.HasPrefix(out, documentOpen))
	assert.True(t, strings.HasSuffix(out, documentClose))
	assert.Equal(t, 1, strings.Count(out, `class="special"`))
	assert.Contains(t, out, `<div class="line-number removed">2</div><div class="content removed"><pre>var x = 1</pre>`)
	assert.Contains(t, out, `<div class="line-number added">2</div><div class="content added"><pre>var x = 2</pre>`)
	assert.Contains(t, out, `<pre>	if a &lt; b &amp;&amp; c &gt; d {}</pre>`)
	assert.Contains(t, out, `<div class="line-number added">21</div>`)
}

func singleRowDocument(before, after Row) Document {
	return Document{
		Before: []File{{Label: "a/f", Hunks: []Hunk{{Rows: []Row{before}}}}},
		After:  []File{{Label: "b/f", Hunks: []Hunk{{Rows: []Row{after}}}}},
	}
}
