package transform

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/attachtext/internal/models"
)

// renderedPage mirrors the markup MuPDF produces for one page of an order confirmation.
const renderedPage = `<!DOCTYPE html>
<html>
<head>
<style>
body{background-color:slategray}
p{position:absolute;white-space:pre;margin:0}
</style>
</head>
<body>
<div id="page0" style="width:595.3pt;height:841.9pt">
<p style="top:32.6pt;left:28.3pt;line-height:12.0pt"><span style="font-family:Helvetica,serif;font-size:12.0pt">Purchase order 4711</span></p>
<p style="top:48.6pt;left:28.3pt;line-height:12.0pt"><span style="font-family:Helvetica,serif;font-size:12.0pt"> </span></p>
<p style="top:64.6pt;left:28.3pt;line-height:12.0pt"><span style="font-family:Helvetica,serif;font-size:12.0pt">Deliver to</span><span style="font-family:Helvetica-Bold,serif;font-size:12.0pt"><b>warehouse 3</b></span></p>
<img style="top:90pt;left:28pt" src="data:image/png;base64,AAAA">
</div>
</body>
</html>`

func TestSanitizeHTML_StripsAttributes(t *testing.T) {
	out, err := SanitizeHTML(renderedPage)

	require.NoError(t, err)
	assert.NotContains(t, out, "style=")
	assert.NotContains(t, out, "id=")
	assert.NotContains(t, out, "src=")
	assert.Contains(t, out, "<p><span>Purchase order 4711</span></p>")
	assert.Contains(t, out, "<div>")
}

func TestSanitizeHTML_RemovesEmptyParagraphs(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{name: "No children", input: `<p></p><p>Keep</p>`, want: 1},
		{name: "Whitespace only", input: "<p>  \n\t</p><p>Keep</p>", want: 1},
		{name: "Empty inline children", input: `<p class="a"><span style="x"></span><b></b></p><p>Keep</p>`, want: 1},
		{name: "Non-breaking space", input: `<p><span>&nbsp;</span></p><p>Keep</p>`, want: 1},
		{name: "Image only", input: `<p><img src="logo.png" alt="logo"></p><p>Keep</p>`, want: 1},
		{name: "All empty", input: `<p></p><p> </p>`, want: 0},
		{name: "Nothing to remove", input: `<p>One</p><p>Two</p>`, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := SanitizeHTML(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, strings.Count(out, "<p>"))
		})
	}
}

func TestSanitizeHTML_Idempotent(t *testing.T) {
	inputs := []string{
		renderedPage,
		`<div id="x"><p style="a"><span class="b">Hello</span></p><p> </p></div>`,
		`<p></p>`,
		``,
	}

	for _, input := range inputs {
		once, err := SanitizeHTML(input)
		require.NoError(t, err)

		twice, err := SanitizeHTML(once)
		require.NoError(t, err)

		assert.Equal(t, once, twice)
	}
}

func TestSanitize_DoesNotTouchOtherTrees(t *testing.T) {
	first, err := ParseHTML(`<p style="a">One</p>`)
	require.NoError(t, err)
	second, err := ParseHTML(`<p style="a">Two</p>`)
	require.NoError(t, err)

	Sanitize(first)

	_, stillStyled := second.Find("p").Attr("style")
	assert.True(t, stillStyled)
}

func TestMergePage_RenderedPage(t *testing.T) {
	page, err := MergeHTML(1, renderedPage)

	require.NoError(t, err)
	assert.Equal(t, 1, page.Number)
	assert.Equal(t, []string{"Purchase order 4711", "Deliver to warehouse 3"}, page.Paragraphs)
	assert.Equal(t, "<p>Purchase order 4711</p><p>Deliver to warehouse 3</p>", page.HTML())
}

func TestMergePage_EmptyRunsContributeNothing(t *testing.T) {
	page, err := MergeHTML(1, `<p></p><p> </p><p><span></span></p><p>Total due</p>`)

	require.NoError(t, err)
	assert.Equal(t, []string{"Total due"}, page.Paragraphs)
	assert.Equal(t, "<p>Total due</p>", page.HTML())
}

func TestMergePage_AdjacentParagraphsStayDistinct(t *testing.T) {
	page, err := MergeHTML(1, `<p>Hello</p><p>World</p>`)

	require.NoError(t, err)
	assert.Equal(t, []string{"Hello", "World"}, page.Paragraphs)
	assert.Equal(t, "<p>Hello</p><p>World</p>", page.HTML())
	assert.NotContains(t, page.HTML(), "Hello World")
}

func TestMergePage_JoinsInlineRuns(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "Spans", input: `<p><span>Total:</span><span>42</span><span>EUR</span></p>`, want: "Total: 42 EUR"},
		{name: "Nested formatting", input: `<p><span><b> Net </b></span><i>amount </i></p>`, want: "Net amount"},
		{name: "Inner whitespace kept", input: `<p><span>Net  amount</span></p>`, want: "Net  amount"},
		{name: "Bare text", input: `<p>  plain text  </p>`, want: "plain text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := MergeHTML(1, tt.input)
			require.NoError(t, err)
			require.Len(t, page.Paragraphs, 1)
			assert.Equal(t, tt.want, page.Paragraphs[0])
		})
	}
}

func TestMergePage_NoParagraphs(t *testing.T) {
	page, err := MergeHTML(4, `<div><img src="scan.png"></div>`)

	require.NoError(t, err)
	assert.Equal(t, 4, page.Number)
	assert.Empty(t, page.Paragraphs)
	assert.Equal(t, "", page.HTML())
}

func TestNormalizePages_PreservesOrder(t *testing.T) {
	service := NewService(arbor.NewLogger())

	doc, err := service.NormalizePages([]models.PageMarkup{
		{Number: 1, HTML: `<p>first</p><p></p>`},
		{Number: 2, HTML: `<p>second</p>`},
		{Number: 3, HTML: `<p> </p>`},
	})

	require.NoError(t, err)
	require.Len(t, doc.Pages, 3)
	assert.Equal(t, "<p>first</p>\n<p>second</p>\n", doc.HTML())
}

func TestNormalizePages_Empty(t *testing.T) {
	service := NewService(arbor.NewLogger())

	doc, err := service.NormalizePages(nil)

	require.NoError(t, err)
	assert.Empty(t, doc.Pages)
	assert.Equal(t, "", doc.HTML())
}

func TestToMarkdown(t *testing.T) {
	service := NewService(arbor.NewLogger())

	out := service.ToMarkdown(models.DocumentText{Pages: []models.PageText{
		{Number: 1, Paragraphs: []string{"Hello", "World"}},
		{Number: 2, Paragraphs: []string{"Next page"}},
	}})

	assert.Equal(t, "Hello\n\nWorld\n\n--- Page 2 ---\n\nNext page", out)
}
