package transform

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"jobfeed-engine/internal/scrape/util"
)

// StripHTML flattens an HTML job description into plain text. Muse contents
// and some Adzuna descriptions arrive as markup.
func StripHTML(s string) string {
	if !strings.ContainsRune(s, '<') {
		return util.CleanText(s)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return util.CleanText(s)
	}
	doc.Find("script, style").Remove()
	return util.CleanText(doc.Text())
}
