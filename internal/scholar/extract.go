// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scholar

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"

	"github.com/L04DB4L4NC3R/gscholar/pkg/types"
)

// CSS selectors for the parts of a results page.
const (
	containerSelector = ".gs_ri"
	titleSelector     = ".gs_rt"
	authorSelector    = ".gs_a"
	summarySelector   = ".gs_rs"
	linkSelector      = "a"
)

// Extract parses a results page into records in document order. A page with
// no result containers yields an empty slice. Containers lacking a title,
// author line or summary are skipped; a missing link leaves Link empty.
// Only a document that cannot be read as text returns ErrParse.
func Extract(document string) ([]types.ResultRecord, error) {
	records, _, err := extract(document)
	return records, err
}

// extract is Extract that also reports how many containers were skipped.
func extract(document string) ([]types.ResultRecord, int, error) {
	if !utf8.ValidString(document) {
		return nil, 0, fmt.Errorf("%w: document is not valid UTF-8", ErrParse)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(document))
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrParse, err)
	}

	records := make([]types.ResultRecord, 0)
	skipped := 0
	doc.Find(containerSelector).Each(func(_ int, container *goquery.Selection) {
		record, ok := parseContainer(container)
		if !ok {
			skipped++
			return
		}
		records = append(records, record)
	})

	return records, skipped, nil
}

// parseContainer resolves the four fields of one result. It reports false
// when a mandatory text field is absent, which means the node was not a
// real result.
func parseContainer(container *goquery.Selection) (types.ResultRecord, bool) {
	title := container.Find(titleSelector).First()
	author := container.Find(authorSelector).First()
	summary := container.Find(summarySelector).First()
	if title.Length() == 0 || author.Length() == 0 || summary.Length() == 0 {
		return types.ResultRecord{}, false
	}

	link, _ := container.Find(linkSelector).First().Attr("href")

	return types.ResultRecord{
		Title:   title.Text(),
		Author:  author.Text(),
		Summary: summary.Text(),
		Link:    link,
	}, true
}
