package htmlutil

import "github.com/PuerkitoBio/goquery"

// Table is a raw 2-D table lifted out of page markup. Header holds the
// <th> cells when the table has a header row, Rows hold the <td> cells
// of every data row in document order.
type Table struct {
	Header []string
	Rows   [][]string
}

// Column returns the index of the header cell with the given label, or
// -1 when the table has no such column.
func (t Table) Column(label string) int {
	for i, h := range t.Header {
		if h == label {
			return i
		}
	}
	return -1
}

// ExtractTables returns every <table> in the document as raw string
// cells, in document order. Cell text is cleaned the same way anchor
// text is.
func ExtractTables(doc *goquery.Document) []Table {
	var tables []Table
	doc.Find("table").Each(func(_ int, tbl *goquery.Selection) {
		var out Table
		tbl.Find("tr").Each(func(_ int, tr *goquery.Selection) {
			ths := tr.Find("th")
			if ths.Length() > 0 && out.Header == nil && len(out.Rows) == 0 {
				ths.Each(func(_ int, th *goquery.Selection) {
					out.Header = append(out.Header, CleanText(th.Text()))
				})
				return
			}

			tds := tr.Find("td")
			if tds.Length() == 0 {
				return
			}
			var row []string
			tds.Each(func(_ int, td *goquery.Selection) {
				row = append(row, CleanText(td.Text()))
			})
			out.Rows = append(out.Rows, row)
		})
		tables = append(tables, out)
	})
	return tables
}
