// Command timetable-extract turns a copied timetable page into a leg CSV.
//
// Transit sites render departures as "HH:MM発 HH:MM着" pairs. Given a saved
// page (or a live URL), the tool pulls every such pair out in document order
// and writes them as the two-column CSV the server loads at startup:
//
//	timetable-extract -in page.html -html -out data/tameike_shimbashi.csv
//	timetable-extract -url https://example.jp/timetable -html -selector ".result" -out leg.csv
//
// Plain-text input (a terminal paste, an email) works without -html.
package main

import (
	"bytes"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"regexp"

	"github.com/PuerkitoBio/goquery"
	"github.com/davecgh/go-spew/spew"

	lib "github.com/shonan-transit/commute-routes"
)

// pairPattern matches one departure/arrival pair as Japanese timetable pages
// print them, e.g. "07:17発 07:30着".
var pairPattern = regexp.MustCompile(`(\d{2}:\d{2})発\s+(\d{2}:\d{2})着`)

func main() {
	in := flag.String("in", "", "input file (text or HTML)")
	pageURL := flag.String("url", "", "fetch the page from this URL instead of -in")
	html := flag.Bool("html", false, "parse the input as HTML and extract text first")
	selector := flag.String("selector", "body", "CSS selector to scope the HTML extraction")
	out := flag.String("out", "", "output CSV path (required)")
	verbose := flag.Bool("verbose", false, "dump the extracted pairs")
	flag.Parse()

	lib.InitLogging()

	if *out == "" {
		log.Fatal("missing -out")
	}
	if (*in == "") == (*pageURL == "") {
		log.Fatal("exactly one of -in or -url is required")
	}

	raw, err := readInput(*in, *pageURL)
	if err != nil {
		log.Fatalf("read input: %v", err)
	}

	text := string(raw)
	if *html {
		text, err = extractText(raw, *selector)
		if err != nil {
			log.Fatalf("extract text: %v", err)
		}
	}

	pairs := pairPattern.FindAllStringSubmatch(text, -1)
	if *verbose {
		spew.Dump(pairs)
	}
	log.Printf("extracted %d train pairs", len(pairs))

	if err := writeCSV(*out, pairs); err != nil {
		log.Fatalf("write csv: %v", err)
	}
	log.Printf("wrote %s", *out)
}

func readInput(path, pageURL string) ([]byte, error) {
	if pageURL == "" {
		return os.ReadFile(path)
	}

	resp, err := http.Get(pageURL)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", pageURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, pageURL)
	}
	return io.ReadAll(resp.Body)
}

// extractText flattens the selected nodes to plain text so the pair pattern
// is not defeated by markup between the times.
func extractText(raw []byte, selector string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("parse HTML: %w", err)
	}

	nodes := doc.Find(selector)
	if nodes.Length() == 0 {
		return "", fmt.Errorf("selector %q matched nothing", selector)
	}

	var buf bytes.Buffer
	nodes.Each(func(_ int, s *goquery.Selection) {
		buf.WriteString(s.Text())
		buf.WriteByte('\n')
	})
	return buf.String(), nil
}

// writeCSV emits the UTF-8 BOM first so the files open cleanly in Excel,
// matching the encoding of the CSVs already in data/.
func writeCSV(path string, pairs [][]string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteString("\uFEFF"); err != nil {
		return err
	}

	w := csv.NewWriter(f)
	if err := w.Write([]string{"departure", "arrival"}); err != nil {
		return err
	}
	for _, p := range pairs {
		if err := w.Write([]string{p[1], p[2]}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
