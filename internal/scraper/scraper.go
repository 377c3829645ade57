package scraper

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/pfrederiksen/pokedata/internal/config"
	"github.com/pfrederiksen/pokedata/internal/standings"
	"golang.org/x/net/html"
)

const (
	StandingsURL = "https://labs.limitlesstcg.com/0009/standings"
	UserAgent    = "Mozilla/5.0"
	Timeout      = 30 * time.Second

	topCutSelector = "tr.day2.topcut"
	day2Selector   = "tr.day2"

	minCells  = 8
	deckCell  = 7
	imgAltKey = "alt"
)

// Result holds the rows extracted from one page.
type Result struct {
	Rows    []*standings.Row
	Skipped int
}

// Scraper handles fetching and parsing a standings page
type Scraper struct {
	client    *http.Client
	url       string
	userAgent string
}

// New creates a Scraper for the configured URL. Empty fields fall back to
// StandingsURL and UserAgent.
func New(cfg config.StandingsConfig) *Scraper {
	s := &Scraper{
		client: &http.Client{
			Timeout: Timeout,
		},
		url:       cfg.URL,
		userAgent: cfg.UserAgent,
	}
	if s.url == "" {
		s.url = StandingsURL
	}
	if s.userAgent == "" {
		s.userAgent = UserAgent
	}
	return s
}

// URL returns the page the scraper fetches.
func (s *Scraper) URL() string {
	return s.url
}

// FetchStandings fetches and parses the standings page.
func (s *Scraper) FetchStandings() (*Result, error) {
	req, err := http.NewRequest(http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return Parse(resp.Body)
}

// Parse extracts standings rows from an HTML document.
func Parse(r io.Reader) (*Result, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	result := &Result{Rows: make([]*standings.Row, 0)}

	visit := func(_ int, tr *goquery.Selection) {
		row, ok := parseRow(tr)
		if !ok {
			result.Skipped++
			return
		}
		result.Rows = append(result.Rows, row)
	}

	doc.Find(topCutSelector).Each(visit)
	doc.Find(day2Selector).Not(".topcut").Each(visit)

	return result, nil
}

// parseRow returns false when the row has too few cells.
func parseRow(tr *goquery.Selection) (*standings.Row, bool) {
	cells := tr.Find("td")
	if cells.Length() < minCells {
		return nil, false
	}

	deck := make([]string, 0)
	cells.Eq(deckCell).Find("img").Each(func(_ int, img *goquery.Selection) {
		if alt, ok := img.Attr(imgAltKey); ok {
			deck = append(deck, alt)
		}
	})

	return &standings.Row{
		Position: strippedText(cells.Eq(0)),
		Player:   strippedText(cells.Eq(1)),
		Points:   strippedText(cells.Eq(3)),
		Record:   strippedText(cells.Eq(4)),
		OPW:      strippedText(cells.Eq(5)),
		OOPW:     strippedText(cells.Eq(6)),
		Deck:     deck,
	}, true
}

// strippedText concatenates the selection's text nodes, each trimmed of
// surrounding whitespace, with no separator between them.
func strippedText(sel *goquery.Selection) string {
	var b strings.Builder
	for _, n := range sel.Nodes {
		appendText(n, &b)
	}
	return b.String()
}

func appendText(n *html.Node, b *strings.Builder) {
	if n.Type == html.TextNode {
		b.WriteString(strings.TrimSpace(n.Data))
		return
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		appendText(child, b)
	}
}
