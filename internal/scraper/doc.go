// Package scraper provides HTTP fetching and HTML parsing for tournament
// standings pages.
//
// The scraper fetches one standings page with a browser-like User-Agent and
// extracts every day-two row: top-cut rows first, then the rest in document
// order. Rows with fewer than eight cells are skipped and counted. Deck
// contents come from the alt text of the images in the eighth cell.
package scraper
