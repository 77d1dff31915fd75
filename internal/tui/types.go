package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
)

// represents the current state of the TUI
type AppState int

const (
	StateSearch AppState = iota
	StateDocument
)

// main TUI application model
type Model struct {
	state      AppState
	width      int
	height     int
	err        error
	input      textinput.Model
	spinner    spinner.Model
	viewport   viewport.Model
	ready      bool
	isFetching bool

	client   *ArchiveClient
	results  []SearchHit
	selected int
	total    int
	page     int
	query    string
	document *DocumentDetail
}

// one ranked entry from the search endpoint
type SearchHit struct {
	ID    string  `json:"id"`
	Title string  `json:"title"`
	Date  string  `json:"date"`
	Score float64 `json:"score"`
}

// full document returned by the detail endpoint
type DocumentDetail struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Date       string `json:"date"`
	Text       string `json:"text"`
	SourceFile string `json:"source_file,omitempty"`
	CreatedAt  string `json:"created_at"`
}

// sent when a search request completes
type SearchResultMsg struct {
	query   string
	page    int
	total   int
	results []SearchHit
}

// sent when a document fetch completes
type DocumentMsg struct {
	document *DocumentDetail
}

// sent when a request fails
type RequestErrorMsg struct {
	err error
}
