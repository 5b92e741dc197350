package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"wordfreq/internal/domain"
	"wordfreq/internal/sentence"
	"wordfreq/internal/tokenizer"
)

// LookupPort is the TUI-facing subset of the analysis service.
type LookupPort interface {
	Lookup(word string) (domain.WordLookup, error)
}

// Model is the Bubble Tea model for the interactive report.
type Model struct {
	service  LookupPort
	report   domain.Report
	input    textinput.Model
	viewport viewport.Model
	lookup   *domain.WordLookup
	status   string
	ready    bool
}

// New creates a new TUI model instance.
func New(service LookupPort, report domain.Report) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Type a word and press Enter"
	ti.Focus()
	ti.CharLimit = 0
	vp := viewport.New(0, 0)
	return Model{service: service, report: report, input: ti, viewport: vp, status: "Loaded. Esc shows the report again."}
}

// Init initializes the model (text input cursor blink).
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key and window events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, rh := resultBoxStyle.GetFrameSize()
		_, qh := queryBoxStyle.GetFrameSize()
		totalHeaderLines := 2                                    // header + totals
		totalFooterLines := 1                                    // status
		reserved := totalHeaderLines + totalFooterLines + qh + 1 // 1 spacer
		vh := msg.Height - reserved
		m.viewport.Width = max(20, msg.Width)
		m.viewport.Height = max(3, vh-rh)
		m.viewport.SetContent(m.renderBody())
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD {
			return m, tea.Quit
		}
		switch msg.String() {
		case "enter":
			w := strings.TrimSpace(m.input.Value())
			if w != "" {
				res, err := m.service.Lookup(w)
				if err != nil {
					m.status = "Error: " + err.Error()
					m.lookup = nil
				} else {
					m.status = fmt.Sprintf("Results for %q", res.Word)
					m.lookup = &res
				}
				m.input.SetValue("")
				m.viewport.SetContent(m.renderBody())
				return m, nil
			}
		case "esc":
			m.lookup = nil
			m.status = "Report"
			m.viewport.SetContent(m.renderBody())
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the layout.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := lipgloss.NewStyle().Bold(true).Render("Word Frequency: " + m.report.Path)
	totals := lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Render(
		fmt.Sprintf("Total words: %d  Unique words: %d", m.report.TotalWords, m.report.UniqueWords))
	body := resultBoxStyle.Render(m.viewport.View())
	input := queryBoxStyle.Render(m.input.View())
	status := lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Render(m.status)
	return header + "\n" + totals + "\n" + body + "\n" + input + "\n" + status
}

func (m Model) renderBody() string {
	if m.lookup != nil {
		return renderLookup(*m.lookup)
	}
	return renderReport(m.report)
}

func renderReport(r domain.Report) string {
	if r.TotalWords == 0 {
		return "No words found."
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d most frequent words:\n", len(r.Top))
	for _, e := range r.Top {
		fmt.Fprintf(&b, "%6d  %s\n", e.Count, e.Word)
	}
	if len(r.Alphabetical) > 0 {
		words := make([]string, len(r.Alphabetical))
		for i, e := range r.Alphabetical {
			words[i] = e.Word
		}
		b.WriteString("\nAlphabetically: " + strings.Join(words, ", ") + "\n")
	}
	fmt.Fprintf(&b, "\nLast sentence containing %q:\n%s", r.TopWord, highlightWord(r.LastSentence, r.TopWord))
	return b.String()
}

func renderLookup(l domain.WordLookup) string {
	title := fmt.Sprintf("%q occurs %d times", l.Word, l.Count)
	if l.LastSentence == "" {
		return title + "\n\nNo sentence contains it."
	}
	return title + "\n\nLast sentence:\n" + highlightWord(l.LastSentence, l.Word)
}

var (
	resultBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	queryBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	highlightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
)

// highlightWord styles every whole-word occurrence of word in text.
func highlightWord(text, word string) string {
	if text == "" {
		return text
	}
	// Offsets come from the lowercased text and only line up when
	// lowercasing keeps the byte length.
	if len(tokenizer.Lower(text)) != len(text) {
		return text
	}
	spans := sentence.WholeWordSpans(text, word)
	if len(spans) == 0 {
		return text
	}
	var b strings.Builder
	prev := 0
	for _, sp := range spans {
		b.WriteString(text[prev:sp[0]])
		b.WriteString(highlightStyle.Render(text[sp[0]:sp[1]]))
		prev = sp[1]
	}
	b.WriteString(text[prev:])
	return b.String()
}
