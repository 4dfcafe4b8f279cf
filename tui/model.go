package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cienicera/midi-fun-contract/config"
	"github.com/cienicera/midi-fun-contract/debug"
	"github.com/cienicera/midi-fun-contract/midi"
	"github.com/cienicera/midi-fun-contract/theme"
	"github.com/cienicera/midi-fun-contract/theory"
)

// listHeight is how many event rows are visible at once.
const listHeight = 12

type Model struct {
	Config *config.Config
	Theme  *theme.Theme

	seq    *midi.Sequence
	cursor int
	offset int // first visible list row

	status   string
	statusOK bool
	quitting bool

	modeIdx  int // index into theory.ModeNames()
	root     theory.PitchClass
	octave   int
	bars     int
	tempo    int // BPM
	channel  uint8
	velocity uint8
	arpeggio bool // walk chord tones instead of the scale
}

func NewModel(cfg *config.Config, th *theme.Theme) Model {
	m := Model{
		Config:   cfg,
		Theme:    th,
		octave:   clamp(cfg.Phrase.Octave, 0, 8),
		bars:     clamp(cfg.Phrase.Bars, 1, 8),
		tempo:    clamp(cfg.Phrase.Tempo, 20, 300),
		channel:  uint8(clamp(cfg.Phrase.Channel, 0, 15)),
		velocity: uint8(clamp(cfg.Phrase.Velocity, 1, 127)),
		arpeggio: cfg.Phrase.Arpeggio,
	}
	names := theory.ModeNames()
	for i, name := range names {
		if name == cfg.Phrase.Mode {
			m.modeIdx = i
		}
	}
	if root, ok := theory.ParsePitchClass(cfg.Phrase.Root); ok {
		m.root = root
	}
	m.rebuild()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.saveConfig()
			m.quitting = true
			return m, tea.Quit

		case "down", "j":
			if m.cursor < m.seq.Len()-1 {
				m.cursor++
			}

		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}

		case "g", "home":
			m.cursor = 0

		case "G", "end":
			m.cursor = m.seq.Len() - 1

		case "m":
			m.modeIdx = (m.modeIdx + 1) % len(theory.ModeNames())
			m.rebuild()

		case "M":
			names := theory.ModeNames()
			m.modeIdx = (m.modeIdx + len(names) - 1) % len(names)
			m.rebuild()

		case "r":
			m.root = (m.root + 1) % 12
			m.rebuild()

		case "R":
			m.root = (m.root + 11) % 12
			m.rebuild()

		case "o":
			if m.octave < 8 {
				m.octave++
				m.rebuild()
			}

		case "O":
			if m.octave > 0 {
				m.octave--
				m.rebuild()
			}

		case "b":
			if m.bars < 8 {
				m.bars++
				m.rebuild()
			}

		case "B":
			if m.bars > 1 {
				m.bars--
				m.rebuild()
			}

		case "+", "=":
			m.tempo = clamp(m.tempo+5, 20, 300)
			m.rebuild()

		case "-", "_":
			m.tempo = clamp(m.tempo-5, 20, 300)
			m.rebuild()

		case "a":
			m.arpeggio = !m.arpeggio
			m.rebuild()

		case "w":
			m.exportSMF()

		case "W":
			m.exportJSON()
		}
		m.scroll()
	}

	return m, nil
}

// rebuild regenerates the sequence from the current phrase settings.
func (m *Model) rebuild() {
	mode := theory.GetMode(theory.ModeNames()[m.modeIdx])
	rootKey := theory.Keynum(m.root, m.octave)
	var keys []uint8
	if m.arpeggio {
		keys = theory.ArpeggioPhrase(rootKey, mode, m.bars)
	} else {
		keys = theory.Phrase(rootKey, mode, m.bars)
	}

	seq := midi.EvenPhrase(keys, m.channel, m.velocity, microsPerQuarter(m.tempo), midi.TicksPerQuarter/2)
	m.seq = seq
	if m.cursor >= seq.Len() {
		m.cursor = seq.Len() - 1
	}
	debug.Log("phrase", "rebuilt %s on %s%d: %d events", mode.Name, m.root, m.octave, seq.Len())
}

// scroll keeps the cursor inside the visible window.
func (m *Model) scroll() {
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+listHeight {
		m.offset = m.cursor - listHeight + 1
	}
}

func (m *Model) exportSMF() {
	data, err := m.seq.EncodeSMF()
	if err != nil {
		m.status = fmt.Sprintf("encode failed: %v", err)
		m.statusOK = false
		debug.Log("export", "smf encode: %v", err)
		return
	}
	m.writeExport("mid", data)
}

func (m *Model) exportJSON() {
	data, err := m.seq.EncodeJSON()
	if err != nil {
		m.status = fmt.Sprintf("encode failed: %v", err)
		m.statusOK = false
		debug.Log("export", "json encode: %v", err)
		return
	}
	m.writeExport("json", data)
}

func (m *Model) writeExport(ext string, data []byte) {
	dir := m.Config.ExportDir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		m.status = fmt.Sprintf("write failed: %v", err)
		m.statusOK = false
		return
	}
	mode := strings.ReplaceAll(theory.ModeNames()[m.modeIdx], " ", "-")
	stamp := time.Now().Format("2006-01-02_15-04-05")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.%s", stamp, mode, ext))
	if err := os.WriteFile(path, data, 0644); err != nil {
		m.status = fmt.Sprintf("write failed: %v", err)
		m.statusOK = false
		debug.Log("export", "write %s: %v", path, err)
		return
	}
	m.status = fmt.Sprintf("wrote %s (%d bytes)", path, len(data))
	m.statusOK = true
	debug.Log("export", "wrote %s (%d bytes)", path, len(data))
}

func (m *Model) saveConfig() {
	m.Config.Phrase.Mode = theory.ModeNames()[m.modeIdx]
	m.Config.Phrase.Root = m.root.String()
	m.Config.Phrase.Octave = m.octave
	m.Config.Phrase.Bars = m.bars
	m.Config.Phrase.Tempo = m.tempo
	m.Config.Phrase.Channel = int(m.channel)
	m.Config.Phrase.Velocity = int(m.velocity)
	m.Config.Phrase.Arpeggio = m.arpeggio
	if err := m.Config.Save(); err != nil {
		debug.Log("config", "save: %v", err)
	}
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// Styles
	headerStyle := lipgloss.NewStyle().Foreground(m.Theme.Accent()).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(m.Theme.Muted())
	cursorStyle := lipgloss.NewStyle().Foreground(m.Theme.Cursor()).Bold(true)
	okStyle := lipgloss.NewStyle().Foreground(m.Theme.Success())
	warnStyle := lipgloss.NewStyle().Foreground(m.Theme.Warning())

	mode := theory.GetMode(theory.ModeNames()[m.modeIdx])
	pattern := "scale"
	if m.arpeggio {
		pattern = "arp"
	}
	header := headerStyle.Render(fmt.Sprintf("midifun  %s  %s%d  %s  %3dbpm  %d bars  ch:%d",
		mode.Name, m.root, m.octave, pattern, m.tempo, m.bars, m.channel))

	var out strings.Builder
	out.WriteString("\n")
	out.WriteString(header)
	out.WriteString("\n\n")

	last := m.offset + listHeight
	if last > m.seq.Len() {
		last = m.seq.Len()
	}
	for i := m.offset; i < last; i++ {
		e := m.seq.At(i)
		rowStyle := lipgloss.NewStyle().Foreground(m.Theme.EventColor(e))
		gutter := string(m.Theme.Symbols.Gutter)
		if i == m.cursor {
			gutter = cursorStyle.Render(string(m.Theme.Symbols.Cursor))
			rowStyle = rowStyle.Bold(true)
		}
		row := fmt.Sprintf("%3d %c %s", i, m.Theme.EventSymbol(e), e)
		out.WriteString(fmt.Sprintf(" %s %s\n", gutter, rowStyle.Render(row)))
	}
	if m.seq.Len() > last {
		out.WriteString(dimStyle.Render(fmt.Sprintf("   … %d more", m.seq.Len()-last)))
		out.WriteString("\n")
	}

	seconds := float64(m.bars*4) * 60 / float64(m.tempo)
	out.WriteString("\n")
	out.WriteString(dimStyle.Render(fmt.Sprintf("%d events  %.1fs", m.seq.Len(), seconds)))
	out.WriteString("\n\n")
	out.WriteString(dimStyle.Render("j/k:cursor  m/M:mode  r/R:root  o/O:octave  b/B:bars  +/-:tempo  a:arp  w:write mid  W:write json  q:quit"))

	if m.status != "" {
		out.WriteString("\n")
		if m.statusOK {
			out.WriteString(okStyle.Render(m.status))
		} else {
			out.WriteString(warnStyle.Render(m.status))
		}
	}

	return out.String()
}

// microsPerQuarter converts beats per minute to the SMF tempo unit.
func microsPerQuarter(bpm int) uint32 {
	return uint32(60_000_000 / bpm)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
