package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"boxlabel/internal/label"
	"boxlabel/internal/pointer"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	imageRef := ""
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("boxlabel %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("boxlabel - draw and move label boxes over an image in the terminal")
			fmt.Println()
			fmt.Println("Usage: boxlabel [options] [image]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  BOXLABEL_DEBUG=1    Write debug logging to boxlabel-debug.log")
			fmt.Println()
			fmt.Println("Settings are read from ~/.boxlabelrc (key=value lines).")
			return
		default:
			imageRef = os.Args[1]
		}
	}

	config := loadConfig()
	closeLog, err := setupLogging(config)
	if err != nil {
		log.Fatal(err)
	}
	defer closeLog()

	log.Printf("boxlabel %s (built %s, commit %s)", Version, BuildTime, GitCommit)

	p := tea.NewProgram(
		initialModel(imageRef, config),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
}

// setupLogging sends log output to a file, since the terminal belongs to the
// program. Without a log file logging is discarded.
func setupLogging(config *Config) (func(), error) {
	path := config.LogFile
	if path == "" && os.Getenv("BOXLABEL_DEBUG") == "1" {
		path = "boxlabel-debug.log"
	}
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}

	f, err := tea.LogToFile(path, "boxlabel")
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	return func() { f.Close() }, nil
}

func initialModel(imageRef string, config *Config) model {
	surface := newImageSurface(imageRef)
	if surface.loadErr != nil {
		log.Printf("image %q: %v", imageRef, surface.loadErr)
	}

	m := model{
		mode:     ModeNormal,
		surface:  surface,
		element:  pointer.NewDispatcher("container", surface.containsClient),
		document: pointer.NewDispatcher("document", nil),
		focus:    &focusState{},
		notice:   &notice{},
		config:   config,
	}

	store := label.NewStore(nil)
	store.Subscribe(func(boxes []label.Box) {
		log.Printf("box list replaced: %d boxes", len(boxes))
	})

	m.session = label.NewSession(store, label.SessionConfig{
		MaxBoxes:        config.MaxBoxes,
		Scope:           config.Scope,
		ZeroOriginGuard: config.ZeroOriginGuard,
		Element:         m.element,
		Document:        m.document,
		Surface:         surface,
		Focus:           m.focus,
		Notify:          m.notice,
		ImageRef:        imageRef,
	})

	if surface.loadErr != nil {
		m.errorMessage = "Could not open image: " + surface.loadErr.Error()
	}
	return m
}

func (m *model) layout() {
	cols := m.width - sideMenuWidth
	rows := m.height - headerHeight - statusHeight
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	m.surface.layout(sideMenuWidth, headerHeight, cols, rows)
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Coordinates change with the layout, so an open gesture cannot
		// continue.
		m.cancelGesture()
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.KeyMsg:
		if m.notice.Active() {
			m.notice.Dismiss()
			return m, nil
		}

		if m.help {
			switch msg.String() {
			case "j", "down":
				if m.helpScroll < len(helpLines)-1 {
					m.helpScroll++
				}
			case "k", "up":
				if m.helpScroll > 0 {
					m.helpScroll--
				}
			default:
				m.help = false
				m.helpScroll = 0
			}
			return m, nil
		}

		switch m.mode {
		case ModeFileInput:
			switch msg.Type {
			case tea.KeyEscape:
				m.mode = ModeNormal
				m.filename = ""
			case tea.KeyEnter:
				if strings.TrimSpace(m.filename) == "" {
					m.errorMessage = "Filename cannot be empty"
					return m, nil
				}
				path := m.config.GetSavePath(pngName(m.filename))
				if m.config.Confirmations && fileExists(path) {
					m.pendingExport = path
					m.mode = ModeConfirm
					m.confirmAction = ConfirmOverwriteFile
					return m, nil
				}
				m.exportTo(path)
			case tea.KeyBackspace:
				if len(m.filename) > 0 {
					runes := []rune(m.filename)
					m.filename = string(runes[:len(runes)-1])
				}
			case tea.KeyRunes, tea.KeySpace:
				m.filename += string(msg.Runes)
			}
			return m, nil

		case ModeConfirm:
			switch msg.String() {
			case "y", "Y", "enter":
				switch m.confirmAction {
				case ConfirmQuit:
					return m, tea.Quit
				case ConfirmOverwriteFile:
					m.exportTo(m.pendingExport)
					m.pendingExport = ""
				}
			default:
				m.mode = ModeNormal
				m.pendingExport = ""
			}
			return m, nil

		default:
			return m, m.handleToolKey(msg.String())
		}
	}
	return m, nil
}

func (m *model) exportTo(path string) {
	m.mode = ModeNormal
	w, h := m.surface.sourceSize()
	err := exportPNG(path, m.surface.source, int(w), int(h), m.session.Store().Boxes(), m.config.BoxColor)
	if err != nil {
		m.errorMessage = "Export failed: " + err.Error()
		m.successMessage = ""
		log.Printf("export %s: %v", path, err)
		return
	}
	m.successMessage = "Exported " + path
	m.errorMessage = ""
	m.filename = ""
}

var (
	headerStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(darkGrayColor)).Background(lipgloss.Color(lightGrayColor))
	menuStyle       = lipgloss.NewStyle().Width(sideMenuWidth).Foreground(lipgloss.Color(darkGrayColor)).Background(lipgloss.Color(lightGrayColor))
	menuActiveStyle = menuStyle.Copy().Bold(true).Background(lipgloss.Color(interactionColor))
	statusStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(darkGrayColor)).Background(lipgloss.Color(borderColor))
	errorStyle      = statusStyle.Copy().Foreground(lipgloss.Color("#c0392b"))
	successStyle    = statusStyle.Copy().Foreground(lipgloss.Color("#1e8449"))
	modalStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color(defaultSelectedColor)).Padding(1, 3)
)

func (m model) View() string {
	if m.help {
		return m.helpView()
	}
	if m.width < 1 || m.height < 1 {
		return ""
	}

	rows := m.height - headerHeight - statusHeight
	if rows < 0 {
		rows = 0
	}

	var content []string
	if m.notice.Active() {
		box := modalStyle.Render(m.notice.message + "\n\n(press any key)")
		placed := lipgloss.Place(m.width-sideMenuWidth, rows, lipgloss.Center, lipgloss.Center, box)
		content = strings.Split(placed, "\n")
	} else {
		var preview *label.Geometry
		if g, ok := m.session.Preview(); ok {
			preview = &g
		}
		content = m.surface.Render(m.session.Store().Boxes(), m.session.Selection(), preview, palette{
			box:      m.config.BoxColor,
			selected: m.config.SelectedColor,
			preview:  m.config.SelectedColor,
		})
	}

	var result strings.Builder
	result.WriteString(headerStyle.Width(m.width).Render(" Dataset Label"))
	for i := 0; i < rows; i++ {
		result.WriteString("\n")
		result.WriteString(m.menuCell(headerHeight + i))
		if i < len(content) {
			result.WriteString(content[i])
		}
	}
	result.WriteString("\n")
	result.WriteString(m.statusLine())
	return result.String()
}

func (m model) menuCell(row int) string {
	tool, ok := menuAt(0, row)
	if !ok {
		return menuStyle.Render("")
	}
	icon := "  ▭"
	if tool == label.ModeSelect {
		icon = "  ↖"
	}
	if tool == m.session.Mode() {
		return menuActiveStyle.Render(icon)
	}
	return menuStyle.Render(icon)
}

func (m model) statusLine() string {
	style := statusStyle
	var text string
	switch {
	case m.mode == ModeFileInput:
		text = "Export PNG as: " + m.filename + "█"
	case m.mode == ModeConfirm && m.confirmAction == ConfirmQuit:
		text = "Quit boxlabel? (y/n)"
	case m.mode == ModeConfirm && m.confirmAction == ConfirmOverwriteFile:
		text = m.pendingExport + " exists. Overwrite? (y/n)"
	case m.errorMessage != "":
		style = errorStyle
		text = m.modeString() + " | " + m.errorMessage
	case m.successMessage != "":
		style = successStyle
		text = m.modeString() + " | " + m.successMessage
	default:
		text = m.modeString() + " | ? for help"
	}
	return style.Width(m.width).MaxWidth(m.width).Render(text)
}

func (m model) modeString() string {
	s := m.session
	parts := []string{
		s.Mode().String(),
		fmt.Sprintf("boxes %d/%d", s.Store().Len(), s.Create().MaxBoxes()),
		fmt.Sprintf("selected %d", s.Selection().Len()),
	}
	if m.focus.focused {
		parts[0] += " ●"
	}
	if ref := s.ImageRef(); ref != "" {
		parts = append(parts, ref)
	} else {
		parts = append(parts, "no image")
	}
	return strings.Join(parts, " | ")
}

var helpLines = []string{
	"boxlabel Help",
	"=============",
	"",
	"Tools (side menu or keys):",
	"--------------------------",
	"  c                Create mode: drag on the image to draw a box",
	"  s                Select mode: press on a box to select it, drag to move it",
	"",
	"Boxes:",
	"------",
	"  The number of boxes is capped by max_boxes in ~/.boxlabelrc (default 5)",
	"  Selected boxes show handles on their corners",
	"",
	"Files:",
	"------",
	"  e                Export the image with boxes as PNG",
	"  y                Copy the boxes as JSON to the clipboard",
	"",
	"General:",
	"--------",
	"  Esc              Cancel the current drag",
	"  ?                Toggle this help screen",
	"  q/Ctrl+C         Quit",
}

func (m model) helpView() string {
	visible := m.height - 1
	if visible < 1 {
		visible = 1
	}
	end := m.helpScroll + visible
	if end > len(helpLines) {
		end = len(helpLines)
	}
	var b strings.Builder
	for _, line := range helpLines[m.helpScroll:end] {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("(j/k to scroll, any other key to close)")
	return b.String()
}
