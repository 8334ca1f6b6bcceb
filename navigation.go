package main

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"boxlabel/internal/label"
	"boxlabel/internal/pointer"
)

// handleMouse turns a terminal mouse report into pointer events. Presses are
// captured directly by the session; everything else goes through the bridge
// targets.
func (m *model) handleMouse(msg tea.MouseMsg) {
	if m.notice.Active() {
		if msg.Action == tea.MouseActionPress {
			m.notice.Dismiss()
		}
		return
	}
	if m.help || m.mode != ModeNormal {
		return
	}

	x, y := m.surface.clientPoint(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		if tool, ok := menuAt(msg.X, msg.Y); ok {
			m.switchTool(tool)
			return
		}
		if !m.surface.inArea(msg.X, msg.Y) {
			return
		}
		ev := pointer.Event{Kind: pointer.Down, ClientX: x, ClientY: y}
		m.lastPointer = ev
		m.errorMessage = ""
		m.successMessage = ""
		if err := m.session.PointerDown(ev); err != nil {
			log.Printf("pointerdown: %v", err)
		}
	case tea.MouseActionMotion:
		m.dispatch(pointer.Event{Kind: pointer.Move, ClientX: x, ClientY: y})
	case tea.MouseActionRelease:
		m.dispatch(pointer.Event{Kind: pointer.Up, ClientX: x, ClientY: y})
	}
}

// menuAt maps a screen cell to a side menu button.
func menuAt(col, row int) (label.Mode, bool) {
	if col >= sideMenuWidth {
		return 0, false
	}
	switch row {
	case menuCreateRow:
		return label.ModeCreate, true
	case menuSelectRow:
		return label.ModeSelect, true
	}
	return 0, false
}

func (m *model) switchTool(tool label.Mode) {
	if tool == m.session.Mode() {
		return
	}
	m.cancelGesture()
	m.session.SetMode(tool)
	m.focus.Blur()
}

// handleToolKey handles editor shortcuts in normal mode.
func (m *model) handleToolKey(key string) tea.Cmd {
	switch key {
	case "c":
		m.switchTool(label.ModeCreate)
	case "s":
		m.switchTool(label.ModeSelect)
	case "e":
		m.cancelGesture()
		m.mode = ModeFileInput
		m.fileOp = FileOpExportPNG
		m.filename = ""
		m.errorMessage = ""
		m.successMessage = ""
	case "y":
		if err := copyBoxesToClipboard(m.session.Store().Boxes()); err != nil {
			m.errorMessage = "Copy failed: " + err.Error()
			m.successMessage = ""
		} else {
			m.successMessage = "Boxes copied to clipboard"
			m.errorMessage = ""
		}
	case "esc":
		m.cancelGesture()
		m.focus.Blur()
	case "?":
		m.help = true
		m.helpScroll = 0
	case "q", "ctrl+c":
		if m.config.Confirmations {
			m.cancelGesture()
			m.mode = ModeConfirm
			m.confirmAction = ConfirmQuit
			return nil
		}
		return tea.Quit
	}
	return nil
}
