package main

import (
	"encoding/json"
	"fmt"
	"image/color"
	"log"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/lucasb-eyer/go-colorful"

	"boxlabel/internal/label"
	"boxlabel/internal/pointer"
)

// focusState records whether the interactive container holds keyboard focus.
type focusState struct {
	focused bool
}

func (f *focusState) Focus() { f.focused = true }
func (f *focusState) Blur() { f.focused = false }

// notice is the blocking message box. While message is set the editor
// ignores all other input.
type notice struct {
	message string
}

func (n *notice) Notify(message string) { n.message = message }
func (n *notice) Active() bool { return n.message != "" }
func (n *notice) Dismiss() { n.message = "" }

// dispatch delivers a bridged event to the container and the document.
func (m *model) dispatch(ev pointer.Event) {
	m.lastPointer = ev
	for _, target := range []*pointer.Dispatcher{m.element, m.document} {
		if err := target.Dispatch(ev); err != nil {
			log.Printf("%s %s: %v", target.Name(), ev.Kind, err)
		}
	}
}

// cancelGesture ends an open gesture at the last known pointer position.
func (m *model) cancelGesture() {
	if err := m.session.Cancel(m.lastPointer); err != nil {
		log.Printf("%s: %v", pointer.Cancel, err)
	}
}

// boxesJSON serializes the non-degenerate boxes for the clipboard.
func boxesJSON(boxes []label.Box) (string, error) {
	data, err := json.MarshalIndent(label.NonDegenerate(boxes), "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode boxes: %w", err)
	}
	return string(data), nil
}

func copyBoxesToClipboard(boxes []label.Box) error {
	text, err := boxesJSON(boxes)
	if err != nil {
		return err
	}
	return clipboard.WriteAll(text)
}

func parseHexColor(hex string) color.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		c, _ = colorful.Hex(defaultBoxColor)
	}
	return c
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func pngName(name string) string {
	name = strings.TrimSpace(name)
	if !strings.HasSuffix(strings.ToLower(name), ".png") {
		name += ".png"
	}
	return name
}
