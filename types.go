package main

import (
	"boxlabel/internal/label"
	"boxlabel/internal/pointer"
)

type model struct {
	width          int
	height         int
	mode           Mode
	help           bool
	helpScroll     int
	session        *label.Session
	surface        *imageSurface
	element        *pointer.Dispatcher
	document       *pointer.Dispatcher
	focus          *focusState
	notice         *notice
	lastPointer    pointer.Event
	filename       string
	fileOp         FileOperation
	confirmAction  ConfirmAction
	pendingExport  string
	errorMessage   string
	successMessage string
	config         *Config
}
