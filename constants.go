package main

type Mode int

const (
	ModeNormal Mode = iota
	ModeFileInput
	ModeConfirm
)

type FileOperation int

const (
	FileOpExportPNG FileOperation = iota
)

type ConfirmAction int

const (
	ConfirmQuit ConfirmAction = iota
	ConfirmOverwriteFile
)

const (
	headerHeight  = 1
	statusHeight  = 1
	sideMenuWidth = 6
	menuCreateRow = 2 // screen rows of the side menu buttons
	menuSelectRow = 4
)

const (
	defaultBoxColor      = "#2f80ed"
	defaultSelectedColor = "#f2994a"
	borderColor          = "#d0d4da"
	interactionColor     = "#dbe4f0"
	lightGrayColor       = "#f5f6f8"
	darkGrayColor        = "#3c4048"
	emptySurfaceColor    = "#1e1f24"
	exportBorderWidth    = 3.0
)
