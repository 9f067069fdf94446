package model

// DisplayMode is what the watch screen is currently showing.
type DisplayMode int

const (
	ModeNormal DisplayMode = iota
	ModeHelp
	ModeLoading
)

// InteractionState represents the current UI interaction state
type InteractionState struct {
	ShowHelp       bool
	LayoutStyle    int // 0: grid, 1: list
	IsLoading      bool
	LoadingMessage string
	StatusMessage  string
}

// Mode picks the display mode, help taking priority over loading.
func (s InteractionState) Mode() DisplayMode {
	if s.ShowHelp {
		return ModeHelp
	}
	if s.IsLoading {
		return ModeLoading
	}
	return ModeNormal
}
