package component

// Mode names the top-level state the session is in.
type Mode int

const (
	ModeMainMenu Mode = iota
	ModeBuild
	ModePlay
)

func (m Mode) String() string {
	switch m {
	case ModeBuild:
		return "build"
	case ModePlay:
		return "play"
	}
	return "main_menu"
}
