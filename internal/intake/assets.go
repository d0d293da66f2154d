package intake

// GuideKind selects how an instruction asset is delivered.
type GuideKind string

const (
	// GuidePhoto is a JPEG/PNG screenshot instruction.
	GuidePhoto GuideKind = "photo"
	// GuideVideo is a short screen-recording instruction.
	GuideVideo GuideKind = "video"
)

// Guide is one instructional asset shown after a platform is chosen.
type Guide struct {
	Kind    GuideKind
	Path    string
	Caption string
}

// PlatformOption declares a selectable purchase platform.
type PlatformOption struct {
	// Code is the opaque callback payload for the platform button.
	Code string
	// Name is the displayed platform name stored in the session.
	Name string
}

// Assets wires local media paths and platform declarations into the
// controller. All paths are local files handed to the gateway as-is.
type Assets struct {
	// ConsentDoc is the data-processing consent PDF.
	ConsentDoc string
	// Platforms is the ordered list of selectable platforms.
	Platforms []PlatformOption
	// Guides holds per-platform instruction assets, keyed by Code.
	Guides map[string][]Guide
}

// PlatformName resolves a callback code to the platform display name.
func (a Assets) PlatformName(code string) (string, bool) {
	for _, p := range a.Platforms {
		if p.Code == code {
			return p.Name, true
		}
	}
	return "", false
}

func (a Assets) platformMenu() *Menu {
	rows := make([][]Button, 0, len(a.Platforms))
	for _, p := range a.Platforms {
		rows = append(rows, []Button{{Label: p.Name, Data: p.Code}})
	}
	return &Menu{Rows: rows}
}
