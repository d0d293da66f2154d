package intake

// MessageRef identifies a previously sent message so the gateway can
// delete it later. Both fields come from the transport and are opaque to
// the controller.
type MessageRef struct {
	ChatID    int64
	MessageID int
}

// Button is one (label, payload) pair of an inline menu.
type Button struct {
	Label string
	Data  string
}

// Menu is an ordered inline keyboard, one slice per row.
type Menu struct {
	Rows [][]Button
}

// ReplyKeyboard describes a one-time reply keyboard shown under the input
// field, or the removal of whatever keyboard is currently open.
type ReplyKeyboard struct {
	Buttons        []string
	RequestContact bool
	Remove         bool
}

// Effect is a single outbound request produced by the controller for the
// gateway to execute. The controller never performs network calls itself.
type Effect interface{ effect() }

// SendText requests a text message, optionally with rich formatting and a
// keyboard. Critical sends roll the transition back on failure; tracked
// sends are remembered in the session for later deletion.
type SendText struct {
	Text     string
	HTML     bool
	Menu     *Menu
	Keyboard *ReplyKeyboard
	Critical bool
	Track    bool
}

// SendPhoto requests delivery of a local photo asset.
type SendPhoto struct {
	Path    string
	Caption string
	Track   bool
}

// SendVideo requests delivery of a local video asset.
type SendVideo struct {
	Path    string
	Caption string
	Track   bool
}

// SendDocument requests delivery of a local document asset.
type SendDocument struct {
	Path     string
	Caption  string
	Critical bool
}

// DeleteMessages requests best-effort removal of previously sent messages.
type DeleteMessages struct {
	Refs []MessageRef
}

func (SendText) effect()       {}
func (SendPhoto) effect()      {}
func (SendVideo) effect()      {}
func (SendDocument) effect()   {}
func (DeleteMessages) effect() {}
