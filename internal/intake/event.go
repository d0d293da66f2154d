package intake

// EventKind classifies inbound updates routed into the controller.
type EventKind string

const (
	// EventStart is the /start command, optionally carrying a category code.
	EventStart EventKind = "start"
	// EventText is a free-text message.
	EventText EventKind = "text"
	// EventCallback is an inline button press with an opaque payload.
	EventCallback EventKind = "callback"
	// EventContact is a shared-contact payload.
	EventContact EventKind = "contact"
)

// Event is a single inbound update, already stripped of transport details.
type Event struct {
	Kind EventKind

	// Text holds the message body for EventText.
	Text string
	// Data holds the callback payload for EventCallback.
	Data string
	// Ref identifies the message that hosted the pressed button.
	Ref MessageRef
	// Arg is the deep-link category code carried by EventStart.
	Arg string
	// FirstName is the sender's profile name, used on first contact.
	FirstName string
	// Phone is the number from an EventContact payload.
	Phone string
}

// Callback payloads understood by the controller. The menus it emits use
// the same values, so the set is closed.
const (
	cbAccept          = "accept"
	cbConfirmYes      = "confirm_yes"
	cbConfirmNo       = "confirm_no"
	cbMainMenu        = "main_menu"
	cbPersonalCabinet = "personal_cabinet"
	cbSwitchToOrder   = "switch_state_to_order"
	cbChoosePlatform  = "choose_platform"

	cbChangeName        = "change_name"
	cbChangeCategory    = "change_category"
	cbChangePlatform    = "change_platform"
	cbChangeOrderNumber = "change_order_number"
	cbChangeContact     = "change_contact"
	cbChangeEmail       = "change_email"
	cbChangeBirthday    = "change_birthday"
)
