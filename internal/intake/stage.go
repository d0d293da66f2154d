// Package intake implements the scripted customer intake conversation:
// the stage registry, input validators, the per-user session store, the
// conversation controller, and the summary formatter. The controller is
// free of I/O — it returns outbound effect requests that the Telegram
// gateway layer executes.
package intake

// Stage identifies a step of the intake conversation.
type Stage string

const (
	// StageConnect waits for the user to press the connect reply button.
	StageConnect Stage = "connect"
	// StageNameRequest collects a replacement display name after the
	// profile name failed the Cyrillic check.
	StageNameRequest Stage = "name_request"
	// StageConsent waits for the data-processing consent to be accepted.
	StageConsent Stage = "consent"
	// StagePlatform waits for the purchase platform choice.
	StagePlatform Stage = "platform"
	// StageOrderNumberPrompt waits for the readiness confirmation after
	// the platform instructions were delivered.
	StageOrderNumberPrompt Stage = "order_number_prompt"
	// StageOrderNumber collects the order number as free text.
	StageOrderNumber Stage = "order_number"
	// StageContact collects the phone number via a shared contact.
	StageContact Stage = "contact"
	// StageEmail collects an email address or the skip keyword.
	StageEmail Stage = "email"
	// StageBirthday collects the birth date in DD.MM.YYYY form.
	StageBirthday Stage = "birthday"
	// StageFinal shows the summary and waits for confirm/edit choices.
	StageFinal Stage = "final"
	// StageMainMenu is the post-intake navigation hub.
	StageMainMenu Stage = "main_menu"
	// StagePersonalCabinet shows the collected data with a way back.
	StagePersonalCabinet Stage = "personal_cabinet"
)

// accepts declares the single event kind each stage consumes. An event of
// any other kind is answered with the stage's re-prompt and no transition.
var accepts = map[Stage]EventKind{
	StageConnect:           EventText,
	StageNameRequest:       EventText,
	StageConsent:           EventCallback,
	StagePlatform:          EventCallback,
	StageOrderNumberPrompt: EventCallback,
	StageOrderNumber:       EventText,
	StageContact:           EventContact,
	StageEmail:             EventText,
	StageBirthday:          EventText,
	StageFinal:             EventCallback,
	StageMainMenu:          EventCallback,
	StagePersonalCabinet:   EventCallback,
}

// Accepts reports whether the stage consumes the given event kind.
func (s Stage) Accepts(k EventKind) bool {
	return accepts[s] == k
}
