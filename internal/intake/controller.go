package intake

import (
	"fmt"
	"strings"
)

// Controller advances intake sessions through the stage graph. It
// validates input per stage, mutates the session store, and returns the
// outbound requests for the gateway to execute; all branching lives here
// so the transport layer stays dumb.
type Controller struct {
	store  Store
	assets Assets
}

// NewController wires the controller to its session store and assets.
func NewController(store Store, assets Assets) *Controller {
	return &Controller{store: store, assets: assets}
}

// Result reports one processed event: the stage before and after, plus
// the effects to execute. Prev == Next means the input was rejected or
// ignored.
type Result struct {
	Prev    Stage
	Next    Stage
	Effects []Effect
}

func stay(stage Stage, effects ...Effect) Result {
	return Result{Prev: stage, Next: stage, Effects: effects}
}

// Advance processes a single inbound event for the given user.
func (c *Controller) Advance(userID int64, ev Event) Result {
	if ev.Kind == EventStart {
		return c.start(userID, ev)
	}

	sess, ok := c.store.Get(userID)
	if !ok {
		return Result{Effects: []Effect{SendText{Text: textStartFirst}}}
	}

	stage := sess.Stage
	if !stage.Accepts(ev.Kind) {
		return c.reprompt(userID, stage, sess)
	}

	switch stage {
	case StageConnect, StageNameRequest:
		return c.handleName(userID, stage, sess, ev)
	case StageConsent:
		return c.handleConsent(userID, ev)
	case StagePlatform:
		return c.handlePlatform(userID, sess, ev)
	case StageOrderNumberPrompt:
		return c.handleOrderPrompt(userID, sess, ev)
	case StageOrderNumber:
		return c.handleOrderNumber(userID, ev)
	case StageContact:
		return c.handleContact(userID, ev)
	case StageEmail:
		return c.handleEmail(userID, ev)
	case StageBirthday:
		return c.handleBirthday(userID, sess, ev)
	case StageFinal:
		return c.handleFinal(userID, sess, ev)
	case StageMainMenu:
		return c.handleMainMenu(userID, sess, ev)
	case StagePersonalCabinet:
		return c.handleCabinet(userID, sess, ev)
	}
	return stay(stage)
}

// start handles /start. A repeated start short-circuits to the main menu
// without touching previously collected fields.
func (c *Controller) start(userID int64, ev Event) Result {
	if sess, ok := c.store.Get(userID); ok {
		return c.mainMenu(userID, sess.Stage)
	}

	sess := &Session{
		Stage:    StageConnect,
		Name:     strings.TrimSpace(ev.FirstName),
		Category: CategoryFromCode(ev.Arg),
	}
	c.store.Put(userID, sess)

	return Result{Prev: StageConnect, Next: StageConnect, Effects: []Effect{
		SendText{Text: textWelcome, Keyboard: connectKeyboard()},
	}}
}

// reprompt answers an event of the wrong kind with the stage's own prompt
// and leaves the stage untouched.
func (c *Controller) reprompt(userID int64, stage Stage, sess *Session) Result {
	switch stage {
	case StageConnect:
		return stay(stage, SendText{Text: textWelcome, Keyboard: connectKeyboard()})
	case StageNameRequest:
		return stay(stage, SendText{Text: textNamePrompt})
	case StageConsent:
		return stay(stage, SendText{Text: textConsentPrompt, Menu: acceptMenu()})
	case StagePlatform:
		return stay(stage, SendText{Text: textChoosePlatform, Menu: c.assets.platformMenu()})
	case StageOrderNumberPrompt:
		return stay(stage, SendText{Text: textPlatformReady(sess.Platform), Menu: readyMenu()})
	case StageOrderNumber:
		return stay(stage, SendText{Text: textOrderPrompt})
	case StageContact:
		return stay(stage, SendText{Text: textContactOnly, Keyboard: contactKeyboard()})
	case StageEmail:
		return stay(stage, SendText{Text: textEmailPrompt, Keyboard: skipKeyboard()})
	case StageBirthday:
		return stay(stage, SendText{Text: textBirthdayPrompt})
	case StageFinal:
		return stay(stage, SendText{Text: textChangeInvalid})
	case StageMainMenu:
		return c.mainMenu(userID, stage)
	case StagePersonalCabinet:
		return c.cabinet(userID, stage, sess)
	}
	return stay(stage)
}

// handleName covers both Connect and NameRequest. On Connect the name
// under validation is the profile name captured at /start; the button
// text itself is not a name.
func (c *Controller) handleName(userID int64, stage Stage, sess *Session, ev Event) Result {
	name := sess.Name
	if stage == StageNameRequest {
		name = strings.TrimSpace(ev.Text)
		c.store.Update(userID, func(s *Session) { s.Name = name })
	}

	if !IsCyrillic(name) {
		c.store.Update(userID, func(s *Session) { s.Stage = StageNameRequest })
		return Result{Prev: stage, Next: StageNameRequest, Effects: []Effect{
			SendText{Text: textNamePrompt},
		}}
	}

	effects := make([]Effect, 0, 7)
	if intro := introFor(name, sess.Category); intro != "" {
		effects = append(effects, SendText{Text: intro, HTML: true})
	}
	effects = append(effects,
		SendText{Text: fmt.Sprintf(textSubscribe, categoryCase(sess.Category)), HTML: true},
		SendText{Text: textFriendship},
		SendText{Text: textQuestions},
		SendText{Text: textInfoUse, Keyboard: removeKeyboard()},
		SendDocument{Path: c.assets.ConsentDoc, Critical: true},
		SendText{Text: textConsentPrompt, Menu: acceptMenu()},
	)

	c.store.Update(userID, func(s *Session) { s.Stage = StageConsent })
	return Result{Prev: stage, Next: StageConsent, Effects: effects}
}

func (c *Controller) handleConsent(userID int64, ev Event) Result {
	if ev.Data != cbAccept {
		// Foreign payloads in the consent stage are ignored outright.
		return stay(StageConsent)
	}

	c.store.Update(userID, func(s *Session) { s.Stage = StagePlatform })
	return Result{Prev: StageConsent, Next: StagePlatform, Effects: []Effect{
		DeleteMessages{Refs: []MessageRef{ev.Ref}},
		SendText{Text: textConsentThanks, Menu: c.assets.platformMenu(), Critical: true},
	}}
}

func (c *Controller) handlePlatform(userID int64, sess *Session, ev Event) Result {
	name, ok := c.assets.PlatformName(ev.Data)
	if !ok {
		return stay(StagePlatform)
	}

	var effects []Effect
	if len(sess.Instructions) > 0 {
		effects = append(effects, DeleteMessages{Refs: append([]MessageRef(nil), sess.Instructions...)})
	}
	guides := c.assets.Guides[ev.Data]
	for _, g := range guides {
		switch g.Kind {
		case GuideVideo:
			effects = append(effects, SendVideo{Path: g.Path, Caption: g.Caption, Track: true})
		default:
			effects = append(effects, SendPhoto{Path: g.Path, Caption: g.Caption, Track: true})
		}
	}
	if len(guides) == 0 {
		effects = append(effects, SendText{Text: textNoInstructions, Track: true})
	}
	effects = append(effects, SendText{Text: textPlatformReady(name), Menu: readyMenu(), Track: true})

	c.store.Update(userID, func(s *Session) {
		s.Platform = name
		s.Instructions = nil
		s.Stage = StageOrderNumberPrompt
	})
	return Result{Prev: StagePlatform, Next: StageOrderNumberPrompt, Effects: effects}
}

func (c *Controller) handleOrderPrompt(userID int64, sess *Session, ev Event) Result {
	switch ev.Data {
	case cbSwitchToOrder:
		c.store.Update(userID, func(s *Session) { s.Stage = StageOrderNumber })
		return Result{Prev: StageOrderNumberPrompt, Next: StageOrderNumber, Effects: []Effect{
			SendText{Text: textOrderPrompt},
		}}
	case cbChoosePlatform:
		var effects []Effect
		if len(sess.Instructions) > 0 {
			effects = append(effects, DeleteMessages{Refs: append([]MessageRef(nil), sess.Instructions...)})
		}
		effects = append(effects, SendText{Text: textChoosePlatform, Menu: c.assets.platformMenu()})
		c.store.Update(userID, func(s *Session) {
			s.Instructions = nil
			s.Stage = StagePlatform
		})
		return Result{Prev: StageOrderNumberPrompt, Next: StagePlatform, Effects: effects}
	}
	return stay(StageOrderNumberPrompt)
}

func (c *Controller) handleOrderNumber(userID int64, ev Event) Result {
	c.store.Update(userID, func(s *Session) {
		s.OrderNumber = strings.TrimSpace(ev.Text)
		s.Stage = StageContact
	})
	return Result{Prev: StageOrderNumber, Next: StageContact, Effects: []Effect{
		SendText{Text: textContactNeeded},
		SendText{Text: textContactButton, Keyboard: contactKeyboard()},
	}}
}

func (c *Controller) handleContact(userID int64, ev Event) Result {
	c.store.Update(userID, func(s *Session) {
		s.Contact = ev.Phone
		s.Stage = StageEmail
	})
	return Result{Prev: StageContact, Next: StageEmail, Effects: []Effect{
		SendText{Text: textEmailPrompt, Keyboard: skipKeyboard()},
	}}
}

// handleEmail advances with the sentinel on the skip keyword no matter
// how many invalid attempts preceded it.
func (c *Controller) handleEmail(userID int64, ev Event) Result {
	input := strings.TrimSpace(ev.Text)

	var email string
	switch {
	case strings.EqualFold(input, labelSkip):
		email = NotProvided
	case IsEmail(input):
		email = input
	default:
		return stay(StageEmail, SendText{Text: textEmailInvalid})
	}

	c.store.Update(userID, func(s *Session) {
		s.Email = email
		s.Stage = StageBirthday
	})
	return Result{Prev: StageEmail, Next: StageBirthday, Effects: []Effect{
		SendText{Text: textBirthdayPrompt, Keyboard: removeKeyboard()},
	}}
}

func (c *Controller) handleBirthday(userID int64, sess *Session, ev Event) Result {
	input := strings.TrimSpace(ev.Text)
	if !IsBirthday(input) {
		return stay(StageBirthday, SendText{Text: textBirthdayInvalid})
	}

	c.store.Update(userID, func(s *Session) {
		s.Birthday = input
		s.Stage = StageFinal
	})
	return Result{Prev: StageBirthday, Next: StageFinal, Effects: []Effect{
		SendText{Text: textSummaryConfirm(FormatSummary(sess)), Menu: confirmMenu()},
	}}
}

// handleFinal routes the confirm/edit choices. The change_* payloads are
// the single sanctioned way to jump back into the linear flow.
func (c *Controller) handleFinal(userID int64, sess *Session, ev Event) Result {
	switch ev.Data {
	case cbConfirmYes, cbMainMenu:
		return c.mainMenu(userID, StageFinal)
	case cbPersonalCabinet:
		return c.cabinet(userID, StageFinal, sess)
	case cbConfirmNo:
		return stay(StageFinal, SendText{Text: textChangePrompt, Menu: changeMenu()})
	case cbChangeName:
		return c.jump(userID, StageNameRequest, SendText{Text: textNewName})
	case cbChangeCategory:
		return c.jump(userID, StageConnect, SendText{Text: textNewCategory})
	case cbChangePlatform:
		return c.jump(userID, StagePlatform, SendText{Text: textChoosePlatform, Menu: c.assets.platformMenu()})
	case cbChangeOrderNumber:
		return c.jump(userID, StageOrderNumber, SendText{Text: textNewOrder})
	case cbChangeContact:
		return c.jump(userID, StageContact, SendText{Text: textContactNeeded, Keyboard: contactKeyboard()})
	case cbChangeEmail:
		return c.jump(userID, StageEmail, SendText{Text: textEmailPrompt, Keyboard: skipKeyboard()})
	case cbChangeBirthday:
		return c.jump(userID, StageBirthday, SendText{Text: textBirthdayPrompt})
	}
	return stay(StageFinal)
}

func (c *Controller) jump(userID int64, to Stage, effects ...Effect) Result {
	c.store.Update(userID, func(s *Session) { s.Stage = to })
	return Result{Prev: StageFinal, Next: to, Effects: effects}
}

func (c *Controller) handleMainMenu(userID int64, sess *Session, ev Event) Result {
	switch ev.Data {
	case cbPersonalCabinet:
		return c.cabinet(userID, StageMainMenu, sess)
	case cbMainMenu:
		return c.mainMenu(userID, StageMainMenu)
	}
	return stay(StageMainMenu)
}

func (c *Controller) handleCabinet(userID int64, sess *Session, ev Event) Result {
	if ev.Data == cbMainMenu {
		return c.mainMenu(userID, StagePersonalCabinet)
	}
	return stay(StagePersonalCabinet)
}

func (c *Controller) mainMenu(userID int64, prev Stage) Result {
	c.store.Update(userID, func(s *Session) { s.Stage = StageMainMenu })
	return Result{Prev: prev, Next: StageMainMenu, Effects: []Effect{
		SendText{Text: textMainMenu, Menu: mainMenuMenu()},
	}}
}

func (c *Controller) cabinet(userID int64, prev Stage, sess *Session) Result {
	c.store.Update(userID, func(s *Session) { s.Stage = StagePersonalCabinet })
	return Result{Prev: prev, Next: StagePersonalCabinet, Effects: []Effect{
		SendText{Text: textCabinet(FormatSummary(sess)), Menu: cabinetMenu()},
	}}
}

func connectKeyboard() *ReplyKeyboard {
	return &ReplyKeyboard{Buttons: []string{labelConnect}}
}

func contactKeyboard() *ReplyKeyboard {
	return &ReplyKeyboard{Buttons: []string{labelShareContact}, RequestContact: true}
}

func skipKeyboard() *ReplyKeyboard {
	return &ReplyKeyboard{Buttons: []string{labelSkip}}
}

func removeKeyboard() *ReplyKeyboard {
	return &ReplyKeyboard{Remove: true}
}

func acceptMenu() *Menu {
	return &Menu{Rows: [][]Button{{{Label: labelAccept, Data: cbAccept}}}}
}

func readyMenu() *Menu {
	return &Menu{Rows: [][]Button{
		{{Label: labelYes, Data: cbSwitchToOrder}},
		{{Label: labelBack, Data: cbChoosePlatform}},
	}}
}

func confirmMenu() *Menu {
	return &Menu{Rows: [][]Button{
		{{Label: labelYes, Data: cbConfirmYes}},
		{{Label: labelNo, Data: cbConfirmNo}},
	}}
}

func changeMenu() *Menu {
	return &Menu{Rows: [][]Button{
		{{Label: labelFieldName, Data: cbChangeName}},
		{{Label: labelFieldCategory, Data: cbChangeCategory}},
		{{Label: labelFieldPlatform, Data: cbChangePlatform}},
		{{Label: labelFieldOrder, Data: cbChangeOrderNumber}},
		{{Label: labelFieldContact, Data: cbChangeContact}},
		{{Label: labelFieldEmail, Data: cbChangeEmail}},
		{{Label: labelFieldBirthday, Data: cbChangeBirthday}},
		{{Label: labelBack, Data: cbPersonalCabinet}},
	}}
}

func mainMenuMenu() *Menu {
	return &Menu{Rows: [][]Button{{{Label: labelCabinet, Data: cbPersonalCabinet}}}}
}

func cabinetMenu() *Menu {
	return &Menu{Rows: [][]Button{{{Label: labelMainMenu, Data: cbMainMenu}}}}
}
