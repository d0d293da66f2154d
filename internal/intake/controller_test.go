package intake

import (
	"strings"
	"testing"
)

func testAssets() Assets {
	return Assets{
		ConsentDoc: "documents/soglasie.pdf",
		Platforms: []PlatformOption{
			{Code: "ozon", Name: "Ozon"},
			{Code: "wildberries", Name: "Wildberries"},
		},
		Guides: map[string][]Guide{
			"ozon": {
				{Kind: GuidePhoto, Path: "media/ozon1.jpg", Caption: "Шаг 1"},
				{Kind: GuideVideo, Path: "media/ozon2.mp4", Caption: "Шаг 2"},
			},
		},
	}
}

func newTestController() (*Controller, Store) {
	store := NewMemoryStore()
	return NewController(store, testAssets()), store
}

func firstText(t *testing.T, effects []Effect) SendText {
	t.Helper()
	for _, e := range effects {
		if st, ok := e.(SendText); ok {
			return st
		}
	}
	t.Fatalf("no SendText among %d effects", len(effects))
	return SendText{}
}

func TestStartCreatesSession(t *testing.T) {
	ctrl, store := newTestController()

	res := ctrl.Advance(1, Event{Kind: EventStart, Arg: "blanket", FirstName: "Иван"})
	if res.Next != StageConnect {
		t.Fatalf("stage = %s, want %s", res.Next, StageConnect)
	}
	sess, ok := store.Get(1)
	if !ok {
		t.Fatal("session not created")
	}
	if sess.Name != "Иван" || sess.Category != "Пледы" {
		t.Fatalf("session = %+v", sess)
	}
	st := firstText(t, res.Effects)
	if st.Keyboard == nil || len(st.Keyboard.Buttons) != 1 {
		t.Fatalf("expected connect keyboard, got %+v", st.Keyboard)
	}
}

func TestStartUnknownCategory(t *testing.T) {
	ctrl, store := newTestController()

	ctrl.Advance(1, Event{Kind: EventStart, Arg: "pillow", FirstName: "Анна"})
	sess, _ := store.Get(1)
	if sess.Category != CategoryUnknown {
		t.Fatalf("category = %q, want %q", sess.Category, CategoryUnknown)
	}
}

func TestRepeatedStartKeepsCollectedData(t *testing.T) {
	ctrl, store := newTestController()

	ctrl.Advance(1, Event{Kind: EventStart, Arg: "towel", FirstName: "Мария"})
	store.Update(1, func(s *Session) {
		s.Stage = StageEmail
		s.OrderNumber = "12345"
	})

	res := ctrl.Advance(1, Event{Kind: EventStart, Arg: "blanket", FirstName: "Мария"})
	if res.Next != StageMainMenu {
		t.Fatalf("stage = %s, want %s", res.Next, StageMainMenu)
	}
	sess, _ := store.Get(1)
	if sess.OrderNumber != "12345" || sess.Category != "Полотенца" {
		t.Fatalf("repeated /start must not reset fields: %+v", sess)
	}
}

func TestTextBeforeStart(t *testing.T) {
	ctrl, _ := newTestController()

	res := ctrl.Advance(1, Event{Kind: EventText, Text: "привет"})
	if res.Prev != "" || res.Next != "" {
		t.Fatalf("unexpected transition: %+v", res)
	}
	st := firstText(t, res.Effects)
	if !strings.Contains(st.Text, "/start") {
		t.Fatalf("expected /start hint, got %q", st.Text)
	}
}

func TestConnectRejectsNonCyrillicProfileName(t *testing.T) {
	ctrl, store := newTestController()

	ctrl.Advance(1, Event{Kind: EventStart, Arg: "towel", FirstName: "John"})
	res := ctrl.Advance(1, Event{Kind: EventText, Text: labelConnect})
	if res.Next != StageNameRequest {
		t.Fatalf("stage = %s, want %s", res.Next, StageNameRequest)
	}
	sess, _ := store.Get(1)
	if sess.Stage != StageNameRequest {
		t.Fatalf("stored stage = %s", sess.Stage)
	}
}

func TestNameAcceptedStartsConsentSequence(t *testing.T) {
	ctrl, store := newTestController()

	ctrl.Advance(1, Event{Kind: EventStart, Arg: "towel", FirstName: "John"})
	ctrl.Advance(1, Event{Kind: EventText, Text: labelConnect})
	res := ctrl.Advance(1, Event{Kind: EventText, Text: "Иван"})

	if res.Next != StageConsent {
		t.Fatalf("stage = %s, want %s", res.Next, StageConsent)
	}
	sess, _ := store.Get(1)
	if sess.Name != "Иван" {
		t.Fatalf("name = %q", sess.Name)
	}

	var doc *SendDocument
	for _, e := range res.Effects {
		if d, ok := e.(SendDocument); ok {
			doc = &d
		}
	}
	if doc == nil || !doc.Critical {
		t.Fatalf("expected critical consent document, got %+v", doc)
	}

	// The intro for a known category is HTML-formatted.
	st := firstText(t, res.Effects)
	if !st.HTML || !strings.Contains(st.Text, "Иван") {
		t.Fatalf("unexpected intro: %+v", st)
	}
}

func TestUnknownCategorySkipsIntro(t *testing.T) {
	ctrl, _ := newTestController()

	ctrl.Advance(1, Event{Kind: EventStart, Arg: "pillow", FirstName: "Иван"})
	res := ctrl.Advance(1, Event{Kind: EventText, Text: labelConnect})

	st := firstText(t, res.Effects)
	if strings.Contains(st.Text, CategoryUnknown) {
		t.Fatalf("intro must be skipped for unknown category, got %q", st.Text)
	}
}

func TestConsentAccept(t *testing.T) {
	ctrl, store := newTestController()
	seedStage(ctrl, store, StageConsent)

	ref := MessageRef{ChatID: 10, MessageID: 77}
	res := ctrl.Advance(1, Event{Kind: EventCallback, Data: "accept", Ref: ref})
	if res.Next != StagePlatform {
		t.Fatalf("stage = %s, want %s", res.Next, StagePlatform)
	}

	del, ok := res.Effects[0].(DeleteMessages)
	if !ok || len(del.Refs) != 1 || del.Refs[0] != ref {
		t.Fatalf("expected consent prompt deletion, got %+v", res.Effects[0])
	}
	st := firstText(t, res.Effects)
	if !st.Critical || st.Menu == nil {
		t.Fatalf("platform prompt must be critical with menu: %+v", st)
	}
}

func TestConsentIgnoresForeignPayload(t *testing.T) {
	ctrl, store := newTestController()
	seedStage(ctrl, store, StageConsent)

	res := ctrl.Advance(1, Event{Kind: EventCallback, Data: "confirm_yes"})
	if res.Next != StageConsent || len(res.Effects) != 0 {
		t.Fatalf("foreign payload must be ignored: %+v", res)
	}
}

func TestPlatformChoiceDeliversGuides(t *testing.T) {
	ctrl, store := newTestController()
	seedStage(ctrl, store, StagePlatform)

	res := ctrl.Advance(1, Event{Kind: EventCallback, Data: "ozon"})
	if res.Next != StageOrderNumberPrompt {
		t.Fatalf("stage = %s, want %s", res.Next, StageOrderNumberPrompt)
	}
	sess, _ := store.Get(1)
	if sess.Platform != "Ozon" {
		t.Fatalf("platform = %q", sess.Platform)
	}

	var photos, videos int
	for _, e := range res.Effects {
		switch e.(type) {
		case SendPhoto:
			photos++
		case SendVideo:
			videos++
		}
	}
	if photos != 1 || videos != 1 {
		t.Fatalf("guides: %d photos, %d videos", photos, videos)
	}
}

func TestPlatformWithoutGuides(t *testing.T) {
	ctrl, store := newTestController()
	seedStage(ctrl, store, StagePlatform)

	res := ctrl.Advance(1, Event{Kind: EventCallback, Data: "wildberries"})
	st := firstText(t, res.Effects)
	if st.Text != textNoInstructions {
		t.Fatalf("expected no-instructions notice, got %q", st.Text)
	}
}

func TestPlatformUnknownCode(t *testing.T) {
	ctrl, store := newTestController()
	seedStage(ctrl, store, StagePlatform)

	res := ctrl.Advance(1, Event{Kind: EventCallback, Data: "aliexpress"})
	if res.Next != StagePlatform || len(res.Effects) != 0 {
		t.Fatalf("unknown platform must be a silent no-op: %+v", res)
	}
}

func TestPlatformReselectionDeletesOldInstructions(t *testing.T) {
	ctrl, store := newTestController()
	seedStage(ctrl, store, StageOrderNumberPrompt)
	store.Update(1, func(s *Session) {
		s.Instructions = []MessageRef{{ChatID: 10, MessageID: 1}, {ChatID: 10, MessageID: 2}}
	})

	res := ctrl.Advance(1, Event{Kind: EventCallback, Data: "choose_platform"})
	if res.Next != StagePlatform {
		t.Fatalf("stage = %s, want %s", res.Next, StagePlatform)
	}
	del, ok := res.Effects[0].(DeleteMessages)
	if !ok || len(del.Refs) != 2 {
		t.Fatalf("expected deletion of 2 instruction messages, got %+v", res.Effects[0])
	}
	sess, _ := store.Get(1)
	if len(sess.Instructions) != 0 {
		t.Fatalf("instructions must be cleared, got %d", len(sess.Instructions))
	}
}

func TestOrderNumberAdvancesToContact(t *testing.T) {
	ctrl, store := newTestController()
	seedStage(ctrl, store, StageOrderNumber)

	res := ctrl.Advance(1, Event{Kind: EventText, Text: " 12345 "})
	if res.Next != StageContact {
		t.Fatalf("stage = %s, want %s", res.Next, StageContact)
	}
	sess, _ := store.Get(1)
	if sess.OrderNumber != "12345" {
		t.Fatalf("order number = %q", sess.OrderNumber)
	}
}

func TestContactStageRejectsFreeText(t *testing.T) {
	ctrl, store := newTestController()
	seedStage(ctrl, store, StageContact)

	res := ctrl.Advance(1, Event{Kind: EventText, Text: "+79991234567"})
	if res.Next != StageContact {
		t.Fatalf("typed phone must not advance: %+v", res)
	}
	st := firstText(t, res.Effects)
	if st.Text != textContactOnly {
		t.Fatalf("expected contact-button reminder, got %q", st.Text)
	}
	sess, _ := store.Get(1)
	if sess.Contact != "" {
		t.Fatalf("contact must stay empty, got %q", sess.Contact)
	}
}

func TestEmailSkipAfterInvalidAttempts(t *testing.T) {
	ctrl, store := newTestController()
	seedStage(ctrl, store, StageEmail)

	for i := 0; i < 3; i++ {
		res := ctrl.Advance(1, Event{Kind: EventText, Text: "not-an-email"})
		if res.Next != StageEmail {
			t.Fatalf("invalid email must not advance: %+v", res)
		}
	}

	res := ctrl.Advance(1, Event{Kind: EventText, Text: "пропустить"})
	if res.Next != StageBirthday {
		t.Fatalf("skip must always advance: %+v", res)
	}
	sess, _ := store.Get(1)
	if sess.Email != NotProvided {
		t.Fatalf("email = %q, want %q", sess.Email, NotProvided)
	}
}

func TestBirthdayValidation(t *testing.T) {
	ctrl, store := newTestController()
	seedStage(ctrl, store, StageBirthday)

	res := ctrl.Advance(1, Event{Kind: EventText, Text: "1990-06-15"})
	if res.Next != StageBirthday {
		t.Fatalf("invalid date must not advance: %+v", res)
	}

	res = ctrl.Advance(1, Event{Kind: EventText, Text: "15.06.1990"})
	if res.Next != StageFinal {
		t.Fatalf("stage = %s, want %s", res.Next, StageFinal)
	}
	st := firstText(t, res.Effects)
	if !strings.Contains(st.Text, "Дата рождения: 15.06.1990") {
		t.Fatalf("summary missing birthday: %q", st.Text)
	}
}

func TestFinalChangeJumps(t *testing.T) {
	cases := map[string]Stage{
		"change_name":         StageNameRequest,
		"change_category":     StageConnect,
		"change_platform":     StagePlatform,
		"change_order_number": StageOrderNumber,
		"change_contact":      StageContact,
		"change_email":        StageEmail,
		"change_birthday":     StageBirthday,
	}
	for payload, want := range cases {
		ctrl, store := newTestController()
		seedStage(ctrl, store, StageFinal)

		res := ctrl.Advance(1, Event{Kind: EventCallback, Data: payload})
		if res.Next != want {
			t.Fatalf("%s: stage = %s, want %s", payload, res.Next, want)
		}
	}
}

func TestFinalConfirmAndMenus(t *testing.T) {
	ctrl, store := newTestController()
	seedStage(ctrl, store, StageFinal)

	res := ctrl.Advance(1, Event{Kind: EventCallback, Data: "confirm_no"})
	if res.Next != StageFinal {
		t.Fatalf("confirm_no must stay on final: %+v", res)
	}
	st := firstText(t, res.Effects)
	if st.Menu == nil || len(st.Menu.Rows) != 8 {
		t.Fatalf("expected change menu with 8 rows, got %+v", st.Menu)
	}

	res = ctrl.Advance(1, Event{Kind: EventCallback, Data: "confirm_yes"})
	if res.Next != StageMainMenu {
		t.Fatalf("stage = %s, want %s", res.Next, StageMainMenu)
	}

	res = ctrl.Advance(1, Event{Kind: EventCallback, Data: "personal_cabinet"})
	if res.Next != StagePersonalCabinet {
		t.Fatalf("stage = %s, want %s", res.Next, StagePersonalCabinet)
	}
	st = firstText(t, res.Effects)
	if !strings.Contains(st.Text, "Ваши данные:") {
		t.Fatalf("cabinet text = %q", st.Text)
	}

	res = ctrl.Advance(1, Event{Kind: EventCallback, Data: "main_menu"})
	if res.Next != StageMainMenu {
		t.Fatalf("stage = %s, want %s", res.Next, StageMainMenu)
	}
}

func TestFullIntakeWalk(t *testing.T) {
	ctrl, store := newTestController()

	steps := []struct {
		ev   Event
		want Stage
	}{
		{Event{Kind: EventStart, Arg: "bed_linen", FirstName: "Иван"}, StageConnect},
		{Event{Kind: EventText, Text: labelConnect}, StageConsent},
		{Event{Kind: EventCallback, Data: "accept"}, StagePlatform},
		{Event{Kind: EventCallback, Data: "ozon"}, StageOrderNumberPrompt},
		{Event{Kind: EventCallback, Data: "switch_state_to_order"}, StageOrderNumber},
		{Event{Kind: EventText, Text: "12345"}, StageContact},
		{Event{Kind: EventContact, Phone: "+79991234567"}, StageEmail},
		{Event{Kind: EventText, Text: labelSkip}, StageBirthday},
		{Event{Kind: EventText, Text: "15.06.1990"}, StageFinal},
	}

	for i, step := range steps {
		res := ctrl.Advance(1, step.ev)
		if res.Next != step.want {
			t.Fatalf("step %d (%s): stage = %s, want %s", i, step.ev.Kind, res.Next, step.want)
		}
	}

	sess, _ := store.Get(1)
	summary := FormatSummary(sess)
	for _, line := range []string{
		"Имя: Иван",
		"Категория: Постельное белье",
		"Площадка: Ozon",
		"Номер заказа: 12345",
		"Контакт: +79991234567",
		"Email: Не указано",
		"Дата рождения: 15.06.1990",
	} {
		if !strings.Contains(summary, line) {
			t.Fatalf("summary missing %q:\n%s", line, summary)
		}
	}
}

// seedStage drives a session to exist and pins it at the given stage.
func seedStage(ctrl *Controller, store Store, stage Stage) {
	ctrl.Advance(1, Event{Kind: EventStart, Arg: "bed_linen", FirstName: "Иван"})
	store.Update(1, func(s *Session) { s.Stage = stage })
}
