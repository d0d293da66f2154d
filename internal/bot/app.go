// Package bot binds the intake conversation controller to the Telegram
// transport: it routes updates into controller events and executes the
// resulting effects.
package bot

import (
	"log/slog"
	"strings"
	"time"

	coreconfig "github.com/mirrorsleep/customerbot/core/config"
	"github.com/mirrorsleep/customerbot/core/logger"
	coretelegram "github.com/mirrorsleep/customerbot/core/telegram"
	"github.com/mirrorsleep/customerbot/core/telegram/callbacks"
	tghelpers "github.com/mirrorsleep/customerbot/core/telegram/helpers"
	"github.com/mirrorsleep/customerbot/core/telegram/middleware"
	"github.com/mirrorsleep/customerbot/internal/intake"

	tele "gopkg.in/telebot.v4"
)

// App owns the session store and controller for one bot process.
type App struct {
	cfg   *coreconfig.Config
	store intake.Store
	ctrl  *intake.Controller
}

// New builds the application from configuration.
func New(cfg *coreconfig.Config) *App {
	store := intake.NewMemoryStore()
	return &App{
		cfg:   cfg,
		store: store,
		ctrl:  intake.NewController(store, assetsFromConfig(cfg.Assets)),
	}
}

// TelegramRunOptions assembles the runtime wiring consumed by RunTelegram.
func (a *App) TelegramRunOptions() (coretelegram.RunOptions, error) {
	return coretelegram.RunOptions{
		Config:      a.cfg,
		Middlewares: coretelegram.DefaultMiddlewares(a.cfg, nil),
		Routes: []coretelegram.Route{
			{Endpoint: "/start", Handler: a.onStart},
			{Endpoint: tele.OnText, Handler: a.onText},
			{Endpoint: tele.OnContact, Handler: a.onContact},
			{Endpoint: tele.OnCallback, Handler: a.onCallback},
		},
	}, nil
}

func (a *App) onStart(c tele.Context) error {
	tghelpers.WithHandler(c, "start")
	user := c.Sender()
	if user == nil {
		return nil
	}
	ev := intake.Event{
		Kind:      intake.EventStart,
		Arg:       strings.TrimSpace(c.Message().Payload),
		FirstName: user.FirstName,
	}
	return a.dispatch(c, user.ID, ev)
}

func (a *App) onText(c tele.Context) error {
	tghelpers.WithHandler(c, "text")
	user := c.Sender()
	if user == nil {
		return nil
	}
	ev := intake.Event{Kind: intake.EventText, Text: c.Text()}
	return a.dispatch(c, user.ID, ev)
}

func (a *App) onContact(c tele.Context) error {
	tghelpers.WithHandler(c, "contact")
	user := c.Sender()
	if user == nil {
		return nil
	}
	contact := c.Message().Contact
	if contact == nil {
		return nil
	}
	ev := intake.Event{Kind: intake.EventContact, Phone: contact.PhoneNumber}
	return a.dispatch(c, user.ID, ev)
}

func (a *App) onCallback(c tele.Context) error {
	tghelpers.WithHandler(c, "callback")
	user := c.Sender()
	cb := c.Callback()
	if user == nil || cb == nil {
		return nil
	}
	defer func() { _ = c.Respond() }()

	ev := intake.Event{
		Kind: intake.EventCallback,
		Data: callbacks.CallbackKey(c),
	}
	if cb.Message != nil {
		ev.Ref = intake.MessageRef{MessageID: cb.Message.ID}
		if cb.Message.Chat != nil {
			ev.Ref.ChatID = cb.Message.Chat.ID
		}
	}
	return a.dispatch(c, user.ID, ev)
}

// dispatch runs one event through the controller and executes the result,
// logging the transition.
func (a *App) dispatch(c tele.Context, userID int64, ev intake.Event) error {
	start := time.Now()
	res := a.ctrl.Advance(userID, ev)
	err := a.execute(c, userID, res)

	ctx := tghelpers.BuildContext(c)
	outcome := "advance"
	if res.Next == res.Prev {
		outcome = "stay"
	}
	messages, _ := middleware.GetCounters(c)
	attrs := []slog.Attr{
		slog.String("from_stage", string(res.Prev)),
		slog.String("to_stage", string(res.Next)),
		slog.String("outcome", outcome),
		slog.Int("messages", messages),
		logger.Took(start),
	}
	if ev.Kind == intake.EventCallback && ev.Data != "" {
		attrs = append(attrs, slog.String("cb_key", ev.Data))
	}
	if err != nil {
		attrs = append(attrs, slog.String("err", err.Error()))
		logger.Error(ctx, "fsm", "event."+string(ev.Kind), attrs...)
		return err
	}
	logger.Info(ctx, "fsm", "event."+string(ev.Kind), attrs...)
	return nil
}

func assetsFromConfig(cfg coreconfig.AssetsConfig) intake.Assets {
	assets := intake.Assets{
		ConsentDoc: cfg.ConsentDoc,
		Guides:     make(map[string][]intake.Guide, len(cfg.Platforms)),
	}
	for _, p := range cfg.Platforms {
		assets.Platforms = append(assets.Platforms, intake.PlatformOption{
			Code: p.Code,
			Name: p.Name,
		})
		for _, g := range p.Guides {
			kind := intake.GuidePhoto
			if g.Kind == "video" {
				kind = intake.GuideVideo
			}
			assets.Guides[p.Code] = append(assets.Guides[p.Code], intake.Guide{
				Kind:    kind,
				Path:    g.Path,
				Caption: g.Caption,
			})
		}
	}
	return assets
}
