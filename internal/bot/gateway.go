package bot

import (
	"log/slog"
	"path/filepath"

	"github.com/mirrorsleep/customerbot/core/logger"
	tghelpers "github.com/mirrorsleep/customerbot/core/telegram/helpers"
	"github.com/mirrorsleep/customerbot/core/telegram/keyboard"
	"github.com/mirrorsleep/customerbot/core/telegram/middleware"
	"github.com/mirrorsleep/customerbot/internal/intake"

	tele "gopkg.in/telebot.v4"
)

const textSendFailed = "Произошла ошибка при отправке сообщения. Пожалуйста, попробуйте еще раз."

// execute carries out the controller's effects in order. Sends run
// synchronously so the conversation keeps its message order; deletions go
// through the async dispatcher. A failed critical send rolls the session
// back to the pre-transition stage and aborts the remaining effects.
func (a *App) execute(c tele.Context, userID int64, res intake.Result) error {
	var tracked []intake.MessageRef

	for _, eff := range res.Effects {
		switch e := eff.(type) {
		case intake.SendText:
			msg, err := a.sendText(c, e)
			if err != nil {
				if e.Critical {
					return a.rollback(c, userID, res, err)
				}
				a.logSendFail(c, "sendMessage", err)
				continue
			}
			middleware.CountMessage(c, e.Menu != nil || e.Keyboard != nil)
			if e.Track && msg != nil {
				tracked = append(tracked, refOf(msg))
			}

		case intake.SendPhoto:
			photo := &tele.Photo{File: tele.FromDisk(e.Path), Caption: e.Caption}
			msg, err := c.Bot().Send(recipient(c), photo)
			if err != nil {
				a.logSendFail(c, "sendPhoto", err)
				continue
			}
			middleware.CountMessage(c, false)
			if e.Track {
				tracked = append(tracked, refOf(msg))
			}

		case intake.SendVideo:
			video := &tele.Video{File: tele.FromDisk(e.Path), Caption: e.Caption}
			msg, err := c.Bot().Send(recipient(c), video)
			if err != nil {
				a.logSendFail(c, "sendVideo", err)
				continue
			}
			middleware.CountMessage(c, false)
			if e.Track {
				tracked = append(tracked, refOf(msg))
			}

		case intake.SendDocument:
			doc := &tele.Document{
				File:     tele.FromDisk(e.Path),
				FileName: filepath.Base(e.Path),
				Caption:  e.Caption,
			}
			if _, err := c.Bot().Send(recipient(c), doc); err != nil {
				if e.Critical {
					return a.rollback(c, userID, res, err)
				}
				a.logSendFail(c, "sendDocument", err)
			} else {
				middleware.CountMessage(c, false)
			}

		case intake.DeleteMessages:
			for _, ref := range e.Refs {
				if ref.MessageID == 0 {
					continue
				}
				if err := tghelpers.DeleteAsync(c, ref.ChatID, ref.MessageID); err != nil {
					a.logSendFail(c, "deleteMessage", err)
				}
			}
		}
	}

	if len(tracked) > 0 {
		a.store.Update(userID, func(s *intake.Session) {
			s.Instructions = append(s.Instructions, tracked...)
		})
	}
	return nil
}

func (a *App) sendText(c tele.Context, e intake.SendText) (*tele.Message, error) {
	opts := &tele.SendOptions{}
	if e.HTML {
		opts.ParseMode = tele.ModeHTML
	}
	if e.Menu != nil {
		opts.ReplyMarkup = inlineMarkup(e.Menu)
	} else if e.Keyboard != nil {
		opts.ReplyMarkup = replyMarkup(e.Keyboard)
	}
	return c.Bot().Send(recipient(c), e.Text, opts)
}

// rollback reverts the stage transition after a critical send failure so
// the user can retry the step instead of silently skipping it.
func (a *App) rollback(c tele.Context, userID int64, res intake.Result, cause error) error {
	if res.Next != res.Prev {
		a.store.Update(userID, func(s *intake.Session) { s.Stage = res.Prev })
	}

	ctx := tghelpers.BuildContext(c)
	logger.Error(ctx, "fsm", "send.critical_fail",
		slog.String("from_stage", string(res.Prev)),
		slog.String("to_stage", string(res.Next)),
		slog.String("outcome", "rollback"),
		slog.String("err", cause.Error()),
	)

	return tghelpers.SendText(c, textSendFailed)
}

func (a *App) logSendFail(c tele.Context, endpoint string, err error) {
	ctx := tghelpers.BuildContext(c)
	logger.Warn(ctx, "tg", "send.fail",
		slog.String("endpoint", endpoint),
		slog.String("err", err.Error()),
	)
}

func recipient(c tele.Context) tele.Recipient {
	if chat := c.Chat(); chat != nil {
		return chat
	}
	return c.Sender()
}

func refOf(msg *tele.Message) intake.MessageRef {
	ref := intake.MessageRef{MessageID: msg.ID}
	if msg.Chat != nil {
		ref.ChatID = msg.Chat.ID
	}
	return ref
}

func inlineMarkup(m *intake.Menu) *tele.ReplyMarkup {
	rows := make([][]keyboard.InlineBtn, 0, len(m.Rows))
	for _, row := range m.Rows {
		r := make([]keyboard.InlineBtn, 0, len(row))
		for _, b := range row {
			r = append(r, keyboard.InlineBtn{Text: b.Label, Unique: b.Data})
		}
		rows = append(rows, r)
	}
	return keyboard.InlineButtonsRows(rows...)
}

func replyMarkup(k *intake.ReplyKeyboard) *tele.ReplyMarkup {
	if k.Remove {
		return keyboard.RemoveKeyboard()
	}
	if k.RequestContact && len(k.Buttons) == 1 {
		return keyboard.ContactKeyboard(k.Buttons[0])
	}
	return keyboard.ReplyButtons(k.Buttons)
}
