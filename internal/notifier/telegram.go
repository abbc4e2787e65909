// Package notifier pushes moderation-queue alerts to the admin team chat.
package notifier

import (
	"errors"
	"fmt"

	"github.com/asaskevich/EventBus"
	botApi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/jobboardly/backend/internal/events"
	"github.com/jobboardly/backend/internal/logger"
	log "github.com/sirupsen/logrus"
)

// TelegramNotifier tells admins when a job or company lands in the pending
// queue. It only writes to one configured chat; it never reads updates.
type TelegramNotifier struct {
	api    *botApi.BotAPI
	chatID int64
}

func NewTelegramNotifier(token string, chatID int64, bus EventBus.Bus) (*TelegramNotifier, error) {

	api, err := botApi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	log.Infof("Authorized on account %s", api.Self.UserName)

	if bus == nil {
		return nil, errors.New("bus is nil")
	}
	if chatID == 0 {
		return nil, errors.New("admin chat id is required")
	}

	notifier := &TelegramNotifier{api: api, chatID: chatID}

	if err = bus.Subscribe(events.JobSubmittedTopic, notifier.onJobSubmitted); err != nil {
		return nil, err
	}
	if err = bus.Subscribe(events.CompanySubmittedTopic, notifier.onCompanySubmitted); err != nil {
		return nil, err
	}

	return notifier, nil
}

func (n *TelegramNotifier) onJobSubmitted(e events.JobSubmitted) {
	n.send(fmt.Sprintf("New job pending review: \"%s\" (id %s)", e.Job.Title, e.Job.ID))
}

func (n *TelegramNotifier) onCompanySubmitted(e events.CompanySubmitted) {
	n.send(fmt.Sprintf("New company pending review: \"%s\" (id %s)", e.Company.Name, e.Company.ID))
}

func (n *TelegramNotifier) send(text string) {
	msg := botApi.NewMessage(n.chatID, text)
	if _, err := n.api.Send(msg); err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeTgApi).
			Errorf("failed to send admin alert: %v", err)
	}
}
