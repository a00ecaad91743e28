package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-automation-api/internal/config"
	"github.com/vfg2006/ads-automation-api/internal/domain"
)

const botAPIBaseURL = "https://api.telegram.org"

// Notifier envia avisos de automação e de assinatura para os usuários
type Notifier interface {
	NotifyRuleExecuted(ctx context.Context, userID string, rule *domain.AutomationRule, execution *domain.RuleExecution) error
	NotifySubscriptionExpiring(ctx context.Context, subscription *domain.Subscription) error
}

// ChatResolver resolve o chat do Telegram cadastrado por um usuário
type ChatResolver interface {
	GetTelegramID(userID string) (*string, error)
}

type Integrator struct {
	cfg        *config.Config
	chats      ChatResolver
	httpClient *http.Client
}

func New(cfg *config.Config, chats ChatResolver) *Integrator {
	return &Integrator{
		cfg:   cfg,
		chats: chats,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type requestSendMessage struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

type responseSendMessage struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

func (s *Integrator) NotifyRuleExecuted(ctx context.Context, userID string, rule *domain.AutomationRule, execution *domain.RuleExecution) error {
	telegramID, err := s.chats.GetTelegramID(userID)
	if err != nil {
		return errors.Wrapf(err, "erro ao resolver chat do Telegram do usuário %s", userID)
	}
	if telegramID == nil {
		logrus.WithField("user_id", userID).
			Debug("Usuário sem Telegram cadastrado, aviso de execução ignorado")
		return nil
	}

	text := fmt.Sprintf(
		"⚙️ Regra <b>%s</b> executada\nCampanhas afetadas: %d\nAções aplicadas: %d",
		rule.Name,
		len(execution.CampaignsMatched),
		execution.ActionsApplied,
	)
	return s.sendMessage(ctx, *telegramID, text)
}

func (s *Integrator) NotifySubscriptionExpiring(ctx context.Context, subscription *domain.Subscription) error {
	if subscription.TelegramID == nil {
		logrus.WithField("user_id", subscription.UserID).
			Debug("Usuário sem Telegram cadastrado, aviso de vencimento ignorado")
		return nil
	}

	text := fmt.Sprintf(
		"⚠️ Olá %s, sua assinatura vence em %s. Renove para manter suas automações ativas.",
		subscription.UserName,
		subscription.ExpiresAt.Format("02/01/2006"),
	)
	return s.sendMessage(ctx, *subscription.TelegramID, text)
}

func (s *Integrator) sendMessage(ctx context.Context, chatID, text string) error {
	if !s.cfg.Telegram.Enabled || s.cfg.Telegram.BotToken == "" {
		logrus.Debug("Integração com o Telegram desabilitada, mensagem descartada")
		return nil
	}

	payload := requestSendMessage{
		ChatID:    chatID,
		Text:      text,
		ParseMode: "HTML",
	}

	encoded, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	endpoint := fmt.Sprintf("%s/bot%s/sendMessage", botAPIBaseURL, s.cfg.Telegram.BotToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(encoded))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "erro ao chamar a API do Telegram")
	}
	defer resp.Body.Close()

	var response responseSendMessage
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return errors.Wrap(err, "erro ao decodificar resposta do Telegram")
	}

	if !response.OK {
		return fmt.Errorf("telegram recusou a mensagem: %s", response.Description)
	}

	return nil
}
