package repository

import (
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/ads-automation-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-automation-api/internal/domain"
)

const subscriptionsTable = "subscriptions s"

type SubscriptionRepository interface {
	ListExpiringUntil(limit time.Time) ([]*domain.Subscription, error)
}

type subscriptionRepository struct {
	conn *postgres.Connection
}

func NewSubscriptionRepository(conn *postgres.Connection) SubscriptionRepository {
	return &subscriptionRepository{
		conn: conn,
	}
}

// ListExpiringUntil retorna as assinaturas ativas que vencem até a data limite
func (s *subscriptionRepository) ListExpiringUntil(limit time.Time) ([]*domain.Subscription, error) {
	subsSQL, subsArgs, err := squirrel.
		Select("s.id, s.user_id, u.name, u.telegram_id, s.expires_at").
		From(subscriptionsTable).
		Join("users u ON s.user_id = u.id").
		Where(squirrel.Eq{"s.status": "active"}).
		Where(squirrel.LtOrEq{"s.expires_at": limit}).
		OrderBy("s.expires_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.conn.DB.Query(subsSQL, subsArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	defer rows.Close()

	subscriptions := make([]*domain.Subscription, 0)
	for rows.Next() {
		sub := &domain.Subscription{}
		var telegramID sql.NullString
		if err := rows.Scan(&sub.ID, &sub.UserID, &sub.UserName, &telegramID, &sub.ExpiresAt); err != nil {
			return nil, err
		}
		if telegramID.Valid {
			sub.TelegramID = &telegramID.String
		}
		subscriptions = append(subscriptions, sub)
	}

	return subscriptions, rows.Err()
}
