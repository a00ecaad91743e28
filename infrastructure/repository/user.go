package repository

import (
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/ads-automation-api/infrastructure/database/postgres"
)

const usersTable = "users"

type UserRepository interface {
	GetTelegramID(userID string) (*string, error)
}

type userRepository struct {
	conn *postgres.Connection
}

func NewUserRepository(conn *postgres.Connection) UserRepository {
	return &userRepository{
		conn: conn,
	}
}

// GetTelegramID resolve o chat do Telegram de um usuário. Retorna nil sem erro
// quando o usuário não existe ou não cadastrou o Telegram.
func (u *userRepository) GetTelegramID(userID string) (*string, error) {
	userSQL, userArgs, err := squirrel.
		Select("telegram_id").
		From(usersTable).
		Where(squirrel.Eq{"id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var telegramID sql.NullString
	if err := u.conn.DB.QueryRow(userSQL, userArgs...).Scan(&telegramID); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	if !telegramID.Valid {
		return nil, nil
	}
	return &telegramID.String, nil
}
