package repository

import (
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/ads-automation-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-automation-api/internal/domain"
)

const storesTable = "stores"

type StoreRepository interface {
	GetStoreByID(storeID string) (*domain.Store, error)
}

type storeRepository struct {
	conn *postgres.Connection
}

func NewStoreRepository(conn *postgres.Connection) StoreRepository {
	return &storeRepository{
		conn: conn,
	}
}

// GetStoreByID resolve as credenciais de sessão de uma loja. Retorna nil sem
// erro quando a loja não existe.
func (s *storeRepository) GetStoreByID(storeID string) (*domain.Store, error) {
	storeSQL, storeArgs, err := squirrel.
		Select("id, user_id, name, session_token, status").
		From(storesTable).
		Where(squirrel.Eq{"id": storeID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	row := s.conn.DB.QueryRow(storeSQL, storeArgs...)

	store, err := deserializeStore(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return store, nil
}

func deserializeStore(row *sql.Row) (*domain.Store, error) {
	store := &domain.Store{}
	var token sql.NullString

	if err := row.Scan(
		&store.ID,
		&store.UserID,
		&store.Name,
		&token,
		&store.Status,
	); err != nil {
		return nil, err
	}

	if token.Valid {
		store.SessionToken = &token.String
	}

	return store, nil
}
