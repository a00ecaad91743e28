package shopadsdomain

import (
	"encoding/json"
	"errors"
)

// ErrMissingCredentials indica que a loja não tem cookie de sessão válido.
// O trabalho dessa loja é pulado, nunca fatal para as demais.
var ErrMissingCredentials = errors.New("loja sem credenciais de sessão válidas")

// CampaignEntry é uma entrada da listagem de campanhas da plataforma: um
// descritor da campanha e um objeto de relatório cujo esquema varia entre
// versões da resposta
type CampaignEntry struct {
	Campaign CampaignInfo    `json:"campaign"`
	Report   json.RawMessage `json:"report"`
}

type CampaignInfo struct {
	CampaignID  int64  `json:"campaign_id"`
	Name        string `json:"name"`
	DailyBudget int64  `json:"daily_budget"` // micro-unidades da moeda
	State       string `json:"state"`
}

// Paging segue o cursor de paginação da listagem
type Paging struct {
	Offset int  `json:"offset"`
	Limit  int  `json:"limit"`
	Total  int  `json:"total"`
	HasMore bool `json:"has_more"`
}
