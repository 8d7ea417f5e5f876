package xendit

import (
	"github.com/escanor68/turnosya-backend/config"
	x "github.com/xendit/xendit-go/v7"
)

func New(cfg *config.Config) *x.APIClient {
	return x.NewClient(cfg.Xendit.APIKey)
}
