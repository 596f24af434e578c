package service

import (
	"github.com/jander15/BathroomPass-sub000/internal/adapter"
	"github.com/jander15/BathroomPass-sub000/internal/logger"
	"github.com/jander15/BathroomPass-sub000/internal/session"
	"github.com/jander15/BathroomPass-sub000/internal/store"
	"github.com/jander15/BathroomPass-sub000/internal/validators"
)

type ClientServices struct {
	AuthService   ClientAuthService
	ActionService ClientActionService
}

func NewClientServices(storages *store.ClientStorages, backend adapter.BackendAdapter, sess *session.Session, logger *logger.Logger) *ClientServices {
	validator := validators.NewRequestValidator()

	return &ClientServices{
		AuthService:   NewClientAuthService(storages, backend, sess, validator, logger),
		ActionService: NewClientActionService(backend, validator, logger),
	}
}
