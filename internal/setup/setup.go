package setup

import (
	"github.com/anonb-dev/anonb/internal/config"
	"github.com/anonb-dev/anonb/internal/handler"
	"github.com/anonb-dev/anonb/internal/service"
	"github.com/anonb-dev/anonb/internal/storage/pg"
)

// Dependencies holds all initialized dependencies.
type Dependencies struct {
	Storage *pg.Storage
	Handler *handler.Handler
	Config  *config.Config
}

// SetupDependencies initializes everything the application needs. The
// storage client is constructed here and owned by the caller: open at
// startup, Cleanup at shutdown.
func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	storage, err := pg.New(cfg)
	if err != nil {
		return nil, err
	}

	thread := service.NewThread(storage, cfg.Public.ThreadsPerBoard, cfg.Public.RepliesPreview)
	reply := service.NewReply(storage)

	h := handler.New(thread, reply, storage)

	return &Dependencies{
		Storage: storage,
		Handler: h,
		Config:  cfg,
	}, nil
}
