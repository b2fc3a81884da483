package components

import (
	"vetclinic-scheduling/internal/handler"
	"vetclinic-scheduling/internal/handler/api"
	"vetclinic-scheduling/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAppointmentHandler,
		api.NewWaitingRoomHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
