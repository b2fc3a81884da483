package components

import (
	"vetclinic-scheduling/internal/infra/db"
	"vetclinic-scheduling/internal/infra/readstore"
	infraredis "vetclinic-scheduling/internal/infra/redis"
	"vetclinic-scheduling/internal/infra/uow"
	"vetclinic-scheduling/internal/pkg/config"
	"vetclinic-scheduling/internal/usecase/commands"
	"vetclinic-scheduling/internal/usecase/queries"
	"vetclinic-scheduling/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
		fx.Annotate(
			readstore.NewAppointmentReadStore,
			fx.As(new(queries.AppointmentReadStore)),
		),
		fx.Annotate(
			readstore.NewWaitingRoomReadStore,
			fx.As(new(queries.WaitingRoomReadStore)),
		),
		fx.Annotate(
			readstore.NewOwnerRegistry,
			fx.As(new(commands.OwnerExistenceChecker)),
		),
		fx.Annotate(
			readstore.NewAnimalRegistry,
			fx.As(new(commands.AnimalExistenceChecker)),
		),
		fx.Annotate(
			readstore.NewMembershipRegistry,
			fx.As(new(commands.MembershipEligibilityChecker)),
		),
		NewPractitionerLocker,
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

func NewPractitionerLocker(client *redis.Client, cfg config.Config) commands.PractitionerLocker {
	return infraredis.NewPractitionerLocker(client, cfg.Redis.LockTTL)
}
