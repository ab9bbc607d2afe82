package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"github.com/gakiokevin/myhotel/infras/otel"
	"github.com/gakiokevin/myhotel/infras/postgres"
	"github.com/gakiokevin/myhotel/internal/domains/damage/model"
	gDto "github.com/gakiokevin/myhotel/shared/dto"
	gRepo "github.com/gakiokevin/myhotel/shared/repository"

	"github.com/jmoiron/sqlx"
)

type DamageReport interface {
	Insert(ctx context.Context, model model.DamageReport) error
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.DamageReport) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.DamageReport, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.DamageReport, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.DamageReport]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) DamageReport {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.DamageReport](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
