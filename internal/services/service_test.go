package services

import (
	"context"
	"encoding/json"
	"testing"

	pkgerrors "github.com/dmoreira/workshop-backend/pkg/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func decPtr(d decimal.Decimal) *decimal.Decimal { return &d }

func TestCreateThenGetReturnsSameRecord(t *testing.T) {
	svc := NewService(NewRepository(newTestDB(t)))
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateInput{
		Name:        "Troca de óleo",
		Description: strPtr("Inclui filtro e mão de obra"),
		Price:       decimal.NewFromFloat(120.00),
	})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, created.ID)

	fetched, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "Troca de óleo", fetched.Name)
	require.True(t, fetched.Price.Equal(decimal.NewFromFloat(120.00)))
}

func TestListWithNoRowsIsEmptyArray(t *testing.T) {
	svc := NewService(NewRepository(newTestDB(t)))

	rows, err := svc.List(context.Background())
	require.NoError(t, err)
	require.NotNil(t, rows)
	require.Empty(t, rows)

	encoded, err := json.Marshal(rows)
	require.NoError(t, err)
	require.Equal(t, "[]", string(encoded))
}

func TestGetUnknownServiceIsNotFound(t *testing.T) {
	svc := NewService(NewRepository(newTestDB(t)))

	_, err := svc.Get(context.Background(), uuid.New())
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	require.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}

func TestUpdateEmptyFieldSetIsRejected(t *testing.T) {
	svc := NewService(NewRepository(newTestDB(t)))
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateInput{Name: "Alinhamento", Price: decimal.NewFromInt(90)})
	require.NoError(t, err)

	_, err = svc.Update(ctx, created.ID, UpdateInput{})
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	require.Equal(t, pkgerrors.CodeValidation, typed.Code())
}

func TestUpdateChangesOnlySuppliedFields(t *testing.T) {
	svc := NewService(NewRepository(newTestDB(t)))
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateInput{
		Name:        "Balanceamento",
		Description: strPtr("Quatro rodas"),
		Price:       decimal.NewFromInt(70),
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, UpdateInput{Price: decPtr(decimal.NewFromInt(85))})
	require.NoError(t, err)
	require.True(t, updated.Price.Equal(decimal.NewFromInt(85)))
	require.Equal(t, "Balanceamento", updated.Name)
	require.Equal(t, "Quatro rodas", *updated.Description)
}

func TestDeleteRemovesRecord(t *testing.T) {
	svc := NewService(NewRepository(newTestDB(t)))
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateInput{Name: "Revisão", Price: decimal.NewFromInt(300)})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.Get(ctx, created.ID)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	require.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}

func TestDeleteUnknownServiceIsNotFound(t *testing.T) {
	svc := NewService(NewRepository(newTestDB(t)))

	err := svc.Delete(context.Background(), uuid.New())
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	require.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}
