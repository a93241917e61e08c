package services

import (
	"context"
	"testing"
	"time"

	"github.com/safekids/app-safekids/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardService_Stats(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	mae := f.responsavel(t, "52998224725", "maria")
	f.responsavel(t, "11144477735", "jose")
	ana := f.crianca(t, "Ana", "2018-06-15", mae.ID)
	bia := f.crianca(t, "Bia", "2019-06-15", mae.ID)
	caio := f.crianca(t, "Caio", "2020-06-15", mae.ID)
	f.tio(t, "12345678909", "joao")

	hoje := f.culto(t, "2024-05-12", models.SalaPrimario)
	f.culto(t, "2024-05-12", models.SalaBaby)
	ontem := f.culto(t, "2024-05-11", models.SalaPrimario)

	checkIn := func(cultoID, criancaID string) {
		_, err := f.attendance.RequestCheckIn(ctx, &models.CheckInRequest{CriancaID: criancaID, ResponsavelID: mae.ID, CultoID: cultoID}, "")
		require.NoError(t, err)
	}
	confirm := func(cultoID, criancaID string) {
		_, err := f.attendance.ConfirmCheckIn(ctx, &models.ConfirmacaoCheckIn{CriancaID: criancaID, CultoID: cultoID, ServoID: "s"}, "")
		require.NoError(t, err)
	}

	checkIn(hoje.ID, ana.ID)
	checkIn(hoje.ID, bia.ID)
	confirm(hoje.ID, bia.ID)
	checkIn(hoje.ID, caio.ID)
	confirm(hoje.ID, caio.ID)
	_, err := f.attendance.RequestCheckOut(ctx, &models.CheckOutRequest{CriancaID: caio.ID, ResponsavelID: mae.ID, CultoID: hoje.ID}, "")
	require.NoError(t, err)

	// yesterday's pending check-in is not counted
	checkIn(ontem.ID, ana.ID)

	stats, err := f.dashboard.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, &models.DashboardStats{
		TotalCriancas:      3,
		TotalResponsaveis:  2,
		TotalTios:          1,
		CultosHoje:         2,
		CheckInsPendentes:  1,
		CheckOutsPendentes: 1,
	}, stats)
}

func TestDashboardService_UsesConfiguredTimezone(t *testing.T) {
	f := newFixture(t)
	f.culto(t, "2024-05-12", models.SalaTeens)

	// 01:30 UTC on the 13th is still the 12th in Brasília
	f.now = time.Date(2024, time.May, 13, 1, 30, 0, 0, time.UTC)

	stats, err := f.dashboard.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.CultosHoje)
}

func TestDashboardService_InvalidateNil(t *testing.T) {
	var d *DashboardService
	assert.NotPanics(t, func() { d.Invalidate(context.Background()) })
}
