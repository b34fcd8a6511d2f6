package usecase

import (
	"context"
	"testing"
	"time"

	"smartpass-service/internal/domain/entity"
	"smartpass-service/internal/domain/repository"
	"smartpass-service/internal/infrastructure/router"
	"smartpass-service/pkg/extract"
	"smartpass-service/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scannedPassText = `Boarding Pass
Rahul Sharma
PNR: AB12CD
Flight No: 6E 202
Date: 14 Feb 2026
Boarding Time
18.30 hrs
Gate
A12`

type fakePassRepo struct {
	passes map[string]*entity.BoardingPass
}

func newFakePassRepo() *fakePassRepo {
	return &fakePassRepo{passes: make(map[string]*entity.BoardingPass)}
}

func (r *fakePassRepo) Save(ctx context.Context, pass *entity.BoardingPass) error {
	r.passes[pass.ID] = pass
	return nil
}

func (r *fakePassRepo) FindByID(ctx context.Context, id string) (*entity.BoardingPass, error) {
	pass, ok := r.passes[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return pass, nil
}

func (r *fakePassRepo) FindAll(ctx context.Context, limit int) ([]*entity.BoardingPass, error) {
	var out []*entity.BoardingPass
	for _, p := range r.passes {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakePassRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.passes[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.passes, id)
	return nil
}

type fakeRecognizer struct {
	text string
	err  error
}

func (r *fakeRecognizer) ExtractText(ctx context.Context, image []byte) (string, error) {
	return r.text, r.err
}

type stubDecoder struct{}

func (stubDecoder) CanHandle(contentType string) bool { return contentType == "image/png" }

func (stubDecoder) Decode(ctx context.Context, data []byte) ([]byte, error) { return data, nil }

type processorFixture struct {
	processor *PassProcessor
	passRepo  *fakePassRepo
	notifier  *fakeNotifier
	clock     *fakeClock
}

func newProcessorFixture(t *testing.T, transcript string) *processorFixture {
	t.Helper()
	log := logger.NewLogger()

	clk := newFakeClock(time.Date(2026, time.February, 14, 10, 0, 0, 0, time.Local))
	notifier := &fakeNotifier{}
	scheduler := NewReminderScheduler(notifier, nil, clk, log)

	mediaRouter := router.NewMediaRouter(log)
	mediaRouter.Register(stubDecoder{})

	passRepo := newFakePassRepo()
	processor := NewPassProcessor(
		passRepo,
		nil,
		nil,
		&fakeRecognizer{text: transcript},
		mediaRouter,
		extract.NewExtractor(log),
		scheduler,
		nil,
		log,
	)

	return &processorFixture{
		processor: processor,
		passRepo:  passRepo,
		notifier:  notifier,
		clock:     clk,
	}
}

func TestProcessScanSavesAndSchedules(t *testing.T) {
	f := newProcessorFixture(t, scannedPassText)

	pass, err := f.processor.ProcessScan(context.Background(), "image/png", []byte("png-bytes"))

	require.NoError(t, err)
	require.NotNil(t, pass)
	assert.NotEmpty(t, pass.ID)
	assert.False(t, pass.CreatedAt.IsZero())
	assert.Equal(t, "6E202", pass.Flight)
	assert.Equal(t, "IndiGo", pass.Airline)
	assert.Equal(t, "AB12CD", pass.PNR)
	assert.Equal(t, []byte("png-bytes"), pass.ImageData)

	stored, err := f.passRepo.FindByID(context.Background(), pass.ID)
	require.NoError(t, err)
	assert.Equal(t, pass, stored)

	f.clock.Advance(9 * time.Hour)
	assert.Len(t, f.notifier.delivered(), 3)
}

func TestProcessScanRejectsNoiseTranscript(t *testing.T) {
	f := newProcessorFixture(t, "UNLOCK UNLIMITED DISCOUNT\nEXCLUSIVE MEMBER OFF")

	pass, err := f.processor.ProcessScan(context.Background(), "image/png", []byte("png-bytes"))

	assert.ErrorIs(t, err, ErrNotBoardingPass)
	assert.Nil(t, pass)
	assert.Empty(t, f.passRepo.passes)

	f.clock.Advance(24 * time.Hour)
	assert.Empty(t, f.notifier.delivered())
}

func TestProcessScanUnsupportedMediaType(t *testing.T) {
	f := newProcessorFixture(t, scannedPassText)

	pass, err := f.processor.ProcessScan(context.Background(), "text/plain", []byte("hello"))

	assert.ErrorIs(t, err, ErrUnsupportedMedia)
	assert.Nil(t, pass)
	assert.Empty(t, f.passRepo.passes)
}

func TestDeletePassCancelsReminders(t *testing.T) {
	f := newProcessorFixture(t, scannedPassText)

	pass, err := f.processor.ProcessScan(context.Background(), "image/png", []byte("png-bytes"))
	require.NoError(t, err)

	require.NoError(t, f.processor.DeletePass(context.Background(), pass.ID))

	_, err = f.passRepo.FindByID(context.Background(), pass.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	f.clock.Advance(24 * time.Hour)
	assert.Empty(t, f.notifier.delivered())
}

func TestDeleteUnknownPass(t *testing.T) {
	f := newProcessorFixture(t, scannedPassText)

	err := f.processor.DeletePass(context.Background(), "no-such-pass")

	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestScanWithoutScheduleDetailsStillSaves(t *testing.T) {
	f := newProcessorFixture(t, "PNR: AB12CD\nFlight: 6E 202")

	pass, err := f.processor.ProcessScan(context.Background(), "image/png", []byte("png-bytes"))

	require.NoError(t, err)
	assert.NotEmpty(t, pass.ID)
	assert.Len(t, f.passRepo.passes, 1)

	f.clock.Advance(24 * time.Hour)
	assert.Empty(t, f.notifier.delivered())
}
