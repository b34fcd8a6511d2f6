package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"smartpass-service/internal/domain/entity"
	"smartpass-service/internal/domain/repository"
	"smartpass-service/internal/infrastructure/router"
	"smartpass-service/pkg/extract"
	"smartpass-service/pkg/logger"
	"smartpass-service/pkg/metrics"

	"github.com/google/uuid"
)

// ErrNotBoardingPass is returned when extraction finds no identifying field
// in the transcript. The caller surfaces it as "could not extract"; the scan
// is never persisted.
var ErrNotBoardingPass = errors.New("could not extract boarding pass details")

// ErrUnsupportedMedia is returned for upload content types no decoder accepts.
var ErrUnsupportedMedia = errors.New("unsupported media type")

// PassProcessor orchestrates one scan end to end: decode the upload, OCR it,
// extract the record, persist it and arrange boarding reminders.
type PassProcessor struct {
	passRepo    repository.PassRepository
	airlineRepo repository.AirlineRepository
	airportRepo repository.AirportRepository
	recognizer  repository.TextRecognizer
	mediaRouter *router.MediaRouter
	extractor   *extract.Extractor
	scheduler   *ReminderScheduler
	metrics     *metrics.Metrics
	logger      logger.Logger
}

// NewPassProcessor creates a new pass processor. airlineRepo, airportRepo and
// metrics may be nil.
func NewPassProcessor(
	passRepo repository.PassRepository,
	airlineRepo repository.AirlineRepository,
	airportRepo repository.AirportRepository,
	recognizer repository.TextRecognizer,
	mediaRouter *router.MediaRouter,
	extractor *extract.Extractor,
	scheduler *ReminderScheduler,
	metrics *metrics.Metrics,
	logger logger.Logger,
) *PassProcessor {
	return &PassProcessor{
		passRepo:    passRepo,
		airlineRepo: airlineRepo,
		airportRepo: airportRepo,
		recognizer:  recognizer,
		mediaRouter: mediaRouter,
		extractor:   extractor,
		scheduler:   scheduler,
		metrics:     metrics,
		logger:      logger,
	}
}

// ProcessScan turns an uploaded image or PDF into a stored boarding pass with
// reminders scheduled. Invalid scans return ErrNotBoardingPass and leave no
// trace.
func (pp *PassProcessor) ProcessScan(ctx context.Context, contentType string, data []byte) (*entity.BoardingPass, error) {
	start := time.Now()
	pp.logger.Info("Processing scan", "contentType", contentType, "size", len(data))

	decoder := pp.mediaRouter.GetDecoder(contentType)
	if decoder == nil {
		pp.countError("decode")
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMedia, contentType)
	}

	image, err := decoder.Decode(ctx, data)
	if err != nil {
		pp.countError("decode")
		return nil, fmt.Errorf("failed to decode upload: %w", err)
	}

	text, err := pp.recognizer.ExtractText(ctx, image)
	if err != nil {
		pp.countError("ocr")
		return nil, fmt.Errorf("failed to recognize text: %w", err)
	}

	pass := pp.extractor.Parse(text)
	if !extract.IsValidBoardingPass(pass) {
		pp.logger.Warn("Scan rejected, no boarding pass details found", "textLength", len(text))
		if pp.metrics != nil {
			pp.metrics.PassesRejected.Inc()
		}
		return nil, ErrNotBoardingPass
	}

	pass.ID = uuid.NewString()
	pass.ImageData = image
	pass.CreatedAt = time.Now()

	pp.enrich(ctx, pass)

	if err := pp.passRepo.Save(ctx, pass); err != nil {
		pp.countError("save")
		return nil, fmt.Errorf("failed to save boarding pass: %w", err)
	}

	handles := pp.scheduler.Schedule(ctx, pass)

	if pp.metrics != nil {
		pp.metrics.PassesScanned.Inc()
		pp.metrics.RemindersScheduled.Add(float64(len(handles)))
		pp.metrics.ScanDuration.Observe(time.Since(start).Seconds())
	}

	pp.logger.Info("Scan processed",
		"passId", pass.ID,
		"flight", pass.Flight,
		"pnr", pass.PNR,
		"reminders", len(handles))

	return pass, nil
}

// GetPass fetches one stored pass by id.
func (pp *PassProcessor) GetPass(ctx context.Context, id string) (*entity.BoardingPass, error) {
	return pp.passRepo.FindByID(ctx, id)
}

// ListPasses returns stored passes, newest first.
func (pp *PassProcessor) ListPasses(ctx context.Context, limit int) ([]*entity.BoardingPass, error) {
	return pp.passRepo.FindAll(ctx, limit)
}

// DeletePass removes a stored pass and cancels its pending reminders as a
// group.
func (pp *PassProcessor) DeletePass(ctx context.Context, id string) error {
	pp.scheduler.CancelForPass(ctx, id)

	if err := pp.passRepo.Delete(ctx, id); err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			pp.countError("delete")
		}
		return err
	}

	pp.logger.Info("Boarding pass deleted", "passId", id)
	return nil
}

// enrich fills airline and city labels from the reference tables when the
// text itself gave only codes. The in-code extract tables are the fallback,
// so a missing database never blocks a scan.
func (pp *PassProcessor) enrich(ctx context.Context, pass *entity.BoardingPass) {
	if pass.Airline == "" && len(pass.Flight) >= 2 {
		code := strings.ToUpper(pass.Flight[:2])
		if pp.airlineRepo != nil {
			if airline, err := pp.airlineRepo.GetByCode(ctx, code); err == nil && airline != nil {
				pass.Airline = airline.Name
			}
		}
		if pass.Airline == "" {
			pass.Airline = extract.CarrierName(code)
		}
	}

	if pass.FromCity == "" && pass.From != "" {
		pass.FromCity = pp.cityFor(ctx, pass.From)
	}
	if pass.ToCity == "" && pass.To != "" {
		pass.ToCity = pp.cityFor(ctx, pass.To)
	}
}

func (pp *PassProcessor) cityFor(ctx context.Context, code string) string {
	if pp.airportRepo != nil {
		if airport, err := pp.airportRepo.GetByIATACode(ctx, code); err == nil && airport != nil {
			return airport.CityName
		}
	}
	return extract.AirportCity(code)
}

func (pp *PassProcessor) countError(operation string) {
	if pp.metrics != nil {
		pp.metrics.ErrorsCount.WithLabelValues(operation).Inc()
	}
}
