package service

import (
	"context"
	"fmt"
	"time"

	"seafood-exporter-api/internal/model"
	"seafood-exporter-api/internal/repository"
	"seafood-exporter-api/internal/ws"
	"seafood-exporter-api/pkg/errx"
	"seafood-exporter-api/pkg/logger"
	"seafood-exporter-api/pkg/validator"
)

// EventPublisher receives live notifications; *ws.Hub implements it.
type EventPublisher interface {
	Publish(ev ws.Event)
}

type InquiryService interface {
	Submit(ctx context.Context, req *model.Inquiry) (model.InquiryReceipt, error)
	ListInquiries(ctx context.Context) ([]model.Inquiry, error)
}

type inquiryService struct {
	inquiryRepo repository.InquiryRepository
	publisher   EventPublisher
	now         func() time.Time
}

func NewInquiryService(iRepo repository.InquiryRepository, publisher EventPublisher) InquiryService {
	return &inquiryService{
		inquiryRepo: iRepo,
		publisher:   publisher,
		now:         time.Now,
	}
}

// Submit validates and stores one inquiry. The only error it returns is a
// validation error; a store failure still acknowledges the inquiry with the
// temp id and Persisted=false.
func (s *inquiryService) Submit(ctx context.Context, req *model.Inquiry) (model.InquiryReceipt, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return model.InquiryReceipt{}, errx.Validation(errs)
	}

	req.ID = ""
	req.CreatedAt = s.now().UTC()

	id, err := s.inquiryRepo.CreateInquiry(ctx, req)
	if err != nil {
		logx.Error().Err(err).
			Str("email", req.Email).
			Str("product_interest", deref(req.ProductInterest)).
			Msg("inquiry not persisted, acknowledged with temp id")
		return model.InquiryReceipt{ID: model.TempInquiryID, Status: model.InquiryStatusReceived}, nil
	}

	req.ID = id
	logx.Info().Str("inquiry_id", id).Msg("inquiry received")

	if s.publisher != nil {
		s.publisher.Publish(ws.Event{
			Type:    "inquiry_received",
			Message: fmt.Sprintf("%s sent an inquiry", req.Name),
			Data:    req,
		})
	}

	return model.InquiryReceipt{ID: id, Status: model.InquiryStatusReceived, Persisted: true}, nil
}

func (s *inquiryService) ListInquiries(ctx context.Context) ([]model.Inquiry, error) {
	inquiries, err := s.inquiryRepo.FindAllInquiries(ctx)
	if err != nil {
		return nil, errx.WrapStore(err)
	}
	return inquiries, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
