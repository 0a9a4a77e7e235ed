package service

import (
	"errors"

	"connectrpc.com/connect"

	"github.com/mmynk/secretsanta/internal/assignment"
	"github.com/mmynk/secretsanta/internal/auth"
	"github.com/mmynk/secretsanta/internal/models"
	"github.com/mmynk/secretsanta/internal/roster"
	"github.com/mmynk/secretsanta/internal/storage"
	pb "github.com/mmynk/secretsanta/pkg/api"
)

// toConnectError maps domain errors onto Connect codes.
func toConnectError(err error) *connect.Error {
	switch {
	case errors.Is(err, assignment.ErrInvalidInput),
		errors.Is(err, auth.ErrWeakPassphrase),
		errors.Is(err, roster.ErrEmptyRoster),
		errors.Is(err, roster.ErrEmptyFamily),
		errors.Is(err, roster.ErrDuplicateName),
		errors.Is(err, roster.ErrDuplicateLabel):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, assignment.ErrInfeasibleInput):
		return connect.NewError(connect.CodeFailedPrecondition, err)
	case errors.Is(err, assignment.ErrExhaustedRetries):
		return connect.NewError(connect.CodeResourceExhausted, err)
	case errors.Is(err, auth.ErrInvalidPassphrase):
		return connect.NewError(connect.CodePermissionDenied, err)
	case errors.Is(err, storage.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}

func toPBEvent(event *models.Event) *pb.Event {
	out := &pb.Event{
		ID:        event.ID,
		Name:      event.Name,
		CreatedAt: event.CreatedAt,
	}
	for _, p := range event.People {
		out.People = append(out.People, &pb.Person{
			ID:       p.ID,
			FamilyID: p.FamilyID,
			Name:     p.Name,
		})
	}
	return out
}

func toPBDrawSummary(id, eventID string, attempts int, createdAt int64) *pb.DrawSummary {
	return &pb.DrawSummary{
		ID:        id,
		EventID:   eventID,
		Attempts:  int32(attempts),
		CreatedAt: createdAt,
	}
}

func toFamilies(families []*pb.Family) []models.Family {
	out := make([]models.Family, 0, len(families))
	for _, f := range families {
		if f == nil {
			continue
		}
		out = append(out, models.Family{Name: f.Name, Members: f.Members})
	}
	return out
}
