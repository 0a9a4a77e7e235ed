// Package service implements the DrawService RPCs on top of the assignment
// engine and the store.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/secretsanta/internal/assignment"
	"github.com/mmynk/secretsanta/internal/auth"
	"github.com/mmynk/secretsanta/internal/middleware"
	"github.com/mmynk/secretsanta/internal/models"
	"github.com/mmynk/secretsanta/internal/roster"
	"github.com/mmynk/secretsanta/internal/storage"
	pb "github.com/mmynk/secretsanta/pkg/api"
)

// Ensure DrawService implements the Connect handler interface
var _ pb.DrawServiceHandler = (*DrawService)(nil)

// DrawService implements the Connect DrawService
type DrawService struct {
	store      storage.Store
	tokens     *auth.TokenManager
	engineOpts []assignment.Option
}

// NewDrawService creates a DrawService. engineOpts are applied to the engine
// of every draw, before the per-draw exclusions.
func NewDrawService(store storage.Store, tokens *auth.TokenManager, engineOpts ...assignment.Option) *DrawService {
	return &DrawService{store: store, tokens: tokens, engineOpts: engineOpts}
}

// CreateEvent stores a roster after checking that it can be drawn at all.
func (s *DrawService) CreateEvent(ctx context.Context, req *connect.Request[pb.CreateEventRequest]) (*connect.Response[pb.CreateEventResponse], error) {
	slog.Info("CreateEvent request received",
		"name", req.Msg.Name,
		"families_count", len(req.Msg.Families),
	)

	if req.Msg.Name == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("name required"))
	}

	hash, err := auth.HashPassphrase(req.Msg.Passphrase)
	if err != nil {
		return nil, toConnectError(err)
	}

	people, err := roster.FromFamilies(toFamilies(req.Msg.Families))
	if err != nil {
		return nil, toConnectError(err)
	}
	if err := assignment.CheckFeasibility(people); err != nil {
		slog.Warn("CreateEvent rejected roster", "name", req.Msg.Name, "error", err)
		return nil, toConnectError(err)
	}

	event := &models.Event{
		Name:           req.Msg.Name,
		People:         people,
		PassphraseHash: hash,
	}
	if err := s.store.CreateEvent(ctx, event); err != nil {
		slog.Error("CreateEvent failed", "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Event created", "event_id", event.ID, "people_count", len(event.People))

	return connect.NewResponse(&pb.CreateEventResponse{Event: toPBEvent(event)}), nil
}

// GetEvent retrieves an event with its roster and draw history.
func (s *DrawService) GetEvent(ctx context.Context, req *connect.Request[pb.GetEventRequest]) (*connect.Response[pb.GetEventResponse], error) {
	slog.Info("GetEvent request received", "event_id", req.Msg.EventID)

	event, err := s.store.GetEvent(ctx, req.Msg.EventID)
	if err != nil {
		slog.Error("GetEvent failed", "event_id", req.Msg.EventID, "error", err)
		return nil, toConnectError(err)
	}

	draws, err := s.store.ListDraws(ctx, event.ID)
	if err != nil {
		slog.Error("GetEvent failed - could not list draws", "event_id", event.ID, "error", err)
		return nil, toConnectError(err)
	}

	resp := &pb.GetEventResponse{Event: toPBEvent(event)}
	for _, d := range draws {
		resp.Draws = append(resp.Draws, toPBDrawSummary(d.ID, d.EventID, d.Attempts, d.CreatedAt))
	}

	slog.Info("GetEvent successful", "event_id", event.ID, "draws_count", len(draws))

	return connect.NewResponse(resp), nil
}

// ListEvents retrieves all events without rosters.
func (s *DrawService) ListEvents(ctx context.Context, req *connect.Request[pb.ListEventsRequest]) (*connect.Response[pb.ListEventsResponse], error) {
	slog.Info("ListEvents request received")

	events, err := s.store.ListEvents(ctx)
	if err != nil {
		slog.Error("ListEvents failed", "error", err)
		return nil, toConnectError(err)
	}

	out := make([]*pb.Event, len(events))
	for i, e := range events {
		out[i] = toPBEvent(e)
	}

	slog.Info("ListEvents successful", "count", len(events))

	return connect.NewResponse(&pb.ListEventsResponse{Events: out}), nil
}

// DeleteEvent removes an event and its draws. Organizer only.
func (s *DrawService) DeleteEvent(ctx context.Context, req *connect.Request[pb.DeleteEventRequest]) (*connect.Response[pb.DeleteEventResponse], error) {
	slog.Info("DeleteEvent request received", "event_id", req.Msg.EventID)

	if _, err := s.organizerEvent(ctx, req.Msg.EventID, req.Msg.Passphrase); err != nil {
		return nil, err
	}

	if err := s.store.DeleteEvent(ctx, req.Msg.EventID); err != nil {
		slog.Error("DeleteEvent failed", "event_id", req.Msg.EventID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Event deleted", "event_id", req.Msg.EventID)

	return connect.NewResponse(&pb.DeleteEventResponse{}), nil
}

// RunDraw draws, commits and hands out one reveal token per giver.
// Organizer only.
func (s *DrawService) RunDraw(ctx context.Context, req *connect.Request[pb.RunDrawRequest]) (*connect.Response[pb.RunDrawResponse], error) {
	slog.Info("RunDraw request received",
		"event_id", req.Msg.EventID,
		"avoid_previous", req.Msg.AvoidPrevious,
	)

	event, err := s.organizerEvent(ctx, req.Msg.EventID, req.Msg.Passphrase)
	if err != nil {
		return nil, err
	}

	excluded, err := s.previousEdges(ctx, event.ID, int(req.Msg.AvoidPrevious))
	if err != nil {
		slog.Error("RunDraw failed - could not load previous draws", "event_id", event.ID, "error", err)
		return nil, toConnectError(err)
	}

	opts := append(append([]assignment.Option{}, s.engineOpts...), assignment.WithExclusions(excluded))
	a, err := assignment.New(opts...).Assign(event.People)
	if err != nil {
		slog.Warn("RunDraw failed - no assignment", "event_id", event.ID, "error", err)
		return nil, toConnectError(err)
	}

	draw := &models.Draw{
		EventID:  event.ID,
		Edges:    a.Edges,
		Attempts: a.Attempts,
	}
	if err := s.store.CreateDraw(ctx, draw); err != nil {
		slog.Error("RunDraw failed - could not store draw", "event_id", event.ID, "error", err)
		return nil, toConnectError(err)
	}

	resp := &pb.RunDrawResponse{
		Draw: toPBDrawSummary(draw.ID, draw.EventID, draw.Attempts, draw.CreatedAt),
	}
	for _, p := range event.People {
		token, err := s.tokens.Generate(draw.ID, p.ID)
		if err != nil {
			slog.Error("RunDraw failed - could not sign token", "draw_id", draw.ID, "error", err)
			return nil, toConnectError(err)
		}
		resp.Tokens = append(resp.Tokens, &pb.RevealToken{
			GiverID:   p.ID,
			GiverName: p.Name,
			Token:     token,
		})
	}

	slog.Info("Draw committed",
		"event_id", event.ID,
		"draw_id", draw.ID,
		"attempts", draw.Attempts,
		"excluded_pairs", len(excluded),
	)

	return connect.NewResponse(resp), nil
}

// GetDraw returns every pair of a draw. Organizer only.
func (s *DrawService) GetDraw(ctx context.Context, req *connect.Request[pb.GetDrawRequest]) (*connect.Response[pb.GetDrawResponse], error) {
	slog.Info("GetDraw request received", "draw_id", req.Msg.DrawID)

	// Unknown draws answer like a wrong passphrase so existing draw IDs stay hidden.
	draw, err := s.store.GetDraw(ctx, req.Msg.DrawID)
	if errors.Is(err, storage.ErrNotFound) {
		slog.Warn("GetDraw rejected - unknown draw", "draw_id", req.Msg.DrawID)
		return nil, toConnectError(auth.ErrInvalidPassphrase)
	}
	if err != nil {
		slog.Error("GetDraw failed", "draw_id", req.Msg.DrawID, "error", err)
		return nil, toConnectError(err)
	}

	event, err := s.organizerEvent(ctx, draw.EventID, req.Msg.Passphrase)
	if err != nil {
		return nil, err
	}

	people := event.PersonByID()
	resp := &pb.GetDrawResponse{
		Draw: toPBDrawSummary(draw.ID, draw.EventID, draw.Attempts, draw.CreatedAt),
	}
	for _, e := range draw.Edges {
		resp.Pairs = append(resp.Pairs, &pb.Pair{
			GiverID:      e.GiverID,
			GiverName:    people[e.GiverID].Name,
			ReceiverID:   e.ReceiverID,
			ReceiverName: people[e.ReceiverID].Name,
		})
	}

	slog.Info("GetDraw successful", "draw_id", draw.ID, "pairs_count", len(resp.Pairs))

	return connect.NewResponse(resp), nil
}

// Reveal tells the token holder who they give to, and nothing else.
// The reveal-token interceptor must run first.
func (s *DrawService) Reveal(ctx context.Context, req *connect.Request[pb.RevealRequest]) (*connect.Response[pb.RevealResponse], error) {
	drawID := middleware.GetDrawID(ctx)
	giverID := middleware.GetGiverID(ctx)
	if drawID == "" || giverID == "" {
		return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
	}

	slog.Info("Reveal request received", "draw_id", drawID)

	draw, err := s.store.GetDraw(ctx, drawID)
	if err != nil {
		slog.Error("Reveal failed", "draw_id", drawID, "error", err)
		return nil, toConnectError(err)
	}

	a := assignment.FromEdges(draw.Edges, draw.Attempts)
	receiverID, ok := a.ReceiverOf(giverID)
	if !ok {
		return nil, connect.NewError(connect.CodeNotFound, fmt.Errorf("giver %s is not part of draw %s", giverID, drawID))
	}

	event, err := s.store.GetEvent(ctx, draw.EventID)
	if err != nil {
		slog.Error("Reveal failed - could not load event", "event_id", draw.EventID, "error", err)
		return nil, toConnectError(err)
	}
	people := event.PersonByID()

	return connect.NewResponse(&pb.RevealResponse{
		GiverName:    people[giverID].Name,
		ReceiverName: people[receiverID].Name,
	}), nil
}

// organizerEvent loads an event and checks the organizer passphrase.
// The returned error is already a Connect error.
func (s *DrawService) organizerEvent(ctx context.Context, eventID, passphrase string) (*models.Event, error) {
	if eventID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("event_id required"))
	}

	event, err := s.store.GetEvent(ctx, eventID)
	if errors.Is(err, storage.ErrNotFound) {
		slog.Warn("Event not found", "event_id", eventID)
		return nil, toConnectError(err)
	}
	if err != nil {
		slog.Error("Could not load event", "event_id", eventID, "error", err)
		return nil, toConnectError(err)
	}

	if err := auth.CheckPassphrase(event.PassphraseHash, passphrase); err != nil {
		slog.Warn("Organizer passphrase rejected", "event_id", eventID)
		return nil, toConnectError(err)
	}

	return event, nil
}

// previousEdges collects the edges of the n most recent draws of an event.
func (s *DrawService) previousEdges(ctx context.Context, eventID string, n int) ([]models.Edge, error) {
	if n <= 0 {
		return nil, nil
	}

	summaries, err := s.store.ListDraws(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if len(summaries) > n {
		summaries = summaries[:n]
	}

	var edges []models.Edge
	for _, summary := range summaries {
		draw, err := s.store.GetDraw(ctx, summary.ID)
		if err != nil {
			return nil, err
		}
		edges = append(edges, draw.Edges...)
	}
	return edges, nil
}
