package api

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"
)

// DrawServiceName is the fully-qualified name of the DrawService.
const DrawServiceName = "secretsanta.v1.DrawService"

// Procedure paths of the DrawService.
const (
	DrawServiceCreateEventProcedure = "/secretsanta.v1.DrawService/CreateEvent"
	DrawServiceGetEventProcedure    = "/secretsanta.v1.DrawService/GetEvent"
	DrawServiceListEventsProcedure  = "/secretsanta.v1.DrawService/ListEvents"
	DrawServiceDeleteEventProcedure = "/secretsanta.v1.DrawService/DeleteEvent"
	DrawServiceRunDrawProcedure     = "/secretsanta.v1.DrawService/RunDraw"
	DrawServiceGetDrawProcedure     = "/secretsanta.v1.DrawService/GetDraw"
	DrawServiceRevealProcedure      = "/secretsanta.v1.DrawService/Reveal"
)

// DrawServiceHandler is implemented by the server side of the DrawService.
type DrawServiceHandler interface {
	CreateEvent(context.Context, *connect.Request[CreateEventRequest]) (*connect.Response[CreateEventResponse], error)
	GetEvent(context.Context, *connect.Request[GetEventRequest]) (*connect.Response[GetEventResponse], error)
	ListEvents(context.Context, *connect.Request[ListEventsRequest]) (*connect.Response[ListEventsResponse], error)
	DeleteEvent(context.Context, *connect.Request[DeleteEventRequest]) (*connect.Response[DeleteEventResponse], error)
	RunDraw(context.Context, *connect.Request[RunDrawRequest]) (*connect.Response[RunDrawResponse], error)
	GetDraw(context.Context, *connect.Request[GetDrawRequest]) (*connect.Response[GetDrawResponse], error)
	Reveal(context.Context, *connect.Request[RevealRequest]) (*connect.Response[RevealResponse], error)
}

// HandlerOptions groups the options applied to every procedure and the
// extra options applied only to Reveal (e.g. the reveal-token interceptor).
type HandlerOptions struct {
	Common []connect.HandlerOption
	Reveal []connect.HandlerOption
}

// NewDrawServiceHandler builds an HTTP handler serving every DrawService
// procedure. It returns the path to mount it on.
func NewDrawServiceHandler(svc DrawServiceHandler, opts HandlerOptions) (string, http.Handler) {
	common := append([]connect.HandlerOption{connect.WithCodec(Codec{})}, opts.Common...)
	reveal := append(append([]connect.HandlerOption{}, common...), opts.Reveal...)

	mux := http.NewServeMux()
	mux.Handle(DrawServiceCreateEventProcedure, connect.NewUnaryHandler(DrawServiceCreateEventProcedure, svc.CreateEvent, common...))
	mux.Handle(DrawServiceGetEventProcedure, connect.NewUnaryHandler(DrawServiceGetEventProcedure, svc.GetEvent, common...))
	mux.Handle(DrawServiceListEventsProcedure, connect.NewUnaryHandler(DrawServiceListEventsProcedure, svc.ListEvents, common...))
	mux.Handle(DrawServiceDeleteEventProcedure, connect.NewUnaryHandler(DrawServiceDeleteEventProcedure, svc.DeleteEvent, common...))
	mux.Handle(DrawServiceRunDrawProcedure, connect.NewUnaryHandler(DrawServiceRunDrawProcedure, svc.RunDraw, common...))
	mux.Handle(DrawServiceGetDrawProcedure, connect.NewUnaryHandler(DrawServiceGetDrawProcedure, svc.GetDraw, common...))
	mux.Handle(DrawServiceRevealProcedure, connect.NewUnaryHandler(DrawServiceRevealProcedure, svc.Reveal, reveal...))

	return "/" + DrawServiceName + "/", mux
}

// DrawServiceClient is a client for the DrawService.
type DrawServiceClient struct {
	createEvent *connect.Client[CreateEventRequest, CreateEventResponse]
	getEvent    *connect.Client[GetEventRequest, GetEventResponse]
	listEvents  *connect.Client[ListEventsRequest, ListEventsResponse]
	deleteEvent *connect.Client[DeleteEventRequest, DeleteEventResponse]
	runDraw     *connect.Client[RunDrawRequest, RunDrawResponse]
	getDraw     *connect.Client[GetDrawRequest, GetDrawResponse]
	reveal      *connect.Client[RevealRequest, RevealResponse]
}

// NewDrawServiceClient builds a client for the DrawService at baseURL.
func NewDrawServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *DrawServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(Codec{})}, opts...)
	return &DrawServiceClient{
		createEvent: connect.NewClient[CreateEventRequest, CreateEventResponse](httpClient, baseURL+DrawServiceCreateEventProcedure, opts...),
		getEvent:    connect.NewClient[GetEventRequest, GetEventResponse](httpClient, baseURL+DrawServiceGetEventProcedure, opts...),
		listEvents:  connect.NewClient[ListEventsRequest, ListEventsResponse](httpClient, baseURL+DrawServiceListEventsProcedure, opts...),
		deleteEvent: connect.NewClient[DeleteEventRequest, DeleteEventResponse](httpClient, baseURL+DrawServiceDeleteEventProcedure, opts...),
		runDraw:     connect.NewClient[RunDrawRequest, RunDrawResponse](httpClient, baseURL+DrawServiceRunDrawProcedure, opts...),
		getDraw:     connect.NewClient[GetDrawRequest, GetDrawResponse](httpClient, baseURL+DrawServiceGetDrawProcedure, opts...),
		reveal:      connect.NewClient[RevealRequest, RevealResponse](httpClient, baseURL+DrawServiceRevealProcedure, opts...),
	}
}

func (c *DrawServiceClient) CreateEvent(ctx context.Context, req *connect.Request[CreateEventRequest]) (*connect.Response[CreateEventResponse], error) {
	return c.createEvent.CallUnary(ctx, req)
}

func (c *DrawServiceClient) GetEvent(ctx context.Context, req *connect.Request[GetEventRequest]) (*connect.Response[GetEventResponse], error) {
	return c.getEvent.CallUnary(ctx, req)
}

func (c *DrawServiceClient) ListEvents(ctx context.Context, req *connect.Request[ListEventsRequest]) (*connect.Response[ListEventsResponse], error) {
	return c.listEvents.CallUnary(ctx, req)
}

func (c *DrawServiceClient) DeleteEvent(ctx context.Context, req *connect.Request[DeleteEventRequest]) (*connect.Response[DeleteEventResponse], error) {
	return c.deleteEvent.CallUnary(ctx, req)
}

func (c *DrawServiceClient) RunDraw(ctx context.Context, req *connect.Request[RunDrawRequest]) (*connect.Response[RunDrawResponse], error) {
	return c.runDraw.CallUnary(ctx, req)
}

func (c *DrawServiceClient) GetDraw(ctx context.Context, req *connect.Request[GetDrawRequest]) (*connect.Response[GetDrawResponse], error) {
	return c.getDraw.CallUnary(ctx, req)
}

func (c *DrawServiceClient) Reveal(ctx context.Context, req *connect.Request[RevealRequest]) (*connect.Response[RevealResponse], error) {
	return c.reveal.CallUnary(ctx, req)
}
