package controllers

import (
	"fmt"
	"log/slog"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"capgeticket/internal/delivery/http/helpers"
	"capgeticket/internal/domain"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

// Query and body validation messages.
const (
	MsgBlankName  = "El nombre del evento no puede ser nulo o vacío"
	MsgBlankCity  = "La ciudad no puede ser nula o vacía."
	MsgBlankGenre = "El género no puede ser nulo o vacío"
	MsgInvalidID  = "El identificador '%s' no es un número válido"
	MsgPriceRange = "El campo '%s' debe estar entre -99999999.99 y 99999999.99"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// EventRequest is the request body for POST /evento and PUT /evento.
// Fields are pointers so that missing values can be told apart from zero values.
type EventRequest struct {
	ID          *int64        `json:"id"`
	Name        *string       `json:"nombre" validate:"required,max=255"`
	Description *string       `json:"descripcion" validate:"required,max=255"`
	Date        *domain.Date  `json:"fechaEvento" validate:"required"`
	MinPrice    *domain.Price `json:"precioMinimo" validate:"required"`
	MaxPrice    *domain.Price `json:"precioMaximo" validate:"required"`
	City        *string       `json:"localidad" validate:"required,max=255"`
	Venue       *string       `json:"nombreDelRecinto" validate:"required,max=255"`
	Genre       *string       `json:"genero" validate:"required,max=255"`
	Visible     *bool         `json:"mostrar"`
}

// Validate implements helpers.Validator. A nil body or missing name short-circuits with a single message.
func (e *EventRequest) Validate() []string {
	if e == nil || e.Name == nil || *e.Name == "" {
		return []string{domain.MsgInvalidEvent}
	}
	errs := e.priceErrors()
	err := validate.Struct(e)
	if err == nil {
		return errs
	}
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return append(errs, err.Error())
	}
	for _, fe := range fieldErrs {
		switch fe.Tag() {
		case "required":
			errs = append(errs, fmt.Sprintf("El campo '%s' es obligatorio", fe.Field()))
		case "max":
			errs = append(errs, fmt.Sprintf("El campo '%s' no puede superar %s caracteres", fe.Field(), fe.Param()))
		default:
			errs = append(errs, fmt.Sprintf("El campo '%s' no es válido", fe.Field()))
		}
	}
	return errs
}

func (e *EventRequest) priceErrors() []string {
	var errs []string
	if e.MinPrice != nil && !e.MinPrice.InRange() {
		errs = append(errs, fmt.Sprintf(MsgPriceRange, "precioMinimo"))
	}
	if e.MaxPrice != nil && !e.MaxPrice.InRange() {
		errs = append(errs, fmt.Sprintf(MsgPriceRange, "precioMaximo"))
	}
	return errs
}

func (e *EventRequest) toEvent() *domain.Event {
	event := domain.NewEvent(*e.Name, *e.Description, *e.Date, *e.MinPrice, *e.MaxPrice, *e.City, *e.Venue, *e.Genre)
	if e.ID != nil {
		event.ID = *e.ID
	}
	if e.Visible != nil {
		event.Visible = *e.Visible
	}
	return event
}

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// FindAll godoc
// @Summary List events
// @Description Returns every visible event ordered by id. The list may be empty.
// @Tags evento
// @Produce json
// @Success 200 {array} domain.Event
// @Failure 500 {object} helpers.ErrorResponse
// @Router /evento [get]
func (c *EventController) FindAll(w http.ResponseWriter, r *http.Request) error {
	events, err := c.Service.FindAll(r.Context())
	if err != nil {
		return err
	}
	helpers.WriteJSON(w, http.StatusOK, events)
	return nil
}

// FindByID godoc
// @Summary Get an event by id
// @Tags evento
// @Produce json
// @Param id path int true "Event id"
// @Success 200 {object} domain.Event
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 404 {object} helpers.ErrorResponse
// @Router /evento/{id} [get]
func (c *EventController) FindByID(w http.ResponseWriter, r *http.Request) error {
	id, err := pathID(r)
	if err != nil {
		return err
	}
	event, err := c.Service.FindByID(r.Context(), id)
	if err != nil {
		return err
	}
	helpers.WriteJSON(w, http.StatusOK, event)
	return nil
}

// FindByName godoc
// @Summary Search events by name
// @Description Case-insensitive substring match on the event name.
// @Tags evento
// @Produce json
// @Param name query string true "Text contained in the name"
// @Success 200 {array} domain.Event
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 404 {object} helpers.ErrorResponse
// @Router /evento/nombre [get]
func (c *EventController) FindByName(w http.ResponseWriter, r *http.Request) error {
	name := r.URL.Query().Get("name")
	if strings.TrimSpace(name) == "" {
		return domain.InvalidArgument(MsgBlankName)
	}
	events, err := c.Service.FindByName(r.Context(), name)
	if err != nil {
		return err
	}
	helpers.WriteJSON(w, http.StatusOK, events)
	return nil
}

// FindByCity godoc
// @Summary Search events by city
// @Description Exact, case-sensitive match on localidad.
// @Tags evento
// @Produce json
// @Param city query string true "City"
// @Success 200 {array} domain.Event
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 404 {object} helpers.ErrorResponse
// @Router /evento/city [get]
func (c *EventController) FindByCity(w http.ResponseWriter, r *http.Request) error {
	city := r.URL.Query().Get("city")
	if strings.TrimSpace(city) == "" {
		c.Logger.WarnContext(r.Context(), "blank city filter")
		return domain.InvalidArgument(MsgBlankCity)
	}
	events, err := c.Service.FindByCity(r.Context(), city)
	if err != nil {
		return err
	}
	if len(events) == 0 {
		return domain.NotFoundf("No se encontraron eventos en la ciudad %s", city)
	}
	c.Logger.InfoContext(r.Context(), "events found in city", "city", city, "count", len(events))
	helpers.WriteJSON(w, http.StatusOK, events)
	return nil
}

// FindByGenre godoc
// @Summary Search events by genre
// @Description Exact, case-sensitive match on genero.
// @Tags evento
// @Produce json
// @Param genre query string true "Genre"
// @Success 200 {array} domain.Event
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 404 {object} helpers.ErrorResponse
// @Router /evento/genero [get]
func (c *EventController) FindByGenre(w http.ResponseWriter, r *http.Request) error {
	genre := r.URL.Query().Get("genre")
	if strings.TrimSpace(genre) == "" {
		return domain.InvalidArgument(MsgBlankGenre)
	}
	events, err := c.Service.FindByGenre(r.Context(), genre)
	if err != nil {
		return err
	}
	helpers.WriteJSON(w, http.StatusOK, events)
	return nil
}

// Create godoc
// @Summary Create an event
// @Description Stores a new event. Any id in the body is ignored; mostrar defaults to true.
// @Tags evento
// @Accept json
// @Produce json
// @Param event body EventRequest true "Event"
// @Success 201 {object} domain.Event
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 415 {object} helpers.ErrorResponse
// @Router /evento [post]
func (c *EventController) Create(w http.ResponseWriter, r *http.Request) error {
	req, err := decodeEvent(r)
	if err != nil {
		return err
	}
	created, err := c.Service.Add(r.Context(), req.toEvent())
	if err != nil {
		return err
	}
	helpers.WriteJSON(w, http.StatusCreated, created)
	return nil
}

// Update godoc
// @Summary Edit an event
// @Description Replaces every field of the existing visible event identified by the body id. Never creates.
// @Tags evento
// @Accept json
// @Produce json
// @Param event body EventRequest true "Event with id"
// @Success 200 {object} domain.Event
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 415 {object} helpers.ErrorResponse
// @Router /evento [put]
func (c *EventController) Update(w http.ResponseWriter, r *http.Request) error {
	req, err := decodeEvent(r)
	if err != nil {
		return err
	}
	if req.ID == nil {
		c.Logger.WarnContext(r.Context(), "edit without id")
		return domain.NotFoundf(domain.MsgEventNotFound)
	}
	updated, err := c.Service.Edit(r.Context(), req.toEvent())
	if err != nil {
		return err
	}
	helpers.WriteJSON(w, http.StatusOK, updated)
	return nil
}

// Delete godoc
// @Summary Delete an event
// @Description Hides the event. Hidden events are excluded from every read.
// @Tags evento
// @Produce json
// @Param id path int true "Event id"
// @Success 200 {boolean} boolean
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 404 {object} helpers.ErrorResponse
// @Router /evento/{id} [delete]
func (c *EventController) Delete(w http.ResponseWriter, r *http.Request) error {
	id, err := pathID(r)
	if err != nil {
		return err
	}
	deleted, err := c.Service.DeleteByID(r.Context(), id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.NotFoundf(domain.MsgEventNotFoundByID, id)
	}
	helpers.WriteJSON(w, http.StatusOK, true)
	return nil
}

func decodeEvent(r *http.Request) (*EventRequest, error) {
	var req *EventRequest
	if _, err := helpers.DecodeJSON(r, &req); err != nil {
		return nil, err
	}
	if err := helpers.Validate(req); err != nil {
		return nil, err
	}
	return req, nil
}

func pathID(r *http.Request) (int64, error) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, domain.InvalidArgument(fmt.Sprintf(MsgInvalidID, raw))
	}
	return id, nil
}
