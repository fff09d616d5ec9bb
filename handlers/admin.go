// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/danielhkuo/love-wall/ledger"
	"github.com/danielhkuo/love-wall/middleware"
	"github.com/danielhkuo/love-wall/models"
)

// errBadData marks admin form input that could not be parsed
var errBadData = errors.New("bad data")

type AdminHandler struct {
	store *ledger.Store
}

func NewAdminHandler(store *ledger.Store) *AdminHandler {
	return &AdminHandler{store: store}
}

// GetEvents handles GET /admin
func (h *AdminHandler) GetEvents(w http.ResponseWriter, r *http.Request) {
	h.respondEvents(w, r)
}

// SaveEvents handles POST /admin
//
// Each existing event is kept only if the form carries its fields under the
// event id as suffix (event_name3, latitude3, ...). Events without fields are
// deleted. `new` lists the suffixes of events to create.
func (h *AdminHandler) SaveEvents(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid form")
		return
	}

	edits, creates, err := parseAdminForm(r.PostForm)
	if err != nil {
		slog.Warn("rejected admin form", "error", err)
		middleware.ErrorResponse(w, http.StatusBadRequest, "You gave me bad data!")
		return
	}

	if err := h.store.SaveEvents(r.Context(), edits, creates); err != nil {
		ledgerError(w, err, "save events")
		return
	}

	slog.Info("events saved", "updated", len(edits), "created", len(creates))
	h.respondEvents(w, r)
}

func (h *AdminHandler) respondEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.store.ListEvents(r.Context())
	if err != nil {
		ledgerError(w, err, "list events")
		return
	}
	if events == nil {
		events = []models.Event{}
	}

	middleware.JSONResponse(w, http.StatusOK, models.AdminEventsResponse{Events: events})
}

func parseAdminForm(form url.Values) (map[int64]models.EventInput, []models.EventInput, error) {
	var newSuffixes []string
	isNew := make(map[string]bool)
	if list := strings.TrimSpace(form.Get("new")); list != "" {
		for _, suffix := range strings.Split(list, ",") {
			suffix = strings.TrimSpace(suffix)
			if suffix == "" {
				return nil, nil, fmt.Errorf("empty suffix in new: %w", errBadData)
			}
			newSuffixes = append(newSuffixes, suffix)
			isNew[suffix] = true
		}
	}

	edits := make(map[int64]models.EventInput)
	for key := range form {
		suffix, found := strings.CutPrefix(key, "event_name")
		if !found || isNew[suffix] {
			continue
		}
		id, err := strconv.ParseInt(suffix, 10, 64)
		if err != nil {
			continue
		}
		in, complete, err := eventFromForm(form, suffix)
		if err != nil {
			return nil, nil, err
		}
		if complete {
			edits[id] = in
		}
	}

	creates := make([]models.EventInput, 0, len(newSuffixes))
	for _, suffix := range newSuffixes {
		in, complete, err := eventFromForm(form, suffix)
		if err != nil {
			return nil, nil, err
		}
		if !complete {
			return nil, nil, fmt.Errorf("new event %q is missing fields: %w", suffix, errBadData)
		}
		creates = append(creates, in)
	}

	return edits, creates, nil
}

// eventFromForm reads the six event fields for one suffix. complete is false
// when any field is absent.
func eventFromForm(form url.Values, suffix string) (in models.EventInput, complete bool, err error) {
	fields := map[string]string{}
	for _, name := range []string{"event_name", "location_name", "latitude", "longitude", "date", "description"} {
		values, ok := form[name+suffix]
		if !ok || len(values) == 0 {
			return models.EventInput{}, false, nil
		}
		fields[name] = values[0]
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(fields["latitude"]), 64)
	if err != nil || lat < -90 || lat > 90 {
		return models.EventInput{}, false, fmt.Errorf("latitude%s: %w", suffix, errBadData)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(fields["longitude"]), 64)
	if err != nil || lon < -180 || lon > 180 {
		return models.EventInput{}, false, fmt.Errorf("longitude%s: %w", suffix, errBadData)
	}
	date := strings.TrimSpace(fields["date"])
	if _, err := time.Parse(models.EventDateLayout, date); err != nil {
		return models.EventInput{}, false, fmt.Errorf("date%s: %w", suffix, errBadData)
	}

	return models.EventInput{
		Name:         fields["event_name"],
		LocationName: fields["location_name"],
		Latitude:     lat,
		Longitude:    lon,
		Date:         date,
		Description:  fields["description"],
	}, true, nil
}
