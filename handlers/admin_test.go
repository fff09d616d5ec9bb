// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/danielhkuo/love-wall/ledger"
	"github.com/danielhkuo/love-wall/models"
	"github.com/danielhkuo/love-wall/testutil"
)

func eventFields(form url.Values, suffix, name, date string) {
	form.Set("event_name"+suffix, name)
	form.Set("location_name"+suffix, name+" Square")
	form.Set("latitude"+suffix, "51.5")
	form.Set("longitude"+suffix, "-0.12")
	form.Set("date"+suffix, date)
	form.Set("description"+suffix, "About "+name)
}

func TestAdminGetEvents(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	handler := NewAdminHandler(ledger.New(db))
	testutil.CreateTestEvent(t, db, "Fair")

	w := httptest.NewRecorder()
	handler.GetEvents(w, httptest.NewRequest("GET", "/admin", nil))

	testutil.AssertStatus(t, w, http.StatusOK)
	var resp models.AdminEventsResponse
	testutil.AssertJSON(t, w, &resp)
	if len(resp.Events) != 1 || resp.Events[0].Name != "Fair" {
		t.Errorf("Expected one event 'Fair', got %+v", resp.Events)
	}
}

func TestAdminSaveEvents(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	handler := NewAdminHandler(ledger.New(db))
	keep := testutil.CreateTestEvent(t, db, "Keep")
	drop := testutil.CreateTestEvent(t, db, "Drop")

	// Give the dropped event some history that must go with it
	sessionID := testutil.CreateTestSession(t, db)
	sentimentID := testutil.CreateTestSentiment(t, db, drop, "Gone soon")
	testutil.CastTestVote(t, db, sentimentID, sessionID, models.DirectionUp)

	form := url.Values{}
	eventFields(form, fmt.Sprint(keep), "Kept and renamed", "2024-06-01")
	eventFields(form, "a", "Brand New", "2024-07-04")
	form.Set("new", "a")

	w := httptest.NewRecorder()
	handler.SaveEvents(w, testutil.MakeRequest("POST", "/admin", form))
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.AdminEventsResponse
	testutil.AssertJSON(t, w, &resp)
	if len(resp.Events) != 2 {
		t.Fatalf("Expected 2 events, got %+v", resp.Events)
	}

	names := map[string]models.Event{}
	for _, e := range resp.Events {
		names[e.Name] = e
	}
	kept, ok := names["Kept and renamed"]
	if !ok || kept.ID != keep || kept.Date != "2024-06-01" || kept.Latitude != 51.5 {
		t.Errorf("Expected event %d updated, got %+v", keep, kept)
	}
	if _, ok := names["Brand New"]; !ok {
		t.Error("Expected new event to be created")
	}

	if _, err := ledger.New(db).GetEvent(t.Context(), drop); !errors.Is(err, ledger.ErrNotFound) {
		t.Errorf("Expected dropped event to be gone, got %v", err)
	}
	if n := testutil.CountRows(t, db, `SELECT COUNT(*) FROM sentiment_vote`); n != 0 {
		t.Errorf("Expected votes of the dropped event to be deleted, got %d", n)
	}
}

func TestAdminSaveEventsRejectsBadData(t *testing.T) {
	tests := []struct {
		name  string
		build func(form url.Values, keep string)
	}{
		{"bad latitude", func(form url.Values, keep string) {
			eventFields(form, keep, "Keep", "2024-06-01")
			form.Set("latitude"+keep, "north")
		}},
		{"latitude out of range", func(form url.Values, keep string) {
			eventFields(form, keep, "Keep", "2024-06-01")
			form.Set("latitude"+keep, "91")
		}},
		{"bad date", func(form url.Values, keep string) {
			eventFields(form, keep, "Keep", "01/06/2024")
		}},
		{"new event missing fields", func(form url.Values, keep string) {
			eventFields(form, keep, "Keep", "2024-06-01")
			form.Set("event_namex", "Half")
			form.Set("new", "x")
		}},
		{"empty new suffix", func(form url.Values, keep string) {
			eventFields(form, keep, "Keep", "2024-06-01")
			form.Set("new", "a,")
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := testutil.SetupTestDB(t)
			defer db.Close()

			handler := NewAdminHandler(ledger.New(db))
			keep := testutil.CreateTestEvent(t, db, "Original")
			testutil.CreateTestEvent(t, db, "Bystander")

			form := url.Values{}
			tt.build(form, fmt.Sprint(keep))

			w := httptest.NewRecorder()
			handler.SaveEvents(w, testutil.MakeRequest("POST", "/admin", form))
			testutil.AssertStatus(t, w, http.StatusBadRequest)

			// Nothing applied
			if n := testutil.CountRows(t, db, `SELECT COUNT(*) FROM event`); n != 2 {
				t.Errorf("Expected 2 events untouched, got %d", n)
			}
			e, err := ledger.New(db).GetEvent(t.Context(), keep)
			if err != nil || e.Name != "Original" {
				t.Errorf("Expected event to keep its name, got %+v (%v)", e, err)
			}
		})
	}
}

func TestParseAdminForm(t *testing.T) {
	form := url.Values{}
	eventFields(form, "3", "Three", "2024-01-01")
	eventFields(form, "7", "Seven", "2024-01-02")
	form.Del("description7") // incomplete existing event counts as removed
	eventFields(form, "n1", "New One", "2024-02-01")
	eventFields(form, "n2", "New Two", "2024-02-02")
	form.Set("new", "n1, n2")

	edits, creates, err := parseAdminForm(form)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if len(edits) != 1 || edits[3].Name != "Three" {
		t.Errorf("Expected only event 3 in edits, got %+v", edits)
	}
	if len(creates) != 2 || creates[0].Name != "New One" || creates[1].Name != "New Two" {
		t.Errorf("Expected creates in listed order, got %+v", creates)
	}
	if creates[0].Longitude != -0.12 {
		t.Errorf("Expected longitude -0.12, got %v", creates[0].Longitude)
	}
}
