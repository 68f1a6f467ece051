package saved

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/avishek322/Ai-Resume-Builder/internal/resume"
	"github.com/avishek322/Ai-Resume-Builder/internal/shared/server/middleware"
)

type stubSessions struct {
	snapshots map[string]SessionSnapshot
}

func (s stubSessions) Snapshot(sessionID, userID string) (SessionSnapshot, error) {
	snap, ok := s.snapshots[sessionID+"|"+userID]
	if !ok {
		return SessionSnapshot{}, ErrNotFound
	}
	return snap, nil
}

func newSavedRouter(sessions SessionSource) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.Identity())
	h := NewHandler(&Service{Repo: NewMemoryRepo()}, sessions)
	h.RegisterRoutes(r.Group("/api/v1"))
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, guestID string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	var body bytes.Buffer
	if payload != nil {
		if err := json.NewEncoder(&body).Encode(payload); err != nil {
			t.Fatalf("encode payload: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("X-Guest-Id", guestID)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSaveEndpointSnapshotsSession(t *testing.T) {
	sessions := stubSessions{snapshots: map[string]SessionSnapshot{
		"s1|guest:u1": {
			ResumeData:  sampleData(),
			TemplateID:  resume.TemplateModern,
			HTMLContent: "<div>html</div>",
		},
	}}
	r := newSavedRouter(sessions)

	w := doJSON(t, r, http.MethodPost, "/api/v1/resumes", "u1", gin.H{"sessionId": "s1", "name": "Draft one"})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp["name"] != "Draft one" {
		t.Fatalf("unexpected name: %v", resp["name"])
	}
	if resp["htmlContent"] != "<div>html</div>" {
		t.Fatalf("expected full payload on create response")
	}

	w = doJSON(t, r, http.MethodGet, "/api/v1/resumes", "u1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", w.Code)
	}
	var list []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected one resume, got %d", len(list))
	}
	if _, ok := list[0]["htmlContent"]; ok {
		t.Fatalf("list entries should carry metadata only")
	}
}

func TestSaveEndpointRejectsUngeneratedSession(t *testing.T) {
	sessions := stubSessions{snapshots: map[string]SessionSnapshot{
		"s1|guest:u1": {ResumeData: sampleData(), TemplateID: resume.TemplateClassic},
	}}
	r := newSavedRouter(sessions)

	w := doJSON(t, r, http.MethodPost, "/api/v1/resumes", "u1", gin.H{"sessionId": "s1", "name": "Draft"})
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", w.Code, w.Body.String())
	}
}

func TestSaveEndpointUnknownSession(t *testing.T) {
	r := newSavedRouter(stubSessions{snapshots: map[string]SessionSnapshot{}})

	w := doJSON(t, r, http.MethodPost, "/api/v1/resumes", "u1", gin.H{"sessionId": "nope", "name": "Draft"})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestDeleteEndpoint(t *testing.T) {
	sessions := stubSessions{snapshots: map[string]SessionSnapshot{
		"s1|guest:u1": {
			ResumeData:  sampleData(),
			TemplateID:  resume.TemplateClassic,
			HTMLContent: "<div></div>",
		},
	}}
	r := newSavedRouter(sessions)

	w := doJSON(t, r, http.MethodPost, "/api/v1/resumes", "u1", gin.H{"sessionId": "s1", "name": "Draft"})
	if w.Code != http.StatusCreated {
		t.Fatalf("save: expected 201, got %d", w.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	id, _ := resp["resumeId"].(string)

	w = doJSON(t, r, http.MethodDelete, "/api/v1/resumes/"+id, "u1", nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("delete: expected 204, got %d", w.Code)
	}

	w = doJSON(t, r, http.MethodDelete, "/api/v1/resumes/"+id, "u1", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("second delete: expected 404, got %d", w.Code)
	}
}
