// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/danielhkuo/pollsite/models"
)

// captureLogs redirects the default slog logger into a buffer for the test
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestWithLogging(t *testing.T) {
	handlerCalled := false
	testHandler := func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("success"))
	}

	wrappedHandler := WithLogging(testHandler)

	req := httptest.NewRequest("GET", "/staff", nil)
	w := httptest.NewRecorder()

	wrappedHandler(w, req)

	if !handlerCalled {
		t.Error("Expected handler to be called")
	}
	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if w.Body.String() != "success" {
		t.Errorf("Expected body 'success', got '%s'", w.Body.String())
	}
}

func TestWithLogging_PreservesResponse(t *testing.T) {
	testCases := []struct {
		name       string
		statusCode int
		body       string
	}{
		{"OK", http.StatusOK, `{"result":{"status":"ok"}}`},
		{"BadRequest", http.StatusBadRequest, `{"result":{"status":"error"}}`},
		{"NotFound", http.StatusNotFound, "not found"},
		{"Conflict", http.StatusConflict, "conflict"},
		{"InternalError", http.StatusInternalServerError, "error"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			handler := WithLogging(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.statusCode)
				w.Write([]byte(tc.body))
			})

			req := httptest.NewRequest("POST", "/polls/create", nil)
			w := httptest.NewRecorder()

			handler(w, req)

			if w.Code != tc.statusCode {
				t.Errorf("Expected status %d, got %d", tc.statusCode, w.Code)
			}
			if w.Body.String() != tc.body {
				t.Errorf("Expected body '%s', got '%s'", tc.body, w.Body.String())
			}
		})
	}
}

func TestWithLogging_LogsStatusAndRequestID(t *testing.T) {
	logs := captureLogs(t)

	handler := chimw.RequestID(WithLogging(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte("conflict"))
	}))

	req := httptest.NewRequest("POST", "/polls/vote/abc", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	var completed map[string]any
	for _, line := range strings.Split(strings.TrimSpace(logs.String()), "\n") {
		var entry map[string]any
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("Failed to decode log line %q: %v", line, err)
		}
		if entry["msg"] == "request completed" {
			completed = entry
		}
	}

	if completed == nil {
		t.Fatalf("Expected a 'request completed' log entry, got %q", logs.String())
	}
	if completed["status"] != float64(http.StatusConflict) {
		t.Errorf("Expected status 409 in log, got %v", completed["status"])
	}
	if completed["bytes"] != float64(len("conflict")) {
		t.Errorf("Expected bytes %d in log, got %v", len("conflict"), completed["bytes"])
	}
	if id, _ := completed["request_id"].(string); id == "" {
		t.Error("Expected request_id in log")
	}
}

func TestJSONResponse(t *testing.T) {
	testCases := []struct {
		name       string
		statusCode int
		data       interface{}
		expected   string
	}{
		{
			name:       "simple struct",
			statusCode: http.StatusOK,
			data:       map[string]string{"message": "hello"},
			expected:   `{"message":"hello"}`,
		},
		{
			name:       "poll list",
			statusCode: http.StatusOK,
			data: models.ListPollsResponse{
				Result: models.Result{Status: models.StatusOK},
				Polls:  []models.Poll{{ID: "p1", Title: "Q", Option1: "A", Option2: "B", Votes1: 1}},
			},
			expected: `{"result":{"status":"ok"},"polls":[{"id":"p1","title":"Q","option1":"A","option2":"B","votes1":1,"votes2":0}]}`,
		},
		{
			name:       "empty poll list",
			statusCode: http.StatusOK,
			data: models.ListPollsResponse{
				Result: models.Result{Status: models.StatusOK},
				Polls:  []models.Poll{},
			},
			expected: `{"result":{"status":"ok"},"polls":[]}`,
		},
		{
			name:       "array data",
			statusCode: http.StatusOK,
			data:       []string{"a", "b", "c"},
			expected:   `["a","b","c"]`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			JSONResponse(w, tc.statusCode, tc.data)

			if w.Code != tc.statusCode {
				t.Errorf("Expected status %d, got %d", tc.statusCode, w.Code)
			}

			contentType := w.Header().Get("Content-Type")
			if contentType != "application/json" {
				t.Errorf("Expected Content-Type 'application/json', got '%s'", contentType)
			}

			// Trim newline added by Encode
			body := strings.TrimSpace(w.Body.String())
			if body != tc.expected {
				t.Errorf("Expected body '%s', got '%s'", tc.expected, body)
			}
		})
	}
}

func TestJSONResponse_EncodeFailureLogged(t *testing.T) {
	logs := captureLogs(t)

	w := httptest.NewRecorder()
	JSONResponse(w, http.StatusOK, map[string]any{"bad": make(chan int)})

	var entry map[string]any
	if err := json.Unmarshal(logs.Bytes(), &entry); err != nil {
		t.Fatalf("Failed to decode log line %q: %v", logs.String(), err)
	}
	if entry["msg"] != "failed to encode JSON response" {
		t.Errorf("Unexpected log message: %v", entry["msg"])
	}
	msg, ok := entry["error"].(string)
	if !ok || !strings.Contains(msg, "unsupported type") {
		t.Errorf("Expected error attribute with encoder message, got %v", entry["error"])
	}
}

func TestOKResponse(t *testing.T) {
	w := httptest.NewRecorder()
	OKResponse(w, "abc123")

	if body := strings.TrimSpace(w.Body.String()); body != `{"result":{"status":"ok","id":"abc123"}}` {
		t.Errorf("Unexpected body: %s", body)
	}

	w = httptest.NewRecorder()
	OKResponse(w, "")

	if body := strings.TrimSpace(w.Body.String()); body != `{"result":{"status":"ok"}}` {
		t.Errorf("Unexpected body: %s", body)
	}
}

func TestErrorResponse(t *testing.T) {
	testCases := []struct {
		name       string
		statusCode int
		message    string
	}{
		{"bad request", http.StatusBadRequest, "Bad vote option"},
		{"not found", http.StatusNotFound, "poll not found"},
		{"conflict", http.StatusConflict, "poll was modified concurrently"},
		{"internal error", http.StatusInternalServerError, "database error"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			ErrorResponse(w, tc.statusCode, tc.message)

			if w.Code != tc.statusCode {
				t.Errorf("Expected status %d, got %d", tc.statusCode, w.Code)
			}
			if w.Header().Get("Content-Type") != "application/json" {
				t.Error("Expected Content-Type 'application/json'")
			}

			var resp models.ResultResponse
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("Failed to decode error response: %v", err)
			}

			if resp.Result.Status != models.StatusError {
				t.Errorf("Expected status 'error', got '%s'", resp.Result.Status)
			}
			if resp.Result.Message != tc.message {
				t.Errorf("Expected message '%s', got '%s'", tc.message, resp.Result.Message)
			}
		})
	}
}

func TestParseFormBody(t *testing.T) {
	t.Run("valid form", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/polls/create?title=ignored", strings.NewReader("title=Cats+vs+Dogs&option1=Cats&option2="))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		form, err := ParseFormBody(req)
		if err != nil {
			t.Fatalf("Expected no error, got: %v", err)
		}
		if form.Get("title") != "Cats vs Dogs" {
			t.Errorf("Expected title from body, got '%s'", form.Get("title"))
		}
		if _, ok := form["option2"]; !ok {
			t.Error("Expected blank option2 to be present")
		}
		if _, ok := form["vote"]; ok {
			t.Error("Expected vote to be absent")
		}
	})

	t.Run("content type with charset", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/", strings.NewReader("vote=1"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded; charset=utf-8")

		form, err := ParseFormBody(req)
		if err != nil {
			t.Fatalf("Expected no error, got: %v", err)
		}
		if form.Get("vote") != "1" {
			t.Errorf("Expected vote '1', got '%s'", form.Get("vote"))
		}
	})

	t.Run("no body", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/", nil)

		if _, err := ParseFormBody(req); !errors.Is(err, ErrNoBody) {
			t.Errorf("Expected ErrNoBody, got %v", err)
		}
	})

	t.Run("JSON body", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/", strings.NewReader(`{"vote":"1"}`))
		req.Header.Set("Content-Type", "application/json")

		if _, err := ParseFormBody(req); !errors.Is(err, ErrNotURLEncoded) {
			t.Errorf("Expected ErrNotURLEncoded, got %v", err)
		}
	})

	t.Run("missing content type", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/", strings.NewReader("vote=1"))

		if _, err := ParseFormBody(req); !errors.Is(err, ErrNotURLEncoded) {
			t.Errorf("Expected ErrNotURLEncoded, got %v", err)
		}
	})

	t.Run("malformed encoding", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/", strings.NewReader("vote=%zz"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		if _, err := ParseFormBody(req); err == nil {
			t.Error("Expected error for malformed body")
		}
	})
}

func TestCORS(t *testing.T) {
	nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("handled"))
	})

	corsHandler := CORS(nextHandler)

	t.Run("preflight OPTIONS request", func(t *testing.T) {
		req := httptest.NewRequest("OPTIONS", "/polls/create", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		w := httptest.NewRecorder()

		corsHandler.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected status 200, got %d", w.Code)
		}
		// Preflight doesn't call next
		if w.Body.String() != "" {
			t.Errorf("Expected empty body for preflight, got '%s'", w.Body.String())
		}
		if w.Header().Get("Access-Control-Allow-Origin") != "http://localhost:5173" {
			t.Error("Expected Access-Control-Allow-Origin to match request origin")
		}
		for _, method := range []string{"GET", "POST", "OPTIONS"} {
			if !strings.Contains(w.Header().Get("Access-Control-Allow-Methods"), method) {
				t.Errorf("Expected %s in allowed methods", method)
			}
		}
	})

	t.Run("regular request with origin", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/polls/list", nil)
		req.Header.Set("Origin", "https://example.com")
		w := httptest.NewRecorder()

		corsHandler.ServeHTTP(w, req)

		if w.Body.String() != "handled" {
			t.Error("Expected next handler to be called")
		}
		if w.Header().Get("Access-Control-Allow-Origin") != "https://example.com" {
			t.Error("Expected Access-Control-Allow-Origin to reflect request origin")
		}
	})

	t.Run("request without origin defaults to wildcard", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/polls/list", nil)
		w := httptest.NewRecorder()

		corsHandler.ServeHTTP(w, req)

		if w.Header().Get("Access-Control-Allow-Origin") != "*" {
			t.Error("Expected Access-Control-Allow-Origin to default to '*'")
		}
	})
}

func TestGetClientIP(t *testing.T) {
	testCases := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		expectedIP string
	}{
		{
			name:       "X-Forwarded-For chained IPs",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.195, 70.41.3.18"},
			remoteAddr: "127.0.0.1:12345",
			expectedIP: "203.0.113.195",
		},
		{
			name:       "X-Real-IP takes precedence over RemoteAddr",
			headers:    map[string]string{"X-Real-IP": "203.0.113.50"},
			remoteAddr: "10.0.0.1:12345",
			expectedIP: "203.0.113.50",
		},
		{
			name:       "RemoteAddr with port",
			remoteAddr: "192.168.1.50:54321",
			expectedIP: "192.168.1.50",
		},
		{
			name:       "RemoteAddr without port",
			remoteAddr: "192.168.1.50",
			expectedIP: "192.168.1.50",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			req.RemoteAddr = tc.remoteAddr

			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}

			if got := GetClientIP(req); got != tc.expectedIP {
				t.Errorf("Expected IP '%s', got '%s'", tc.expectedIP, got)
			}
		})
	}
}
