package server

import (
	"net/http/httptest"
	"strings"
	"testing"

	"google.golang.org/genproto/googleapis/api/httpbody"

	v1 "etaus/api/etaus/v1"
)

func TestEncodeResponse(t *testing.T) {
	tests := []struct {
		name        string
		v           interface{}
		contentType string
		body        string
	}{
		{
			name:        "httpbody",
			v:           &httpbody.HttpBody{ContentType: "text/plain; charset=utf-8", Data: []byte("0a1c747a\n")},
			contentType: "text/plain; charset=utf-8",
			body:        "0a1c747a\n",
		},
		{
			name:        "message",
			v:           &v1.EnqueueTemplateJobReply{JobId: "1-0"},
			contentType: "application/json",
			body:        `"job_id":"1-0"`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest("GET", "/v1/sessions/x/table", nil)
			if err := encodeResponse(w, r, tt.v); err != nil {
				t.Fatal(err)
			}
			if w.Code != 200 {
				t.Errorf("code = %d", w.Code)
			}
			if got := w.Header().Get("Content-Type"); got != tt.contentType {
				t.Errorf("Content-Type = %q, want %q", got, tt.contentType)
			}
			if !strings.Contains(w.Body.String(), tt.body) {
				t.Errorf("body = %q, want %q", w.Body.String(), tt.body)
			}
		})
	}
}
