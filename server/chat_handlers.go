package server

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
)

type ChatPageData struct {
	AppName  string
	UserName string
}

// ChatPageHandler renders the document-QA chat page. The page is public;
// answers come from the separate QA service, not the gym backend.
func (s *Server) ChatPageHandler() http.HandlerFunc {
	tmpl := mustParseTemplate("chat.html")
	return func(w http.ResponseWriter, r *http.Request) {
		data := ChatPageData{AppName: s.config.GetAppName()}
		if sc := SessionFromContext(r.Context()); sc != nil && sc.User() != nil {
			data.UserName = sc.User().DisplayName
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_ = tmpl.Execute(w, data)
	}
}

type askPayload struct {
	Question string `json:"question"`
}

type askResponse struct {
	Success  bool     `json:"success"`
	Answer   string   `json:"answer,omitempty"`
	Contexts []string `json:"contexts,omitempty"`
	Error    string   `json:"error,omitempty"`
}

// AskHandler proxies a chat question to the document-QA service. Failures
// come back as a JSON error payload the chat page renders inline; the page
// itself never breaks on a dead QA service.
func (s *Server) AskHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload askPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeJSON(w, http.StatusBadRequest, askResponse{Error: "invalid request body"})
			return
		}
		if payload.Question == "" {
			writeJSON(w, http.StatusBadRequest, askResponse{Error: "question is required"})
			return
		}

		result, err := s.backend.Ask(r.Context(), payload.Question)
		if err != nil {
			log.Err(err).Msg("document QA request failed")
			writeJSON(w, http.StatusOK, askResponse{Error: backendErrorMessage(err)})
			return
		}

		writeJSON(w, http.StatusOK, askResponse{
			Success:  result.Success,
			Answer:   result.Answer,
			Contexts: result.Contexts,
			Error:    result.Error,
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
